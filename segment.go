/*
 * Copyright © 2020, G.Ralph Kuntz, MD.
 *
 * Licensed under the Apache License, Version 2.0(the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIC
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package qrcodegen

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// QRSegment is a single contiguous, tagged fragment of a QR code's payload.
// Instances are immutable once constructed; build them with MakeNumeric,
// MakeAlphanumeric, MakeBytes, MakeKanji, MakeECI, or MakeSegments.
type QRSegment struct {
	Mode     Mode // The mode of this segment.
	NumChars int  // Unencoded length: characters for numeric/alphanumeric/kanji, bytes for byte, 0 for ECI.
	Data     bitStream
}

// AlphanumericCharset is the 45-character alphabet usable in alphanumeric
// mode, in the exact order that defines each character's value.
const AlphanumericCharset = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ $%*+-./:"

var (
	alphanumericRegexp = regexp.MustCompile(`^[A-Z0-9 $%*+./:-]*$`)
	numericRegexp      = regexp.MustCompile(`^[0-9]*$`)
)

// TotalBits returns the total number of bits segs would occupy (mode
// indicator + character count field + payload) in a symbol of the given
// version, or -1 if any segment's NumChars does not fit its character
// count field, or if the sum would overflow a 32-bit integer.
func TotalBits(segs []*QRSegment, version Version) int {
	result := int64(0)
	for _, seg := range segs {
		ccBits := seg.Mode.numCharCountBits(version)
		if seg.NumChars >= 1<<ccBits {
			return -1
		}

		result += int64(4 + int(ccBits) + len(seg.Data))
		if result > math.MaxInt32 {
			return -1
		}
	}

	return int(result)
}

// MakeNumeric returns a segment encoding digits in numeric mode, packing
// groups of 3/2/1 digits into 10/7/4-bit values. Returns InvalidCharacter
// if digits contains anything but '0'..'9'.
func MakeNumeric(digits string) (*QRSegment, error) {
	if !numericRegexp.MatchString(digits) {
		return nil, newInvalidCharacter("string contains non-numeric characters")
	}

	bs := make(bitStream, 0, len(digits)*3+(len(digits)+2)/3)
	for i := 0; i < len(digits); {
		n := minInt(len(digits)-i, 3)
		d, err := strconv.Atoi(digits[i : i+n])
		if err != nil {
			panic(err) // Unreachable: numericRegexp already validated digits.
		}
		bs.appendBits(d, int8(n*3+1))
		i += n
	}

	return &QRSegment{Mode: Numeric, NumChars: len(digits), Data: bs}, nil
}

// MakeAlphanumeric returns a segment encoding text in alphanumeric mode,
// packing groups of 2/1 characters into 11/6-bit values over
// AlphanumericCharset. Returns InvalidCharacter if text contains any
// character outside that alphabet.
func MakeAlphanumeric(text string) (*QRSegment, error) {
	if !alphanumericRegexp.MatchString(text) {
		return nil, newInvalidCharacter("string contains non-alphanumeric characters")
	}

	bs := make(bitStream, 0, len(text)*5+(len(text)+1)/2)
	var i int
	for i = 0; i <= len(text)-2; i += 2 {
		temp := strings.IndexByte(AlphanumericCharset, text[i]) * 45
		temp += strings.IndexByte(AlphanumericCharset, text[i+1])
		bs.appendBits(temp, 11)
	}
	if i < len(text) {
		bs.appendBits(strings.IndexByte(AlphanumericCharset, text[i]), 6)
	}

	return &QRSegment{Mode: Alphanumeric, NumChars: len(text), Data: bs}, nil
}

// MakeBytes returns a segment encoding data in byte mode. Any byte slice
// is acceptable.
func MakeBytes(data []byte) *QRSegment {
	bs := make(bitStream, 0, len(data)*8)
	for _, b := range data {
		bs.appendBits(int(b), 8)
	}

	return &QRSegment{Mode: Byte, NumChars: len(data), Data: bs}
}

// MakeECI returns a segment representing an Extended Channel
// Interpretation designator with the given assignment value. Returns
// InvalidArgument if assignVal is outside [0, 999999].
func MakeECI(assignVal int) (*QRSegment, error) {
	bs := make(bitStream, 0, 24)
	switch {
	case assignVal < 0:
		return nil, newInvalidArgument("ECI assignment value out of range")
	case assignVal < 1<<7:
		bs.appendBits(assignVal, 8)
	case assignVal < 1<<14:
		bs.appendBits(2, 2)
		bs.appendBits(assignVal, 14)
	case assignVal < 1_000_000:
		bs.appendBits(6, 3)
		bs.appendBits(assignVal, 21)
	default:
		return nil, newInvalidArgument("ECI assignment value out of range")
	}

	return &QRSegment{Mode: ECI, NumChars: 0, Data: bs}, nil
}

// MakeSegments chooses a single segment for text using the simple
// auto-mode heuristic: numeric if every character is a digit, else
// alphanumeric if every character is in AlphanumericCharset, else byte
// mode over the UTF-8 encoding. Returns an empty slice for empty text.
// Use MakeSegmentsOptimal for the stronger per-character DP segmenter.
func MakeSegments(text string) []*QRSegment {
	if len(text) == 0 {
		return []*QRSegment{}
	}

	if numericRegexp.MatchString(text) {
		seg, _ := MakeNumeric(text)
		return []*QRSegment{seg}
	}

	if alphanumericRegexp.MatchString(text) {
		seg, _ := MakeAlphanumeric(text)
		return []*QRSegment{seg}
	}

	return []*QRSegment{MakeBytes([]byte(text))}
}
