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
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"
)

// MakeKanji returns a segment encoding text in kanji mode, packing each
// character into 13 bits per ISO/IEC 18004's Shift-JIS-derived table.
// Rather than shipping a hand-maintained copy of that table, each rune is
// transcoded to its two-byte Shift-JIS code point via
// golang.org/x/text/encoding/japanese, then remapped with the standard
// subtract-and-repack rule. Returns InvalidCharacter if any rune cannot be
// represented as a single Shift-JIS double-byte "kanji" code in the ranges
// the standard allows.
func MakeKanji(text string) (*QRSegment, error) {
	runes := []rune(text)
	bs := make(bitStream, 0, len(runes)*13)

	encoder := japanese.ShiftJIS.NewEncoder()
	for _, r := range runes {
		value, err := kanjiCodeForRune(encoder, r)
		if err != nil {
			return nil, err
		}
		bs.appendBits(value, 13)
	}

	return &QRSegment{Mode: Kanji, NumChars: len(runes), Data: bs}, nil
}

// kanjiCodeForRune transcodes a single rune to its Shift-JIS code point and
// remaps it to the 13-bit value QR kanji mode expects.
func kanjiCodeForRune(encoder *encoding.Encoder, r rune) (int, error) {
	encoded, _, err := transform.String(encoder, string(r))
	if err != nil || len(encoded) != 2 {
		return 0, newInvalidCharacter("character %q is not representable in kanji mode", r)
	}

	code := int(encoded[0])<<8 | int(encoded[1])

	var reduced int
	switch {
	case code >= 0x8140 && code <= 0x9FFC:
		reduced = code - 0x8140
	case code >= 0xE040 && code <= 0xEBBF:
		reduced = code - 0xC140
	default:
		return 0, newInvalidCharacter("character %q is not representable in kanji mode", r)
	}

	return (reduced>>8)*0xC0 + reduced&0xFF, nil
}
