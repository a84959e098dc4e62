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
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/japanese"
)

// Per-character costs, in sixths of a bit, used by the optimal segmenter.
const (
	sixthsPerAlphanumericChar = 33
	sixthsPerNumericChar      = 20
	sixthsPerKanjiChar        = 78
)

// optimalModes lists the candidate modes the DP chooses among, in a fixed
// order used to break ties deterministically (earlier wins on equal cost).
var optimalModes = []Mode{Numeric, Alphanumeric, Kanji, Byte}

// MakeSegmentsOptimal runs a dynamic-programming search over per-character
// mode assignment to minimize the total encoded bit length of text at a
// single, fixed version, then returns the resulting segment list. This is
// strictly optional relative to MakeSegments's simple single-segment
// heuristic: it produces smaller symbols for mixed-content payloads (e.g.
// digits interleaved with kanji) at the cost of an O(len(text)) DP pass.
//
// The optimal assignment can change whenever version crosses one of the
// character-count-field boundaries (versions 1, 10, 27): callers that
// search across versions, such as EncodeTextOptimal, should call this once
// per candidate version rather than reusing one result across the whole
// range. Returns an empty slice for empty text.
func MakeSegmentsOptimal(text string, version Version) []*QRSegment {
	if len(text) == 0 {
		return []*QRSegment{}
	}

	runes := []rune(text)
	encoder := japanese.ShiftJIS.NewEncoder()
	charClass := classifyRunes(runes, encoder)
	modeAt := optimalModesForVersion(runes, charClass, version)
	return buildSegmentsFromModes(runes, modeAt, charClass)
}

// runeClass records, for one rune, whether it is numeric/alphanumeric and
// its kanji code if representable, so the DP doesn't re-transcode runes on
// every version bucket.
type runeClass struct {
	r             rune
	isNumeric     bool
	isAlphanum    bool
	kanjiValue    int
	isKanji       bool
	utf8ByteCount int
}

func classifyRunes(runes []rune, encoder *encoding.Encoder) []runeClass {
	classes := make([]runeClass, len(runes))
	for i, r := range runes {
		c := runeClass{r: r, utf8ByteCount: utf8.RuneLen(r)}
		if r >= '0' && r <= '9' {
			c.isNumeric = true
		}
		if indexInAlphanumericCharset(r) >= 0 {
			c.isAlphanum = true
		}
		if value, err := kanjiCodeForRune(encoder, r); err == nil {
			c.isKanji = true
			c.kanjiValue = value
		}
		classes[i] = c
	}
	return classes
}

func indexInAlphanumericCharset(r rune) int {
	if r > 127 {
		return -1
	}
	for i := 0; i < len(AlphanumericCharset); i++ {
		if rune(AlphanumericCharset[i]) == r {
			return i
		}
	}
	return -1
}

// optimalModesForVersion runs the DP for a fixed version and returns the
// chosen mode for each rune index.
func optimalModesForVersion(runes []rune, classes []runeClass, version Version) []Mode {
	n := len(runes)
	// cost[i][m] = minimum sixths-of-a-bit cost to encode runes[i:] given
	// that the segment containing runes[i] is in mode optimalModes[m].
	const inf = 1 << 60
	numModes := len(optimalModes)
	cost := make([][]int64, n+1)
	choice := make([][]int, n+1)
	for i := range cost {
		cost[i] = make([]int64, numModes)
		choice[i] = make([]int, numModes)
	}
	for m := 0; m < numModes; m++ {
		cost[n][m] = 0
	}

	for i := n - 1; i >= 0; i-- {
		for m := 0; m < numModes; m++ {
			mode := optimalModes[m]
			charCost, ok := charSixths(classes[i], mode)
			if !ok {
				cost[i][m] = inf
				continue
			}

			best := int64(inf)
			bestNext := m
			for m2 := 0; m2 < numModes; m2++ {
				next := cost[i+1][m2]
				if next >= inf {
					continue
				}
				total := charCost + next
				if m2 != m {
					total += switchCostSixths(optimalModes[m2], version)
				}
				if total < best {
					best = total
					bestNext = m2
				}
			}
			cost[i][m] = best
			choice[i][m] = bestNext
		}
	}

	// Pick the overall best starting mode (a leading segment header is
	// always paid, so this mirrors the mode-switch cost of segment 0).
	bestStart := 0
	bestCost := int64(inf)
	for m := 0; m < numModes; m++ {
		total := cost[0][m] + switchCostSixths(optimalModes[m], version)
		if total < bestCost {
			bestCost = total
			bestStart = m
		}
	}

	modes := make([]Mode, n)
	m := bestStart
	for i := 0; i < n; i++ {
		modes[i] = optimalModes[m]
		m = choice[i][m]
	}
	return modes
}

// charSixths returns the cost, in sixths of a bit, of encoding one
// character in the given mode, or ok=false if that character cannot be
// represented in that mode.
func charSixths(c runeClass, mode Mode) (int64, bool) {
	switch mode {
	case Numeric:
		if !c.isNumeric {
			return 0, false
		}
		return sixthsPerNumericChar, true
	case Alphanumeric:
		if !c.isAlphanum {
			return 0, false
		}
		return sixthsPerAlphanumericChar, true
	case Kanji:
		if !c.isKanji {
			return 0, false
		}
		return sixthsPerKanjiChar, true
	case Byte:
		return int64(8 * c.utf8ByteCount * 6), true
	default:
		return 0, false
	}
}

// switchCostSixths returns the one-time cost, in sixths of a bit, of
// opening a new segment in the given mode at the given version: the mode
// indicator plus character-count field, rounded up to whole bits (the DP
// works in sixths so this is exact, never actually fractional).
func switchCostSixths(mode Mode, version Version) int64 {
	return int64(4+int(mode.numCharCountBits(version))) * 6
}

// buildSegmentsFromModes merges consecutive same-mode runes into segments
// and builds each with the matching Make* factory.
func buildSegmentsFromModes(runes []rune, modeAt []Mode, classes []runeClass) []*QRSegment {
	var segs []*QRSegment
	i := 0
	for i < len(runes) {
		j := i + 1
		for j < len(runes) && modeAt[j] == modeAt[i] {
			j++
		}

		seg := buildSegment(runes[i:j], modeAt[i], classes[i:j])
		segs = append(segs, seg)
		i = j
	}
	return segs
}

func buildSegment(runes []rune, mode Mode, classes []runeClass) *QRSegment {
	switch mode {
	case Numeric:
		seg, _ := MakeNumeric(string(runes))
		return seg
	case Alphanumeric:
		seg, _ := MakeAlphanumeric(string(runes))
		return seg
	case Kanji:
		bs := make(bitStream, 0, len(classes)*13)
		for _, c := range classes {
			bs.appendBits(c.kanjiValue, 13)
		}
		return &QRSegment{Mode: Kanji, NumChars: len(runes), Data: bs}
	default:
		return MakeBytes([]byte(string(runes)))
	}
}
