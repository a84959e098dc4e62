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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakeSegmentsOptimalEmpty(t *testing.T) {
	segs := MakeSegmentsOptimal("", 10)
	assert.Equal(t, []*QRSegment{}, segs)
}

func TestMakeSegmentsOptimalAllNumeric(t *testing.T) {
	segs := MakeSegmentsOptimal("0123456789", 5)
	require.Len(t, segs, 1)
	assert.Equal(t, Numeric, segs[0].Mode)
	assert.Equal(t, 10, segs[0].NumChars)
}

func TestMakeSegmentsOptimalSplitsMixedContent(t *testing.T) {
	// A long digit run surrounded by lowercase letters: numeric mode is
	// cheaper than byte mode for a long enough digit run, so the DP should
	// open a dedicated numeric segment in the middle.
	segs := MakeSegmentsOptimal("ab0123456789012345cd", 10)
	require.True(t, len(segs) >= 2)

	var sawNumeric bool
	total := 0
	for _, seg := range segs {
		total += seg.NumChars
		if seg.Mode == Numeric {
			sawNumeric = true
		}
	}
	assert.True(t, sawNumeric)
	assert.Equal(t, len("ab0123456789012345cd"), total)
}

func TestMakeSegmentsOptimalNeverCostsMoreThanWholeByteMode(t *testing.T) {
	text := "The quick brown 1234567890 fox"
	version := Version(10)
	segs := MakeSegmentsOptimal(text, version)

	optimalBits := TotalBits(segs, version)
	wholeByte := TotalBits([]*QRSegment{MakeBytes([]byte(text))}, version)

	require.NotEqual(t, -1, optimalBits)
	require.NotEqual(t, -1, wholeByte)
	assert.True(t, optimalBits <= wholeByte)
}

func TestCharSixthsRejectsWrongMode(t *testing.T) {
	digit := runeClass{r: '5', isNumeric: true, utf8ByteCount: 1}
	_, ok := charSixths(digit, Alphanumeric)
	assert.False(t, ok)

	cost, ok := charSixths(digit, Numeric)
	assert.True(t, ok)
	assert.Equal(t, int64(sixthsPerNumericChar), cost)
}

func TestIndexInAlphanumericCharset(t *testing.T) {
	assert.Equal(t, 0, indexInAlphanumericCharset('0'))
	assert.Equal(t, -1, indexInAlphanumericCharset('a'))
	assert.Equal(t, -1, indexInAlphanumericCharset(rune(200)))
}
