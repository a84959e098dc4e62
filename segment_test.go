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
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsAlphanumeric(t *testing.T) {
	cases := []struct {
		answer bool
		text   string
	}{
		{true, ""},
		{true, "0"},
		{true, "A"},
		{false, "a"},
		{true, " "},
		{true, "."},
		{true, "*"},
		{false, ","},
		{false, "|"},
		{false, "@"},
		{true, "XYZ"},
		{false, "XYZ!"},
		{true, "79068"},
		{true, "+123 ABC$"},
		{false, "\x01"},
		{false, "\x7F"},
		{false, "\x80"},
		{false, "\xC0"},
		{false, "\xFF"},
	}

	for _, tc := range cases {
		t.Run(fmt.Sprintf("%v", tc), func(t *testing.T) {
			assert.Equal(t, tc.answer, alphanumericRegexp.MatchString(tc.text))
		})
	}
}

func TestIsNumeric(t *testing.T) {
	cases := []struct {
		answer bool
		text   string
	}{
		{true, ""},
		{true, "0"},
		{false, "A"},
		{false, "a"},
		{false, " "},
		{false, "."},
		{false, "*"},
		{false, ","},
		{false, "|"},
		{false, "@"},
		{false, "XYZ"},
		{false, "XYZ!"},
		{true, "79068"},
		{false, "+123 ABC$"},
		{false, "\x01"},
		{false, "\x7F"},
		{false, "\x80"},
		{false, "\xC0"},
		{false, "\xFF"},
	}

	for _, tc := range cases {
		t.Run(fmt.Sprintf("%v", tc), func(t *testing.T) {
			assert.Equal(t, tc.answer, numericRegexp.MatchString(tc.text))
		})
	}
}

func TestMakeBytes(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		seg := MakeBytes([]byte{})
		assert.Equal(t, Byte, seg.Mode)
		assert.Equal(t, 0, seg.NumChars)
		assert.Equal(t, bitStream{}, seg.Data)
	})
	t.Run("single zero byte", func(t *testing.T) {
		seg := MakeBytes([]byte{0x00})
		assert.Equal(t, Byte, seg.Mode)
		assert.Equal(t, 1, seg.NumChars)
		assert.Equal(t, bitStream{0, 0, 0, 0, 0, 0, 0, 0}, seg.Data)
	})
	t.Run("utf-8 BOM", func(t *testing.T) {
		seg := MakeBytes([]byte{0xEF, 0xBB, 0xBF})
		assert.Equal(t, Byte, seg.Mode)
		assert.Equal(t, 3, seg.NumChars)
		assert.Equal(t, bitStream{1, 1, 1, 0, 1, 1, 1, 1, 1, 0, 1, 1, 1, 0, 1, 1, 1, 0, 1, 1, 1, 1, 1, 1}, seg.Data)
	})
}

func TestMakeNumeric(t *testing.T) {
	cases := []struct {
		text      string
		length    int
		bitLength int
		bytes     bitStream
	}{
		{"", 0, 0, bitStream{}},
		{"9", 1, 4, bitStream{1, 0, 0, 1}},
		{"81", 2, 7, bitStream{1, 0, 1, 0, 0, 0, 1}},
		{"673", 3, 10, bitStream{1, 0, 1, 0, 1, 0, 0, 0, 0, 1}},
	}

	for _, tc := range cases {
		t.Run(tc.text, func(t *testing.T) {
			seg, err := MakeNumeric(tc.text)
			require.NoError(t, err)
			assert.Equal(t, Numeric, seg.Mode)
			assert.Equal(t, tc.length, seg.NumChars)
			assert.Equal(t, tc.bitLength, len(seg.Data))
			assert.Equal(t, tc.bytes, seg.Data)
		})
	}
}

func TestMakeNumericRejectsNonDigits(t *testing.T) {
	_, err := MakeNumeric("12a")
	require.Error(t, err)
	qrErr, ok := err.(*QRError)
	require.True(t, ok)
	assert.Equal(t, InvalidCharacter, qrErr.Kind)
}

func TestMakeAlphanumeric(t *testing.T) {
	cases := []struct {
		text      string
		length    int
		bitLength int
		bytes     bitStream
	}{
		{"", 0, 0, bitStream{}},
		{"A", 1, 6, bitStream{0, 0, 1, 0, 1, 0}},
		{"%:", 2, 11, bitStream{1, 1, 0, 1, 1, 0, 1, 1, 0, 1, 0}},
		{"Q R", 3, 17, bitStream{1, 0, 0, 1, 0, 1, 1, 0, 1, 1, 0, 0, 1, 1, 0, 1, 1}},
	}

	for _, tc := range cases {
		t.Run(tc.text, func(t *testing.T) {
			seg, err := MakeAlphanumeric(tc.text)
			require.NoError(t, err)
			assert.Equal(t, Alphanumeric, seg.Mode)
			assert.Equal(t, tc.length, seg.NumChars)
			assert.Equal(t, tc.bitLength, len(seg.Data))
			assert.Equal(t, tc.bytes, seg.Data)
		})
	}
}

func TestMakeAlphanumericRejectsLowercase(t *testing.T) {
	_, err := MakeAlphanumeric("abc")
	require.Error(t, err)
}

func TestMakeEci(t *testing.T) {
	cases := []struct {
		input     int
		length    int
		bitLength int
		bytes     bitStream
	}{
		{127, 0, 8, bitStream{0, 1, 1, 1, 1, 1, 1, 1}},
		{10345, 0, 16, bitStream{1, 0, 1, 0, 1, 0, 0, 0, 0, 1, 1, 0, 1, 0, 0, 1}},
		{999999, 0, 24, bitStream{1, 1, 0, 0, 1, 1, 1, 1, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 1, 1, 1, 1, 1, 1}},
	}

	for _, tc := range cases {
		t.Run(fmt.Sprintf("%v", tc.input), func(t *testing.T) {
			seg, err := MakeECI(tc.input)
			require.NoError(t, err)
			assert.Equal(t, ECI, seg.Mode)
			assert.Equal(t, tc.length, seg.NumChars)
			assert.Equal(t, tc.bitLength, len(seg.Data))
			assert.Equal(t, tc.bytes, seg.Data)
		})
	}
}

func TestMakeEciRejectsOutOfRange(t *testing.T) {
	_, err := MakeECI(-1)
	require.Error(t, err)
	_, err = MakeECI(1_000_000)
	require.Error(t, err)
}

func TestGetTotalBits(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		assert.Equal(t, 0, TotalBits([]*QRSegment{}, 1))
		assert.Equal(t, 0, TotalBits([]*QRSegment{}, 40))
	})
	t.Run("single byte segment", func(t *testing.T) {
		segs := []*QRSegment{{Mode: Byte, NumChars: 3, Data: make(bitStream, 24)}}
		assert.Equal(t, 36, TotalBits(segs, 2))
		assert.Equal(t, 44, TotalBits(segs, 10))
		assert.Equal(t, 44, TotalBits(segs, 30))
	})
	t.Run("mixed modes", func(t *testing.T) {
		segs := []*QRSegment{
			{Mode: ECI, NumChars: 0, Data: make(bitStream, 8)},
			{Mode: Numeric, NumChars: 7, Data: make(bitStream, 24)},
			{Mode: Alphanumeric, NumChars: 1, Data: make(bitStream, 6)},
			{Mode: Kanji, NumChars: 4, Data: make(bitStream, 52)},
		}
		assert.Equal(t, 133, TotalBits(segs, 9))
		assert.Equal(t, 139, TotalBits(segs, 21))
		assert.Equal(t, 145, TotalBits(segs, 27))
	})
	t.Run("character count overflow returns -1", func(t *testing.T) {
		segs := []*QRSegment{{Mode: Byte, NumChars: 4093, Data: make(bitStream, 32744)}}
		assert.Equal(t, -1, TotalBits(segs, 1))
		assert.Equal(t, 32764, TotalBits(segs, 10))
		assert.Equal(t, 32764, TotalBits(segs, 27))
	})
}

func TestMakeSegments(t *testing.T) {
	t.Run("empty returns empty slice", func(t *testing.T) {
		assert.Equal(t, []*QRSegment{}, MakeSegments(""))
	})
	t.Run("digits use numeric mode", func(t *testing.T) {
		segs := MakeSegments("12345")
		require.Len(t, segs, 1)
		assert.Equal(t, Numeric, segs[0].Mode)
	})
	t.Run("uppercase charset uses alphanumeric mode", func(t *testing.T) {
		segs := MakeSegments("HELLO WORLD")
		require.Len(t, segs, 1)
		assert.Equal(t, Alphanumeric, segs[0].Mode)
	})
	t.Run("mixed case falls back to byte mode", func(t *testing.T) {
		segs := MakeSegments("Hello, world!")
		require.Len(t, segs, 1)
		assert.Equal(t, Byte, segs[0].Mode)
	})
}
