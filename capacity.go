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

// eccCodewordsPerBlock and numErrorCorrectionBlocks are reproduced verbatim
// from ISO/IEC 18004 Annex E. Index 0 of each row is a padding slot set to
// an illegal value; real versions start at index 1.
var (
	eccCodewordsPerBlock = [4][41]int{
		// Version:  0,  1,  2,  3,  4,  5,  6,  7,  8,  9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24, 25, 26, 27, 28, 29, 30, 31, 32, 33, 34, 35, 36, 37, 38, 39, 40
		{-1, 7, 10, 15, 20, 26, 18, 20, 24, 30, 18, 20, 24, 26, 30, 22, 24, 28, 30, 28, 28, 28, 28, 30, 30, 26, 28, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30},  // Low
		{-1, 10, 16, 26, 18, 24, 16, 18, 22, 22, 26, 30, 22, 22, 24, 24, 28, 28, 26, 26, 26, 26, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28}, // Medium
		{-1, 13, 22, 18, 26, 18, 24, 18, 22, 20, 24, 28, 26, 24, 20, 30, 24, 28, 28, 26, 30, 28, 30, 30, 30, 30, 28, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30}, // Quartile
		{-1, 17, 28, 22, 16, 22, 28, 26, 26, 24, 28, 24, 28, 22, 24, 24, 30, 28, 28, 26, 28, 30, 24, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30}, // High
	}

	numErrorCorrectionBlocks = [4][41]int{
		// Version:  0, 1, 2, 3, 4, 5, 6, 7, 8, 9,10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24, 25, 26, 27, 28, 29, 30, 31, 32, 33, 34, 35, 36, 37, 38, 39, 40
		{-1, 1, 1, 1, 1, 1, 2, 2, 2, 2, 4, 4, 4, 4, 4, 6, 6, 6, 6, 7, 8, 8, 9, 9, 10, 12, 12, 12, 13, 14, 15, 16, 17, 18, 19, 19, 20, 21, 22, 24, 25},              // Low
		{-1, 1, 1, 1, 2, 2, 4, 4, 4, 5, 5, 5, 8, 9, 9, 10, 10, 11, 13, 14, 16, 17, 17, 18, 20, 21, 23, 25, 26, 28, 29, 31, 33, 35, 37, 38, 40, 43, 45, 47, 49},     // Medium
		{-1, 1, 1, 2, 2, 4, 4, 6, 6, 8, 8, 8, 10, 12, 16, 12, 17, 16, 18, 21, 20, 23, 23, 25, 27, 29, 34, 34, 35, 38, 40, 43, 45, 48, 51, 53, 56, 59, 62, 65, 68},  // Quartile
		{-1, 1, 1, 2, 4, 4, 4, 5, 6, 8, 8, 11, 11, 16, 16, 18, 16, 19, 21, 25, 25, 25, 34, 30, 32, 35, 37, 40, 42, 45, 48, 51, 54, 57, 60, 63, 66, 70, 74, 77, 81}, // High
	}

	// numDataCodewordsTable[ecl][version] is precomputed in init.
	numDataCodewordsTable [4][41]int

	// numRawDataModulesTable[version] is precomputed in init.
	numRawDataModulesTable [41]int

	// alignmentPatternPositionsTable[version] is precomputed in init.
	alignmentPatternPositionsTable [41][]int
)

func init() {
	for v := 1; v <= 40; v++ {
		numRawDataModulesTable[v] = computeRawDataModules(Version(v))
	}

	for e := Low; e <= High; e++ {
		for v := 1; v <= 40; v++ {
			numDataCodewordsTable[e][v] = dataCodewords(Version(v), e)
		}
	}

	degrees := make(map[int]bool)
	for e := 0; e < 4; e++ {
		for v := 1; v <= 40; v++ {
			degrees[eccCodewordsPerBlock[e][v]] = true
		}
	}
	for d := range degrees {
		reedSolomonDivisors[d] = reedSolomonComputeDivisor(d)
	}

	for v := 1; v <= 40; v++ {
		alignmentPatternPositionsTable[v] = computeAlignmentPatternPositions(Version(v))
	}
}

// computeRawDataModules returns the number of data bits available in a
// symbol of the given version after all function modules are excluded.
// This includes remainder bits, so the result is not always a multiple of
// 8. Always in [208, 29648].
func computeRawDataModules(v Version) int {
	result := (16*int(v)+128)*int(v) + 64
	if v >= 2 {
		numAlign := int(v)/7 + 2
		result -= (25*numAlign-10)*numAlign - 55
		if v >= 7 {
			result -= 36
		}
	}
	return result
}

// rawDataModules returns the precomputed value of computeRawDataModules(v).
func rawDataModules(v Version) int {
	return numRawDataModulesTable[v]
}

// dataCodewords returns the number of 8-bit data codewords (ECC codewords
// excluded) available in a symbol of the given version and ECL.
func dataCodewords(v Version, ecl ECL) int {
	return rawDataModules(v)/8 - eccCodewordsPerBlock[ecl][v]*numErrorCorrectionBlocks[ecl][v]
}

// alignmentPatternPositions returns the precomputed ascending list of
// alignment-pattern center coordinates (used on both axes) for a symbol of
// the given version.
func alignmentPatternPositions(v Version) []int {
	return alignmentPatternPositionsTable[v]
}

// computeAlignmentPatternPositions derives the alignment-pattern axis
// positions for version v, per ISO/IEC 18004. Version 1 has none.
func computeAlignmentPatternPositions(v Version) []int {
	if v == 1 {
		return nil
	}

	numAlign := int(v)/7 + 2
	var step int
	if v == 32 {
		step = 26
	} else {
		size := v.Size()
		step = ceilDiv(size-13, 2*numAlign-2) * 2
	}

	result := make([]int, numAlign)
	result[0] = 6
	pos := v.Size() - 7
	for i := numAlign - 1; i >= 1; i-- {
		result[i] = pos
		pos -= step
	}

	return result
}

// ceilDiv returns ceil(a / b) for positive a, b.
func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
