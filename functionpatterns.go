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

// formatGeneratorPoly and formatXorMask implement the BCH(15,5) code used
// to protect the 5-bit (ecl, mask) format word.
const (
	formatGeneratorPoly = 0x537
	formatXorMask       = 0x5412
)

// versionGeneratorPoly implements the BCH(18,6) code used to protect the
// 6-bit version number, for versions 7 and up.
const versionGeneratorPoly = 0x1F25

// drawFunctionPatterns draws every function module (timing, finders,
// alignment, placeholder format bits, and version bits) onto the canvas,
// marking each as a function module.
func drawFunctionPatterns(c *canvas, version Version) {
	// Timing patterns.
	for i := 0; i < c.size; i++ {
		c.setFunction(6, i, i%2 == 0)
		c.setFunction(i, 6, i%2 == 0)
	}

	// Finder patterns, all corners except bottom-right.
	drawFinderPattern(c, 3, 3)
	drawFinderPattern(c, c.size-4, 3)
	drawFinderPattern(c, 3, c.size-4)

	// Alignment patterns.
	positions := alignmentPatternPositions(version)
	numAlign := len(positions)
	for i := 0; i < numAlign; i++ {
		for j := 0; j < numAlign; j++ {
			if i == 0 && j == 0 || i == 0 && j == numAlign-1 || i == numAlign-1 && j == 0 {
				continue // Skip the three finder corners.
			}
			drawAlignmentPattern(c, positions[i], positions[j])
		}
	}

	// Format bits are a placeholder (Low, mask 0), overwritten once the mask
	// is chosen; version bits are final.
	drawFormatBits(c, Low, 0)
	drawVersionBits(c, version)
}

// drawFinderPattern draws a 9x9 finder pattern (including its border
// separator), centered at (x, y).
func drawFinderPattern(c *canvas, x, y int) {
	for dy := -4; dy <= 4; dy++ {
		for dx := -4; dx <= 4; dx++ {
			dist := maxInt(absInt(dx), absInt(dy))
			xx, yy := x+dx, y+dy
			if xx >= 0 && xx < c.size && yy >= 0 && yy < c.size {
				c.setFunction(xx, yy, dist != 2 && dist != 4)
			}
		}
	}
}

// drawAlignmentPattern draws a 5x5 alignment pattern, centered at (x, y).
func drawAlignmentPattern(c *canvas, x, y int) {
	for dy := -2; dy <= 2; dy++ {
		for dx := -2; dx <= 2; dx++ {
			c.setFunction(x+dx, y+dy, maxInt(absInt(dx), absInt(dy)) != 1)
		}
	}
}

// drawFormatBits computes and draws the two copies of the 15-bit format
// word (ECL + mask, BCH-protected) plus the permanently dark module.
func drawFormatBits(c *canvas, ecl ECL, mask Mask) {
	data := ecl.formatBits()<<3 | int(mask)
	rem := data
	for i := 0; i < 10; i++ {
		rem = rem<<1 ^ rem>>9*formatGeneratorPoly
	}
	bits := data<<10 | rem ^ formatXorMask
	if bits>>15 != 0 {
		panic("incorrect format bits calculation")
	}

	// First copy.
	for i := 0; i <= 5; i++ {
		c.setFunction(8, i, bitSet(bits, i))
	}
	c.setFunction(8, 7, bitSet(bits, 6))
	c.setFunction(8, 8, bitSet(bits, 7))
	c.setFunction(7, 8, bitSet(bits, 8))
	for i := 9; i < 15; i++ {
		c.setFunction(14-i, 8, bitSet(bits, i))
	}

	// Second copy.
	for i := 0; i < 8; i++ {
		c.setFunction(c.size-1-i, 8, bitSet(bits, i))
	}
	for i := 8; i < 15; i++ {
		c.setFunction(8, c.size-15+i, bitSet(bits, i))
	}

	c.setFunction(8, c.size-8, true) // Always dark.
}

// drawVersionBits computes and draws the two copies of the 18-bit version
// word (BCH-protected), for versions 7 and up; a no-op below version 7.
func drawVersionBits(c *canvas, version Version) {
	if version < 7 {
		return
	}

	rem := int(version)
	for i := 0; i < 12; i++ {
		rem = rem<<1 ^ rem>>11*versionGeneratorPoly
	}
	bits := int(version)<<12 | rem
	if bits>>18 != 0 {
		panic("incorrect version bits calculation")
	}

	for i := 0; i < 18; i++ {
		bit := bitSet(bits, i)
		a := c.size - 11 + i%3
		b := i / 3
		c.setFunction(a, b, bit)
		c.setFunction(b, a, bit)
	}
}

func bitSet(x, i int) bool {
	return x>>i&1 == 1
}

func absInt(a int) int {
	if a < 0 {
		return -a
	}
	return a
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
