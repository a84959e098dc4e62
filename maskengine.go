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

import "math"

// Penalty weights for the four penalty-score components.
const (
	penaltyN1 = 3
	penaltyN2 = 3
	penaltyN3 = 40
	penaltyN4 = 10
)

// invert reports whether mask inverts the module at (x, y).
func invert(x, y int, mask Mask) bool {
	switch mask {
	case 0:
		return (x+y)%2 == 0
	case 1:
		return y%2 == 0
	case 2:
		return x%3 == 0
	case 3:
		return (x+y)%3 == 0
	case 4:
		return (x/3+y/2)%2 == 0
	case 5:
		return x*y%2+x*y%3 == 0
	case 6:
		return (x*y%2+x*y%3)%2 == 0
	case 7:
		return ((x+y)%2+x*y%3)%2 == 0
	default:
		panic("illegal mask value")
	}
}

// applyMask XORs the given mask's predicate into every non-function
// module. Calling this twice with the same mask is a no-op.
func applyMask(c *canvas, mask Mask) {
	for y := 0; y < c.size; y++ {
		for x := 0; x < c.size; x++ {
			if c.isFunction(x, y) {
				continue
			}
			if invert(x, y, mask) {
				c.dark[y][x] = !c.dark[y][x]
			}
		}
	}
}

// chooseMask applies and finalizes masking. If requested is autoMask, it
// tries every mask, scores the penalty, and keeps the lowest-penalty mask
// (ties broken by the lowest mask index); otherwise it applies exactly the
// requested mask. Either way, the chosen mask's format bits are stamped
// last, and the mask itself is left applied.
func chooseMask(c *canvas, ecl ECL, requested Mask) Mask {
	mask := requested
	if requested == autoMask {
		minPenalty := math.MaxInt32
		for m := Mask(0); m < 8; m++ {
			applyMask(c, m)
			drawFormatBits(c, ecl, m)
			penalty := penaltyScore(c)
			if penalty < minPenalty {
				mask = m
				minPenalty = penalty
			}
			applyMask(c, m) // Undo — XOR is its own inverse.
		}
	}

	if mask < 0 || mask > 7 {
		panic("illegal mask value")
	}

	applyMask(c, mask)
	drawFormatBits(c, ecl, mask)
	return mask
}

// penaltyScore computes the total penalty score (N1+N2+N3+N4) for the
// canvas's current module colors.
func penaltyScore(c *canvas) int {
	result := 0

	// N1: same-color runs (and finder-like patterns), by row.
	for y := 0; y < c.size; y++ {
		runColor := false
		runLen := 0
		var history [7]int
		for x := 0; x < c.size; x++ {
			if c.dark[y][x] == runColor {
				runLen++
				if runLen == 5 {
					result += penaltyN1
				} else if runLen > 5 {
					result++
				}
			} else {
				finderPenaltyAddHistory(c, runLen, &history)
				if !runColor {
					result += finderPenaltyCountPatterns(c, &history) * penaltyN3
				}
				runColor = c.dark[y][x]
				runLen = 1
			}
		}
		result += finderPenaltyTerminateAndCount(c, runColor, runLen, &history) * penaltyN3
	}

	// N1: same-color runs (and finder-like patterns), by column.
	for x := 0; x < c.size; x++ {
		runColor := false
		runLen := 0
		var history [7]int
		for y := 0; y < c.size; y++ {
			if c.dark[y][x] == runColor {
				runLen++
				if runLen == 5 {
					result += penaltyN1
				} else if runLen > 5 {
					result++
				}
			} else {
				finderPenaltyAddHistory(c, runLen, &history)
				if !runColor {
					result += finderPenaltyCountPatterns(c, &history) * penaltyN3
				}
				runColor = c.dark[y][x]
				runLen = 1
			}
		}
		result += finderPenaltyTerminateAndCount(c, runColor, runLen, &history) * penaltyN3
	}

	// N2: 2x2 blocks of one color.
	for y := 0; y < c.size-1; y++ {
		for x := 0; x < c.size-1; x++ {
			color := c.dark[y][x]
			if color == c.dark[y][x+1] && color == c.dark[y+1][x] && color == c.dark[y+1][x+1] {
				result += penaltyN2
			}
		}
	}

	// N4: dark/light balance.
	dark := 0
	for y := 0; y < c.size; y++ {
		for x := 0; x < c.size; x++ {
			if c.dark[y][x] {
				dark++
			}
		}
	}
	total := c.size * c.size
	k := (absInt(dark*20-total*10)+total-1)/total - 1
	result += k * penaltyN4

	return result
}

// finderPenaltyAddHistory pushes runLength to the front of the run-length
// history, dropping the oldest entry. The very first run (history[0]==0,
// meaning nothing has been recorded yet) is padded with an implicit light
// border the width of the whole symbol, so that finder-like patterns
// touching the edge of the symbol are still detected.
func finderPenaltyAddHistory(c *canvas, runLength int, history *[7]int) {
	if history[0] == 0 {
		runLength += c.size
	}
	copy(history[1:], history[:6])
	history[0] = runLength
}

// finderPenaltyCountPatterns scores the current history against the
// 1:1:3:1:1 finder-like ratio, counting it once for each side (left/right
// or top/bottom) that has at least 4 units of opposite-color padding.
func finderPenaltyCountPatterns(c *canvas, history *[7]int) int {
	n := history[1]
	if n > c.size*3 {
		panic("bad run history")
	}
	core := n > 0 && history[2] == n && history[3] == n*3 && history[4] == n && history[5] == n

	count := 0
	if core && history[0] >= n*4 && history[6] >= n {
		count++
	}
	if core && history[6] >= n*4 && history[0] >= n {
		count++
	}
	return count
}

// finderPenaltyTerminateAndCount finishes a row or column scan: it closes
// out the final run (padding it with an implicit light border, matching
// finderPenaltyAddHistory's treatment of the first run) and scores it.
func finderPenaltyTerminateAndCount(c *canvas, runColor bool, runLength int, history *[7]int) int {
	if runColor {
		finderPenaltyAddHistory(c, runLength, history)
		runLength = 0
	}
	runLength += c.size
	finderPenaltyAddHistory(c, runLength, history)
	return finderPenaltyCountPatterns(c, history)
}
