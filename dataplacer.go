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

// drawCodewords writes the given codewords (data followed by interleaved
// ECC) onto every non-function module of the canvas, using the standard
// boustrophedon ("zig-zag") column-pair scan. Function modules must
// already be marked before this runs. Any trailing 0..7 bits that don't
// fill a full module are left as they were (light).
func drawCodewords(c *canvas, data []byte) {
	i := 0 // Bit index into data.

	for right := c.size - 1; right >= 1; right -= 2 {
		if right == 6 {
			right = 5
		}
		for vert := 0; vert < c.size; vert++ {
			for j := 0; j < 2; j++ {
				x := right - j
				upward := (right+1)&2 == 0

				var y int
				if upward {
					y = c.size - 1 - vert
				} else {
					y = vert
				}

				if !c.isFunction(x, y) && i < len(data)*8 {
					bit := data[i>>3] >> (7 - i&7) & 1
					c.setData(x, y, bit == 1)
					i++
				}
			}
		}
	}
}
