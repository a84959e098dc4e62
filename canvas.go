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

// canvas is the mutable square grid a SymbolBuilder draws into. dark holds
// the module colors; function marks which cells are function modules
// (finders, timing, alignment, format/version bits) and therefore excluded
// from masking. It is never exposed outside this package: once
// construction finishes, its dark grid is handed over (not copied) to an
// immutable Symbol and the canvas is discarded.
type canvas struct {
	size     int
	dark     [][]bool
	function [][]bool
}

func newCanvas(version Version) *canvas {
	size := version.Size()
	c := &canvas{
		size:     size,
		dark:     make([][]bool, size),
		function: make([][]bool, size),
	}
	for i := range c.dark {
		c.dark[i] = make([]bool, size)
		c.function[i] = make([]bool, size)
	}
	return c
}

// setFunction sets the module at (x, y) and marks it as a function module.
func (c *canvas) setFunction(x, y int, dark bool) {
	c.dark[y][x] = dark
	c.function[y][x] = true
}

// setData sets the module at (x, y) only if it is not already a function
// module; writes to function modules are silently ignored.
func (c *canvas) setData(x, y int, dark bool) {
	if !c.function[y][x] {
		c.dark[y][x] = dark
	}
}

// get returns the module color at (x, y). Coordinates outside [0, size)
// read as light, the "infinite light border" convention.
func (c *canvas) get(x, y int) bool {
	if x < 0 || x >= c.size || y < 0 || y >= c.size {
		return false
	}
	return c.dark[y][x]
}

// isFunction reports whether (x, y) is a function module.
func (c *canvas) isFunction(x, y int) bool {
	return c.function[y][x]
}
