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

// Symbol is an immutable QR code: a square grid of light and dark modules
// together with the version, error correction level, and mask that
// produced it. The zero value is not a valid Symbol; construct one with
// EncodeText, EncodeBinary, or EncodeSegments.
type Symbol struct {
	version Version
	size    int
	ecl     ECL
	mask    Mask
	dark    [][]bool
}

// Version returns the symbol's version, in [1, 40].
func (s *Symbol) Version() Version {
	return s.version
}

// Size returns the symbol's width and height in modules.
func (s *Symbol) Size() int {
	return s.size
}

// ECL returns the error correction level actually used, which may be
// higher than requested if boostECL raised it.
func (s *Symbol) ECL() ECL {
	return s.ecl
}

// Mask returns the mask pattern actually used, in [0, 7].
func (s *Symbol) Mask() Mask {
	return s.mask
}

// GetModule reports whether the module at (x, y) is dark. Coordinates
// outside [0, Size()) return false (light), so downstream renderers can
// query a quiet zone border without bounds-checking first.
func (s *Symbol) GetModule(x, y int) bool {
	if x < 0 || x >= s.size || y < 0 || y >= s.size {
		return false
	}
	return s.dark[y][x]
}

// newSymbol freezes a finished canvas into an immutable Symbol. The
// canvas's function-module flags are dropped here: they were only ever
// needed to keep masking and data placement off function cells during
// construction.
func newSymbol(c *canvas, version Version, ecl ECL, mask Mask) *Symbol {
	return &Symbol{
		version: version,
		size:    c.size,
		ecl:     ecl,
		mask:    mask,
		dark:    c.dark,
	}
}
