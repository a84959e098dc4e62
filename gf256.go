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

// gf256Primitive is the QR code's GF(2^8) modulus, x^8 + x^4 + x^3 + x^2 + 1.
const gf256Primitive = 0x11D

// gf256Generator is the generator element used to build Reed-Solomon
// divisor polynomials.
const gf256Generator = 0x02

// gfMul returns the product of x and y in GF(2^8), modulo gf256Primitive.
// Addition in this field is XOR; this is the only multiplication needed by
// the Reed-Solomon code below.
func gfMul(x, y byte) byte {
	// Russian peasant multiplication, reducing by the primitive polynomial
	// whenever the running product overflows 8 bits.
	z := 0
	for i := 7; i >= 0; i-- {
		z = z<<1 ^ z>>7*gf256Primitive
		z ^= int(y>>i&1) * int(x)
	}

	return byte(z)
}
