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

// reedSolomonDivisors caches the generator polynomial for every ECC degree
// actually used by the capacity tables, keyed by degree. It is populated
// once in init (see capacity.go) before any exported function can run, so
// reads from multiple goroutines afterward need no further synchronization.
var reedSolomonDivisors = make(map[int][]byte)

// reedSolomonComputeDivisor builds the Reed-Solomon generator polynomial of
// the given degree: the product (x - r^0)(x - r^1)...(x - r^(degree-1))
// over GF(2^8), where r = gf256Generator. The leading coefficient (always
// 1) is dropped; the result holds the remaining `degree` coefficients,
// highest power first.
func reedSolomonComputeDivisor(degree int) []byte {
	if degree < 1 || degree > 255 {
		panic("degree out of range")
	}

	result := make([]byte, degree)
	result[degree-1] = 1 // Start with the monomial x^0.

	root := byte(1)
	for i := 0; i < degree; i++ {
		// Multiply the running product by (x - root).
		for j := 0; j < len(result); j++ {
			result[j] = gfMul(result[j], root)
			if j+1 < len(result) {
				result[j] ^= result[j+1]
			}
		}
		root = gfMul(root, gf256Generator)
	}

	return result
}

// reedSolomonComputeRemainder performs polynomial long division of data by
// divisor over GF(2^8) and returns the len(divisor) remainder bytes — the
// ECC codewords for that block.
func reedSolomonComputeRemainder(data, divisor []byte) []byte {
	result := make([]byte, len(divisor))
	for _, b := range data {
		factor := b ^ result[0]
		copy(result, result[1:])
		result[len(result)-1] = 0
		for i := 0; i < len(result); i++ {
			result[i] ^= gfMul(divisor[i], factor)
		}
	}

	return result
}
