/*
 * Copyright © 2026 The qrencode Authors.
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

package qrcode

// rsGeneratorPoly computes gen(x) = product over i in [0, n) of (x + alpha^i),
// with coefficients stored low-order-first: result[0] is the x^0
// coefficient and result[n] (always 1) is the leading term. Memoized per
// degree since the same (ecl, version) degree repeats across many blocks
// and many versions.
var rsGeneratorCache = map[int][]byte{}

func rsGeneratorPoly(n int) []byte {
	if g, ok := rsGeneratorCache[n]; ok {
		return g
	}
	gen := []byte{1} // The constant polynomial 1.
	for i := 0; i < n; i++ {
		// Multiply gen by (x + alpha^i), i.e. by {alpha^i, 1} low-order-first.
		gen = gfPolyMul(gen, []byte{gfExp[i], 1})
	}
	rsGeneratorCache[n] = gen
	return gen
}

// rsRemainder computes the n Reed-Solomon error correction codewords for
// data: the remainder of data*x^n divided by gen(x) in GF(256), via
// classical synthetic (shift-register) division. Returns exactly n
// codewords regardless of leading zeros.
//
// The shift register below walks high-order-first -- reg[0] holds the
// coefficient of x^(n-1), the next one to be eliminated -- so it is fed the
// reverse of gen's low-order-first coefficients (excluding the implicit
// leading 1, which only ever cancels the term it introduces).
func rsRemainder(data []byte, n int) []byte {
	gen := rsGeneratorPoly(n)
	reg := make([]byte, n)
	for i := 0; i < len(data); i++ {
		factor := data[i] ^ reg[0]
		copy(reg, reg[1:])
		reg[n-1] = 0
		if factor == 0 {
			continue
		}
		for j := 0; j < n; j++ {
			reg[j] ^= gfMul(gen[n-1-j], factor)
		}
	}
	return reg
}
