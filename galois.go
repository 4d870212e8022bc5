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
 *
 * GF(256) arithmetic for Reed-Solomon error correction, defined by the
 * primitive polynomial x^8+x^4+x^3+x^2+1 (0x11D) and generator alpha=2.
 */

package qrcode

const gfPrimitive = 0x11D

// gfExp[i] = alpha^i for i in [0, 510]; the table is doubled past 255 so
// multiplication never needs a modulo on the exponent sum.
var gfExp [512]byte

// gfLog[a] = i such that alpha^i = a, for a in [1, 255]. gfLog[0] is unused.
var gfLog [256]byte

func init() {
	x := 1
	for i := 0; i < 255; i++ {
		gfExp[i] = byte(x)
		gfLog[x] = byte(i)
		x <<= 1
		if x >= 256 {
			x ^= gfPrimitive
		}
	}
	for i := 255; i < 512; i++ {
		gfExp[i] = gfExp[i-255]
	}
}

// gfMul multiplies two GF(256) elements.
func gfMul(a, b byte) byte {
	if a == 0 || b == 0 {
		return 0
	}
	return gfExp[int(gfLog[a])+int(gfLog[b])]
}

// gfPolyMul convolves two polynomials (low-order-first coefficients) over
// GF(256); addition is XOR.
func gfPolyMul(p, q []byte) []byte {
	result := make([]byte, len(p)+len(q)-1)
	for i, pc := range p {
		if pc == 0 {
			continue
		}
		for j, qc := range q {
			result[i+j] ^= gfMul(pc, qc)
		}
	}
	return result
}
