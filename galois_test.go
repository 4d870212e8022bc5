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

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGfMulWithZero(t *testing.T) {
	assert.Equal(t, byte(0), gfMul(0, 200))
	assert.Equal(t, byte(0), gfMul(200, 0))
}

func TestGfMulIdentity(t *testing.T) {
	for a := 1; a < 256; a++ {
		assert.Equal(t, byte(a), gfMul(byte(a), 1))
	}
}

func TestGfMulIsCommutative(t *testing.T) {
	cases := [][2]byte{{3, 7}, {200, 53}, {1, 255}}
	for _, c := range cases {
		assert.Equal(t, gfMul(c[0], c[1]), gfMul(c[1], c[0]))
	}
}

func TestGfExpLogRoundTrip(t *testing.T) {
	for a := 1; a < 256; a++ {
		assert.Equal(t, byte(a), gfExp[gfLog[byte(a)]])
	}
}

func TestGfPolyMul(t *testing.T) {
	// (x + 1) * (x + 1) = x^2 + 2x + 1, and 2*x in GF(256) with XOR addition
	// means the x^1 coefficient is 1 XOR 1 = 0.
	result := gfPolyMul([]byte{1, 1}, []byte{1, 1})
	assert.Equal(t, []byte{1, 0, 1}, result)
}
