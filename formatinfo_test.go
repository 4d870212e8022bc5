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

func TestFormatInfoBitsFitsFifteenBits(t *testing.T) {
	for _, ecl := range []ECL{Low, Medium, Quartile, High} {
		for mask := 0; mask < 8; mask++ {
			bits := formatInfoBits(ecl, mask)
			assert.True(t, bits>>15 == 0, "ecl=%s mask=%d overflowed 15 bits", ecl, mask)
		}
	}
}

func TestFormatInfoBitsAreDistinctPerMaskAndEcl(t *testing.T) {
	seen := map[int]bool{}
	for _, ecl := range []ECL{Low, Medium, Quartile, High} {
		for mask := 0; mask < 8; mask++ {
			bits := formatInfoBits(ecl, mask)
			assert.False(t, seen[bits], "duplicate format info word for ecl=%s mask=%d", ecl, mask)
			seen[bits] = true
		}
	}
}

func TestVersionInfoBitsFitsEighteenBits(t *testing.T) {
	for v := Version(7); v <= MaxVersion; v++ {
		bits := versionInfoBits(v)
		assert.True(t, bits>>18 == 0, "version %d overflowed 18 bits", v)
		assert.Equal(t, int(v), bits>>12, "version field of version %d", v)
	}
}

func TestWriteVersionInfoBitsNoopBelowVersion7(t *testing.T) {
	m, _ := buildTemplate(6)
	before := cloneBoolGrid(m.written)
	writeVersionInfoBits(m, 6)
	assert.Equal(t, before, m.written)
}

func TestWriteFormatInfoBitsRoundTripsThroughReservedCells(t *testing.T) {
	v := Version(1)
	m, _ := buildTemplate(v)
	writeFormatInfoBits(m, Quartile, 5)
	bits := formatInfoBits(Quartile, 5)

	for i := 0; i <= 5; i++ {
		assert.Equal(t, bitSet(bits, i), m.At(i, 8))
	}
	assert.Equal(t, bitSet(bits, 6), m.At(7, 8))
	assert.Equal(t, bitSet(bits, 7), m.At(8, 8))
	assert.Equal(t, bitSet(bits, 8), m.At(8, 7))
}
