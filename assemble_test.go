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
	"github.com/stretchr/testify/require"
)

// TestAssembleCodewordsIsByteAligned verifies that for every (v,ecl), the
// assembled bitstream is exactly 8*D(v,ecl) bits.
func TestAssembleCodewordsIsByteAligned(t *testing.T) {
	for _, ecl := range []ECL{Low, Medium, Quartile, High} {
		for v := MinVersion; v <= MaxVersion; v += 3 {
			seg := segmentNumeric("1")
			words, err := assembleCodewords(seg, v, ecl)
			require.NoError(t, err)
			assert.Equal(t, numDataCodewords(ecl, v), len(words))
		}
	}
}

func TestAssembleCodewordsPadsWithAlternatingBytes(t *testing.T) {
	seg, err := segmentText("", Numeric)
	require.NoError(t, err)
	words, err := assembleCodewords(seg, 1, Low)
	require.NoError(t, err)

	require.Equal(t, numDataCodewords(Low, 1), len(words))
	// The mode indicator (4 bits), CCI (10 bits), and terminator (4 bits)
	// take 18 bits, bit-padded to the first three bytes; every byte after
	// that must be the alternating pad pattern.
	for i := 3; i < len(words); i++ {
		assert.Equal(t, padCodewords[(i-3)%2], words[i], "byte %d", i)
	}
}

func TestAssembleCodewordsReturnsInputTooLarge(t *testing.T) {
	seg := segmentNumeric("1")
	capacityBits := numDataCodewords(Low, MaxVersion) * 8
	seg.bits = make(bitBuffer, capacityBits+1)
	_, err := assembleCodewords(seg, MaxVersion, Low)
	require.Error(t, err)
	var qrErr *Error
	require.ErrorAs(t, err, &qrErr)
	assert.Equal(t, InputTooLarge, qrErr.Kind)
}
