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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestEncodeHelloWorld checks that "HELLO WORLD" at Q fits version 1 in
// Alphanumeric mode, producing a 21x21 matrix.
func TestEncodeHelloWorld(t *testing.T) {
	mode, err := AnalyzeMode("HELLO WORLD")
	require.NoError(t, err)
	require.Equal(t, Alphanumeric, mode)

	m, err := Encode("HELLO WORLD", Quartile)
	require.NoError(t, err)
	assert.Equal(t, 21, m.Size)
	assertNoHoles(t, m)
}

// TestEncodeNumericFirstBits checks that "1234567890" at L is Numeric mode
// with a 10-bit character count indicator at version 1, and the first data
// bits are the mode indicator 0001, then the 10-bit CCI for 10 chars
// (0000001010), then the first numeric group.
func TestEncodeNumericFirstBits(t *testing.T) {
	mode, err := AnalyzeMode("1234567890")
	require.NoError(t, err)
	require.Equal(t, Numeric, mode)
	assert.Equal(t, 10, mode.charCountBits(1))

	seg, err := segmentText("1234567890", mode)
	require.NoError(t, err)

	bb := make(bitBuffer, 0)
	bb.appendBits(int(mode.indicator), 4)
	bb.appendBits(seg.numChars, mode.charCountBits(1))
	bb = append(bb, seg.bits...)

	expectedPrefix := make(bitBuffer, 0)
	expectedPrefix.appendBits(0b0001, 4)
	expectedPrefix.appendBits(10, 10)
	expectedPrefix.appendBits(123, 10)

	assert.Equal(t, []byte(expectedPrefix), []byte(bb[:len(expectedPrefix)]))

	m, err := Encode("1234567890", Low)
	require.NoError(t, err)
	assert.Equal(t, 21, m.Size)
}

// TestEncodeEmptyString checks that the empty string still produces a
// valid version-1 symbol whose bitstream is the mode indicator, a zero
// character count, the terminator, and pad bytes.
func TestEncodeEmptyString(t *testing.T) {
	seg, err := segmentText("", Numeric)
	require.NoError(t, err)
	words, err := assembleCodewords(seg, 1, Low)
	require.NoError(t, err)

	// Mode indicator 0001, a 10-bit all-zero CCI and the 4-bit terminator
	// fill 18 bits, bit-padded to three bytes; then the pad alternation.
	for i := 3; i < len(words); i++ {
		assert.Equal(t, padCodewords[(i-3)%2], words[i])
	}

	m, err := Encode("", Low)
	require.NoError(t, err)
	assert.Equal(t, 21, m.Size)
	assertNoHoles(t, m)
}

// TestEncodeLargeNumericPayload checks that 7089 decimal digits at L
// requires version 40, the largest symbol.
func TestEncodeLargeNumericPayload(t *testing.T) {
	digits := strings.Repeat("1234567890", 709)[:7089]
	m, err := Encode(digits, Low)
	require.NoError(t, err)
	assert.Equal(t, MaxVersion.size(), m.Size)
}

// TestEncodeBytesAtMediumEcl checks that 256 ASCII bytes (control
// characters and lowercase included, so only Byte mode fits) at M pick the
// smallest version whose data capacity covers the payload: version 12.
func TestEncodeBytesAtMediumEcl(t *testing.T) {
	data := make([]byte, 256)
	for i := range data {
		data[i] = byte(i % 128)
	}
	text := string(data)

	mode, err := AnalyzeMode(text)
	require.NoError(t, err)
	assert.Equal(t, Byte, mode)

	m, err := Encode(text, Medium)
	require.NoError(t, err)
	assert.Equal(t, Version(12).size(), m.Size)
	assertNoHoles(t, m)
}

// TestEncodeURLDarkModule checks that the dark module at (4v+9, 8) is
// always set, regardless of mask selection.
func TestEncodeURLDarkModule(t *testing.T) {
	mode, err := AnalyzeMode("https://example.com")
	require.NoError(t, err)
	require.Equal(t, Byte, mode)

	m, err := Encode("https://example.com", High)
	require.NoError(t, err)

	v := Version((m.Size - 17) / 4)
	assert.True(t, m.At(4*int(v)+9, 8))
}

func TestEncodeInvalidEcl(t *testing.T) {
	_, err := Encode("test", ECL(99))
	require.Error(t, err)
	var qrErr *Error
	require.ErrorAs(t, err, &qrErr)
	assert.Equal(t, InvalidEcl, qrErr.Kind)
}

func TestEncodeUnencodableInput(t *testing.T) {
	_, err := Encode("\xff\xfe not valid utf8", Low)
	require.Error(t, err)
	var qrErr *Error
	require.ErrorAs(t, err, &qrErr)
	assert.Equal(t, UnencodableInput, qrErr.Kind)
}

func TestEncodeWithForcedMask(t *testing.T) {
	m, err := Encode("HELLO", Low, WithMask(2))
	require.NoError(t, err)
	assertNoHoles(t, m)
}

func TestEncodeRespectsMinVersion(t *testing.T) {
	m, err := Encode("1", Low, WithMinVersion(5))
	require.NoError(t, err)
	assert.Equal(t, Version(5).size(), m.Size)
}

// TestEncodeIsDeterministic verifies end to end that encoding the same
// input twice always chooses the same mask.
func TestEncodeIsDeterministic(t *testing.T) {
	m1, err := Encode("Determinism matters", Medium)
	require.NoError(t, err)
	m2, err := Encode("Determinism matters", Medium)
	require.NoError(t, err)
	assert.Equal(t, m1.dark, m2.dark)
}

// assertNoHoles verifies that the final matrix contains only committed
// modules, never a leftover unwritten cell.
func assertNoHoles(t *testing.T, m *Matrix) {
	t.Helper()
	for r := 0; r < m.Size; r++ {
		for c := 0; c < m.Size; c++ {
			assert.True(t, m.written[r][c], "cell (%d,%d) was never written", r, c)
		}
	}
}
