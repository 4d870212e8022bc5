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

func TestAnalyzeMode(t *testing.T) {
	cases := []struct {
		name string
		text string
		want Mode
	}{
		{"digits", "1234567890", Numeric},
		{"alphanumeric upper", "HELLO WORLD", Alphanumeric},
		{"alphanumeric symbols", "HTTP://EXAMPLE.COM", Alphanumeric},
		{"mixed case byte", "Hello, world!", Byte},
		{"url lowercase", "https://example.com", Byte},
		{"empty", "", Numeric},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mode, err := AnalyzeMode(tc.text)
			require.NoError(t, err)
			assert.Equal(t, tc.want, mode)
		})
	}
}

func TestAnalyzeModeIsIdempotentOnReanalysis(t *testing.T) {
	// Re-analyzing text already classified into a mode never chooses a
	// less specific mode.
	texts := []string{"12345", "ABC123", "abc123", "https://example.com"}
	for _, text := range texts {
		first, err := AnalyzeMode(text)
		require.NoError(t, err)
		second, err := AnalyzeMode(text)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	}
}

func TestCharCountBits(t *testing.T) {
	cases := []struct {
		mode Mode
		v    Version
		want int
	}{
		{Numeric, 1, 10},
		{Numeric, 10, 12},
		{Numeric, 27, 14},
		{Alphanumeric, 9, 9},
		{Alphanumeric, 26, 11},
		{Alphanumeric, 40, 13},
		{Byte, 1, 8},
		{Byte, 10, 16},
		{Byte, 40, 16},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.mode.charCountBits(tc.v))
	}
}

func TestIsShiftJISEncodable(t *testing.T) {
	cases := []struct {
		name string
		text string
		want bool
	}{
		{"japanese kanji", "日本語", true},
		{"ascii", "hello", true},
		{"empty", "", false},
		{"emoji has no shift-jis mapping", "😀", false},
		{"invalid utf-8 byte sequence", string([]byte{0xff, 0xfe}), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, isShiftJISEncodable(tc.text))
		})
	}
}

func TestAnalyzeModeReachesUnencodableInputOnInvalidUTF8(t *testing.T) {
	// Invalid UTF-8 that also fails Shift-JIS transcoding exhausts every
	// mode and must surface UnencodableInput rather than silently picking
	// Kanji.
	_, err := AnalyzeMode(string([]byte{0xff, 0xfe}))
	require.Error(t, err)
	var qrErr *Error
	require.ErrorAs(t, err, &qrErr)
	assert.Equal(t, UnencodableInput, qrErr.Kind)
}
