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
	"regexp"
	"unicode/utf8"

	"golang.org/x/text/encoding/japanese"
)

// Mode is the encoding mode of a QR symbol's single data segment.
type Mode struct {
	name       string
	indicator  int8    // 4-bit mode indicator value.
	ccBits     [3]int8 // Character count indicator width for v<=9, 10<=v<=26, 27<=v<=40.
}

// Mode values, in the priority order AnalyzeMode tries them: the most
// compact feasible mode always wins.
var (
	Numeric      = Mode{"Numeric", 0b0001, [3]int8{10, 12, 14}}
	Alphanumeric = Mode{"Alphanumeric", 0b0010, [3]int8{9, 11, 13}}
	Byte         = Mode{"Byte", 0b0100, [3]int8{8, 16, 16}}
	Kanji        = Mode{"Kanji", 0b1000, [3]int8{8, 10, 12}}
)

func (m Mode) String() string { return m.name }

// charCountBits returns the width, in bits, of the character count
// indicator for this mode at the given version.
func (m Mode) charCountBits(v Version) int {
	switch {
	case v <= 9:
		return int(m.ccBits[0])
	case v <= 26:
		return int(m.ccBits[1])
	default:
		return int(m.ccBits[2])
	}
}

const alphanumericCharset = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ $%*+-./:"

var (
	numericRegexp      = regexp.MustCompile(`^[0-9]*$`)
	alphanumericRegexp = regexp.MustCompile(`^[0-9A-Z $%*+./:-]*$`)
)

// isAlphanumeric reports whether text is entirely drawn from the 45-symbol
// alphanumeric charset. Lowercase letters are not in the charset, so text
// containing them is not alphanumeric.
func isAlphanumeric(text string) bool {
	return alphanumericRegexp.MatchString(text)
}

// AnalyzeMode classifies text into the most compact mode that can encode
// it, in priority order: Numeric > Alphanumeric > Byte > Kanji.
// Kanji is only tried once the UTF-8 test for Byte has failed, so valid
// UTF-8 text, Japanese included, classifies as Byte. Encode refuses to build
// a Kanji segment; see segment.go.
func AnalyzeMode(text string) (Mode, error) {
	if numericRegexp.MatchString(text) {
		return Numeric, nil
	}
	if isAlphanumeric(text) {
		return Alphanumeric, nil
	}
	if utf8.ValidString(text) {
		return Byte, nil
	}
	if isShiftJISEncodable(text) {
		return Kanji, nil
	}
	return Mode{}, newErrorf(UnencodableInput, "text cannot be represented in any supported mode")
}

// isShiftJISEncodable reports whether text transcodes into Shift-JIS without
// error, the same test original_source/unicode_analyze.py's can_encode_kanji
// performs via Python's str.encode('shift_jis'). It is only reached for
// input that already failed UTF-8 validity; this package never produces
// Shift-JIS bytes itself (see segment.go), so this only feeds AnalyzeMode's
// classification, not Encode's data path.
func isShiftJISEncodable(text string) bool {
	if text == "" {
		return false
	}
	_, err := japanese.ShiftJIS.NewEncoder().String(text)
	return err == nil
}
