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

// ECL is the error correction level of a QR code symbol.
type ECL int8

// ECL values, ordered to match the table row order in tables.go.
const (
	Low      ECL = iota // Recovers ~7% of data.
	Medium              // Recovers ~15% of data.
	Quartile            // Recovers ~25% of data.
	High                // Recovers ~30% of data.
)

func (e ECL) String() string {
	switch e {
	case Low:
		return "L"
	case Medium:
		return "M"
	case Quartile:
		return "Q"
	case High:
		return "H"
	default:
		return "invalid"
	}
}

// formatBits is the 2-bit code used in the 15-bit format information word.
// Note this is not the same as the ECL's index into the tables in
// tables.go: the standard assigns these codes in a different order than it
// lists the ECLs.
func (e ECL) formatBits() int {
	switch e {
	case Low:
		return 0b01
	case Medium:
		return 0b00
	case Quartile:
		return 0b11
	case High:
		return 0b10
	default:
		panic("invalid error correction level")
	}
}

func validateECL(e ECL) error {
	if e < Low || e > High {
		return newErrorf(InvalidEcl, "ecl %d is not one of L, M, Q, H", int8(e))
	}
	return nil
}
