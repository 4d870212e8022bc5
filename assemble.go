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

// padCodewords alternates starting with 0xEC.
var padCodewords = [2]byte{0xEC, 0x11}

// assembleCodewords builds mode indicator + character count indicator +
// data bits + terminator + bit padding + byte padding, byte aligned to
// exactly 8*D(v,ecl) bits.
func assembleCodewords(seg segment, v Version, ecl ECL) ([]byte, error) {
	capacityBits := numDataCodewords(ecl, v) * 8

	bb := make(bitBuffer, 0, capacityBits)
	bb.appendBits(int(seg.mode.indicator), 4)

	ccBits := seg.mode.charCountBits(v)
	if seg.numChars >= 1<<uint(ccBits) {
		return nil, invariant("character count %d overflows %d-bit CCI field for mode %v at version %d", seg.numChars, ccBits, seg.mode, v)
	}
	bb.appendBits(seg.numChars, ccBits)

	bb = append(bb, seg.bits...)

	if len(bb) > capacityBits {
		return nil, newErrorf(InputTooLarge, "payload needs %d bits but version %d at ECL %s only has %d", len(bb), v, ecl, capacityBits)
	}

	// Terminator: up to 4 zero bits, never past capacity.
	term := capacityBits - len(bb)
	if term > 4 {
		term = 4
	}
	bb.appendBits(0, term)

	// Bit pad to a byte boundary.
	if rem := len(bb) % 8; rem != 0 {
		bb.appendBits(0, 8-rem)
	}
	if err := requireInvariant(len(bb)%8 == 0, "bitstream length %d is not byte-aligned after padding", len(bb)); err != nil {
		return nil, err
	}

	// Byte pad with the alternating pattern until capacity is reached.
	for i := 0; len(bb) < capacityBits; i++ {
		bb.appendBits(int(padCodewords[i%2]), 8)
	}

	if err := requireInvariant(len(bb) == capacityBits, "bitstream length %d does not equal capacity %d after byte padding", len(bb), capacityBits); err != nil {
		return nil, err
	}

	return bb.toCodewords(), nil
}
