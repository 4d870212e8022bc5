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

// splitBlocks splits data codewords sequentially into Reed-Solomon blocks
// per the block layout table: each group of the layout contributes that
// many equally-sized blocks, consuming data in order.
func splitBlocks(data []byte, ecl ECL, v Version) [][]byte {
	layout := blockLayout[ecl][v]
	blocks := make([][]byte, 0, numBlocksFor(ecl, v))
	pos := 0
	for _, g := range layout {
		for i := 0; i < g.count; i++ {
			blocks = append(blocks, data[pos:pos+g.dataCodewords])
			pos += g.dataCodewords
		}
	}
	return blocks
}

// addECCAndInterleave splits data into blocks, computes each block's
// Reed-Solomon ECC codewords independently, then interleaves data columns
// followed by ECC columns into a single raw codeword stream of length
// D + n*B.
func addECCAndInterleave(data []byte, ecl ECL, v Version) ([]byte, error) {
	if err := requireInvariant(len(data) == numDataCodewords(ecl, v), "data length %d does not match D(v=%d,ecl=%s)=%d", len(data), v, ecl, numDataCodewords(ecl, v)); err != nil {
		return nil, err
	}

	blocks := splitBlocks(data, ecl, v)
	eccLen := eccPerBlock[ecl][v]
	eccs := make([][]byte, len(blocks))
	maxDataLen := 0
	for i, block := range blocks {
		eccs[i] = rsRemainder(block, eccLen)
		if len(block) > maxDataLen {
			maxDataLen = len(block)
		}
	}

	rawLen := numRawDataModules[v] / 8
	out := make([]byte, 0, rawLen)

	// Interleave data: column-wise pass, skipping blocks with no i-th
	// codeword (short blocks stop contributing earlier).
	for i := 0; i < maxDataLen; i++ {
		for _, block := range blocks {
			if i < len(block) {
				out = append(out, block[i])
			}
		}
	}

	// Interleave ECC: every block's ECC array is the same length.
	for i := 0; i < eccLen; i++ {
		for _, ecc := range eccs {
			out = append(out, ecc[i])
		}
	}

	if err := requireInvariant(len(out) == rawLen, "interleaved length %d does not match raw codeword count %d for version %d", len(out), rawLen, v); err != nil {
		return nil, err
	}
	return out, nil
}
