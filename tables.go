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
 * Tables in this file are copied verbatim from ISO/IEC 18004 (ECC codeword
 * counts, block structure, alignment pattern centers). They are not derived
 * by formula at runtime: the standard has version-specific exceptions (most
 * famously version 32's alignment pattern spacing) that a clean formula
 * does not reproduce on its own.
 */

package qrcode

// blockGroup is one group of equally-sized Reed-Solomon blocks within a
// version+ECL's data layout.
type blockGroup struct {
	count         int
	dataCodewords int
}

// blockLayout maps (ecl, version) to the list of block groups the data
// codewords split into: each group is (count of blocks, data codewords per
// block in that group). Index 0 on each axis is unused padding. Row order
// matches the ECL iota order in ecl.go: Low, Medium, Quartile, High.
var blockLayout = [4][41][]blockGroup{
	{ // Low
		{}, // version 0 unused
		{{count: 1, dataCodewords: 19}}, // version 1
		{{count: 1, dataCodewords: 34}}, // version 2
		{{count: 1, dataCodewords: 55}}, // version 3
		{{count: 1, dataCodewords: 80}}, // version 4
		{{count: 1, dataCodewords: 108}}, // version 5
		{{count: 2, dataCodewords: 68}}, // version 6
		{{count: 2, dataCodewords: 78}}, // version 7
		{{count: 2, dataCodewords: 97}}, // version 8
		{{count: 2, dataCodewords: 116}}, // version 9
		{{count: 2, dataCodewords: 68}, {count: 2, dataCodewords: 69}}, // version 10
		{{count: 4, dataCodewords: 81}}, // version 11
		{{count: 2, dataCodewords: 92}, {count: 2, dataCodewords: 93}}, // version 12
		{{count: 4, dataCodewords: 107}}, // version 13
		{{count: 3, dataCodewords: 115}, {count: 1, dataCodewords: 116}}, // version 14
		{{count: 5, dataCodewords: 87}, {count: 1, dataCodewords: 88}}, // version 15
		{{count: 5, dataCodewords: 98}, {count: 1, dataCodewords: 99}}, // version 16
		{{count: 1, dataCodewords: 107}, {count: 5, dataCodewords: 108}}, // version 17
		{{count: 5, dataCodewords: 120}, {count: 1, dataCodewords: 121}}, // version 18
		{{count: 3, dataCodewords: 113}, {count: 4, dataCodewords: 114}}, // version 19
		{{count: 3, dataCodewords: 107}, {count: 5, dataCodewords: 108}}, // version 20
		{{count: 4, dataCodewords: 116}, {count: 4, dataCodewords: 117}}, // version 21
		{{count: 2, dataCodewords: 111}, {count: 7, dataCodewords: 112}}, // version 22
		{{count: 4, dataCodewords: 121}, {count: 5, dataCodewords: 122}}, // version 23
		{{count: 6, dataCodewords: 117}, {count: 4, dataCodewords: 118}}, // version 24
		{{count: 8, dataCodewords: 106}, {count: 4, dataCodewords: 107}}, // version 25
		{{count: 10, dataCodewords: 114}, {count: 2, dataCodewords: 115}}, // version 26
		{{count: 8, dataCodewords: 122}, {count: 4, dataCodewords: 123}}, // version 27
		{{count: 3, dataCodewords: 117}, {count: 10, dataCodewords: 118}}, // version 28
		{{count: 7, dataCodewords: 116}, {count: 7, dataCodewords: 117}}, // version 29
		{{count: 5, dataCodewords: 115}, {count: 10, dataCodewords: 116}}, // version 30
		{{count: 13, dataCodewords: 115}, {count: 3, dataCodewords: 116}}, // version 31
		{{count: 17, dataCodewords: 115}}, // version 32
		{{count: 17, dataCodewords: 115}, {count: 1, dataCodewords: 116}}, // version 33
		{{count: 13, dataCodewords: 115}, {count: 6, dataCodewords: 116}}, // version 34
		{{count: 12, dataCodewords: 121}, {count: 7, dataCodewords: 122}}, // version 35
		{{count: 6, dataCodewords: 121}, {count: 14, dataCodewords: 122}}, // version 36
		{{count: 17, dataCodewords: 122}, {count: 4, dataCodewords: 123}}, // version 37
		{{count: 4, dataCodewords: 122}, {count: 18, dataCodewords: 123}}, // version 38
		{{count: 20, dataCodewords: 117}, {count: 4, dataCodewords: 118}}, // version 39
		{{count: 19, dataCodewords: 118}, {count: 6, dataCodewords: 119}}, // version 40
	},
	{ // Medium
		{}, // version 0 unused
		{{count: 1, dataCodewords: 16}}, // version 1
		{{count: 1, dataCodewords: 28}}, // version 2
		{{count: 1, dataCodewords: 44}}, // version 3
		{{count: 2, dataCodewords: 32}}, // version 4
		{{count: 2, dataCodewords: 43}}, // version 5
		{{count: 4, dataCodewords: 27}}, // version 6
		{{count: 4, dataCodewords: 31}}, // version 7
		{{count: 2, dataCodewords: 38}, {count: 2, dataCodewords: 39}}, // version 8
		{{count: 3, dataCodewords: 36}, {count: 2, dataCodewords: 37}}, // version 9
		{{count: 4, dataCodewords: 43}, {count: 1, dataCodewords: 44}}, // version 10
		{{count: 1, dataCodewords: 50}, {count: 4, dataCodewords: 51}}, // version 11
		{{count: 6, dataCodewords: 36}, {count: 2, dataCodewords: 37}}, // version 12
		{{count: 8, dataCodewords: 37}, {count: 1, dataCodewords: 38}}, // version 13
		{{count: 4, dataCodewords: 40}, {count: 5, dataCodewords: 41}}, // version 14
		{{count: 5, dataCodewords: 41}, {count: 5, dataCodewords: 42}}, // version 15
		{{count: 7, dataCodewords: 45}, {count: 3, dataCodewords: 46}}, // version 16
		{{count: 10, dataCodewords: 46}, {count: 1, dataCodewords: 47}}, // version 17
		{{count: 9, dataCodewords: 43}, {count: 4, dataCodewords: 44}}, // version 18
		{{count: 3, dataCodewords: 44}, {count: 11, dataCodewords: 45}}, // version 19
		{{count: 3, dataCodewords: 41}, {count: 13, dataCodewords: 42}}, // version 20
		{{count: 17, dataCodewords: 42}}, // version 21
		{{count: 17, dataCodewords: 46}}, // version 22
		{{count: 4, dataCodewords: 47}, {count: 14, dataCodewords: 48}}, // version 23
		{{count: 6, dataCodewords: 45}, {count: 14, dataCodewords: 46}}, // version 24
		{{count: 8, dataCodewords: 47}, {count: 13, dataCodewords: 48}}, // version 25
		{{count: 19, dataCodewords: 46}, {count: 4, dataCodewords: 47}}, // version 26
		{{count: 22, dataCodewords: 45}, {count: 3, dataCodewords: 46}}, // version 27
		{{count: 3, dataCodewords: 45}, {count: 23, dataCodewords: 46}}, // version 28
		{{count: 21, dataCodewords: 45}, {count: 7, dataCodewords: 46}}, // version 29
		{{count: 19, dataCodewords: 47}, {count: 10, dataCodewords: 48}}, // version 30
		{{count: 2, dataCodewords: 46}, {count: 29, dataCodewords: 47}}, // version 31
		{{count: 10, dataCodewords: 46}, {count: 23, dataCodewords: 47}}, // version 32
		{{count: 14, dataCodewords: 46}, {count: 21, dataCodewords: 47}}, // version 33
		{{count: 14, dataCodewords: 46}, {count: 23, dataCodewords: 47}}, // version 34
		{{count: 12, dataCodewords: 47}, {count: 26, dataCodewords: 48}}, // version 35
		{{count: 6, dataCodewords: 47}, {count: 34, dataCodewords: 48}}, // version 36
		{{count: 29, dataCodewords: 46}, {count: 14, dataCodewords: 47}}, // version 37
		{{count: 13, dataCodewords: 46}, {count: 32, dataCodewords: 47}}, // version 38
		{{count: 40, dataCodewords: 47}, {count: 7, dataCodewords: 48}}, // version 39
		{{count: 18, dataCodewords: 47}, {count: 31, dataCodewords: 48}}, // version 40
	},
	{ // Quartile
		{}, // version 0 unused
		{{count: 1, dataCodewords: 13}}, // version 1
		{{count: 1, dataCodewords: 22}}, // version 2
		{{count: 2, dataCodewords: 17}}, // version 3
		{{count: 2, dataCodewords: 24}}, // version 4
		{{count: 2, dataCodewords: 15}, {count: 2, dataCodewords: 16}}, // version 5
		{{count: 4, dataCodewords: 19}}, // version 6
		{{count: 2, dataCodewords: 14}, {count: 4, dataCodewords: 15}}, // version 7
		{{count: 4, dataCodewords: 18}, {count: 2, dataCodewords: 19}}, // version 8
		{{count: 4, dataCodewords: 16}, {count: 4, dataCodewords: 17}}, // version 9
		{{count: 6, dataCodewords: 19}, {count: 2, dataCodewords: 20}}, // version 10
		{{count: 4, dataCodewords: 22}, {count: 4, dataCodewords: 23}}, // version 11
		{{count: 4, dataCodewords: 20}, {count: 6, dataCodewords: 21}}, // version 12
		{{count: 8, dataCodewords: 20}, {count: 4, dataCodewords: 21}}, // version 13
		{{count: 11, dataCodewords: 16}, {count: 5, dataCodewords: 17}}, // version 14
		{{count: 5, dataCodewords: 24}, {count: 7, dataCodewords: 25}}, // version 15
		{{count: 15, dataCodewords: 19}, {count: 2, dataCodewords: 20}}, // version 16
		{{count: 1, dataCodewords: 22}, {count: 15, dataCodewords: 23}}, // version 17
		{{count: 17, dataCodewords: 22}, {count: 1, dataCodewords: 23}}, // version 18
		{{count: 17, dataCodewords: 21}, {count: 4, dataCodewords: 22}}, // version 19
		{{count: 15, dataCodewords: 24}, {count: 5, dataCodewords: 25}}, // version 20
		{{count: 17, dataCodewords: 22}, {count: 6, dataCodewords: 23}}, // version 21
		{{count: 7, dataCodewords: 24}, {count: 16, dataCodewords: 25}}, // version 22
		{{count: 11, dataCodewords: 24}, {count: 14, dataCodewords: 25}}, // version 23
		{{count: 11, dataCodewords: 24}, {count: 16, dataCodewords: 25}}, // version 24
		{{count: 7, dataCodewords: 24}, {count: 22, dataCodewords: 25}}, // version 25
		{{count: 28, dataCodewords: 22}, {count: 6, dataCodewords: 23}}, // version 26
		{{count: 8, dataCodewords: 23}, {count: 26, dataCodewords: 24}}, // version 27
		{{count: 4, dataCodewords: 24}, {count: 31, dataCodewords: 25}}, // version 28
		{{count: 1, dataCodewords: 23}, {count: 37, dataCodewords: 24}}, // version 29
		{{count: 15, dataCodewords: 24}, {count: 25, dataCodewords: 25}}, // version 30
		{{count: 42, dataCodewords: 24}, {count: 1, dataCodewords: 25}}, // version 31
		{{count: 10, dataCodewords: 24}, {count: 35, dataCodewords: 25}}, // version 32
		{{count: 29, dataCodewords: 24}, {count: 19, dataCodewords: 25}}, // version 33
		{{count: 44, dataCodewords: 24}, {count: 7, dataCodewords: 25}}, // version 34
		{{count: 39, dataCodewords: 24}, {count: 14, dataCodewords: 25}}, // version 35
		{{count: 46, dataCodewords: 24}, {count: 10, dataCodewords: 25}}, // version 36
		{{count: 49, dataCodewords: 24}, {count: 10, dataCodewords: 25}}, // version 37
		{{count: 48, dataCodewords: 24}, {count: 14, dataCodewords: 25}}, // version 38
		{{count: 43, dataCodewords: 24}, {count: 22, dataCodewords: 25}}, // version 39
		{{count: 34, dataCodewords: 24}, {count: 34, dataCodewords: 25}}, // version 40
	},
	{ // High
		{}, // version 0 unused
		{{count: 1, dataCodewords: 9}}, // version 1
		{{count: 1, dataCodewords: 16}}, // version 2
		{{count: 2, dataCodewords: 13}}, // version 3
		{{count: 4, dataCodewords: 9}}, // version 4
		{{count: 2, dataCodewords: 11}, {count: 2, dataCodewords: 12}}, // version 5
		{{count: 4, dataCodewords: 15}}, // version 6
		{{count: 4, dataCodewords: 13}, {count: 1, dataCodewords: 14}}, // version 7
		{{count: 4, dataCodewords: 14}, {count: 2, dataCodewords: 15}}, // version 8
		{{count: 4, dataCodewords: 12}, {count: 4, dataCodewords: 13}}, // version 9
		{{count: 6, dataCodewords: 15}, {count: 2, dataCodewords: 16}}, // version 10
		{{count: 3, dataCodewords: 12}, {count: 8, dataCodewords: 13}}, // version 11
		{{count: 7, dataCodewords: 14}, {count: 4, dataCodewords: 15}}, // version 12
		{{count: 12, dataCodewords: 11}, {count: 4, dataCodewords: 12}}, // version 13
		{{count: 11, dataCodewords: 12}, {count: 5, dataCodewords: 13}}, // version 14
		{{count: 11, dataCodewords: 12}, {count: 7, dataCodewords: 13}}, // version 15
		{{count: 3, dataCodewords: 15}, {count: 13, dataCodewords: 16}}, // version 16
		{{count: 2, dataCodewords: 14}, {count: 17, dataCodewords: 15}}, // version 17
		{{count: 2, dataCodewords: 14}, {count: 19, dataCodewords: 15}}, // version 18
		{{count: 9, dataCodewords: 13}, {count: 16, dataCodewords: 14}}, // version 19
		{{count: 15, dataCodewords: 15}, {count: 10, dataCodewords: 16}}, // version 20
		{{count: 19, dataCodewords: 16}, {count: 6, dataCodewords: 17}}, // version 21
		{{count: 34, dataCodewords: 13}}, // version 22
		{{count: 16, dataCodewords: 15}, {count: 14, dataCodewords: 16}}, // version 23
		{{count: 30, dataCodewords: 16}, {count: 2, dataCodewords: 17}}, // version 24
		{{count: 22, dataCodewords: 15}, {count: 13, dataCodewords: 16}}, // version 25
		{{count: 33, dataCodewords: 16}, {count: 4, dataCodewords: 17}}, // version 26
		{{count: 12, dataCodewords: 15}, {count: 28, dataCodewords: 16}}, // version 27
		{{count: 11, dataCodewords: 15}, {count: 31, dataCodewords: 16}}, // version 28
		{{count: 19, dataCodewords: 15}, {count: 26, dataCodewords: 16}}, // version 29
		{{count: 23, dataCodewords: 15}, {count: 25, dataCodewords: 16}}, // version 30
		{{count: 23, dataCodewords: 15}, {count: 28, dataCodewords: 16}}, // version 31
		{{count: 19, dataCodewords: 15}, {count: 35, dataCodewords: 16}}, // version 32
		{{count: 11, dataCodewords: 15}, {count: 46, dataCodewords: 16}}, // version 33
		{{count: 59, dataCodewords: 16}, {count: 1, dataCodewords: 17}}, // version 34
		{{count: 22, dataCodewords: 15}, {count: 41, dataCodewords: 16}}, // version 35
		{{count: 2, dataCodewords: 15}, {count: 64, dataCodewords: 16}}, // version 36
		{{count: 24, dataCodewords: 15}, {count: 46, dataCodewords: 16}}, // version 37
		{{count: 42, dataCodewords: 15}, {count: 32, dataCodewords: 16}}, // version 38
		{{count: 10, dataCodewords: 15}, {count: 67, dataCodewords: 16}}, // version 39
		{{count: 20, dataCodewords: 15}, {count: 61, dataCodewords: 16}}, // version 40
	},
}

// eccPerBlock maps (ecl, version) to the number of error-correction
// codewords appended to every block of that (ecl, version).
var eccPerBlock = [4][41]int{
	{-1, 7, 10, 15, 20, 26, 18, 20, 24, 30, 18, 20, 24, 26, 30, 22, 24, 28, 30, 28, 28, 28, 28, 30, 30, 26, 28, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30}, // Low
	{-1, 10, 16, 26, 18, 24, 16, 18, 22, 22, 26, 30, 22, 22, 24, 24, 28, 28, 26, 26, 26, 26, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28}, // Medium
	{-1, 13, 22, 18, 26, 18, 24, 18, 22, 20, 24, 28, 26, 24, 20, 30, 24, 28, 28, 26, 30, 28, 30, 30, 30, 30, 28, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30}, // Quartile
	{-1, 17, 28, 22, 16, 22, 28, 26, 26, 24, 28, 24, 28, 22, 24, 24, 30, 28, 28, 26, 28, 30, 24, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30}, // High
}

// numRawDataModules is the number of bits available for codewords (data +
// ECC, including remainder bits) at each version, after every function
// pattern and reservation has been excluded.
var numRawDataModules = [41]int{
	0, 208, 359, 567, 807, 1079, 1383, 1568, 1936, 2336, 2768, 3232, 3728, 4256, 4651, 5243, 5867, 6523, 7211, 7931, 8683, 9252, 10068, 10916, 11796, 12708, 13652, 14628, 15371, 16411, 17483, 18587, 19723, 20891, 22091, 23008, 24272, 25568, 26896, 28256, 29648,
}

// alignmentPatternPositions lists the ascending center coordinates (shared
// by both axes) of the alignment patterns for each version. Embedded
// verbatim per spec: these have standard-mandated exceptions (e.g. version
// 32) that no closed-form step size reproduces on its own.
var alignmentPatternPositions = [41][]int{
	nil, // version 0 unused
	{}, // version 1
	{6, 18}, // version 2
	{6, 22}, // version 3
	{6, 26}, // version 4
	{6, 30}, // version 5
	{6, 34}, // version 6
	{6, 22, 38}, // version 7
	{6, 24, 42}, // version 8
	{6, 26, 46}, // version 9
	{6, 28, 50}, // version 10
	{6, 30, 54}, // version 11
	{6, 32, 58}, // version 12
	{6, 34, 62}, // version 13
	{6, 26, 46, 66}, // version 14
	{6, 26, 48, 70}, // version 15
	{6, 26, 50, 74}, // version 16
	{6, 30, 54, 78}, // version 17
	{6, 30, 56, 82}, // version 18
	{6, 30, 58, 86}, // version 19
	{6, 34, 62, 90}, // version 20
	{6, 28, 50, 72, 94}, // version 21
	{6, 26, 50, 74, 98}, // version 22
	{6, 30, 54, 78, 102}, // version 23
	{6, 28, 54, 80, 106}, // version 24
	{6, 32, 58, 84, 110}, // version 25
	{6, 30, 58, 86, 114}, // version 26
	{6, 34, 62, 90, 118}, // version 27
	{6, 26, 50, 74, 98, 122}, // version 28
	{6, 30, 54, 78, 102, 126}, // version 29
	{6, 26, 52, 78, 104, 130}, // version 30
	{6, 30, 56, 82, 108, 134}, // version 31
	{6, 34, 60, 86, 112, 138}, // version 32
	{6, 30, 58, 86, 114, 142}, // version 33
	{6, 34, 62, 90, 118, 146}, // version 34
	{6, 30, 54, 78, 102, 126, 150}, // version 35
	{6, 24, 50, 76, 102, 128, 154}, // version 36
	{6, 28, 54, 80, 106, 132, 158}, // version 37
	{6, 32, 58, 84, 110, 136, 162}, // version 38
	{6, 26, 54, 82, 110, 138, 166}, // version 39
	{6, 30, 58, 86, 114, 142, 170}, // version 40
}

// numDataCodewords returns D(v, ecl): the total number of data codewords
// (excluding error correction) for the given version and error correction
// level, computed by summing the block layout table rather than keeping a
// fourth redundant table, so the two can never drift apart.
func numDataCodewords(ecl ECL, v Version) int {
	total := 0
	for _, g := range blockLayout[ecl][v] {
		total += g.count * g.dataCodewords
	}
	return total
}

// numBlocksFor returns the total number of Reed-Solomon blocks the data
// codewords are split into for the given version and error correction
// level.
func numBlocksFor(ecl ECL, v Version) int {
	total := 0
	for _, g := range blockLayout[ecl][v] {
		total += g.count
	}
	return total
}
