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

// Matrix is a QR Code symbol's module grid: two parallel boolean grids
// rather than a sentinel value baked into the module byte. dark[r][c]
// is the module color; written[r][c] records whether that color has been
// committed (by a function pattern, a reservation, or payload placement) so
// that payload placement never overwrites a cell that already has meaning.
type Matrix struct {
	Size    int
	dark    [][]bool
	written [][]bool
}

func newMatrix(size int) *Matrix {
	dark := make([][]bool, size)
	written := make([][]bool, size)
	for i := range dark {
		dark[i] = make([]bool, size)
		written[i] = make([]bool, size)
	}
	return &Matrix{Size: size, dark: dark, written: written}
}

// At reports the module color at (row, col): true is dark.
func (m *Matrix) At(row, col int) bool {
	return m.dark[row][col]
}

func (m *Matrix) clone() *Matrix {
	out := newMatrix(m.Size)
	for r := 0; r < m.Size; r++ {
		copy(out.dark[r], m.dark[r])
		copy(out.written[r], m.written[r])
	}
	return out
}

func (m *Matrix) setFunctionModule(row, col int, isDark bool) {
	m.dark[row][col] = isDark
	m.written[row][col] = true
}

func cloneBoolGrid(g [][]bool) [][]bool {
	out := make([][]bool, len(g))
	for i, row := range g {
		out[i] = append([]bool(nil), row...)
	}
	return out
}

// buildTemplate builds an N×N matrix with every function pattern drawn and
// every format/version region reserved. The returned template grid is a
// frozen snapshot of which cells are non-data, consulted by the masker so
// it never touches a function module.
func buildTemplate(v Version) (*Matrix, [][]bool) {
	size := v.size()
	m := newMatrix(size)

	drawTimingPatterns(m)
	drawFinderPattern(m, 3, 3)
	drawFinderPattern(m, size-4, 3)
	drawFinderPattern(m, 3, size-4)
	drawAlignmentPatterns(m, v)
	m.setFunctionModule(4*int(v)+9, 8, true) // The dark module.
	reserveFormatInfo(m)
	if v >= 7 {
		reserveVersionInfo(m)
	}

	return m, cloneBoolGrid(m.written)
}

// drawTimingPatterns draws the alternating dark/light timing patterns on
// row 6 and column 6, starting dark, between the finder patterns.
func drawTimingPatterns(m *Matrix) {
	for i := 0; i < m.Size; i++ {
		dark := i%2 == 0
		m.setFunctionModule(6, i, dark)
		m.setFunctionModule(i, 6, dark)
	}
}

// drawFinderPattern draws a 9x9 finder pattern (concentric 7/5/3/1 squares
// plus the one-module light separator) centered at (row, col).
func drawFinderPattern(m *Matrix, row, col int) {
	for dy := -4; dy <= 4; dy++ {
		for dx := -4; dx <= 4; dx++ {
			r, c := row+dy, col+dx
			if r < 0 || r >= m.Size || c < 0 || c >= m.Size {
				continue
			}
			dist := absInt(dx)
			if absInt(dy) > dist {
				dist = absInt(dy)
			}
			m.setFunctionModule(r, c, dist != 2 && dist != 4)
		}
	}
}

// drawAlignmentPattern draws a 5x5 alignment pattern centered at (row, col).
func drawAlignmentPattern(m *Matrix, row, col int) {
	for dy := -2; dy <= 2; dy++ {
		for dx := -2; dx <= 2; dx++ {
			dist := absInt(dx)
			if absInt(dy) > dist {
				dist = absInt(dy)
			}
			m.setFunctionModule(row+dy, col+dx, dist != 1)
		}
	}
}

// drawAlignmentPatterns places alignment patterns at every combination of
// the per-version coordinate list, skipping the three combinations whose
// footprint would land on a finder pattern.
func drawAlignmentPatterns(m *Matrix, v Version) {
	positions := alignmentPatternPositions[v]
	n := len(positions)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == 0 && j == 0 || i == 0 && j == n-1 || i == n-1 && j == 0 {
				continue
			}
			drawAlignmentPattern(m, positions[i], positions[j])
		}
	}
}

// reserveFormatInfo marks the 15-bit format info regions around the
// top-left finder, plus their split continuation beside the other two
// finders, as written with a placeholder value; writeFormatInfoBits overwrites
// the real bits once the mask id is known.
func reserveFormatInfo(m *Matrix) {
	for i := 0; i <= 5; i++ {
		m.setFunctionModule(i, 8, false)
	}
	m.setFunctionModule(7, 8, false)
	m.setFunctionModule(8, 8, false)
	m.setFunctionModule(8, 7, false)
	for i := 9; i < 15; i++ {
		m.setFunctionModule(8, 14-i, false)
	}

	for i := 0; i < 8; i++ {
		m.setFunctionModule(8, m.Size-1-i, false)
	}
	for i := 8; i < 15; i++ {
		m.setFunctionModule(m.Size-15+i, 8, false)
	}
}

// reserveVersionInfo marks the two 6x3 version info regions beside the
// bottom-left and top-right finders, for v >= 7.
func reserveVersionInfo(m *Matrix) {
	for i := 0; i < 18; i++ {
		a := m.Size - 11 + i%3
		b := i / 3
		m.setFunctionModule(a, b, false)
		m.setFunctionModule(b, a, false)
	}
}

// placeCodewords is the zig-zag payload placer. It walks two-column strips
// from the right edge leftward (skipping the column 6 timing strip),
// alternating strip direction, and drops the next payload bit (MSB-first
// per codeword, in interleaved codeword order) into every not-yet-written
// cell. Bits that run out leave remaining cells as light remainder bits.
func placeCodewords(m *Matrix, data []byte) error {
	bitIndex := 0
	totalBits := len(data) * 8

	for right := m.Size - 1; right >= 1; right -= 2 {
		if right == 6 {
			right = 5
		}
		for vert := 0; vert < m.Size; vert++ {
			for j := 0; j < 2; j++ {
				col := right - j
				upward := (right+1)&2 == 0
				var row int
				if upward {
					row = m.Size - 1 - vert
				} else {
					row = vert
				}
				if m.written[row][col] {
					continue
				}
				var bit bool
				if bitIndex < totalBits {
					bit = (data[bitIndex>>3]>>uint(7-bitIndex&7))&1 != 0
					bitIndex++
				}
				m.setFunctionModule(row, col, bit)
			}
		}
	}

	return requireInvariant(bitIndex == totalBits, "placed %d payload bits but expected %d", bitIndex, totalBits)
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
