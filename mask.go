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

import "math"

const (
	penaltyN1 = 3
	penaltyN2 = 3
	penaltyN3 = 40
	penaltyN4 = 10
)

// maskCondition evaluates the eight standard mask conditions.
func maskCondition(id int, row, col int) bool {
	switch id {
	case 0:
		return (row+col)%2 == 0
	case 1:
		return row%2 == 0
	case 2:
		return col%3 == 0
	case 3:
		return (row+col)%3 == 0
	case 4:
		return (row/2+col/3)%2 == 0
	case 5:
		return row*col%2+row*col%3 == 0
	case 6:
		return (row*col%2+row*col%3)%2 == 0
	case 7:
		return ((row+col)%2+row*col%3)%2 == 0
	default:
		panic("qrcode: illegal mask id")
	}
}

// applyMask returns a copy of placed with every data cell (per template)
// whose mask condition holds flipped.
func applyMask(placed *Matrix, template [][]bool, maskID int) *Matrix {
	out := placed.clone()
	for r := 0; r < out.Size; r++ {
		for c := 0; c < out.Size; c++ {
			if !template[r][c] && maskCondition(maskID, r, c) {
				out.dark[r][c] = !out.dark[r][c]
			}
		}
	}
	return out
}

// selectBestMask tries every mask id (or just the forced one, if >= 0),
// writing format info for each candidate before scoring, and returns the
// winning mask id and its fully masked matrix. Ties break toward the
// lowest id.
func selectBestMask(placed *Matrix, template [][]bool, ecl ECL, forced int) (int, *Matrix) {
	if forced >= 0 {
		candidate := applyMask(placed, template, forced)
		writeFormatInfoBits(candidate, ecl, forced)
		return forced, candidate
	}

	bestID := -1
	var best *Matrix
	bestScore := math.MaxInt
	for id := 0; id < 8; id++ {
		candidate := applyMask(placed, template, id)
		writeFormatInfoBits(candidate, ecl, id)
		if score := penaltyScore(candidate); score < bestScore {
			bestScore = score
			bestID = id
			best = candidate
		}
	}
	return bestID, best
}

// penaltyScore sums the four standard penalty rules over a fully masked
// and format-stamped candidate matrix.
func penaltyScore(m *Matrix) int {
	score := 0

	for r := 0; r < m.Size; r++ {
		score += lineRunPenalty(m, r, true) + lineFinderPenalty(m, r, true)
	}
	for c := 0; c < m.Size; c++ {
		score += lineRunPenalty(m, c, false) + lineFinderPenalty(m, c, false)
	}

	// N2: 2x2 blocks of identical color.
	for r := 0; r < m.Size-1; r++ {
		for c := 0; c < m.Size-1; c++ {
			color := m.dark[r][c]
			if m.dark[r][c+1] == color && m.dark[r+1][c] == color && m.dark[r+1][c+1] == color {
				score += penaltyN2
			}
		}
	}

	// N4: balance of dark/light modules.
	dark := 0
	for r := 0; r < m.Size; r++ {
		for c := 0; c < m.Size; c++ {
			if m.dark[r][c] {
				dark++
			}
		}
	}
	total := m.Size * m.Size
	percent := dark * 100 / total
	p := percent - 50
	if p < 0 {
		p = -p
	}
	score += (p / 5) * penaltyN4

	return score
}

// lineRunPenalty implements N1 over one row (isRow=true) or column.
func lineRunPenalty(m *Matrix, index int, isRow bool) int {
	score := 0
	runLen := 0
	var runColor bool
	for i := 0; i < m.Size; i++ {
		var color bool
		if isRow {
			color = m.dark[index][i]
		} else {
			color = m.dark[i][index]
		}
		if i > 0 && color == runColor {
			runLen++
		} else {
			if i > 0 && runLen >= 5 {
				score += runLen - 2
			}
			runColor = color
			runLen = 1
		}
	}
	if runLen >= 5 {
		score += runLen - 2
	}
	return score
}

// lineFinderPenalty implements N3 over one row or column: every occurrence
// of the finder-like pattern 1011101 flanked by four light modules on
// either side adds penaltyN3. This scans for the exact flanked pattern
// directly rather than tracking a sliding run-length history, which is
// easy to get wrong at line boundaries.
func lineFinderPenalty(m *Matrix, index int, isRow bool) int {
	bits := make([]bool, m.Size)
	for i := 0; i < m.Size; i++ {
		if isRow {
			bits[i] = m.dark[index][i]
		} else {
			bits[i] = m.dark[i][index]
		}
	}

	pattern := [7]bool{true, false, true, true, true, false, true}
	count := 0
	for p := 0; p+7 <= len(bits); p++ {
		if !matchesAt(bits, p, pattern[:]) {
			continue
		}
		before := p-4 >= 0 && allLight(bits, p-4, p)
		after := p+7+4 <= len(bits) && allLight(bits, p+7, p+11)
		if before || after {
			count++
		}
	}
	return count * penaltyN3
}

func matchesAt(bits []bool, start int, pattern []bool) bool {
	for i, want := range pattern {
		if bits[start+i] != want {
			return false
		}
	}
	return true
}

func allLight(bits []bool, from, to int) bool {
	for i := from; i < to; i++ {
		if bits[i] {
			return false
		}
	}
	return true
}
