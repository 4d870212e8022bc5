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

// Version is a QR code symbol size, in the range [MinVersion, MaxVersion].
type Version int

// The minimum and maximum QR code versions. Version 1 is 21x21 modules;
// version 40 is 177x177.
const (
	MinVersion = Version(1)
	MaxVersion = Version(40)
)

// size returns N(v) = 4v+17, the module-side length of this version.
func (v Version) size() int {
	return 4*int(v) + 17
}

// sizeVersion picks the smallest version, within [minVersion, maxVersion],
// whose data capacity at ecl holds the payload, given the number of data
// bits the mode's segment carries.
//
// For each candidate version it computes the bit length the payload would
// occupy in that mode (mode indicator + CCI + segment bits), divides by 8
// rounding up, and adds 1 codeword as a safety margin; the candidate is
// accepted once its data capacity covers that codeword count.
func sizeVersion(mode Mode, segmentBits int, minVersion, maxVersion Version, ecl ECL) (Version, error) {
	for v := minVersion; v <= maxVersion; v++ {
		totalBits := 4 + mode.charCountBits(v) + segmentBits
		requiredCodewords := (totalBits+7)/8 + 1
		if numDataCodewords(ecl, v) >= requiredCodewords {
			return v, nil
		}
	}
	return 0, newErrorf(InputTooLarge, "payload of %d data bits does not fit any version up to %d at ECL %s", segmentBits, maxVersion, ecl)
}
