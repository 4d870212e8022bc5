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

// encodeOptions carries Encode's configuration surface, generalized to the
// whole symbol since this package only ever builds a single segment.
type encodeOptions struct {
	boostECL   bool
	mask       int // -1 selects automatically.
	minVersion Version
	maxVersion Version
	logger     Logger
}

// Option configures Encode.
type Option func(*encodeOptions)

// WithMask forces a specific mask id [0, 7], instead of the automatic
// lowest-penalty selection.
func WithMask(mask int) Option {
	return func(o *encodeOptions) { o.mask = mask }
}

// WithAutoMask restores automatic mask selection (the default).
func WithAutoMask() Option {
	return func(o *encodeOptions) { o.mask = -1 }
}

// WithBoostECL enables or disables upgrading the error correction level
// when the chosen version still has room at a higher level (default true).
func WithBoostECL(boost bool) Option {
	return func(o *encodeOptions) { o.boostECL = boost }
}

// WithMinVersion sets the smallest version Encode may choose.
func WithMinVersion(v Version) Option {
	return func(o *encodeOptions) { o.minVersion = v }
}

// WithMaxVersion sets the largest version Encode may choose.
func WithMaxVersion(v Version) Option {
	return func(o *encodeOptions) { o.maxVersion = v }
}

// WithLogger injects a diagnostics sink. Encode stays a pure function, so
// nothing is logged unless a sink is supplied.
func WithLogger(l Logger) Option {
	return func(o *encodeOptions) { o.logger = l }
}

// Encode turns text into a QR Code symbol matrix at the requested error
// correction level, threading mode analysis, segmentation, version sizing,
// bitstream assembly, error correction, matrix construction, masking, and
// format/version info in that order, failing fast on the first error.
func Encode(text string, ecl ECL, opts ...Option) (*Matrix, error) {
	o := encodeOptions{
		boostECL:   true,
		mask:       -1,
		minVersion: MinVersion,
		maxVersion: MaxVersion,
		logger:     noopLogger{},
	}
	for _, opt := range opts {
		opt(&o)
	}

	if err := validateECL(ecl); err != nil {
		return nil, err
	}
	if o.minVersion < MinVersion || MaxVersion < o.maxVersion || o.maxVersion < o.minVersion {
		return nil, invariant("version range [%d, %d] is invalid", o.minVersion, o.maxVersion)
	}
	if o.mask < -1 || o.mask > 7 {
		return nil, invariant("mask %d out of range", o.mask)
	}

	mode, err := AnalyzeMode(text)
	if err != nil {
		return nil, err
	}

	seg, err := segmentText(text, mode)
	if err != nil {
		return nil, err
	}

	v, err := sizeVersion(mode, len(seg.bits), o.minVersion, o.maxVersion, ecl)
	if err != nil {
		return nil, err
	}
	o.logger.Debugw("sized version", "mode", mode.String(), "version", v, "ecl", ecl.String())

	if o.boostECL {
		ecl = boostECLForVersion(mode, len(seg.bits), v, ecl)
	}

	dataCodewords, err := assembleCodewords(seg, v, ecl)
	if err != nil {
		return nil, err
	}

	raw, err := addECCAndInterleave(dataCodewords, ecl, v)
	if err != nil {
		return nil, err
	}

	template, placeholder := buildTemplate(v)
	if err := placeCodewords(template, raw); err != nil {
		return nil, err
	}

	maskID, masked := selectBestMask(template, placeholder, ecl, o.mask)
	if maskID < 0 {
		return nil, invariant("no mask candidate was selected")
	}
	writeVersionInfoBits(masked, v)

	o.logger.Debugw("encoded symbol", "version", v, "ecl", ecl.String(), "mask", maskID, "size", masked.Size)

	return masked, nil
}

// boostECLForVersion raises the error correction level as far as
// Medium->High, once a version is chosen, while the same data still fits,
// never lowering below the caller's requested level.
func boostECLForVersion(mode Mode, segmentBits int, v Version, ecl ECL) ECL {
	best := ecl
	for candidate := Medium; candidate <= High; candidate++ {
		if candidate <= best {
			continue
		}
		capacityBits := numDataCodewords(candidate, v) * 8
		needed := 4 + mode.charCountBits(v) + segmentBits
		if needed <= capacityBits {
			best = candidate
		}
	}
	return best
}
