/*
 * Copyright © 2020, G.Ralph Kuntz, MD.
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

package qrcodegen

// Option configures EncodeSegments and EncodeTextOptimal. Settings that no
// option overrides keep the package defaults: search the full version
// range, boost the ECL when free capacity allows it, and choose the mask
// automatically.
type Option func(*buildConfig)

type buildConfig struct {
	minVersion Version
	maxVersion Version
	mask       Mask
	boostECL   bool
}

func defaultConfig() buildConfig {
	return buildConfig{
		minVersion: MinVersion,
		maxVersion: MaxVersion,
		mask:       autoMask,
		boostECL:   true,
	}
}

// WithMinVersion restricts the version search to start no lower than v.
func WithMinVersion(v Version) Option {
	return func(c *buildConfig) { c.minVersion = v }
}

// WithMaxVersion restricts the version search to go no higher than v.
func WithMaxVersion(v Version) Option {
	return func(c *buildConfig) { c.maxVersion = v }
}

// WithMask forces a specific mask pattern instead of choosing automatically
// by penalty score. m must be in [0, 7].
func WithMask(m Mask) Option {
	return func(c *buildConfig) { c.mask = m }
}

// WithAutoMask requests automatic, penalty-score-based mask selection. This
// is the default; it is only useful to cancel an earlier WithMask in the
// same option list.
func WithAutoMask() Option {
	return func(c *buildConfig) { c.mask = autoMask }
}

// WithBoostECL controls whether EncodeSegments raises the error correction
// level above the one requested when a higher level still fits the chosen
// version at no extra cost in version. Default true.
func WithBoostECL(boost bool) Option {
	return func(c *buildConfig) { c.boostECL = boost }
}

// EncodeText builds a symbol for text at the given error correction level,
// choosing segment mode automatically with MakeSegments and otherwise using
// every package default (full version range, ECL boost on, automatic
// mask). Use EncodeSegments directly for finer control, or EncodeTextOptimal
// for the stronger DP-based segmenter.
func EncodeText(text string, ecl ECL) (*Symbol, error) {
	return EncodeSegments(MakeSegments(text), ecl)
}

// EncodeBinary builds a single-segment byte-mode symbol for data at the
// given error correction level, using package defaults.
func EncodeBinary(data []byte, ecl ECL) (*Symbol, error) {
	return EncodeSegments([]*QRSegment{MakeBytes(data)}, ecl)
}

// EncodeTextOptimal builds a symbol for text using the dynamic-programming
// optimal segmenter (MakeSegmentsOptimal) instead of the single-segment
// heuristic. Because the optimal mode assignment can change at the
// character-count-field boundaries (versions 1, 10, 27), this runs its own
// capacity-aware version search, recomputing segments with
// MakeSegmentsOptimal at every candidate version rather than reusing one
// segmentation across the whole range.
func EncodeTextOptimal(text string, ecl ECL, opts ...Option) (*Symbol, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.minVersion < MinVersion || cfg.maxVersion > MaxVersion || cfg.minVersion > cfg.maxVersion {
		return nil, newInvalidArgument("invalid version range [%d, %d]", cfg.minVersion, cfg.maxVersion)
	}

	var fitVersion Version
	var segs []*QRSegment
	found := false
	for v := cfg.minVersion; v <= cfg.maxVersion; v++ {
		candidate := MakeSegmentsOptimal(text, v)
		if bits := TotalBits(candidate, v); bits != -1 && bits <= dataCodewords(v, ecl)*8 {
			fitVersion = v
			segs = candidate
			found = true
			break
		}
	}
	if !found {
		segs := MakeSegmentsOptimal(text, cfg.maxVersion)
		bits := TotalBits(segs, cfg.maxVersion)
		if bits < 0 {
			bits = 0
			for _, seg := range segs {
				bits += 4 + int(seg.Mode.numCharCountBits(cfg.maxVersion)) + len(seg.Data)
			}
		}
		return nil, newDataTooLong(bits, dataCodewords(cfg.maxVersion, ecl)*8)
	}

	return buildSymbol(segs, ecl, fitVersion, cfg)
}

// EncodeSegments builds a symbol holding the concatenation of segs, the
// smallest fitting version in [minVersion, maxVersion] (or every version, by
// default), at the given error correction level or higher. By default the
// ECL is boosted to the strongest level that still fits the chosen version,
// and the mask is chosen automatically to minimize the penalty score;
// options override either behavior.
//
// Returns DataTooLong if segs does not fit any version in range at ecl,
// InvalidArgument if the option-derived version range or a forced mask is
// out of bounds.
func EncodeSegments(segs []*QRSegment, ecl ECL, opts ...Option) (*Symbol, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.minVersion < MinVersion || cfg.maxVersion > MaxVersion || cfg.minVersion > cfg.maxVersion {
		return nil, newInvalidArgument("invalid version range [%d, %d]", cfg.minVersion, cfg.maxVersion)
	}
	if cfg.mask != autoMask && (cfg.mask < 0 || cfg.mask > 7) {
		return nil, newInvalidArgument("mask value %d out of range", cfg.mask)
	}

	var version Version
	found := false
	for v := cfg.minVersion; v <= cfg.maxVersion; v++ {
		if bits := TotalBits(segs, v); bits != -1 && bits <= dataCodewords(v, ecl)*8 {
			version = v
			found = true
			break
		}
	}
	if !found {
		bits := TotalBits(segs, cfg.maxVersion)
		if bits < 0 {
			bits = 0
			for _, seg := range segs {
				bits += 4 + int(seg.Mode.numCharCountBits(cfg.maxVersion)) + len(seg.Data)
			}
		}
		return nil, newDataTooLong(bits, dataCodewords(cfg.maxVersion, ecl)*8)
	}

	return buildSymbol(segs, ecl, version, cfg)
}

// buildSymbol assembles a symbol for segs at a version already known to
// fit: boosts the ECL if requested, packs the bitstream, computes and
// interleaves ECC, draws every module, and chooses the mask.
func buildSymbol(segs []*QRSegment, ecl ECL, version Version, cfg buildConfig) (*Symbol, error) {
	actualECL := ecl
	if cfg.boostECL {
		for _, candidate := range []ECL{Medium, Quartile, High} {
			if candidate <= actualECL {
				continue
			}
			if bits := TotalBits(segs, version); bits != -1 && bits <= dataCodewords(version, candidate)*8 {
				actualECL = candidate
			}
		}
	}

	bs := assembleBitStream(segs, version, actualECL)
	allCodewords := addECCAndInterleave(bs.bytes(), version, actualECL)

	c := newCanvas(version)
	drawFunctionPatterns(c, version)
	drawCodewords(c, allCodewords)

	mask := chooseMask(c, actualECL, cfg.mask)
	return newSymbol(c, version, actualECL, mask), nil
}

// assembleBitStream concatenates segs, appends the terminator, bit padding
// to a byte boundary, and byte padding with the alternating 0xEC/0x11
// pattern up to the full data capacity of version at ecl.
func assembleBitStream(segs []*QRSegment, version Version, ecl ECL) bitStream {
	var bs bitStream
	for _, seg := range segs {
		bs.appendBits(int(seg.Mode.modeBits), 4)
		bs.appendBits(seg.NumChars, seg.Mode.numCharCountBits(version))
		bs.appendAll(seg.Data)
	}

	dataCapacityBits := dataCodewords(version, ecl) * 8

	// Terminator: up to 4 zero bits, however many fit.
	bs.appendBits(0, int8(minInt(4, dataCapacityBits-bs.bitLength())))

	// Bit padding to the next byte boundary.
	bs.appendBits(0, int8((8-bs.bitLength()%8)%8))
	if bs.bitLength()%8 != 0 {
		panic("assembled bitstream not padded correctly")
	}

	// Pad codewords, alternating 0xEC and 0x11, until full.
	for padByte := 0xEC; bs.bitLength() < dataCapacityBits; padByte ^= 0xEC ^ 0x11 {
		bs.appendBits(padByte, 8)
	}

	return bs
}

// addECCAndInterleave splits data into the blocks described by the capacity
// tables for version and ecl, appends each block's Reed-Solomon remainder,
// and interleaves data codewords followed by ECC codewords column-by-column
// across blocks, per ISO/IEC 18004 §7.5.
func addECCAndInterleave(data []byte, version Version, ecl ECL) []byte {
	numBlocks := numErrorCorrectionBlocks[ecl][version]
	blockECCLen := eccCodewordsPerBlock[ecl][version]
	rawCodewords := rawDataModules(version) / 8
	numShortBlocks := numBlocks - rawCodewords%numBlocks
	shortBlockLen := rawCodewords / numBlocks

	divisor := reedSolomonDivisors[blockECCLen]

	blocks := make([][]byte, numBlocks)
	eccBlocks := make([][]byte, numBlocks)
	i := 0
	for b := 0; b < numBlocks; b++ {
		dataLen := shortBlockLen - blockECCLen
		if b >= numShortBlocks {
			dataLen++
		}
		blocks[b] = data[i : i+dataLen]
		eccBlocks[b] = reedSolomonComputeRemainder(blocks[b], divisor)
		i += dataLen
	}

	result := make([]byte, 0, rawCodewords+blockECCLen*numBlocks)
	for i := 0; i < shortBlockLen-blockECCLen+1; i++ {
		for b := 0; b < numBlocks; b++ {
			if i != shortBlockLen-blockECCLen || b >= numShortBlocks {
				result = append(result, blocks[b][i])
			}
		}
	}
	for i := 0; i < blockECCLen; i++ {
		for b := 0; b < numBlocks; b++ {
			result = append(result, eccBlocks[b][i])
		}
	}

	return result
}
