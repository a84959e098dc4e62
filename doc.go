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
 *
 * Modeled after https://github.com/nayuki/QR-Code-generator.
 * See https://www.thonky.com/qr-code-tutorial/introduction and
 * https://en.wikipedia.org/wiki/QR_code for an explanation of how QR codes
 * are formatted.
 */

// Package qrcodegen generates QR Code Model 2 symbols.
//
// Given a payload and an error correction level, EncodeText, EncodeBinary,
// or EncodeSegments produce an immutable Symbol: a square grid of light and
// dark modules that any conforming QR Code reader can decode back to the
// original payload. All 40 versions, all four error correction levels, and
// the numeric, alphanumeric, byte, kanji, and ECI segment modes are
// supported. Mask selection and version selection can each be left
// automatic or constrained explicitly.
//
// This package only builds the symbol. Rendering it to an image, SVG, or
// terminal output is the caller's responsibility; Symbol.GetModule is the
// read-only accessor downstream renderers are expected to drive.
package qrcodegen
