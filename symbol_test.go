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

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSymbolReportsRequestedECLAndMask(t *testing.T) {
	sym, err := EncodeSegments(MakeSegments("EXAMPLE42"), Quartile, WithMask(2), WithBoostECL(false))
	require.NoError(t, err)
	assert.Equal(t, Quartile, sym.ECL())
	assert.Equal(t, Mask(2), sym.Mask())

	// The permanently dark module is always set at (8, size-8).
	assert.True(t, sym.GetModule(8, sym.Size()-8))
}

func TestSymbolVersion1Is21ModulesSquare(t *testing.T) {
	sym, err := EncodeSegments(MakeSegments("1"), Low, WithMaxVersion(1))
	require.NoError(t, err)
	assert.Equal(t, MinVersion, sym.Version())
	assert.Equal(t, 21, sym.Size())
}

