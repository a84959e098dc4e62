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
)

func TestApplyMaskIsItsOwnInverse(t *testing.T) {
	c := newCanvas(3)
	drawFunctionPatterns(c, 3)

	before := make([][]bool, c.size)
	for y := range before {
		before[y] = append([]bool(nil), c.dark[y]...)
	}

	applyMask(c, 5)
	applyMask(c, 5)

	for y := 0; y < c.size; y++ {
		assert.Equal(t, before[y], c.dark[y])
	}
}

func TestApplyMaskSkipsFunctionModules(t *testing.T) {
	c := newCanvas(1)
	drawFunctionPatterns(c, 1)

	before := make([][]bool, c.size)
	for y := range before {
		before[y] = append([]bool(nil), c.dark[y]...)
	}

	applyMask(c, 2)

	for y := 0; y < c.size; y++ {
		for x := 0; x < c.size; x++ {
			if c.isFunction(x, y) {
				assert.Equal(t, before[y][x], c.dark[y][x])
			}
		}
	}
}

func TestInvertPanicsOnIllegalMask(t *testing.T) {
	assert.Panics(t, func() { invert(0, 0, 8) })
	assert.Panics(t, func() { invert(0, 0, -1) })
}

func TestChooseMaskAutoPicksValidMask(t *testing.T) {
	c := newCanvas(2)
	drawFunctionPatterns(c, 2)

	mask := chooseMask(c, Medium, autoMask)
	assert.True(t, mask >= 0 && mask <= 7)
}

func TestChooseMaskHonorsForcedMask(t *testing.T) {
	c := newCanvas(2)
	drawFunctionPatterns(c, 2)

	mask := chooseMask(c, Medium, 4)
	assert.Equal(t, Mask(4), mask)
}

func TestPenaltyScoreNonNegative(t *testing.T) {
	for version := Version(1); version <= 5; version++ {
		c := newCanvas(version)
		drawFunctionPatterns(c, version)
		applyMask(c, 0)
		assert.True(t, penaltyScore(c) >= 0)
	}
}
