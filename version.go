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

// Version identifies the size class of a QR code symbol, in the range
// [1, 40]. Size is derived as 4*version + 17, from 21 to 177 modules.
type Version int

// The minimum and maximum QR code versions (symbol sizes). MinVersion is
// 21 modules square; MaxVersion is 177 modules square.
const (
	MinVersion = Version(1)
	MaxVersion = Version(40)
)

// Size returns the width and height, in modules, of a symbol at this
// version.
func (v Version) Size() int {
	return int(v)*4 + 17
}
