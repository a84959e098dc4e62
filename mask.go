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

// Mask identifies one of the eight standard data-masking patterns applied
// to non-function modules. A value of -1 (used only as an EncodeSegments
// option) requests automatic mask selection by penalty score.
type Mask int8

// autoMask requests that EncodeSegments choose the mask with the lowest
// penalty score.
const autoMask Mask = -1
