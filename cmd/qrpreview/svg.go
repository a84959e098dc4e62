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

package main

import (
	"fmt"
	"strings"

	qrcodegen "github.com/qrcodegen/symbol"
)

// renderSVG walks sym's modules over its read-only GetModule accessor and
// builds a minimal SVG document, with a light quiet-zone border of the
// given width (in modules) added on every side. Rendering is intentionally
// kept out of the symbol package itself: it has no opinion about output
// format, only about the module grid.
func renderSVG(sym *qrcodegen.Symbol, border int) (string, error) {
	if border < 0 {
		return "", fmt.Errorf("border must be non-negative")
	}

	size := sym.Size()
	var sb strings.Builder
	sb.WriteString("<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n")
	sb.WriteString("<!DOCTYPE svg PUBLIC \"-//W3C//DTD SVG 1.1//EN\" \"http://www.w3.org/Graphics/SVG/1.1/DTD/svg11.dtd\">\n")
	fmt.Fprintf(&sb, "<svg xmlns=\"http://www.w3.org/2000/svg\" version=\"1.1\" viewBox=\"0 0 %[1]d %[1]d\" stroke=\"none\">\n", size+border*2)
	sb.WriteString("\t<rect width=\"100%\" height=\"100%\" fill=\"#FFFFFF\"/>\n")
	sb.WriteString("\t<path d=\"")

	first := true
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if sym.GetModule(x, y) {
				if !first {
					sb.WriteString(" ")
				}
				first = false
				fmt.Fprintf(&sb, "M%d,%dh1v1h-1z", x+border, y+border)
			}
		}
	}
	sb.WriteString("\" fill=\"#000000\"/>\n")
	sb.WriteString("</svg>\n")

	return sb.String(), nil
}
