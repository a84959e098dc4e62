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

// Command qrpreview renders a QR code symbol to an SVG file and optionally
// opens it in the default browser. It exists to exercise the symbol package
// end-to-end from the command line, not as a general-purpose QR tool.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/browser"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	qrcodegen "github.com/qrcodegen/symbol"
)

var (
	flagText       string
	flagStdin      bool
	flagECL        string
	flagMinVersion int
	flagMaxVersion int
	flagMask       int
	flagBoostECL   bool
	flagOptimal    bool
	flagOut        string
	flagOpen       bool
	flagVerbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "qrpreview",
	Short: "Render a QR code to an SVG file",
	RunE:  runPreview,
}

func init() {
	rootCmd.Flags().StringVar(&flagText, "text", "", "text to encode")
	rootCmd.Flags().BoolVar(&flagStdin, "stdin", false, "read text to encode from stdin")
	rootCmd.Flags().StringVar(&flagECL, "ecl", "M", "error correction level: L, M, Q, or H")
	rootCmd.Flags().IntVar(&flagMinVersion, "min-version", int(qrcodegen.MinVersion), "minimum version to consider")
	rootCmd.Flags().IntVar(&flagMaxVersion, "max-version", int(qrcodegen.MaxVersion), "maximum version to consider")
	rootCmd.Flags().IntVar(&flagMask, "mask", -1, "force a mask pattern in [0, 7]; -1 chooses automatically")
	rootCmd.Flags().BoolVar(&flagBoostECL, "boost-ecl", true, "boost the error correction level when free capacity allows")
	rootCmd.Flags().BoolVar(&flagOptimal, "optimal", false, "use the dynamic-programming optimal segmenter instead of the single-segment heuristic")
	rootCmd.Flags().StringVar(&flagOut, "out", "qrcode.svg", "output SVG file path")
	rootCmd.Flags().BoolVar(&flagOpen, "open", false, "open the rendered SVG in the default browser")
	rootCmd.Flags().BoolVar(&flagVerbose, "verbose", false, "enable debug logging")
}

func main() {
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runPreview(cmd *cobra.Command, args []string) error {
	if flagVerbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	text, err := resolveText()
	if err != nil {
		return err
	}

	ecl, err := parseECL(flagECL)
	if err != nil {
		return err
	}

	if flagMask < -1 || flagMask > 7 {
		return fmt.Errorf("mask must be in [-1, 7], got %d", flagMask)
	}

	opts := []qrcodegen.Option{
		qrcodegen.WithMinVersion(qrcodegen.Version(flagMinVersion)),
		qrcodegen.WithMaxVersion(qrcodegen.Version(flagMaxVersion)),
		qrcodegen.WithBoostECL(flagBoostECL),
	}
	if flagMask >= 0 {
		opts = append(opts, qrcodegen.WithMask(qrcodegen.Mask(flagMask)))
	}

	log.Debug().Str("ecl", ecl.String()).Int("min_version", flagMinVersion).
		Int("max_version", flagMaxVersion).Bool("optimal", flagOptimal).
		Msg("encoding symbol")

	var sym *qrcodegen.Symbol
	if flagOptimal {
		sym, err = qrcodegen.EncodeTextOptimal(text, ecl, opts...)
	} else {
		sym, err = qrcodegen.EncodeSegments(qrcodegen.MakeSegments(text), ecl, opts...)
	}
	if err != nil {
		return fmt.Errorf("encoding symbol: %w", err)
	}

	log.Info().Int("version", int(sym.Version())).Str("ecl", sym.ECL().String()).
		Int("mask", int(sym.Mask())).Msg("symbol encoded")

	svg, err := renderSVG(sym, 4)
	if err != nil {
		return fmt.Errorf("rendering SVG: %w", err)
	}

	if err := os.WriteFile(flagOut, []byte(svg), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", flagOut, err)
	}
	log.Info().Str("path", flagOut).Msg("wrote SVG")

	if flagOpen {
		if err := browser.OpenFile(flagOut); err != nil {
			return fmt.Errorf("opening %s in browser: %w", flagOut, err)
		}
	}

	return nil
}

func resolveText() (string, error) {
	if flagStdin {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}
	if flagText == "" {
		return "", fmt.Errorf("one of --text or --stdin is required")
	}
	return flagText, nil
}

func parseECL(s string) (qrcodegen.ECL, error) {
	switch s {
	case "L", "l":
		return qrcodegen.Low, nil
	case "M", "m":
		return qrcodegen.Medium, nil
	case "Q", "q":
		return qrcodegen.Quartile, nil
	case "H", "h":
		return qrcodegen.High, nil
	default:
		return 0, fmt.Errorf("unknown error correction level %q", s)
	}
}
