// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"code.hybscloud.com/diag"
)

// FormatOptions holds the flags of the format command.
type FormatOptions struct {
	Base   int
	Fixed  bool
	Width  int
	Signed bool
}

// NewFormatCommand creates the format command.
func NewFormatCommand() *cobra.Command {
	opts := &FormatOptions{}

	cmd := &cobra.Command{
		Use:   "format [flags] [--] <values...>",
		Short: "Print integers in a base from 2 to 16",
		Long: `Print each value on its own line as an integer of the given width.

Values are parsed with Go integer literal syntax (0x, 0o and 0b prefixes are
accepted). Negative values require --signed and must follow "--".`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFormat(opts, args, cmd.OutOrStdout())
		},
	}

	cmd.Flags().IntVarP(&opts.Base, "base", "b", diag.BaseDecimal, "output base (2-16)")
	cmd.Flags().BoolVarP(&opts.Fixed, "fixed", "f", false, "pad to the digit count of the width")
	cmd.Flags().IntVarP(&opts.Width, "width", "w", 64, "integer width in bits (8|16|32|64)")
	cmd.Flags().BoolVarP(&opts.Signed, "signed", "s", false, "treat values as signed")

	return cmd
}

func runFormat(opts *FormatOptions, args []string, out io.Writer) error {
	if opts.Base < diag.BaseMin || opts.Base > diag.BaseMax {
		return NewExitError(ExitCommandError, fmt.Sprintf("invalid base %d: must be between %d and %d", opts.Base, diag.BaseMin, diag.BaseMax))
	}
	if !isValidWidth(opts.Width) {
		return NewExitError(ExitCommandError, fmt.Sprintf("invalid width %d: must be one of %v", opts.Width, ValidWidths))
	}

	// Parse everything first so that a bad value prints nothing
	values := make([]uint64, len(args))
	for i, arg := range args {
		v, err := parseValue(arg, opts.Width, opts.Signed)
		if err != nil {
			return WrapExitError(ExitCommandError, fmt.Sprintf("invalid value %q", arg), err)
		}
		values[i] = v
	}

	ws := diag.NewWriterSink(out)
	s := diag.NewStream(ws)
	s.SetBase(opts.Base)
	s.SetFixed(opts.Fixed)
	for _, v := range values {
		printValue(s, v, opts.Width, opts.Signed)
		diag.FlushLine(s)
	}

	if err := ws.Err(); err != nil {
		return WrapExitError(ExitCommandError, "write output", err)
	}
	return nil
}

// ValidWidths defines the accepted integer widths in bits.
var ValidWidths = []int{8, 16, 32, 64}

func isValidWidth(width int) bool {
	for _, w := range ValidWidths {
		if w == width {
			return true
		}
	}
	return false
}

// parseValue parses arg as an integer of width bits. Signed values are
// returned in two's complement.
func parseValue(arg string, width int, signed bool) (uint64, error) {
	if signed {
		v, err := strconv.ParseInt(arg, 0, width)
		return uint64(v), err
	}
	return strconv.ParseUint(arg, 0, width)
}

// printValue prints v through the typed method for width and signedness.
func printValue(s *diag.Stream, v uint64, width int, signed bool) {
	switch {
	case width == 8 && signed:
		s.PrintInt8(int8(v))
	case width == 8:
		s.PrintUint8(uint8(v))
	case width == 16 && signed:
		s.PrintInt16(int16(v))
	case width == 16:
		s.PrintUint16(uint16(v))
	case width == 32 && signed:
		s.PrintInt32(int32(v))
	case width == 32:
		s.PrintUint32(uint32(v))
	case signed:
		s.PrintInt64(int64(v))
	default:
		s.PrintUint64(v)
	}
}
