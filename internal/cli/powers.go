// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"code.hybscloud.com/diag"
)

// NewPowersCommand creates the powers command.
func NewPowersCommand() *cobra.Command {
	var width int

	cmd := &cobra.Command{
		Use:   "powers",
		Short: "Print the greatest power of each base for an integer width",
		Long: `Print one line per base from 2 to 16: the base and the greatest power
of it an unsigned integer of the given width can hold, both in decimal.

The number of digits of that power is the fixed-width digit count.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPowers(width, cmd.OutOrStdout())
		},
	}

	cmd.Flags().IntVarP(&width, "width", "w", 64, "integer width in bits (8|16|32|64)")

	return cmd
}

func runPowers(width int, out io.Writer) error {
	if !isValidWidth(width) {
		return NewExitError(ExitCommandError, fmt.Sprintf("invalid width %d: must be one of %v", width, ValidWidths))
	}

	ws := diag.NewWriterSink(out)
	s := diag.NewStream(ws)
	for base := diag.BaseMin; base <= diag.BaseMax; base++ {
		s.Emit(base).Emit(diag.Char(' '))
		s.PrintUint64(greatestPower(width, base))
		diag.FlushLine(s)
	}

	if err := ws.Err(); err != nil {
		return WrapExitError(ExitCommandError, "write output", err)
	}
	return nil
}

func greatestPower(width, base int) uint64 {
	switch width {
	case 8:
		return uint64(diag.GreatestPower[uint8](base))
	case 16:
		return uint64(diag.GreatestPower[uint16](base))
	case 32:
		return uint64(diag.GreatestPower[uint32](base))
	default:
		return diag.GreatestPower[uint64](base)
	}
}
