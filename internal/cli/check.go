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

// NewCheckCommand creates the check command.
func NewCheckCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [--] <a> <op> <b>",
		Short: "Evaluate a comparison of two integers",
		Long: `Evaluate a comparison of two signed 64-bit integers.

op is one of lt, le, gt, ge, eq, ne or the symbols <, <=, >, >=, ==, !=.
If the comparison holds, check prints "ok". Otherwise it prints the
diagnostic diag renders for the failed comparison and exits with status 1.
Negative operands must follow "--".`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(args, cmd.OutOrStdout())
		},
	}

	return cmd
}

func runCheck(args []string, out io.Writer) error {
	a, err := strconv.ParseInt(args[0], 0, 64)
	if err != nil {
		return WrapExitError(ExitCommandError, fmt.Sprintf("invalid operand %q", args[0]), err)
	}
	kind, ok := diag.ParseKind(args[1])
	if !ok {
		return NewExitError(ExitCommandError, fmt.Sprintf("invalid operator %q", args[1]))
	}
	b, err := strconv.ParseInt(args[2], 0, 64)
	if err != nil {
		return WrapExitError(ExitCommandError, fmt.Sprintf("invalid operand %q", args[2]), err)
	}

	// Record the failure instead of aborting the process
	var failure *diag.Failure
	hook := diag.HookFunc(func(message, file string, line uint, function string) {
		failure = &diag.Failure{Message: message, File: file, Line: line, Function: function}
	})
	diag.Report(diag.Of(&a, kind, &b), "diagfmt", "check", 1, hook)

	ws := diag.NewWriterSink(out)
	s := diag.NewStream(ws)
	if failure == nil {
		s.PrintString("ok")
		diag.FlushLine(s)
	} else {
		s.PrintString(failure.Message)
		s.Flush()
	}
	if err := ws.Err(); err != nil {
		return WrapExitError(ExitCommandError, "write output", err)
	}

	if failure != nil {
		return WrapExitError(ExitFailure, "check failed", failure)
	}
	return nil
}
