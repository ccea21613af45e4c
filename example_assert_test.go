// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !nodiag

package diag_test

import (
	"errors"
	"fmt"

	"code.hybscloud.com/diag"
)

// ExampleNewAsserter injects a hook that records failures instead of
// aborting.
func ExampleNewAsserter() {
	var failures []string
	a := diag.NewAsserter(diag.HookFunc(func(message, file string, line uint, function string) {
		failures = append(failures, message)
	}))

	i, n := 7, 4
	a.That(i < n, "i < n")
	diag.CheckOp(a, diag.Lt(&i, &n))
	diag.CheckOp(a, diag.Ge(&i, &n))

	fmt.Printf("%q\n", failures)

	// Output:
	// ["i < n" "7<4\n"]
}

// ExamplePanic recovers from an assertion failure.
func ExamplePanic() {
	a := diag.NewAsserter(diag.Panic{})

	defer func() {
		f := recover().(*diag.Failure)
		fmt.Printf("%q %v\n", f.Message, errors.Is(f, diag.ErrAssertionFailed))
	}()

	x, y := "abc", "abd"
	diag.CheckOp(a, diag.Eq(&x, &y))

	// Output:
	// "abc==abd\n" true
}
