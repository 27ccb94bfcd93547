// Copyright 2026, Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

package xlstyler

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUsage is wrapped by every error caused by invalid caller arguments.
var ErrUsage = errors.New("usage error")

// UsageError reports an invalid argument of a styling call.
// Invalid lists every offending value, not just the first.
type UsageError struct {
	Arg     string
	Msg     string
	Invalid []string
}

func (e *UsageError) Error() string {
	var buf strings.Builder
	if e.Arg != "" {
		fmt.Fprintf(&buf, "argument %q: ", e.Arg)
	}
	buf.WriteString(e.Msg)
	if len(e.Invalid) != 0 {
		buf.WriteString(": ")
		buf.WriteString(strings.Join(e.Invalid, ", "))
	}
	return buf.String()
}

func (e *UsageError) Unwrap() error { return ErrUsage }

func usageErr(arg, msg string, invalid ...string) *UsageError {
	return &UsageError{Arg: arg, Msg: msg, Invalid: invalid}
}
