// Copyright 2026, Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

// Package display lays out tabular objects side by side as one HTML block.
package display

import (
	"errors"
	"fmt"
	"io"

	"github.com/valyala/quicktemplate"
)

// HTMLer is an object with an HTML representation.
type HTMLer interface {
	HTML() string
}

// Align is the horizontal placement of the objects.
type Align string

const (
	AlignLeft   Align = "left"
	AlignCenter Align = "center"
	AlignRight  Align = "right"
)

// DefaultGap is the gap between the objects, in pixels.
const DefaultGap = 50

// Options of HStack.
type Options struct {
	// Titles label the objects in order; missing or empty titles are omitted.
	Titles []string
	// Gap between the objects in pixels; zero means DefaultGap.
	Gap int
	// Align defaults to AlignLeft.
	Align Align
}

var ErrUnknownFormat = errors.New("unknown display format")

func (o Options) justify() (string, error) {
	switch o.Align {
	case "", AlignLeft:
		return "flex-start", nil
	case AlignCenter:
		return "center", nil
	case AlignRight:
		return "end", nil
	}
	return "", fmt.Errorf("alignment %q: must be left, center or right", o.Align)
}

// HStack writes objs as one flex row to w.
// An object is rendered by its HTML method if it has one,
// else as preformatted text by its String method.
// Nothing is written if any object has neither.
func HStack(w io.Writer, opts Options, objs ...any) error {
	justify, err := opts.justify()
	if err != nil {
		return err
	}
	gap := opts.Gap
	if gap == 0 {
		gap = DefaultGap
	} else if gap < 0 {
		return fmt.Errorf("gap %d: must not be negative", gap)
	}
	var unknown []error
	for i, o := range objs {
		switch o.(type) {
		case HTMLer, fmt.Stringer:
		default:
			unknown = append(unknown, fmt.Errorf("%w: object %d is %T", ErrUnknownFormat, i, o))
		}
	}
	if err := errors.Join(unknown...); err != nil {
		return err
	}

	qw := quicktemplate.AcquireWriter(w)
	defer quicktemplate.ReleaseWriter(qw)
	qw.N().S(`<div style="display:flex; gap:`)
	qw.N().D(gap)
	qw.N().S(`px; justify-content:`)
	qw.N().S(justify)
	qw.N().S(`;">`)
	for i, o := range objs {
		qw.N().S(`<div>`)
		if i < len(opts.Titles) && opts.Titles[i] != "" {
			qw.N().S(`<h4>`)
			qw.E().S(opts.Titles[i])
			qw.N().S(`</h4>`)
		}
		switch x := o.(type) {
		case HTMLer:
			qw.N().S(x.HTML())
		case fmt.Stringer:
			qw.N().S(`<pre>`)
			qw.E().S(x.String())
			qw.N().S(`</pre>`)
		}
		qw.N().S(`</div>`)
	}
	qw.N().S(`</div>`)
	return nil
}
