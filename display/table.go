// Copyright 2026, Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

package display

import (
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/valyala/quicktemplate"
)

// Table is a simple tabular object with both HTML and text representations.
type Table struct {
	Header []string
	Rows   [][]string
}

// HTML renders the table as an escaped <table>.
func (t Table) HTML() string {
	bb := quicktemplate.AcquireByteBuffer()
	defer quicktemplate.ReleaseByteBuffer(bb)
	qw := quicktemplate.AcquireWriter(bb)
	defer quicktemplate.ReleaseWriter(qw)

	qw.N().S(`<table>`)
	if len(t.Header) != 0 {
		qw.N().S(`<thead><tr>`)
		for _, h := range t.Header {
			qw.N().S(`<th>`)
			qw.E().S(h)
			qw.N().S(`</th>`)
		}
		qw.N().S(`</tr></thead>`)
	}
	qw.N().S(`<tbody>`)
	for _, row := range t.Rows {
		qw.N().S(`<tr>`)
		for _, c := range row {
			qw.N().S(`<td>`)
			qw.E().S(c)
			qw.N().S(`</td>`)
		}
		qw.N().S(`</tr>`)
	}
	qw.N().S(`</tbody></table>`)
	return string(bb.B)
}

// String renders the table as text.
func (t Table) String() string {
	var buf strings.Builder
	tw := tablewriter.NewWriter(&buf)
	if len(t.Header) != 0 {
		header := make([]any, len(t.Header))
		for i, h := range t.Header {
			header[i] = h
		}
		tw.Header(header...)
	}
	if err := tw.Bulk(t.Rows); err != nil {
		return err.Error()
	}
	if err := tw.Render(); err != nil {
		return err.Error()
	}
	return buf.String()
}
