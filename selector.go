// Copyright 2026, Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

package xlstyler

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Span is an inclusive run of 1-based indices. Reversed bounds are swapped.
type Span struct{ From, To int }

func (s Span) String() string { return strconv.Itoa(s.From) + ":" + strconv.Itoa(s.To) }

func (s Span) normalized() Span {
	if s.From > s.To {
		return Span{From: s.To, To: s.From}
	}
	return s
}

type axisKind uint8

const (
	axisAll axisKind = iota
	axisSpans
	axisLetters
	axisMixed
)

// Axis selects indices along the rows or the columns of a sheet.
// The zero Axis selects every index up to the sheet's extent.
type Axis struct {
	kind    axisKind
	spans   []Span
	letters []string
	items   []any
}

// All selects every index up to the current extent of the sheet.
func All() Axis { return Axis{} }

// Index selects the given indices.
func Index(indices ...int) Axis {
	spans := make([]Span, len(indices))
	for i, n := range indices {
		spans[i] = Span{From: n, To: n}
	}
	return Axis{kind: axisSpans, spans: spans}
}

// Range selects from..to, both inclusive.
func Range(from, to int) Axis { return Spans(Span{From: from, To: to}) }

// Spans selects the union of the given spans.
func Spans(spans ...Span) Axis { return Axis{kind: axisSpans, spans: spans} }

// Letters selects columns by name ("C") or by name range ("A:C").
func Letters(tokens ...string) Axis { return Axis{kind: axisLetters, letters: tokens} }

// List selects a heterogeneous list of ints and Spans.
// A list consisting only of strings is treated as Letters.
func List(items ...any) Axis {
	if len(items) == 0 {
		return Axis{kind: axisMixed}
	}
	letters := make([]string, 0, len(items))
	for _, it := range items {
		s, ok := it.(string)
		if !ok {
			return Axis{kind: axisMixed, items: items}
		}
		letters = append(letters, s)
	}
	return Letters(letters...)
}

// IsAll reports whether the axis selects everything.
func (a Axis) IsAll() bool { return a.kind == axisAll }

func (a Axis) String() string {
	switch a.kind {
	case axisAll:
		return "all"
	case axisSpans:
		parts := make([]string, len(a.spans))
		for i, s := range a.spans {
			if s.From == s.To {
				parts[i] = strconv.Itoa(s.From)
			} else {
				parts[i] = s.String()
			}
		}
		return strings.Join(parts, ",")
	case axisLetters:
		return strings.Join(a.letters, ",")
	default:
		parts := make([]string, len(a.items))
		for i, it := range a.items {
			parts[i] = fmt.Sprintf("%v", it)
		}
		return strings.Join(parts, ",")
	}
}

// Skip excludes rows from a row selection.
// Header and Footer count from the edges of the whole sheet, not of the selection.
type Skip struct {
	Rows   []int
	Header int
	Footer int
}

func (s Skip) isZero() bool { return len(s.Rows) == 0 && s.Header == 0 && s.Footer == 0 }

// Selection is a rectangle (or an irregular grid) of cells.
type Selection struct {
	Rows Axis
	Cols Axis
	Skip Skip
}

// Resolve returns the selected row and column indices for a sheet
// of maxRow rows and maxCol columns.
func (sel Selection) Resolve(maxRow, maxCol int) (rows, cols []int, err error) {
	var rowErr, colErr error
	if rows, rowErr = ResolveRows(sel.Rows, sel.Skip, maxRow); rowErr != nil {
		rows = nil
	}
	if cols, colErr = ResolveCols(sel.Cols, maxCol); colErr != nil {
		cols = nil
	}
	if err = errors.Join(rowErr, colErr); err != nil {
		return nil, nil, err
	}
	return rows, cols, nil
}

// ResolveRows resolves a row Axis, then removes the rows excluded by skip.
func ResolveRows(a Axis, skip Skip, maxRow int) ([]int, error) {
	rows, err := resolveAxis(a, maxRow, false)
	if err != nil {
		return nil, err
	}
	if skip.isZero() {
		return rows, nil
	}
	if skip.Header < 0 || skip.Footer < 0 {
		return nil, usageErr("skip", "header and footer counts must not be negative",
			strconv.Itoa(skip.Header), strconv.Itoa(skip.Footer))
	}
	excluded := make(map[int]struct{}, len(skip.Rows)+min(skip.Header, maxRow)+min(skip.Footer, maxRow))
	for _, r := range skip.Rows {
		excluded[r] = struct{}{}
	}
	for r := 1; r <= min(skip.Header, maxRow); r++ {
		excluded[r] = struct{}{}
	}
	for r := max(maxRow-skip.Footer+1, 1); skip.Footer > 0 && r <= maxRow; r++ {
		excluded[r] = struct{}{}
	}
	rows = slices.DeleteFunc(rows, func(r int) bool {
		_, ok := excluded[r]
		return ok
	})
	if len(rows) == 0 {
		return nil, usageErr("rows", "no rows left after skipping")
	}
	return rows, nil
}

// ResolveCols resolves a column Axis.
func ResolveCols(a Axis, maxCol int) ([]int, error) {
	return resolveAxis(a, maxCol, true)
}

func resolveAxis(a Axis, maxIndex int, isColumn bool) ([]int, error) {
	arg, limit := "rows", excelize.TotalRows
	if isColumn {
		arg, limit = "cols", excelize.MaxColumns
	}
	var idxs []int
	switch a.kind {
	case axisAll:
		idxs = make([]int, 0, maxIndex)
		for i := 1; i <= maxIndex; i++ {
			idxs = append(idxs, i)
		}

	case axisSpans:
		var invalid []string
		for _, s := range a.spans {
			if s = s.normalized(); s.From < 1 || s.To > limit {
				if s.From == s.To {
					invalid = append(invalid, strconv.Itoa(s.From))
				} else {
					invalid = append(invalid, s.String())
				}
				continue
			}
			idxs = appendSpan(idxs, s)
		}
		if len(invalid) != 0 {
			return nil, usageErr(arg, "indexes must be between 1 and "+strconv.Itoa(limit), invalid...)
		}

	case axisLetters:
		if !isColumn {
			return nil, usageErr(arg, "column names cannot select rows", a.letters...)
		}
		var invalid []string
		for _, tok := range a.letters {
			s, ok := parseColumnRange(tok)
			if !ok {
				invalid = append(invalid, "'"+tok+"'")
				continue
			}
			idxs = appendSpan(idxs, s)
		}
		if len(invalid) != 0 {
			return nil, usageErr(arg, "invalid column names", invalid...)
		}

	case axisMixed:
		var invalid []string
		for _, it := range a.items {
			switch x := it.(type) {
			case int:
				if x < 1 || x > limit {
					invalid = append(invalid, strconv.Itoa(x))
					continue
				}
				idxs = append(idxs, x)
			case Span:
				if s := x.normalized(); s.From >= 1 && s.To <= limit {
					idxs = appendSpan(idxs, s)
					continue
				}
				invalid = append(invalid, x.String())
			default:
				invalid = append(invalid, fmt.Sprintf("'%v'", it))
			}
		}
		if len(invalid) != 0 {
			return nil, usageErr(arg, "invalid indexes", invalid...)
		}

	default:
		return nil, usageErr(arg, fmt.Sprintf("unknown selector %v", a))
	}

	if len(idxs) == 0 {
		return nil, usageErr(arg, "no "+arg+" specified")
	}
	if a.kind != axisAll {
		slices.Sort(idxs)
		idxs = slices.Compact(idxs)
	}
	return idxs, nil
}

func appendSpan(idxs []int, s Span) []int {
	for i := s.From; i <= s.To; i++ {
		idxs = append(idxs, i)
	}
	return idxs
}

// parseColumnRange parses "C" or "A:C".
func parseColumnRange(tok string) (Span, bool) {
	start, stop, isRange := strings.Cut(tok, ":")
	if !isRange {
		stop = start
	} else if strings.Contains(stop, ":") {
		return Span{}, false
	}
	from, err := excelize.ColumnNameToNumber(strings.TrimSpace(start))
	if err != nil {
		return Span{}, false
	}
	to, err := excelize.ColumnNameToNumber(strings.TrimSpace(stop))
	if err != nil {
		return Span{}, false
	}
	return Span{From: from, To: to}.normalized(), true
}

// ColumnName returns the letter name of the 1-based column index.
func ColumnName(col int) (string, error) {
	return excelize.ColumnNumberToName(col)
}
