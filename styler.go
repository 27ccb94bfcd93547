// Copyright 2026, Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

// Package xlstyler applies borders, fills, fonts, alignment and dimensions
// to selections of a sheet without computing per-cell styles by hand.
//
// Every call is validated before the sheet is touched:
// an invalid call leaves the sheet unmodified.
//
//	err := xlstyler.New(sheet).
//		ColumnWidth(xlstyler.Range(2, 6), 12).
//		Border(xlstyler.BorderOptions{
//			Selection: xlstyler.Selection{Rows: xlstyler.Range(2, 5), Cols: xlstyler.Letters("B:F")},
//			Sides:     "outside",
//			LineStyle: xlstyler.LineThick,
//		}).
//		Err()
package xlstyler

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/UNO-SOFT/xlstyler/color"
)

// Styler applies styles to a Sheet. Its methods can be chained;
// after the first failure the rest are skipped and Err returns the error.
//
// A Styler is not safe for concurrent use.
type Styler struct {
	sheet        Sheet
	logger       *slog.Logger
	resolveColor func(string) (string, error)
	err          error
}

type Option func(*Styler)

// WithLogger sets the logger, which gets a Debug record per call.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Styler) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithColorResolver replaces color.Resolve.
func WithColorResolver(resolve func(string) (string, error)) Option {
	return func(s *Styler) {
		if resolve != nil {
			s.resolveColor = resolve
		}
	}
}

// New returns a Styler for sheet.
func New(sheet Sheet, options ...Option) *Styler {
	s := &Styler{
		sheet:        sheet,
		logger:       slog.New(slog.DiscardHandler),
		resolveColor: color.Resolve,
	}
	for _, o := range options {
		o(s)
	}
	return s
}

// Err returns the first error of the chain.
func (s *Styler) Err() error { return s.err }

func (s *Styler) do(f func() error) *Styler {
	if s.err == nil {
		s.err = f()
	}
	return s
}

// ColumnWidth sets the width of the selected columns.
// With one width, every column gets it; otherwise widths are paired
// with the columns in order. With All and several widths, the first
// len(widths) columns are set.
func (s *Styler) ColumnWidth(cols Axis, widths ...float64) *Styler {
	return s.do(func() error {
		if err := checkSizes("width", widths); err != nil {
			return fmt.Errorf("column width: %w", err)
		}
		var idxs []int
		if cols.IsAll() && len(widths) > 1 {
			idxs = make([]int, len(widths))
			for i := range idxs {
				idxs[i] = i + 1
			}
		} else {
			_, maxCol, err := s.sheet.Dimensions()
			if err != nil {
				return err
			}
			if idxs, err = ResolveCols(cols, maxCol); err != nil {
				return fmt.Errorf("column width: %w", err)
			}
		}
		widths, err := pairSizes("width", "cols", widths, len(idxs))
		if err != nil {
			return fmt.Errorf("column width: %w", err)
		}
		s.logger.Debug("column width", "cols", cols, "n", len(idxs))
		for k, j := range idxs {
			name, err := ColumnName(j)
			if err != nil {
				return err
			}
			if err := s.sheet.SetColumnWidth(name, widths[k]); err != nil {
				return fmt.Errorf("column width of %s: %w", name, err)
			}
		}
		return nil
	})
}

// RowHeight sets the height of the selected rows, pairing heights
// like ColumnWidth does.
func (s *Styler) RowHeight(rows Axis, skip Skip, heights ...float64) *Styler {
	return s.do(func() error {
		if err := checkSizes("height", heights); err != nil {
			return fmt.Errorf("row height: %w", err)
		}
		maxRow, _, err := s.sheet.Dimensions()
		if err != nil {
			return err
		}
		idxs, err := ResolveRows(rows, skip, maxRow)
		if err != nil {
			return fmt.Errorf("row height: %w", err)
		}
		if heights, err = pairSizes("height", "rows", heights, len(idxs)); err != nil {
			return fmt.Errorf("row height: %w", err)
		}
		s.logger.Debug("row height", "rows", rows, "n", len(idxs))
		for k, i := range idxs {
			if err := s.sheet.SetRowHeight(i, heights[k]); err != nil {
				return fmt.Errorf("row height of %d: %w", i, err)
			}
		}
		return nil
	})
}

func checkSizes(arg string, sizes []float64) error {
	if len(sizes) == 0 {
		return usageErr(arg, "no "+arg+" given")
	}
	var invalid []string
	for _, f := range sizes {
		if f < 0 {
			invalid = append(invalid, strconv.FormatFloat(f, 'g', -1, 64))
		}
	}
	if len(invalid) != 0 {
		return usageErr(arg, "must not be negative", invalid...)
	}
	return nil
}

func pairSizes(arg, axis string, sizes []float64, n int) ([]float64, error) {
	if len(sizes) == 1 {
		out := make([]float64, n)
		for i := range out {
			out[i] = sizes[0]
		}
		return out, nil
	}
	if len(sizes) != n {
		return nil, usageErr(arg, fmt.Sprintf(
			"the lists %q and %q must be of equal length: %d != %d",
			arg, axis, len(sizes), n))
	}
	return sizes, nil
}

// Border draws the requested edges around and inside the selection.
//
// Top, Right, Bottom and Left land only on the perimeter of the selection,
// Horizontal and Vertical only between selected cells. Edges the call does
// not address keep their previous style, and nothing but the border of the
// cells changes.
func (s *Styler) Border(opts BorderOptions) *Styler {
	return s.do(func() error {
		if err := s.border(opts); err != nil {
			return fmt.Errorf("border: %w", err)
		}
		return nil
	})
}

func (s *Styler) border(opts BorderOptions) error {
	rows, cols, selErr := s.resolve(opts.Selection)
	clr, colorErr := s.color("color", opts.Color)
	es, esErr := buildEdgeSet(opts, clr)
	if err := errors.Join(selErr, colorErr, esErr); err != nil {
		return err
	}
	s.logger.Debug("border", "rows", len(rows), "cols", len(cols), "sides", opts.Sides, "lineStyle", opts.LineStyle)

	r := boundsOf(rows, cols)
	return s.update(rows, cols, func(row, col int, st *CellStyle) {
		st.Border = mergeBorders(st.Border, es, r, row, col)
	})
}

const maxFontSize = 409

// FormatOptions configures a Format call. Zero fields are left alone.
type FormatOptions struct {
	Selection

	Horizontal   HAlign
	Vertical     VAlign
	WrapText     bool
	ShrinkToFit  bool
	Indent       int
	TextRotation int

	// NumberFormat is a custom number format code, like "0.00%".
	NumberFormat string

	Family    string
	Size      float64
	Color     string
	Bold      bool
	Italic    bool
	Strike    bool
	VertAlign VertAlign
	Underline Underline

	// BackgroundColor sets a solid fill.
	BackgroundColor string
}

// Format sets the alignment, number format, font and background of the selection.
// A given alignment, font or background replaces the previous one of the cell.
func (s *Styler) Format(opts FormatOptions) *Styler {
	return s.do(func() error {
		if err := s.format(opts); err != nil {
			return fmt.Errorf("format: %w", err)
		}
		return nil
	})
}

func (s *Styler) format(opts FormatOptions) error {
	rows, cols, selErr := s.resolve(opts.Selection)
	errs := []error{selErr}
	if opts.Horizontal != "" && !opts.Horizontal.Valid() {
		errs = append(errs, usageErr("horizontal", "should be one of "+joinQuoted(HAligns), "'"+string(opts.Horizontal)+"'"))
	}
	if opts.Vertical != "" && !opts.Vertical.Valid() {
		errs = append(errs, usageErr("vertical", "should be one of "+joinQuoted(VAligns), "'"+string(opts.Vertical)+"'"))
	}
	if opts.Indent < 0 {
		errs = append(errs, usageErr("indent", "must not be negative", strconv.Itoa(opts.Indent)))
	}
	if !(0 <= opts.TextRotation && opts.TextRotation <= 180 || opts.TextRotation == 255) {
		errs = append(errs, usageErr("textRotation", "must be between 0 and 180, or 255", strconv.Itoa(opts.TextRotation)))
	}
	if opts.Size < 0 || opts.Size > maxFontSize {
		errs = append(errs, usageErr("size", "must be between 0 and 409", strconv.FormatFloat(opts.Size, 'g', -1, 64)))
	}
	if opts.VertAlign != "" && !opts.VertAlign.Valid() {
		errs = append(errs, usageErr("vertAlign", "should be one of "+joinQuoted(VertAligns), "'"+string(opts.VertAlign)+"'"))
	}
	if opts.Underline != UnderlineNone && !opts.Underline.Valid() {
		errs = append(errs, usageErr("underline", "must be one of "+joinQuoted(Underlines), "'"+string(opts.Underline)+"'"))
	}
	fontColor, err := s.color("color", opts.Color)
	errs = append(errs, err)
	bgColor, err := s.color("backgroundColor", opts.BackgroundColor)
	errs = append(errs, err)
	if err := errors.Join(errs...); err != nil {
		return err
	}

	align := Alignment{
		Horizontal: opts.Horizontal, Vertical: opts.Vertical,
		WrapText: opts.WrapText, ShrinkToFit: opts.ShrinkToFit,
		Indent: opts.Indent, TextRotation: opts.TextRotation,
	}
	font := Font{
		Family: opts.Family, Size: opts.Size, Color: fontColor,
		Bold: opts.Bold, Italic: opts.Italic, Strike: opts.Strike,
		VertAlign: opts.VertAlign, Underline: opts.Underline,
	}
	var fill Fill
	if bgColor != "" {
		fill = Fill{Type: FillSolid, FgColor: bgColor}
	}
	s.logger.Debug("format", "rows", len(rows), "cols", len(cols))
	return s.update(rows, cols, func(_, _ int, st *CellStyle) {
		if !align.IsZero() {
			st.Alignment = align
		}
		if opts.NumberFormat != "" {
			st.NumberFormat = opts.NumberFormat
		}
		if !font.IsZero() {
			st.Font = font
		}
		if !fill.IsZero() {
			st.Fill = fill
		}
	})
}

// FillOptions configures a PatternFill call.
type FillOptions struct {
	Selection
	// Type is the pattern, FillNone if empty.
	Type FillType
	// Color is the color of the pattern.
	Color string
	// BackgroundColor is the color behind the pattern.
	BackgroundColor string
}

// PatternFill replaces the fill of the selection.
func (s *Styler) PatternFill(opts FillOptions) *Styler {
	return s.do(func() error {
		if err := s.patternFill(opts); err != nil {
			return fmt.Errorf("pattern fill: %w", err)
		}
		return nil
	})
}

func (s *Styler) patternFill(opts FillOptions) error {
	rows, cols, selErr := s.resolve(opts.Selection)
	typ := opts.Type
	var typErr error
	if typ == "" {
		typ = FillNone
	} else if !typ.Valid() {
		typErr = usageErr("type", "must be one of "+joinQuoted(FillTypes), "'"+string(typ)+"'")
	}
	fg, fgErr := s.color("color", opts.Color)
	bg, bgErr := s.color("backgroundColor", opts.BackgroundColor)
	if err := errors.Join(selErr, typErr, fgErr, bgErr); err != nil {
		return err
	}
	fill := Fill{Type: typ, FgColor: fg, BgColor: bg}
	if fill == (Fill{Type: FillNone}) {
		fill = Fill{}
	}
	s.logger.Debug("pattern fill", "rows", len(rows), "cols", len(cols), "type", typ)
	return s.update(rows, cols, func(_, _ int, st *CellStyle) { st.Fill = fill })
}

func (s *Styler) resolve(sel Selection) (rows, cols []int, err error) {
	maxRow, maxCol, err := s.sheet.Dimensions()
	if err != nil {
		return nil, nil, err
	}
	return sel.Resolve(maxRow, maxCol)
}

func (s *Styler) color(arg, name string) (string, error) {
	if name == "" {
		return "", nil
	}
	c, err := s.resolveColor(name)
	if err != nil {
		return "", &UsageError{Arg: arg, Msg: err.Error()}
	}
	return c, nil
}

type cellUpdate struct {
	row, col int
	style    CellStyle
}

// update reads every selected cell, computes its new style with f,
// and only then writes the changed ones back.
func (s *Styler) update(rows, cols []int, f func(row, col int, st *CellStyle)) error {
	updates := make([]cellUpdate, 0, len(rows)*len(cols))
	for _, i := range rows {
		for _, j := range cols {
			old, err := s.sheet.CellStyle(i, j)
			if err != nil {
				return fmt.Errorf("read style of %d/%d: %w", i, j, err)
			}
			st := old
			f(i, j, &st)
			if st != old {
				updates = append(updates, cellUpdate{row: i, col: j, style: st})
			}
		}
	}
	for _, u := range updates {
		if err := s.sheet.SetCellStyle(u.row, u.col, u.style); err != nil {
			return fmt.Errorf("write style of %d/%d: %w", u.row, u.col, err)
		}
	}
	return nil
}
