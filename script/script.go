// Copyright 2026, Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

// Package script reads styling steps from YAML and applies them with an xlstyler.Styler.
//
//	sheet: Report
//	steps:
//	  - columnWidth: {cols: "B:F", width: 12}
//	  - border: {rows: "2:5", cols: "B:F", sides: outside, lineStyle: thick}
//	  - border: {rows: "2:5", cols: "B:F", sides: inside, color: "tab:red"}
//	  - format: {rows: 2, cols: "B:F", bold: true, horizontal: center}
package script

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/UNO-SOFT/xlstyler"
	"gopkg.in/yaml.v3"
)

// Script is a list of styling steps for one sheet.
type Script struct {
	// Sheet names the target sheet; empty means the caller decides.
	Sheet string `yaml:"sheet,omitempty"`
	Steps []Step `yaml:"steps"`
}

// Step holds exactly one operation.
type Step struct {
	ColumnWidth *ColumnWidth `yaml:"columnWidth,omitempty"`
	RowHeight   *RowHeight   `yaml:"rowHeight,omitempty"`
	Border      *Border      `yaml:"border,omitempty"`
	Format      *Format      `yaml:"format,omitempty"`
	PatternFill *PatternFill `yaml:"patternFill,omitempty"`
}

// Selection is the YAML form of xlstyler.Selection.
type Selection struct {
	Rows       Axis  `yaml:"rows,omitempty"`
	Cols       Axis  `yaml:"cols,omitempty"`
	SkipRows   []int `yaml:"skipRows,omitempty"`
	SkipHeader int   `yaml:"skipHeader,omitempty"`
	SkipFooter int   `yaml:"skipFooter,omitempty"`
}

func (s Selection) selection() xlstyler.Selection {
	return xlstyler.Selection{
		Rows: s.Rows.Axis,
		Cols: s.Cols.Axis,
		Skip: xlstyler.Skip{Rows: s.SkipRows, Header: s.SkipHeader, Footer: s.SkipFooter},
	}
}

type ColumnWidth struct {
	Cols  Axis  `yaml:"cols,omitempty"`
	Width Sizes `yaml:"width"`
}

type RowHeight struct {
	Rows       Axis  `yaml:"rows,omitempty"`
	SkipRows   []int `yaml:"skipRows,omitempty"`
	SkipHeader int   `yaml:"skipHeader,omitempty"`
	SkipFooter int   `yaml:"skipFooter,omitempty"`
	Height     Sizes `yaml:"height"`
}

type Border struct {
	Selection `yaml:",inline"`

	Sides        string `yaml:"sides,omitempty"`
	Top          Side   `yaml:"top,omitempty"`
	Right        Side   `yaml:"right,omitempty"`
	Bottom       Side   `yaml:"bottom,omitempty"`
	Left         Side   `yaml:"left,omitempty"`
	Horizontal   Side   `yaml:"horizontal,omitempty"`
	Vertical     Side   `yaml:"vertical,omitempty"`
	DiagonalUp   bool   `yaml:"diagonalUp,omitempty"`
	DiagonalDown bool   `yaml:"diagonalDown,omitempty"`
	LineStyle    string `yaml:"lineStyle,omitempty"`
	Color        string `yaml:"color,omitempty"`
}

type Format struct {
	Selection `yaml:",inline"`

	Horizontal   string `yaml:"horizontal,omitempty"`
	Vertical     string `yaml:"vertical,omitempty"`
	WrapText     bool   `yaml:"wrapText,omitempty"`
	ShrinkToFit  bool   `yaml:"shrinkToFit,omitempty"`
	Indent       int    `yaml:"indent,omitempty"`
	TextRotation int    `yaml:"textRotation,omitempty"`
	NumberFormat string `yaml:"numberFormat,omitempty"`

	Family    string    `yaml:"family,omitempty"`
	Size      float64   `yaml:"size,omitempty"`
	Color     string    `yaml:"color,omitempty"`
	Bold      bool      `yaml:"bold,omitempty"`
	Italic    bool      `yaml:"italic,omitempty"`
	Strike    bool      `yaml:"strike,omitempty"`
	VertAlign string    `yaml:"vertAlign,omitempty"`
	Underline Underline `yaml:"underline,omitempty"`

	BackgroundColor string `yaml:"backgroundColor,omitempty"`
}

type PatternFill struct {
	Selection `yaml:",inline"`

	Type            string `yaml:"type,omitempty"`
	Color           string `yaml:"color,omitempty"`
	BackgroundColor string `yaml:"backgroundColor,omitempty"`
}

// Load reads a Script from a YAML file.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read style script: %w", err)
	}
	scr, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return scr, nil
}

// Parse decodes a Script, rejecting unknown keys and steps
// without exactly one operation.
func Parse(data []byte) (*Script, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var scr Script
	if err := dec.Decode(&scr); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse style script: %w", err)
	}
	var errs []error
	for i, st := range scr.Steps {
		if n := st.count(); n != 1 {
			errs = append(errs, fmt.Errorf("step %d: has %d operations, want exactly one", i+1, n))
		}
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return &scr, nil
}

func (st Step) count() int {
	var n int
	for _, ok := range []bool{
		st.ColumnWidth != nil, st.RowHeight != nil, st.Border != nil,
		st.Format != nil, st.PatternFill != nil,
	} {
		if ok {
			n++
		}
	}
	return n
}

// Apply runs the steps in order, stopping at the first failure.
func (scr *Script) Apply(s *xlstyler.Styler) error {
	for i, st := range scr.Steps {
		st.apply(s)
		if err := s.Err(); err != nil {
			return fmt.Errorf("step %d: %w", i+1, err)
		}
	}
	return nil
}

func (st Step) apply(s *xlstyler.Styler) {
	switch {
	case st.ColumnWidth != nil:
		s.ColumnWidth(st.ColumnWidth.Cols.Axis, st.ColumnWidth.Width...)
	case st.RowHeight != nil:
		rh := st.RowHeight
		s.RowHeight(rh.Rows.Axis,
			xlstyler.Skip{Rows: rh.SkipRows, Header: rh.SkipHeader, Footer: rh.SkipFooter},
			rh.Height...)
	case st.Border != nil:
		b := st.Border
		s.Border(xlstyler.BorderOptions{
			Selection:    b.selection(),
			Sides:        b.Sides,
			Top:          b.Top.Side,
			Right:        b.Right.Side,
			Bottom:       b.Bottom.Side,
			Left:         b.Left.Side,
			Horizontal:   b.Horizontal.Side,
			Vertical:     b.Vertical.Side,
			DiagonalUp:   b.DiagonalUp,
			DiagonalDown: b.DiagonalDown,
			LineStyle:    xlstyler.LineStyle(b.LineStyle),
			Color:        b.Color,
		})
	case st.Format != nil:
		f := st.Format
		s.Format(xlstyler.FormatOptions{
			Selection:       f.selection(),
			Horizontal:      xlstyler.HAlign(f.Horizontal),
			Vertical:        xlstyler.VAlign(f.Vertical),
			WrapText:        f.WrapText,
			ShrinkToFit:     f.ShrinkToFit,
			Indent:          f.Indent,
			TextRotation:    f.TextRotation,
			NumberFormat:    f.NumberFormat,
			Family:          f.Family,
			Size:            f.Size,
			Color:           f.Color,
			Bold:            f.Bold,
			Italic:          f.Italic,
			Strike:          f.Strike,
			VertAlign:       xlstyler.VertAlign(f.VertAlign),
			Underline:       f.Underline.Underline,
			BackgroundColor: f.BackgroundColor,
		})
	case st.PatternFill != nil:
		p := st.PatternFill
		s.PatternFill(xlstyler.FillOptions{
			Selection:       p.selection(),
			Type:            xlstyler.FillType(p.Type),
			Color:           p.Color,
			BackgroundColor: p.BackgroundColor,
		})
	}
}
