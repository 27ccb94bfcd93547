// Copyright 2020, 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

package xlstyler

import (
	"errors"
	"io"
)

// Sheet is the grid a Styler works on.
// Rows and columns are 1-based.
type Sheet interface {
	// Dimensions returns the current extent of the sheet.
	Dimensions() (maxRow, maxCol int, err error)
	CellStyle(row, col int) (CellStyle, error)
	SetCellStyle(row, col int, style CellStyle) error
	ColumnWidth(col string) (float64, error)
	SetColumnWidth(col string, width float64) error
	RowHeight(row int) (float64, error)
	SetRowHeight(row int, height float64) error
}

// Writer writes the spreadsheet consisting of the sheets created
// with NewSheet. The write finishes when Close is called.
//
// The writer SHOULD allow writing to separate sheets concurrently,
// and document if it does not provide this functionality.
type Writer interface {
	io.Closer
	NewSheet(name string, cols []Column) (RowSheet, error)
}

// RowSheet is a sheet filled row by row. It should be Closed when finished.
type RowSheet interface {
	io.Closer
	AppendRow(values ...any) error
}

// Column contains the Name of the column and header's style and column's style.
type Column struct {
	Name           string
	Header, Column CellStyle
}

var ErrTooManyRows = errors.New("too many rows")

// Edge is the rendering of one border edge.
type Edge struct {
	Style LineStyle
	// Color is a hex RGB triplet, or empty for automatic.
	Color string
}

// IsSet reports whether the edge is drawn.
func (e Edge) IsSet() bool { return e.Style != LineNone }

// Borders is the border state of a cell.
type Borders struct {
	Top, Right, Bottom, Left Edge
	// Diagonal is drawn in the directions flagged by DiagonalUp and DiagonalDown.
	Diagonal                 Edge
	DiagonalUp, DiagonalDown bool
}

type Font struct {
	Family    string
	Size      float64
	Color     string
	Bold      bool
	Italic    bool
	Strike    bool
	VertAlign VertAlign
	Underline Underline
}

func (f Font) IsZero() bool { return f == Font{} }

type Alignment struct {
	Horizontal   HAlign
	Vertical     VAlign
	WrapText     bool
	ShrinkToFit  bool
	Indent       int
	TextRotation int
}

func (a Alignment) IsZero() bool { return a == Alignment{} }

// Fill is a pattern fill. FgColor is the pattern color, BgColor the color behind it.
type Fill struct {
	Type    FillType
	FgColor string
	BgColor string
}

func (f Fill) IsZero() bool { return f == Fill{} }

// CellStyle is everything a Styler may set on a cell.
// It is comparable, so equal styles can share one style id.
type CellStyle struct {
	Border       Borders
	Fill         Fill
	Font         Font
	Alignment    Alignment
	NumberFormat string
}
