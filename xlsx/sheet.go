// Copyright 2026, Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

package xlsx

import (
	"fmt"
	"strings"
	"sync"

	"github.com/UNO-SOFT/xlstyler"
	"github.com/xuri/excelize/v2"
)

var _ = (xlstyler.Sheet)((*Sheet)(nil))

// Sheet is an xlstyler.Sheet backed by a worksheet of an excelize.File.
type Sheet struct {
	xl     *excelize.File
	Name   string
	styles *styleCache

	mu sync.Mutex
	// the extent of the cells styled through this Sheet
	maxRow, maxCol int
}

// NewSheet returns the styling accessor of the named worksheet of xl.
func NewSheet(xl *excelize.File, name string) (*Sheet, error) {
	return newSheet(xl, name, newStyleCache())
}

func newSheet(xl *excelize.File, name string, styles *styleCache) (*Sheet, error) {
	idx, err := xl.GetSheetIndex(name)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	if idx < 0 {
		return nil, fmt.Errorf("sheet %q does not exist (have %q)", name, xl.GetSheetList())
	}
	return &Sheet{xl: xl, Name: name, styles: styles}, nil
}

// Dimensions returns the extent of the used range: cells with values,
// the stored dimension of the worksheet, and the cells styled through s.
// An empty sheet is 1×1.
func (s *Sheet) Dimensions() (maxRow, maxCol int, err error) {
	s.mu.Lock()
	maxRow, maxCol = s.maxRow, s.maxCol
	s.mu.Unlock()

	dim, err := s.xl.GetSheetDimension(s.Name)
	if err != nil {
		return 0, 0, fmt.Errorf("%s: %w", s.Name, err)
	}
	if dim != "" {
		last := dim
		if _, after, ok := strings.Cut(dim, ":"); ok {
			last = after
		}
		if col, row, err := excelize.CellNameToCoordinates(last); err == nil {
			maxRow, maxCol = max(maxRow, row), max(maxCol, col)
		}
	}

	rows, err := s.xl.GetRows(s.Name)
	if err != nil {
		return 0, 0, fmt.Errorf("%s: %w", s.Name, err)
	}
	maxRow = max(maxRow, len(rows))
	for _, row := range rows {
		maxCol = max(maxCol, len(row))
	}
	return max(maxRow, 1), max(maxCol, 1), nil
}

func (s *Sheet) CellStyle(row, col int) (xlstyler.CellStyle, error) {
	axis, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return xlstyler.CellStyle{}, err
	}
	id, err := s.xl.GetCellStyle(s.Name, axis)
	if err != nil {
		return xlstyler.CellStyle{}, fmt.Errorf("%s[%s]: %w", s.Name, axis, err)
	}
	st, err := s.styles.style(s.xl, id)
	if err != nil {
		return st, fmt.Errorf("%s[%s]: style %d: %w", s.Name, axis, id, err)
	}
	return st, nil
}

func (s *Sheet) SetCellStyle(row, col int, style xlstyler.CellStyle) error {
	axis, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	id, err := s.styles.id(s.xl, style)
	if err != nil {
		return fmt.Errorf("%s[%s]: %w", s.Name, axis, err)
	}
	if err = s.xl.SetCellStyle(s.Name, axis, axis, id); err != nil {
		return fmt.Errorf("%s[%s]: %w", s.Name, axis, err)
	}
	s.mu.Lock()
	s.maxRow, s.maxCol = max(s.maxRow, row), max(s.maxCol, col)
	s.mu.Unlock()
	return nil
}

func (s *Sheet) ColumnWidth(col string) (float64, error) {
	return s.xl.GetColWidth(s.Name, col)
}

func (s *Sheet) SetColumnWidth(col string, width float64) error {
	return s.xl.SetColWidth(s.Name, col, col, width)
}

func (s *Sheet) RowHeight(row int) (float64, error) {
	return s.xl.GetRowHeight(s.Name, row)
}

func (s *Sheet) SetRowHeight(row int, height float64) error {
	return s.xl.SetRowHeight(s.Name, row, height)
}
