// Copyright 2020, 2023 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

package xlsx

import (
	"database/sql"
	"database/sql/driver"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/UNO-SOFT/xlstyler"
	"github.com/xuri/excelize/v2"
)

var _ = (xlstyler.Writer)((*XLSXWriter)(nil))

type XLSXWriter struct {
	w      io.Writer
	xl     *excelize.File
	styles *styleCache
	sheets []string
	mu     sync.Mutex
}

type XLSXSheet struct {
	xl   *excelize.File
	Name string
	row  int64
	mu   sync.Mutex
}

// NewWriter returns a new xlstyler.Writer.
//
// This writer allows concurrent writes to separate sheets.
//
// This writer collects everything in memory, so big sheets may impose problems.
func NewWriter(w io.Writer) *XLSXWriter {
	return &XLSXWriter{w: w, xl: excelize.NewFile(), styles: newStyleCache()}
}

func (xlw *XLSXWriter) Close() error {
	if xlw == nil {
		return nil
	}
	xlw.mu.Lock()
	defer xlw.mu.Unlock()
	xl, w := xlw.xl, xlw.w
	xlw.xl, xlw.w = nil, nil
	if xl == nil || w == nil {
		return nil
	}
	_, err := xl.WriteTo(w)
	if closeErr := xl.Close(); err == nil {
		err = closeErr
	}
	return err
}

func (xlw *XLSXWriter) NewSheet(name string, columns []xlstyler.Column) (xlstyler.RowSheet, error) {
	xlw.mu.Lock()
	defer xlw.mu.Unlock()
	xlw.sheets = append(xlw.sheets, name)
	if len(xlw.sheets) == 1 { // first
		if err := xlw.xl.SetSheetName("Sheet1", name); err != nil {
			return nil, err
		}
	} else if _, err := xlw.xl.NewSheet(name); err != nil {
		return nil, err
	}
	var hasHeader bool
	for i, c := range columns {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, err
		}
		if c.Column != (xlstyler.CellStyle{}) {
			s, err := xlw.styles.id(xlw.xl, c.Column)
			if err != nil {
				return nil, err
			}
			if err = xlw.xl.SetColStyle(name, col, s); err != nil {
				return nil, err
			}
		}
		if c.Header != (xlstyler.CellStyle{}) {
			s, err := xlw.styles.id(xlw.xl, c.Header)
			if err != nil {
				return nil, err
			}
			if err = xlw.xl.SetCellStyle(name, col+"1", col+"1", s); err != nil {
				return nil, err
			}
		}
		if c.Name != "" {
			hasHeader = true
			if err = xlw.xl.SetCellStr(name, col+"1", c.Name); err != nil {
				return nil, err
			}
		}
	}
	xls := &XLSXSheet{xl: xlw.xl, Name: name}
	if hasHeader {
		xls.row++
	}
	return xls, nil
}

// Sheet returns the styling accessor of a sheet created with NewSheet.
// It shares the style cache of the writer.
func (xlw *XLSXWriter) Sheet(name string) (*Sheet, error) {
	xlw.mu.Lock()
	defer xlw.mu.Unlock()
	if xlw.xl == nil {
		return nil, fmt.Errorf("%s: writer is closed", name)
	}
	return newSheet(xlw.xl, name, xlw.styles)
}

// MaxRowCount is the number of maximum rows.
const MaxRowCount = excelize.TotalRows

func (xls *XLSXSheet) Close() error { return nil }
func (xls *XLSXSheet) AppendRow(values ...any) error {
	xls.mu.Lock()
	defer xls.mu.Unlock()
	if xls.row >= MaxRowCount {
		return xlstyler.ErrTooManyRows
	}
	xls.row++
	for i, v := range values {
		axis, err := excelize.CoordinatesToCellName(i+1, int(xls.row))
		if err != nil {
			return fmt.Errorf("%d/%d: %w", i, int(xls.row), err)
		}
		if v == nil {
			continue
		}
		if vr, ok := v.(driver.Valuer); ok {
			if vv, err := vr.Value(); err == nil {
				v = vv
			}
			if v == nil {
				continue
			}
		}
		var printed, isNil bool
		switch x := v.(type) {
		case time.Time:
			if isNil = x.IsZero(); !isNil {
				err = xls.xl.SetCellStr(xls.Name, axis, x.Format("2006-01-02"))
				printed = true
			}
		case sql.NullTime:
			if x.Valid && !x.Time.IsZero() {
				err = xls.xl.SetCellStr(xls.Name, axis, x.Time.Format("2006-01-02"))
				printed = true
			} else {
				isNil = true
			}
		case sql.NullFloat64:
			if x.Valid {
				err = xls.xl.SetCellFloat(xls.Name, axis, x.Float64, -1, 64)
				printed = true
			} else {
				isNil = true
			}
		case sql.NullInt64:
			if x.Valid {
				err = xls.xl.SetCellValue(xls.Name, axis, x.Int64)
				printed = true
			} else {
				isNil = true
			}
		case sql.NullString:
			if x.Valid {
				v = x.String
			} else {
				isNil = true
			}
		case fmt.Stringer:
			v = x.String()
		}
		if isNil {
			continue
		}
		if err != nil {
			return fmt.Errorf("%s[%s]: %w", xls.Name, axis, err)
		}
		if printed {
			continue
		}
		if s, ok := v.(string); ok {
			err = xls.xl.SetCellStr(xls.Name, axis, s)
		} else {
			err = xls.xl.SetCellValue(xls.Name, axis, v)
		}
		if err != nil {
			return fmt.Errorf("%s[%s]: %w", xls.Name, axis, err)
		}
	}
	return nil
}
