// Copyright 2026, Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

package xlstyler_test

import (
	"errors"
	"testing"

	"github.com/UNO-SOFT/xlstyler"
	"github.com/UNO-SOFT/xlstyler/color"
	"github.com/UNO-SOFT/xlstyler/xlsx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

const sheetName = "Sheet1"

// newSheet returns a 6×6 sheet.
func newSheet(t *testing.T) (*excelize.File, *xlsx.Sheet) {
	t.Helper()
	xl := excelize.NewFile()
	t.Cleanup(func() { xl.Close() })
	require.NoError(t, xl.SetCellValue(sheetName, "F6", "x"))
	sh, err := xlsx.NewSheet(xl, sheetName)
	require.NoError(t, err)
	return xl, sh
}

func snapshot(t *testing.T, sh xlstyler.Sheet) map[[2]int]xlstyler.CellStyle {
	t.Helper()
	m := make(map[[2]int]xlstyler.CellStyle)
	for i := 1; i <= 6; i++ {
		for j := 1; j <= 6; j++ {
			st, err := sh.CellStyle(i, j)
			require.NoError(t, err)
			m[[2]int{i, j}] = st
		}
	}
	return m
}

func cellBorder(t *testing.T, sh xlstyler.Sheet, row, col int) xlstyler.Borders {
	t.Helper()
	st, err := sh.CellStyle(row, col)
	require.NoError(t, err)
	return st.Border
}

var block = xlstyler.Selection{Rows: xlstyler.Range(2, 5), Cols: xlstyler.Letters("B:E")}

func TestBorderOutside(t *testing.T) {
	_, sh := newSheet(t)
	err := xlstyler.New(sh).Border(xlstyler.BorderOptions{
		Selection: block, Sides: "outside", LineStyle: xlstyler.LineThick,
	}).Err()
	require.NoError(t, err)

	p := xlstyler.Edge{Style: xlstyler.LineThick}
	assert.Equal(t, xlstyler.Borders{Top: p, Left: p}, cellBorder(t, sh, 2, 2))
	assert.Equal(t, xlstyler.Borders{Top: p}, cellBorder(t, sh, 2, 3))
	assert.Equal(t, xlstyler.Borders{Top: p, Right: p}, cellBorder(t, sh, 2, 5))
	assert.Equal(t, xlstyler.Borders{Bottom: p, Right: p}, cellBorder(t, sh, 5, 5))
	assert.Equal(t, xlstyler.Borders{Left: p}, cellBorder(t, sh, 4, 2))
	assert.Equal(t, xlstyler.Borders{}, cellBorder(t, sh, 3, 3))
	assert.Equal(t, xlstyler.Borders{}, cellBorder(t, sh, 1, 1))
	assert.Equal(t, xlstyler.Borders{}, cellBorder(t, sh, 6, 6))
}

func TestBorderInsideThenOutside(t *testing.T) {
	xl, sh := newSheet(t)
	err := xlstyler.New(sh).
		Border(xlstyler.BorderOptions{
			Selection: block, Sides: "inside", LineStyle: xlstyler.LineMedium, Color: "r",
		}).
		Border(xlstyler.BorderOptions{
			Selection: block, Sides: "outside", LineStyle: xlstyler.LineThick, Color: "b",
		}).
		Err()
	require.NoError(t, err)

	p := xlstyler.Edge{Style: xlstyler.LineThick, Color: "0000FF"}
	q := xlstyler.Edge{Style: xlstyler.LineMedium, Color: "FF0000"}
	want := map[[2]int]xlstyler.Borders{
		{2, 2}: {Top: p, Left: p, Bottom: q, Right: q},
		{2, 3}: {Top: p, Bottom: q, Left: q, Right: q},
		{3, 3}: {Top: q, Bottom: q, Left: q, Right: q},
		{5, 5}: {Top: q, Left: q, Bottom: p, Right: p},
		{1, 3}: {},
	}
	for k, w := range want {
		assert.Equal(t, w, cellBorder(t, sh, k[0], k[1]), "%v", k)
	}

	// read back through excelize, without the style cache
	fresh, err := xlsx.NewSheet(xl, sheetName)
	require.NoError(t, err)
	for k, w := range want {
		assert.Equal(t, w, cellBorder(t, fresh, k[0], k[1]), "fresh %v", k)
	}
}

func TestBorderIdempotent(t *testing.T) {
	_, sh := newSheet(t)
	opts := xlstyler.BorderOptions{
		Selection: block, Sides: "all", LineStyle: xlstyler.LineDashed,
		DiagonalUp: true, Color: "tab:green",
	}
	require.NoError(t, xlstyler.New(sh).Border(opts).Err())
	first := snapshot(t, sh)
	require.NoError(t, xlstyler.New(sh).Border(opts).Err())
	assert.Equal(t, first, snapshot(t, sh))

	b := cellBorder(t, sh, 3, 4)
	assert.True(t, b.DiagonalUp)
	assert.False(t, b.DiagonalDown)
	assert.Equal(t, xlstyler.Edge{Style: xlstyler.LineDashed, Color: "2CA02C"}, b.Diagonal)
}

func TestBorderIrregularRows(t *testing.T) {
	for name, sel := range map[string]xlstyler.Selection{
		"index": {
			Rows: xlstyler.Index(2, 4, 6), Cols: xlstyler.Letters("B:C"),
		},
		"skip": {
			Rows: xlstyler.Range(2, 6), Cols: xlstyler.Letters("B:C"),
			Skip: xlstyler.Skip{Rows: []int{3, 5}},
		},
	} {
		t.Run(name, func(t *testing.T) {
			xl, sh := newSheet(t)
			err := xlstyler.New(sh).Border(xlstyler.BorderOptions{
				Selection:  sel,
				Sides:      "all",
				LineStyle:  xlstyler.LineThick,
				Horizontal: xlstyler.SideStyle(xlstyler.LineDashed),
				Vertical:   xlstyler.SideStyle(xlstyler.LineHair),
			}).Err()
			require.NoError(t, err)

			p := xlstyler.Edge{Style: xlstyler.LineThick}
			h := xlstyler.Edge{Style: xlstyler.LineDashed}
			v := xlstyler.Edge{Style: xlstyler.LineHair}
			want := map[[2]int]xlstyler.Borders{
				{2, 2}: {Top: p, Bottom: h, Left: p, Right: v},
				{2, 3}: {Top: p, Bottom: h, Left: v, Right: p},
				{4, 2}: {Top: h, Bottom: h, Left: p, Right: v},
				{4, 3}: {Top: h, Bottom: h, Left: v, Right: p},
				{6, 2}: {Top: h, Bottom: p, Left: p, Right: v},
				{6, 3}: {Top: h, Bottom: p, Left: v, Right: p},
				{3, 2}: {},
				{3, 3}: {},
				{5, 2}: {},
				{5, 3}: {},
				{4, 4}: {},
			}
			fresh, err := xlsx.NewSheet(xl, sheetName)
			require.NoError(t, err)
			for k, w := range want {
				assert.Equal(t, w, cellBorder(t, sh, k[0], k[1]), "%v", k)
				assert.Equal(t, w, cellBorder(t, fresh, k[0], k[1]), "fresh %v", k)
			}
		})
	}
}

func TestBorderOverrides(t *testing.T) {
	_, sh := newSheet(t)
	err := xlstyler.New(sh).Border(xlstyler.BorderOptions{
		Selection: xlstyler.Selection{Rows: xlstyler.Index(3), Cols: xlstyler.Index(3)},
		Sides:     "outside",
		Top:       xlstyler.SideStyle(xlstyler.LineDouble),
		Left:      xlstyler.SideOff(),
	}).Err()
	require.NoError(t, err)
	thin := xlstyler.Edge{Style: xlstyler.LineThin}
	assert.Equal(t, xlstyler.Borders{
		Top: xlstyler.Edge{Style: xlstyler.LineDouble}, Right: thin, Bottom: thin,
	}, cellBorder(t, sh, 3, 3))
}

func TestInvalidCallLeavesSheetAlone(t *testing.T) {
	_, sh := newSheet(t)
	require.NoError(t, xlstyler.New(sh).Border(xlstyler.BorderOptions{
		Selection: block, Sides: "outside",
	}).Err())
	before := snapshot(t, sh)

	for name, f := range map[string]func(*xlstyler.Styler) *xlstyler.Styler{
		"line style": func(s *xlstyler.Styler) *xlstyler.Styler {
			return s.Border(xlstyler.BorderOptions{Selection: block, Sides: "all", LineStyle: "squiggly"})
		},
		"side flag": func(s *xlstyler.Styler) *xlstyler.Styler {
			return s.Border(xlstyler.BorderOptions{Selection: block, Sides: "tz"})
		},
		"selection": func(s *xlstyler.Styler) *xlstyler.Styler {
			return s.Border(xlstyler.BorderOptions{
				Selection: xlstyler.Selection{Rows: xlstyler.Letters("A")}, Sides: "all",
			})
		},
		"alignment": func(s *xlstyler.Styler) *xlstyler.Styler {
			return s.Format(xlstyler.FormatOptions{Selection: block, Horizontal: "middle", Bold: true})
		},
		"text rotation": func(s *xlstyler.Styler) *xlstyler.Styler {
			return s.Format(xlstyler.FormatOptions{Selection: block, TextRotation: 200})
		},
		"fill type": func(s *xlstyler.Styler) *xlstyler.Styler {
			return s.PatternFill(xlstyler.FillOptions{Selection: block, Type: "stripes", Color: "r"})
		},
		"color": func(s *xlstyler.Styler) *xlstyler.Styler {
			return s.PatternFill(xlstyler.FillOptions{Selection: block, Type: xlstyler.FillSolid, Color: "xkcd:no such color"})
		},
	} {
		t.Run(name, func(t *testing.T) {
			err := f(xlstyler.New(sh)).Err()
			require.Error(t, err)
			assert.True(t, errors.Is(err, xlstyler.ErrUsage), "%+v", err)
			assert.Equal(t, before, snapshot(t, sh))
		})
	}
}

func TestStickyError(t *testing.T) {
	_, sh := newSheet(t)
	s := xlstyler.New(sh).
		Border(xlstyler.BorderOptions{Selection: block, Sides: "q"}).
		Format(xlstyler.FormatOptions{Selection: block, Bold: true})
	require.Error(t, s.Err())
	assert.Contains(t, s.Err().Error(), "border")
	st, err := sh.CellStyle(3, 3)
	require.NoError(t, err)
	assert.Equal(t, xlstyler.CellStyle{}, st)
}

func TestUnknownColor(t *testing.T) {
	_, sh := newSheet(t)
	err := xlstyler.New(sh).Border(xlstyler.BorderOptions{
		Selection: block, Sides: "outside", Color: "xkcd:blurple",
	}).Err()
	require.Error(t, err)
	var ue *xlstyler.UsageError
	require.True(t, errors.As(err, &ue))
	assert.Equal(t, "color", ue.Arg)
	assert.Contains(t, err.Error(), "xkcd")
}

func TestFormat(t *testing.T) {
	xl, sh := newSheet(t)
	err := xlstyler.New(sh).
		Border(xlstyler.BorderOptions{Selection: block, Sides: "outside"}).
		Format(xlstyler.FormatOptions{
			Selection:       block,
			Horizontal:      xlstyler.HAlignCenter,
			WrapText:        true,
			NumberFormat:    "0.00%",
			Bold:            true,
			Color:           "steelblue",
			BackgroundColor: "y",
		}).Err()
	require.NoError(t, err)

	want := xlstyler.CellStyle{
		Border:       xlstyler.Borders{Top: xlstyler.Edge{Style: xlstyler.LineThin}, Left: xlstyler.Edge{Style: xlstyler.LineThin}},
		Fill:         xlstyler.Fill{Type: xlstyler.FillSolid, FgColor: "BFBF00"},
		Font:         xlstyler.Font{Bold: true, Color: "4682B4"},
		Alignment:    xlstyler.Alignment{Horizontal: xlstyler.HAlignCenter, WrapText: true},
		NumberFormat: "0.00%",
	}
	st, err := sh.CellStyle(2, 2)
	require.NoError(t, err)
	assert.Equal(t, want, st)

	fresh, err := xlsx.NewSheet(xl, sheetName)
	require.NoError(t, err)
	st, err = fresh.CellStyle(2, 2)
	require.NoError(t, err)
	assert.Equal(t, want, st)

	// a second call replaces the font, keeps the rest
	require.NoError(t, xlstyler.New(sh).Format(xlstyler.FormatOptions{Selection: block, Italic: true}).Err())
	st, err = sh.CellStyle(2, 2)
	require.NoError(t, err)
	want.Font = xlstyler.Font{Italic: true}
	assert.Equal(t, want, st)
}

func TestPatternFill(t *testing.T) {
	_, sh := newSheet(t)
	sel := xlstyler.Selection{Rows: xlstyler.All(), Cols: xlstyler.Index(2)}
	err := xlstyler.New(sh).PatternFill(xlstyler.FillOptions{
		Selection: sel, Type: xlstyler.FillDarkGrid, Color: "tab:blue",
	}).Err()
	require.NoError(t, err)
	for i := 1; i <= 6; i++ {
		st, err := sh.CellStyle(i, 2)
		require.NoError(t, err)
		assert.Equal(t, xlstyler.Fill{Type: xlstyler.FillDarkGrid, FgColor: "1F77B4"}, st.Fill)
	}

	require.NoError(t, xlstyler.New(sh).PatternFill(xlstyler.FillOptions{Selection: sel}).Err())
	st, err := sh.CellStyle(3, 2)
	require.NoError(t, err)
	assert.Equal(t, xlstyler.CellStyle{}, st)
}

func TestColumnWidth(t *testing.T) {
	xl, sh := newSheet(t)
	require.NoError(t, xlstyler.New(sh).ColumnWidth(xlstyler.Letters("B:C"), 20).Err())
	for _, col := range []string{"B", "C"} {
		w, err := xl.GetColWidth(sheetName, col)
		require.NoError(t, err)
		assert.Equal(t, 20.0, w, col)
	}

	require.NoError(t, xlstyler.New(sh).ColumnWidth(xlstyler.All(), 10, 11, 12).Err())
	for i, col := range []string{"A", "B", "C"} {
		w, err := sh.ColumnWidth(col)
		require.NoError(t, err)
		assert.Equal(t, float64(10+i), w, col)
	}

	err := xlstyler.New(sh).ColumnWidth(xlstyler.Letters("A:D"), 1, 2).Err()
	assert.True(t, errors.Is(err, xlstyler.ErrUsage))
	err = xlstyler.New(sh).ColumnWidth(xlstyler.Letters("A"), -1).Err()
	assert.True(t, errors.Is(err, xlstyler.ErrUsage))
	err = xlstyler.New(sh).ColumnWidth(xlstyler.Letters("A")).Err()
	assert.True(t, errors.Is(err, xlstyler.ErrUsage))
}

func TestRowHeight(t *testing.T) {
	_, sh := newSheet(t)
	require.NoError(t, xlstyler.New(sh).RowHeight(xlstyler.All(), xlstyler.Skip{Header: 1, Footer: 1}, 30).Err())
	first, err := sh.RowHeight(1)
	require.NoError(t, err)
	assert.NotEqual(t, 30.0, first)
	for i := 2; i <= 5; i++ {
		h, err := sh.RowHeight(i)
		require.NoError(t, err)
		assert.Equal(t, 30.0, h, "row %d", i)
	}

	require.NoError(t, xlstyler.New(sh).RowHeight(xlstyler.Index(1, 6), xlstyler.Skip{}, 40, 50).Err())
	h, err := sh.RowHeight(6)
	require.NoError(t, err)
	assert.Equal(t, 50.0, h)
}

func TestWithColorResolver(t *testing.T) {
	_, sh := newSheet(t)
	var asked []string
	resolve := func(name string) (string, error) {
		asked = append(asked, name)
		return color.Resolve(name)
	}
	err := xlstyler.New(sh, xlstyler.WithColorResolver(resolve)).Border(xlstyler.BorderOptions{
		Selection: block, Sides: "inside", Color: "k",
	}).Err()
	require.NoError(t, err)
	assert.Equal(t, []string{"k"}, asked)
}
