// Copyright 2026, Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

package script_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/UNO-SOFT/xlstyler"
	"github.com/UNO-SOFT/xlstyler/script"
	"github.com/UNO-SOFT/xlstyler/xlsx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"
)

const report = `
sheet: Report
steps:
  - columnWidth: {cols: "B:E", width: 14}
  - rowHeight: {skipHeader: 1, height: [20]}
  - border: {rows: "2:5", cols: "B:E", sides: inside, color: r, lineStyle: medium}
  - border:
      rows: "2:5"
      cols: [B, "C:E"]
      sides: outside
      lineStyle: thick
      left: false
      bottom: double
  - format: {rows: 2, cols: "B:E", bold: true, underline: true, horizontal: center}
  - patternFill: {rows: [3, "4:5"], cols: B, type: lightGrid, color: "tab:olive"}
`

func newSheet(t *testing.T) *xlsx.Sheet {
	t.Helper()
	xl := excelize.NewFile()
	t.Cleanup(func() { xl.Close() })
	require.NoError(t, xl.SetCellValue("Sheet1", "F6", 1))
	sh, err := xlsx.NewSheet(xl, "Sheet1")
	require.NoError(t, err)
	return sh
}

func TestApply(t *testing.T) {
	scr, err := script.Parse([]byte(report))
	require.NoError(t, err)
	assert.Equal(t, "Report", scr.Sheet)
	require.Len(t, scr.Steps, 6)

	sh := newSheet(t)
	require.NoError(t, scr.Apply(xlstyler.New(sh)))

	w, err := sh.ColumnWidth("C")
	require.NoError(t, err)
	assert.Equal(t, 14.0, w)
	h, err := sh.RowHeight(3)
	require.NoError(t, err)
	assert.Equal(t, 20.0, h)

	q := xlstyler.Edge{Style: xlstyler.LineMedium, Color: "FF0000"}
	p := xlstyler.Edge{Style: xlstyler.LineThick}
	st, err := sh.CellStyle(2, 2)
	require.NoError(t, err)
	assert.Equal(t, xlstyler.Borders{Top: p, Bottom: q, Right: q}, st.Border)
	assert.Equal(t, xlstyler.Font{Bold: true, Underline: xlstyler.UnderlineSingle}, st.Font)
	assert.Equal(t, xlstyler.HAlignCenter, st.Alignment.Horizontal)

	st, err = sh.CellStyle(5, 5)
	require.NoError(t, err)
	assert.Equal(t, xlstyler.Edge{Style: xlstyler.LineDouble}, st.Border.Bottom)
	assert.Equal(t, p, st.Border.Right)

	for _, row := range []int{3, 4, 5} {
		st, err = sh.CellStyle(row, 2)
		require.NoError(t, err)
		assert.Equal(t, xlstyler.Fill{Type: xlstyler.FillLightGrid, FgColor: "BCBD22"}, st.Fill, "row %d", row)
	}
}

func TestParseErrors(t *testing.T) {
	for name, src := range map[string]string{
		"unknown key":    "steps:\n  - border: {sides: all, colour: red}\n",
		"two operations": "steps:\n  - border: {sides: all}\n    format: {bold: true}\n",
		"no operation":   "steps:\n  - {}\n",
		"bad selector":   "steps:\n  - border: {rows: {a: 1}}\n",
		"bad side":       "steps:\n  - border: {top: [1]}\n",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := script.Parse([]byte(src))
			assert.Error(t, err)
		})
	}
}

func TestApplyStopsAtFirstError(t *testing.T) {
	scr, err := script.Parse([]byte(`
steps:
  - format: {cols: A, italic: true}
  - border: {sides: outside, lineStyle: squiggly}
  - format: {cols: B, bold: true}
`))
	require.NoError(t, err)
	sh := newSheet(t)
	err = scr.Apply(xlstyler.New(sh))
	require.Error(t, err)
	assert.True(t, errors.Is(err, xlstyler.ErrUsage))
	assert.Contains(t, err.Error(), "step 2")

	st, err := sh.CellStyle(1, 1)
	require.NoError(t, err)
	assert.True(t, st.Font.Italic)
	st, err = sh.CellStyle(1, 2)
	require.NoError(t, err)
	assert.False(t, st.Font.Bold)
}

func TestLoad(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "style.yaml")
	require.NoError(t, os.WriteFile(fn, []byte(report), 0o644))
	scr, err := script.Load(fn)
	require.NoError(t, err)
	assert.Len(t, scr.Steps, 6)

	_, err = script.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestDecodeValues(t *testing.T) {
	var v struct {
		A      script.Axis
		B      script.Axis
		C      script.Axis
		D      script.Axis
		Top    script.Side
		Left   script.Side
		Under  script.Underline
		Widths script.Sizes
		Width  script.Sizes
	}
	require.NoError(t, yaml.Unmarshal([]byte(`
a: 3
b: all
c: [1, "3:4"]
d: "A, C:D"
top: thick
left: false
under: double
widths: [1, 2.5]
width: 7
`), &v))
	assert.Equal(t, xlstyler.Index(3), v.A.Axis)
	assert.True(t, v.B.IsAll())
	assert.Equal(t, xlstyler.List(1, xlstyler.Span{From: 3, To: 4}), v.C.Axis)
	assert.Equal(t, xlstyler.Letters("A", "C:D"), v.D.Axis)
	assert.Equal(t, xlstyler.SideStyle(xlstyler.LineThick), v.Top.Side)
	assert.Equal(t, xlstyler.SideOff(), v.Left.Side)
	assert.Equal(t, xlstyler.UnderlineDouble, v.Under.Underline)
	assert.Equal(t, script.Sizes{1, 2.5}, v.Widths)
	assert.Equal(t, script.Sizes{7}, v.Width)
}

func TestParseAxis(t *testing.T) {
	for s, want := range map[string][]int{
		"":       {1, 2, 3, 4, 5, 6},
		"ALL":    {1, 2, 3, 4, 5, 6},
		"2":      {2},
		"2:4, 6": {2, 3, 4, 6},
		"B:C":    {2, 3},
		"A, C":   {1, 3},
		"4:2":    {2, 3, 4},
	} {
		got, err := xlstyler.ResolveCols(script.ParseAxis(s), 6)
		require.NoError(t, err, s)
		assert.Equal(t, want, got, s)
	}
}
