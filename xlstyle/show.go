// Copyright 2026 Tamas Gulacsi. All rights reserved.

package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/UNO-SOFT/xlstyler"
	"github.com/UNO-SOFT/xlstyler/display"
	"github.com/UNO-SOFT/xlstyler/xlsx"
	"github.com/peterbourgon/ff/v3"
	"github.com/peterbourgon/ff/v3/ffcli"
	"github.com/xuri/excelize/v2"
)

func showCommand(stdout io.Writer) *ffcli.Command {
	fs := flag.NewFlagSet("show", flag.ContinueOnError)
	flagSheet := fs.String("sheet", "", "sheet name (default: the active sheet)")
	flagHTML := fs.Bool("html", false, "print the ranges side by side as HTML")
	flagGap := fs.Int("gap", display.DefaultGap, "gap between the HTML tables, in pixels")

	return &ffcli.Command{Name: "show", FlagSet: fs,
		ShortUsage: "xlstyle show [flags] workbook.xlsx A1:C3...",
		ShortHelp:  "print the borders of cell ranges",
		Options:    []ff.Option{ff.WithEnvVarPrefix("XLSTYLE")},
		Exec: func(ctx context.Context, args []string) error {
			if len(args) < 2 {
				return flag.ErrHelp
			}
			xl, err := excelize.OpenFile(args[0])
			if err != nil {
				return err
			}
			defer xl.Close()
			name := *flagSheet
			if name == "" {
				name = xl.GetSheetName(xl.GetActiveSheetIndex())
			}
			sh, err := xlsx.NewSheet(xl, name)
			if err != nil {
				return err
			}

			tables := make([]any, 0, len(args)-1)
			for _, ref := range args[1:] {
				t, err := borderTable(sh, ref)
				if err != nil {
					return err
				}
				tables = append(tables, t)
			}
			if *flagHTML {
				return display.HStack(stdout, display.Options{Titles: args[1:], Gap: *flagGap}, tables...)
			}
			for i, t := range tables {
				if _, err := fmt.Fprintf(stdout, "%s\n%s\n", args[i+1], t); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

// borderTable lists the border state of every cell of ref ("B2:E5" or "C3").
func borderTable(sh xlstyler.Sheet, ref string) (display.Table, error) {
	if !strings.Contains(ref, ":") {
		ref += ":" + ref
	}
	coords, err := excelize.RangeRefToCoordinates(ref)
	if err != nil {
		return display.Table{}, fmt.Errorf("%q: %w", ref, err)
	}
	maxRow, maxCol, err := sh.Dimensions()
	if err != nil {
		return display.Table{}, err
	}
	sel := xlstyler.Selection{
		Rows: xlstyler.Range(coords[1], coords[3]),
		Cols: xlstyler.Range(coords[0], coords[2]),
	}
	rows, cols, err := sel.Resolve(maxRow, maxCol)
	if err != nil {
		return display.Table{}, fmt.Errorf("%q: %w", ref, err)
	}

	t := display.Table{Header: []string{"cell", "top", "right", "bottom", "left", "diagonal"}}
	for _, i := range rows {
		for _, j := range cols {
			st, err := sh.CellStyle(i, j)
			if err != nil {
				return t, err
			}
			axis, err := excelize.CoordinatesToCellName(j, i)
			if err != nil {
				return t, err
			}
			b := st.Border
			diag := ""
			if b.DiagonalUp || b.DiagonalDown {
				diag = edgeText(b.Diagonal)
				if b.DiagonalUp {
					diag += " /"
				}
				if b.DiagonalDown {
					diag += " \\"
				}
			}
			t.Rows = append(t.Rows, []string{
				axis, edgeText(b.Top), edgeText(b.Right), edgeText(b.Bottom), edgeText(b.Left), diag,
			})
		}
	}
	return t, nil
}

func edgeText(e xlstyler.Edge) string {
	if !e.IsSet() {
		return ""
	}
	if e.Color == "" {
		return string(e.Style)
	}
	return string(e.Style) + " #" + e.Color
}
