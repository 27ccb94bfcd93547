// Copyright 2020, 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

package xlsx

import (
	"fmt"
	"reflect"
	"slices"
	"strings"
	"sync"

	"github.com/UNO-SOFT/xlstyler"
	"github.com/xuri/excelize/v2"
)

// lineStyles is indexed by the border style numbers of excelize.
var lineStyles = []xlstyler.LineStyle{
	xlstyler.LineNone,
	xlstyler.LineThin,
	xlstyler.LineMedium,
	xlstyler.LineDashed,
	xlstyler.LineDotted,
	xlstyler.LineThick,
	xlstyler.LineDouble,
	xlstyler.LineHair,
	xlstyler.LineMediumDashed,
	xlstyler.LineDashDot,
	xlstyler.LineMediumDashDot,
	xlstyler.LineDashDotDot,
	xlstyler.LineMediumDashDotDot,
	xlstyler.LineSlantDashDot,
}

// styleCache maps CellStyles to excelize style ids and back.
// Style 0 is the default style, which is the zero CellStyle.
type styleCache struct {
	mu     sync.Mutex
	ids    map[xlstyler.CellStyle]int
	styles map[int]xlstyler.CellStyle
	// base is the default style of the workbook, whose font and fill
	// every other style inherits when it does not set its own.
	base *excelize.Style
}

func newStyleCache() *styleCache {
	return &styleCache{
		ids:    make(map[xlstyler.CellStyle]int),
		styles: make(map[int]xlstyler.CellStyle),
	}
}

func (c *styleCache) id(xl *excelize.File, st xlstyler.CellStyle) (int, error) {
	if st = canonical(st); st == (xlstyler.CellStyle{}) {
		return 0, nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if id, ok := c.ids[st]; ok {
		return id, nil
	}
	xst, err := toExcelize(st)
	if err != nil {
		return 0, err
	}
	id, err := xl.NewStyle(xst)
	if err != nil {
		return 0, err
	}
	c.ids[st] = id
	if _, ok := c.styles[id]; !ok {
		c.styles[id] = st
	}
	return id, nil
}

func (c *styleCache) style(xl *excelize.File, id int) (xlstyler.CellStyle, error) {
	if id == 0 {
		return xlstyler.CellStyle{}, nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if st, ok := c.styles[id]; ok {
		return st, nil
	}
	if c.base == nil {
		base, err := xl.GetStyle(0)
		if err != nil {
			return xlstyler.CellStyle{}, err
		}
		c.base = base
	}
	xst, err := xl.GetStyle(id)
	if err != nil {
		return xlstyler.CellStyle{}, err
	}
	st := fromExcelize(xst, c.base)
	c.styles[id] = st
	return st, nil
}

func toExcelize(st xlstyler.CellStyle) (*excelize.Style, error) {
	var xst excelize.Style
	b := st.Border
	for _, e := range []struct {
		typ  string
		edge xlstyler.Edge
		on   bool
	}{
		{"left", b.Left, true},
		{"top", b.Top, true},
		{"right", b.Right, true},
		{"bottom", b.Bottom, true},
		{"diagonalUp", b.Diagonal, b.DiagonalUp},
		{"diagonalDown", b.Diagonal, b.DiagonalDown},
	} {
		if !e.on || !e.edge.IsSet() {
			continue
		}
		idx := slices.Index(lineStyles, e.edge.Style)
		if idx < 0 {
			return nil, fmt.Errorf("%s border: unknown line style %q", e.typ, e.edge.Style)
		}
		xst.Border = append(xst.Border, excelize.Border{Type: e.typ, Color: e.edge.Color, Style: idx})
	}

	if f := st.Fill; !f.IsZero() && !(f.Type == xlstyler.FillNone && f.FgColor == "" && f.BgColor == "") {
		typ := f.Type
		if typ == "" {
			typ = xlstyler.FillSolid
		}
		idx := slices.Index(xlstyler.FillTypes, typ)
		if idx < 0 {
			return nil, fmt.Errorf("unknown fill type %q", f.Type)
		}
		// excelize writes only the pattern (foreground) color.
		var colors []string
		if f.FgColor != "" {
			colors = []string{f.FgColor}
		} else if f.BgColor != "" {
			colors = []string{f.BgColor}
		}
		xst.Fill = excelize.Fill{Type: "pattern", Pattern: idx, Color: colors}
	}

	if f := st.Font; !f.IsZero() {
		xst.Font = &excelize.Font{
			Bold:      f.Bold,
			Italic:    f.Italic,
			Underline: string(f.Underline),
			Family:    f.Family,
			Size:      f.Size,
			Strike:    f.Strike,
			Color:     f.Color,
			VertAlign: string(f.VertAlign),
		}
	}

	if a := st.Alignment; !a.IsZero() {
		xst.Alignment = &excelize.Alignment{
			Horizontal:   string(a.Horizontal),
			Vertical:     string(a.Vertical),
			WrapText:     a.WrapText,
			ShrinkToFit:  a.ShrinkToFit,
			Indent:       a.Indent,
			TextRotation: a.TextRotation,
		}
	}

	if st.NumberFormat != "" {
		nf := st.NumberFormat
		xst.CustomNumFmt = &nf
	}
	return &xst, nil
}

func fromExcelize(xst, base *excelize.Style) xlstyler.CellStyle {
	var st xlstyler.CellStyle
	for _, b := range xst.Border {
		if b.Style <= 0 || b.Style >= len(lineStyles) {
			continue
		}
		e := xlstyler.Edge{Style: lineStyles[b.Style], Color: rgb(b.Color)}
		if e.Color == autoColor {
			e.Color = ""
		}
		switch b.Type {
		case "left":
			st.Border.Left = e
		case "top":
			st.Border.Top = e
		case "right":
			st.Border.Right = e
		case "bottom":
			st.Border.Bottom = e
		case "diagonalUp":
			st.Border.Diagonal, st.Border.DiagonalUp = e, true
		case "diagonalDown":
			st.Border.Diagonal, st.Border.DiagonalDown = e, true
		}
	}

	if f := xst.Fill; f.Type == "pattern" && 0 < f.Pattern && f.Pattern < len(xlstyler.FillTypes) &&
		!reflect.DeepEqual(f, base.Fill) {
		st.Fill.Type = xlstyler.FillTypes[f.Pattern]
		if len(f.Color) > 0 {
			st.Fill.FgColor = rgb(f.Color[0])
		}
		if len(f.Color) > 1 {
			st.Fill.BgColor = rgb(f.Color[1])
		}
	}

	if f := xst.Font; f != nil && !(base.Font != nil && reflect.DeepEqual(*f, *base.Font)) {
		st.Font = xlstyler.Font{
			Family:    f.Family,
			Size:      f.Size,
			Color:     rgb(f.Color),
			Bold:      f.Bold,
			Italic:    f.Italic,
			Strike:    f.Strike,
			VertAlign: xlstyler.VertAlign(f.VertAlign),
			Underline: xlstyler.Underline(f.Underline),
		}
	}

	if a := xst.Alignment; a != nil {
		st.Alignment = xlstyler.Alignment{
			Horizontal:   xlstyler.HAlign(a.Horizontal),
			Vertical:     xlstyler.VAlign(a.Vertical),
			WrapText:     a.WrapText,
			ShrinkToFit:  a.ShrinkToFit,
			Indent:       a.Indent,
			TextRotation: a.TextRotation,
		}
	}

	if xst.CustomNumFmt != nil {
		st.NumberFormat = *xst.CustomNumFmt
	}
	return st
}

// canonical returns st in the form fromExcelize decodes it to,
// so a cached style equals the one read back from the file.
func canonical(st xlstyler.CellStyle) xlstyler.CellStyle {
	b := &st.Border
	for _, e := range []*xlstyler.Edge{&b.Left, &b.Top, &b.Right, &b.Bottom, &b.Diagonal} {
		if !e.IsSet() {
			*e = xlstyler.Edge{}
		} else if e.Color = rgb(e.Color); e.Color == autoColor {
			e.Color = ""
		}
	}
	if !b.DiagonalUp && !b.DiagonalDown {
		b.Diagonal = xlstyler.Edge{}
	} else if !b.Diagonal.IsSet() {
		b.DiagonalUp, b.DiagonalDown = false, false
	}

	switch f := st.Fill; {
	case f.IsZero():
	case f.Type == xlstyler.FillNone:
		st.Fill = xlstyler.Fill{}
	default:
		if f.Type == "" {
			f.Type = xlstyler.FillSolid
		}
		if f.FgColor == "" {
			f.FgColor = f.BgColor
		}
		f.FgColor, f.BgColor = rgb(f.FgColor), ""
		st.Fill = f
	}

	st.Font.Color = rgb(st.Font.Color)
	return st
}

// autoColor is what an edge without explicit color reads back as.
const autoColor = "000000"

// rgb strips the alpha byte and the '#' of ARGB colors.
func rgb(s string) string {
	s = strings.TrimPrefix(strings.ToUpper(s), "#")
	if len(s) == 8 {
		s = s[2:]
	}
	return s
}
