// Copyright 2026, Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

package xlstyler

import (
	"errors"
	"strings"
)

// Side overrides one edge of a Border call.
// The zero Side leaves the edge to BorderOptions.Sides.
type Side struct {
	set   bool
	on    bool
	style LineStyle
}

// SideOn draws the edge with the call's LineStyle.
func SideOn() Side { return Side{set: true, on: true} }

// SideOff removes the edge from the call, even if Sides names it.
func SideOff() Side { return Side{set: true} }

// SideStyle draws the edge with ls instead of the call's LineStyle.
func SideStyle(ls LineStyle) Side { return Side{set: true, on: true, style: ls} }

// SideBool is SideOn for true and SideOff for false.
func SideBool(on bool) Side {
	if on {
		return SideOn()
	}
	return SideOff()
}

func (s Side) IsSet() bool { return s.set }

func (s Side) String() string {
	switch {
	case !s.set:
		return ""
	case !s.on:
		return "false"
	case s.style == LineNone:
		return "true"
	default:
		return string(s.style)
	}
}

// BorderOptions configures a Border call.
type BorderOptions struct {
	Selection

	// Sides is "outside" (trbl), "inside" (hv), "all" (trblhv),
	// or any combination of the letters
	// t(op), r(ight), b(ottom), l(eft), h(orizontal), v(ertical),
	// u (diagonal up) and d (diagonal down).
	Sides string

	// Top, Right, Bottom and Left draw the perimeter of the selection.
	Top, Right, Bottom, Left Side
	// Horizontal and Vertical draw the lines between the selected cells.
	Horizontal, Vertical Side

	DiagonalUp, DiagonalDown bool

	// LineStyle is the default pattern, LineThin if empty.
	LineStyle LineStyle
	// Color is resolved by the Styler's color resolver.
	Color string
}

type edgeName uint8

const (
	edgeTop edgeName = iota
	edgeRight
	edgeBottom
	edgeLeft
	edgeHorizontal
	edgeVertical
	edgeDiagonalUp
	edgeDiagonalDown
	numEdges
)

var edgeNames = [numEdges]string{"top", "right", "bottom", "left", "horizontal", "vertical", "diagonalUp", "diagonalDown"}

var sideFlags = map[rune]edgeName{
	't': edgeTop, 'r': edgeRight, 'b': edgeBottom, 'l': edgeLeft,
	'h': edgeHorizontal, 'v': edgeVertical, 'u': edgeDiagonalUp, 'd': edgeDiagonalDown,
}

const sideFlagsHelp = "the flag must be one of 't', 'r', 'b', 'l', 'h', 'v', 'u' and 'd'"

// edgeSet holds the resolved edges a Border call writes. nil means not requested.
type edgeSet [numEdges]*Edge

func (es *edgeSet) diagonal() *Edge {
	if es[edgeDiagonalUp] != nil {
		return es[edgeDiagonalUp]
	}
	return es[edgeDiagonalDown]
}

// parseSides expands the Sides shorthand into requested edges.
func parseSides(sides string) ([numEdges]bool, error) {
	var on [numEdges]bool
	switch sides = strings.ToLower(strings.TrimSpace(sides)); sides {
	case "":
		return on, nil
	case "all":
		sides = "trblhv"
	case "outside":
		sides = "trbl"
	case "inside":
		sides = "hv"
	}
	var unknown []string
	for _, r := range sides {
		if e, ok := sideFlags[r]; ok {
			on[e] = true
		} else {
			unknown = append(unknown, "'"+string(r)+"'")
		}
	}
	if len(unknown) != 0 {
		return on, usageErr("sides", "unknown side flag ("+sideFlagsHelp+")", unknown...)
	}
	return on, nil
}

// buildEdgeSet validates opts and resolves every requested edge.
// color must already be resolved.
func buildEdgeSet(opts BorderOptions, color string) (edgeSet, error) {
	var es edgeSet
	on, sidesErr := parseSides(opts.Sides)

	ls := opts.LineStyle
	var lsErr error
	if ls == LineNone {
		ls = LineThin
	} else if !ls.Valid() {
		lsErr = usageErr("lineStyle", "must be one of "+joinQuoted(LineStyles), "'"+string(ls)+"'")
	}

	var styles [numEdges]LineStyle
	var sideErrs []error
	for e, s := range [...]Side{
		edgeTop: opts.Top, edgeRight: opts.Right, edgeBottom: opts.Bottom,
		edgeLeft: opts.Left, edgeHorizontal: opts.Horizontal, edgeVertical: opts.Vertical,
	} {
		if !s.set {
			continue
		}
		if s.style != LineNone && !s.style.Valid() {
			sideErrs = append(sideErrs, usageErr(edgeNames[e],
				"must be either true or false, or one of "+joinQuoted(LineStyles),
				"'"+string(s.style)+"'"))
			continue
		}
		on[e], styles[e] = s.on, s.style
	}
	on[edgeDiagonalUp] = on[edgeDiagonalUp] || opts.DiagonalUp
	on[edgeDiagonalDown] = on[edgeDiagonalDown] || opts.DiagonalDown

	if err := errors.Join(append([]error{sidesErr, lsErr}, sideErrs...)...); err != nil {
		return es, err
	}

	def := Edge{Style: ls, Color: color}
	for e := range numEdges {
		if !on[e] {
			continue
		}
		edge := def
		if styles[e] != LineNone {
			edge.Style = styles[e]
		}
		es[e] = &edge
	}
	return es, nil
}

// rect is the bounding box of a resolved selection.
type rect struct{ minRow, maxRow, minCol, maxCol int }

func boundsOf(rows, cols []int) rect {
	r := rect{minRow: rows[0], maxRow: rows[0], minCol: cols[0], maxCol: cols[0]}
	for _, i := range rows {
		r.minRow, r.maxRow = min(r.minRow, i), max(r.maxRow, i)
	}
	for _, j := range cols {
		r.minCol, r.maxCol = min(r.minCol, j), max(r.maxCol, j)
	}
	return r
}

// mergeBorders returns the borders of cell (row, col) after applying es.
// Perimeter edges only land on the matching side of r, interior edges
// fill the remaining sides, and edges es does not address keep their old value.
func mergeBorders(old Borders, es edgeSet, r rect, row, col int) Borders {
	b := old
	set := func(dst *Edge, e edgeName) {
		if es[e] != nil {
			*dst = *es[e]
		}
	}
	if row == r.minRow {
		set(&b.Top, edgeTop)
	} else {
		set(&b.Top, edgeHorizontal)
	}
	if row == r.maxRow {
		set(&b.Bottom, edgeBottom)
	} else {
		set(&b.Bottom, edgeHorizontal)
	}
	if col == r.minCol {
		set(&b.Left, edgeLeft)
	} else {
		set(&b.Left, edgeVertical)
	}
	if col == r.maxCol {
		set(&b.Right, edgeRight)
	} else {
		set(&b.Right, edgeVertical)
	}
	if d := es.diagonal(); d != nil {
		b.Diagonal = *d
		b.DiagonalUp = b.DiagonalUp || es[edgeDiagonalUp] != nil
		b.DiagonalDown = b.DiagonalDown || es[edgeDiagonalDown] != nil
	}
	return b
}
