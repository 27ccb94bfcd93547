// Copyright 2026, Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

package xlstyler

import (
	"slices"
	"strings"
)

// LineStyle is the line pattern of one border edge.
type LineStyle string

const (
	// LineNone means the edge is not drawn.
	LineNone             LineStyle = ""
	LineThin             LineStyle = "thin"
	LineMedium           LineStyle = "medium"
	LineThick            LineStyle = "thick"
	LineDouble           LineStyle = "double"
	LineHair             LineStyle = "hair"
	LineDashed           LineStyle = "dashed"
	LineDotted           LineStyle = "dotted"
	LineDashDot          LineStyle = "dashDot"
	LineDashDotDot       LineStyle = "dashDotDot"
	LineMediumDashDot    LineStyle = "mediumDashDot"
	LineMediumDashDotDot LineStyle = "mediumDashDotDot"
	LineMediumDashed     LineStyle = "mediumDashed"
	LineSlantDashDot     LineStyle = "slantDashDot"
)

// LineStyles lists every drawable line pattern.
var LineStyles = []LineStyle{
	LineThin, LineMedium, LineThick, LineDouble, LineHair, LineDashed, LineDotted,
	LineDashDot, LineDashDotDot, LineMediumDashDot, LineMediumDashDotDot,
	LineMediumDashed, LineSlantDashDot,
}

// Valid reports whether ls is one of LineStyles.
func (ls LineStyle) Valid() bool { return slices.Contains(LineStyles, ls) }

// HAlign is the horizontal alignment of a cell.
type HAlign string

const (
	HAlignGeneral          HAlign = "general"
	HAlignLeft             HAlign = "left"
	HAlignCenter           HAlign = "center"
	HAlignRight            HAlign = "right"
	HAlignFill             HAlign = "fill"
	HAlignJustify          HAlign = "justify"
	HAlignCenterContinuous HAlign = "centerContinuous"
	HAlignDistributed      HAlign = "distributed"
)

// HAligns lists the horizontal alignments.
var HAligns = []HAlign{
	HAlignGeneral, HAlignLeft, HAlignCenter, HAlignRight, HAlignFill,
	HAlignJustify, HAlignCenterContinuous, HAlignDistributed,
}

// Valid reports whether a is one of HAligns.
func (a HAlign) Valid() bool { return slices.Contains(HAligns, a) }

// VAlign is the vertical alignment of a cell.
type VAlign string

const (
	VAlignTop         VAlign = "top"
	VAlignCenter      VAlign = "center"
	VAlignBottom      VAlign = "bottom"
	VAlignJustify     VAlign = "justify"
	VAlignDistributed VAlign = "distributed"
)

// VAligns lists the vertical alignments.
var VAligns = []VAlign{VAlignTop, VAlignCenter, VAlignBottom, VAlignJustify, VAlignDistributed}

// Valid reports whether a is one of VAligns.
func (a VAlign) Valid() bool { return slices.Contains(VAligns, a) }

// Underline is the underline variant of a font.
type Underline string

const (
	UnderlineNone             Underline = ""
	UnderlineSingle           Underline = "single"
	UnderlineDouble           Underline = "double"
	UnderlineSingleAccounting Underline = "singleAccounting"
	UnderlineDoubleAccounting Underline = "doubleAccounting"
)

// Underlines lists the underline variants.
var Underlines = []Underline{
	UnderlineSingle, UnderlineDouble, UnderlineSingleAccounting, UnderlineDoubleAccounting,
}

// Valid reports whether u is one of Underlines.
func (u Underline) Valid() bool { return slices.Contains(Underlines, u) }

// VertAlign is the vertical position of the text relative to the baseline.
type VertAlign string

const (
	VertAlignBaseline    VertAlign = "baseline"
	VertAlignSuperscript VertAlign = "superscript"
	VertAlignSubscript   VertAlign = "subscript"
)

// VertAligns lists the baseline positions.
var VertAligns = []VertAlign{VertAlignBaseline, VertAlignSuperscript, VertAlignSubscript}

// Valid reports whether v is one of VertAligns.
func (v VertAlign) Valid() bool { return slices.Contains(VertAligns, v) }

// FillType is the pattern of a cell fill.
type FillType string

const (
	FillNone            FillType = "none"
	FillSolid           FillType = "solid"
	FillMediumGray      FillType = "mediumGray"
	FillDarkGray        FillType = "darkGray"
	FillLightGray       FillType = "lightGray"
	FillDarkHorizontal  FillType = "darkHorizontal"
	FillDarkVertical    FillType = "darkVertical"
	FillDarkDown        FillType = "darkDown"
	FillDarkUp          FillType = "darkUp"
	FillDarkGrid        FillType = "darkGrid"
	FillDarkTrellis     FillType = "darkTrellis"
	FillLightHorizontal FillType = "lightHorizontal"
	FillLightVertical   FillType = "lightVertical"
	FillLightDown       FillType = "lightDown"
	FillLightUp         FillType = "lightUp"
	FillLightGrid       FillType = "lightGrid"
	FillLightTrellis    FillType = "lightTrellis"
	FillGray125         FillType = "gray125"
	FillGray0625        FillType = "gray0625"
)

// FillTypes is ordered as the pattern indexes of the xlsx style sheet.
var FillTypes = []FillType{
	FillNone, FillSolid, FillMediumGray, FillDarkGray, FillLightGray,
	FillDarkHorizontal, FillDarkVertical, FillDarkDown, FillDarkUp, FillDarkGrid,
	FillDarkTrellis, FillLightHorizontal, FillLightVertical, FillLightDown,
	FillLightUp, FillLightGrid, FillLightTrellis, FillGray125, FillGray0625,
}

// Valid reports whether f is one of FillTypes.
func (f FillType) Valid() bool { return slices.Contains(FillTypes, f) }

func quoteAll[T ~string](values []T) []string {
	qs := make([]string, len(values))
	for i, v := range values {
		qs[i] = "'" + string(v) + "'"
	}
	return qs
}

func joinQuoted[T ~string](values []T) string {
	return strings.Join(quoteAll(values), ", ")
}
