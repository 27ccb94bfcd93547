// Copyright 2026, Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

package color

// tableau is the Tableau 10 palette.
var tableau = map[string]string{
	"blue":   "1F77B4",
	"orange": "FF7F0E",
	"green":  "2CA02C",
	"red":    "D62728",
	"purple": "9467BD",
	"brown":  "8C564B",
	"pink":   "E377C2",
	"gray":   "7F7F7F",
	"olive":  "BCBD22",
	"cyan":   "17BECF",
}

// xkcd holds the most frequent names of the xkcd color survey.
var xkcd = map[string]string{
	"purple":       "7E1E9C",
	"green":        "15B01A",
	"blue":         "0343DF",
	"pink":         "FF81C0",
	"brown":        "653700",
	"red":          "E50000",
	"light blue":   "95D0FC",
	"teal":         "029386",
	"orange":       "F97306",
	"light green":  "96F97B",
	"magenta":      "C20078",
	"yellow":       "FFFF14",
	"sky blue":     "75BBFD",
	"grey":         "929591",
	"lime green":   "89FE05",
	"light purple": "BF77F6",
	"violet":       "9A0EEA",
	"dark green":   "033500",
	"turquoise":    "06C2AC",
	"lavender":     "C79FEF",
	"dark blue":    "00035B",
	"tan":          "D1B26F",
	"cyan":         "00FFFF",
	"aqua":         "13EAC9",
	"forest green": "06470C",
	"mauve":        "AE7181",
	"dark purple":  "35063E",
	"bright green": "01FF07",
	"maroon":       "650021",
	"olive":        "6E750E",
	"salmon":       "FF796C",
	"beige":        "E6DAA6",
	"royal blue":   "0504AA",
	"navy blue":    "001146",
	"lilac":        "CEA2FD",
	"black":        "000000",
	"hot pink":     "FF028D",
	"light brown":  "AD8150",
	"pale green":   "C7FDB5",
	"peach":        "FFB07C",
	"olive green":  "677A04",
	"dark pink":    "CB416B",
	"periwinkle":   "8E82FE",
	"sea green":    "53FCA1",
	"lime":         "AAFF32",
	"indigo":       "380282",
	"mustard":      "CEB301",
	"light pink":   "FFD1DF",
	"white":        "FFFFFF",
	"gold":         "DBB40C",
}
