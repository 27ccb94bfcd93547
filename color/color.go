// Copyright 2026, Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

// Package color translates color names to hex RGB triplets.
//
// Accepted forms:
//   - single-letter base colors: b, g, r, c, m, y, k, w;
//   - CSS4 names, like "steelblue";
//   - "tab:" Tableau 10 entries, like "tab:orange";
//   - "xkcd:" color survey names, like "xkcd:sky blue".
//
// Anything else is returned unchanged, assumed to be a hex code already.
package color

import (
	"fmt"
	imgcolor "image/color"
	"slices"
	"strings"

	"golang.org/x/image/colornames"
)

// Namespace is a prefixed palette, like "tab".
type Namespace struct {
	Prefix  string
	Entries map[string]string
}

// Names returns the entries of the namespace, sorted.
func (ns Namespace) Names() []string {
	names := make([]string, 0, len(ns.Entries))
	for k := range ns.Entries {
		names = append(names, k)
	}
	slices.Sort(names)
	return names
}

// UnknownColorError is returned for an unknown entry of a namespace.
type UnknownColorError struct {
	Namespace string
	Name      string
	Valid     []string
}

func (e *UnknownColorError) Error() string {
	return fmt.Sprintf("unknown color %q: %s color must be one of these: %s",
		e.Name, e.Namespace, strings.Join(e.Valid, ", "))
}

var base = map[string]string{
	"b": "0000FF",
	"g": "008000",
	"r": "FF0000",
	"c": "00BFBF",
	"m": "BF00BF",
	"y": "BFBF00",
	"k": "000000",
	"w": "FFFFFF",
}

var namespaces = map[string]Namespace{
	"tab":  {Prefix: "tab", Entries: tableau},
	"xkcd": {Prefix: "xkcd", Entries: xkcd},
}

// Lookup returns the namespace registered for prefix.
func Lookup(prefix string) (Namespace, bool) {
	ns, ok := namespaces[prefix]
	return ns, ok
}

// Resolve returns the upper case hex RGB triplet (without '#') for name.
func Resolve(name string) (string, error) {
	if v, ok := base[name]; ok {
		return v, nil
	}
	if c, ok := colornames.Map[name]; ok {
		return hex(c), nil
	}
	if name == "rebeccapurple" {
		return "663399", nil
	}
	if prefix, entry, ok := strings.Cut(name, ":"); ok {
		if ns, ok := namespaces[prefix]; ok {
			if v, ok := ns.Entries[entry]; ok {
				return v, nil
			}
			return "", &UnknownColorError{Namespace: prefix, Name: entry, Valid: ns.Names()}
		}
	}
	return name, nil
}

func hex(c imgcolor.RGBA) string {
	return fmt.Sprintf("%02X%02X%02X", c.R, c.G, c.B)
}
