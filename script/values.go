// Copyright 2026, Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

package script

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/UNO-SOFT/xlstyler"
	"gopkg.in/yaml.v3"
)

// Axis decodes a selector from an int, a string, or a list of both.
//
// Strings are "all", a column name ("C"), a column range ("A:C"),
// an index ("3") or an index range ("2:5"). Several can be separated by commas.
type Axis struct{ xlstyler.Axis }

func (a *Axis) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		if node.Tag == "!!int" {
			var n int
			if err := node.Decode(&n); err != nil {
				return err
			}
			a.Axis = xlstyler.Index(n)
			return nil
		}
		a.Axis = ParseAxis(node.Value)
		return nil
	case yaml.SequenceNode:
		items := make([]any, 0, len(node.Content))
		for _, n := range node.Content {
			if n.Kind != yaml.ScalarNode {
				return fmt.Errorf("line %d: selector elements must be scalars", n.Line)
			}
			items = append(items, parseItem(n.Value))
		}
		a.Axis = xlstyler.List(items...)
		return nil
	}
	return fmt.Errorf("line %d: selector must be a scalar or a sequence", node.Line)
}

// ParseAxis parses a comma separated list of selector tokens.
// Tokens that are neither numbers nor numeric ranges are kept as column names.
func ParseAxis(s string) xlstyler.Axis {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "all") {
		return xlstyler.All()
	}
	parts := strings.Split(s, ",")
	items := make([]any, len(parts))
	for i, p := range parts {
		items[i] = parseItem(strings.TrimSpace(p))
	}
	return xlstyler.List(items...)
}

// parseItem returns an int, an xlstyler.Span, or the string itself.
func parseItem(s string) any {
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	if from, to, ok := strings.Cut(s, ":"); ok {
		f, fErr := strconv.Atoi(strings.TrimSpace(from))
		t, tErr := strconv.Atoi(strings.TrimSpace(to))
		if fErr == nil && tErr == nil {
			return xlstyler.Span{From: f, To: t}
		}
	}
	return s
}

// Side decodes a per-side border override from a bool or a line style name.
type Side struct{ xlstyler.Side }

func (s *Side) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: side must be true, false or a line style", node.Line)
	}
	if node.Tag == "!!bool" {
		var b bool
		if err := node.Decode(&b); err != nil {
			return err
		}
		s.Side = xlstyler.SideBool(b)
		return nil
	}
	s.Side = xlstyler.SideStyle(xlstyler.LineStyle(node.Value))
	return nil
}

// Underline decodes true as single underline, or an underline name.
type Underline struct{ xlstyler.Underline }

func (u *Underline) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: underline must be a bool or a name", node.Line)
	}
	if node.Tag == "!!bool" {
		var b bool
		if err := node.Decode(&b); err != nil {
			return err
		}
		u.Underline = xlstyler.UnderlineNone
		if b {
			u.Underline = xlstyler.UnderlineSingle
		}
		return nil
	}
	u.Underline = xlstyler.Underline(node.Value)
	return nil
}

// Sizes decodes one number or a list of numbers.
type Sizes []float64

func (s *Sizes) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		var f float64
		if err := node.Decode(&f); err != nil {
			return err
		}
		*s = Sizes{f}
		return nil
	}
	var fs []float64
	if err := node.Decode(&fs); err != nil {
		return err
	}
	*s = fs
	return nil
}
