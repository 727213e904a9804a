/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package template

import (
	"fmt"
	"strings"

	"github.com/dburkart/imprint/pkg/common/parse"
)

// Variable is a dotted path naming a value to substitute, e.g. the
// "db.host" in {{ db.host }}. It always holds at least one segment, and
// no segment is ever empty. Variables are immutable once constructed.
type Variable struct {
	segments []string
}

// Single returns a Variable with one unqualified segment. Passing a
// name containing the dot separator is a programming error and panics;
// dotted strings must go through ParseVariable.
func Single(name string) Variable {
	if strings.ContainsRune(name, '.') {
		panic(fmt.Sprintf("template: single variable %q cannot contain the dot separator", name))
	}
	return SingleUnchecked(name)
}

// SingleUnchecked is Single without the dot check, for callers that
// already guarantee the name holds no separator.
func SingleUnchecked(name string) Variable {
	return Variable{segments: []string{name}}
}

// FromParts builds a Variable from ordered path segments. Callers are
// responsible for segment validity; the scanner validates before
// constructing.
func FromParts(parts ...string) Variable {
	segments := make([]string, len(parts))
	copy(segments, parts)
	return Variable{segments: segments}
}

// ParseVariable splits a bare dotted string into a Variable.
//
// Grammar:
//
//	variable = segment *("." segment)
//	segment  = 1*CHAR
//
// An empty segment fails with the byte offset of the fault reported as
// the error column.
func ParseVariable(s string) (Variable, error) {
	segments := strings.Split(s, ".")

	offset := 0
	for _, seg := range segments {
		if seg == "" {
			return Variable{}, parse.NewError(parse.EmptyVariableSegment, parse.Position{Column: offset})
		}
		offset += len(seg) + 1
	}

	return FromParts(segments...), nil
}

// Segments returns the ordered path segments.
func (v Variable) Segments() []string {
	return v.segments
}

// Equal reports whether two variables name the same path.
func (v Variable) Equal(other Variable) bool {
	if len(v.segments) != len(other.segments) {
		return false
	}
	for i := range v.segments {
		if v.segments[i] != other.segments[i] {
			return false
		}
	}
	return true
}

func (v Variable) String() string {
	return strings.Join(v.segments, ".")
}
