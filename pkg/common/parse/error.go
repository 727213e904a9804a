/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package parse

import (
	"fmt"
	"strings"
)

// Position is a location in scanner input. Column and Line are
// zero-based; rendered messages are one-based.
type Position struct {
	Column int
	Line   int
}

type ErrorKind int

const (
	EmptyVariableSegment ErrorKind = iota
	NewlineInVariableSegment
)

func (k ErrorKind) String() string {
	switch k {
	case EmptyVariableSegment:
		return "empty variable segment name"
	case NewlineInVariableSegment:
		return "newline in variable segment"
	}
	return "unknown error"
}

// Error is a scan fault pinned to the position where it was detected.
type Error struct {
	Kind ErrorKind
	Pos  Position
}

func NewError(kind ErrorKind, pos Position) *Error {
	return &Error{Kind: kind, Pos: pos}
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s at line %d column %d", e.Kind, e.Pos.Line+1, e.Pos.Column+1)
}

// Offset shifts the error by a position, translating coordinates
// accumulated relative to an inner scan back into the caller's
// coordinate system.
func (e *Error) Offset(by Position) *Error {
	e.Pos.Column += by.Column
	e.Pos.Line += by.Line
	return e
}

// Detail renders the offending input line with a caret underneath the
// faulting column.
func (e *Error) Detail(input string) string {
	line := input
	for l := 0; l < e.Pos.Line; l++ {
		if i := strings.IndexByte(line, '\n'); i >= 0 {
			line = line[i+1:]
		}
	}
	if i := strings.IndexByte(line, '\n'); i >= 0 {
		line = line[:i]
	}

	detail := fmt.Sprintf("%s\n", e.Error())
	detail += line
	detail += fmt.Sprintf("\n%s^\n", strings.Repeat(" ", e.Pos.Column))
	return detail
}
