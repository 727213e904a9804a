/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package template

import (
	"strings"

	"github.com/dburkart/imprint/pkg/common/parse"
)

// Tokenizer splits an input buffer into literal text and variable
// references delimited by {{ and }}.
type Tokenizer struct {
	Input string

	pos  int
	col  int
	line int
}

// Tokenize scans input in a single pass and returns the ordered token
// sequence, or a positioned error. Literal tokens are slices of input,
// so input must outlive the returned tokens.
func Tokenize(input string) ([]Token, error) {
	t := Tokenizer{Input: input}
	return t.Tokenize()
}

// Tokenize consumes the whole of Tokenizer.Input.
//
// An opening {{ with no matching }} before end of input is not an
// error: the delimiter and everything after it scan as literal text.
// The author may well have meant a literal brace pair.
func (t *Tokenizer) Tokenize() ([]Token, error) {
	var tokens []Token

	tail := 0
	for t.pos+1 < len(t.Input) {
		if t.Input[t.pos] == '{' && t.Input[t.pos+1] == '{' {
			v, consumed, err := scanVariable(t.Input[t.pos+2:])
			if err != nil {
				// Positions inside the body are relative to the first
				// byte after the opening delimiter.
				return nil, err.Offset(parse.Position{Column: t.col + 2, Line: t.line})
			}
			if consumed > 0 {
				if tail != t.pos {
					tokens = append(tokens, Text(t.Input[tail:t.pos]))
				}
				tokens = append(tokens, VariableRef(v))

				// Variable bodies are single-line, so the cursor stays
				// on the current line.
				t.pos += 2 + consumed
				t.col += 2 + consumed
				tail = t.pos
				continue
			}
		}

		if t.Input[t.pos] == '\n' {
			t.line++
			t.col = 0
		} else {
			t.col++
		}
		t.pos++
	}

	if tail < len(t.Input) {
		tokens = append(tokens, Text(t.Input[tail:]))
	}

	return tokens, nil
}

// scanVariable scans a variable body, starting just past the opening
// delimiter, up to and including the closing }}. It returns the number
// of bytes consumed, or 0 if no closing delimiter exists before end of
// input. Positions in the returned error are relative to the body.
//
// Grammar:
//
//	body    = segment *("." segment) "}}"
//	segment = *WSP 1*CHAR *WSP ; CHAR is any byte except ".", "}}", LF
func scanVariable(body string) (Variable, int, *parse.Error) {
	var parts []string

	start := 0
	for i := 0; i < len(body); i++ {
		switch {
		case body[i] == '}' && i+1 < len(body) && body[i+1] == '}':
			piece := strings.TrimSpace(body[start:i])
			if piece == "" {
				return Variable{}, 0, parse.NewError(parse.EmptyVariableSegment, parse.Position{Column: i})
			}
			parts = append(parts, piece)
			return FromParts(parts...), i + 2, nil
		case body[i] == '.':
			piece := strings.TrimSpace(body[start:i])
			if piece == "" {
				return Variable{}, 0, parse.NewError(parse.EmptyVariableSegment, parse.Position{Column: i})
			}
			parts = append(parts, piece)
			start = i + 1
		case body[i] == '\n':
			return Variable{}, 0, parse.NewError(parse.NewlineInVariableSegment, parse.Position{Column: i})
		}
	}

	return Variable{}, 0, nil
}
