/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package template

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Bindings maps variable segments to values. A dotted path descends one
// map level per segment; the final segment must land on a non-map leaf.
type Bindings map[string]any

// Lookup resolves a variable against the bindings. The second return is
// false if any segment is missing or an intermediate segment is not a
// nested map.
func (b Bindings) Lookup(v Variable) (string, bool) {
	segments := v.Segments()

	scope := b
	for i := 0; i < len(segments)-1; i++ {
		nested, ok := scope[segments[i]].(map[string]any)
		if !ok {
			return "", false
		}
		scope = nested
	}

	value, ok := scope[segments[len(segments)-1]]
	if !ok {
		return "", false
	}
	if _, isMap := value.(map[string]any); isMap {
		return "", false
	}

	return fmt.Sprintf("%v", value), true
}

// Set binds a dotted path to a value, creating intermediate maps as
// needed.
func (b Bindings) Set(v Variable, value any) {
	segments := v.Segments()

	scope := b
	for i := 0; i < len(segments)-1; i++ {
		nested, ok := scope[segments[i]].(map[string]any)
		if !ok {
			nested = map[string]any{}
			scope[segments[i]] = nested
		}
		scope = nested
	}

	scope[segments[len(segments)-1]] = value
}

// Render concatenates literal tokens with substituted variable values.
// Every variable in the token sequence must resolve.
func Render(tokens []Token, bindings Bindings) (string, error) {
	var out strings.Builder

	for _, tok := range tokens {
		switch tok.Type {
		case TOK_TEXT:
			out.WriteString(tok.Text)
		case TOK_VARIABLE:
			value, ok := bindings.Lookup(tok.Var)
			if !ok {
				return "", errors.Errorf("no value bound for variable %q", tok.Var.String())
			}
			out.WriteString(value)
		}
	}

	return out.String(), nil
}

// Expand tokenizes input and renders it against bindings.
func Expand(input string, bindings Bindings) (string, error) {
	tokens, err := Tokenize(input)
	if err != nil {
		return "", errors.Wrap(err, "scanning template")
	}
	return Render(tokens, bindings)
}
