/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package template

type TokenType int

const (
	TOK_TEXT TokenType = iota
	TOK_VARIABLE
)

func (t TokenType) ToString() string {
	switch t {
	case TOK_TEXT:
		return "TOK_TEXT"
	case TOK_VARIABLE:
		return "TOK_VARIABLE"
	}
	return "TOK_UNKNOWN"
}

// Token is one unit of tokenizer output: either a run of literal text,
// carried verbatim in Text, or a variable reference carried in Var.
type Token struct {
	Type TokenType
	Text string
	Var  Variable
}

func Text(s string) Token {
	return Token{Type: TOK_TEXT, Text: s}
}

func VariableRef(v Variable) Token {
	return Token{Type: TOK_VARIABLE, Var: v}
}
