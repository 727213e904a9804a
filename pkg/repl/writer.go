/*
 * Copyright (c) 2023, Gideon Williams gideon@gideonw.com
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package repl

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/dburkart/imprint/pkg/template"
	"github.com/olekukonko/tablewriter"
)

// TokenList adapts a token sequence for tabular and structured output.
type TokenList []template.Token

func (l TokenList) Headers() []string {
	return []string{"#", "TYPE", "VALUE"}
}

func (l TokenList) Values() [][]string {
	rows := make([][]string, 0, len(l))
	for i, tok := range l {
		value := strconv.Quote(tok.Text)
		if tok.Type == template.TOK_VARIABLE {
			value = tok.Var.String()
		}
		rows = append(rows, []string{strconv.Itoa(i), tok.Type.ToString(), value})
	}
	return rows
}

func (l TokenList) MarshalJSON() ([]byte, error) {
	type entry struct {
		Type  string `json:"type"`
		Value string `json:"value"`
	}

	entries := make([]entry, 0, len(l))
	for _, tok := range l {
		value := tok.Text
		if tok.Type == template.TOK_VARIABLE {
			value = tok.Var.String()
		}
		entries = append(entries, entry{Type: tok.Type.ToString(), Value: value})
	}
	return json.Marshal(entries)
}

type OutputWriter interface {
	Write(l TokenList)
}

type CSVWriter struct {
	w io.Writer
}

type TextWriter struct {
	w io.Writer
}

type JSONWriter struct {
	w io.Writer
}

func NewOutputWriter(w io.Writer, t string) OutputWriter {
	switch t {
	case "csv":
		return CSVWriter{
			w,
		}
	case "json":
		return JSONWriter{
			w,
		}
	}
	return TextWriter{
		w,
	}
}

func (w CSVWriter) Write(l TokenList) {
	wtr := csv.NewWriter(w.w)
	wtr.Write(l.Headers())
	wtr.WriteAll(l.Values())
}

func (w TextWriter) Write(l TokenList) {
	table := tablewriter.NewWriter(w.w)
	table.SetHeader(l.Headers())
	table.AppendBulk(l.Values())
	table.Render()
}

func (w JSONWriter) Write(l TokenList) {
	enc := json.NewEncoder(w.w)
	enc.Encode(l)
}
