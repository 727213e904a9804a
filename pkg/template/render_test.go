/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package template

import (
	"strings"
	"testing"

	"github.com/andreyvit/diff"
)

func TestBindingsLookup(t *testing.T) {
	b := Bindings{
		"name": "imprint",
		"db": map[string]any{
			"host": "localhost",
			"port": 5432,
		},
	}

	value, ok := b.Lookup(Single("name"))
	if !ok || value != "imprint" {
		t.Errorf("wanted 'imprint', got %q (ok=%v)", value, ok)
	}

	value, ok = b.Lookup(FromParts("db", "port"))
	if !ok || value != "5432" {
		t.Errorf("wanted '5432', got %q (ok=%v)", value, ok)
	}

	if _, ok = b.Lookup(FromParts("db", "missing")); ok {
		t.Error("missing leaf should not resolve")
	}

	if _, ok = b.Lookup(Single("db")); ok {
		t.Error("a path ending on a nested map should not resolve")
	}

	if _, ok = b.Lookup(FromParts("name", "deeper")); ok {
		t.Error("descending through a leaf should not resolve")
	}
}

func TestBindingsSet(t *testing.T) {
	b := Bindings{}
	b.Set(FromParts("a", "b", "c"), "v")

	value, ok := b.Lookup(FromParts("a", "b", "c"))
	if !ok || value != "v" {
		t.Errorf("wanted 'v', got %q (ok=%v)", value, ok)
	}
}

func TestRenderMissingVariable(t *testing.T) {
	tokens := []Token{VariableRef(FromParts("no", "such"))}

	_, err := Render(tokens, Bindings{})
	if err == nil {
		t.Fatal("unbound variable should not render")
	}

	if !strings.Contains(err.Error(), "no.such") {
		t.Errorf("error should name the path, got %q", err.Error())
	}
}

func TestExpand(t *testing.T) {
	input := "DB_HOST={{ db.host }}\nDB_PORT={{ db.port }}\nAPP={{ app }}\n"
	b := Bindings{
		"app": "imprint",
		"db": map[string]any{
			"host": "localhost",
			"port": 5432,
		},
	}

	got, err := Expand(input, b)
	if err != nil {
		t.Fatal(err)
	}

	want := "DB_HOST=localhost\nDB_PORT=5432\nAPP=imprint\n"
	if got != want {
		t.Errorf("rendered output mismatch:\n%s", diff.LineDiff(want, got))
	}
}

func TestExpandNoVariables(t *testing.T) {
	input := "PLAIN=1\n# comment\n"

	got, err := Expand(input, Bindings{})
	if err != nil {
		t.Fatal(err)
	}

	if got != input {
		t.Errorf("wanted input unchanged, got %q", got)
	}
}

func TestExpandScanError(t *testing.T) {
	_, err := Expand("BAD={{ a\nb }}", Bindings{})
	if err == nil {
		t.Fatal("scan fault should propagate")
	}

	if !strings.Contains(err.Error(), "newline in variable segment") {
		t.Errorf("wanted scan fault in error chain, got %q", err.Error())
	}
}
