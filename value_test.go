// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jval_test

import (
	"testing"

	"github.com/creachadair/jval"
	"github.com/google/go-cmp/cmp"
)

func TestKind(t *testing.T) {
	tests := []struct {
		input string
		kind  jval.Kind
		str   string
	}{
		{`"x"`, jval.KString, "string"},
		{`25`, jval.KNumber, "number"},
		{`{}`, jval.KObject, "object"},
		{`[]`, jval.KArray, "array"},
		{`true`, jval.KBool, "bool"},
		{`false`, jval.KBool, "bool"},
		{`null`, jval.KNull, "null"},
	}
	for _, test := range tests {
		v := jval.MustParse(test.input)
		if v.Kind() != test.kind {
			t.Errorf("Parse %#q: got kind %v, want %v", test.input, v.Kind(), test.kind)
		}
		if got := v.Kind().String(); got != test.str {
			t.Errorf("Kind of %#q: got %q, want %q", test.input, got, test.str)
		}
	}
	if got := jval.Kind(200).String(); got != "invalid value" {
		t.Errorf("Kind(200): got %q, want %q", got, "invalid value")
	}
}

func TestObjectFind(t *testing.T) {
	obj := jval.MustParse(`{"a": 1, "b": 2, "a": 3}`).(jval.Object)

	if got := obj.Find("nonesuch"); got != nil {
		t.Errorf("Find nonesuch: got %+v, want nil", got)
	}

	// Find returns the first member with the key; later duplicates remain
	// reachable by position.
	m := obj.Find("a")
	if m == nil {
		t.Fatal("Find a: no member found")
	}
	if diff := cmp.Diff(jval.Number(1), m.Value); diff != "" {
		t.Errorf("Find a: wrong value (-want, +got)\n%s", diff)
	}
	if diff := cmp.Diff(jval.Number(3), obj[2].Value); diff != "" {
		t.Errorf("Member 2: wrong value (-want, +got)\n%s", diff)
	}

	if obj.Len() != 3 {
		t.Errorf("Len: got %d, want 3", obj.Len())
	}
}

func TestArrayLen(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{`[]`, 0},
		{`[5]`, 1},
		{`[[1, 2], 3]`, 2},
	}
	for _, test := range tests {
		arr := jval.MustParse(test.input).(jval.Array)
		if got := arr.Len(); got != test.want {
			t.Errorf("Len %#q: got %d, want %d", test.input, got, test.want)
		}
	}
}
