// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

// Package jval implements a single-pass recursive-descent parser that
// converts JSON text into an immutable tagged value tree.
//
// # Parsing
//
// The Parse function consumes a complete JSON value from the front of its
// input and returns the resulting tree, or reports a *ParseError describing
// the first syntactic problem found in left-to-right order:
//
//	v, err := jval.Parse(`{"name": "aloe", "size": 3}`)
//	if err != nil {
//	   log.Fatalf("Parse failed: %v", err)
//	}
//
// The concrete type of a parsed Value is one of String, Number, Object,
// Array, Bool, or Null, and can be recovered with a type switch:
//
//	switch t := v.(type) {
//	case jval.Object:
//	   fmt.Println("object with", t.Len(), "members")
//	case jval.Array:
//	   fmt.Println("array with", t.Len(), "elements")
//	case jval.Number:
//	   fmt.Println("number", float64(t))
//	}
//
// Object members preserve their order of appearance in the source, and
// duplicate keys are retained. String contents are the raw source text
// between the quotes: escape sequences, including Unicode escapes, are not
// decoded.
//
// # Options
//
// The Parser type exposes parsing options. By default the nesting depth of
// arrays and objects is bounded by DefaultMaxDepth, and input remaining
// after the first complete value is ignored. Use Strict to reject trailing
// input:
//
//	p := jval.Parser{Strict: true}
//	v, err := p.Parse(input)
//
// Parsing performs no I/O and retains no state between calls; a returned
// tree is never modified by the package and is safe to share.
package jval
