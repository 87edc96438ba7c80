// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jval

// A Kind identifies which variant of the value union a Value is.
type Kind byte

// Constants defining the valid Kind values.
const (
	Invalid Kind = iota // not a valid value
	KString             // string value
	KNumber             // number value
	KObject             // object: { ... }
	KArray              // array: [ ... ]
	KBool               // constant: true or false
	KNull               // constant: null
)

var kindStr = [...]string{
	Invalid: "invalid value",
	KString: "string",
	KNumber: "number",
	KObject: "object",
	KArray:  "array",
	KBool:   "bool",
	KNull:   "null",
}

func (k Kind) String() string {
	v := int(k)
	if v >= len(kindStr) {
		return kindStr[Invalid]
	}
	return kindStr[v]
}

// A Value is a JSON value parsed from source text. The concrete type of a
// Value is one of String, Number, Object, Array, Bool, or Null.
//
// A tree returned by Parse is never modified by this package after it is
// returned, and no part of it is shared with any other parse. It is safe to
// share across goroutines once Parse returns.
type Value interface {
	// Kind reports which variant of the value union the receiver is.
	Kind() Kind
}

// A String is a string value. Its contents are the raw source text between
// the enclosing quotation marks: escape sequences are not decoded, and
// backslashes are retained verbatim.
type String string

// Kind satisfies the Value interface.
func (String) Kind() Kind { return KString }

// A Number is a floating-point value.
type Number float64

// Kind satisfies the Value interface.
func (Number) Kind() Kind { return KNumber }

// A Bool is a Boolean constant, true or false.
type Bool bool

// Kind satisfies the Value interface.
func (Bool) Kind() Kind { return KBool }

// Constants for the two Boolean values.
const (
	True  Bool = true
	False Bool = false
)

// Null represents the null constant.
type Null struct{}

// Kind satisfies the Value interface.
func (Null) Kind() Kind { return KNull }

// An Array is an ordered sequence of values.
type Array []Value

// Kind satisfies the Value interface.
func (Array) Kind() Kind { return KArray }

// Len reports the number of elements in a.
func (a Array) Len() int { return len(a) }

// An Object is an ordered collection of key-value members. Members appear in
// the order they occur in the source text, and duplicate keys are retained.
type Object []Member

// Kind satisfies the Value interface.
func (Object) Kind() Kind { return KObject }

// Len reports the number of members in o.
func (o Object) Len() int { return len(o) }

// Find returns the first member of o with the given key, or nil.
func (o Object) Find(key string) *Member {
	for i, m := range o {
		if m.Key == key {
			return &o[i]
		}
	}
	return nil
}

// A Member is a single key-value pair belonging to an Object. The key is
// stored exactly as it was scanned, without escape decoding.
type Member struct {
	Key   string
	Value Value
}
