// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jval

// DefaultMaxDepth is the nesting depth limit applied when Parser.MaxDepth
// is zero.
const DefaultMaxDepth = 10000

// A Parser holds options for parsing JSON text. The zero value is ready for
// use and behaves identically to the package-level Parse function.
type Parser struct {
	// MaxDepth bounds the nesting depth of arrays and objects. If zero,
	// DefaultMaxDepth is used. Input nested more deeply fails with a
	// *ParseError instead of exhausting the goroutine stack.
	MaxDepth int

	// Strict, if true, reports an error for any non-whitespace input
	// remaining after the first complete value. By default trailing input
	// is ignored.
	Strict bool
}

// Parse parses a single JSON value from the front of text using the options
// of p. In case of error, the returned error has concrete type *ParseError.
func (p Parser) Parse(text string) (Value, error) {
	in := []rune(text)
	if skipSpace(in, 0) == len(in) {
		return nil, failf("empty input")
	}
	depth := p.MaxDepth
	if depth <= 0 {
		depth = DefaultMaxDepth
	}
	s := &state{text: in, depth: depth}
	pos, v, err := s.parseValue(0)
	if err != nil {
		return nil, err
	}
	if p.Strict && pos != len(in) {
		return nil, failf("unexpected %s after value", runeAt(in, pos))
	}
	return v, nil
}

// Parse parses a single JSON value from the front of text and returns it.
// Nesting depth is limited to DefaultMaxDepth, and any input remaining
// after the first complete value is ignored. In case of error, the returned
// error has concrete type *ParseError.
func Parse(text string) (Value, error) { return Parser{}.Parse(text) }

// MustParse parses a single JSON value from text, as Parse, and panics if
// the parse fails. This is intended for static fixtures whose validity is
// known, such as in program initialization or tests.
func MustParse(text string) Value {
	v, err := Parse(text)
	if err != nil {
		panic("jval: " + err.Error())
	}
	return v
}

// A state carries the decoded input and the remaining recursion budget
// through a single parse. Offsets index runes, not bytes, so the scanners'
// one-position lookahead and lookback rules hold for any input.
type state struct {
	text  []rune
	depth int
}

func (s *state) push() error {
	s.depth--
	if s.depth < 0 {
		return failf("nesting exceeds maximum depth")
	}
	return nil
}

func (s *state) pop() { s.depth++ }

// parseValue parses one value of any kind beginning at or after pos. It
// skips leading whitespace, dispatches on the first significant rune, then
// skips trailing whitespace. It returns the offset of the first rune it did
// not consume along with the value. This is the hub of the mutual recursion:
// parseArray and parseObject call back into it for each element.
func (s *state) parseValue(pos int) (int, Value, error) {
	pos = skipSpace(s.text, pos)
	if pos == len(s.text) {
		return 0, nil, failf("no value found at end of input")
	}

	var next int
	var v Value
	var err error
	switch ch := s.text[pos]; {
	case ch == '"':
		var str string
		next, str, err = scanString(s.text, pos)
		v, next = String(str), next+1
	case ch == 'n':
		next, err = matchLiteral(s.text, pos, "null")
		v, next = Null{}, next+1
	case ch == 't':
		next, err = matchLiteral(s.text, pos, "true")
		v, next = True, next+1
	case ch == 'f':
		next, err = matchLiteral(s.text, pos, "false")
		v, next = False, next+1
	case isNumStart(ch):
		var n float64
		next, n, err = scanNumber(s.text, pos)
		v, next = Number(n), next+1
	case ch == '[':
		next, v, err = s.parseArray(pos)
	case ch == '{':
		next, v, err = s.parseObject(pos)
	default:
		return 0, nil, failf("no value found at %s", runeAt(s.text, pos))
	}
	if err != nil {
		return 0, nil, err
	}
	return skipSpace(s.text, next), v, nil
}

// parseArray parses an array whose opening bracket is at pos. It returns
// the offset one past the closing bracket.
//
// The loop alternates between requiring a value and permitting the array to
// end: a comma after an element demands another element and forbids "]",
// while its absence demands "]" next.
func (s *state) parseArray(pos int) (int, Value, error) {
	if err := s.push(); err != nil {
		return 0, nil, err
	}
	defer s.pop()

	arr := Array{}
	i := pos + 1
	allowEnd, mustEnd := true, false
	for {
		i = skipSpace(s.text, i)
		if i < len(s.text) && s.text[i] == ']' && allowEnd {
			return i + 1, arr, nil
		}
		if mustEnd {
			return 0, nil, failf(`expected "]" in array, got %s`, runeAt(s.text, i))
		}
		if i < len(s.text) && s.text[i] == ',' {
			// A comma with no element before it, as in [,] or [1,,2].
			return 0, nil, failf(`unexpected "," in array`)
		}

		next, v, err := s.parseValue(i)
		if err != nil {
			return 0, nil, err
		}
		arr = append(arr, v)
		i = next // parseValue consumed any trailing whitespace

		if i < len(s.text) && s.text[i] == ',' {
			i++
			allowEnd = false // another element is required
		} else {
			allowEnd, mustEnd = true, true
		}
	}
}

// parseObject parses an object whose opening brace is at pos. It returns
// the offset one past the closing brace. Members are recorded in source
// order; duplicate keys are retained.
func (s *state) parseObject(pos int) (int, Value, error) {
	if err := s.push(); err != nil {
		return 0, nil, err
	}
	defer s.pop()

	obj := Object{}
	i := pos + 1
	allowEnd, mustEnd := true, false
	for {
		i = skipSpace(s.text, i)
		if i < len(s.text) && s.text[i] == '}' && allowEnd {
			return i + 1, obj, nil
		}
		if mustEnd {
			return 0, nil, failf(`expected "}" in object, got %s`, runeAt(s.text, i))
		}
		if i < len(s.text) && s.text[i] == ',' {
			return 0, nil, failf(`unexpected "," in object`)
		}
		if i == len(s.text) || s.text[i] != '"' {
			return 0, nil, failf("expected quote for object key, got %s", runeAt(s.text, i))
		}

		end, key, err := scanString(s.text, i)
		if err != nil {
			return 0, nil, err
		}
		i = skipSpace(s.text, end+1)
		if i == len(s.text) || s.text[i] != ':' {
			return 0, nil, failf("expected colon after object key, got %s", runeAt(s.text, i))
		}

		next, v, err := s.parseValue(i + 1)
		if err != nil {
			return 0, nil, err
		}
		obj = append(obj, Member{Key: key, Value: v})
		i = next

		if i < len(s.text) && s.text[i] == ',' {
			i++
			allowEnd = false // another member is required
		} else {
			allowEnd, mustEnd = true, true
		}
	}
}
