// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jval

import (
	"strconv"
	"unicode"

	"go4.org/mem"
)

// skipSpace returns the offset of the first rune at or after pos that is not
// Unicode whitespace. The result may be len(text).
func skipSpace(text []rune, pos int) int {
	for pos < len(text) && unicode.IsSpace(text[pos]) {
		pos++
	}
	return pos
}

// scanString scans a string whose opening quote is at pos. It returns the
// offset of the closing quote together with the enclosed text, verbatim.
//
// The closing quote is the first '"' whose immediately preceding rune is not
// a backslash. Escape sequences are not otherwise interpreted: the returned
// text contains exactly the source runes between the quotes, backslashes
// included.
func scanString(text []rune, pos int) (int, string, error) {
	for i := pos + 1; i < len(text); i++ {
		if text[i] == '"' && text[i-1] != '\\' {
			return i, string(text[pos+1 : i]), nil
		}
	}
	return 0, "", failf("missing end quote in string")
}

// scanNumber scans a number whose first rune (a digit or "-") is at pos. It
// returns the offset of the last consumed rune and the parsed value.
//
// The scan consumes an optional leading sign, digits, at most one decimal
// point before the exponent marker, and at most one exponent marker followed
// by an optional sign and digits. It stops at the first rune that does not
// fit that grammar; the consumed text must then parse as a floating-point
// literal.
func scanNumber(text []rune, pos int) (int, float64, error) {
	i := pos
	if i < len(text) && text[i] == '-' {
		i++
	}
	var dot, exp, esign bool
	for i < len(text) {
		ch := text[i]
		if isDigit(ch) {
			i++
			continue
		}
		if ch == '.' && !dot && !exp {
			dot = true
		} else if (ch == 'e' || ch == 'E') && !exp {
			exp = true
		} else if (ch == '+' || ch == '-') && exp && !esign && isExpMark(text[i-1]) {
			esign = true
		} else {
			break
		}
		i++
	}
	v, err := strconv.ParseFloat(string(text[pos:i]), 64)
	if err != nil {
		return 0, 0, failf("invalid number %q", string(text[pos:i]))
	}
	return i - 1, v, nil
}

// matchLiteral matches the keyword want ("true", "false", or "null")
// starting at pos, and returns the offset of its last rune.
//
// The comparison reads len(want) runes, omitting any that lie past the end
// of the input, so the text reported for a mismatch near end of input may be
// shorter than want. A truncated comparison never matches.
func matchLiteral(text []rune, pos int, want string) (int, error) {
	end := pos + len(want)
	if end > len(text) {
		end = len(text)
	}
	got := string(text[pos:end])
	if !mem.S(got).Equal(mem.S(want)) {
		return 0, failf("expected %s, got %q", want, got)
	}
	return pos + len(want) - 1, nil
}

// runeAt describes the rune at pos for use in an error message.
func runeAt(text []rune, pos int) string {
	if pos >= len(text) {
		return "end of input"
	}
	return strconv.QuoteRune(text[pos])
}

func isDigit(ch rune) bool    { return '0' <= ch && ch <= '9' }
func isNumStart(ch rune) bool { return ch == '-' || isDigit(ch) }
func isExpMark(ch rune) bool  { return ch == 'e' || ch == 'E' }
