package calculator

import (
	"strconv"
	"strings"
	"unicode"
)

// stripSpace removes every Unicode whitespace rune from s. It runs before
// validation, so the rest of the package only ever sees the compact form of
// an expression.
func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// isDigit reports whether c is an ASCII digit.
func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

// validChar reports whether c may appear in a whitespace-stripped infix
// expression: an ASCII digit or one of ( ) + - * /. The bytes of a
// multi-byte rune all fail this check, so non-ASCII input is rejected
// without decoding.
func validChar(c byte) bool {
	if isDigit(c) {
		return true
	}
	_, ok := operatorOf(c)
	return ok
}

// unaryMinus reports whether c is a minus acting as sign negation rather
// than subtraction. prev is the previous significant character, or 0 at the
// start of input. A minus is unary at the start and after any character
// that cannot end an operand.
func unaryMinus(c, prev byte) bool {
	if c != '-' {
		return false
	}
	if prev == 0 {
		return true
	}
	return !isDigit(prev) && prev != ')'
}

// operatorOrder checks that the non-digit character c may follow prev, with
// prev == 0 meaning the start of input. Only ( may open an expression; (
// may not follow a closing parenthesis or a digit; every other operator and
// ) must follow something that can end an operand.
func operatorOrder(c, prev byte) error {
	if prev == 0 {
		if c != '(' {
			return ErrInvalidInput
		}
		return nil
	}
	if c == '(' {
		if prev == ')' || isDigit(prev) {
			return ErrInvalidInput
		}
		return nil
	}
	if !isDigit(prev) && prev != ')' {
		return ErrInvalidInput
	}
	return nil
}

// ParseNumber converts an integer literal to its value. A literal is an
// optional single leading minus sign followed by one or more ASCII digits;
// anything else fails with ErrInvalidInput. The digits must fit in an int64
// before the sign is applied, which puts the most negative int64 out of
// range; out-of-range literals fail with ErrInvalidInput rather than
// wrapping.
func ParseNumber(s string) (int64, error) {
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}
	if s == "" {
		return 0, ErrInvalidInput
	}
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return 0, ErrInvalidInput
		}
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, ErrInvalidInput
	}
	if neg {
		n = -n
	}
	return n, nil
}
