package calculator

// validateInfix rejects strings that cannot be a complete infix expression.
// It runs on the whitespace-stripped string before any tokenization and
// applies its rules in a fixed order, so the first violated rule decides
// which error is returned.
func validateInfix(s string, ctx parsectx) error {
	if s == "" {
		ctx.tracef("empty expression")
		return ErrInvalidInput
	}
	switch s[len(s)-1] {
	case '(', '-', '+', '*', '/':
		// A trailing operator or open parenthesis can never be completed.
		ctx.tracef("expression ends with %q", s[len(s)-1])
		return ErrInvalidInput
	}
	switch s[0] {
	case ')', '+', '*', '/':
		// A leading minus is allowed because it may be unary.
		ctx.tracef("expression starts with %q", s[0])
		return ErrInvalidInput
	}
	if len(s) == 1 && isDigit(s[0]) && !ctx.loneDigit {
		ctx.tracef("single digit %q rejected", s[0])
		return ErrInvalidInput
	}
	if err := matchParens(s); err != nil {
		ctx.tracef("unbalanced parentheses")
		return err
	}
	return scanOrder(s, ctx)
}

// matchParens checks parenthesis balance: the running count of ( minus )
// may never go negative and must end at zero.
func matchParens(s string) error {
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth < 0 {
				return ErrParenthesesNotMatching
			}
		}
	}
	if depth != 0 {
		return ErrParenthesesNotMatching
	}
	return nil
}

// scanOrder walks the whole string checking that every character is valid
// and that adjacent characters keep an alternating operand/operator
// structure. A unary minus is a sign rather than an operator: it is skipped
// without becoming the previous character, exactly as the converter treats
// it.
func scanOrder(s string, ctx parsectx) error {
	var prev byte
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !validChar(c) {
			ctx.tracef("invalid character %q", c)
			return ErrInvalidInput
		}
		if unaryMinus(c, prev) {
			continue
		}
		if isDigit(c) {
			if prev == ')' {
				ctx.tracef("digit %q directly after )", c)
				return ErrInvalidInput
			}
			prev = c
			continue
		}
		if err := operatorOrder(c, prev); err != nil {
			ctx.tracef("%q may not follow %q", c, prev)
			return err
		}
		prev = c
	}
	return nil
}
