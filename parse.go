package calculator

import "strings"

// Expr   = Term { ('+' | '-') Term }
// Term   = Factor { ('*' | '/') Factor }
// Factor = ['-'] num | ['-'] '(' Expr ')'
//
// The grammar above is what valid input looks like; conversion does not
// build a syntax tree for it. Parse turns the infix string directly into
// postfix order with the shunting-yard algorithm, using an operator stack
// and an output sequence.

// Program is an arithmetic expression compiled to postfix (reverse Polish)
// order. A Program is immutable once built and safe for concurrent use.
type Program struct {
	// tokens is the postfix sequence, owned exclusively by the Program.
	tokens []token
}

// Parse compiles an infix arithmetic expression to its postfix form. The
// given options are applied in order. Whitespace anywhere in src is
// ignored. Rejected input yields ErrInvalidInput or
// ErrParenthesesNotMatching; the returned Program is non-nil exactly when
// the error is nil.
func Parse(src string, opts ...ParseOption) (*Program, error) {
	var ctx parsectx
	for _, opt := range opts {
		ctx = opt.parseOption(ctx)
	}
	s := stripSpace(src)
	if err := validateInfix(s, ctx); err != nil {
		return nil, err
	}
	var (
		out    []token
		stack  []Operator
		num    []byte
		negate bool
		prev   byte
	)
	flush := func() error {
		if len(num) == 0 {
			return nil
		}
		n, err := ParseNumber(string(num))
		if err != nil {
			return err
		}
		out = append(out, operandToken(n))
		num = num[:0]
		return nil
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if unaryMinus(c, prev) {
			// A sign, not an operator. It negates the next numeric run and
			// does not become the previous character.
			negate = true
			continue
		}
		if isDigit(c) {
			if negate {
				num = append(num, '-')
				negate = false
			}
			num = append(num, c)
			prev = c
			continue
		}
		if err := flush(); err != nil {
			ctx.tracef("bad number before %q", c)
			return nil, err
		}
		if err := operatorOrder(c, prev); err != nil {
			ctx.tracef("%q may not follow %q", c, prev)
			return nil, err
		}
		prev = c
		op, ok := operatorOf(c)
		if !ok {
			// Unreachable: validateInfix admits only operator characters here.
			return nil, ErrInvalidInput
		}
		switch op {
		case LeftParen:
			stack = append(stack, op)
		case RightParen:
			// Pop to the output until the matching ( is popped and discarded.
			// The balance check guarantees it is on the stack.
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				if top == LeftParen {
					break
				}
				out = append(out, operatorToken(top))
			}
		default:
			switch {
			case len(stack) == 0 || stack[len(stack)-1] == LeftParen:
				stack = append(stack, op)
			case op.Precedence() > stack[len(stack)-1].Precedence():
				stack = append(stack, op)
			default:
				// Equal precedence pops, keeping + - * / left associative.
				for len(stack) > 0 && stack[len(stack)-1].Precedence() >= op.Precedence() {
					out = append(out, operatorToken(stack[len(stack)-1]))
					stack = stack[:len(stack)-1]
				}
				stack = append(stack, op)
			}
		}
	}
	if err := flush(); err != nil {
		ctx.tracef("bad number at end of expression")
		return nil, err
	}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if top == LeftParen || top == RightParen {
			// Stray parentheses cannot survive validation.
			continue
		}
		out = append(out, operatorToken(top))
	}
	p := &Program{tokens: out}
	ctx.tracef("postfix: %v", p)
	return p, nil
}

// String renders the program's tokens in postfix order, separated by single
// spaces, with operands in decimal.
func (p *Program) String() string {
	var b strings.Builder
	for i, t := range p.tokens {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(t.String())
	}
	return b.String()
}
