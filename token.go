package calculator

import "strconv"

// Operator identifies an arithmetic operator or parenthesis in an infix
// expression. Parentheses exist only while an expression is being
// converted; they never appear in a Program.
type Operator uint8

const (
	Add Operator = iota
	Subtract
	Multiply
	Divide
	LeftParen
	RightParen
)

// operatorOf maps a raw expression character to its Operator.
func operatorOf(c byte) (Operator, bool) {
	switch c {
	case '+':
		return Add, true
	case '-':
		return Subtract, true
	case '*':
		return Multiply, true
	case '/':
		return Divide, true
	case '(':
		return LeftParen, true
	case ')':
		return RightParen, true
	}
	return 0, false
}

// Precedence returns the operator's binding strength: 2 for Multiply and
// Divide, 1 for Add and Subtract, 0 for parentheses. Parenthesis precedence
// matters only while one sits on the operator stack during conversion.
func (op Operator) Precedence() int {
	switch op {
	case Multiply, Divide:
		return 2
	case Add, Subtract:
		return 1
	}
	return 0
}

func (op Operator) String() string {
	switch op {
	case Add:
		return "+"
	case Subtract:
		return "-"
	case Multiply:
		return "*"
	case Divide:
		return "/"
	case LeftParen:
		return "("
	case RightParen:
		return ")"
	}
	return "?"
}

// token is one element of a postfix sequence, either an integer operand or
// an operator. kind selects which of the other fields is meaningful.
type token struct {
	kind tokenKind
	num  int64
	op   Operator
}

type tokenKind uint8

const (
	tokenOperand tokenKind = iota
	tokenOperator
)

func operandToken(n int64) token {
	return token{kind: tokenOperand, num: n}
}

func operatorToken(op Operator) token {
	return token{kind: tokenOperator, op: op}
}

func (t token) String() string {
	if t.kind == tokenOperand {
		return strconv.FormatInt(t.num, 10)
	}
	return t.op.String()
}
