// Package calculator evaluates integer infix arithmetic expressions.
//
// An expression is made of decimal integers, the binary operators + - * /,
// parentheses, and any amount of whitespace. Parse compiles an expression
// to postfix (reverse Polish) order with the shunting-yard algorithm, and
// Eval computes the postfix form's value in float64 arithmetic. A minus
// sign is unary when it opens the expression or follows anything that
// cannot end an operand; it negates the next number. All operators are
// left associative, with * and / binding tighter than + and -.
//
// Rejected input produces one of two fixed-message errors, ErrInvalidInput
// and ErrParenthesesNotMatching. A lone digit like "5" counts as rejected
// input unless the AllowSingleDigit option says otherwise.
//
// Parse, Eval, and EvalString are safe for concurrent use, and a Program
// is immutable once built.
package calculator
