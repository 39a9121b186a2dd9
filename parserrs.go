package calculator

import "errors"

// ErrInvalidInput reports input that is not a well-formed infix expression:
// an unsupported character, a malformed or out-of-range number, bad token
// adjacency, or empty or degenerate input. Its message is a fixed part of
// the interface contract.
var ErrInvalidInput = errors.New("Enter valid mathematical infix notation. Valid symbols are: + / - () and integer digits")

// ErrParenthesesNotMatching reports a parenthesis balance violation, either
// a ) appearing before its matching ( or unequal counts of ( and ). Its
// message is a fixed part of the interface contract.
var ErrParenthesesNotMatching = errors.New("Parentheses must match. ) can not come before (. Count of ( must equal to )")

// errInvalidProgram is the value Eval panics with when a Program holds a
// malformed token sequence. Parse never builds such a sequence from input
// it accepts, so this signals a defect in conversion rather than a user
// error. It is not part of the public error taxonomy.
var errInvalidProgram = errors.New("calculator: malformed postfix program")
