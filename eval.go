package calculator

// Eval computes the value of the program by scanning its tokens left to
// right with a single value stack. Arithmetic is performed in float64, and
// division by zero follows IEEE 754 rather than being reported as an error:
// x/0 yields +Inf or -Inf for nonzero x, and 0/0 yields NaN.
//
// A malformed token sequence, which Parse never produces from input it
// accepts, makes Eval panic with an internal sentinel. That panic indicates
// a conversion defect and is deliberately not a recoverable error value.
func (p *Program) Eval() float64 {
	var stack []float64
	pop := func() float64 {
		if len(stack) == 0 {
			panic(errInvalidProgram)
		}
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return v
	}
	for _, t := range p.tokens {
		if t.kind == tokenOperand {
			stack = append(stack, float64(t.num))
			continue
		}
		// The right operand was pushed later, so it pops first.
		rhs := pop()
		lhs := pop()
		var v float64
		switch t.op {
		case Add:
			v = lhs + rhs
		case Subtract:
			v = lhs - rhs
		case Multiply:
			v = lhs * rhs
		case Divide:
			v = lhs / rhs
		default:
			// Parentheses never persist into a postfix sequence.
			panic(errInvalidProgram)
		}
		stack = append(stack, v)
	}
	if len(stack) != 1 {
		panic(errInvalidProgram)
	}
	return stack[0]
}

// EvalString is a shortcut to parse and evaluate a string expression.
func EvalString(src string, opts ...ParseOption) (float64, error) {
	p, err := Parse(src, opts...)
	if err != nil {
		return 0, err
	}
	return p.Eval(), nil
}
