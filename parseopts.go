package calculator

import (
	"fmt"
	"io"
)

// ParseOption is an option for parsing.
type ParseOption interface {
	parseOption(parsectx) parsectx
}

// parsectx holds general data for parsing, accumulated from parse options
// and threaded through validation and conversion.
type parsectx struct {
	// loneDigit indicates that an expression consisting of a single digit
	// is accepted rather than rejected as degenerate.
	loneDigit bool
	// trace receives diagnostics during validation and conversion. Nil
	// discards them.
	trace io.Writer
}

// tracef writes one diagnostic line to the configured sink, if any.
func (p parsectx) tracef(format string, args ...any) {
	if p.trace == nil {
		return
	}
	fmt.Fprintf(p.trace, format+"\n", args...)
}

type (
	lonedigitopt struct{}
	traceopt     struct{ w io.Writer }
)

// AllowSingleDigit permits expressions that consist of exactly one digit,
// like "5". The validator otherwise rejects them as degenerate, even though
// the same value wrapped in parentheses is accepted.
func AllowSingleDigit() ParseOption {
	return lonedigitopt{}
}

func (lonedigitopt) parseOption(p parsectx) parsectx {
	p.loneDigit = true
	return p
}

// Trace directs diagnostics produced while validating and converting an
// expression to w. Diagnostics describe why input is rejected and give the
// postfix form of accepted input. With no Trace option, diagnostics are
// discarded.
func Trace(w io.Writer) ParseOption {
	return traceopt{w: w}
}

func (o traceopt) parseOption(p parsectx) parsectx {
	p.trace = o.w
	return p
}
