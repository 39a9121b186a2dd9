package calculator_test

import (
	"testing"

	"github.com/alexanderspevak/calculator"
)

func FuzzEvalString(f *testing.F) {
	f.Add("-3+5/5*(10-3/3)-6")
	f.Add("-3     +    501/501*(    ((10-3/3)))   -6")
	f.Add("5/(3-3)")
	f.Add("0/(3-3)")
	f.Add("1+-2")
	f.Add("-(3+2)")
	f.Add("9223372036854775807+1")
	f.Add("9223372036854775808+1")
	f.Fuzz(func(t *testing.T, s string) {
		calculator.EvalString(s)
	})
}
