package calculator_test

import (
	"fmt"
	"os"

	"github.com/alexanderspevak/calculator"
)

func ExampleParse() {
	p, err := calculator.Parse("-3+5/5*(10-3/3)-6")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(p, "=", p.Eval())
	// Output:
	// -3 5 5 / 10 3 3 / - * + 6 - = 0
}

func ExampleEvalString() {
	r, err := calculator.EvalString("2*(3+4)")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(r)
	// Output:
	// 14
}

func ExampleProgram_String() {
	p, _ := calculator.Parse("2+3*4")
	fmt.Println(p)
	// Output:
	// 2 3 4 * +
}

func ExampleAllowSingleDigit() {
	_, err := calculator.Parse("7")
	fmt.Println(err)
	r, _ := calculator.EvalString("7", calculator.AllowSingleDigit())
	fmt.Println(r)
	// Output:
	// Enter valid mathematical infix notation. Valid symbols are: + / - () and integer digits
	// 7
}

func ExampleTrace() {
	calculator.Parse("1++4", calculator.Trace(os.Stdout))
	// Output:
	// '+' may not follow '+'
}
