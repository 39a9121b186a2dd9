package calculator_test

import (
	"fmt"
	"math"
	"sync"
	"testing"

	"github.com/alexanderspevak/calculator"
)

func TestEval(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want float64
	}{
		{"add", "1+2", 3},
		{"precedence", "2+3*4", 14},
		{"parens", "(2+3)*4", 20},
		{"leftdiv", "8/4/2", 1},
		{"leftsub", "10-4-3", 3},
		{"fraction", "7/2", 3.5},
		{"negfraction", "-7/2", -3.5},
		{"thirds", "1/3", 1.0 / 3.0},
		{"unary", "-3+5", 2},
		{"unaryafterop", "1+-2", -1},
		{"unaryparen", "-(3+2)", -1},
		{"doubleunary", "--5", -5},
		{"deep", "(((-1000)))", -1000},
		{"mixed", "-3+5/5*(10-3/3)-6", 0},
		{"nested", "((-3+5/5*(((10-3/3)))-6))", 0},
		{"spaced", "-3     +    501/501*(    ((10-3/3)))   -6", 0},
		{"spacedparens", "-3     +    5/(5)*(    ((10-3/3)))   -(6)", 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p, err := calculator.Parse(c.src)
			if err != nil {
				t.Fatalf("%q failed to parse: %v", c.src, err)
			}
			got := p.Eval()
			if got != c.want {
				t.Errorf("wrong result from %q: want %g, got %g", c.src, c.want, got)
			}
			r, err := calculator.EvalString(c.src)
			if err != nil {
				t.Fatalf("%q failed to evaluate: %v", c.src, err)
			}
			if r != got {
				t.Errorf("different results: Eval returned %g, EvalString returned %g", got, r)
			}
		})
	}
}

func TestEvalDivisionByZero(t *testing.T) {
	cases := []struct {
		name string
		src  string
		sign int
		nan  bool
	}{
		{"posinf", "5/(3-3)", 1, false},
		{"neginf", "-5/(3-3)", -1, false},
		{"nan", "0/(3-3)", 0, true},
		{"propagates", "10/(2-2)+1", 1, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := calculator.EvalString(c.src)
			if err != nil {
				t.Fatalf("%q failed to evaluate: %v", c.src, err)
			}
			switch {
			case c.nan:
				if !math.IsNaN(got) {
					t.Errorf("wrong result from %q: want NaN, got %g", c.src, got)
				}
			default:
				if !math.IsInf(got, c.sign) {
					t.Errorf("wrong result from %q: want Inf with sign %d, got %g", c.src, c.sign, got)
				}
			}
		})
	}
}

func TestEvalWhitespaceInsensitive(t *testing.T) {
	base := "-3+501/501*((10-3/3))-6"
	want, err := calculator.EvalString(base)
	if err != nil {
		t.Fatalf("%q failed to evaluate: %v", base, err)
	}
	variants := []string{
		" -3+501/501*((10-3/3))-6 ",
		"-3 + 501 / 501 * ((10 - 3/3)) - 6",
		"- 3 + 5 0 1 / 501 * ( ( 10 - 3 / 3 ) ) - 6",
		"-3\t+\t501/501*((10-3/3))\t-6",
		"-3\n+\n501/501*((10-3/3))\n-6",
	}
	for _, src := range variants {
		got, err := calculator.EvalString(src)
		if err != nil {
			t.Errorf("%q failed to evaluate: %v", src, err)
			continue
		}
		if got != want {
			t.Errorf("%q evaluated to %g, but %q evaluated to %g", base, want, src, got)
		}
	}
}

func TestEvalConcurrent(t *testing.T) {
	p, err := calculator.Parse("-3+5/5*(10-3/3)-6")
	if err != nil {
		t.Fatal(err)
	}
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if got := p.Eval(); got != 0 {
					t.Errorf("wrong result: want 0, got %g", got)
					return
				}
			}
		}()
	}
	wg.Wait()
}

func BenchmarkEval(b *testing.B) {
	cases := []struct {
		name string
		src  string
	}{
		{"flat", "1+2-3+4-5+6"},
		{"precedence", "1+2*3-4/5*6"},
		{"parens", "-3+5/5*(10-3/3)-6"},
	}
	for _, c := range cases {
		b.Run(c.name, func(b *testing.B) {
			b.ReportAllocs()
			p, err := calculator.Parse(c.src)
			if err != nil {
				b.Fatal(err)
			}
			for i := 0; i < b.N; i++ {
				p.Eval()
			}
		})
	}
}

func Example() {
	exprs := []string{
		"-3+5/5*(10-3/3)-6",
		"(((-1000)))",
		"2+3*4",
		"7/2",
	}
	for _, src := range exprs {
		p, err := calculator.Parse(src)
		if err != nil {
			fmt.Println(src, ":", err)
			continue
		}
		fmt.Printf("%s = %g\n", src, p.Eval())
	}

	// Output:
	// -3+5/5*(10-3/3)-6 = 0
	// (((-1000))) = -1000
	// 2+3*4 = 14
	// 7/2 = 3.5
}
