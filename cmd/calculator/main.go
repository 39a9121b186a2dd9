package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/alexanderspevak/calculator"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

func main() {
	log.SetFlags(0)
	var (
		cfgname string
		verb    string
		echo    bool
		single  bool
		debug   bool
	)
	flag.StringVar(&cfgname, "config", "", "config file (default $CALCULATOR_CONFIG, then the user config dir)")
	flag.StringVar(&verb, "fmt", "%g", "result formatting string")
	flag.BoolVar(&echo, "echo", false, "print postfix notation with each result")
	flag.BoolVar(&single, "single", false, "accept a single digit as an expression")
	flag.BoolVar(&debug, "debug", false, "write parser diagnostics to stderr, or to calculator.log in the interactive calculator")
	flag.Parse()

	cfg, err := loadConfig(cfgname)
	if err != nil {
		log.Fatal(err)
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "fmt":
			cfg.Format = verb
		case "echo":
			cfg.Echo = echo
		case "single":
			cfg.Single = single
		}
	})

	// Expressions given as arguments evaluate once each.
	if args := flag.Args(); len(args) > 0 {
		opts := parseOpts(cfg, traceTo(debug))
		failed := 0
		for _, src := range args {
			if err := evalLine(os.Stdout, src, cfg, opts); err != nil {
				fmt.Println(err)
				failed++
			}
		}
		if failed > 0 {
			os.Exit(1)
		}
		return
	}

	// Piped input evaluates line by line, errors and all.
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		opts := parseOpts(cfg, traceTo(debug))
		sc := bufio.NewScanner(os.Stdin)
		for sc.Scan() {
			src := strings.TrimSpace(sc.Text())
			if src == "" {
				continue
			}
			if err := evalLine(os.Stdout, src, cfg, opts); err != nil {
				fmt.Println(err)
			}
		}
		if err := sc.Err(); err != nil {
			log.Fatal(err)
		}
		return
	}

	// Interactive calculator. Stderr belongs to the terminal UI, so debug
	// diagnostics go to a log file instead.
	var trace io.Writer
	if debug {
		f, err := tea.LogToFile("calculator.log", "calculator")
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		trace = f
	}
	if _, err := tea.NewProgram(newModel(cfg, parseOpts(cfg, trace))).Run(); err != nil {
		log.Fatal(err)
	}
}

// traceTo selects the diagnostic sink for the non-interactive modes.
func traceTo(debug bool) io.Writer {
	if debug {
		return os.Stderr
	}
	return nil
}

// parseOpts translates wrapper configuration into parse options.
func parseOpts(cfg config, trace io.Writer) []calculator.ParseOption {
	var opts []calculator.ParseOption
	if cfg.Single {
		opts = append(opts, calculator.AllowSingleDigit())
	}
	if trace != nil {
		opts = append(opts, calculator.Trace(trace))
	}
	return opts
}

// evalLine evaluates one expression and writes its result, preceded by the
// postfix notation when echo is on.
func evalLine(w io.Writer, src string, cfg config, opts []calculator.ParseOption) error {
	p, err := calculator.Parse(src, opts...)
	if err != nil {
		return err
	}
	if cfg.Echo {
		fmt.Fprintf(w, "%v : ", p)
	}
	fmt.Fprintf(w, cfg.Format+"\n", p.Eval())
	return nil
}
