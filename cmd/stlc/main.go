package main

import (
	_ "embed"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	"github.com/smasher164/stlc/eval"
	"github.com/smasher164/stlc/naming"
	"github.com/smasher164/stlc/syntax"
	"github.com/smasher164/stlc/term"
)

var (
	programsFile = flag.String("programs", "", "YAML file of programs to run instead of the built-in samples")
	maxSteps     = flag.Int("max-steps", 10000, "stop evaluating a program after this many reductions (0 for no limit)")
	trace        = flag.Bool("trace", false, "print every reduction step")
	check        = flag.Bool("check", false, "compare results with the expected normal forms and fail on mismatch")
	interactive  = flag.Bool("repl", false, "read programs interactively")
)

func usage() {
	fmt.Fprint(os.Stderr, "usage: stlc [-programs file.yml] [-max-steps n] [-trace] [-check] [-repl] [file ...]\n\n")
	fmt.Fprint(os.Stderr, "stlc is an evaluator for the simply-typed lambda calculus with unit, let and mu.\n")
	fmt.Fprint(os.Stderr, "Each non-empty line of a file is a program. Without files the built-in samples are run.\n")
	os.Exit(2)
}

func errExit(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}

//go:embed programs.yml
var samples []byte

// Program is one entry of a programs file.
type Program struct {
	Name   string `yaml:"name"`
	Source string `yaml:"source"`
	// Want is the expected normal form after renaming.
	Want string `yaml:"want,omitempty"`
	// Fails marks a program that is expected to be rejected. A program with
	// neither Want nor Fails is not checked.
	Fails bool `yaml:"fails,omitempty"`
}

func loadPrograms(b []byte) ([]Program, error) {
	var doc struct {
		Programs []Program `yaml:"programs"`
	}
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("programs: %w", err)
	}
	for i, p := range doc.Programs {
		if strings.TrimSpace(p.Source) == "" {
			return nil, fmt.Errorf("programs: entry %d (%q) has no source", i, p.Name)
		}
	}
	return doc.Programs, nil
}

func programsFromFile(name string, b []byte) []Program {
	lines := lo.Filter(strings.Split(string(b), "\n"), func(l string, _ int) bool {
		return strings.TrimSpace(l) != ""
	})
	return lo.Map(lines, func(l string, i int) Program {
		return Program{Name: fmt.Sprintf("%s:%d", name, i+1), Source: strings.TrimSpace(l)}
	})
}

type runner struct {
	out  io.Writer
	diag io.Writer
	ev   eval.Evaluator
}

func newRunner(out, diag io.Writer, maxSteps int, trace bool) *runner {
	r := &runner{out: out, diag: diag, ev: eval.Evaluator{MaxSteps: maxSteps}}
	if trace {
		r.ev.Trace = func(step int, t term.Term) {
			fmt.Fprintf(r.out, "Step %d: %s\n", step, t.DeBruijnString())
		}
	}
	return r
}

// run pushes src through every stage and prints each intermediate form.
// Failures are reported on the diagnostics writer and returned.
func (r *runner) run(src string) (syntax.Term, error) {
	fmt.Fprintf(r.out, "\nInput: %s\n", src)
	st, err := syntax.Parse(src)
	if err != nil {
		fmt.Fprintln(r.diag, err)
		var perr *syntax.ParseError
		if errors.As(err, &perr) {
			fmt.Fprintln(r.diag, perr.Caret(src))
		}
		return nil, err
	}
	fmt.Fprintf(r.out, "Parsed term: %s\n", st)
	tm, ty, err := naming.Desugar(st)
	if err != nil {
		fmt.Fprintln(r.diag, err)
		return nil, err
	}
	fmt.Fprintf(r.out, "Type of term: %s\n", ty)
	fmt.Fprintf(r.out, "Nameless term: %s\n", tm.DeBruijnString())
	nf, steps, err := r.ev.Run(tm)
	if err != nil {
		err = fmt.Errorf("evaluation stopped after %d steps: %w", steps, err)
		fmt.Fprintln(r.diag, err)
		return nil, err
	}
	fmt.Fprintf(r.out, "After evaluation: %s\n", nf.DeBruijnString())
	res, err := naming.Restore(nf)
	if err != nil {
		fmt.Fprintln(r.diag, err)
		return nil, err
	}
	fmt.Fprintf(r.out, "After renaming: %s\n", res)
	return res, nil
}

// runAll runs every program and returns how many of them failed a check.
func (r *runner) runAll(programs []Program, check bool) int {
	failed := 0
	for _, p := range programs {
		res, err := r.run(p.Source)
		if !check || (p.Want == "" && !p.Fails) {
			continue
		}
		switch {
		case err != nil && !p.Fails:
			fmt.Fprintf(r.diag, "%s: failed, want %s\n", p.Name, p.Want)
			failed++
		case err == nil && p.Fails:
			fmt.Fprintf(r.diag, "%s: got %s, want an error\n", p.Name, res)
			failed++
		case err == nil && res.String() != p.Want:
			fmt.Fprintf(r.diag, "%s: got %s, want %s\n", p.Name, res, p.Want)
			failed++
		}
	}
	return failed
}

func main() {
	flag.Usage = usage
	flag.Parse()
	r := newRunner(os.Stdout, os.Stderr, *maxSteps, *trace)
	if *interactive {
		if err := runREPL(r); err != nil {
			errExit(err)
		}
		return
	}

	var programs []Program
	switch {
	case flag.NArg() > 0:
		for _, name := range flag.Args() {
			b, err := os.ReadFile(name)
			if err != nil {
				fmt.Fprintf(os.Stderr, "%v\n", err)
				usage()
			}
			programs = append(programs, programsFromFile(name, b)...)
		}
	case *programsFile != "":
		b, err := os.ReadFile(*programsFile)
		if err != nil {
			errExit(err)
		}
		if programs, err = loadPrograms(b); err != nil {
			errExit(err)
		}
	default:
		var err error
		if programs, err = loadPrograms(samples); err != nil {
			errExit(err)
		}
	}
	if failed := r.runAll(programs, *check); failed > 0 {
		errExit(fmt.Errorf("%d of %d programs did not match", failed, len(programs)))
	}
}
