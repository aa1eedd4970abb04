// Package cli is the command-line front end for outcheck.
//
// Two modes:
//   - `outcheck <studentFile> <modelFile>` compares two output files and
//     prints the diagnostic for the first divergence, if any.
//   - `outcheck --suite suite.yml` runs every case in a YAML suite file and
//     prints one line per case plus a summary.
//
// Exit codes: 0 on full match / all cases passed, 1 on any divergence or case
// failure, 2 on usage and configuration errors.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/alexflint/go-arg"
	"github.com/mattn/go-runewidth"
	"golang.org/x/term"

	"github.com/outcheck/outcheck/internal/checker"
	"github.com/outcheck/outcheck/internal/checkerconf"
	"github.com/outcheck/outcheck/internal/textcmp"
)

type args struct {
	Student string `arg:"positional" help:"path to the produced output file"`
	Model   string `arg:"positional" help:"path to the expected output file"`
	Suite   string `arg:"-s,--suite" help:"run the cases from this YAML suite file instead of comparing two files"`
	Dir     string `arg:"-C,--dir" help:"working directory for suite commands"`
	NoColor bool   `arg:"--no-color" help:"disable colored PASS/FAIL tags"`
}

func (args) Description() string {
	return "outcheck compares program output against a model answer and reports the first divergence."
}

// Run parses argv and executes the requested mode, writing results to stdout
// and problems to stderr. The return value is the process exit code.
func Run(argv []string, stdout, stderr io.Writer) int {
	var a args
	p, err := arg.NewParser(arg.Config{Program: "outcheck"}, &a)
	if err != nil {
		fmt.Fprintf(stderr, "outcheck: %v\n", err)
		return 2
	}
	if err := p.Parse(argv); err != nil {
		if err == arg.ErrHelp {
			p.WriteHelp(stdout)
			return 0
		}
		fmt.Fprintf(stderr, "outcheck: %v\n", err)
		return 2
	}

	switch {
	case a.Suite != "":
		if a.Student != "" || a.Model != "" {
			fmt.Fprintln(stderr, "outcheck: --suite cannot be combined with positional files")
			return 2
		}
		return runSuite(a, stdout, stderr)
	case a.Student != "" && a.Model != "":
		return compareFiles(a, stdout, stderr)
	default:
		fmt.Fprintln(stderr, "outcheck: need either two files or --suite (see --help)")
		return 2
	}
}

func compareFiles(a args, stdout, stderr io.Writer) int {
	student, err := os.ReadFile(a.Student)
	if err != nil {
		fmt.Fprintf(stderr, "outcheck: %v\n", err)
		return 2
	}
	model, err := os.ReadFile(a.Model)
	if err != nil {
		fmt.Fprintf(stderr, "outcheck: %v\n", err)
		return 2
	}

	out := textcmp.Compare(student, model)
	if out.Kind == textcmp.Match {
		return 0
	}
	fmt.Fprint(stdout, out.Message())
	return 1
}

func runSuite(a args, stdout, stderr io.Writer) int {
	cfg, err := checkerconf.Load(a.Suite)
	if err != nil {
		fmt.Fprintf(stderr, "outcheck: %v\n", err)
		return 2
	}

	suite := &checker.Suite{
		Name:    cfg.Name,
		Dir:     a.Dir,
		Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
	}
	for _, c := range cfg.Cases {
		suite.Cases = append(suite.Cases, checker.Case{
			Name:    c.Name,
			Command: c.Command,
			Stdin:   c.Stdin,
			Model:   c.Model,
			Points:  c.Points,
		})
	}

	run, err := suite.Run(context.Background())
	if err != nil {
		fmt.Fprintf(stderr, "outcheck: %v\n", err)
		return 2
	}

	printRun(stdout, a, run)
	if run.Status != checker.StatusPassed {
		return 1
	}
	return 0
}

// Colors (ANSI) for suite output.
const (
	reset = "\x1b[0m"
	red   = "\x1b[31m"
	green = "\x1b[32m"
)

func printRun(stdout io.Writer, a args, run checker.RunResult) {
	color := !a.NoColor && isTerminal(stdout)
	tag := func(passed bool) string {
		switch {
		case passed && color:
			return green + "PASS" + reset
		case passed:
			return "PASS"
		case color:
			return red + "FAIL" + reset
		default:
			return "FAIL"
		}
	}

	// Align diagnostics by padding case names to a common display width. Case
	// names are free-form text and may be wider than their byte count.
	nameWidth := 0
	for _, res := range run.Results {
		if w := runewidth.StringWidth(res.Name); w > nameWidth {
			nameWidth = w
		}
	}

	passed := 0
	var points []string
	for _, res := range run.Results {
		if res.Passed {
			passed++
			points = append(points, res.Points...)
			fmt.Fprintln(stdout, tag(true)+" "+res.Name)
			continue
		}
		// Message carries its own trailing newline.
		fmt.Fprintf(stdout, "%s %s  %s", tag(false), runewidth.FillRight(res.Name, nameWidth), res.Message)
	}

	fmt.Fprintf(stdout, "passed %d/%d cases", passed, len(run.Results))
	if len(points) > 0 {
		fmt.Fprintf(stdout, ", points: %s", strings.Join(points, " "))
	}
	fmt.Fprintln(stdout)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
