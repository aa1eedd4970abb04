// Package checker runs exercise cases and grades their output.
//
// A Suite is a list of cases: each case runs a command, feeds it stdin, and
// compares the captured stdout byte-for-byte against the case's model output
// using textcmp. The per-case diagnostic (first divergent character, position,
// line) becomes the result message shown to the student.
//
// A failing case is a normal result, not an error; Run returns an error only
// for caller mistakes. Commands that cannot be started, exit non-zero, or
// exceed the suite timeout fail their case with an explanatory message.
package checker

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/outcheck/outcheck/internal/textcmp"
	"github.com/outcheck/outcheck/internal/tracelog"
)

// Case is one checked exercise: a command whose stdout must match Model.
type Case struct {
	Name    string   // Identifies the case in results.
	Command []string // Program and arguments.
	Stdin   string   // Fed to the program's standard input.
	Model   []byte   // Expected stdout, byte for byte.
	Points  []string // Points awarded if the case passes.
}

// Result is the graded outcome of one case.
//
// Message is sanitized with textcmp.SanitizeNonASCII before being stored, so
// it is always safe to hand to naive text consumers.
type Result struct {
	Name    string
	Passed  bool
	Points  []string        // Points earned; nil unless Passed.
	Message string          // Diagnostic for failures; empty when Passed.
	Outcome textcmp.Outcome // Structured comparison outcome; zero value if the command never produced comparable output.
}

// RunStatus summarizes a whole suite run.
type RunStatus int

const (
	StatusPassed RunStatus = iota
	StatusTestsFailed
)

// RunResult is the outcome of running every case in a suite.
type RunResult struct {
	Status  RunStatus
	Results []Result
}

// Suite is a named group of cases sharing a working directory and timeout.
type Suite struct {
	Name    string
	Dir     string        // Working directory for commands; "" inherits the process's.
	Timeout time.Duration // Per-case limit; 0 means no limit.
	Cases   []Case
}

// Run executes every case in order and returns all results. It does not stop
// at the first failure: students see the status of the whole suite.
//
// Run returns an error only for invalid arguments; case failures (including
// commands that fail to start) are reported in the results.
func (s *Suite) Run(ctx context.Context) (RunResult, error) {
	if s == nil {
		return RunResult{}, errors.New("checker: suite is nil")
	}
	if ctx == nil {
		return RunResult{}, errors.New("checker: context is nil")
	}
	if len(s.Cases) == 0 {
		return RunResult{}, errors.New("checker: suite has no cases")
	}

	run := RunResult{Status: StatusPassed}
	for _, c := range s.Cases {
		res := s.runCase(ctx, c)
		if !res.Passed {
			run.Status = StatusTestsFailed
		}
		run.Results = append(run.Results, res)
	}
	return run, nil
}

func (s *Suite) runCase(ctx context.Context, c Case) Result {
	res := Result{Name: c.Name}

	if len(c.Command) == 0 {
		res.Message = "no command configured\n"
		return res
	}

	if s.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, c.Command[0], c.Command[1:]...)
	cmd.Dir = s.Dir
	cmd.Stdin = strings.NewReader(c.Stdin)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	err := cmd.Run()
	tracelog.Log("case %s: ran %q in %v, err=%v", c.Name, c.Command, time.Since(start), err)

	if err != nil {
		switch {
		case errors.Is(ctx.Err(), context.DeadlineExceeded):
			res.Message = fmt.Sprintf("command timed out after %v\n", s.Timeout)
		case errors.Is(ctx.Err(), context.Canceled):
			res.Message = "command was canceled\n"
		default:
			var exitErr *exec.ExitError
			if errors.As(err, &exitErr) {
				res.Message = textcmp.SanitizeNonASCII(fmt.Sprintf("command exited with status %d: %s\n", exitErr.ExitCode(), firstLine(stderr.String())))
			} else {
				res.Message = textcmp.SanitizeNonASCII(fmt.Sprintf("failed to run command: %v\n", err))
			}
		}
		return res
	}

	res.Outcome = textcmp.Compare(stdout.Bytes(), c.Model)
	if res.Outcome.Kind != textcmp.Match {
		res.Message = textcmp.SanitizeNonASCII(res.Outcome.Message())
		return res
	}

	res.Passed = true
	res.Points = c.Points
	return res
}

// firstLine trims s to its first line, without the newline.
func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}
