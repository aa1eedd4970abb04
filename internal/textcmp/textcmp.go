package textcmp

import "fmt"

// Kind classifies the result of comparing student output to model output.
type Kind int

// Comparison results.
const (
	Match         Kind = iota // both sequences are byte-for-byte identical
	TooLong                   // student output continues past the end of the model output
	ValueMismatch             // a byte differs between student and model output
	TooShort                  // student output ends before the model output does
)

// Outcome is the result of a single Compare pass.
//
// For TooLong, ValueMismatch, and TooShort, Column and Line locate the first
// divergence and Got/Want hold rendered characters (see RenderByte). Which of
// Got/Want is populated depends on Kind:
//   - TooLong: Got is the first surplus student character; Want is empty.
//   - ValueMismatch: Got is the student character, Want the model character.
//   - TooShort: Want is the next expected model character; Got is empty.
//
// A Match outcome carries zero values in all other fields.
//
// Invariants:
//   - Kind != Match implies Column >= 1 and Line >= 1.
//   - Kind != Match implies Message() is non-empty.
type Outcome struct {
	Kind   Kind   // Comparison result (Match, TooLong, ValueMismatch, or TooShort).
	Column int    // 1-based position within Line, counted in bytes of the student output.
	Line   int    // 1-based line number, counted from the student output's newlines.
	Got    string // Rendered student character at the divergence; empty when not applicable.
	Want   string // Rendered model character at the divergence; empty when not applicable.
}

// Message formats the outcome as a single human-readable diagnostic line, terminated by a newline. It returns "" for Match.
//
// The wording is stable: IDE plugins and grading pipelines parse these strings, so changes here are breaking changes for downstream consumers.
func (o Outcome) Message() string {
	switch o.Kind {
	case TooLong:
		return fmt.Sprintf("your output is longer than expected: character: '%s', position: %d, line: %d\n", o.Got, o.Column, o.Line)
	case ValueMismatch:
		return fmt.Sprintf("position: %d, line: %d, your output: '%s' , expected: '%s'\n", o.Column, o.Line, o.Got, o.Want)
	case TooShort:
		return fmt.Sprintf("output correct until position: %d, line: %d, but shorter than expected. Next character should be '%s'\n", o.Column, o.Line, o.Want)
	default:
		return ""
	}
}
