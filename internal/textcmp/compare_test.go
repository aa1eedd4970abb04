package textcmp

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCompare_Outcomes(t *testing.T) {
	tests := []struct {
		name    string
		student string
		model   string
		want    Outcome
	}{
		{
			name:    "identical single line",
			student: "hello\n",
			model:   "hello\n",
			want:    Outcome{Kind: Match},
		},
		{
			name:    "identical empty",
			student: "",
			model:   "",
			want:    Outcome{Kind: Match},
		},
		{
			name:    "identical multiline",
			student: "a\nb\nc\n",
			model:   "a\nb\nc\n",
			want:    Outcome{Kind: Match},
		},
		{
			name:    "student longer",
			student: "hello!",
			model:   "hello",
			want:    Outcome{Kind: TooLong, Column: 6, Line: 1, Got: "!"},
		},
		{
			name:    "student shorter",
			student: "hello",
			model:   "hello\n",
			want:    Outcome{Kind: TooShort, Column: 6, Line: 1, Want: `\n`},
		},
		{
			name:    "mismatch on second line",
			student: "a\nb",
			model:   "a\nc",
			want:    Outcome{Kind: ValueMismatch, Column: 1, Line: 2, Got: "b", Want: "c"},
		},
		{
			name:    "mismatch on first byte",
			student: "x",
			model:   "y",
			want:    Outcome{Kind: ValueMismatch, Column: 1, Line: 1, Got: "x", Want: "y"},
		},
		{
			name:    "non-ascii student byte",
			student: "\xff",
			model:   "A",
			want:    Outcome{Kind: ValueMismatch, Column: 1, Line: 1, Got: "(invalid)", Want: "A"},
		},
		{
			name:    "empty model reports too long from the first byte",
			student: "x",
			model:   "",
			want:    Outcome{Kind: TooLong, Column: 1, Line: 1, Got: "x"},
		},
		{
			name:    "empty student reports too short",
			student: "",
			model:   "x",
			want:    Outcome{Kind: TooShort, Column: 1, Line: 1, Want: "x"},
		},
		{
			name:    "surplus newline is rendered visibly",
			student: "ok\n\n",
			model:   "ok\n",
			want:    Outcome{Kind: TooLong, Column: 1, Line: 2, Got: `\n`},
		},
		{
			name:    "column resets after each newline",
			student: "one\ntwo\nthree",
			model:   "one\ntwo\nthqee",
			want:    Outcome{Kind: ValueMismatch, Column: 3, Line: 3, Got: "r", Want: "q"},
		},
		{
			name:    "trailing newline mismatch counts the new line",
			student: "a\n",
			model:   "a\nb",
			want:    Outcome{Kind: TooShort, Column: 1, Line: 2, Want: "b"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compare([]byte(tt.student), []byte(tt.model))
			require.Equal(t, tt.want, got)
		})
	}
}

func TestCompare_Reflexive(t *testing.T) {
	// Compare(x, x) must be Match for arbitrary byte content, printable or not.
	inputs := []string{
		"",
		"\n",
		"hello world\n",
		"a\nb\nc",
		"\x00\x01\x7f",
		"\xff\xfe\x80",
		"mixed \xc3\xa9 bytes\n",
	}
	for _, in := range inputs {
		t.Run(fmt.Sprintf("%q", in), func(t *testing.T) {
			require.Equal(t, Outcome{Kind: Match}, Compare([]byte(in), []byte(in)))
		})
	}
}

func TestCompare_TooLongWinsOverMismatch(t *testing.T) {
	// At the boundary where the model is exhausted, the surplus student byte would
	// also differ in value from anything; the outcome must still be TooLong.
	got := Compare([]byte("abz"), []byte("ab"))
	require.Equal(t, TooLong, got.Kind)
	require.Equal(t, 3, got.Column)
	require.Equal(t, 1, got.Line)
	require.Equal(t, "z", got.Got)
	require.Empty(t, got.Want)
}

func TestCompare_LineNumbersFollowStudent(t *testing.T) {
	// Student breaks the line earlier than the model does. The reported line and
	// column must reflect the student's newlines, not the model's.
	got := Compare([]byte("ab\ncd"), []byte("abcd\n"))
	require.Equal(t, ValueMismatch, got.Kind)
	require.Equal(t, 3, got.Column)
	require.Equal(t, 1, got.Line)
	require.Equal(t, `\n`, got.Got)
	require.Equal(t, "c", got.Want)
}

func TestCompare_FirstDivergencePosition(t *testing.T) {
	// Position/line of the reported divergence must equal what a scan of the
	// common prefix alone would produce.
	prefix := "line one\nline two\nlin"
	got := Compare([]byte(prefix+"X"), []byte(prefix+"Y"))
	require.Equal(t, ValueMismatch, got.Kind)
	require.Equal(t, 4, got.Column) // "lin" + 1
	require.Equal(t, 3, got.Line)
	require.Equal(t, "X", got.Got)
	require.Equal(t, "Y", got.Want)
}

func TestOutcome_Message(t *testing.T) {
	tests := []struct {
		name    string
		outcome Outcome
		want    string
	}{
		{
			name:    "match is silent",
			outcome: Outcome{Kind: Match},
			want:    "",
		},
		{
			name:    "too long",
			outcome: Outcome{Kind: TooLong, Column: 6, Line: 1, Got: "!"},
			want:    "your output is longer than expected: character: '!', position: 6, line: 1\n",
		},
		{
			name:    "value mismatch",
			outcome: Outcome{Kind: ValueMismatch, Column: 1, Line: 2, Got: "b", Want: "c"},
			want:    "position: 1, line: 2, your output: 'b' , expected: 'c'\n",
		},
		{
			name:    "too short",
			outcome: Outcome{Kind: TooShort, Column: 6, Line: 1, Want: `\n`},
			want:    "output correct until position: 6, line: 1, but shorter than expected. Next character should be '\\n'\n",
		},
		{
			name:    "too long with placeholder",
			outcome: Outcome{Kind: TooLong, Column: 3, Line: 4, Got: "(invalid)"},
			want:    "your output is longer than expected: character: '(invalid)', position: 3, line: 4\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.outcome.Message())
		})
	}
}

func TestCompare_MessageNeverEmptyOnMismatch(t *testing.T) {
	pairs := [][2]string{
		{"a", ""},
		{"", "a"},
		{"a", "b"},
		{"same\nstart", "same\nstop"},
		{"\xff", "\x00"},
	}
	for _, p := range pairs {
		out := Compare([]byte(p[0]), []byte(p[1]))
		require.NotEqual(t, Match, out.Kind)
		require.NotEmpty(t, out.Message())
		require.GreaterOrEqual(t, out.Column, 1)
		require.GreaterOrEqual(t, out.Line, 1)
	}
}
