// Package textcmp compares a program's actual textual output ("student" output) against an expected reference ("model" output) and reports the first
// divergence as a structured Outcome.
//
// Comparison is a strict byte-for-byte lockstep scan; there is no semantic diffing, no alignment recovery after a divergence, and no encoding awareness beyond
// classifying single bytes as ASCII (< 0x80) or not. This is deliberate: the package serves automated exercise checking, where the contract is exact output and
// where the diagnostic must name one precise character, position, and line rather than summarize a patch.
//
// Outcomes are values, not errors: a mismatch is an expected, normal result of a comparison. Outcome carries typed fields (Kind, Column, Line, rendered
// characters); Outcome.Message formats them with the stable historical wording for consumers that want plain text.
//
// Bytes that appear in diagnostics pass through RenderByte, which keeps newlines visible (as `\n`) and replaces non-ASCII bytes with a fixed placeholder so the
// diagnostic itself can never corrupt a naive text decoder downstream. SanitizeNonASCII offers the same protection for whole strings.
//
// Typical use:
//
//	out := textcmp.Compare(studentBytes, modelBytes)
//	if out.Kind != textcmp.Match {
//		fmt.Print(out.Message())
//	}
package textcmp
