package textcmp

// Compare walks student and model in lockstep and returns the first divergence, or a Match outcome if the two are byte-for-byte identical (including both being
// empty).
//
// Position bookkeeping: Column is 1-based and resets on each newline; Line is 1-based and increments on each newline. Both counters follow the student bytes
// only, so if the two sides disagree about where lines break, the reported line number reflects the student's view.
//
// When the model runs out while student bytes remain, the outcome is TooLong even if the student byte at that boundary would also have differed in value; the
// length check is deliberately evaluated first, and applies from the very first byte of an empty model.
//
// Compare never fails: any byte values are acceptable on either side, and rendering absorbs non-ASCII bytes. It touches no shared state, so concurrent calls on
// disjoint inputs are safe.
func Compare(student, model []byte) Outcome {
	col := 1
	line := 1
	for i, b := range student {
		if i >= len(model) {
			return Outcome{Kind: TooLong, Column: col, Line: line, Got: RenderByte(b)}
		}
		if b != model[i] {
			return Outcome{Kind: ValueMismatch, Column: col, Line: line, Got: RenderByte(b), Want: RenderByte(model[i])}
		}
		if b == '\n' {
			line++
			col = 0
		}
		col++
	}
	if len(model) > len(student) {
		return Outcome{Kind: TooShort, Column: col, Line: line, Want: RenderByte(model[len(student)])}
	}
	return Outcome{Kind: Match}
}
