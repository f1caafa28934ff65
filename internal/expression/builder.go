// Package expression holds the two parallel buffers a calculation is typed
// into: the visual text shown on the display and the internal text passed
// to the evaluator.
package expression

// Builder owns both buffers and the awaiting-new-input flag. The buffers
// are only changed through its methods and always in lock-step.
type Builder struct {
	visual   []rune
	internal []rune
	awaiting bool
}

func NewBuilder() *Builder {
	return &Builder{}
}

// Append adds one translated key to both buffers.
func (b *Builder) Append(visual, internal string) {
	b.visual = append(b.visual, []rune(visual)...)
	b.internal = append(b.internal, []rune(internal)...)
}

// DeleteLast removes one character from each buffer.
func (b *Builder) DeleteLast() {
	if n := len(b.visual); n > 0 {
		b.visual = b.visual[:n-1]
	}
	if n := len(b.internal); n > 0 {
		b.internal = b.internal[:n-1]
	}
}

// Clear empties both buffers and drops the awaiting flag.
func (b *Builder) Clear() {
	b.visual = b.visual[:0]
	b.internal = b.internal[:0]
	b.awaiting = false
}

// StartFromAnswer replaces both buffers with a reference to the previous
// result: "Ans" on the display and its literal value internally.
func (b *Builder) StartFromAnswer(answer string) {
	if answer == "" {
		answer = "0"
	}
	if answer[0] == '-' {
		answer = "(" + answer + ")"
	}
	b.visual = append(b.visual[:0], []rune("Ans")...)
	b.internal = append(b.internal[:0], []rune(answer)...)
}

// Replace loads a previously evaluated expression, as recalled from the
// replay history.
func (b *Builder) Replace(visual, internal string) {
	b.visual = append(b.visual[:0], []rune(visual)...)
	b.internal = append(b.internal[:0], []rune(internal)...)
	b.awaiting = false
}

// MarkEvaluated sets the awaiting-new-input flag after a successful "=".
func (b *Builder) MarkEvaluated() {
	b.awaiting = true
}

// Awaiting reports whether the last action was a successful evaluation.
func (b *Builder) Awaiting() bool {
	return b.awaiting
}

// Prepare applies the auto-clear policy ahead of the next key. It does
// nothing unless an evaluation has just completed. A key that continues
// a calculation (an operator or parenthesis) starts over from the previous
// answer; anything else starts a fresh expression. The flag is cleared
// either way.
func (b *Builder) Prepare(continues bool, answer string) {
	if !b.awaiting {
		return
	}
	b.awaiting = false
	if continues {
		b.StartFromAnswer(answer)
		return
	}
	b.visual = b.visual[:0]
	b.internal = b.internal[:0]
}

func (b *Builder) Visual() string {
	return string(b.visual)
}

func (b *Builder) Internal() string {
	return string(b.internal)
}

func (b *Builder) Empty() bool {
	return len(b.internal) == 0 && len(b.visual) == 0
}
