package interp

import "unicode/utf8"

// EOF is the lookahead sentinel returned at end of input.
const EOF rune = 0

// Cursor is the scanner-facing view of the source text. It mirrors the
// lexer surface an incremental parsing engine hands to an external
// scanner: one-rune lookahead, advance, a committed-span mark, and a
// result slot for the recognized kind.
//
// The committed span is [start, end); Advance moves pos without
// committing, MarkEnd commits everything consumed so far. Speculative
// lookahead uses Mark/Rollback so a failed check leaves pos untouched.
type Cursor struct {
	source string

	start int
	pos   int
	end   int

	result    TokenKind
	hasResult bool
}

func NewCursor(source string) *Cursor {
	return NewCursorAt(source, 0)
}

// NewCursorAt positions the cursor mid-source, as a host re-lexing an
// edited region would.
func NewCursorAt(source string, pos int) *Cursor {
	return &Cursor{
		source: source,
		start:  pos,
		pos:    pos,
		end:    pos,
	}
}

// Lookahead returns the rune at the cursor, or EOF past the end.
func (c *Cursor) Lookahead() rune {
	if c.pos >= len(c.source) {
		return EOF
	}
	r, _ := utf8.DecodeRuneInString(c.source[c.pos:])
	return r
}

// Advance consumes one rune. The skip flag mirrors the host engine's
// "exclude from span" mode; this scanner always passes false.
func (c *Cursor) Advance(skip bool) {
	if c.pos >= len(c.source) {
		return
	}
	_, size := utf8.DecodeRuneInString(c.source[c.pos:])
	c.pos += size
	if skip {
		c.start = c.pos
		c.end = c.pos
	}
}

// MarkEnd commits everything consumed so far as the token span.
func (c *Cursor) MarkEnd() {
	c.end = c.pos
}

// Mark returns the current position for a later Rollback.
func (c *Cursor) Mark() int {
	return c.pos
}

// Rollback restores the position saved by Mark, undoing speculative
// advances.
func (c *Cursor) Rollback(mark int) {
	c.pos = mark
}

// SetResult records the recognized token kind for the host to read back.
func (c *Cursor) SetResult(k TokenKind) {
	c.result = k
	c.hasResult = true
}

// Result returns the recognized kind of the last successful scan.
func (c *Cursor) Result() (TokenKind, bool) {
	return c.result, c.hasResult
}

// Pos returns the cursor's byte offset in the source.
func (c *Cursor) Pos() int {
	return c.pos
}

// Committed returns the text of the committed span.
func (c *Cursor) Committed() string {
	return c.source[c.start:c.end]
}

// Take returns the committed span and rewinds uncommitted consumption,
// leaving the cursor at the start of the next token.
func (c *Cursor) Take() (text string, start, end int) {
	text, start, end = c.source[c.start:c.end], c.start, c.end
	c.pos = c.end
	c.start = c.end
	c.hasResult = false
	return text, start, end
}
