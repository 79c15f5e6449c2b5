package interp

// Scanner recognizes string-literal tokens that the grammar cannot
// express with ordinary productions: a raw content run ends wherever an
// unescaped "${" or the closing quote begins, which takes lookahead the
// grammar does not have. The only state carried between calls is whether
// the cursor sits inside an interpolation.
type Scanner struct {
	braceDepth int
}

func NewScanner() *Scanner {
	return &Scanner{}
}

// Scan tries to recognize one token at the cursor, limited to the kinds
// in accepted. On success it commits the span, records the kind on the
// cursor and returns true. On decline it returns false with the cursor
// position unchanged.
func (s *Scanner) Scan(cur *Cursor, accepted KindSet) bool {
	// Interpolation opener "${".
	if accepted.Has(InterpolationStart) && cur.Lookahead() == '$' {
		mark := cur.Mark()
		cur.Advance(false)
		if cur.Lookahead() == '{' {
			cur.Advance(false)
			cur.MarkEnd()
			cur.SetResult(InterpolationStart)
			s.braceDepth = 1
			return true
		}
		// A lone "$" belongs to the content run.
		cur.Rollback(mark)
	}

	// Interpolation closer "}", only while inside one. A stray "}"
	// outside an interpolation is ordinary content.
	if accepted.Has(InterpolationEnd) && s.braceDepth > 0 && cur.Lookahead() == '}' {
		cur.Advance(false)
		cur.MarkEnd()
		cur.SetResult(InterpolationEnd)
		s.braceDepth = 0
		return true
	}

	// Content run: everything up to the closing quote, end of input, an
	// escape sequence, or a "${" opener. The terminator itself is never
	// consumed.
	if accepted.Has(Content) {
		hasContent := false
		for {
			switch cur.Lookahead() {
			case '"', EOF:
				if hasContent {
					cur.MarkEnd()
					cur.SetResult(Content)
					return true
				}
				return false
			case '\\':
				// Escapes are a separate token kind owned by the grammar.
				if hasContent {
					cur.MarkEnd()
					cur.SetResult(Content)
					return true
				}
				return false
			case '$':
				mark := cur.Mark()
				cur.MarkEnd()
				cur.Advance(false)
				if cur.Lookahead() == '{' {
					// Leave "${" for the opener branch on a later call.
					cur.Rollback(mark)
					if hasContent {
						cur.SetResult(Content)
						return true
					}
					return false
				}
				hasContent = true
			default:
				hasContent = true
				cur.Advance(false)
			}
		}
	}

	return false
}
