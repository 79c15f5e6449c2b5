package interp

import "fmt"

// TokenKind classifies the spans this scanner can recognize inside a
// double-quoted string literal.
type TokenKind int

const (
	// Content is a run of ordinary characters, up to but not including the
	// closing quote, a backslash, or a recognized interpolation opener.
	Content TokenKind = iota
	// InterpolationStart is the two-character opener "${".
	InterpolationStart
	// InterpolationEnd is the closing "}" of an interpolation.
	InterpolationEnd
)

var kindNameMap = map[TokenKind]string{
	Content:            "content",
	InterpolationStart: "interpolation_start",
	InterpolationEnd:   "interpolation_end",
}

func (k TokenKind) String() string {
	if name, ok := kindNameMap[k]; ok {
		return name
	}
	return fmt.Sprintf("TokenKind(%d)", int(k))
}

// KindSet is the set of token kinds the host accepts at the current
// position. The scanner never produces a kind outside the set.
type KindSet uint8

func NewKindSet(kinds ...TokenKind) KindSet {
	var s KindSet
	for _, k := range kinds {
		s = s.With(k)
	}
	return s
}

func (s KindSet) With(k TokenKind) KindSet {
	return s | 1<<uint(k)
}

func (s KindSet) Has(k TokenKind) bool {
	return s&(1<<uint(k)) != 0
}
