package interp

import "errors"

var ErrSessionClosed = errors.New("scan session is closed")

// Session owns one scanner state for the duration of a lexing session.
// The host creates a session, scans strictly sequentially against it,
// and may serialize the state before discarding the session and restore
// it into a fresh one when re-lexing resumes after an edit. Sessions are
// not safe for concurrent use and must never be shared.
type Session struct {
	scanner *Scanner
	closed  bool
}

func NewSession() *Session {
	return &Session{scanner: NewScanner()}
}

// Close ends the session and discards its state. Further scans decline
// and persistence calls fail.
func (s *Session) Close() {
	s.scanner = nil
	s.closed = true
}

// Scan recognizes one token at the cursor. See Scanner.Scan.
func (s *Session) Scan(cur *Cursor, accepted KindSet) bool {
	if s.closed {
		return false
	}
	return s.scanner.Scan(cur, accepted)
}

func (s *Session) Serialize() ([]byte, error) {
	if s.closed {
		return nil, ErrSessionClosed
	}
	return s.scanner.Serialize(), nil
}

func (s *Session) Deserialize(buf []byte) error {
	if s.closed {
		return ErrSessionClosed
	}
	return s.scanner.Deserialize(buf)
}
