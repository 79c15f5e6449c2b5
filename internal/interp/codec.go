package interp

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// StateSize is the serialized width of the scanner state: one
// little-endian 32-bit brace depth. The byte order is fixed so a
// snapshot is unambiguous regardless of platform, even though snapshots
// only ever travel within one process.
const StateSize = 4

var ErrShortStateBuffer = errors.New("state buffer shorter than encoded state")

// Serialize snapshots the scanner state for the host to hold across an
// incremental edit. Always returns exactly StateSize bytes.
func (s *Scanner) Serialize() []byte {
	buf := make([]byte, StateSize)
	binary.LittleEndian.PutUint32(buf, uint32(s.braceDepth))
	return buf
}

// Deserialize restores a snapshot taken by Serialize. An empty buffer
// resets to the fresh zero state. A nonempty buffer shorter than
// StateSize is a caller bug and is rejected rather than read partially.
// The restored depth is authoritative; it is never validated against
// the surrounding text.
func (s *Scanner) Deserialize(buf []byte) error {
	if len(buf) == 0 {
		s.braceDepth = 0
		return nil
	}
	if len(buf) < StateSize {
		return fmt.Errorf("%w: got %d bytes, want %d", ErrShortStateBuffer, len(buf), StateSize)
	}
	s.braceDepth = int(int32(binary.LittleEndian.Uint32(buf)))
	return nil
}
