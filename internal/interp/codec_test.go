package interp_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/neonlang/strscan/internal/interp"
)

func TestStateRoundTrip(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		name  string
		state []byte
	}{
		{name: "outside interpolation", state: []byte{0, 0, 0, 0}},
		{name: "inside interpolation", state: []byte{1, 0, 0, 0}},
	} {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			scanner := interp.NewScanner()
			if err := scanner.Deserialize(tt.state); err != nil {
				t.Fatalf("Deserialize: %v", err)
			}
			if diff := cmp.Diff(tt.state, scanner.Serialize()); diff != "" {
				t.Errorf("state did not round-trip (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSerializeAfterScan(t *testing.T) {
	t.Parallel()

	scanner := interp.NewScanner()
	cur := interp.NewCursor("${")
	if ok := scanner.Scan(cur, interp.NewKindSet(interp.InterpolationStart)); !ok {
		t.Fatal("expected interpolation start")
	}

	restored := interp.NewScanner()
	if err := restored.Deserialize(scanner.Serialize()); err != nil {
		t.Fatalf("Deserialize: %v", err)
	}

	// The restored state is authoritative: a closer must match even
	// though this scanner never saw the opener.
	cur = interp.NewCursor("}")
	if ok := restored.Scan(cur, interp.NewKindSet(interp.InterpolationEnd)); !ok {
		t.Fatal("restored scanner did not accept the closer")
	}
}

func TestDeserialize(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		name        string
		buf         []byte
		expectToErr bool
		expected    []byte
	}{
		{
			name:     "empty buffer leaves the fresh state",
			buf:      nil,
			expected: []byte{0, 0, 0, 0},
		},
		{
			name:        "short buffer is rejected",
			buf:         []byte{1},
			expectToErr: true,
		},
		{
			name:        "three bytes are still short",
			buf:         []byte{1, 0, 0},
			expectToErr: true,
		},
		{
			name:     "longer buffer reads the leading state",
			buf:      []byte{1, 0, 0, 0, 0xde, 0xad},
			expected: []byte{1, 0, 0, 0},
		},
	} {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			scanner := interp.NewScanner()
			err := scanner.Deserialize(tt.buf)
			if tt.expectToErr {
				if !errors.Is(err, interp.ErrShortStateBuffer) {
					t.Fatalf("expected ErrShortStateBuffer, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Deserialize: %v", err)
			}
			if diff := cmp.Diff(tt.expected, scanner.Serialize()); diff != "" {
				t.Errorf("unexpected state (-want +got):\n%s", diff)
			}
		})
	}
}
