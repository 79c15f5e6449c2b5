package interp_test

import (
	"testing"

	"github.com/neonlang/strscan/internal/interp"
)

func TestKindSet(t *testing.T) {
	t.Parallel()

	set := interp.NewKindSet(interp.Content, interp.InterpolationEnd)
	if !set.Has(interp.Content) || !set.Has(interp.InterpolationEnd) {
		t.Error("expected content and interpolation_end in the set")
	}
	if set.Has(interp.InterpolationStart) {
		t.Error("interpolation_start must not be in the set")
	}
	if interp.NewKindSet().Has(interp.Content) {
		t.Error("empty set must contain nothing")
	}
}

func TestTokenKindString(t *testing.T) {
	t.Parallel()

	for kind, expected := range map[interp.TokenKind]string{
		interp.Content:            "content",
		interp.InterpolationStart: "interpolation_start",
		interp.InterpolationEnd:   "interpolation_end",
		interp.TokenKind(42):      "TokenKind(42)",
	} {
		if got := kind.String(); got != expected {
			t.Errorf("expected %q, got %q", expected, got)
		}
	}
}
