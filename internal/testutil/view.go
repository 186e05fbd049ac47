package testutil

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

// StripANSI removes terminal escape sequences from a rendered view.
func StripANSI(view string) string {
	return ansi.Strip(view)
}

// Lines splits a rendered view into plain lines with trailing padding
// removed.
func Lines(view string) []string {
	raw := strings.Split(StripANSI(view), "\n")
	out := make([]string, len(raw))
	for i, line := range raw {
		out[i] = strings.TrimRight(line, " ")
	}
	return out
}

// AssertContains fails the test when the plain view lacks want.
func AssertContains(t *testing.T, view, want string) {
	t.Helper()
	if plain := StripANSI(view); !strings.Contains(plain, want) {
		t.Fatalf("expected %q in view, got:\n%s", want, plain)
	}
}

// AssertNotContains fails the test when the plain view has unwanted.
func AssertNotContains(t *testing.T, view, unwanted string) {
	t.Helper()
	if plain := StripANSI(view); strings.Contains(plain, unwanted) {
		t.Fatalf("did not expect %q in view, got:\n%s", unwanted, plain)
	}
}
