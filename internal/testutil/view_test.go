package testutil

import (
	"reflect"
	"testing"
)

func TestLinesStripsEscapesAndPadding(t *testing.T) {
	view := "\x1b[1mtypelog\x1b[0m   \n\x1b[31m▌ a\x1b[0m"
	got := Lines(view)
	want := []string{"typelog", "▌ a"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %#v, got %#v", want, got)
	}
}
