package game

import (
	"bytes"
	"strings"
	"testing"
)

func TestFprintPlain(t *testing.T) {
	b := NewBoard()
	b.Set(Position{0, 0}, 0)
	b.Set(Position{4, 4}, 1)

	var buf bytes.Buffer
	if err := Fprint(&buf, b, false); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != Size+1 {
		t.Fatalf("got %d lines, want %d:\n%s", len(lines), Size+1, buf.String())
	}
	if got, want := lines[1], "0  X . . . ."; got != want {
		t.Errorf("row 0 = %q, want %q", got, want)
	}
	if got, want := lines[5], "4  . . . . O"; got != want {
		t.Errorf("row 4 = %q, want %q", got, want)
	}
}
