package document

import (
	"errors"
	"testing"

	"github.com/quindle/textdoc/internal/document/textstore"
)

func TestFindMatchedBracketForward(t *testing.T) {
	d := New(WithContent("(a(b)c)"))
	tests := []struct {
		index int
		want  int
	}{
		{0, 6},
		{2, 4},
		{4, 2},
		{6, 0},
		{1, -1}, // 'a' is not a bracket
	}
	for _, tt := range tests {
		got, err := d.FindMatchedBracket(tt.index, 0)
		if err != nil {
			t.Fatalf("FindMatchedBracket(%d): %v", tt.index, err)
		}
		if got != tt.want {
			t.Errorf("FindMatchedBracket(%d) = %d, want %d", tt.index, got, tt.want)
		}
	}
}

func TestFindMatchedBracketKinds(t *testing.T) {
	d := New(WithContent("[{<>}]"))
	pairs := map[int]int{0: 5, 1: 4, 2: 3}
	for open, close := range pairs {
		got, err := d.FindMatchedBracket(open, 0)
		if err != nil {
			t.Fatalf("FindMatchedBracket(%d): %v", open, err)
		}
		if got != close {
			t.Errorf("FindMatchedBracket(%d) = %d, want %d", open, got, close)
		}
	}
}

func TestFindMatchedBracketFullWidth(t *testing.T) {
	d := New(WithContent("（ab）"))
	got, err := d.FindMatchedBracket(0, 0)
	if err != nil {
		t.Fatalf("FindMatchedBracket: %v", err)
	}
	if got != 3 {
		t.Errorf("FindMatchedBracket(0) = %d, want 3", got)
	}
}

func TestFindMatchedBracketUnbalanced(t *testing.T) {
	d := New(WithContent("((a)"))
	got, err := d.FindMatchedBracket(0, 0)
	if err != nil {
		t.Fatalf("FindMatchedBracket: %v", err)
	}
	if got != -1 {
		t.Errorf("FindMatchedBracket(0) = %d, want -1 for unbalanced opener", got)
	}
}

func TestFindMatchedBracketSkipsNonGrammar(t *testing.T) {
	//                    0123456789
	d := New(WithContent(`f(")" + x)`))
	// The quoted ")" must not match; classes mark it as string content.
	if err := d.SetCharClass(2, 5, textstore.ClassString); err != nil {
		t.Fatalf("SetCharClass: %v", err)
	}
	got, err := d.FindMatchedBracket(1, 0)
	if err != nil {
		t.Fatalf("FindMatchedBracket: %v", err)
	}
	if got != 9 {
		t.Errorf("FindMatchedBracket(1) = %d, want 9", got)
	}
	// Starting inside the string yields no match at all.
	got, err = d.FindMatchedBracket(3, 0)
	if err != nil {
		t.Fatalf("FindMatchedBracket: %v", err)
	}
	if got != -1 {
		t.Errorf("FindMatchedBracket(3) = %d, want -1", got)
	}
}

func TestFindMatchedBracketSearchLimit(t *testing.T) {
	d := New(WithContent("(abcdefgh)"))
	got, err := d.FindMatchedBracket(0, 3)
	if err != nil {
		t.Fatalf("FindMatchedBracket: %v", err)
	}
	if got != -1 {
		t.Errorf("FindMatchedBracket with tight limit = %d, want -1", got)
	}
	got, err = d.FindMatchedBracket(0, 100)
	if err != nil {
		t.Fatalf("FindMatchedBracket: %v", err)
	}
	if got != 9 {
		t.Errorf("FindMatchedBracket with loose limit = %d, want 9", got)
	}
}

func TestFindMatchedBracketBounds(t *testing.T) {
	d := New(WithContent("()"))
	if _, err := d.FindMatchedBracket(-1, 0); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("error = %v, want ErrIndexOutOfRange", err)
	}
	got, err := d.FindMatchedBracket(d.Length(), 0)
	if err != nil {
		t.Fatalf("FindMatchedBracket: %v", err)
	}
	if got != -1 {
		t.Errorf("FindMatchedBracket(end) = %d, want -1", got)
	}
}
