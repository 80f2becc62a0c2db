package lineview

import (
	"errors"
	"testing"

	"github.com/quindle/textdoc/internal/document/textstore"
)

func TestTrimmedText(t *testing.T) {
	s := textstore.NewFromString("ab\r\ncd\nefg")
	v := NewTrimmed(s)
	if v.Count() != 3 {
		t.Fatalf("Count() = %d, want 3", v.Count())
	}
	want := []string{"ab", "cd", "efg"}
	for i, w := range want {
		got, err := v.Text(i)
		if err != nil {
			t.Fatalf("Text(%d): %v", i, err)
		}
		if got != w {
			t.Errorf("Text(%d) = %q, want %q", i, got, w)
		}
	}
}

func TestRawText(t *testing.T) {
	s := textstore.NewFromString("ab\r\ncd\nefg")
	v := NewRaw(s)
	want := []string{"ab\r\n", "cd\n", "efg"}
	for i, w := range want {
		got, err := v.Text(i)
		if err != nil {
			t.Fatalf("Text(%d): %v", i, err)
		}
		if got != w {
			t.Errorf("Text(%d) = %q, want %q", i, got, w)
		}
	}
}

func TestAtOffset(t *testing.T) {
	s := textstore.NewFromString("ab\ncd")
	v := NewTrimmed(s)
	idx, r, err := v.AtOffset(3)
	if err != nil {
		t.Fatalf("AtOffset: %v", err)
	}
	if idx != 1 {
		t.Errorf("index = %d, want 1", idx)
	}
	if r.Start != 3 || r.End != 5 {
		t.Errorf("range = %v, want [3, 5)", r)
	}
	if _, _, err := v.AtOffset(6); !errors.Is(err, textstore.ErrIndexOutOfRange) {
		t.Errorf("AtOffset(6) error = %v, want ErrIndexOutOfRange", err)
	}
}

func TestAllStopsEarly(t *testing.T) {
	s := textstore.NewFromString("a\nb\nc")
	v := NewTrimmed(s)
	seen := 0
	for i, r := range v.All() {
		if i != seen {
			t.Errorf("index = %d, want %d", i, seen)
		}
		if !r.IsValid() {
			t.Errorf("invalid range at line %d", i)
		}
		seen++
		if seen == 2 {
			break
		}
	}
	if seen != 2 {
		t.Errorf("visited %d lines, want 2", seen)
	}
}

func TestViewsShareStore(t *testing.T) {
	s := textstore.NewFromString("one")
	v := NewTrimmed(s)
	if err := s.Insert(3, "\ntwo"); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if v.Count() != 2 {
		t.Errorf("Count() = %d after edit, want 2", v.Count())
	}
	got, err := v.Text(1)
	if err != nil {
		t.Fatalf("Text: %v", err)
	}
	if got != "two" {
		t.Errorf("Text(1) = %q, want %q", got, "two")
	}
}
