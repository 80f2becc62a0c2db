package document

import (
	"errors"
	"regexp"
	"testing"
)

func TestFindNext(t *testing.T) {
	d := New(WithContent("one two one two"))
	r, found, err := d.FindNext("two", 0, FindOptions{MatchCase: true})
	if err != nil {
		t.Fatalf("FindNext: %v", err)
	}
	if !found || r.Start != 4 || r.End != 7 {
		t.Errorf("FindNext = %v, %v, want [4, 7), true", r, found)
	}
	// Starting past the first hit finds the second.
	r, found, err = d.FindNext("two", 5, FindOptions{MatchCase: true})
	if err != nil {
		t.Fatalf("FindNext: %v", err)
	}
	if !found || r.Start != 12 {
		t.Errorf("FindNext from 5 = %v, %v, want start 12", r, found)
	}
	_, found, err = d.FindNext("three", 0, FindOptions{})
	if err != nil {
		t.Fatalf("FindNext: %v", err)
	}
	if found {
		t.Error("found a pattern that is not there")
	}
}

func TestFindNextCaseFolding(t *testing.T) {
	d := New(WithContent("Hello HELLO hello"))
	r, found, err := d.FindNext("hello", 0, FindOptions{})
	if err != nil {
		t.Fatalf("FindNext: %v", err)
	}
	if !found || r.Start != 0 {
		t.Errorf("case-insensitive FindNext = %v, %v, want start 0", r, found)
	}
	r, found, err = d.FindNext("hello", 0, FindOptions{MatchCase: true})
	if err != nil {
		t.Fatalf("FindNext: %v", err)
	}
	if !found || r.Start != 12 {
		t.Errorf("case-sensitive FindNext = %v, %v, want start 12", r, found)
	}
}

func TestFindFoldingKeepsOffsets(t *testing.T) {
	// U+0130 grows by a byte under ToLower; rune-wise simple folding leaves
	// it alone, so offsets into the unfolded text stay aligned.
	d := New(WithContent("İ cat"))
	r, found, err := d.FindNext("CAT", 0, FindOptions{})
	if err != nil {
		t.Fatalf("FindNext: %v", err)
	}
	if !found || r.Start != 2 || r.End != 5 {
		t.Errorf("FindNext = %v, %v, want [2, 5)", r, found)
	}
	r, found, err = d.FindPrev("CAT", d.Length(), FindOptions{})
	if err != nil {
		t.Fatalf("FindPrev: %v", err)
	}
	if !found || r.Start != 2 || r.End != 5 {
		t.Errorf("FindPrev = %v, %v, want [2, 5)", r, found)
	}
	// The Kelvin sign folds into the same orbit as k.
	d = New(WithContent("temp 5\u212A"))
	r, found, err = d.FindNext("k", 0, FindOptions{})
	if err != nil {
		t.Fatalf("FindNext: %v", err)
	}
	if !found || r.Start != 6 || r.End != 7 {
		t.Errorf("FindNext = %v, %v, want [6, 7)", r, found)
	}
}

func TestFindWholeWord(t *testing.T) {
	d := New(WithContent("cat catalog cat"))
	r, found, err := d.FindNext("cat", 1, FindOptions{MatchCase: true, WholeWord: true})
	if err != nil {
		t.Fatalf("FindNext: %v", err)
	}
	if !found || r.Start != 12 {
		t.Errorf("whole-word FindNext = %v, %v, want start 12 (skipping catalog)", r, found)
	}
}

func TestFindPrev(t *testing.T) {
	d := New(WithContent("one two one two"))
	r, found, err := d.FindPrev("one", d.Length(), FindOptions{MatchCase: true})
	if err != nil {
		t.Fatalf("FindPrev: %v", err)
	}
	if !found || r.Start != 8 {
		t.Errorf("FindPrev = %v, %v, want start 8", r, found)
	}
	// The search range excludes begin itself.
	r, found, err = d.FindPrev("one", 9, FindOptions{MatchCase: true})
	if err != nil {
		t.Fatalf("FindPrev: %v", err)
	}
	if !found || r.Start != 0 {
		t.Errorf("FindPrev from 9 = %v, %v, want start 0", r, found)
	}
}

func TestFindSurrogateOffsets(t *testing.T) {
	// The emoji occupies two code units, so "def" starts at 5.
	d := New(WithContent("ab\U0001F600def"))
	r, found, err := d.FindNext("def", 0, FindOptions{MatchCase: true})
	if err != nil {
		t.Fatalf("FindNext: %v", err)
	}
	if !found || r.Start != 4 || r.End != 7 {
		t.Errorf("FindNext = %v, %v, want [4, 7)", r, found)
	}
}

func TestFindValidation(t *testing.T) {
	d := New(WithContent("abc"))
	if _, _, err := d.FindNext("", 0, FindOptions{}); !errors.Is(err, ErrEmptyPattern) {
		t.Errorf("error = %v, want ErrEmptyPattern", err)
	}
	if _, _, err := d.FindNext("a", 4, FindOptions{}); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("error = %v, want ErrIndexOutOfRange", err)
	}
	if _, _, err := d.FindNextRegexp(nil, 0); !errors.Is(err, ErrEmptyPattern) {
		t.Errorf("error = %v, want ErrEmptyPattern", err)
	}
}

func TestFindNextRegexp(t *testing.T) {
	d := New(WithContent("x = 42; y = 777;"))
	re := regexp.MustCompile(`\d+`)
	r, found, err := d.FindNextRegexp(re, 0)
	if err != nil {
		t.Fatalf("FindNextRegexp: %v", err)
	}
	if !found || r.Start != 4 || r.End != 6 {
		t.Errorf("FindNextRegexp = %v, %v, want [4, 6)", r, found)
	}
	r, found, err = d.FindNextRegexp(re, 6)
	if err != nil {
		t.Fatalf("FindNextRegexp: %v", err)
	}
	if !found || r.Start != 12 {
		t.Errorf("FindNextRegexp from 6 = %v, %v, want start 12", r, found)
	}
}

func TestFindPrevRegexp(t *testing.T) {
	d := New(WithContent("x = 42; y = 777;"))
	re := regexp.MustCompile(`\d+`)
	r, found, err := d.FindPrevRegexp(re, d.Length())
	if err != nil {
		t.Fatalf("FindPrevRegexp: %v", err)
	}
	if !found || r.Start != 12 || r.End != 15 {
		t.Errorf("FindPrevRegexp = %v, %v, want [12, 15)", r, found)
	}
	_, found, err = d.FindPrevRegexp(re, 3)
	if err != nil {
		t.Fatalf("FindPrevRegexp: %v", err)
	}
	if found {
		t.Error("no digits before offset 3")
	}
}
