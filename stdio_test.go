// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package robdd

import (
	"strings"
	"testing"
)

func TestStringRoundTrip(t *testing.T) {
	vs, _ := New([]string{"a", "b", "c"})
	a, _ := vs.MkVar(0)
	b, _ := vs.MkVar(1)
	c, _ := vs.MkVar(2)
	ab, _ := Or(a, b)
	f, err := Xor(ab, c)
	if err != nil {
		t.Fatalf("Xor: %v", err)
	}

	s := f.String()
	got, err := FromString(vs, s)
	if err != nil {
		t.Fatalf("FromString: %v", err)
	}
	if !got.Equal(f) {
		t.Errorf("FromString(f.String()) != f")
	}
}

func TestBytesRoundTrip(t *testing.T) {
	vs, _ := New([]string{"a", "b"})
	a, _ := vs.MkVar(0)
	b, _ := vs.MkVar(1)
	f, err := And(a, b)
	if err != nil {
		t.Fatalf("And: %v", err)
	}

	data := f.Bytes()
	got, err := FromBytes(vs, data)
	if err != nil {
		t.Fatalf("FromBytes: %v", err)
	}
	if !got.Equal(f) {
		t.Errorf("FromBytes(f.Bytes()) != f")
	}
}

func TestTrivialStringRoundTrip(t *testing.T) {
	vs, _ := New([]string{"a"})
	for _, f := range []*Bdd{vs.MkFalse(), vs.MkTrue()} {
		got, err := FromString(vs, f.String())
		if err != nil {
			t.Fatalf("FromString: %v", err)
		}
		if !got.Equal(f) {
			t.Errorf("FromString(f.String()) != f for trivial Bdd")
		}
	}
}

func TestFromStringRejectsMalformed(t *testing.T) {
	vs, _ := New([]string{"a"})
	if _, err := FromString(vs, ""); err == nil {
		t.Fatalf("expected an error for empty input")
	}
	if _, err := FromString(vs, "0,0|1,2,3|"); err == nil {
		t.Fatalf("expected an error for a malformed record")
	}
}

func TestFromStringRejectsNonCanonical(t *testing.T) {
	vs, _ := New([]string{"a", "b"})
	// A decision node whose two children are identical is not reduced.
	tampered := "2,0,0|2,0,0|0,1,1|"
	if _, err := FromString(vs, tampered); err != ErrNotCanonical {
		t.Fatalf("expected ErrNotCanonical, got %v", err)
	}
}

func TestFromBytesRejectsTruncated(t *testing.T) {
	vs, _ := New([]string{"a"})
	if _, err := FromBytes(vs, []byte{1, 2, 3}); err == nil {
		t.Fatalf("expected an error for a truncated byte stream")
	}
}

func TestDotOutput(t *testing.T) {
	vs, _ := New([]string{"a", "b"})
	a, _ := vs.MkVar(0)
	b, _ := vs.MkVar(1)
	f, _ := And(a, b)

	var sb strings.Builder
	if err := f.Dot(&sb); err != nil {
		t.Fatalf("Dot: %v", err)
	}
	out := sb.String()
	if !strings.HasPrefix(out, "digraph G {") {
		t.Errorf("Dot output missing digraph header: %q", out)
	}
	if !strings.Contains(out, "\"a\"") {
		t.Errorf("Dot output missing variable label %q", "a")
	}
}

func TestPrintOutput(t *testing.T) {
	vs, _ := New([]string{"a", "b"})
	a, _ := vs.MkVar(0)
	b, _ := vs.MkVar(1)
	f, _ := And(a, b)

	var sb strings.Builder
	f.Print(&sb)
	if sb.Len() == 0 {
		t.Errorf("Print produced no output for a non-trivial Bdd")
	}
}
