// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package robdd

import (
	"math/big"
	"testing"
)

func TestEvalUnknownVariable(t *testing.T) {
	vs, _ := New([]string{"a", "b"})
	a, _ := vs.MkVar(0)
	if _, err := Eval(a, []bool{true}); err != ErrUnknownVariable {
		t.Fatalf("expected ErrUnknownVariable, got %v", err)
	}
}

func TestSatAnyUnsatisfiable(t *testing.T) {
	vs, _ := New([]string{"a"})
	if _, ok := SatAny(vs.MkFalse()); ok {
		t.Fatalf("SatAny(false) reported satisfiable")
	}
}

func TestSatAnyConsistentWithEval(t *testing.T) {
	vs, _ := New([]string{"a", "b", "c"})
	a, _ := vs.MkVar(0)
	b, _ := vs.MkVar(1)
	c, _ := vs.MkVar(2)
	ab, _ := And(a, b)
	f, _ := Or(ab, c)

	assign, ok := SatAny(f)
	if !ok {
		t.Fatalf("SatAny reported unsatisfiable for a satisfiable function")
	}
	val := make([]bool, 3)
	for lvl, bit := range assign {
		val[lvl] = bit
	}
	got, err := Eval(f, val)
	if err != nil {
		t.Fatalf("Eval: %v", err)
	}
	if !got {
		t.Fatalf("SatAny produced a valuation that does not satisfy f")
	}
}

func TestSatAllCountMatchesCardinality(t *testing.T) {
	vs, _ := New([]string{"a", "b", "c"})
	a, _ := vs.MkVar(0)
	b, _ := vs.MkVar(1)
	c, _ := vs.MkVar(2)
	notB := Not(b)
	axorb, _ := Xor(a, notB)
	candidate, _ := Xor(c, a)
	f, _ := Or(axorb, candidate)

	count := 0
	err := SatAll(f, func(val []bool) error {
		count++
		ok, evalErr := Eval(f, val)
		if evalErr != nil {
			return evalErr
		}
		if !ok {
			t.Errorf("SatAll yielded a non-satisfying valuation %v", val)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("SatAll: %v", err)
	}
	want := Cardinality(f)
	if want.Cmp(big.NewInt(int64(count))) != 0 {
		t.Errorf("SatAll yielded %d valuations, Cardinality says %s", count, want.String())
	}
}

func TestSatAllProjectedDeduplicates(t *testing.T) {
	vs, _ := New([]string{"a", "b", "c"})
	a, _ := vs.MkVar(0)
	b, _ := vs.MkVar(1)
	c, _ := vs.MkVar(2)
	ab, _ := Or(a, b)
	f, _ := Or(ab, c)

	seen := make(map[[1]bool]bool)
	err := SatAllProjected(f, []int{0}, func(val []bool) error {
		key := [1]bool{val[0]}
		if seen[key] {
			t.Fatalf("SatAllProjected yielded duplicate projected valuation %v", val)
		}
		seen[key] = true
		return nil
	})
	if err != nil {
		t.Fatalf("SatAllProjected: %v", err)
	}
	if len(seen) != 2 {
		t.Errorf("SatAllProjected over a single variable yielded %d distinct rows, want 2", len(seen))
	}
}

func TestCardinalityTrivial(t *testing.T) {
	vs, _ := New([]string{"a", "b"})
	if got := Cardinality(vs.MkFalse()); got.Sign() != 0 {
		t.Errorf("Cardinality(false) = %s, want 0", got.String())
	}
	if got := Cardinality(vs.MkTrue()); got.Cmp(big.NewInt(4)) != 0 {
		t.Errorf("Cardinality(true) = %s, want 4", got.String())
	}
}

func TestCardinalitySingleVariable(t *testing.T) {
	vs, _ := New([]string{"a", "b", "c"})
	a, _ := vs.MkVar(0)
	if got := Cardinality(a); got.Cmp(big.NewInt(4)) != 0 {
		t.Errorf("Cardinality(a) over 3 variables = %s, want 4", got.String())
	}
}
