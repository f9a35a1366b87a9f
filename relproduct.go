// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package robdd

import "github.com/bits-and-blooms/bitset"

// RelProduct computes the relational product ∃vs.(f ∧ g): a fused single
// pass combining conjunction with projection over vs. It is the And-apply of
// f and g, augmented with the same merge-on-projected-variable hook used by
// quantify, so the variables in vs are eliminated as the conjunction is
// built rather than in a second traversal. Fails with ErrVariableSetMismatch
// if f and g were built from different VariableSets.
func RelProduct(f, g *Bdd, vs *bitset.BitSet) (*Bdd, error) {
	if err := sameVars(f, g); err != nil {
		return nil, err
	}
	vars := f.vars
	if err := checkOperand("RelProduct", vars, f); err != nil {
		return nil, err
	}
	if err := checkOperand("RelProduct", vars, g); err != nil {
		return nil, err
	}
	out := newOutput(vars)
	uniq := make(map[[3]int]int, vars.cfg.cacheHint)
	outSrc := src{nodes: &out}
	mergeTask := make(map[[2]int]int, vars.cfg.cacheHint)

	merge := func(x, y int) int {
		ms := &applyState{
			op:       OPor,
			f:        outSrc,
			g:        outSrc,
			sentinel: vars.n,
			task:     mergeTask,
			uniq:     uniq,
			out:      &out,
		}
		return ms.rec(x, y)
	}

	s := &applyState{
		op:       OPand,
		f:        src{nodes: &f.nodes},
		g:        src{nodes: &g.nodes},
		sentinel: vars.n,
		task:     make(map[[2]int]int, vars.cfg.cacheHint),
		uniq:     uniq,
		out:      &out,
	}
	s.hook = func(w, lo, hi int) (int, int) {
		if vs.Test(uint(w)) {
			m := merge(lo, hi)
			return m, m
		}
		return lo, hi
	}

	root := s.rec(f.root(), g.root())
	if err := checkNodeLimit(vars, out); err != nil {
		return nil, err
	}
	result := compact(vars, out, root)
	if err := checkResult("RelProduct", vars, result); err != nil {
		return nil, err
	}
	return result, nil
}
