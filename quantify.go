// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package robdd

import (
	"log"

	"github.com/bits-and-blooms/bitset"
)

// VariableSubset builds the bitset.BitSet trigger consumed by Exists and
// ForAll from a list of variable names. Fails with ErrUnknownName if any
// name does not belong to vs.
func (vs *VariableSet) VariableSubset(names ...string) (*bitset.BitSet, error) {
	bs := bitset.New(uint(vs.n))
	for _, name := range names {
		lvl, err := vs.Level(name)
		if err != nil {
			return nil, err
		}
		bs.Set(uint(lvl))
	}
	return bs, nil
}

// quantify is the engine shared by Exists and ForAll: an augmented apply
// over a single Bdd (f used as both operands, op OPa so terminals resolve
// to the first operand unchanged) whose hook, on a decision node over a
// projected variable, replaces its two children with their merge under
// mergeOp (Or for exists, And for for-all) — the merge reuses the very same
// cross-apply recursion, with both of its operands pointing at the output
// array under construction, so the reduction table stays global to the
// whole call.
func quantify(f *Bdd, vs *bitset.BitSet, mergeOp Operator) (*Bdd, error) {
	vars := f.vars
	if err := checkOperand("quantify", vars, f); err != nil {
		return nil, err
	}
	out := newOutput(vars)
	uniq := make(map[[3]int]int, vars.cfg.cacheHint)
	outSrc := src{nodes: &out}
	mergeTask := make(map[[2]int]int, vars.cfg.cacheHint)

	merge := func(x, y int) int {
		ms := &applyState{
			op:       mergeOp,
			f:        outSrc,
			g:        outSrc,
			sentinel: vars.n,
			task:     mergeTask,
			uniq:     uniq,
			out:      &out,
		}
		return ms.rec(x, y)
	}

	same := src{nodes: &f.nodes}
	s := &applyState{
		op:       OPa,
		f:        same,
		g:        same,
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

	if debugTrace {
		log.Printf("quantify %s: %d nodes\n", mergeOp, f.NodeCount())
	}
	root := s.rec(f.root(), f.root())
	if err := checkNodeLimit(vars, out); err != nil {
		return nil, err
	}
	result := compact(vars, out, root)
	if debugTrace {
		log.Printf("quantify %s: result has %d nodes\n", mergeOp, result.NodeCount())
	}
	if err := checkResult("quantify", vars, result); err != nil {
		return nil, err
	}
	return result, nil
}

// Exists returns the existential quantification of f over the variables
// marked in vs: ∃v. f ≡ f[v↦0] ∨ f[v↦1], generalized to a set of variables.
func Exists(f *Bdd, vs *bitset.BitSet) (*Bdd, error) {
	return quantify(f, vs, OPor)
}

// ForAll returns the universal quantification of f over the variables
// marked in vs: ∀v. f ≡ f[v↦0] ∧ f[v↦1], generalized to a set of variables.
func ForAll(f *Bdd, vs *bitset.BitSet) (*Bdd, error) {
	return quantify(f, vs, OPand)
}
