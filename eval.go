// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package robdd

import "math/big"

// childLevel returns the sentinel level (vars.n) for a terminal pointer, or
// the tested variable for a decision node, matching the convention used
// throughout apply.go.
func childLevel(b *Bdd, ptr int) int {
	if ptr < 2 {
		return b.vars.n
	}
	return b.nodes[ptr].variable
}

// Eval evaluates b against a full valuation (indexed by variable level) by
// walking from the root and following low or high at each decision node.
// Fails with ErrUnknownVariable if a node tests a level outside valuation.
func Eval(b *Bdd, valuation []bool) (bool, error) {
	n := b.root()
	for n > 1 {
		nd := b.nodes[n]
		if nd.variable < 0 || nd.variable >= len(valuation) {
			return false, ErrUnknownVariable
		}
		if valuation[nd.variable] {
			n = nd.high
		} else {
			n = nd.low
		}
	}
	return n == 1, nil
}

// SatAny descends from the root, preferring the high branch whenever it is
// not the False terminal, and returns a partial valuation consistent with
// any single satisfying assignment: variables never tested along the chosen
// path are left unset (absent from the map). The second return value is
// false when b is unsatisfiable.
func SatAny(b *Bdd) (map[int]bool, bool) {
	if b.IsFalse() {
		return nil, false
	}
	result := make(map[int]bool)
	n := b.root()
	for n > 1 {
		nd := b.nodes[n]
		if nd.high != 0 {
			result[nd.variable] = true
			n = nd.high
		} else {
			result[nd.variable] = false
			n = nd.low
		}
	}
	return result, true
}

// SatAll calls yield once for every satisfying valuation of b, as a full,
// distinct []bool indexed by variable level. It stops and propagates the
// error as soon as yield returns one. Expands a "don't care" profile, built
// up as the recursion descends, into every full valuation it covers. The
// order is a depth-first walk of b's decision nodes, low branch before high;
// variables not tested along a path are expanded only when the path reaches
// the True terminal, so the sequence is not lexicographic by level whenever
// such a variable precedes a tested one.
func SatAll(b *Bdd, yield func([]bool) error) error {
	prof := make([]int, b.vars.n)
	for i := range prof {
		prof[i] = -1
	}
	return satAllRec(b, b.root(), prof, yield)
}

func satAllRec(b *Bdd, n int, prof []int, yield func([]bool) error) error {
	if n == 0 {
		return nil
	}
	if n == 1 {
		return expandProfile(prof, 0, yield)
	}
	nd := b.nodes[n]
	if nd.low != 0 {
		prof[nd.variable] = 0
		for v := childLevel(b, nd.low) - 1; v > nd.variable; v-- {
			prof[v] = -1
		}
		if err := satAllRec(b, nd.low, prof, yield); err != nil {
			return err
		}
	}
	if nd.high != 0 {
		prof[nd.variable] = 1
		for v := childLevel(b, nd.high) - 1; v > nd.variable; v-- {
			prof[v] = -1
		}
		if err := satAllRec(b, nd.high, prof, yield); err != nil {
			return err
		}
	}
	return nil
}

func expandProfile(prof []int, i int, yield func([]bool) error) error {
	if i == len(prof) {
		out := make([]bool, len(prof))
		for k, v := range prof {
			out[k] = v == 1
		}
		return yield(out)
	}
	if prof[i] != -1 {
		return expandProfile(prof, i+1, yield)
	}
	saved := prof[i]
	prof[i] = 0
	if err := expandProfile(prof, i+1, yield); err != nil {
		prof[i] = saved
		return err
	}
	prof[i] = 1
	if err := expandProfile(prof, i+1, yield); err != nil {
		prof[i] = saved
		return err
	}
	prof[i] = saved
	return nil
}

// SatAllProjected is SatAll restricted to, and deduplicated over, a subset
// of variable levels: each distinct projected valuation is yielded exactly
// once, regardless of how many full valuations of b share it.
func SatAllProjected(b *Bdd, levels []int, yield func([]bool) error) error {
	prof := make([]int, b.vars.n)
	for i := range prof {
		prof[i] = -1
	}
	seen := make(map[string]bool)
	return satProjRec(b, b.root(), prof, levels, seen, yield)
}

func satProjRec(b *Bdd, n int, prof []int, levels []int, seen map[string]bool, yield func([]bool) error) error {
	if n == 0 {
		return nil
	}
	if n == 1 {
		return expandProjected(prof, levels, 0, make([]bool, len(levels)), seen, yield)
	}
	nd := b.nodes[n]
	if nd.low != 0 {
		prof[nd.variable] = 0
		for v := childLevel(b, nd.low) - 1; v > nd.variable; v-- {
			prof[v] = -1
		}
		if err := satProjRec(b, nd.low, prof, levels, seen, yield); err != nil {
			return err
		}
	}
	if nd.high != 0 {
		prof[nd.variable] = 1
		for v := childLevel(b, nd.high) - 1; v > nd.variable; v-- {
			prof[v] = -1
		}
		if err := satProjRec(b, nd.high, prof, levels, seen, yield); err != nil {
			return err
		}
	}
	return nil
}

func expandProjected(prof []int, levels []int, i int, acc []bool, seen map[string]bool, yield func([]bool) error) error {
	if i == len(levels) {
		key := make([]byte, len(acc))
		for k, v := range acc {
			if v {
				key[k] = '1'
			} else {
				key[k] = '0'
			}
		}
		ks := string(key)
		if seen[ks] {
			return nil
		}
		seen[ks] = true
		out := make([]bool, len(acc))
		copy(out, acc)
		return yield(out)
	}
	l := levels[i]
	if prof[l] != -1 {
		acc[i] = prof[l] == 1
		return expandProjected(prof, levels, i+1, acc, seen, yield)
	}
	acc[i] = false
	if err := expandProjected(prof, levels, i+1, acc, seen, yield); err != nil {
		return err
	}
	acc[i] = true
	return expandProjected(prof, levels, i+1, acc, seen, yield)
}

// Cardinality returns the exact number of satisfying valuations of b, using
// a memoized post-order: card(node) = 2^skip_low * card(low) + 2^skip_high *
// card(high), where skip_* counts the variables skipped between node.var and
// the child's var (terminals counting as level n). Uses math/big throughout
// rather than switching to a float near the 2^n bound.
func Cardinality(b *Bdd) *big.Int {
	memo := make(map[int]*big.Int)
	var rec func(n int) *big.Int
	rec = func(n int) *big.Int {
		if n == 0 {
			return big.NewInt(0)
		}
		if n == 1 {
			return big.NewInt(1)
		}
		if v, ok := memo[n]; ok {
			return v
		}
		nd := b.nodes[n]
		lowSkip := childLevel(b, nd.low) - nd.variable - 1
		hiSkip := childLevel(b, nd.high) - nd.variable - 1
		lowTerm := new(big.Int).Lsh(rec(nd.low), uint(lowSkip))
		hiTerm := new(big.Int).Lsh(rec(nd.high), uint(hiSkip))
		res := new(big.Int).Add(lowTerm, hiTerm)
		memo[n] = res
		return res
	}
	root := b.root()
	return new(big.Int).Lsh(rec(root), uint(b.nodes[root].variable))
}
