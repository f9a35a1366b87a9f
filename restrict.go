// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package robdd

// Restrict computes f restricted by assign, a partial valuation mapping a
// subset of variable levels to a constant. It is an augmented apply over a
// single Bdd (operand f used as both sides of the generic engine, with op
// OPa projecting the first operand unchanged): the hook, triggered on every
// decision node whose variable is assigned, forces both branches of the
// emitted pair to the selected child, which the ordinary lo == hi reduction
// then collapses away — implementing restriction without a dedicated
// traversal. Fails with ErrUnknownVariable if assign names a level outside
// the range of f's VariableSet.
func Restrict(f *Bdd, assign map[int]bool) (*Bdd, error) {
	vars := f.vars
	for level := range assign {
		if level < 0 || level >= vars.n {
			return nil, ErrUnknownVariable
		}
	}
	if err := checkOperand("Restrict", vars, f); err != nil {
		return nil, err
	}
	if f.IsTrivial() || len(assign) == 0 {
		return f.Clone(), nil
	}

	out := newOutput(vars)
	same := src{nodes: &f.nodes}
	s := &applyState{
		op:       OPa,
		f:        same,
		g:        same,
		sentinel: vars.n,
		task:     make(map[[2]int]int, vars.cfg.cacheHint),
		uniq:     make(map[[3]int]int, vars.cfg.cacheHint),
		out:      &out,
	}
	s.hook = func(w, lo, hi int) (int, int) {
		if val, ok := assign[w]; ok {
			if val {
				return hi, hi
			}
			return lo, lo
		}
		return lo, hi
	}
	root := s.rec(f.root(), f.root())
	if err := checkNodeLimit(vars, out); err != nil {
		return nil, err
	}
	result := compact(vars, out, root)
	if err := checkResult("Restrict", vars, result); err != nil {
		return nil, err
	}
	return result, nil
}
