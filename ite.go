// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package robdd

// Ite computes the if-then-else of f, g, h: (f and g) or (not f and h). A
// three-argument simultaneous recursion over a shared node table could reuse
// an operand's own pointer as the result pointer in the "not f" case, but
// Bdds here own disjoint arrays, so that trick does not carry over; this
// implements the same formula directly as two conjunctions and a
// disjunction instead.
func Ite(f, g, h *Bdd) (*Bdd, error) {
	if err := sameVars(f, g); err != nil {
		return nil, err
	}
	if err := sameVars(f, h); err != nil {
		return nil, err
	}
	switch {
	case f.IsTrue():
		return g.Clone(), nil
	case f.IsFalse():
		return h.Clone(), nil
	case g.Equal(h):
		return g.Clone(), nil
	}
	notF := Not(f)
	left, err := And(f, g)
	if err != nil {
		return nil, err
	}
	right, err := And(notF, h)
	if err != nil {
		return nil, err
	}
	return Or(left, right)
}
