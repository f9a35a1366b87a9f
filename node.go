// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package robdd

// node is one entry in a Bdd's array: either a terminal (variable set to the
// sentinel level, equal to the owning VariableSet's N) or a decision node
// (var, low, high), with low and high indices of strictly later-leveled
// nodes earlier in the same array.
type node struct {
	variable int
	low      int
	high     int
}

// Bdd is a self-contained, canonical Reduced Ordered Binary Decision
// Diagram. Its node array is reduced (no duplicate (var, low, high) triple,
// no node with low == high) and ordered (a node's variable is strictly
// smaller than the variable of either child). The first entry is always the
// False terminal; when present, the second entry is the True terminal. The
// root is the last entry. A Bdd shares nothing with other Bdds and is safe
// to copy, compare, or read from multiple goroutines once built.
type Bdd struct {
	vars  *VariableSet
	nodes []node
}

// falseBdd and trueBdd are the two trivial, fixed-shape Bdds: an array of
// length 1 for False, length 2 for True. Every VariableSet produces its own
// copies (they embed the same vars pointer) so that VariableSetMismatch
// checks stay meaningful.

func falseBdd(vars *VariableSet) *Bdd {
	return &Bdd{vars: vars, nodes: []node{{variable: vars.n, low: 0, high: 0}}}
}

func trueBdd(vars *VariableSet) *Bdd {
	return &Bdd{
		vars: vars,
		nodes: []node{
			{variable: vars.n, low: 0, high: 0},
			{variable: vars.n, low: 0, high: 0},
		},
	}
}

// root returns the index of the function's root, which by convention is
// always the last entry of the node array.
func (b *Bdd) root() int {
	return len(b.nodes) - 1
}

// IsFalse reports whether b is the constant-false function.
func (b *Bdd) IsFalse() bool {
	return len(b.nodes) == 1
}

// IsTrue reports whether b is the constant-true function.
func (b *Bdd) IsTrue() bool {
	return len(b.nodes) == 2 && b.root() == 1
}

// IsTrivial reports whether b is a constant function, true or false.
func (b *Bdd) IsTrivial() bool {
	return b.IsFalse() || b.IsTrue()
}

// NodeCount returns the number of entries in b's node array, terminals
// included.
func (b *Bdd) NodeCount() int {
	return len(b.nodes)
}

// VariableCountUsed returns the number of distinct variable levels tested by
// a decision node of b.
func (b *Bdd) VariableCountUsed() int {
	if b.IsTrivial() {
		return 0
	}
	seen := make(map[int]bool)
	for _, nd := range b.nodes[2:] {
		seen[nd.variable] = true
	}
	return len(seen)
}

// Variables returns the VariableSet that b was built against.
func (b *Bdd) Variables() *VariableSet {
	return b.vars
}

// Clone returns an independent copy of b; mutating the result (through
// package-internal code) never affects b.
func (b *Bdd) Clone() *Bdd {
	out := &Bdd{vars: b.vars, nodes: make([]node, len(b.nodes))}
	copy(out.nodes, b.nodes)
	return out
}

// Equal reports whether a and b denote the same Boolean function. Because
// the node array is canonical, this reduces to byte-for-byte comparison: two
// Bdds over the same VariableSet represent the same function iff their
// arrays are identical.
func (a *Bdd) Equal(b *Bdd) bool {
	if a.vars != b.vars || len(a.nodes) != len(b.nodes) {
		return false
	}
	for i := range a.nodes {
		if a.nodes[i] != b.nodes[i] {
			return false
		}
	}
	return true
}

// sameVars fails with ErrVariableSetMismatch when a and b were not built
// against the same VariableSet, the precondition of every binary operator.
func sameVars(a, b *Bdd) error {
	if a.vars != b.vars {
		return ErrVariableSetMismatch
	}
	return nil
}

// compact finishes a single apply-family call: given the working array built
// during the recursion (terminals at 0 and 1, decision nodes appended in
// post-order after their children) and the pointer the recursion settled on
// as its result, it produces the canonical, minimal Bdd reachable from that
// root. Nodes emitted into raw but not reachable from root (left behind when
// a hook discards a recursive result, as restriction and quantification do)
// are dropped and the
// survivors renumbered, preserving the children-before-parent order so every
// invariant in node.go still holds.
func compact(vars *VariableSet, raw []node, root int) *Bdd {
	if root == 0 {
		return falseBdd(vars)
	}
	if root == 1 {
		return trueBdd(vars)
	}

	remap := make([]int, len(raw))
	remap[0], remap[1] = 0, 1
	out := make([]node, 2, root+2)
	out[0] = raw[0]
	out[1] = raw[1]

	var visit func(i int) int
	seen := make([]bool, len(raw))
	visit = func(i int) int {
		if i < 2 {
			return i
		}
		if seen[i] {
			return remap[i]
		}
		seen[i] = true
		lo := visit(raw[i].low)
		hi := visit(raw[i].high)
		out = append(out, node{variable: raw[i].variable, low: lo, high: hi})
		remap[i] = len(out) - 1
		return remap[i]
	}
	visit(root)
	return &Bdd{vars: vars, nodes: out}
}
