// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package robdd

// reducedOrdered checks that nodes is a well-formed Bdd array for vs: the
// right terminal prefix, every child index strictly earlier in the array,
// no redundant test, strictly increasing variable order, and no duplicate
// (var, low, high) triple. It is the shared predicate behind both the
// deserialization reader discipline and the safety envelope below.
func reducedOrdered(vs *VariableSet, nodes []node) (bool, string) {
	n := vs.n
	if len(nodes) == 0 {
		return false, "empty node array"
	}
	if nodes[0].variable != n {
		return false, "index 0 is not the False terminal"
	}
	if len(nodes) == 1 {
		return true, ""
	}
	if nodes[1].variable != n {
		return false, "index 1 is not the True terminal"
	}
	level := func(i int) int {
		if i < 2 {
			return n
		}
		return nodes[i].variable
	}
	seen := make(map[[3]int]bool, len(nodes))
	for i := 2; i < len(nodes); i++ {
		nd := nodes[i]
		if nd.variable < 0 || nd.variable >= n {
			return false, "node variable out of range"
		}
		if nd.low < 0 || nd.low >= i || nd.high < 0 || nd.high >= i {
			return false, "child index does not precede its parent"
		}
		if nd.low == nd.high {
			return false, "redundant test (low == high)"
		}
		if nd.variable >= level(nd.low) || nd.variable >= level(nd.high) {
			return false, "variable order violated"
		}
		key := [3]int{nd.variable, nd.low, nd.high}
		if seen[key] {
			return false, "duplicate (var, low, high) triple"
		}
		seen[key] = true
	}
	return true, ""
}

// checkResult is the safety envelope: a no-op unless the library is built
// with the extracheck tag, in which case it re-validates that a freshly
// produced Bdd is attached to the expected VariableSet and is itself
// reduced and ordered.
func checkResult(where string, vars *VariableSet, b *Bdd) error {
	if !extraChecks {
		return nil
	}
	if b.vars != vars {
		return &Invariant{Where: where, What: "result attached to an unexpected VariableSet"}
	}
	if ok, reason := reducedOrdered(vars, b.nodes); !ok {
		return &Invariant{Where: where, What: reason}
	}
	return nil
}

// checkOperand is the operand half of the envelope: every Bdd handed to a
// public entry point must already be reduced and ordered (it should be,
// since the only way to construct one outside this package is
// deserialization, which enforces the same check) and attached to vars.
func checkOperand(where string, vars *VariableSet, b *Bdd) error {
	if !extraChecks {
		return nil
	}
	if b.vars != vars {
		return &Invariant{Where: where, What: "operand attached to an unexpected VariableSet"}
	}
	if ok, reason := reducedOrdered(vars, b.nodes); !ok {
		return &Invariant{Where: where, What: reason}
	}
	return nil
}
