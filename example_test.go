// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package robdd_test

import (
	"fmt"

	"github.com/brannur/robdd"
)

// This example shows the basic usage of the package: declare a variable
// universe, build a Boolean function with the derived connectives, and
// compute its cardinality.
func Example_basic() {
	vs, _ := robdd.New([]string{"a", "b", "c"})
	a, _ := vs.MkVar(0)
	b, _ := vs.MkVar(1)
	c, _ := vs.MkVar(2)

	// f == (a <=> !b) | (c ^ a)
	left, _ := robdd.Iff(a, robdd.Not(b))
	right, _ := robdd.Xor(c, a)
	f, _ := robdd.Or(left, right)

	fmt.Printf("Number of satisfying assignments is %s\n", robdd.Cardinality(f).String())
	// Output:
	// Number of satisfying assignments is 6
}

// This example shows projecting a variable out of a conjunction with Exists,
// and confirms the result with the expression back-converter.
func Example_exists() {
	vs, _ := robdd.New([]string{"a", "b"})
	a, _ := vs.MkVar(0)
	b, _ := vs.MkVar(1)
	f, _ := robdd.And(a, b)

	bs, _ := vs.VariableSubset("b")
	g, _ := robdd.Exists(f, bs)
	fmt.Println(g.Expr())
	// Output:
	// a
}

// This example shows a round trip through the canonical textual
// serialization: parsing the output of String always yields back an
// equivalent function.
func Example_serialization() {
	vs, _ := robdd.New([]string{"a", "b"})
	a, _ := vs.MkVar(0)
	b, _ := vs.MkVar(1)
	f, _ := robdd.Xor(a, b)

	s := f.String()
	g, _ := robdd.FromString(vs, s)
	fmt.Println(g.Equal(f))
	// Output:
	// true
}

// This example counts distinct satisfying valuations with a callback handler
// passed to SatAll, the way a caller would tally solutions without building
// them all in memory first.
func Example_satAll() {
	vs, _ := robdd.New([]string{"a", "b", "c"})
	a, _ := vs.MkVar(0)
	b, _ := vs.MkVar(1)
	c, _ := vs.MkVar(2)
	ab, _ := robdd.Or(a, b)
	f, _ := robdd.Xor(ab, c)

	acc := new(int)
	robdd.SatAll(f, func(val []bool) error {
		*acc++
		return nil
	})
	fmt.Printf("Number of satisfying assignments is %d\n", *acc)
	// Output:
	// Number of satisfying assignments is 4
}
