// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package robdd

// Operator describes one of the 16 binary Boolean connectives available to
// Apply, represented as a lookup into a 2x2 truth table rather than branched
// on by identity. Not (negation) is the only unary operation and is not a
// valid argument to Apply.
type Operator int

const (
	OPfalse  Operator = iota // constant false, ignores both operands
	OPand                    // logical and
	OPgt                     // A and not B ("greater than")
	OPa                      // projects the first operand
	OPlt                     // not A and B ("less than")
	OPb                      // projects the second operand
	OPxor                    // logical xor
	OPor                     // logical or
	OPnor                    // logical not-or
	OPbiimp                  // equivalence (xnor)
	OPnotb                   // negation of the second operand
	OPinvimp                 // reverse implication (B => A)
	OPnota                   // negation of the first operand
	OPimp                    // implication (A => B)
	OPnand                   // logical not-and
	OPtrue                   // constant true, ignores both operands
	// opnot, for negation, is the only unary operation. It should not be
	// used in Apply.
	opnot
)

var opnames = [17]string{
	OPfalse:  "false",
	OPand:    "and",
	OPgt:     "gt",
	OPa:      "a",
	OPlt:     "lt",
	OPb:      "b",
	OPxor:    "xor",
	OPor:     "or",
	OPnor:    "nor",
	OPbiimp:  "biimp",
	OPnotb:   "notb",
	OPinvimp: "invimp",
	OPnota:   "nota",
	OPimp:    "imp",
	OPnand:   "nand",
	OPtrue:   "true",
	opnot:    "not",
}

func (op Operator) String() string {
	return opnames[op]
}

// opres[op][u][v] gives the Boolean value of op applied to terminals u, v.
// The comment next to each entry lists f(0,0) f(0,1) f(1,0) f(1,1) as a
// 4-bit string, which is also the truth table's row in the standard
// enumeration of the 16 binary Boolean functions.
var opres = [17][2][2]int{
	OPfalse:  {0: [2]int{0: 0, 1: 0}, 1: [2]int{0: 0, 1: 0}}, // 0000
	OPand:    {0: [2]int{0: 0, 1: 0}, 1: [2]int{0: 0, 1: 1}}, // 0001
	OPgt:     {0: [2]int{0: 0, 1: 0}, 1: [2]int{0: 1, 1: 0}}, // 0010
	OPa:      {0: [2]int{0: 0, 1: 0}, 1: [2]int{0: 1, 1: 1}}, // 0011
	OPlt:     {0: [2]int{0: 0, 1: 1}, 1: [2]int{0: 0, 1: 0}}, // 0100
	OPb:      {0: [2]int{0: 0, 1: 1}, 1: [2]int{0: 0, 1: 1}}, // 0101
	OPxor:    {0: [2]int{0: 0, 1: 1}, 1: [2]int{0: 1, 1: 0}}, // 0110
	OPor:     {0: [2]int{0: 0, 1: 1}, 1: [2]int{0: 1, 1: 1}}, // 0111
	OPnor:    {0: [2]int{0: 1, 1: 0}, 1: [2]int{0: 0, 1: 0}}, // 1000
	OPbiimp:  {0: [2]int{0: 1, 1: 0}, 1: [2]int{0: 0, 1: 1}}, // 1001
	OPnotb:   {0: [2]int{0: 1, 1: 0}, 1: [2]int{0: 1, 1: 0}}, // 1010
	OPinvimp: {0: [2]int{0: 1, 1: 0}, 1: [2]int{0: 1, 1: 1}}, // 1011
	OPnota:   {0: [2]int{0: 1, 1: 1}, 1: [2]int{0: 0, 1: 0}}, // 1100
	OPimp:    {0: [2]int{0: 1, 1: 1}, 1: [2]int{0: 0, 1: 1}}, // 1101
	OPnand:   {0: [2]int{0: 1, 1: 1}, 1: [2]int{0: 1, 1: 0}}, // 1110
	OPtrue:   {0: [2]int{0: 1, 1: 1}, 1: [2]int{0: 1, 1: 1}}, // 1111
}
