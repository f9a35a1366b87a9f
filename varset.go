// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package robdd

import (
	"fmt"
	"log"
)

// _MAXVAR bounds the number of variables a VariableSet may hold. Variable
// levels are stored as plain ints internally, but this library guarantees at
// least 65 535 distinct variables.
const _MAXVAR int = 1 << 20

// VariableSet is an immutable, ordered dictionary of named Boolean
// variables. It fixes the variable universe and the level order that every
// Bdd built from it shares; two Bdds can only be combined if they share a
// VariableSet.
type VariableSet struct {
	n      int
	names  []string
	byname map[string]int
	cfg    *config
}

// New creates a VariableSet from an explicit, ordered list of variable
// names. The level of names[i] is i. Fails with ErrDuplicateName if two
// names collide, or with ErrTooManyVariables if len(names) exceeds the
// implementation limit.
func New(names []string, opts ...func(*config)) (*VariableSet, error) {
	if len(names) > _MAXVAR {
		return nil, ErrTooManyVariables
	}
	byname := make(map[string]int, len(names))
	for i, name := range names {
		if _, dup := byname[name]; dup {
			return nil, ErrDuplicateName
		}
		byname[name] = i
	}
	cfg := makeconfig(len(names))
	for _, opt := range opts {
		opt(cfg)
	}
	cpy := make([]string, len(names))
	copy(cpy, names)
	if debugTrace {
		log.Printf("new variable set with %d variables\n", len(names))
	}
	return &VariableSet{n: len(names), names: cpy, byname: byname, cfg: cfg}, nil
}

// NewAnonymous creates a VariableSet of n variables named "v0".."v{n-1}".
func NewAnonymous(n int, opts ...func(*config)) (*VariableSet, error) {
	if n > _MAXVAR {
		return nil, ErrTooManyVariables
	}
	names := make([]string, n)
	for i := range names {
		names[i] = fmt.Sprintf("v%d", i)
	}
	return New(names, opts...)
}

// N returns the number of variables in the set.
func (vs *VariableSet) N() int {
	return vs.n
}

// Variables returns the variable names in level order.
func (vs *VariableSet) Variables() []string {
	out := make([]string, len(vs.names))
	copy(out, vs.names)
	return out
}

// Level returns the level of a named variable. Fails with ErrUnknownName if
// name does not belong to vs.
func (vs *VariableSet) Level(name string) (int, error) {
	lvl, ok := vs.byname[name]
	if !ok {
		return 0, ErrUnknownName
	}
	return lvl, nil
}

// Name returns the name of a variable given its level. Fails with
// ErrUnknownVariable if level is out of range.
func (vs *VariableSet) Name(level int) (string, error) {
	if level < 0 || level >= vs.n {
		return "", ErrUnknownVariable
	}
	return vs.names[level], nil
}

// MkFalse returns the constant-false Bdd over vs.
func (vs *VariableSet) MkFalse() *Bdd {
	return falseBdd(vs)
}

// MkTrue returns the constant-true Bdd over vs.
func (vs *VariableSet) MkTrue() *Bdd {
	return trueBdd(vs)
}

// MkVar returns the literal Bdd for the positive occurrence of the variable
// at the given level: three nodes (False, True, Decision(level, 0, 1)).
// Fails with ErrUnknownVariable if level is out of range.
func (vs *VariableSet) MkVar(level int) (*Bdd, error) {
	if level < 0 || level >= vs.n {
		return nil, ErrUnknownVariable
	}
	return &Bdd{
		vars: vs,
		nodes: []node{
			{variable: vs.n, low: 0, high: 0},
			{variable: vs.n, low: 0, high: 0},
			{variable: level, low: 0, high: 1},
		},
	}, nil
}

// MkNotVar returns the literal Bdd for the negated occurrence of the
// variable at the given level: Decision(level, low=1, high=0).
func (vs *VariableSet) MkNotVar(level int) (*Bdd, error) {
	if level < 0 || level >= vs.n {
		return nil, ErrUnknownVariable
	}
	return &Bdd{
		vars: vs,
		nodes: []node{
			{variable: vs.n, low: 0, high: 0},
			{variable: vs.n, low: 0, high: 0},
			{variable: level, low: 1, high: 0},
		},
	}, nil
}

// MkVarByName is MkVar, looking the level up by name first.
func (vs *VariableSet) MkVarByName(name string) (*Bdd, error) {
	lvl, err := vs.Level(name)
	if err != nil {
		return nil, err
	}
	return vs.MkVar(lvl)
}

// MkNotVarByName is MkNotVar, looking the level up by name first.
func (vs *VariableSet) MkNotVarByName(name string) (*Bdd, error) {
	lvl, err := vs.Level(name)
	if err != nil {
		return nil, err
	}
	return vs.MkNotVar(lvl)
}
