// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package robdd

import (
	"errors"
	"fmt"
)

// Sentinel errors for the coarse error kinds that carry no extra context.
// Callers should use errors.Is to test for these, following the same
// sentinel-error discipline used throughout the rest of this module.
var (
	// ErrDuplicateName is returned by New when two variable names are equal.
	// Names are compared exactly as given; no normalization is applied.
	ErrDuplicateName = errors.New("robdd: duplicate variable name")

	// ErrUnknownName is returned when a variable name does not belong to the
	// VariableSet being consulted.
	ErrUnknownName = errors.New("robdd: unknown variable name")

	// ErrUnknownVariable is returned when a variable level is out of range
	// for the VariableSet being consulted.
	ErrUnknownVariable = errors.New("robdd: unknown variable level")

	// ErrTooManyVariables is returned by New/NewAnonymous when n exceeds the
	// implementation's level-integer range.
	ErrTooManyVariables = errors.New("robdd: too many variables")

	// ErrVariableSetMismatch is returned by any operator whose operands come
	// from incompatible VariableSets.
	ErrVariableSetMismatch = errors.New("robdd: incompatible variable sets")

	// ErrNotCanonical is returned by a deserializer when the parsed array
	// fails the reduced-and-ordered check.
	ErrNotCanonical = errors.New("robdd: not a reduced, ordered node array")

	// ErrNodeLimitExceeded is returned by an operation whose output would
	// exceed the MaxNodes configured on its VariableSet.
	ErrNodeLimitExceeded = errors.New("robdd: node limit exceeded")
)

// ParseError reports a failure to parse a Boolean-expression string. Pos is
// the byte offset at which parsing failed.
type ParseError struct {
	Pos      int
	Expected string
	Found    string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("robdd: parse error at byte %d: expected %s, found %q", e.Pos, e.Expected, e.Found)
}

// SerializationError reports a malformed textual or binary encoding.
type SerializationError struct {
	Reason string
}

func (e *SerializationError) Error() string {
	return fmt.Sprintf("robdd: serialization error: %s", e.Reason)
}

// Invariant is only ever returned when the library is built with the
// extracheck build tag. It reports a violated internal invariant, which
// indicates a bug in this library or in code that bypassed the public API.
type Invariant struct {
	Where string
	What  string
}

func (e *Invariant) Error() string {
	return fmt.Sprintf("robdd: invariant violated in %s: %s", e.Where, e.What)
}
