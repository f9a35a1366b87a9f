// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

/*
Package robdd defines a concrete type for Reduced Ordered Binary Decision
Diagrams (ROBDD), a canonical data structure used to represent Boolean
functions over a fixed, ordered set of propositional variables.

Basics

A VariableSet fixes the number of variables and their relative order once,
at creation time; each variable is identified by a small integer, its level,
in the range [0..n). A Bdd is a self-contained value: an array of nodes
terminated by the function's root, built against one VariableSet. Unlike a
classic BDD package, there is no process-wide unique table shared across
values — each Bdd owns its node array exclusively, can be freely copied, and
needs no reference counting or garbage collection. Two Bdds can be combined
only if they were built from the same VariableSet.

Canonical form

The node array of a Bdd is reduced (no two nodes share the same (variable,
low, high) triple, no node tests a variable whose two branches agree) and
ordered (a node's variable is always strictly smaller than the variable
tested by either of its children). Two Bdds denote the same Boolean function
if and only if their node arrays are byte-identical, which is the basis for
structural equality, hashing, and the serialization formats.

Apply engine

Every binary operation (and, or, xor, ...) and most of the derived operators
(restriction, quantification, relational product) are built on top of a
single recursive "apply" procedure, backed by a task cache (memoizing
results keyed by the pair of operand pointers) and a reduction table
(ensuring no (variable, low, high) triple is emitted twice into the output
array). Both tables are allocated fresh for the duration of a single
operation and discarded when it returns; there is no persistent cache.

Use of build tags

By default the library is silent. Building with the `debug` tag unlocks
tracing of apply/quantify calls through the standard log package. Building
with the `extracheck` tag wraps public entry points with extra validation
(compatible VariableSets, in-range pointers, reduced-and-ordered results)
intended for tests and development; production builds should omit it.

Concurrency

A Bdd, once built, never changes. It can be read concurrently from any
number of goroutines without synchronization, copied across goroutine
boundaries, or passed by value. There is no operation-spanning mutable
state: the task cache and reduction table used by a single call are local to
that call's stack.
*/
package robdd
