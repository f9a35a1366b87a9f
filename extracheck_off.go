// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

//go:build !extracheck
// +build !extracheck

package robdd

// extraChecks gates the safety envelope: when true, public entry points
// re-validate their operands and results. This is intended for tests and
// development; production builds should leave the tag off.
const extraChecks bool = false
