// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

//go:build extracheck
// +build extracheck

package robdd

const extraChecks bool = true
