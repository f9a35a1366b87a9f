// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

//go:build !debug
// +build !debug

package robdd

// debugTrace gates the tracing calls scattered through apply.go, quantify.go
// and varset.go. Production builds leave it false so those calls compile
// away to nothing once the linker's dead-code elimination runs; building
// with -tags debug flips it on.
const debugTrace bool = false
