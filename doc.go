// Package entnet partitions labeled, weighted edge lists into connected
// components — the in-memory core behind a host environment's network
// analysis helpers.
//
// 🚀 What is entnet?
//
//	A small, deterministic library that brings together:
//		• edgelist   — normalize parallel (source, destination, weight) slices
//		               into a dense label index and an edge list
//		• components — union-find partition with canonical, reproducible
//		               component ids and per-component summary statistics
//		• nodecount  — distinct-label counting with optional expected-total
//		               validation
//
// ✨ Why choose entnet?
//
//   - Deterministic – identical input always yields identical component ids
//   - Pure functions – no shared state, nothing persists across calls
//   - Diagnostic errors – every failure names the sequence and lengths involved
//   - Pure Go – no cgo, no hidden deps
//
// Quick ASCII example:
//
//	    x───y───z        p───q
//
//	a = ["x","y","p"], b = ["y","z","q"], w = [1,1,1] describes three edges
//	over five labels; components.FindLabels assigns {x,y,z} component 0 and
//	{p,q} component 1.
//
// Dive into each subpackage's doc.go for contracts, complexity and errors.
//
//	go get github.com/katalvlaran/entnet
package entnet
