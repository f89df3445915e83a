// Package hatch predicts Days Before Hatching (DBH) for wild bird eggs.
//
// Egg volume is derived from length, breadth and a shape constant
// (VE = Kv·L·B² / 1000, cm³), egg density from mass over volume, and DBH by
// inverting a per-species quadratic regression
//
//	density = a·DBH² + b·DBH + c
//
// Of the two roots, only those inside the 0–35 day incubation window are
// considered and the smaller is reported. A heuristic confidence in
// [0.1, 1] describes how typical the density and DBH are for the species.
//
// Every function is pure and safe for concurrent use; the formula table is
// fixed at build time.
package hatch
