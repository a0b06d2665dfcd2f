// Package matmul is a concurrent fan-out/fan-in matrix-multiplication engine.
//
// What is matmul?
//
//	A small library that computes a×b by dispatching one dot-product task
//	per output cell to a fixed pool of worker lanes and collecting exactly
//	one reply per task:
//		• vector/: Numeric constraint, fixed-length Vector, Dot
//		• matrix/: immutable row-major Dense, Row/Column, Transpose, sequential Mul
//		• engine/: Router, lanes & Pool, Multiply and the long-lived Engine
//		• engine/prommetrics/: Prometheus MetricsObserver
//
// Results are placed by linear index, so completion order never changes
// the output, and the output buffer is written by the coordinator only.
//
//	go get github.com/katalvlaran/matmul
package matmul
