// SPDX-License-Identifier: MIT

// Package engine is the concurrent fan-out/fan-in matrix-multiplication engine.
//
// What & Why:
//
//	Multiply(a, b) splits the O(m·n·k) work of a×b into m·n independent
//	dot-product tasks, one per output cell. Each task is routed to one of a
//	fixed number of worker lanes by linear index (index mod lanes), carries
//	its own single-use reply channel, and is answered exactly once. The
//	coordinator (the calling goroutine) drains every reply it dispatched and
//	places each value by its self-describing linear index, so completion
//	order never affects the result and the output buffer is written by one
//	goroutine only.
//
// Lifecycle:
//
//	Multiply spawns a fresh pool per call and joins it before returning.
//	Engine keeps one pool alive across calls and is safe for concurrent use;
//	Close drains queued work and joins every lane.
//
// Errors:
//
//	Precondition failures (nil operands, a.Cols != b.Rows) are reported
//	before any lane starts or any task is sent. In-flight failures (a reply
//	carrying an error, a lane disconnecting mid-task) abort the whole multiply:
//	no partially filled matrix is ever returned.
//
// Observability:
//
//	Logging uses log/slog through Logger; metrics go through the
//	MetricsObserver interface (see package prommetrics for Prometheus).
package engine
