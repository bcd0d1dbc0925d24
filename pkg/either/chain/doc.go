// Package chain provides a context-carrying fluent wrapper around
// *either.Either[T] for synchronous pipelines whose steps need a
// context.Context.
//
// Key operations:
// - Start/FromValue: begin a chain from a container or a plain value
// - Then/Map/Try: compose container-returning, plain or (T, error) steps
// - Ensure: run side effects without changing the container
// - Or/And: pick the first Right or require every chain to be Right
// - RepeatUntil/While: loop a step while the chain stays Right
// - Finally: collapse the chain into a plain value
//
// Every step short-circuits on Left exactly like the container does.
package chain
