// Package either provides Either[T], a container holding a single payload
// tagged Left (failure) or Right (success), and a fluent set of combinators
// for composing computations over it without branching at every step.
//
// Key operations:
// - Left/Right/Of: construct a container
// - Map/FlatMap/Then/Flatten: transform Right payloads, Left short-circuits
// - GetOrElse/OrElse/FilterOrElse/Guard/Recover: fallbacks and guards
// - Ap/LiftN/Lift2/Lift3: applicative combination of several containers
// - Fold/FoldTo: leave the Either track
// - Contains/Swap/ToSlice/ToSet/String/Log: equality, conversion, diagnostics
//
// Both tags carry the same payload type. Combinators whose payload shape
// varies at runtime (Ap, LiftN, nested Flatten) are meant for Either[any].
package either
