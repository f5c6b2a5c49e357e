// SPDX-License-Identifier: MIT

// Package sweep retries trimming and refinement over a list of tolerances
// in parallel. Each invocation is independent and reads its inputs only, so
// they fan out over an errgroup bounded by WithConcurrency. Results come
// back in tolerance order regardless of completion order; per-tolerance
// failures are recorded in the result rather than aborting the sweep.
//
// Cancellation is checked before each invocation starts. A running Trim or
// Refine is never interrupted.
package sweep
