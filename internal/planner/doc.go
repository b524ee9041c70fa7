// Package planner builds day-by-day itineraries from trip parameters.
//
// A run derives a per-day activity envelope from the travel style, draws a
// random first-fit assignment of candidate activities into morning,
// afternoon and evening slots, then validates and repairs the result. A
// failed validation sends the run back to assignment until the retry budget
// is spent, at which point the repaired best-effort assignment is returned
// together with its outstanding violations.
//
// Every run owns its state. Randomness is injected through RandomSource so a
// fixed seed reproduces the same plan.
package planner
