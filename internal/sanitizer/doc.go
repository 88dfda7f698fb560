// Package sanitizer provides the pure normalization helpers used by the
// contact fields.
//
// Functions never fail: Phone always returns a string (possibly empty or
// non-numeric) and DateToEpoch reports a miss with its boolean result.
// Deciding whether the output is acceptable is the caller's job.
package sanitizer
