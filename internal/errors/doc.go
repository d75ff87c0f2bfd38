// Package errors provides structured error handling for the combat backend.
//
// Every business-rule failure is expressed as an *Error carrying a Code so
// that callers can branch on the failure class (insufficient dice, wrong
// turn, already claimed) without string matching. Repositories and
// orchestrators wrap lower-level failures with Wrap/WrapWithCode to preserve
// the original cause while attaching domain context.
package errors
