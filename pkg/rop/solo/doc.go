// Package solo contains single-value, synchronous ROP primitives that operate
// on Result[T].
//
// Highlights:
// - Succeed/Fail/Cancel: construct Result[T]
// - Validate/AndValidate: failure on invalid input
// - Switch/Map: move from Result[In] to Result[Out]
// - Try: call a (Out, error) function and fold it back into a Result
// - Tee: side effect on success
// - Finally: reduce via success/error/cancel handlers
// - ToPair/Unpack: reduce to the error-first pair
package solo
