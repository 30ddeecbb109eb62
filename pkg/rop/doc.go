// Package rop defines Result[T], the success/failure carrier used by every
// railway package in this module, and its conversion into an error-first
// Pair.
//
// Result.ToPair and PairOf work on any result. Ok and Err are narrowed
// results whose pairs type the impossible side as Never:
//
//	_, v := rop.OkOf(42).ToPair().Unpack() // v is an int, no check needed
//	err, _ := rop.ErrOf[int](io.EOF).ToPair().Unpack()
package rop
