// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kond

// Unit is the payload of actions run only for their effects.
// Return[R](Unit{}) is the neutral success value that WhenM and UnlessM
// produce when the action is skipped.
type Unit = struct{}

// Cont is a computation in continuation-passing style.
// Cont[R, A] produces a value of type A for a continuation whose final
// result type is R. Nothing runs until the continuation is supplied, which
// is what lets the combinators in this package pass unchosen branches as
// plain values.
type Cont[R, A any] func(k func(A) R) R

// Eff is a Cont whose answer type is Resumed, the form required by
// computations that perform effects.
type Eff[A any] = Cont[Resumed, A]

// Return is the computation that produces a without effects. A skipped
// WhenM or UnlessM is Return[R](Unit{}).
func Return[R, A any](a A) Cont[R, A] {
	return func(k func(A) R) R { return k(a) }
}

// Pure is Return specialised to Eff, so that A can be inferred.
func Pure[A any](a A) Eff[A] {
	return Return[Resumed](a)
}

// Suspend wraps a CPS function as a Cont. Each run calls run again, so a
// branch built with Suspend does its work only when chosen.
func Suspend[R, A any](run func(k func(A) R) R) Cont[R, A] {
	return run
}

// identity is a named generic function so that Run does not allocate a
// closure per call.
func identity[A any](a A) A { return a }

// Run executes a computation whose answer is its own result.
// Effectful computations go through Handle or one of the effect runners.
func Run[A any](m Cont[A, A]) A {
	return RunWith(m, identity[A])
}

// RunWith executes m with the final continuation k.
func RunWith[R, A any](m Cont[R, A], k func(A) R) R {
	return m(k)
}
