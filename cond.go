// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kond

// Conditional combinators over Cont.
//
// Every combinator is IfM with a fixed choice of branches: the condition is
// sequenced, and its result selects exactly one branch. A Cont does nothing
// until it is run, so the branch that is not selected never runs.

// IfM runs cond, then runs then if it produced true and otherwise if it
// produced false.
func IfM[R, A any](cond Cont[R, bool], then, otherwise Cont[R, A]) Cont[R, A] {
	return func(k func(A) R) R {
		return cond(func(b bool) R {
			if b {
				return then(k)
			}
			return otherwise(k)
		})
	}
}

// WhenM runs action only if cond produces true.
func WhenM[R any](cond Cont[R, bool], action Cont[R, Unit]) Cont[R, Unit] {
	return IfM(cond, action, Return[R](Unit{}))
}

// UnlessM runs action only if cond produces false.
func UnlessM[R any](cond Cont[R, bool], action Cont[R, Unit]) Cont[R, Unit] {
	return IfM(cond, Return[R](Unit{}), action)
}

// AndM is short-circuit conjunction. rhs runs only if lhs produced true.
func AndM[R any](lhs, rhs Cont[R, bool]) Cont[R, bool] {
	return IfM(lhs, rhs, Return[R](false))
}

// OrM is short-circuit disjunction. rhs runs only if lhs produced false.
func OrM[R any](lhs, rhs Cont[R, bool]) Cont[R, bool] {
	return IfM(lhs, Return[R](true), rhs)
}

// GuardM succeeds with Unit if cond produces true and is empty if it
// produces false. An empty cond stays empty.
func GuardM(cond Eff[bool]) Eff[Unit] {
	return IfM(cond, Pure(Unit{}), EmptyM[Unit]())
}

// Guarded is Pure(v) if p(v) holds, otherwise empty.
func Guarded[A any](p func(A) bool, v A) Eff[A] {
	if p(v) {
		return Pure(v)
	}
	return EmptyM[A]()
}
