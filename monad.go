// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kond

// Sequencing for Cont. Every conditional combinator is one Bind of its
// condition followed by a choice of branch, so these are the only places a
// condition's result reaches the code that depends on it.

// Bind runs m and passes its result to choose, which returns the
// computation to continue with. choose is called once per run of the
// result and only after m has produced a value; if m never resumes its
// continuation (an Empty or Throw), choose is never called.
//
// Example:
//
//	next := Bind(cond, func(b bool) Eff[int] {
//	    if b {
//	        return Pure(1)
//	    }
//	    return Pure(0)
//	})
func Bind[R, A, B any](m Cont[R, A], choose func(A) Cont[R, B]) Cont[R, B] {
	return func(k func(B) R) R {
		return m(func(a A) R {
			next := choose(a)
			return next(k)
		})
	}
}

// Map applies f to the result of m.
//
// Allocation note: Map builds one closure for the result and one for the
// continuation it passes to m. The equivalent Bind with a Return also
// allocates the Return closure on every run.
func Map[R, A, B any](m Cont[R, A], f func(A) B) Cont[R, B] {
	return func(k func(B) R) R {
		return m(func(a A) R { return k(f(a)) })
	}
}

// Then runs m for its effects, drops its result and continues with n.
// It sequences several actions into the one action a branch takes.
//
// Allocation note: n is captured as a value, so Then allocates no closure
// for a continuation function the way Bind does.
func Then[R, A, B any](m Cont[R, A], n Cont[R, B]) Cont[R, B] {
	return func(k func(B) R) R {
		return m(func(A) R { return n(k) })
	}
}

// not is shared by Not and ExprNot.
func not(b bool) bool { return !b }

// Not negates the condition m. UnlessM is IfM on a condition with its
// branches swapped rather than WhenM on Not(cond), but Not is the primitive
// for callers composing conditions with AndM and OrM.
func Not[R any](cond Cont[R, bool]) Cont[R, bool] {
	return Map(cond, not)
}
