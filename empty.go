// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kond

// Empty is the failure operation of the Alternative effect.
// A computation that performs Empty is abandoned: handlers never resume it.
type Empty struct{}

func (Empty) OpResult() Resumed { panic("phantom") }

// EmptyM is the empty Eff. Its continuation is never called.
func EmptyM[A any]() Eff[A] {
	return func(k func(A) Resumed) Resumed {
		return &suspended[A]{op: Empty{}, k: k}
	}
}

// ExprEmpty is the empty Expr.
func ExprEmpty[A any]() Expr[A] {
	return ExprSuspend[A](&EffectFrame{
		Operation: Empty{},
		Resume:    identityResume,
		Next:      ReturnFrame{},
	})
}

// Plus is left-biased choice: it runs m and, if m performs Empty, runs n
// instead. Other effects of m pass through to the enclosing handler.
// An Empty performed after Plus has produced its value is not caught.
func Plus[A any](m, n Eff[A]) Eff[A] {
	return func(k func(A) Resumed) Resumed {
		return intercept(m(toResumed[A]), k, func(op Operation) (Eff[A], bool) {
			if _, ok := op.(Empty); ok {
				return n, true
			}
			return nil, false
		})
	}
}

// ExprPlus is Plus for Expr. Neither m nor n is evaluated before the
// result is, and each evaluation runs the choice again.
func ExprPlus[A any](m, n Expr[A]) Expr[A] {
	return deferExpr(func() Expr[A] {
		return Reify(Plus(Reflect(m), Reflect(n)))
	})
}

// optionHandler answers Empty with None and rejects anything else.
type optionHandler[A any] struct{}

func (optionHandler[A]) Dispatch(op Operation) (Resumed, bool) {
	if _, ok := op.(Empty); ok {
		return None[A](), false
	}
	unhandledEffect("OptionHandler", op)
	return nil, false
}

func someCont[A any](a A) Resumed { return Some(a) }

// RunOption runs m, returning None if it performs Empty and Some of its
// result otherwise.
func RunOption[A any](m Eff[A]) Option[A] {
	return dispatch[optionHandler[A], Option[A]](m(someCont[A]), optionHandler[A]{})
}

// RunOptionExpr is RunOption for Expr.
func RunOptionExpr[A any](m Expr[A]) Option[A] {
	return HandleExpr(ExprMap(m, Some[A]), optionHandler[A]{})
}
