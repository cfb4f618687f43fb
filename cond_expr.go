// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kond

// ExprIfM is IfM for Expr. The unselected branch is dropped without being
// evaluated.
func ExprIfM[A any](cond Expr[bool], then, otherwise Expr[A]) Expr[A] {
	return ExprBind(cond, func(b bool) Expr[A] {
		if b {
			return then
		}
		return otherwise
	})
}

// ExprWhenM is WhenM for Expr.
func ExprWhenM(cond Expr[bool], action Expr[Unit]) Expr[Unit] {
	return ExprIfM(cond, action, ExprReturn(Unit{}))
}

// ExprUnlessM is UnlessM for Expr.
func ExprUnlessM(cond Expr[bool], action Expr[Unit]) Expr[Unit] {
	return ExprIfM(cond, ExprReturn(Unit{}), action)
}

// ExprAndM is AndM for Expr.
func ExprAndM(lhs, rhs Expr[bool]) Expr[bool] {
	return ExprIfM(lhs, rhs, ExprReturn(false))
}

// ExprOrM is OrM for Expr.
func ExprOrM(lhs, rhs Expr[bool]) Expr[bool] {
	return ExprIfM(lhs, ExprReturn(true), rhs)
}

// ExprGuardM is GuardM for Expr.
func ExprGuardM(cond Expr[bool]) Expr[Unit] {
	return ExprIfM(cond, ExprReturn(Unit{}), ExprEmpty[Unit]())
}

// ExprGuarded is Guarded for Expr.
func ExprGuarded[A any](p func(A) bool, v A) Expr[A] {
	if p(v) {
		return ExprReturn(v)
	}
	return ExprEmpty[A]()
}
