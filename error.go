// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kond

// Throw is the operation that raises err. Like Empty it is never resumed.
type Throw[E any] struct{ Err E }

func (Throw[E]) OpResult() Resumed { panic("phantom") }

// ThrowError raises err.
func ThrowError[E, A any](err E) Eff[A] {
	return func(k func(A) Resumed) Resumed {
		return &suspended[A]{op: Throw[E]{Err: err}, k: k}
	}
}

// ExprThrowError raises err in an Expr.
func ExprThrowError[E, A any](err E) Expr[A] {
	return ExprSuspend[A](&EffectFrame{
		Operation: Throw[E]{Err: err},
		Resume:    identityResume,
		Next:      ReturnFrame{},
	})
}

// CatchError runs body and, if it raises an E, runs handler with it.
// Other effects of body pass through to the enclosing handler.
func CatchError[E, A any](body Eff[A], handler func(E) Eff[A]) Eff[A] {
	return func(k func(A) Resumed) Resumed {
		return intercept(body(toResumed[A]), k, func(op Operation) (Eff[A], bool) {
			if t, ok := op.(Throw[E]); ok {
				return handler(t.Err), true
			}
			return nil, false
		})
	}
}

// ExprCatchError is CatchError for Expr. handler is called once per
// evaluation that raises an E, never while the Expr is being built.
func ExprCatchError[E, A any](body Expr[A], handler func(E) Expr[A]) Expr[A] {
	return deferExpr(func() Expr[A] {
		return Reify(CatchError(Reflect(body), func(e E) Eff[A] {
			return Reflect(handler(e))
		}))
	})
}

// errorHandler answers Throw[E] with Left and rejects anything else.
type errorHandler[E, A any] struct{}

func (errorHandler[E, A]) Dispatch(op Operation) (Resumed, bool) {
	if t, ok := op.(Throw[E]); ok {
		return Left[E, A](t.Err), false
	}
	unhandledEffect("ErrorHandler", op)
	return nil, false
}

func rightCont[E, A any](a A) Resumed { return Right[E](a) }

// RunError runs m, returning Left of the first error it raises or Right of
// its result.
func RunError[E, A any](m Eff[A]) Either[E, A] {
	return dispatch[errorHandler[E, A], Either[E, A]](m(rightCont[E, A]), errorHandler[E, A]{})
}

// RunErrorExpr is RunError for Expr.
func RunErrorExpr[E, A any](m Expr[A]) Either[E, A] {
	return HandleExpr(ExprMap(m, Right[E, A]), errorHandler[E, A]{})
}
