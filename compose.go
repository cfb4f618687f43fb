// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kond

// Composed handlers interpret more than one effect family in a single
// dispatch loop, so that guarded computations can also carry state.

// stateOptionHandler handles State and Empty.
type stateOptionHandler[S, A any] struct {
	state *S
}

// Dispatch order: State, then Empty.
func (h *stateOptionHandler[S, A]) Dispatch(op Operation) (Resumed, bool) {
	if sop, ok := op.(stateOp[S]); ok {
		return sop.DispatchState(h.state)
	}
	if _, ok := op.(Empty); ok {
		return None[A](), false
	}
	unhandledEffect("StateOptionHandler", op)
	return nil, false
}

// RunStateOption runs m with State and Empty. The final state is returned
// even when m is empty, reflecting the effects that ran before it failed.
func RunStateOption[S, A any](initial S, m Eff[A]) (Option[A], S) {
	state := initial
	h := &stateOptionHandler[S, A]{state: &state}
	result := dispatch[*stateOptionHandler[S, A], Option[A]](m(someCont[A]), h)
	return result, state
}

// RunStateOptionExpr is RunStateOption for Expr.
func RunStateOptionExpr[S, A any](initial S, m Expr[A]) (Option[A], S) {
	state := initial
	h := &stateOptionHandler[S, A]{state: &state}
	result := HandleExpr(ExprMap(m, Some[A]), h)
	return result, state
}

// stateErrorHandler handles State and Error.
type stateErrorHandler[S, E, A any] struct {
	state *S
}

// Dispatch order: State, then Error.
func (h *stateErrorHandler[S, E, A]) Dispatch(op Operation) (Resumed, bool) {
	if sop, ok := op.(stateOp[S]); ok {
		return sop.DispatchState(h.state)
	}
	if t, ok := op.(Throw[E]); ok {
		return Left[E, A](t.Err), false
	}
	unhandledEffect("StateErrorHandler", op)
	return nil, false
}

// RunStateError runs m with State and Error. The final state is returned
// even when m raises.
func RunStateError[S, E, A any](initial S, m Eff[A]) (Either[E, A], S) {
	state := initial
	h := &stateErrorHandler[S, E, A]{state: &state}
	result := dispatch[*stateErrorHandler[S, E, A], Either[E, A]](m(rightCont[E, A]), h)
	return result, state
}

// RunStateErrorExpr is RunStateError for Expr.
func RunStateErrorExpr[S, E, A any](initial S, m Expr[A]) (Either[E, A], S) {
	state := initial
	h := &stateErrorHandler[S, E, A]{state: &state}
	result := HandleExpr(ExprMap(m, Right[E, A]), h)
	return result, state
}
