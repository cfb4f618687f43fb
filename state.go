// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kond

// Get reads the state.
type Get[S any] struct{ Phantom[S] }

// Put replaces the state.
type Put[S any] struct {
	Phantom[Unit]
	Value S
}

// Modify applies F to the state and resumes with the new state.
type Modify[S any] struct {
	Phantom[S]
	F func(S) S
}

// DispatchState lets any handler holding an *S interpret Get.
func (Get[S]) DispatchState(state *S) (Resumed, bool) {
	return *state, true
}

// DispatchState lets any handler holding an *S interpret Put.
func (o Put[S]) DispatchState(state *S) (Resumed, bool) {
	*state = o.Value
	return Unit{}, true
}

// DispatchState lets any handler holding an *S interpret Modify.
func (o Modify[S]) DispatchState(state *S) (Resumed, bool) {
	*state = o.F(*state)
	return *state, true
}

// stateOp is the structural interface handlers use to find State
// operations without knowing the concrete operation type.
type stateOp[S any] interface {
	DispatchState(state *S) (Resumed, bool)
}

// GetState reads the state and continues with f.
func GetState[S, B any](f func(S) Eff[B]) Eff[B] {
	return Bind(Perform(Get[S]{}), f)
}

// PutState replaces the state and continues with next.
func PutState[S, B any](s S, next Eff[B]) Eff[B] {
	return Then(Perform(Put[S]{Value: s}), next)
}

// ModifyState applies f to the state and continues with the new state.
func ModifyState[S, B any](f func(S) S, then func(S) Eff[B]) Eff[B] {
	return Bind(Perform(Modify[S]{F: f}), then)
}

type stateHandler[S, R any] struct {
	state *S
}

func (h *stateHandler[S, R]) Dispatch(op Operation) (Resumed, bool) {
	if sop, ok := op.(stateOp[S]); ok {
		return sop.DispatchState(h.state)
	}
	unhandledEffect("StateHandler", op)
	return nil, false
}

// StateHandler returns a State handler starting at initial and a function
// reading its current state.
func StateHandler[S, R any](initial S) (*stateHandler[S, R], func() S) {
	state := initial
	return &stateHandler[S, R]{state: &state}, func() S { return state }
}

// RunState runs m from initial, returning its result and the final state.
func RunState[S, A any](initial S, m Eff[A]) (A, S) {
	h, state := StateHandler[S, A](initial)
	return Handle(m, h), state()
}

// EvalState is RunState without the final state.
func EvalState[S, A any](initial S, m Eff[A]) A {
	a, _ := RunState(initial, m)
	return a
}

// ExecState is RunState without the result.
func ExecState[S, A any](initial S, m Eff[A]) S {
	_, s := RunState(initial, m)
	return s
}

// RunStateExpr is RunState for Expr.
func RunStateExpr[S, A any](initial S, m Expr[A]) (A, S) {
	h, state := StateHandler[S, A](initial)
	return HandleExpr(m, h), state()
}
