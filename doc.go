// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package kond provides monadic conditional combinators for Go: running an
// action when a computed condition holds, choosing between two computations,
// guarding on a condition, and short-circuiting boolean operators whose
// operands are themselves computations.
//
// Each combinator sequences a monadic condition and then selects a branch.
// Only the selected branch is ever run, so the effects of the other branch,
// including its failures, never happen.
//
// # Combinators
//
// The combinators come in three renditions with the same contracts.
//
// Over the continuation monad [Cont] (and [Eff] for effectful code):
//
//   - [WhenM]: run the action only if the condition is true
//   - [UnlessM]: run the action only if the condition is false
//   - [IfM]: run exactly one of two branches
//   - [GuardM]: succeed with [Unit] on true, [EmptyM] on false
//   - [Guarded]: [Pure] of the value if a predicate holds, otherwise empty
//   - [AndM], [OrM]: short-circuiting conjunction and disjunction
//   - [Not]: negate a boolean computation
//
// Over the defunctionalized [Expr]: [ExprWhenM], [ExprUnlessM], [ExprIfM],
// [ExprGuardM], [ExprGuarded], [ExprAndM], [ExprOrM], [ExprNot].
//
// Over any type with a capability dictionary: [WhenOf], [UnlessOf], [IfOf],
// [GuardOf], [GuardedOf], [AndOf], [OrOf]. The dictionary interfaces are
// [Binder], [Monad], [Alternative] and [MonadPlus]; the instances provided
// are [Options], [Eithers], [Slices], [Thunks], [Conts], [Effs] and [Exprs].
// Strict Go values cannot delay their own evaluation, so these combinators
// take skippable branches as func() values.
//
// # Continuations
//
//   - [Cont], [Eff]: computations in continuation-passing style
//   - [Return], [Pure], [Suspend]: constructors
//   - [Bind], [Map], [Then]: sequencing
//   - [Run], [RunWith]: execution
//
// # Effects
//
// Operations are values whose types satisfy the F-bounded [Op] constraint.
// [Perform] suspends a computation on an operation and a [Handler] decides
// whether to resume it. [Handle] and [HandleExpr] run the dispatch loop.
//
//   - Alternative: [Empty], [EmptyM], [ExprEmpty], [Plus], [ExprPlus],
//     [RunOption], [RunOptionExpr]
//   - Error: [Throw], [ThrowError], [ExprThrowError], [CatchError],
//     [ExprCatchError], [RunError], [RunErrorExpr]
//   - State: [Get], [Put], [Modify], [GetState], [PutState], [ModifyState],
//     [RunState], [EvalState], [ExecState], [RunStateExpr]
//   - Composed: [RunStateOption], [RunStateOptionExpr], [RunStateError],
//     [RunStateErrorExpr]
//
// [Reify] and [Reflect] convert between [Eff] and [Expr].
//
// # Failure
//
// The package adds no error kinds. Failure is whatever the monad in use
// already has: [None], [Left], an empty slice, [Throw] or [Empty]. A failing
// condition is propagated unchanged and no branch runs. Panics are reserved
// for programming errors such as an operation no handler recognises.
//
// # Example
//
//	isEven := func(n int) bool { return n%2 == 0 }
//
//	kond.RunOption(kond.Guarded(isEven, 2)) // Some(2)
//	kond.RunOption(kond.Guarded(isEven, 3)) // None
//	kond.GuardedOf(kond.Slices[int]{}, isEven, 3) // []int{}
//
//	// Increments the counter only while it is below 10.
//	below10 := kond.GetState(func(n int) kond.Eff[bool] { return kond.Pure(n < 10) })
//	inc := kond.ModifyState(func(n int) int { return n + 1 },
//		func(int) kond.Eff[kond.Unit] { return kond.Pure(kond.Unit{}) })
//	kond.ExecState(0, kond.WhenM(below10, inc)) // 1
package kond
