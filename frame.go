// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kond

// Erased marks a value whose static type was dropped at a frame boundary.
// The evaluator carries Erased values and the frame functions recover the
// concrete type.
type Erased = any

// Frame is a defunctionalized continuation: the data describing what to do
// with the current value. The evaluator dispatches on the concrete type.
type Frame interface {
	frame()
}

// ReturnFrame ends a frame chain. It is the identity for ChainFrames.
type ReturnFrame struct{}

func (ReturnFrame) frame() {}

// BindFrame feeds the current value to F and evaluates the resulting Expr
// before continuing with Next.
type BindFrame struct {
	F    func(Erased) Expr[Erased]
	Next Frame
}

func (*BindFrame) frame() {}

// MapFrame replaces the current value with F applied to it.
type MapFrame struct {
	F    func(Erased) Erased
	Next Frame
}

func (*MapFrame) frame() {}

// ThenFrame discards the current value and evaluates Second.
type ThenFrame struct {
	Second Expr[Erased]
	Next   Frame
}

func (*ThenFrame) frame() {}

// EffectFrame suspends evaluation on Operation. The handler's answer is
// passed through Resume to become the current value.
type EffectFrame struct {
	Operation Operation
	Resume    func(Erased) Erased
	Next      Frame
}

func (*EffectFrame) frame() {}

// chainedFrame runs first, then rest.
type chainedFrame struct {
	first Frame
	rest  Frame
}

func (*chainedFrame) frame() {}

// Expr is the defunctionalized counterpart of Cont: a value together with
// the frames still to be applied to it. Value is meaningful only when Frame
// is ReturnFrame.
type Expr[A any] struct {
	Value A
	Frame Frame
}

// ExprReturn is a completed computation holding a.
func ExprReturn[A any](a A) Expr[A] {
	return Expr[A]{Value: a, Frame: ReturnFrame{}}
}

// ExprSuspend is a computation that starts at frame.
func ExprSuspend[A any](frame Frame) Expr[A] {
	return Expr[A]{Frame: frame}
}

// deferExpr builds the Expr returned by f each time it is evaluated.
// f is not called at construction.
func deferExpr[A any](f func() Expr[A]) Expr[A] {
	return ExprSuspend[A](&BindFrame{
		F: func(Erased) Expr[Erased] {
			return erase(f())
		},
		Next: ReturnFrame{},
	})
}

// erase drops the static type of an Expr.
func erase[A any](m Expr[A]) Expr[Erased] {
	return Expr[Erased]{Value: m.Value, Frame: m.Frame}
}

func identityResume(v Erased) Erased { return v }

// ExprPerform suspends an Expr on op.
func ExprPerform[O Op[O, A], A any](op O) Expr[A] {
	return ExprSuspend[A](&EffectFrame{
		Operation: op,
		Resume:    identityResume,
		Next:      ReturnFrame{},
	})
}

// ChainFrames composes two frame chains without copying either.
func ChainFrames(first, second Frame) Frame {
	if _, ok := first.(ReturnFrame); ok {
		return second
	}
	if _, ok := second.(ReturnFrame); ok {
		return first
	}
	return &chainedFrame{first: first, rest: second}
}
