// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kond

// frameProcessor decides what the evaluator does at an EffectFrame and at
// the end of the chain. P is the concrete processor, so evalFrames is
// monomorphized per processor and the calls are static.
type frameProcessor[P frameProcessor[P, R], R any] interface {
	effect(f *EffectFrame, rest Frame) (current Erased, next Frame, result R, resume bool)
	done(current Erased) R
}

// uncons splits a frame into its head and the frames after it.
// rest is nil when f is a single frame. Left-nested chains are rotated
// so the head is never itself a chain.
func uncons(f Frame) (head, rest Frame) {
	for {
		c, ok := f.(*chainedFrame)
		if !ok {
			return f, nil
		}
		inner, nested := c.first.(*chainedFrame)
		if !nested {
			return c.first, c.rest
		}
		f = &chainedFrame{first: inner.first, rest: ChainFrames(inner.rest, c.rest)}
	}
}

// andThen appends rest, which may be nil, to f.
func andThen(f, rest Frame) Frame {
	if rest == nil {
		return f
	}
	return ChainFrames(f, rest)
}

// evalFrames iterates a frame chain to completion. Binds, maps and thens
// are applied in the loop, so evaluation depth does not grow the stack.
//
// A BindFrame's function runs here and not when the frame is built, which
// is where a conditional Expr chooses its branch. The chosen Expr's frames
// are spliced in front of the BindFrame's Next, so an unchosen branch is
// never visited.
func evalFrames[P frameProcessor[P, R], R any](current Erased, frame Frame, p P) R {
	for {
		head, rest := uncons(frame)
		switch f := head.(type) {
		case ReturnFrame:
			if rest == nil {
				return p.done(current)
			}
			frame = rest
		case *BindFrame:
			next := f.F(current)
			current = next.Value
			frame = andThen(ChainFrames(next.Frame, f.Next), rest)
		case *MapFrame:
			current = f.F(current)
			frame = andThen(f.Next, rest)
		case *ThenFrame:
			current = f.Second.Value
			frame = andThen(ChainFrames(f.Second.Frame, f.Next), rest)
		case *EffectFrame:
			c, next, result, resume := p.effect(f, andThen(f.Next, rest))
			if !resume {
				return result
			}
			current, frame = c, next
		default:
			panic("kond: unknown frame type")
		}
	}
}

// handlerProcessor resumes at each EffectFrame the handler answers and
// stops with the handler's value when it declines.
type handlerProcessor[H Handler[H, R], R any] struct{ h H }

func (p handlerProcessor[H, R]) effect(f *EffectFrame, rest Frame) (Erased, Frame, R, bool) {
	v, resume := p.h.Dispatch(f.Operation)
	if !resume {
		return nil, nil, unerase[R](v), false
	}
	var zero R
	return f.Resume(v), rest, zero, true
}

func (handlerProcessor[H, R]) done(current Erased) R {
	return unerase[R](current)
}

// pureEval rejects every effect.
type pureEval[R any] struct{}

func (pureEval[R]) Dispatch(Operation) (Resumed, bool) {
	panic("kond: effect frame in pure computation, use HandleExpr")
}

// HandleExpr evaluates m, interpreting its effects with h.
// It is the Expr counterpart of Handle. An Expr may be evaluated any number
// of times; each evaluation chooses its branches afresh.
//
// Example:
//
//	h := HandleFunc[int](func(op Operation) (Resumed, bool) {
//	    return 4, true // answer every Get[int]
//	})
//	HandleExpr(ExprIfM(ExprMap(ExprPerform(Get[int]{}), func(n int) bool {
//	    return n%2 == 0
//	}), ExprReturn(1), ExprReturn(0)), h) // 1
func HandleExpr[H Handler[H, R], R any](m Expr[R], h H) R {
	return evalFrames[handlerProcessor[H, R], R](m.Value, m.Frame, handlerProcessor[H, R]{h: h})
}

// RunPure evaluates an Expr that performs no effects.
// It panics on the first EffectFrame.
func RunPure[A any](m Expr[A]) A {
	return HandleExpr(m, pureEval[A]{})
}

// ExprBind sequences m into f.
func ExprBind[A, B any](m Expr[A], f func(A) Expr[B]) Expr[B] {
	if _, ok := m.Frame.(ReturnFrame); ok {
		return f(m.Value)
	}
	return ExprSuspend[B](ChainFrames(m.Frame, &BindFrame{
		F: func(a Erased) Expr[Erased] {
			return erase(f(unerase[A](a)))
		},
		Next: ReturnFrame{},
	}))
}

// ExprMap applies a pure function to the result of m.
func ExprMap[A, B any](m Expr[A], f func(A) B) Expr[B] {
	if _, ok := m.Frame.(ReturnFrame); ok {
		return ExprReturn(f(m.Value))
	}
	return ExprSuspend[B](ChainFrames(m.Frame, &MapFrame{
		F: func(a Erased) Erased {
			return f(unerase[A](a))
		},
		Next: ReturnFrame{},
	}))
}

// ExprThen evaluates m for its effects and continues with n.
func ExprThen[A, B any](m Expr[A], n Expr[B]) Expr[B] {
	if _, ok := m.Frame.(ReturnFrame); ok {
		return n
	}
	return ExprSuspend[B](ChainFrames(m.Frame, &ThenFrame{
		Second: erase(n),
		Next:   ReturnFrame{},
	}))
}

// ExprNot negates the boolean produced by m.
func ExprNot(m Expr[bool]) Expr[bool] {
	return ExprMap(m, not)
}
