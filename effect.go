// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kond

import "fmt"

// unhandledEffect panics for an operation no case of a handler matched.
// Kept out of line so that Dispatch methods stay inlineable.
//
//go:noinline
func unhandledEffect(handler string, op Operation) {
	panic(fmt.Sprintf("kond: unhandled effect %T in %s", op, handler))
}

// Operation is the dynamic type of effect operations seen by a Handler.
type Operation any

// Resumed is the dynamic type of values passed back into a suspended
// computation and of the answers of effectful computations.
type Resumed any

// Op is the F-bounded constraint for effect operations.
// A is the type of the value the operation resumes with.
//
// Example:
//
//	type Ask[E any] struct{ kond.Phantom[E] }
type Op[O Op[O, A], A any] interface {
	OpResult() A
}

// Phantom is a zero-size embeddable that satisfies Op for result type A.
type Phantom[A any] struct{}

// OpResult is a type marker only and is never called.
func (Phantom[A]) OpResult() A { panic("phantom") }

// Handler is the F-bounded interface for effect interpreters.
// Dispatch returns (resumeValue, true) to continue the suspended
// computation, or (finalResult, false) to abandon it with finalResult.
type Handler[H Handler[H, R], R any] interface {
	Dispatch(op Operation) (Resumed, bool)
}

type handlerFunc[R any] struct {
	f func(op Operation) (Resumed, bool)
}

func (h *handlerFunc[R]) Dispatch(op Operation) (Resumed, bool) {
	return h.f(op)
}

// HandleFunc adapts a dispatch function to a Handler.
func HandleFunc[R any](f func(op Operation) (Resumed, bool)) *handlerFunc[R] {
	return &handlerFunc[R]{f: f}
}

// suspension is what an effectful computation returns in place of its
// answer when it stops at an operation.
type suspension interface {
	Op() Operation
	Resume(Resumed) Resumed
}

// suspended is the only suspension implementation. k is the typed
// continuation captured at the point the operation was performed.
type suspended[A any] struct {
	op Operation
	k  func(A) Resumed
}

func (s *suspended[A]) Op() Operation { return s.op }

func (s *suspended[A]) Resume(v Resumed) Resumed {
	return s.k(unerase[A](v))
}

// unerase recovers an A from an erased value. A nil value stands for the
// zero A, which also covers interface-typed A holding nil.
func unerase[A any](v Erased) A {
	if v == nil {
		var zero A
		return zero
	}
	return v.(A)
}

// toResumed is the entry continuation for effectful runs.
func toResumed[A any](a A) Resumed { return a }

// Perform suspends the computation on op. The handler in scope decides
// whether and with what value it resumes.
func Perform[O Op[O, A], A any](op O) Eff[A] {
	return func(k func(A) Resumed) Resumed {
		return &suspended[A]{op: op, k: k}
	}
}

// Handle runs m to completion, interpreting its effects with h.
//
// Example:
//
//	n := kond.Handle(comp, kond.HandleFunc[int](func(op kond.Operation) (kond.Resumed, bool) {
//		switch op.(type) {
//		case Ask[int]:
//			return 21, true
//		default:
//			panic("unhandled effect")
//		}
//	}))
func Handle[H Handler[H, R], R any](m Eff[R], h H) R {
	return dispatch[H, R](m(toResumed[R]), h)
}

// dispatch is the trampoline shared by every Cont runner. Each resumption
// returns to this loop, so deep effect chains do not grow the stack.
func dispatch[H Handler[H, R], R any](result Resumed, h H) R {
	for {
		s, ok := result.(suspension)
		if !ok {
			return unerase[R](result)
		}
		v, resume := h.Dispatch(s.Op())
		if !resume {
			return unerase[R](v)
		}
		result = s.Resume(v)
	}
}
