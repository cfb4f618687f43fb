// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kond

// Dictionary instances for the types this package knows about.
// Each is a zero-size value; A is the payload type of the result.

// Options is the Option instance. None is both the failure propagated by
// Bind and the empty element.
type Options[A any] struct{}

// Bind implements [Binder]. A None condition skips k.
func (Options[A]) Bind(cond Option[bool], k func(bool) Option[A]) Option[A] {
	return FlatMapOption(cond, k)
}

// Pure implements [Monad].
func (Options[A]) Pure(a A) Option[A] { return Some(a) }

// Empty implements [Alternative] with None.
func (Options[A]) Empty() Option[A] { return None[A]() }

// Eithers is the Either instance. It has no empty element, so GuardOf and
// GuardedOf do not accept it.
type Eithers[E, A any] struct{}

// Bind implements [Binder]. A Left condition is returned unchanged.
func (Eithers[E, A]) Bind(cond Either[E, bool], k func(bool) Either[E, A]) Either[E, A] {
	return FlatMapEither(cond, k)
}

// Pure implements [Monad] with Right.
func (Eithers[E, A]) Pure(a A) Either[E, A] { return Right[E](a) }

// Slices is the list instance. Bind runs k for every element of cond and
// concatenates the results; the empty element is an empty slice.
type Slices[A any] struct{}

// Bind implements [Binder].
func (Slices[A]) Bind(cond []bool, k func(bool) []A) []A {
	out := make([]A, 0, len(cond))
	for _, b := range cond {
		out = append(out, k(b)...)
	}
	return out
}

// Pure implements [Monad] with a one-element slice.
func (Slices[A]) Pure(a A) []A { return []A{a} }

// Empty implements [Alternative].
func (Slices[A]) Empty() []A { return []A{} }

// Thunks is the instance for deferred Go computations. Nothing runs until
// the returned func is called, and each call runs the condition again.
type Thunks[A any] struct{}

// Bind implements [Binder]. cond is called when the result is.
func (Thunks[A]) Bind(cond func() bool, k func(bool) func() A) func() A {
	return func() A {
		return k(cond())()
	}
}

// Pure implements [Monad].
func (Thunks[A]) Pure(a A) func() A {
	return func() A { return a }
}

// Conts adapts Cont to the dictionary combinators.
type Conts[R, A any] struct{}

// Bind implements [Binder] with [Bind].
func (Conts[R, A]) Bind(cond Cont[R, bool], k func(bool) Cont[R, A]) Cont[R, A] {
	return Bind(cond, k)
}

// Pure implements [Monad] with [Return].
func (Conts[R, A]) Pure(a A) Cont[R, A] { return Return[R](a) }

// Effs is Conts at the Eff answer type, with Empty as its empty element.
type Effs[A any] struct{ Conts[Resumed, A] }

// Empty implements [Alternative] with [EmptyM].
func (Effs[A]) Empty() Eff[A] { return EmptyM[A]() }

// Exprs adapts Expr to the dictionary combinators.
type Exprs[A any] struct{}

// Bind implements [Binder] with [ExprBind].
func (Exprs[A]) Bind(cond Expr[bool], k func(bool) Expr[A]) Expr[A] {
	return ExprBind(cond, k)
}

// Pure implements [Monad] with [ExprReturn].
func (Exprs[A]) Pure(a A) Expr[A] { return ExprReturn(a) }

// Empty implements [Alternative] with [ExprEmpty].
func (Exprs[A]) Empty() Expr[A] { return ExprEmpty[A]() }
