// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kond

// Capability dictionaries.
//
// Go has no higher-kinded types, so a monad family F is described by an
// instance value whose methods fix F at the payload types a combinator
// needs: MB is F[bool] and MA is F[A]. The instance is passed first and is
// usually a zero-size struct such as Options[A]. Strict values have already
// run whatever produced them, so the *Of combinators take each branch that
// may be skipped as a func() MA and call it only when it is selected.

// Binder sequences a condition F[bool] into a continuation producing F[A].
type Binder[MB, MA any] interface {
	Bind(cond MB, k func(bool) MA) MA
}

// Monad is a Binder that can also lift a plain A into F[A].
type Monad[MB, MA, A any] interface {
	Binder[MB, MA]
	Pure(a A) MA
}

// Alternative lifts values into F[A] and provides its empty element.
type Alternative[FA, A any] interface {
	Pure(a A) FA
	Empty() FA
}

// MonadPlus is a Monad with an empty element.
type MonadPlus[MB, MA, A any] interface {
	Monad[MB, MA, A]
	Empty() MA
}

// IfOf sequences cond and calls then or otherwise depending on its result.
func IfOf[M Binder[MB, MA], MB, MA any](m M, cond MB, then, otherwise func() MA) MA {
	return m.Bind(cond, func(b bool) MA {
		if b {
			return then()
		}
		return otherwise()
	})
}

// WhenOf calls action only if cond yields true, and is m.Pure(Unit{})
// otherwise.
func WhenOf[M Monad[MB, MU, Unit], MB, MU any](m M, cond MB, action func() MU) MU {
	return IfOf[M, MB, MU](m, cond, action, func() MU { return m.Pure(Unit{}) })
}

// UnlessOf calls action only if cond yields false.
func UnlessOf[M Monad[MB, MU, Unit], MB, MU any](m M, cond MB, action func() MU) MU {
	return IfOf[M, MB, MU](m, cond, func() MU { return m.Pure(Unit{}) }, action)
}

// AndOf is short-circuit conjunction. rhs is called only if lhs yields true.
func AndOf[M Monad[MB, MB, bool], MB any](m M, lhs MB, rhs func() MB) MB {
	return IfOf[M, MB, MB](m, lhs, rhs, func() MB { return m.Pure(false) })
}

// OrOf is short-circuit disjunction. rhs is called only if lhs yields false.
func OrOf[M Monad[MB, MB, bool], MB any](m M, lhs MB, rhs func() MB) MB {
	return IfOf[M, MB, MB](m, lhs, func() MB { return m.Pure(true) }, rhs)
}

// GuardOf is m.Pure(Unit{}) if cond yields true and m.Empty() if it yields
// false. A cond that fails in m's own way is propagated by Bind.
func GuardOf[M MonadPlus[MB, MU, Unit], MB, MU any](m M, cond MB) MU {
	return IfOf[M, MB, MU](m, cond, func() MU { return m.Pure(Unit{}) }, m.Empty)
}

// GuardedOf is f.Pure(v) if p(v) holds and f.Empty() otherwise.
// It needs no Bind.
func GuardedOf[F Alternative[FA, A], FA, A any](f F, p func(A) bool, v A) FA {
	if p(v) {
		return f.Pure(v)
	}
	return f.Empty()
}
