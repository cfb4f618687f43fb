// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kond

// Option is a value that may be absent. None is the empty element of the
// Option Alternative.
type Option[A any] struct {
	some  bool
	value A
}

// Some wraps a present value.
func Some[A any](a A) Option[A] {
	return Option[A]{some: true, value: a}
}

// None is the absent value.
func None[A any]() Option[A] {
	return Option[A]{}
}

// IsSome reports whether a value is present.
func (o Option[A]) IsSome() bool { return o.some }

// IsNone reports whether the value is absent.
func (o Option[A]) IsNone() bool { return !o.some }

// Get returns the value and true, or the zero value and false.
func (o Option[A]) Get() (A, bool) {
	return o.value, o.some
}

// GetOrElse returns the value, or def when absent.
func (o Option[A]) GetOrElse(def A) A {
	if o.some {
		return o.value
	}
	return def
}

// MatchOption calls onSome with the value, or onNone when absent.
func MatchOption[A, T any](o Option[A], onNone func() T, onSome func(A) T) T {
	if o.some {
		return onSome(o.value)
	}
	return onNone()
}

// MapOption applies f to a present value.
func MapOption[A, B any](o Option[A], f func(A) B) Option[B] {
	if o.some {
		return Some(f(o.value))
	}
	return None[B]()
}

// FlatMapOption sequences o into f.
func FlatMapOption[A, B any](o Option[A], f func(A) Option[B]) Option[B] {
	if o.some {
		return f(o.value)
	}
	return None[B]()
}

// OrElseOption returns o if present, otherwise the result of alt.
// alt is not called when o is present.
func OrElseOption[A any](o Option[A], alt func() Option[A]) Option[A] {
	if o.some {
		return o
	}
	return alt()
}
