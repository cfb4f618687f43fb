// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kond

// Either is Left (failure) or Right (success).
type Either[E, A any] struct {
	right bool
	err   E
	value A
}

// Left builds a failure.
func Left[E, A any](e E) Either[E, A] {
	return Either[E, A]{err: e}
}

// Right builds a success.
func Right[E, A any](a A) Either[E, A] {
	return Either[E, A]{right: true, value: a}
}

// IsRight reports success.
func (e Either[E, A]) IsRight() bool { return e.right }

// IsLeft reports failure.
func (e Either[E, A]) IsLeft() bool { return !e.right }

// GetRight returns the success value and true, or zero and false.
func (e Either[E, A]) GetRight() (A, bool) {
	if e.right {
		return e.value, true
	}
	var zero A
	return zero, false
}

// GetLeft returns the failure value and true, or zero and false.
func (e Either[E, A]) GetLeft() (E, bool) {
	if e.right {
		var zero E
		return zero, false
	}
	return e.err, true
}

// MatchEither calls onLeft or onRight depending on the side.
func MatchEither[E, A, T any](e Either[E, A], onLeft func(E) T, onRight func(A) T) T {
	if e.right {
		return onRight(e.value)
	}
	return onLeft(e.err)
}

// MapEither applies f to a Right value.
func MapEither[E, A, B any](e Either[E, A], f func(A) B) Either[E, B] {
	if e.right {
		return Right[E](f(e.value))
	}
	return Left[E, B](e.err)
}

// FlatMapEither sequences e into f. A Left short-circuits and f is not
// called.
func FlatMapEither[E, A, B any](e Either[E, A], f func(A) Either[E, B]) Either[E, B] {
	if e.right {
		return f(e.value)
	}
	return Left[E, B](e.err)
}

// MapLeftEither applies f to a Left value.
func MapLeftEither[E, F, A any](e Either[E, A], f func(E) F) Either[F, A] {
	if e.right {
		return Right[F](e.value)
	}
	return Left[F, A](f(e.err))
}
