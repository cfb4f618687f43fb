// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kond_test

import (
	"testing"

	"code.hybscloud.com/kond"
)

func isEven(n int) bool { return n%2 == 0 }

// incr adds one to an int state.
func incr() kond.Eff[kond.Unit] {
	return kond.ModifyState(func(n int) int { return n + 1 }, func(int) kond.Eff[kond.Unit] {
		return kond.Pure(kond.Unit{})
	})
}

// positive reads an int state and reports whether it is above zero.
func positive() kond.Eff[bool] {
	return kond.GetState(func(n int) kond.Eff[bool] {
		return kond.Pure(n > 0)
	})
}

func TestWhenMTrueRunsAction(t *testing.T) {
	n := 0
	kond.Run(kond.WhenM(kond.Return[kond.Unit](true), counted[kond.Unit](&n, kond.Unit{})))
	if n != 1 {
		t.Fatalf("action ran %d times, want 1", n)
	}
}

func TestWhenMFalseSkipsAction(t *testing.T) {
	n := 0
	kond.Run(kond.WhenM(kond.Return[kond.Unit](false), counted[kond.Unit](&n, kond.Unit{})))
	if n != 0 {
		t.Fatalf("action ran %d times, want 0", n)
	}
}

func TestWhenMConditionRunsOnce(t *testing.T) {
	c, n := 0, 0
	kond.Run(kond.WhenM(counted[kond.Unit](&c, true), counted[kond.Unit](&n, kond.Unit{})))
	if c != 1 || n != 1 {
		t.Fatalf("cond ran %d, action ran %d; want 1, 1", c, n)
	}
}

func TestWhenMState(t *testing.T) {
	if s := kond.ExecState(0, kond.WhenM(kond.Pure(true), incr())); s != 1 {
		t.Fatalf("state = %d, want 1", s)
	}
	if s := kond.ExecState(0, kond.WhenM(kond.Pure(false), incr())); s != 0 {
		t.Fatalf("state = %d, want 0", s)
	}
	// The condition sees effects sequenced before it.
	if s := kond.ExecState(0, kond.Then(incr(), kond.WhenM(positive(), incr()))); s != 2 {
		t.Fatalf("state = %d, want 2", s)
	}
}

func TestUnlessM(t *testing.T) {
	if s := kond.ExecState(0, kond.UnlessM(kond.Pure(false), incr())); s != 1 {
		t.Fatalf("UnlessM(false): state = %d, want 1", s)
	}
	if s := kond.ExecState(0, kond.UnlessM(kond.Pure(true), incr())); s != 0 {
		t.Fatalf("UnlessM(true): state = %d, want 0", s)
	}
	if s := kond.ExecState(0, kond.UnlessM(positive(), incr())); s != 1 {
		t.Fatalf("UnlessM(positive) from 0: state = %d, want 1", s)
	}
}

func TestUnlessMSkipsForcedAction(t *testing.T) {
	kond.Run(kond.UnlessM(kond.Return[kond.Unit](true), forced[kond.Unit, kond.Unit]()))
}

func TestIfM(t *testing.T) {
	if got := kond.Run(kond.IfM(kond.Return[int](true), kond.Return[int](1), kond.Return[int](2))); got != 1 {
		t.Fatalf("IfM(true) = %d, want 1", got)
	}
	if got := kond.Run(kond.IfM(kond.Return[int](false), kond.Return[int](1), kond.Return[int](2))); got != 2 {
		t.Fatalf("IfM(false) = %d, want 2", got)
	}
}

func TestIfMRunsExactlyOneBranch(t *testing.T) {
	x, y := 0, 0
	m := kond.IfM(kond.Return[string](true), counted[string](&x, "then"), counted[string](&y, "else"))
	if got := kond.Run(m); got != "then" {
		t.Fatalf("got %q, want %q", got, "then")
	}
	if x != 1 || y != 0 {
		t.Fatalf("then ran %d, else ran %d; want 1, 0", x, y)
	}

	x, y = 0, 0
	m = kond.IfM(kond.Return[string](false), counted[string](&x, "then"), counted[string](&y, "else"))
	if got := kond.Run(m); got != "else" {
		t.Fatalf("got %q, want %q", got, "else")
	}
	if x != 0 || y != 1 {
		t.Fatalf("then ran %d, else ran %d; want 0, 1", x, y)
	}
}

func TestAndM(t *testing.T) {
	for _, tc := range []struct{ l, r, want bool }{
		{false, false, false},
		{false, true, false},
		{true, false, false},
		{true, true, true},
	} {
		if got := kond.Run(kond.AndM(kond.Return[bool](tc.l), kond.Return[bool](tc.r))); got != tc.want {
			t.Fatalf("AndM(%v, %v) = %v, want %v", tc.l, tc.r, got, tc.want)
		}
	}
}

func TestOrM(t *testing.T) {
	for _, tc := range []struct{ l, r, want bool }{
		{false, false, false},
		{false, true, true},
		{true, false, true},
		{true, true, true},
	} {
		if got := kond.Run(kond.OrM(kond.Return[bool](tc.l), kond.Return[bool](tc.r))); got != tc.want {
			t.Fatalf("OrM(%v, %v) = %v, want %v", tc.l, tc.r, got, tc.want)
		}
	}
}

func TestAndMShortCircuit(t *testing.T) {
	if kond.Run(kond.AndM(kond.Return[bool](false), forced[bool, bool]())) {
		t.Fatal("AndM(false, _) = true")
	}
	got := kond.RunError[string](kond.AndM(kond.Pure(false), kond.ThrowError[string, bool]("rhs")))
	if v, ok := got.GetRight(); !ok || v {
		t.Fatalf("AndM(false, throw) = %+v, want Right(false)", got)
	}
}

func TestOrMShortCircuit(t *testing.T) {
	if !kond.Run(kond.OrM(kond.Return[bool](true), forced[bool, bool]())) {
		t.Fatal("OrM(true, _) = false")
	}
	got := kond.RunError[string](kond.OrM(kond.Pure(true), kond.ThrowError[string, bool]("rhs")))
	if v, ok := got.GetRight(); !ok || !v {
		t.Fatalf("OrM(true, throw) = %+v, want Right(true)", got)
	}
}

func TestAndMEvaluatesRHSWhenNeeded(t *testing.T) {
	got := kond.RunError[string](kond.AndM(kond.Pure(true), kond.ThrowError[string, bool]("rhs")))
	if e, ok := got.GetLeft(); !ok || e != "rhs" {
		t.Fatalf("AndM(true, throw) = %+v, want Left(rhs)", got)
	}
}

func TestAndOrPropagateLHSFailure(t *testing.T) {
	rhs := kond.Then(incr(), kond.Pure(true))

	got, s := kond.RunStateOption(0, kond.AndM(kond.EmptyM[bool](), rhs))
	if got.IsSome() || s != 0 {
		t.Fatalf("AndM(empty, rhs) = %+v with state %d, want None with state 0", got, s)
	}
	got, s = kond.RunStateOption(0, kond.OrM(kond.EmptyM[bool](), rhs))
	if got.IsSome() || s != 0 {
		t.Fatalf("OrM(empty, rhs) = %+v with state %d, want None with state 0", got, s)
	}

	e := kond.RunError[string](kond.OrM(kond.ThrowError[string, bool]("lhs"), kond.ThrowError[string, bool]("rhs")))
	if err, ok := e.GetLeft(); !ok || err != "lhs" {
		t.Fatalf("OrM(throw lhs, throw rhs) = %+v, want Left(lhs)", e)
	}
}

func TestGuardM(t *testing.T) {
	if got := kond.RunOption(kond.GuardM(kond.Pure(true))); got != kond.Some(kond.Unit{}) {
		t.Fatalf("GuardM(true) = %+v, want Some", got)
	}
	if got := kond.RunOption(kond.GuardM(kond.Pure(false))); got.IsSome() {
		t.Fatalf("GuardM(false) = %+v, want None", got)
	}
	if got := kond.RunOption(kond.GuardM(kond.EmptyM[bool]())); got.IsSome() {
		t.Fatalf("GuardM(empty) = %+v, want None", got)
	}
}

func TestGuardMStopsSequence(t *testing.T) {
	m := kond.Then(kond.GuardM(positive()), kond.Then(incr(), kond.Pure("after")))

	got, s := kond.RunStateOption(0, m)
	if got.IsSome() || s != 0 {
		t.Fatalf("from 0: %+v with state %d, want None with state 0", got, s)
	}
	got, s = kond.RunStateOption(5, m)
	if got != kond.Some("after") || s != 6 {
		t.Fatalf("from 5: %+v with state %d, want Some(after) with state 6", got, s)
	}
}

func TestGuarded(t *testing.T) {
	if got := kond.RunOption(kond.Guarded(isEven, 2)); got != kond.Some(2) {
		t.Fatalf("Guarded(isEven, 2) = %+v, want Some(2)", got)
	}
	if got := kond.RunOption(kond.Guarded(isEven, 3)); got.IsSome() {
		t.Fatalf("Guarded(isEven, 3) = %+v, want None", got)
	}
}

func TestGuardedWithPlus(t *testing.T) {
	m := kond.Plus(kond.Guarded(isEven, 3), kond.Pure(0))
	if got := kond.RunOption(m); got != kond.Some(0) {
		t.Fatalf("got %+v, want Some(0)", got)
	}
}
