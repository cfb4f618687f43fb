// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kond_test

import (
	"testing"

	"code.hybscloud.com/kond"
)

func TestRunStateOptionKeepsStateOnEmpty(t *testing.T) {
	comp := kond.Then(incr(), kond.Then(incr(), kond.EmptyM[string]()))
	got, s := kond.RunStateOption(0, comp)
	if got.IsSome() || s != 2 {
		t.Fatalf("got %+v with state %d, want None with state 2", got, s)
	}
}

func TestRunStateOptionSuccess(t *testing.T) {
	comp := kond.Then(kond.GuardM(kond.Pure(true)), kond.Then(incr(), kond.Pure(7)))
	got, s := kond.RunStateOption(0, comp)
	if got != kond.Some(7) || s != 1 {
		t.Fatalf("got %+v with state %d, want Some(7) with state 1", got, s)
	}
}

func TestRunStateErrorKeepsStateOnThrow(t *testing.T) {
	comp := kond.Then(incr(), kond.ThrowError[string, int]("stop"))
	result, s := kond.RunStateError[int, string](0, comp)
	if e, ok := result.GetLeft(); !ok || e != "stop" || s != 1 {
		t.Fatalf("got %+v with state %d, want Left(stop) with state 1", result, s)
	}
}

func TestRunStateErrorExpr(t *testing.T) {
	comp := kond.ExprThen(exprIncr(), kond.ExprUnlessM(exprPositive(), kond.ExprThrowError[string, kond.Unit]("never")))
	result, s := kond.RunStateErrorExpr[int, string](0, comp)
	if !result.IsRight() || s != 1 {
		t.Fatalf("got %+v with state %d, want Right with state 1", result, s)
	}
}

func TestComposedHandlerRejectsOtherEffects(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for unhandled effect")
		}
	}()
	kond.RunStateOption(0, kond.ThrowError[string, int]("x"))
}
