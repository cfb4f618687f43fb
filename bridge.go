// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kond

// Reify turns an Eff into an Expr. Each effect the Eff performs becomes an
// EffectFrame; the remainder after it is converted when that frame resumes.
//
// Reify runs m up to its first effect immediately. Callers that must not
// do work at construction wrap it, as ExprPlus and ExprCatchError do.
//
// Example:
//
//	cond := GetState(func(n int) Eff[bool] { return Pure(n > 0) })
//	expr := Reify(WhenM(cond, PutState(0, Pure(Unit{}))))
//	_, n := RunStateExpr[int, Unit](5, expr) // n == 0
func Reify[A any](m Eff[A]) Expr[A] {
	return fromResumed[A](m(toResumed[A]))
}

func fromResumed[A any](r Resumed) Expr[A] {
	s, ok := r.(suspension)
	if !ok {
		return ExprReturn(unerase[A](r))
	}
	return ExprSuspend[A](&EffectFrame{
		Operation: s.Op(),
		Resume:    func(v Erased) Erased { return s.Resume(v) },
		Next: &BindFrame{
			F: func(v Erased) Expr[Erased] {
				return erase(fromResumed[A](v))
			},
			Next: ReturnFrame{},
		},
	})
}

// Reflect turns an Expr into an Eff usable with Handle and the Cont
// runners. It is the inverse of Reify.
//
// Example:
//
//	guard := Reflect(ExprGuarded(func(n int) bool { return n > 0 }, 3))
//	RunOption(guard) // Some(3)
func Reflect[A any](m Expr[A]) Eff[A] {
	return func(k func(A) Resumed) Resumed {
		return evalFrames[reflectProcessor[A], Resumed](m.Value, m.Frame, reflectProcessor[A]{k: k})
	}
}

// reflectProcessor surfaces each EffectFrame as a suspension whose
// resumption continues evaluating the remaining frames.
type reflectProcessor[A any] struct{ k func(A) Resumed }

func (p reflectProcessor[A]) effect(f *EffectFrame, rest Frame) (Erased, Frame, Resumed, bool) {
	return nil, nil, &suspended[Erased]{
		op: f.Operation,
		k: func(v Erased) Resumed {
			return evalFrames[reflectProcessor[A], Resumed](f.Resume(v), rest, p)
		},
	}, false
}

func (p reflectProcessor[A]) done(current Erased) Resumed {
	return p.k(unerase[A](current))
}
