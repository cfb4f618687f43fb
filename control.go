// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kond

// Delimited interception of effects. Plus and CatchError are built on it:
// each runs a body up to its own answer and replaces one kind of failure
// with an alternative computation.

// intercept delimits an effectful run. Suspensions whose operation is
// claimed by claim are replaced by the computation it returns; every
// other suspension is forwarded to the enclosing handler and intercepted
// again after it resumes. The final value of the delimited run is passed
// to k, outside the delimiter.
func intercept[A any](result Resumed, k func(A) Resumed, claim func(Operation) (Eff[A], bool)) Resumed {
	s, ok := result.(suspension)
	if !ok {
		return k(unerase[A](result))
	}
	if alt, claimed := claim(s.Op()); claimed {
		return alt(k)
	}
	return &suspended[Resumed]{
		op: s.Op(),
		k: func(v Resumed) Resumed {
			return intercept(s.Resume(v), k, claim)
		},
	}
}
