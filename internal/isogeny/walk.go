// Package isogeny implements the CSIDH class-group action: a masked walk
// through the isogeny graph. Each random draw yields one point whose
// torsion components serve every prime still carrying steps; the point is
// carried across each accepted isogeny with the Meyer-Reith/Costello-Hisil
// x-only image formula, so a single draw can advance several primes at
// once. Dummy steps run the same Vélu accumulation and consume the same
// torsion component, keeping the per-prime operation count at the fixed
// budget regardless of the private exponent.
package isogeny

import (
	"io"

	"github.com/larchlabs/csidh/internal/curve"
	"github.com/larchlabs/csidh/internal/field"
	"github.com/larchlabs/csidh/internal/params"
	"github.com/larchlabs/csidh/internal/xlog"
)

// Budget is the fixed per-prime step count: every prime receives exactly
// Budget real-or-dummy isogeny applications over the life of a walk,
// independent of the private exponent. This is the walk's timing/power
// masking property, and the upper bound on a private exponent component.
const Budget = 10

// Walk applies exponents (one bound-checked component per prime in set,
// each in [0,Budget]) to the curve with coefficient startA, and returns
// the coefficient of the resulting curve. rng supplies the uniform Fp
// samples the walk draws on every iteration; log receives one trace line
// per real or dummy step (xlog.Discard if the caller does not care).
func Walk(set *params.Set, exponents []uint32, startA field.Elt, rng io.Reader, log xlog.Logger) (field.Elt, error) {
	n := set.N()
	path := make([]int, n)
	dummies := make([]int, n)
	for i, e := range exponents {
		path[i] = int(e)
		dummies[i] = Budget - int(e)
	}

	e := curve.New(set, startA)
	k := field.FromUint64(4, set.P)

	remaining := func() bool {
		for i := 0; i < n; i++ {
			if path[i] != 0 || dummies[i] != 0 {
				return true
			}
		}
		return false
	}

	for remaining() {
		lifted, err := e.RandomPoint(rng)
		if err != nil {
			return field.Elt{}, err
		}
		p := lifted.Mul(k)
		if p.IsInfinity() {
			continue
		}

		var active []int
		for i := 0; i < n; i++ {
			if path[i] > 0 || dummies[i] > 0 {
				active = append(active, i)
			}
		}

		for pos, i := range active {
			m := field.One(set.P)
			for _, j := range active[pos+1:] {
				m = m.MulSmall(set.Lis[j])
			}
			kPoint := p.Mul(m)
			if kPoint.IsInfinity() {
				// This draw lacks the li-torsion component; the prime
				// keeps its remaining steps for a later draw.
				continue
			}
			li := set.Lis[i]

			tau, sigma, err := veluSums(kPoint, li)
			if err != nil {
				return field.Elt{}, err
			}
			aPrime := tau.Mul(e.A2.Sub(sigma.MulSmall(3)))

			if path[i] > 0 {
				eNew := curve.New(set, aPrime)
				p = pushThroughIsogeny(eNew, p, kPoint, li)
				e = eNew
				path[i]--
				log.Tracef("real step prime=%d remaining_path=%d", li, path[i])
			} else {
				// Same Vélu work as the real branch, result discarded;
				// the li-torsion is consumed by multiplication instead
				// of by an isogeny kernel.
				liElt := field.FromUint64(li, set.P)
				p = p.Mul(liElt)
				dummies[i]--
				log.Tracef("dummy step prime=%d remaining_dummies=%d", li, dummies[i])
			}
			if path[i] == 0 && dummies[i] == 0 {
				k = k.MulSmall(li)
			}
		}
	}

	return e.A2, nil
}

// veluSums computes τ = ∏_{n=1}^{li-1} x(nK) and
// σ = ∑_{n=1}^{li-1} (x(nK) − x(nK)⁻¹), the two accumulators Vélu's
// formula for an li-isogeny needs, using K's Multiples iterator.
func veluSums(k curve.Point, li uint64) (tau, sigma field.Elt, err error) {
	mod := k.X.Modulus()
	tau = field.One(mod)
	sigma = field.Zero(mod)

	it := k.NewMultiples(int(li - 1))
	for {
		pt, ok := it.Next()
		if !ok {
			break
		}
		x, err := pt.AffineX()
		if err != nil {
			return field.Elt{}, field.Elt{}, err
		}
		xInv, err := x.Inv()
		if err != nil {
			return field.Elt{}, field.Elt{}, err
		}
		tau = tau.Mul(x)
		sigma = sigma.Add(x).Sub(xInv)
	}
	return tau, sigma, nil
}

// pushThroughIsogeny carries p across the li-isogeny whose kernel is
// generated by k, landing on target, via the Meyer-Reith/Costello-Hisil
// x-only image-point formula: for n = 1..⌊li/2⌋,
//
//	a_n = (X_p − Z_p)·(X_nK + Z_nK)
//	b_n = (X_p + Z_p)·(X_nK − Z_nK)
//
// accumulated into Tx = ∏(a_n+b_n), Tz = ∏(a_n−b_n), giving the image
// point (X_p·Tx² : Z_p·Tz²) on target.
func pushThroughIsogeny(target curve.Curve, p, k curve.Point, li uint64) curve.Point {
	xMinusZ := p.X.Sub(p.Z)
	xPlusZ := p.X.Add(p.Z)

	mod := p.X.Modulus()
	tx := field.One(mod)
	tz := field.One(mod)

	it := k.NewMultiples(int(li / 2))
	for {
		nk, ok := it.Next()
		if !ok {
			break
		}
		a := xMinusZ.Mul(nk.X.Add(nk.Z))
		b := xPlusZ.Mul(nk.X.Sub(nk.Z))
		tx = tx.Mul(a.Add(b))
		tz = tz.Mul(a.Sub(b))
	}

	newX := p.X.Mul(tx.Square())
	newZ := p.Z.Mul(tz.Square())
	return curve.NewPoint(target, newX, newZ)
}
