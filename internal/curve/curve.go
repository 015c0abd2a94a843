// Package curve implements supersingular Montgomery curves over Fp and
// x-only arithmetic on their points: doubling, differential addition, the
// Montgomery ladder, a consecutive-multiples iterator, x-coordinate
// lifting, and the probabilistic supersingularity test.
package curve

import (
	"io"

	"github.com/larchlabs/csidh/internal/field"
	"github.com/larchlabs/csidh/internal/params"
)

// Curve is a Montgomery curve E_A: y² = x³ + A·x² + x over Fp, represented
// by its A coefficient and the cached A24 = (A+2)·4⁻¹ the point-arithmetic
// formulas consume.
type Curve struct {
	Params *params.Set
	A2     field.Elt
	A24    field.Elt
}

// New builds the curve E_A for the given A, deriving A24 once.
func New(p *params.Set, a2 field.Elt) Curve {
	two := field.FromUint64(2, p.P)
	inv4 := field.FromNat(p.Inverse4, p.P)
	a24 := a2.Add(two).Mul(inv4)
	return Curve{Params: p, A2: a2, A24: a24}
}

// Lift tests whether x is the x-coordinate of a point on E_A: it is iff
// n = x³+A·x²+x is a quadratic residue mod p, which — since p ≡ 3 (mod 4) —
// is equivalent to n^((p−1)/2) == 1. On success it returns the point (x:1);
// the ok result is false when x lies on the twist instead.
func (c Curve) Lift(x field.Elt) (p Point, ok bool) {
	xSquare := x.Square()
	n := x.Mul(xSquare).Add(c.A2.Mul(xSquare)).Add(x)
	one := field.One(c.Params.P)
	if n.Pow(c.Params.PMinus1Over2).Equal(one) {
		return NewPoint(c, x, one), true
	}
	return Point{}, false
}

// RandomPoint draws uniform x-coordinates from rng until one lifts to a
// point on E_A, and returns that point.
func (c Curve) RandomPoint(rng io.Reader) (Point, error) {
	buf := make([]byte, c.Params.ByteLen)
	for {
		if _, err := io.ReadFull(rng, buf); err != nil {
			return Point{}, err
		}
		x := field.FromBytes(buf, c.Params.P)
		if pt, ok := c.Lift(x); ok {
			return pt, nil
		}
	}
}

// IsSupersingular implements the probabilistic Sutherland supersingularity
// test: accumulate a cofactor d over the primes whose torsion is absent
// from a random point's order, and accept once d exceeds ⌈4√p⌉. A curve
// whose point survives multiplication by its full claimed order is
// rejected outright.
func (c Curve) IsSupersingular(rng io.Reader) (bool, error) {
	point, err := c.RandomPoint(rng)
	if err != nil {
		return false, err
	}

	p := c.Params
	d := field.One(p.P)
	sqrt4p := field.FromNat(p.Sqrt4P, p.P)

	for i, li := range p.Lis {
		value := field.FromUint64(4, p.P)
		for j, lj := range p.Lis {
			if j != i {
				value = value.MulSmall(lj)
			}
		}

		q := point.Mul(value)
		liElt := field.FromUint64(li, p.P)
		if !q.Mul(liElt).IsInfinity() {
			return false, nil
		}
		if q.IsInfinity() {
			d = d.MulSmall(li)
		}
		if d.Cmp(sqrt4p) > 0 {
			return true, nil
		}
	}
	return c.IsSupersingular(rng)
}
