package curve

import "github.com/larchlabs/csidh/internal/field"

// Point is an x-only projective point (X:Z) on some Montgomery curve E_A.
// It carries a copy of the owning curve's A24 rather than a reference to
// the curve itself, so arithmetic is self-contained and the Multiples
// iterator below stays free of curve-lifetime entanglement.
type Point struct {
	X, Z field.Elt
	a24  field.Elt
}

// NewPoint builds the point (x:z) on c.
func NewPoint(c Curve, x, z field.Elt) Point {
	return Point{X: x, Z: z, a24: c.A24}
}

// Infinity returns the point at infinity on c.
func Infinity(c Curve) Point {
	return Point{X: field.One(c.Params.P), Z: field.Zero(c.Params.P), a24: c.A24}
}

// IsInfinity reports whether p represents the point at infinity (Z == 0).
func (p Point) IsInfinity() bool {
	return p.Z.IsZero()
}

// AffineX returns the affine x-coordinate X·Z⁻¹. It is only defined when p
// is not the point at infinity.
func (p Point) AffineX() (field.Elt, error) {
	zInv, err := p.Z.Inv()
	if err != nil {
		return field.Elt{}, err
	}
	return p.X.Mul(zInv), nil
}

// Equal reports whether p and other are the same point: both infinity, or
// X1·Z2 == Z1·X2.
func (p Point) Equal(other Point) bool {
	if p.IsInfinity() || other.IsInfinity() {
		return p.IsInfinity() == other.IsInfinity()
	}
	return p.X.Mul(other.Z).Equal(p.Z.Mul(other.X))
}

// Double computes 2P via the standard XZ doubling formula using the
// cached A24.
func (p Point) Double() Point {
	a := p.X.Add(p.Z)
	aa := a.Square()
	b := p.X.Sub(p.Z)
	bb := b.Square()
	c := aa.Sub(bb)
	x3 := aa.Mul(bb)
	z3 := c.Mul(bb.Add(p.a24.Mul(c)))
	return Point{X: x3, Z: z3, a24: p.a24}
}

// DifferentialAdd returns p+other, given diff = p-other. The formula
// degenerates when p == other; callers must use Double in that case
// instead. diff must not be the point at infinity.
func (p Point) DifferentialAdd(other, diff Point) Point {
	a := other.X.Add(other.Z)
	b := other.X.Sub(other.Z)
	c := p.X.Add(p.Z)
	d := p.X.Sub(p.Z)
	da := d.Mul(a)
	cb := c.Mul(b)
	sum := da.Add(cb)
	dif := da.Sub(cb)
	x5 := diff.Z.Mul(sum.Square())
	z5 := diff.X.Mul(dif.Square())
	return Point{X: x5, Z: z5, a24: p.a24}
}

// DiffAddAndDouble returns both p+other (given diff = p-other) and 2p,
// sharing the (X±Z) intermediates between the two formulas the way a
// single Montgomery-ladder step consumes them.
func (p Point) DiffAddAndDouble(other, diff Point) (sum, doubled Point) {
	a := other.X.Add(other.Z)
	b := other.X.Sub(other.Z)
	c := p.X.Add(p.Z)
	d := p.X.Sub(p.Z)

	da := d.Mul(a)
	cb := c.Mul(b)
	s := da.Add(cb)
	t := da.Sub(cb)
	sum = Point{X: diff.Z.Mul(s.Square()), Z: diff.X.Mul(t.Square()), a24: p.a24}

	cc := c.Square()
	dd := d.Square()
	e := cc.Sub(dd)
	doubled = Point{X: cc.Mul(dd), Z: e.Mul(dd.Add(p.a24.Mul(e))), a24: p.a24}
	return sum, doubled
}

func scalarBitsMSBFirst(scalar field.Elt) []bool {
	raw := scalar.Nat().Bytes()
	bits := make([]bool, 0, len(raw)*8)
	started := false
	for _, by := range raw {
		for i := 7; i >= 0; i-- {
			bit := (by>>uint(i))&1 == 1
			if !started {
				if !bit {
					continue
				}
				started = true
			}
			bits = append(bits, bit)
		}
	}
	if !started {
		return []bool{false}
	}
	return bits
}

// Mul computes p·scalar via the Montgomery ladder, clocked by the bits of
// scalar from MSB−1 down to 0, starting from (x0,x1) = (P,2P). The result
// is undefined when scalar is zero; the walk never multiplies by zero
// (only by a prime ℓᵢ, a product of distinct ℓᵢ's, or the cofactor 4).
//
// Each step conditionally swaps the running pair (x0,x1) before and after
// a single fixed (diff-add, double) computation rather than branching on
// the scalar bit — the same work executes either way.
func (p Point) Mul(scalar field.Elt) Point {
	bits := scalarBitsMSBFirst(scalar)
	x0 := p
	x1 := p.Double()
	for _, b := range bits[1:] {
		condSwapPoints(b, &x0, &x1)
		sum, doubled := x0.DiffAddAndDouble(x1, p)
		x0, x1 = doubled, sum
		condSwapPoints(b, &x0, &x1)
	}
	return x0
}

func condSwapPoints(swap bool, a, b *Point) {
	field.CondSwap(swap, &a.X, &b.X)
	field.CondSwap(swap, &a.Z, &b.Z)
}

// Multiples is a finite, non-restartable lazy iterator over P, 2P, 3P, ...,
// dP. Each element after the first is computed via DifferentialAdd from
// the previous two multiples, except the very first step (1P → 2P), which
// bootstraps via Double since the differential-add formula degenerates
// when its two input points coincide.
type Multiples struct {
	base     Point
	nTimesP  Point
	nMinus1P Point
	n        int
	left     int
}

// NewMultiples returns an iterator yielding p, 2p, ..., d·p.
func (p Point) NewMultiples(d int) *Multiples {
	return &Multiples{base: p, left: d}
}

// Next returns the next multiple in the sequence, or ok=false once d
// elements have been produced.
func (m *Multiples) Next() (pt Point, ok bool) {
	if m.left == 0 {
		return Point{}, false
	}
	switch m.n {
	case 0:
		m.nTimesP = m.base
		m.n = 1
	case 1:
		next := m.nTimesP.Double()
		m.nMinus1P = m.nTimesP
		m.nTimesP = next
		m.n++
	default:
		next := m.nTimesP.DifferentialAdd(m.base, m.nMinus1P)
		m.nMinus1P = m.nTimesP
		m.nTimesP = next
		m.n++
	}
	m.left--
	return m.nTimesP, true
}
