package curve

import (
	"testing"

	"github.com/larchlabs/csidh/internal/field"
	"github.com/larchlabs/csidh/internal/params"
	"github.com/stretchr/testify/require"
)

func findLiftablePoint(t *testing.T, c Curve) Point {
	t.Helper()
	for i := uint64(1); i < 1000; i++ {
		x := field.FromUint64(i, c.Params.P)
		if p, ok := c.Lift(x); ok {
			return p
		}
	}
	t.Fatal("no liftable x found in [1,1000) for this curve")
	return Point{}
}

func zeroCurve512() Curve {
	return New(params.CSIDH512, field.Zero(params.CSIDH512.P))
}

func TestDoubleMatchesMulByTwo(t *testing.T) {
	c := zeroCurve512()
	p := findLiftablePoint(t, c)
	two := field.FromUint64(2, params.CSIDH512.P)
	require.True(t, p.Double().Equal(p.Mul(two)))
}

func TestMultiplesLastElementMatchesMul(t *testing.T) {
	c := zeroCurve512()
	p := findLiftablePoint(t, c)
	const d = 7

	it := p.NewMultiples(d)
	var last Point
	for i := 0; i < d; i++ {
		pt, ok := it.Next()
		require.True(t, ok)
		last = pt
	}
	_, ok := it.Next()
	require.False(t, ok, "iterator must be finite and produce exactly d elements")

	scalar := field.FromUint64(d, params.CSIDH512.P)
	require.True(t, last.Equal(p.Mul(scalar)))
}

func TestMultiplesFirstElementIsP(t *testing.T) {
	c := zeroCurve512()
	p := findLiftablePoint(t, c)
	it := p.NewMultiples(3)
	first, ok := it.Next()
	require.True(t, ok)
	require.True(t, first.Equal(p))
}

func TestMultiplesSecondElementMatchesDouble(t *testing.T) {
	c := zeroCurve512()
	p := findLiftablePoint(t, c)
	it := p.NewMultiples(2)
	_, ok := it.Next()
	require.True(t, ok)
	second, ok := it.Next()
	require.True(t, ok)
	require.True(t, second.Equal(p.Double()))
}

func TestInfinityIsInfinity(t *testing.T) {
	c := zeroCurve512()
	require.True(t, Infinity(c).IsInfinity())
}

func TestLiftAcceptsSomeAndRejectsOthers(t *testing.T) {
	c := zeroCurve512()
	accepted, rejected := 0, 0
	for i := uint64(1); i <= 64; i++ {
		if _, ok := c.Lift(field.FromUint64(i, params.CSIDH512.P)); ok {
			accepted++
		} else {
			rejected++
		}
	}
	// Roughly half of all x-coordinates lift to a point on E_A versus its
	// twist; over 64 samples both buckets should be non-empty.
	require.Greater(t, accepted, 0)
	require.Greater(t, rejected, 0)
}

func TestDiffAddAndDoubleMatchesSeparateFormulas(t *testing.T) {
	c := zeroCurve512()
	p := findLiftablePoint(t, c)
	q := p.Double()

	sum, doubled := p.DiffAddAndDouble(q, p)
	require.True(t, doubled.Equal(p.Double()))
	require.True(t, sum.Equal(q.DifferentialAdd(p, p)))
}

func TestDifferentialAddMatchesLadderForSmallScalars(t *testing.T) {
	c := zeroCurve512()
	p := findLiftablePoint(t, c)
	two := p.Double()
	// 3P via differential addition from P, 2P and their difference P.
	three := two.DifferentialAdd(p, p)
	threeScalar := field.FromUint64(3, params.CSIDH512.P)
	require.True(t, three.Equal(p.Mul(threeScalar)))
}
