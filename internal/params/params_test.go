package params

import (
	"testing"

	"github.com/cronokirby/saferith"
	"github.com/stretchr/testify/require"
)

func TestStandardSetsHaveMatchingLengths(t *testing.T) {
	cases := []struct {
		name string
		set  *Set
		n    int
	}{
		{"CSIDH-512", CSIDH512, 74},
		{"CSIDH-1024", CSIDH1024, 130},
		{"CSIDH-1792", CSIDH1792, 201},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.n, tc.set.N())
			require.Equal(t, tc.n, len(tc.set.Lis))
			require.NotNil(t, tc.set.P)
			require.NotNil(t, tc.set.PMinus1Over2)
			require.NotNil(t, tc.set.Inverse4)
			require.NotNil(t, tc.set.Sqrt4P)
		})
	}
}

func TestPrimeListsAreDistinctAndOdd(t *testing.T) {
	for _, set := range []*Set{CSIDH512, CSIDH1024, CSIDH1792} {
		seen := make(map[uint64]bool, set.N())
		for _, li := range set.Lis {
			require.False(t, seen[li], "duplicate prime %d in %s", li, set.Name)
			seen[li] = true
			require.Equal(t, uint64(1), li%2, "prime %d in %s must be odd", li, set.Name)
		}
	}
}

func TestCsidh512StartsAtThree(t *testing.T) {
	require.Equal(t, uint64(3), CSIDH512.Lis[0])
	require.Equal(t, uint64(3), CSIDH1024.Lis[0])
}

func TestCsidh1792StartsAtThirtySeven(t *testing.T) {
	require.Equal(t, uint64(37), CSIDH1792.Lis[0])
}

func TestByteLenMatchesModulusSize(t *testing.T) {
	require.Equal(t, 64, CSIDH512.ByteLen)
	require.Equal(t, 128, CSIDH1024.ByteLen)
	require.Equal(t, 224, CSIDH1792.ByteLen)
}

// TestModulusMatchesPrimeList recomputes p = 4·∏lis − 1 from each set's
// prime list and checks it against the embedded modulus constant.
func TestModulusMatchesPrimeList(t *testing.T) {
	for _, set := range []*Set{CSIDH512, CSIDH1024, CSIDH1792} {
		t.Run(set.Name, func(t *testing.T) {
			width := len(set.P.Nat().Bytes())*8 + 64
			prod := new(saferith.Nat).SetUint64(4)
			for _, li := range set.Lis {
				prod.Mul(prod, new(saferith.Nat).SetUint64(li), width)
			}
			prod.Sub(prod, new(saferith.Nat).SetUint64(1), width)
			require.Equal(t, saferith.Choice(1), prod.Eq(set.P.Nat()))
		})
	}
}

// TestDerivedConstantsAreConsistent checks the precomputed constants
// against their defining relations: 4·Inverse4 ≡ 1 (mod p) and
// 2·PMinus1Over2 + 1 = p.
func TestDerivedConstantsAreConsistent(t *testing.T) {
	for _, set := range []*Set{CSIDH512, CSIDH1024, CSIDH1792} {
		t.Run(set.Name, func(t *testing.T) {
			four := new(saferith.Nat).SetUint64(4)
			one := new(saferith.Nat).SetUint64(1)
			require.Equal(t, saferith.Choice(1),
				new(saferith.Nat).ModMul(four, set.Inverse4, set.P).Eq(one))

			width := len(set.P.Nat().Bytes())*8 + 64
			p := new(saferith.Nat).Mul(set.PMinus1Over2, new(saferith.Nat).SetUint64(2), width)
			p.Add(p, one, width)
			require.Equal(t, saferith.Choice(1), p.Eq(set.P.Nat()))
		})
	}
}

func TestNewBuildsACustomSet(t *testing.T) {
	// A toy 3-prime set, structurally valid but not cryptographically
	// meaningful.
	set := New("toy", []uint64{3, 5, 7}, CSIDH512.P.Nat().Bytes(), CSIDH512.PMinus1Over2.Bytes(), CSIDH512.Inverse4.Bytes(), CSIDH512.Sqrt4P.Bytes(), CSIDH512.ByteLen)
	require.Equal(t, 3, set.N())
	require.Equal(t, "toy", set.Name)
}
