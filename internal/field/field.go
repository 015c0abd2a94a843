// Package field implements Fp arithmetic for a CSIDH parameter set's prime
// p. The multi-precision and Montgomery-reduction work is delegated to
// saferith's constant-time Nat/Modulus arithmetic rather than a hand-rolled
// fixed-limb reduction; this package contributes the residue-class type and
// the operation set the curve and isogeny layers consume.
package field

import (
	"crypto/subtle"
	"errors"

	"github.com/cronokirby/saferith"
)

// ErrZeroInverse is returned by Inv when asked to invert the zero element.
var ErrZeroInverse = errors.New("csidh: inverse of zero field element")

// Elt is a residue class in Fp for some parameter set's modulus p, reduced
// and held ready for further modular arithmetic.
type Elt struct {
	nat *saferith.Nat
	mod *saferith.Modulus
}

// Zero returns the additive identity of Fp for modulus mod.
func Zero(mod *saferith.Modulus) Elt {
	return Elt{nat: new(saferith.Nat).SetUint64(0), mod: mod}
}

// One returns the multiplicative identity of Fp for modulus mod.
func One(mod *saferith.Modulus) Elt {
	return Elt{nat: new(saferith.Nat).SetUint64(1), mod: mod}
}

// FromUint64 lifts a small unsigned constant into Fp.
func FromUint64(v uint64, mod *saferith.Modulus) Elt {
	n := new(saferith.Nat).SetUint64(v)
	return Elt{nat: new(saferith.Nat).Mod(n, mod), mod: mod}
}

// FromBytes decodes a big-endian byte string into Fp, reducing it mod p.
func FromBytes(b []byte, mod *saferith.Modulus) Elt {
	n := new(saferith.Nat).SetBytes(b)
	return Elt{nat: new(saferith.Nat).Mod(n, mod), mod: mod}
}

// Bytes encodes e as a big-endian byte string of fixed width n.
func (e Elt) Bytes(n int) []byte {
	buf := make([]byte, n)
	raw := e.nat.Bytes()
	if len(raw) > n {
		raw = raw[len(raw)-n:]
	}
	copy(buf[n-len(raw):], raw)
	return buf
}

// Modulus returns the Fp modulus e is reduced with respect to.
func (e Elt) Modulus() *saferith.Modulus { return e.mod }

// Nat exposes the underlying reduced residue, for callers (the isogeny
// walk's scalar-multiplication call sites) that need a saferith.Nat rather
// than an Fp element — e.g. when a field value is reused as a ladder
// scalar.
func (e Elt) Nat() *saferith.Nat { return e.nat }

// Add returns e + other mod p.
func (e Elt) Add(other Elt) Elt {
	return Elt{nat: new(saferith.Nat).ModAdd(e.nat, other.nat, e.mod), mod: e.mod}
}

// Sub returns e - other mod p.
func (e Elt) Sub(other Elt) Elt {
	return Elt{nat: new(saferith.Nat).ModSub(e.nat, other.nat, e.mod), mod: e.mod}
}

// Neg returns -e mod p.
func (e Elt) Neg() Elt {
	zero := new(saferith.Nat).SetUint64(0)
	return Elt{nat: new(saferith.Nat).ModSub(zero, e.nat, e.mod), mod: e.mod}
}

// Mul returns e * other mod p.
func (e Elt) Mul(other Elt) Elt {
	return Elt{nat: new(saferith.Nat).ModMul(e.nat, other.nat, e.mod), mod: e.mod}
}

// MulSmall multiplies e by a small non-negative constant (e.g. the literal
// 3 in A' = τ·(A−3σ)).
func (e Elt) MulSmall(c uint64) Elt {
	return e.Mul(FromUint64(c, e.mod))
}

// Square returns e * e mod p.
func (e Elt) Square() Elt {
	return e.Mul(e)
}

// Pow returns e raised to the power exp mod p.
func (e Elt) Pow(exp *saferith.Nat) Elt {
	return Elt{nat: new(saferith.Nat).Exp(e.nat, exp, e.mod), mod: e.mod}
}

// Inv returns the multiplicative inverse of e mod p, or ErrZeroInverse if
// e is zero. Callers in this module never invoke Inv on a value that can
// be zero on a well-formed walk, so the error path is a backstop for
// broken inputs, not a steady-state outcome.
func (e Elt) Inv() (Elt, error) {
	if e.IsZero() {
		return Elt{}, ErrZeroInverse
	}
	return Elt{nat: new(saferith.Nat).ModInverse(e.nat, e.mod), mod: e.mod}, nil
}

// FromNat wraps an already-reduced saferith.Nat as an Fp element without
// performing any further reduction; callers must ensure n is already < p
// (true of the precomputed params.Set constants).
func FromNat(n *saferith.Nat, mod *saferith.Modulus) Elt {
	return Elt{nat: n, mod: mod}
}

// modulusByteLen returns a comparison/encoding width wide enough to hold
// any residue reduced by mod, with one byte of headroom for moduli whose
// bit length lands on a byte boundary.
func modulusByteLen(mod *saferith.Modulus) int {
	return len(mod.Nat().Bytes()) + 1
}

// Cmp compares the magnitudes of e and other's canonical residues. It is
// not constant-time and must only be used on values with no secrecy
// requirement, such as the public accumulator in the supersingularity
// test.
func (e Elt) Cmp(other Elt) int {
	width := modulusByteLen(e.mod)
	a, b := e.Bytes(width), other.Bytes(width)
	for i := range a {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// Equal reports whether e and other represent the same residue, in
// constant time with respect to the compared values.
func (e Elt) Equal(other Elt) bool {
	width := modulusByteLen(e.mod)
	return subtle.ConstantTimeCompare(e.Bytes(width), other.Bytes(width)) == 1
}

// IsZero reports whether e is the zero residue, in constant time.
func (e Elt) IsZero() bool {
	return e.Equal(Zero(e.mod))
}

// CondSwap swaps the contents of a and b when swap is true, via masked
// byte operations rather than a branch. The Montgomery ladder uses it to
// keep its two running points in fixed registers regardless of the
// processed scalar bit.
func CondSwap(swap bool, a, b *Elt) {
	mask := byte(0)
	if swap {
		mask = 0xFF
	}
	width := modulusByteLen(a.mod)
	ab := a.Bytes(width)
	bb := b.Bytes(width)
	for i := range ab {
		t := mask & (ab[i] ^ bb[i])
		ab[i] ^= t
		bb[i] ^= t
	}
	*a = FromBytes(ab, a.mod)
	*b = FromBytes(bb, b.mod)
}
