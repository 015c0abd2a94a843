// Package csidh implements the core of a CSIDH (commutative supersingular
// isogeny Diffie-Hellman) non-interactive key exchange: private keys are
// bounded exponent vectors over a fixed list of small primes, public keys
// and shared secrets are Montgomery curve coefficients reached by walking
// the class-group action.
//
// Random-number sourcing, wire framing beyond the fixed-width encoding
// documented here, and command-line tooling are left to callers — this
// package's contract is exactly NewPrivateKey, (*PrivateKey).PublicKey,
// NewPublicKey, and DeriveSecret.
package csidh

import (
	"errors"
	"fmt"
	"io"

	"github.com/larchlabs/csidh/internal/curve"
	"github.com/larchlabs/csidh/internal/field"
	"github.com/larchlabs/csidh/internal/isogeny"
	"github.com/larchlabs/csidh/internal/params"
	"github.com/larchlabs/csidh/internal/xlog"
)

// The three standard parameter sets.
var (
	CSIDH512  = params.CSIDH512
	CSIDH1024 = params.CSIDH1024
	CSIDH1792 = params.CSIDH1792
)

// Set is a CSIDH parameter set; see the params package for its fields.
type Set = params.Set

var (
	// ErrInvalidExponent is returned by NewPrivateKey when a component of
	// the exponent vector exceeds the per-prime budget.
	ErrInvalidExponent = errors.New("csidh: exponent vector component exceeds the budget")
	// ErrInvalidPublicKey is returned by NewPublicKey when the supplied
	// coefficient's curve is not supersingular.
	ErrInvalidPublicKey = errors.New("csidh: public key's curve is not supersingular")
)

// PrivateKey is a CSIDH private key: a parameter set plus a bounded
// exponent vector, one component per prime in the set's list.
type PrivateKey struct {
	set       *params.Set
	exponents []uint32
	log       xlog.Logger
}

// NewPrivateKey constructs a private key from exponents, one component per
// prime in set.Lis. It returns ErrInvalidExponent if any component exceeds
// the walk's fixed budget (isogeny.Budget == 10); generating the exponent
// vector itself is left to the caller, who owns the randomness source.
func NewPrivateKey(set *params.Set, exponents []uint32) (*PrivateKey, error) {
	if len(exponents) != set.N() {
		return nil, fmt.Errorf("csidh: exponent vector has length %d, parameter set %s wants %d", len(exponents), set.Name, set.N())
	}
	for _, e := range exponents {
		if e > isogeny.Budget {
			return nil, fmt.Errorf("%w: component %d exceeds budget %d", ErrInvalidExponent, e, isogeny.Budget)
		}
	}
	return &PrivateKey{
		set:       set,
		exponents: append([]uint32(nil), exponents...),
		log:       xlog.Discard,
	}, nil
}

// SetLogger attaches a logger the isogeny walk reports real/dummy steps
// to. The default is xlog.Discard.
func (pk *PrivateKey) SetLogger(l xlog.Logger) {
	if l == nil {
		l = xlog.Discard
	}
	pk.log = l
}

// Export encodes pk's exponent vector as one byte per component. Every
// component fits a byte since it is bounded by the walk budget.
func (pk *PrivateKey) Export() []byte {
	out := make([]byte, len(pk.exponents))
	for i, e := range pk.exponents {
		out[i] = byte(e)
	}
	return out
}

// ImportPrivateKey decodes an exponent vector previously produced by
// Export, applying the same bound checks as NewPrivateKey.
func ImportPrivateKey(set *params.Set, data []byte) (*PrivateKey, error) {
	if len(data) != set.N() {
		return nil, fmt.Errorf("csidh: encoded private key has length %d, parameter set %s wants %d", len(data), set.Name, set.N())
	}
	exponents := make([]uint32, len(data))
	for i, b := range data {
		exponents[i] = uint32(b)
	}
	return NewPrivateKey(set, exponents)
}

// PublicKey runs the class-group action from the curve A=0 with this
// private key's exponent vector, drawing field samples from rng.
func (pk *PrivateKey) PublicKey(rng io.Reader) (*PublicKey, error) {
	a, err := isogeny.Walk(pk.set, pk.exponents, field.Zero(pk.set.P), rng, pk.log)
	if err != nil {
		return nil, fmt.Errorf("csidh: generating public key: %w", err)
	}
	return &PublicKey{set: pk.set, a: a}, nil
}

// PublicKey is a CSIDH public key: a parameter set plus the Montgomery
// coefficient A of a (claimed) supersingular curve.
type PublicKey struct {
	set *params.Set
	a   field.Elt
}

// NewPublicKey decodes a foreign coefficient from its fixed-width
// big-endian encoding and validates that its curve is supersingular,
// returning ErrInvalidPublicKey if it is not. This is the entry point for
// untrusted key material; ImportPublicKey skips the (expensive)
// validation for coefficients this module produced itself.
func NewPublicKey(set *params.Set, key []byte, rng io.Reader) (*PublicKey, error) {
	if len(key) != set.ByteLen {
		return nil, fmt.Errorf("csidh: encoded public key has length %d, want %d", len(key), set.ByteLen)
	}
	a := field.FromBytes(key, set.P)
	c := curve.New(set, a)
	ok, err := c.IsSupersingular(rng)
	if err != nil {
		return nil, fmt.Errorf("csidh: validating public key: %w", err)
	}
	if !ok {
		return nil, ErrInvalidPublicKey
	}
	return &PublicKey{set: set, a: a}, nil
}

// Export encodes pub as a big-endian byte string of the parameter set's
// fixed width.
func (pub *PublicKey) Export() []byte {
	return pub.a.Bytes(pub.set.ByteLen)
}

// ImportPublicKey decodes a public key previously produced by Export. It
// does not validate supersingularity; callers that need that guarantee
// should pass the same untrusted bytes to NewPublicKey instead.
func ImportPublicKey(set *params.Set, data []byte) (*PublicKey, error) {
	if len(data) != set.ByteLen {
		return nil, fmt.Errorf("csidh: encoded public key has length %d, want %d", len(data), set.ByteLen)
	}
	return &PublicKey{set: set, a: field.FromBytes(data, set.P)}, nil
}

// Equal reports whether pub and other represent the same curve.
func (pub *PublicKey) Equal(other *PublicKey) bool {
	return pub.a.Equal(other.a)
}

// SharedSecret is the Montgomery coefficient A produced by applying one
// party's private exponent vector to the other's public curve.
type SharedSecret struct {
	set *params.Set
	a   field.Elt
}

// DeriveSecret runs the class-group action from pub's curve with prv's
// exponent vector.
func DeriveSecret(pub *PublicKey, prv *PrivateKey, rng io.Reader) (*SharedSecret, error) {
	if pub.set != prv.set {
		return nil, errors.New("csidh: public key and private key use different parameter sets")
	}
	a, err := isogeny.Walk(prv.set, prv.exponents, pub.a, rng, prv.log)
	if err != nil {
		return nil, fmt.Errorf("csidh: deriving shared secret: %w", err)
	}
	return &SharedSecret{set: prv.set, a: a}, nil
}

// Export encodes s as a big-endian byte string of the parameter set's
// fixed width.
func (s *SharedSecret) Export() []byte {
	return s.a.Bytes(s.set.ByteLen)
}

// Equal reports whether s and other are the same shared secret.
func (s *SharedSecret) Equal(other *SharedSecret) bool {
	return s.a.Equal(other.a)
}
