// Package bn254 implements the field, G1, G2 and pairing primitives used to
// verify Groth16 proofs over the alt-bn128 (BN254) curve, as produced by the
// Circom/snarkjs toolchain.
//
// Every exported value in this package is a value object: constructed from
// externally supplied coordinates, immutable for its lifetime, and safe to
// share across goroutines. The base-field and scalar-field arithmetic is
// delegated to github.com/consensys/gnark-crypto/ecc/bn254, the pairing
// backend this package treats as an injected dependency; the public
// boundary type for 256-bit coordinates is github.com/holiman/uint256.Int.
package bn254

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fp"
	"github.com/holiman/uint256"
)

// modulusDec is the BN254 base field modulus p, the only value this package
// accepts as a field modulus.
const modulusDec = "21888242871839275222246405745257275088696311157297823662689037894645226208583"

// Modulus is p as a *big.Int, shared read-only by every caller.
var Modulus = mustBigInt(modulusDec)

// modulusU256 is p as a uint256.Int, used for the overflow check in
// U256ToFq without allocating a big.Int on the hot path.
var modulusU256 = mustUint256(modulusDec)

func mustBigInt(s string) *big.Int {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic("bn254: invalid modulus literal: " + s)
	}
	return v
}

func mustUint256(s string) *uint256.Int {
	v, err := uint256.FromDecimal(s)
	if err != nil {
		panic("bn254: invalid modulus literal: " + s)
	}
	return v
}

// BaseFieldElement is an element of Fq, the BN254 base field. The zero value
// is the additive identity 0.
type BaseFieldElement struct {
	inner fp.Element
}

// IsZero reports whether f is the additive identity.
func (f BaseFieldElement) IsZero() bool {
	return f.inner.IsZero()
}

// Equal reports whether f and g represent the same residue.
func (f BaseFieldElement) Equal(g BaseFieldElement) bool {
	return f.inner.Equal(&g.inner)
}

// U256ToFq converts a canonical big-endian 256-bit unsigned integer into a
// base field element. It fails with ErrFieldOverflow if u >= p: the field
// codec is the only place this range check happens, so every coordinate
// parser (PointFromCoords, G2FromCoords) gets the same overflow contract.
// Public-input scalars do not pass through here; see U256ToFrReduced.
func U256ToFq(u *uint256.Int) (BaseFieldElement, error) {
	if u.Cmp(modulusU256) >= 0 {
		return BaseFieldElement{}, newFieldOverflow(u)
	}
	buf := u.Bytes32()
	var fe fp.Element
	fe.SetBytes(buf[:])
	return BaseFieldElement{inner: fe}, nil
}

// FqToU256 returns the canonical representative of f in [0, p) as a
// big-endian 256-bit unsigned integer.
func (f BaseFieldElement) FqToU256() *uint256.Int {
	b := f.inner.Bytes()
	return new(uint256.Int).SetBytes32(b[:])
}
