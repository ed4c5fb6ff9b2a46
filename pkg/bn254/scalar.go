package bn254

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/holiman/uint256"
)

// ScalarFieldElement is an element of Fr, the BN254 scalar field (the
// prime-order subgroup size r, distinct from the base-field modulus p).
// It is used only as a scalar for G1 multiplication.
type ScalarFieldElement struct {
	inner fr.Element
}

// U256ToFrReduced builds a scalar field element from a canonical 256-bit
// unsigned integer, reducing modulo r. Unlike U256ToFq, this never fails:
// r has no bearing on the well-formedness of the u256 encoding itself, so a
// public-input scalar is reduced on entry rather than rejected.
func U256ToFrReduced(u *uint256.Int) ScalarFieldElement {
	var fe fr.Element
	fe.SetBigInt(u.ToBig())
	return ScalarFieldElement{inner: fe}
}

// BigInt returns the canonical representative of s in [0, r) as a *big.Int,
// the form gnark-crypto's ScalarMultiplication expects.
func (s ScalarFieldElement) BigInt() *big.Int {
	var out big.Int
	s.inner.BigInt(&out)
	return &out
}

// IsZero reports whether s is the additive identity of Fr.
func (s ScalarFieldElement) IsZero() bool {
	return s.inner.IsZero()
}
