package bn254

import (
	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/holiman/uint256"
)

// AffineG1 is a point on the BN254 G1 curve y^2 = x^3 + 3 over Fq, in affine
// coordinates. The distinguished value (X, Y) = (0, 0) denotes the point at
// infinity: it cannot collide with a genuine curve point since 0^2 != 0^3+3.
// Every producer and consumer of AffineG1 in this module honors that
// convention; see PointFromCoords, Negate, Add and Mul.
type AffineG1 struct {
	X, Y BaseFieldElement
}

// InfinityG1 is the point at infinity in G1.
var InfinityG1 = AffineG1{}

// IsInfinity reports whether p is the (0, 0) sentinel.
func (p AffineG1) IsInfinity() bool {
	return p.X.IsZero() && p.Y.IsZero()
}

// PointFromCoords builds an AffineG1 from a pair of u256 coordinates. It
// returns the infinity sentinel for (0, 0) without further checks, otherwise
// it validates that (x, y) satisfies the curve equation and lies in the
// prime-order subgroup, reporting ErrFieldOverflow, ErrNotOnCurve or
// ErrNotInSubgroup as appropriate.
func PointFromCoords(x, y *uint256.Int) (AffineG1, error) {
	if x.IsZero() && y.IsZero() {
		return InfinityG1, nil
	}
	fx, err := U256ToFq(x)
	if err != nil {
		return AffineG1{}, err
	}
	fy, err := U256ToFq(y)
	if err != nil {
		return AffineG1{}, err
	}
	p := AffineG1{X: fx, Y: fy}
	backend := p.toBackend()
	if !backend.IsOnCurve() {
		return AffineG1{}, newNotOnCurve()
	}
	if !backend.IsInSubGroup() {
		return AffineG1{}, newNotInSubgroup()
	}
	return p, nil
}

// Negate returns -P. Infinity negates to itself. For a non-infinity point
// this is (x, p - y mod p); the contract is total, so the formula is applied
// unconditionally rather than special-cased on y = 0 (which cannot occur for
// a point on this curve in any case).
func Negate(p AffineG1) AffineG1 {
	if p.IsInfinity() {
		return p
	}
	var negY BaseFieldElement
	negY.inner.Neg(&p.Y.inner)
	return AffineG1{X: p.X, Y: negY}
}

// Add computes the G1 group law P + Q, delegating the chord-and-tangent
// arithmetic (including doubling when P = Q) to gnark-crypto's Jacobian
// addition. Infinity operands short-circuit before the backend is
// consulted, and a result at infinity (P = -Q) is recognized by the
// backend's own (0, 0) convention on conversion back to affine.
func Add(p, q AffineG1) AffineG1 {
	if p.IsInfinity() {
		return q
	}
	if q.IsInfinity() {
		return p
	}
	pb := p.toBackend()
	qb := q.toBackend()
	var sum bn254.G1Affine
	sum.Add(&pb, &qb)
	return fromBackendG1(sum)
}

// Mul computes the scalar multiplication k * P. k is reduced modulo r by the
// caller (see U256ToFrReduced); k = 0 or P = infinity both yield infinity
// without a call into the backend.
func Mul(p AffineG1, k ScalarFieldElement) AffineG1 {
	if k.IsZero() || p.IsInfinity() {
		return InfinityG1
	}
	pb := p.toBackend()
	var res bn254.G1Affine
	res.ScalarMultiplication(&pb, k.BigInt())
	return fromBackendG1(res)
}

// toBackend converts a non-infinity AffineG1 to gnark-crypto's curve point
// type. Callers must have already ruled out infinity.
func (p AffineG1) toBackend() bn254.G1Affine {
	return bn254.G1Affine{X: p.X.inner, Y: p.Y.inner}
}

func fromBackendG1(g bn254.G1Affine) AffineG1 {
	p := AffineG1{X: BaseFieldElement{inner: g.X}, Y: BaseFieldElement{inner: g.Y}}
	if p.X.IsZero() && p.Y.IsZero() {
		return InfinityG1
	}
	return p
}
