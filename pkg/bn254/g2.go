package bn254

import (
	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/holiman/uint256"
)

// Fq2 is an element of Fq^2 = Fq[u]/(u^2+1), represented as c0 + c1*u. It is
// used only for G2 coordinates.
type Fq2 struct {
	C0, C1 BaseFieldElement
}

// IsZero reports whether f is the additive identity of Fq^2.
func (f Fq2) IsZero() bool {
	return f.C0.IsZero() && f.C1.IsZero()
}

// AffineG2 is a point on BN254's twisted curve over Fq^2, in affine
// coordinates. The sentinel ((0,0),(0,0)) denotes the point at infinity,
// mirroring AffineG1's convention.
type AffineG2 struct {
	X, Y Fq2
}

// InfinityG2 is the point at infinity in G2.
var InfinityG2 = AffineG2{}

// IsInfinity reports whether p is the ((0,0),(0,0)) sentinel.
func (p AffineG2) IsInfinity() bool {
	return p.X.IsZero() && p.Y.IsZero()
}

// G2FromCoords builds an AffineG2 from four u256 coordinates in EIP-197
// order: (x.c0, x.c1, y.c0, y.c1). This ordering is the canonical one for
// this module; the source material this was derived from mixed at least two
// distinct orderings across call sites, a bug this function does not
// reproduce. Returns the infinity sentinel for all-zero input, otherwise
// validates the on-curve and subgroup membership of the result.
func G2FromCoords(xc0, xc1, yc0, yc1 *uint256.Int) (AffineG2, error) {
	if xc0.IsZero() && xc1.IsZero() && yc0.IsZero() && yc1.IsZero() {
		return InfinityG2, nil
	}
	fxc0, err := U256ToFq(xc0)
	if err != nil {
		return AffineG2{}, err
	}
	fxc1, err := U256ToFq(xc1)
	if err != nil {
		return AffineG2{}, err
	}
	fyc0, err := U256ToFq(yc0)
	if err != nil {
		return AffineG2{}, err
	}
	fyc1, err := U256ToFq(yc1)
	if err != nil {
		return AffineG2{}, err
	}
	p := AffineG2{X: Fq2{C0: fxc0, C1: fxc1}, Y: Fq2{C0: fyc0, C1: fyc1}}
	backend := p.toBackend()
	if !backend.IsOnCurve() {
		return AffineG2{}, newNotOnCurve()
	}
	if !backend.IsInSubGroup() {
		return AffineG2{}, newNotInSubgroup()
	}
	return p, nil
}

// toBackend converts a non-infinity AffineG2 to gnark-crypto's G2 curve
// point type. Callers must have already ruled out infinity.
func (p AffineG2) toBackend() bn254.G2Affine {
	var g bn254.G2Affine
	g.X.A0 = p.X.C0.inner
	g.X.A1 = p.X.C1.inner
	g.Y.A0 = p.Y.C0.inner
	g.Y.A1 = p.Y.C1.inner
	return g
}
