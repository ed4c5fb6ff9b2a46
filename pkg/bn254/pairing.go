package bn254

import "github.com/consensys/gnark-crypto/ecc/bn254"

// Pair is one (G1, G2) operand pair fed to MultiPairing.
type Pair struct {
	A AffineG1
	B AffineG2
}

// MultiPairing reports whether the product of the optimal-ate pairings of
// pairs, accumulated in Fq^12 and reduced by a single shared final
// exponentiation, equals the identity of the target group Gt.
//
// Any pair whose G1 or G2 operand is the infinity sentinel contributes the
// identity and is dropped before the backend ever sees it, rather than
// relying on gnark-crypto's own handling of degenerate points: that keeps
// the "infinity contributes identity" contract independent of backend
// internals. An empty pairs slice, or a slice where every pair degenerates
// this way, returns true directly without a backend call.
func MultiPairing(pairs []Pair) (bool, error) {
	g1s := make([]bn254.G1Affine, 0, len(pairs))
	g2s := make([]bn254.G2Affine, 0, len(pairs))
	for _, pr := range pairs {
		if pr.A.IsInfinity() || pr.B.IsInfinity() {
			continue
		}
		g1s = append(g1s, pr.A.toBackend())
		g2s = append(g2s, pr.B.toBackend())
	}
	if len(g1s) == 0 {
		return true, nil
	}
	ok, err := bn254.PairingCheck(g1s, g2s)
	if err != nil {
		return false, newBackendFailure(err)
	}
	return ok, nil
}
