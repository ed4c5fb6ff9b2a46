package groth16

import (
	"github.com/holiman/uint256"

	"github.com/nspcc-groth16/bn254verify/pkg/bn254"
)

// G1Coords is a pair of u256 coordinates for a G1 point, (x, y).
type G1Coords [2]*uint256.Int

// G2Coords is four u256 coordinates for a G2 point in EIP-197 order:
// (x.c0, x.c1, y.c0, y.c1).
type G2Coords [4]*uint256.Int

// VerifyingKey is the public boundary form of a Groth16 verifying key: every
// group element is a raw u256 coordinate tuple, the form an external
// pairing-precompile-style backend exchanges coordinates in.
type VerifyingKey struct {
	Alpha G1Coords
	Beta  G2Coords
	Gamma G2Coords
	Delta G2Coords
	IC    []G1Coords
}

// Proof is the public boundary form of a Groth16 proof (pi_A, pi_B, pi_C).
type Proof struct {
	A G1Coords
	B G2Coords
	C G1Coords
}

// Verify checks that proof is a valid Groth16 proof of vk's statement for
// the given public inputs.
//
// It validates lengths and group membership eagerly before any pairing is
// computed: a malformed input (length mismatch, coordinate >= p, off-curve,
// not in the prime-order subgroup) is reported as an error and never as a
// bare false. A false return means every input was well-formed and the
// pairing product was not the identity, i.e. the proof was cryptographically
// rejected.
//
// Verify is synchronous, pure and allocation-bounded by O(len(inputs)): it
// performs no I/O and touches no package-level mutable state, so it is safe
// to call concurrently from multiple goroutines as long as the gnark-crypto
// backend it delegates to remains re-entrant, which it is (see
// groth16_test.go's concurrent-callers test).
func Verify(vk VerifyingKey, proof Proof, inputs []*uint256.Int) (bool, error) {
	if len(vk.IC) != len(inputs)+1 {
		return false, bn254.NewLengthMismatch(len(vk.IC), len(inputs))
	}

	alpha, err := bn254.PointFromCoords(vk.Alpha[0], vk.Alpha[1])
	if err != nil {
		return false, err
	}
	beta, err := bn254.G2FromCoords(vk.Beta[0], vk.Beta[1], vk.Beta[2], vk.Beta[3])
	if err != nil {
		return false, err
	}
	gamma, err := bn254.G2FromCoords(vk.Gamma[0], vk.Gamma[1], vk.Gamma[2], vk.Gamma[3])
	if err != nil {
		return false, err
	}
	delta, err := bn254.G2FromCoords(vk.Delta[0], vk.Delta[1], vk.Delta[2], vk.Delta[3])
	if err != nil {
		return false, err
	}

	ic := make([]bn254.AffineG1, len(vk.IC))
	for i, c := range vk.IC {
		ic[i], err = bn254.PointFromCoords(c[0], c[1])
		if err != nil {
			return false, err
		}
	}

	piA, err := bn254.PointFromCoords(proof.A[0], proof.A[1])
	if err != nil {
		return false, err
	}
	piB, err := bn254.G2FromCoords(proof.B[0], proof.B[1], proof.B[2], proof.B[3])
	if err != nil {
		return false, err
	}
	piC, err := bn254.PointFromCoords(proof.C[0], proof.C[1])
	if err != nil {
		return false, err
	}

	scalars := make([]bn254.ScalarFieldElement, len(inputs))
	for i, in := range inputs {
		scalars[i] = bn254.U256ToFrReduced(in)
	}

	vkx := ComputeVK(ic, scalars)
	aNeg := bn254.Negate(piA)

	pairs := []bn254.Pair{
		{A: aNeg, B: piB},
		{A: alpha, B: beta},
		{A: vkx, B: gamma},
		{A: piC, B: delta},
	}
	return bn254.MultiPairing(pairs)
}
