// Package groth16 assembles the BN254 primitives in package bn254 into the
// Groth16 verification equation used by Circom/snarkjs-produced proofs.
package groth16

import "github.com/nspcc-groth16/bn254verify/pkg/bn254"

// ComputeVK folds the verifying key's input commitments IC and the public
// inputs into the single G1 point VK_x = IC[0] + sum(inputs[i-1] * IC[i])
// for i in [1, n]. The precondition |IC| = |inputs| + 1 is the caller's
// responsibility (see Verify, which checks it before calling ComputeVK so
// the error it raises names both lengths).
//
// The accumulator is folded left-to-right. Group addition is commutative
// and associative, so the final point does not depend on the order, but a
// fixed left-to-right order keeps any future diagnostic (e.g. "offending
// input index") deterministic across runs.
func ComputeVK(ic []bn254.AffineG1, inputs []bn254.ScalarFieldElement) bn254.AffineG1 {
	vkx := ic[0]
	for i, in := range inputs {
		vkx = bn254.Add(vkx, bn254.Mul(ic[i+1], in))
	}
	return vkx
}
