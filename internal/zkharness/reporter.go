// Package zkharness provides an optional, opt-in observability wrapper
// around package groth16's pure Verify entry point. It exists entirely
// outside groth16's call graph: Verify itself never logs or does I/O (see
// groth16.Verify's doc comment), so an operational caller that wants to
// observe outcomes and timing wraps the call with Report instead.
package zkharness

import (
	"time"

	"github.com/holiman/uint256"
	"go.uber.org/zap"

	"github.com/nspcc-groth16/bn254verify/pkg/bn254"
	"github.com/nspcc-groth16/bn254verify/pkg/groth16"
)

// NewLogger builds a development-style console logger suitable for passing
// to Report, tagged with a "component" field so verifier output is
// distinguishable in a shared log stream. Report does not build one itself:
// with a nil logger it logs nothing.
func NewLogger() (*zap.Logger, error) {
	cc := zap.NewDevelopmentConfig()
	cc.DisableCaller = true
	cc.DisableStacktrace = true
	cc.Encoding = "console"

	log, err := cc.Build()
	if err != nil {
		return nil, err
	}
	return log.With(zap.String("component", "groth16verify")), nil
}

// Report calls groth16.Verify and logs the outcome and elapsed time to log,
// then returns Verify's result unchanged. log may be nil, in which case
// Report behaves exactly like calling groth16.Verify directly.
//
// The "outcome" logged is one of "accepted", "rejected" (well-formed inputs,
// pairing product != identity) or the VerifyError's Kind (malformed input),
// so a cryptographic rejection and a precondition failure stay
// distinguishable in the log line rather than collapsing into one "failed"
// event.
func Report(log *zap.Logger, vk groth16.VerifyingKey, proof groth16.Proof, inputs []*uint256.Int) (bool, error) {
	start := time.Now()
	ok, err := groth16.Verify(vk, proof, inputs)
	elapsed := time.Since(start)

	if log == nil {
		return ok, err
	}

	if err != nil {
		outcome := "error"
		if verr, isVerr := err.(*bn254.VerifyError); isVerr {
			outcome = verr.Kind.String()
		}
		log.Warn("groth16 verify rejected input",
			zap.String("outcome", outcome),
			zap.Error(err),
			zap.Duration("elapsed", elapsed),
			zap.Int("num_inputs", len(inputs)),
		)
		return ok, err
	}

	outcome := "rejected"
	if ok {
		outcome = "accepted"
	}
	log.Info("groth16 verify completed",
		zap.String("outcome", outcome),
		zap.Duration("elapsed", elapsed),
		zap.Int("num_inputs", len(inputs)),
	)
	return ok, nil
}
