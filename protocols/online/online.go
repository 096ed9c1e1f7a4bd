// Package online implements the four sub-protocols of the SPDZ online
// phase: Input, Multiply, Output and Reshare, plus the batched MAC
// check. All of them operate on authenticated sharings (pkg/share) fed
// by a preprocessing source (pkg/preprocess); only Reshare communicates,
// through one round.Channel exchange per invocation.
//
// The MAC key α is never stored anywhere; every operation that needs it
// takes it as an argument.
package online

import "golang.org/x/xerrors"

var (
	// ErrMACCheckFailed signals a failed opening. The computation is
	// compromised; retrying with the same shares is never sound.
	ErrMACCheckFailed = xerrors.New("online: MAC check failed")
	// ErrShareMasked is returned by Output for a sharing whose offset δ
	// is nonzero: its value is x+δ, not the secret. Run Reshare in
	// preserve-secret mode first.
	ErrShareMasked = xerrors.New("online: share carries a nonzero offset")
	// ErrMismatchedShares signals operands that do not belong to the
	// same n-party execution.
	ErrMismatchedShares = xerrors.New("online: mismatched share vectors")
)
