package htlc

import (
	"github.com/iov-one/weave/errors"
)

// ABCI error codes 1100-1199 are reserved for the htlc extension.
var (
	// ErrInvalidMemo is returned when a deposit memo does not follow the
	// receiver-hash-deadline grammar.
	ErrInvalidMemo = errors.Register(1100, "invalid memo")

	// ErrUnsupportedAsset is returned when depositing an asset that is
	// not whitelisted.
	ErrUnsupportedAsset = errors.Register(1101, "unsupported asset")

	// ErrPrecisionMismatch is returned when a deposited quantity does not
	// use the precision registered for its asset.
	ErrPrecisionMismatch = errors.Register(1102, "precision mismatch")

	// ErrPreimageMismatch is returned when the double hash of a supplied
	// preimage does not match the lock commitment.
	ErrPreimageMismatch = errors.Register(1103, "preimage mismatch")

	// ErrAlreadySettled is returned when operating on a lock that was
	// already withdrawn or refunded.
	ErrAlreadySettled = errors.Register(1104, "already settled")

	// ErrNotYetExpired is returned when asking for a refund before the
	// lock deadline.
	ErrNotYetExpired = errors.Register(1105, "not yet expired")

	// ErrInvalidFeeRate is returned when setting a fee rate outside of
	// the [0, scale) range.
	ErrInvalidFeeRate = errors.Register(1106, "invalid fee rate")

	// ErrInvalidFeeConfig is returned when the fee configuration cannot
	// produce a valid fee for a withdrawal. This is a configuration bug
	// and must abort the operation instead of clamping the fee.
	ErrInvalidFeeConfig = errors.Register(1107, "invalid fee configuration")
)
