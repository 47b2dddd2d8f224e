package htlc

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"

	"github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
)

const (
	// preimageHashSize is the size of the commitment in bytes. The
	// commitment is a sha256 digest.
	preimageHashSize = 32

	// lockIDSize is the size of a lock identifier in bytes.
	lockIDSize = 32

	// maxPrecision is the greatest number of fractional digits an asset
	// can declare. A coin carries 9 fractional digits.
	maxPrecision = 9
)

// DoubleHash returns the double sha256 digest of the given preimage. The
// protocol commits to the double hash of the secret, not the single hash.
func DoubleHash(preimage []byte) []byte {
	first := sha256.Sum256(preimage)
	second := sha256.Sum256(first[:])
	return second[:]
}

// LockID derives the identifier of a lock from the swap parameters. The
// derivation is a pure function of the parameters, so funding the same swap
// twice produces the same identifier. That collision is the double deposit
// guard and must not be weakened by mixing in any entropy.
//
// The exact concatenation order and the canonical amount formatting are part
// of the wire contract. Changing either breaks compatibility with other
// implementations deriving the same identifiers.
func LockID(
	sender weave.Address,
	receiver weave.Address,
	quantity coin.Coin,
	precision uint32,
	commitment []byte,
	expiry weave.UnixTime,
) []byte {
	input := sender.String() +
		receiver.String() +
		CanonicalAmount(quantity, precision) +
		hex.EncodeToString(commitment) +
		strconv.FormatInt(int64(expiry), 10)
	id := sha256.Sum256([]byte(input))
	return id[:]
}

// CanonicalAmount renders a coin using exactly the given number of
// fractional digits, followed by a single space and the ticker. For example
// a coin of 100 EOS with precision 4 is rendered as "100.0000 EOS".
//
// A coin keeps 9 fractional digits internally. Digits beyond the asset
// precision are truncated, never rounded.
func CanonicalAmount(c coin.Coin, precision uint32) string {
	if precision == 0 {
		return fmt.Sprintf("%d %s", c.Whole, c.Ticker)
	}
	frac := c.Fractional / fractionalUnit(precision)
	return fmt.Sprintf("%d.%0*d %s", c.Whole, int(precision), frac, c.Ticker)
}

// fractionalUnit returns the coin fractional value of the asset's smallest
// representable unit, 10^(9-precision). Every valid quantity and fee of the
// asset is a multiple of it.
func fractionalUnit(precision uint32) int64 {
	unit := int64(1)
	for i := precision; i < maxPrecision; i++ {
		unit *= 10
	}
	return unit
}
