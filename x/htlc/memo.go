package htlc

import (
	"encoding/hex"
	"strconv"
	"strings"
	"unicode"

	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
)

// memoSeparator splits the three memo fields. Hex encoded addresses and
// digests never contain it.
const memoSeparator = "-"

// DecodeMemo parses a deposit memo of the form
//
//   receiver '-' commitment_hash_hex '-' expiry_decimal
//
// into its three components. All whitespace is stripped before parsing. The
// receiver is a hex encoded address, the commitment is exactly 64 hex
// characters (a 32 byte digest) and the expiry is an unsigned decimal UNIX
// time. Anything else fails with ErrInvalidMemo.
func DecodeMemo(memo string) (weave.Address, []byte, weave.UnixTime, error) {
	memo = strings.Map(dropSpace, memo)

	chunks := strings.Split(memo, memoSeparator)
	if len(chunks) != 3 {
		return nil, nil, 0, errors.Wrap(ErrInvalidMemo, "expected exactly two separators")
	}
	for _, c := range chunks {
		if len(c) == 0 {
			return nil, nil, 0, errors.Wrap(ErrInvalidMemo, "empty field")
		}
	}

	receiver, err := hex.DecodeString(chunks[0])
	if err != nil {
		return nil, nil, 0, errors.Wrap(ErrInvalidMemo, "receiver is not hex encoded")
	}
	if err := weave.Address(receiver).Validate(); err != nil {
		return nil, nil, 0, errors.Wrap(ErrInvalidMemo, "invalid receiver address")
	}

	if len(chunks[1]) != hex.EncodedLen(preimageHashSize) {
		return nil, nil, 0, errors.Wrapf(ErrInvalidMemo, "commitment must be %d hex characters", hex.EncodedLen(preimageHashSize))
	}
	commitment, err := hex.DecodeString(chunks[1])
	if err != nil {
		return nil, nil, 0, errors.Wrap(ErrInvalidMemo, "commitment is not hex encoded")
	}

	expiry, err := strconv.ParseUint(chunks[2], 10, 63)
	if err != nil {
		return nil, nil, 0, errors.Wrap(ErrInvalidMemo, "expiry is not an unsigned integer")
	}

	return weave.Address(receiver), commitment, weave.UnixTime(expiry), nil
}

func dropSpace(r rune) rune {
	if unicode.IsSpace(r) {
		return -1
	}
	return r
}
