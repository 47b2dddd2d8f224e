package htlc_test

import (
	"crypto/sha256"
	"testing"
	"time"

	"github.com/iov-one/htlc/x/htlc"
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/weavetest"
	"github.com/stretchr/testify/assert"
)

func TestDoubleHash(t *testing.T) {
	preimage := []byte("my very secret preimage")
	first := sha256.Sum256(preimage)
	second := sha256.Sum256(first[:])

	got := htlc.DoubleHash(preimage)
	assert.Equal(t, second[:], got)
	assert.Len(t, got, 32)

	// Single round must not be accepted as the commitment.
	assert.NotEqual(t, first[:], got)
}

func TestCanonicalAmount(t *testing.T) {
	cases := map[string]struct {
		coin      coin.Coin
		precision uint32
		want      string
	}{
		"whole amount": {
			coin:      coin.NewCoin(100, 0, "EOS"),
			precision: 4,
			want:      "100.0000 EOS",
		},
		"fractional digits are padded": {
			coin:      coin.NewCoin(1, 500000000, "IOV"),
			precision: 4,
			want:      "1.5000 IOV",
		},
		"single fractional digit": {
			coin:      coin.NewCoin(1, 500000000, "IOV"),
			precision: 1,
			want:      "1.5 IOV",
		},
		"excess fractional digits are truncated": {
			coin:      coin.NewCoin(0, 123456789, "BTC"),
			precision: 4,
			want:      "0.1234 BTC",
		},
		"zero precision drops the separator": {
			coin:      coin.NewCoin(7, 999999999, "ETH"),
			precision: 0,
			want:      "7 ETH",
		},
		"full precision": {
			coin:      coin.NewCoin(2, 1, "XYZ"),
			precision: 9,
			want:      "2.000000001 XYZ",
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, htlc.CanonicalAmount(tc.coin, tc.precision))
		})
	}
}

func TestLockID(t *testing.T) {
	sender := weavetest.NewCondition().Address()
	receiver := weavetest.NewCondition().Address()
	quantity := coin.NewCoin(100, 0, "EOS")
	commitment := htlc.DoubleHash([]byte("secret"))
	expiry := weave.AsUnixTime(time.Now().Add(time.Hour))

	id := htlc.LockID(sender, receiver, quantity, 4, commitment, expiry)
	assert.Len(t, id, 32)

	// The same parameters always derive the same identifier.
	again := htlc.LockID(sender, receiver, quantity, 4, commitment, expiry)
	assert.Equal(t, id, again)

	// Any parameter change derives a different identifier.
	assert.NotEqual(t, id, htlc.LockID(receiver, receiver, quantity, 4, commitment, expiry))
	assert.NotEqual(t, id, htlc.LockID(sender, sender, quantity, 4, commitment, expiry))
	assert.NotEqual(t, id, htlc.LockID(sender, receiver, coin.NewCoin(101, 0, "EOS"), 4, commitment, expiry))
	assert.NotEqual(t, id, htlc.LockID(sender, receiver, quantity, 3, commitment, expiry))
	assert.NotEqual(t, id, htlc.LockID(sender, receiver, quantity, 4, htlc.DoubleHash([]byte("other")), expiry))
	assert.NotEqual(t, id, htlc.LockID(sender, receiver, quantity, 4, commitment, expiry+1))
}
