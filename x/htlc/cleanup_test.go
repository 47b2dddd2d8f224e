package htlc_test

import (
	"context"
	"testing"
	"time"

	"github.com/iov-one/htlc/x/htlc"
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/gconf"
	"github.com/iov-one/weave/weavetest"
	"github.com/iov-one/weave/weavetest/assert"
)

func TestCleanupFinalizedHandler(t *testing.T) {
	alice := weavetest.NewCondition()
	bob := weavetest.NewCondition()
	owner := weavetest.NewCondition()
	issuer := weavetest.NewCondition().Address()

	db, r, authenticator, _ := newTestEnv(t)
	saveConf(t, db, htlc.Configuration{
		Metadata:       &weave.Metadata{Schema: 1},
		Owner:          owner.Address(),
		FeeAccount:     weavetest.NewCondition().Address(),
		DefaultFeeRate: 100,
		Scale:          10000,
	})

	quantity := coin.NewCoin(100, 0, "EOS")
	locks := htlc.NewLockBucket()
	put := func(secret string, withdrawn, refunded bool) []byte {
		lock := &htlc.Lock{
			Metadata:     &weave.Metadata{Schema: 1},
			Sender:       alice.Address(),
			Receiver:     bob.Address(),
			Issuer:       issuer,
			Quantity:     &quantity,
			Precision:    4,
			PreimageHash: htlc.DoubleHash([]byte(secret)),
			Expiry:       weave.AsUnixTime(blockNow.Add(time.Hour)),
			Withdrawn:    withdrawn,
			Refunded:     refunded,
		}
		id := htlc.LockID(lock.Sender, lock.Receiver, *lock.Quantity, lock.Precision, lock.PreimageHash, lock.Expiry)
		_, err := locks.Put(db, id, lock)
		assert.Nil(t, err)
		return id
	}

	pending := put("pending", false, false)
	withdrawn := put("withdrawn", true, false)
	refunded := put("refunded", false, true)

	ctx := weave.WithHeight(context.Background(), 500)
	ctx = weave.WithBlockTime(ctx, blockNow)
	tx := &weavetest.Tx{Msg: &htlc.CleanupFinalizedMsg{Metadata: &weave.Metadata{Schema: 1}}}

	strangerCtx := authenticator.SetConditions(ctx, alice)
	if _, err := r.Deliver(strangerCtx, db, tx); !errors.ErrUnauthorized.Is(err) {
		t.Fatalf("cleanup must require the owner, got %+v", err)
	}

	ownerCtx := authenticator.SetConditions(ctx, owner)
	_, err := r.Deliver(ownerCtx, db, tx)
	assert.Nil(t, err)

	var lock htlc.Lock
	if err := locks.One(db, pending, &lock); err != nil {
		t.Fatalf("pending lock must survive the sweep: %+v", err)
	}
	if err := locks.One(db, withdrawn, &lock); !errors.ErrNotFound.Is(err) {
		t.Fatalf("withdrawn lock must be swept, got %+v", err)
	}
	if err := locks.One(db, refunded, &lock); !errors.ErrNotFound.Is(err) {
		t.Fatalf("refunded lock must be swept, got %+v", err)
	}

	// A second sweep on a clean state is a no-op.
	_, err = r.Deliver(ownerCtx, db, tx)
	assert.Nil(t, err)
	if err := locks.One(db, pending, &lock); err != nil {
		t.Fatalf("pending lock must still survive: %+v", err)
	}
}

func TestCleanupAllHandler(t *testing.T) {
	alice := weavetest.NewCondition()
	bob := weavetest.NewCondition()
	owner := weavetest.NewCondition()
	operator := weavetest.NewCondition()
	issuer := weavetest.NewCondition().Address()

	db, r, authenticator, _ := newTestEnv(t)
	saveConf(t, db, htlc.Configuration{
		Metadata:       &weave.Metadata{Schema: 1},
		Owner:          owner.Address(),
		FeeAccount:     weavetest.NewCondition().Address(),
		DefaultFeeRate: 100,
		Scale:          10000,
	})
	whitelistToken(t, db, issuer, "EOS", 4)

	quantity := coin.NewCoin(100, 0, "EOS")
	locks := htlc.NewLockBucket()
	lock := &htlc.Lock{
		Metadata:     &weave.Metadata{Schema: 1},
		Sender:       alice.Address(),
		Receiver:     bob.Address(),
		Issuer:       issuer,
		Quantity:     &quantity,
		Precision:    4,
		PreimageHash: htlc.DoubleHash([]byte("secret")),
		Expiry:       weave.AsUnixTime(blockNow.Add(time.Hour)),
	}
	lockID := htlc.LockID(lock.Sender, lock.Receiver, *lock.Quantity, lock.Precision, lock.PreimageHash, lock.Expiry)
	_, err := locks.Put(db, lockID, lock)
	assert.Nil(t, err)

	fees := htlc.NewFeeBucket()
	_, err = fees.Put(db, operator.Address(), &htlc.Fee{
		Metadata: &weave.Metadata{Schema: 1},
		Operator: operator.Address(),
		Rate:     500,
	})
	assert.Nil(t, err)

	ctx := weave.WithHeight(context.Background(), 500)
	ctx = weave.WithBlockTime(ctx, blockNow)
	tx := &weavetest.Tx{Msg: &htlc.CleanupAllMsg{Metadata: &weave.Metadata{Schema: 1}}}

	strangerCtx := authenticator.SetConditions(ctx, alice)
	if _, err := r.Deliver(strangerCtx, db, tx); !errors.ErrUnauthorized.Is(err) {
		t.Fatalf("cleanup must require the owner, got %+v", err)
	}

	ownerCtx := authenticator.SetConditions(ctx, owner)
	_, err = r.Deliver(ownerCtx, db, tx)
	assert.Nil(t, err)

	if err := locks.One(db, lockID, lock); !errors.ErrNotFound.Is(err) {
		t.Fatalf("pending lock must be wiped too, got %+v", err)
	}
	var fee htlc.Fee
	if err := fees.One(db, operator.Address(), &fee); !errors.ErrNotFound.Is(err) {
		t.Fatalf("fee entries must be wiped, got %+v", err)
	}
	var token htlc.Token
	tokenKey := append(append([]byte{}, issuer...), "EOS"...)
	if err := htlc.NewTokenBucket().One(db, tokenKey, &token); !errors.ErrNotFound.Is(err) {
		t.Fatalf("whitelist entries must be wiped, got %+v", err)
	}
	var conf htlc.Configuration
	if err := gconf.Load(db, "htlc", &conf); !errors.ErrNotFound.Is(err) {
		t.Fatalf("configuration must be wiped, got %+v", err)
	}
}
