package htlc_test

import (
	"context"
	"encoding/hex"
	"fmt"
	"testing"
	"time"

	"github.com/iov-one/htlc/x/htlc"
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/app"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/gconf"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/store"
	"github.com/iov-one/weave/weavetest"
	"github.com/iov-one/weave/weavetest/assert"
	"github.com/iov-one/weave/x"
	"github.com/iov-one/weave/x/cash"
)

var blockNow = time.Now().UTC().Round(time.Second)

func newTestEnv(t *testing.T) (weave.CacheableKVStore, *app.Router, *weavetest.CtxAuth, cash.Bucket) {
	t.Helper()

	db := store.MemStore()
	migration.MustInitPkg(db, "htlc", "cash")

	bank := cash.NewBucket()
	ctrl := cash.NewController(bank)

	r := app.NewRouter()
	authenticator := &weavetest.CtxAuth{Key: "auth"}
	auth := x.ChainAuth(authenticator)
	htlc.RegisterRoutes(r, auth, ctrl)

	return db, r, authenticator, bank
}

func setBalance(t *testing.T, bank cash.Bucket, db weave.KVStore, addr weave.Address, coins coin.Coins) {
	t.Helper()
	acct, err := cash.WalletWith(addr, coins...)
	assert.Nil(t, err)
	err = bank.Save(db, acct)
	assert.Nil(t, err)
}

func balance(t *testing.T, bank cash.Bucket, db weave.KVStore, addr weave.Address) coin.Coins {
	t.Helper()
	acct, err := bank.Get(db, addr)
	assert.Nil(t, err)
	if acct == nil {
		return nil
	}
	return cash.AsCoins(acct)
}

func mustCombine(t *testing.T, cs ...coin.Coin) coin.Coins {
	t.Helper()
	combined, err := coin.CombineCoins(cs...)
	assert.Nil(t, err)
	return combined
}

func saveConf(t *testing.T, db weave.KVStore, conf htlc.Configuration) {
	t.Helper()
	err := gconf.Save(db, "htlc", &conf)
	assert.Nil(t, err)
}

func whitelistToken(t *testing.T, db weave.KVStore, issuer weave.Address, ticker string, precision uint32) {
	t.Helper()
	tokens := htlc.NewTokenBucket()
	token := htlc.Token{
		Metadata:  &weave.Metadata{Schema: 1},
		Ticker:    ticker,
		Precision: precision,
		Issuer:    issuer,
	}
	_, err := tokens.Put(db, append(append([]byte{}, issuer...), ticker...), &token)
	assert.Nil(t, err)
}

func depositMemo(receiver weave.Address, commitment []byte, expiry weave.UnixTime) string {
	return fmt.Sprintf("%s-%s-%d", hex.EncodeToString(receiver), hex.EncodeToString(commitment), expiry)
}

func TestDepositHandler(t *testing.T) {
	alice := weavetest.NewCondition()
	bob := weavetest.NewCondition()
	owner := weavetest.NewCondition()
	issuer := weavetest.NewCondition().Address()
	feeAcct := weavetest.NewCondition().Address()

	quantity := coin.NewCoin(100, 0, "EOS")
	commitment := htlc.DoubleHash([]byte("secret"))
	expiry := weave.AsUnixTime(blockNow.Add(time.Hour))

	cases := map[string]struct {
		setup          func(t *testing.T, ctx weave.Context, db weave.KVStore, auth *weavetest.CtxAuth, bank cash.Bucket) weave.Context
		mutator        func(*htlc.DepositMsg)
		wantCheckErr   *errors.Error
		wantDeliverErr *errors.Error
		check          func(t *testing.T, db weave.KVStore, bank cash.Bucket, res *weave.DeliverResult)
	}{
		"happy path": {
			setup: func(t *testing.T, ctx weave.Context, db weave.KVStore, auth *weavetest.CtxAuth, bank cash.Bucket) weave.Context {
				setBalance(t, bank, db, alice.Address(), mustCombine(t, quantity))
				return auth.SetConditions(ctx, alice)
			},
			check: func(t *testing.T, db weave.KVStore, bank cash.Bucket, res *weave.DeliverResult) {
				assert.Equal(t, 32, len(res.Data))

				var lock htlc.Lock
				locks := htlc.NewLockBucket()
				err := locks.One(db, res.Data, &lock)
				assert.Nil(t, err)
				assert.Equal(t, alice.Address(), lock.Sender)
				assert.Equal(t, bob.Address(), lock.Receiver)
				assert.Equal(t, false, lock.IsSettled())

				escrowed := balance(t, bank, db, htlc.EscrowAddr())
				assert.Equal(t, true, escrowed.Equals(mustCombine(t, quantity)))
			},
		},
		"transfer not addressed to escrow is ignored": {
			setup: func(t *testing.T, ctx weave.Context, db weave.KVStore, auth *weavetest.CtxAuth, bank cash.Bucket) weave.Context {
				setBalance(t, bank, db, alice.Address(), mustCombine(t, quantity))
				return auth.SetConditions(ctx, alice)
			},
			mutator: func(msg *htlc.DepositMsg) {
				msg.Recipient = bob.Address()
			},
			check: func(t *testing.T, db weave.KVStore, bank cash.Bucket, res *weave.DeliverResult) {
				assert.Equal(t, 0, len(res.Data))
				// Funds are not touched.
				got := balance(t, bank, db, alice.Address())
				assert.Equal(t, true, got.Equals(mustCombine(t, quantity)))
			},
		},
		"sender did not sign": {
			setup: func(t *testing.T, ctx weave.Context, db weave.KVStore, auth *weavetest.CtxAuth, bank cash.Bucket) weave.Context {
				return auth.SetConditions(ctx, bob)
			},
			wantCheckErr:   errors.ErrUnauthorized,
			wantDeliverErr: errors.ErrUnauthorized,
		},
		"broken memo": {
			setup: func(t *testing.T, ctx weave.Context, db weave.KVStore, auth *weavetest.CtxAuth, bank cash.Bucket) weave.Context {
				return auth.SetConditions(ctx, alice)
			},
			mutator: func(msg *htlc.DepositMsg) {
				msg.Memo = "not a swap request"
			},
			wantCheckErr:   htlc.ErrInvalidMemo,
			wantDeliverErr: htlc.ErrInvalidMemo,
		},
		"asset not whitelisted": {
			setup: func(t *testing.T, ctx weave.Context, db weave.KVStore, auth *weavetest.CtxAuth, bank cash.Bucket) weave.Context {
				return auth.SetConditions(ctx, alice)
			},
			mutator: func(msg *htlc.DepositMsg) {
				c := coin.NewCoin(100, 0, "DOGE")
				msg.Quantity = &c
			},
			wantCheckErr:   htlc.ErrUnsupportedAsset,
			wantDeliverErr: htlc.ErrUnsupportedAsset,
		},
		"issuer not whitelisted": {
			setup: func(t *testing.T, ctx weave.Context, db weave.KVStore, auth *weavetest.CtxAuth, bank cash.Bucket) weave.Context {
				return auth.SetConditions(ctx, alice)
			},
			mutator: func(msg *htlc.DepositMsg) {
				msg.Issuer = bob.Address()
			},
			wantCheckErr:   htlc.ErrUnsupportedAsset,
			wantDeliverErr: htlc.ErrUnsupportedAsset,
		},
		"precision mismatch": {
			setup: func(t *testing.T, ctx weave.Context, db weave.KVStore, auth *weavetest.CtxAuth, bank cash.Bucket) weave.Context {
				return auth.SetConditions(ctx, alice)
			},
			mutator: func(msg *htlc.DepositMsg) {
				msg.Precision = 6
			},
			wantCheckErr:   htlc.ErrPrecisionMismatch,
			wantDeliverErr: htlc.ErrPrecisionMismatch,
		},
		"fractional dust below asset precision": {
			setup: func(t *testing.T, ctx weave.Context, db weave.KVStore, auth *weavetest.CtxAuth, bank cash.Bucket) weave.Context {
				setBalance(t, bank, db, alice.Address(), mustCombine(t, coin.NewCoin(2, 0, "EOS")))
				return auth.SetConditions(ctx, alice)
			},
			mutator: func(msg *htlc.DepositMsg) {
				// 1.00005 EOS cannot exist at precision 4. Admitting it
				// would collide with the lock of a 1.0000 EOS deposit.
				c := coin.NewCoin(1, 50000, "EOS")
				msg.Quantity = &c
			},
			wantCheckErr:   htlc.ErrPrecisionMismatch,
			wantDeliverErr: htlc.ErrPrecisionMismatch,
		},
		"expiry in the past": {
			setup: func(t *testing.T, ctx weave.Context, db weave.KVStore, auth *weavetest.CtxAuth, bank cash.Bucket) weave.Context {
				return auth.SetConditions(ctx, alice)
			},
			mutator: func(msg *htlc.DepositMsg) {
				msg.Memo = depositMemo(bob.Address(), commitment, weave.AsUnixTime(blockNow.Add(-time.Minute)))
			},
			wantCheckErr:   errors.ErrInput,
			wantDeliverErr: errors.ErrInput,
		},
		"insufficient funds": {
			setup: func(t *testing.T, ctx weave.Context, db weave.KVStore, auth *weavetest.CtxAuth, bank cash.Bucket) weave.Context {
				return auth.SetConditions(ctx, alice)
			},
			wantDeliverErr: errors.ErrEmpty,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			db, r, authenticator, bank := newTestEnv(t)
			saveConf(t, db, htlc.Configuration{
				Metadata:       &weave.Metadata{Schema: 1},
				Owner:          owner.Address(),
				FeeAccount:     feeAcct,
				DefaultFeeRate: 100,
				Scale:          10000,
			})
			whitelistToken(t, db, issuer, "EOS", 4)

			ctx := weave.WithHeight(context.Background(), 500)
			ctx = weave.WithBlockTime(ctx, blockNow)
			if tc.setup != nil {
				ctx = tc.setup(t, ctx, db, authenticator, bank)
			}

			msg := &htlc.DepositMsg{
				Metadata:  &weave.Metadata{Schema: 1},
				Sender:    alice.Address(),
				Recipient: htlc.EscrowAddr(),
				Quantity:  &quantity,
				Precision: 4,
				Issuer:    issuer,
				Memo:      depositMemo(bob.Address(), commitment, expiry),
			}
			if tc.mutator != nil {
				tc.mutator(msg)
			}
			tx := &weavetest.Tx{Msg: msg}

			cache := db.CacheWrap()
			if _, err := r.Check(ctx, cache, tx); !tc.wantCheckErr.Is(err) {
				t.Fatalf("check expected %+v but got %+v", tc.wantCheckErr, err)
			}
			cache.Discard()

			res, err := r.Deliver(ctx, cache, tx)
			if !tc.wantDeliverErr.Is(err) {
				t.Fatalf("deliver expected %+v but got %+v", tc.wantDeliverErr, err)
			}
			if tc.check != nil {
				tc.check(t, cache, bank, res)
			}
		})
	}
}

func TestDepositHandlerRejectsDuplicate(t *testing.T) {
	alice := weavetest.NewCondition()
	bob := weavetest.NewCondition()
	issuer := weavetest.NewCondition().Address()

	db, r, authenticator, bank := newTestEnv(t)
	saveConf(t, db, htlc.Configuration{
		Metadata:       &weave.Metadata{Schema: 1},
		Owner:          weavetest.NewCondition().Address(),
		FeeAccount:     weavetest.NewCondition().Address(),
		DefaultFeeRate: 0,
		Scale:          10000,
	})
	whitelistToken(t, db, issuer, "EOS", 4)

	quantity := coin.NewCoin(100, 0, "EOS")
	setBalance(t, bank, db, alice.Address(), mustCombine(t, coin.NewCoin(200, 0, "EOS")))

	ctx := weave.WithHeight(context.Background(), 500)
	ctx = weave.WithBlockTime(ctx, blockNow)
	ctx = authenticator.SetConditions(ctx, alice)

	msg := &htlc.DepositMsg{
		Metadata:  &weave.Metadata{Schema: 1},
		Sender:    alice.Address(),
		Recipient: htlc.EscrowAddr(),
		Quantity:  &quantity,
		Precision: 4,
		Issuer:    issuer,
		Memo: depositMemo(bob.Address(), htlc.DoubleHash([]byte("secret")),
			weave.AsUnixTime(blockNow.Add(time.Hour))),
	}
	tx := &weavetest.Tx{Msg: msg}

	if _, err := r.Deliver(ctx, db, tx); err != nil {
		t.Fatalf("first deposit failed: %+v", err)
	}
	// Identical parameters derive the same lock identifier and must bounce.
	if _, err := r.Deliver(ctx, db, tx); !errors.ErrDuplicate.Is(err) {
		t.Fatalf("second deposit expected duplicate error, got %+v", err)
	}
}

func TestWithdrawHandler(t *testing.T) {
	alice := weavetest.NewCondition()
	bob := weavetest.NewCondition()
	operator := weavetest.NewCondition()
	owner := weavetest.NewCondition()
	issuer := weavetest.NewCondition().Address()
	feeAcct := weavetest.NewCondition().Address()

	preimage := []byte("secret")
	quantity := coin.NewCoin(100, 0, "EOS")
	expiry := weave.AsUnixTime(blockNow.Add(time.Hour))

	newLock := func() *htlc.Lock {
		return &htlc.Lock{
			Metadata:     &weave.Metadata{Schema: 1},
			Sender:       alice.Address(),
			Receiver:     bob.Address(),
			Issuer:       issuer,
			Quantity:     &quantity,
			Precision:    4,
			PreimageHash: htlc.DoubleHash(preimage),
			Expiry:       expiry,
		}
	}

	cases := map[string]struct {
		setup          func(t *testing.T, ctx weave.Context, db weave.KVStore, auth *weavetest.CtxAuth, lock *htlc.Lock) weave.Context
		mutator        func(*htlc.WithdrawMsg)
		wantCheckErr   *errors.Error
		wantDeliverErr *errors.Error
		check          func(t *testing.T, db weave.KVStore, bank cash.Bucket, lockID []byte)
	}{
		"happy path with default fee": {
			setup: func(t *testing.T, ctx weave.Context, db weave.KVStore, auth *weavetest.CtxAuth, lock *htlc.Lock) weave.Context {
				return auth.SetConditions(ctx, operator)
			},
			check: func(t *testing.T, db weave.KVStore, bank cash.Bucket, lockID []byte) {
				// 100 EOS at rate 100 of scale 10000 is a 1 EOS fee.
				got := balance(t, bank, db, bob.Address())
				assert.Equal(t, true, got.Equals(mustCombine(t, coin.NewCoin(99, 0, "EOS"))))
				fees := balance(t, bank, db, feeAcct)
				assert.Equal(t, true, fees.Equals(mustCombine(t, coin.NewCoin(1, 0, "EOS"))))

				var lock htlc.Lock
				err := htlc.NewLockBucket().One(db, lockID, &lock)
				assert.Nil(t, err)
				assert.Equal(t, true, lock.Withdrawn)
				assert.Equal(t, false, lock.Refunded)
			},
		},
		"operator override waives the fee": {
			setup: func(t *testing.T, ctx weave.Context, db weave.KVStore, auth *weavetest.CtxAuth, lock *htlc.Lock) weave.Context {
				fee := htlc.Fee{
					Metadata: &weave.Metadata{Schema: 1},
					Operator: operator.Address(),
					Rate:     0,
				}
				_, err := htlc.NewFeeBucket().Put(db, operator.Address(), &fee)
				assert.Nil(t, err)
				return auth.SetConditions(ctx, operator)
			},
			check: func(t *testing.T, db weave.KVStore, bank cash.Bucket, lockID []byte) {
				got := balance(t, bank, db, bob.Address())
				assert.Equal(t, true, got.Equals(mustCombine(t, quantity)))
				fees := balance(t, bank, db, feeAcct)
				assert.Equal(t, true, fees.IsEmpty())
			},
		},
		"wrong preimage": {
			setup: func(t *testing.T, ctx weave.Context, db weave.KVStore, auth *weavetest.CtxAuth, lock *htlc.Lock) weave.Context {
				return auth.SetConditions(ctx, operator)
			},
			mutator: func(msg *htlc.WithdrawMsg) {
				msg.Preimage = []byte("guesswork")
			},
			wantCheckErr:   htlc.ErrPreimageMismatch,
			wantDeliverErr: htlc.ErrPreimageMismatch,
		},
		"already withdrawn": {
			setup: func(t *testing.T, ctx weave.Context, db weave.KVStore, auth *weavetest.CtxAuth, lock *htlc.Lock) weave.Context {
				lock.Withdrawn = true
				return auth.SetConditions(ctx, operator)
			},
			wantCheckErr:   htlc.ErrAlreadySettled,
			wantDeliverErr: htlc.ErrAlreadySettled,
		},
		"already refunded": {
			setup: func(t *testing.T, ctx weave.Context, db weave.KVStore, auth *weavetest.CtxAuth, lock *htlc.Lock) weave.Context {
				lock.Refunded = true
				return auth.SetConditions(ctx, operator)
			},
			wantCheckErr:   htlc.ErrAlreadySettled,
			wantDeliverErr: htlc.ErrAlreadySettled,
		},
		"expired lock": {
			setup: func(t *testing.T, ctx weave.Context, db weave.KVStore, auth *weavetest.CtxAuth, lock *htlc.Lock) weave.Context {
				lock.Expiry = weave.AsUnixTime(blockNow.Add(-time.Minute))
				return auth.SetConditions(ctx, operator)
			},
			wantCheckErr:   errors.ErrExpired,
			wantDeliverErr: errors.ErrExpired,
		},
		"deadline instant belongs to refund": {
			setup: func(t *testing.T, ctx weave.Context, db weave.KVStore, auth *weavetest.CtxAuth, lock *htlc.Lock) weave.Context {
				lock.Expiry = weave.AsUnixTime(blockNow)
				return auth.SetConditions(ctx, operator)
			},
			wantCheckErr:   errors.ErrExpired,
			wantDeliverErr: errors.ErrExpired,
		},
		"operator did not sign": {
			setup: func(t *testing.T, ctx weave.Context, db weave.KVStore, auth *weavetest.CtxAuth, lock *htlc.Lock) weave.Context {
				return auth.SetConditions(ctx, bob)
			},
			wantCheckErr:   errors.ErrUnauthorized,
			wantDeliverErr: errors.ErrUnauthorized,
		},
		"unknown lock": {
			setup: func(t *testing.T, ctx weave.Context, db weave.KVStore, auth *weavetest.CtxAuth, lock *htlc.Lock) weave.Context {
				return auth.SetConditions(ctx, operator)
			},
			mutator: func(msg *htlc.WithdrawMsg) {
				msg.LockID = make([]byte, 32)
			},
			wantCheckErr:   errors.ErrNotFound,
			wantDeliverErr: errors.ErrNotFound,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			db, r, authenticator, bank := newTestEnv(t)
			saveConf(t, db, htlc.Configuration{
				Metadata:       &weave.Metadata{Schema: 1},
				Owner:          owner.Address(),
				FeeAccount:     feeAcct,
				DefaultFeeRate: 100,
				Scale:          10000,
			})
			setBalance(t, bank, db, htlc.EscrowAddr(), mustCombine(t, quantity))

			ctx := weave.WithHeight(context.Background(), 500)
			ctx = weave.WithBlockTime(ctx, blockNow)

			lock := newLock()
			if tc.setup != nil {
				ctx = tc.setup(t, ctx, db, authenticator, lock)
			}
			lockID := htlc.LockID(lock.Sender, lock.Receiver, *lock.Quantity, lock.Precision, lock.PreimageHash, lock.Expiry)
			_, err := htlc.NewLockBucket().Put(db, lockID, lock)
			assert.Nil(t, err)

			msg := &htlc.WithdrawMsg{
				Metadata: &weave.Metadata{Schema: 1},
				LockID:   lockID,
				Preimage: preimage,
				Operator: operator.Address(),
			}
			if tc.mutator != nil {
				tc.mutator(msg)
			}
			tx := &weavetest.Tx{Msg: msg}

			cache := db.CacheWrap()
			if _, err := r.Check(ctx, cache, tx); !tc.wantCheckErr.Is(err) {
				t.Fatalf("check expected %+v but got %+v", tc.wantCheckErr, err)
			}
			cache.Discard()

			if _, err := r.Deliver(ctx, cache, tx); !tc.wantDeliverErr.Is(err) {
				t.Fatalf("deliver expected %+v but got %+v", tc.wantDeliverErr, err)
			}
			if tc.check != nil {
				tc.check(t, cache, bank, lockID)
			}
		})
	}
}

func TestWithdrawFeeTruncatedToAssetPrecision(t *testing.T) {
	alice := weavetest.NewCondition()
	bob := weavetest.NewCondition()
	operator := weavetest.NewCondition()
	owner := weavetest.NewCondition()
	issuer := weavetest.NewCondition().Address()
	feeAcct := weavetest.NewCondition().Address()

	preimage := []byte("secret")

	cases := map[string]struct {
		quantity   coin.Coin
		wantPayout coin.Coin
		wantFee    *coin.Coin
	}{
		"fee below the minimum unit is waived": {
			// 0.0001 EOS at rate 100 of scale 10000 computes a
			// 0.000001 EOS fee. No such quantity exists at precision 4,
			// so nothing is collected.
			quantity:   coin.NewCoin(0, 100000, "EOS"),
			wantPayout: coin.NewCoin(0, 100000, "EOS"),
		},
		"fee dust beyond the minimum unit is dropped": {
			// 1.0001 EOS computes a 0.010001 EOS fee, collected as
			// 0.01 EOS. The payout keeps the difference.
			quantity:   coin.NewCoin(1, 100000, "EOS"),
			wantPayout: coin.NewCoin(0, 990100000, "EOS"),
			wantFee:    coinp(coin.NewCoin(0, 10000000, "EOS")),
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			db, r, authenticator, bank := newTestEnv(t)
			saveConf(t, db, htlc.Configuration{
				Metadata:       &weave.Metadata{Schema: 1},
				Owner:          owner.Address(),
				FeeAccount:     feeAcct,
				DefaultFeeRate: 100,
				Scale:          10000,
			})
			setBalance(t, bank, db, htlc.EscrowAddr(), mustCombine(t, tc.quantity))

			ctx := weave.WithHeight(context.Background(), 500)
			ctx = weave.WithBlockTime(ctx, blockNow)
			ctx = authenticator.SetConditions(ctx, operator)

			lock := &htlc.Lock{
				Metadata:     &weave.Metadata{Schema: 1},
				Sender:       alice.Address(),
				Receiver:     bob.Address(),
				Issuer:       issuer,
				Quantity:     &tc.quantity,
				Precision:    4,
				PreimageHash: htlc.DoubleHash(preimage),
				Expiry:       weave.AsUnixTime(blockNow.Add(time.Hour)),
			}
			lockID := htlc.LockID(lock.Sender, lock.Receiver, *lock.Quantity, lock.Precision, lock.PreimageHash, lock.Expiry)
			_, err := htlc.NewLockBucket().Put(db, lockID, lock)
			assert.Nil(t, err)

			tx := &weavetest.Tx{Msg: &htlc.WithdrawMsg{
				Metadata: &weave.Metadata{Schema: 1},
				LockID:   lockID,
				Preimage: preimage,
				Operator: operator.Address(),
			}}
			_, err = r.Deliver(ctx, db, tx)
			assert.Nil(t, err)

			got := balance(t, bank, db, bob.Address())
			assert.Equal(t, true, got.Equals(mustCombine(t, tc.wantPayout)))
			fees := balance(t, bank, db, feeAcct)
			if tc.wantFee == nil {
				assert.Equal(t, true, fees.IsEmpty())
			} else {
				assert.Equal(t, true, fees.Equals(mustCombine(t, *tc.wantFee)))
			}
		})
	}
}

func coinp(c coin.Coin) *coin.Coin {
	return &c
}

func TestRefundHandler(t *testing.T) {
	alice := weavetest.NewCondition()
	bob := weavetest.NewCondition()
	owner := weavetest.NewCondition()
	issuer := weavetest.NewCondition().Address()

	quantity := coin.NewCoin(100, 0, "EOS")

	newLock := func() *htlc.Lock {
		return &htlc.Lock{
			Metadata:     &weave.Metadata{Schema: 1},
			Sender:       alice.Address(),
			Receiver:     bob.Address(),
			Issuer:       issuer,
			Quantity:     &quantity,
			Precision:    4,
			PreimageHash: htlc.DoubleHash([]byte("secret")),
			Expiry:       weave.AsUnixTime(blockNow.Add(-time.Minute)),
		}
	}

	cases := map[string]struct {
		setup          func(t *testing.T, ctx weave.Context, auth *weavetest.CtxAuth, lock *htlc.Lock) weave.Context
		wantCheckErr   *errors.Error
		wantDeliverErr *errors.Error
		check          func(t *testing.T, db weave.KVStore, bank cash.Bucket, lockID []byte)
	}{
		"happy path": {
			setup: func(t *testing.T, ctx weave.Context, auth *weavetest.CtxAuth, lock *htlc.Lock) weave.Context {
				return auth.SetConditions(ctx, alice)
			},
			check: func(t *testing.T, db weave.KVStore, bank cash.Bucket, lockID []byte) {
				// The full quantity returns to the sender.
				got := balance(t, bank, db, alice.Address())
				assert.Equal(t, true, got.Equals(mustCombine(t, quantity)))

				var lock htlc.Lock
				err := htlc.NewLockBucket().One(db, lockID, &lock)
				assert.Nil(t, err)
				assert.Equal(t, true, lock.Refunded)
				assert.Equal(t, false, lock.Withdrawn)
			},
		},
		"refundable exactly at the deadline": {
			setup: func(t *testing.T, ctx weave.Context, auth *weavetest.CtxAuth, lock *htlc.Lock) weave.Context {
				lock.Expiry = weave.AsUnixTime(blockNow)
				return auth.SetConditions(ctx, alice)
			},
		},
		"not yet expired": {
			setup: func(t *testing.T, ctx weave.Context, auth *weavetest.CtxAuth, lock *htlc.Lock) weave.Context {
				lock.Expiry = weave.AsUnixTime(blockNow.Add(time.Hour))
				return auth.SetConditions(ctx, alice)
			},
			wantCheckErr:   htlc.ErrNotYetExpired,
			wantDeliverErr: htlc.ErrNotYetExpired,
		},
		"already settled": {
			setup: func(t *testing.T, ctx weave.Context, auth *weavetest.CtxAuth, lock *htlc.Lock) weave.Context {
				lock.Withdrawn = true
				return auth.SetConditions(ctx, alice)
			},
			wantCheckErr:   htlc.ErrAlreadySettled,
			wantDeliverErr: htlc.ErrAlreadySettled,
		},
		"only the sender can refund": {
			setup: func(t *testing.T, ctx weave.Context, auth *weavetest.CtxAuth, lock *htlc.Lock) weave.Context {
				return auth.SetConditions(ctx, bob)
			},
			wantCheckErr:   errors.ErrUnauthorized,
			wantDeliverErr: errors.ErrUnauthorized,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			db, r, authenticator, bank := newTestEnv(t)
			saveConf(t, db, htlc.Configuration{
				Metadata:       &weave.Metadata{Schema: 1},
				Owner:          owner.Address(),
				FeeAccount:     weavetest.NewCondition().Address(),
				DefaultFeeRate: 100,
				Scale:          10000,
			})
			setBalance(t, bank, db, htlc.EscrowAddr(), mustCombine(t, quantity))

			ctx := weave.WithHeight(context.Background(), 500)
			ctx = weave.WithBlockTime(ctx, blockNow)

			lock := newLock()
			if tc.setup != nil {
				ctx = tc.setup(t, ctx, authenticator, lock)
			}
			lockID := htlc.LockID(lock.Sender, lock.Receiver, *lock.Quantity, lock.Precision, lock.PreimageHash, lock.Expiry)
			_, err := htlc.NewLockBucket().Put(db, lockID, lock)
			assert.Nil(t, err)

			tx := &weavetest.Tx{Msg: &htlc.RefundMsg{
				Metadata: &weave.Metadata{Schema: 1},
				LockID:   lockID,
			}}

			cache := db.CacheWrap()
			if _, err := r.Check(ctx, cache, tx); !tc.wantCheckErr.Is(err) {
				t.Fatalf("check expected %+v but got %+v", tc.wantCheckErr, err)
			}
			cache.Discard()

			if _, err := r.Deliver(ctx, cache, tx); !tc.wantDeliverErr.Is(err) {
				t.Fatalf("deliver expected %+v but got %+v", tc.wantDeliverErr, err)
			}
			if tc.check != nil {
				tc.check(t, cache, bank, lockID)
			}
		})
	}
}

func TestSetFeeHandler(t *testing.T) {
	owner := weavetest.NewCondition()
	operator := weavetest.NewCondition()

	cases := map[string]struct {
		signer         weave.Condition
		rate           int64
		wantDeliverErr *errors.Error
	}{
		"owner sets a rate": {
			signer: owner,
			rate:   500,
		},
		"rate at scale is rejected": {
			signer:         owner,
			rate:           10000,
			wantDeliverErr: htlc.ErrInvalidFeeRate,
		},
		"rate above scale is rejected": {
			signer:         owner,
			rate:           20000,
			wantDeliverErr: htlc.ErrInvalidFeeRate,
		},
		"negative rate is rejected": {
			signer:         owner,
			rate:           -5,
			wantDeliverErr: htlc.ErrInvalidFeeRate,
		},
		"only the owner may configure fees": {
			signer:         operator,
			rate:           500,
			wantDeliverErr: errors.ErrUnauthorized,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			db, r, authenticator, _ := newTestEnv(t)
			saveConf(t, db, htlc.Configuration{
				Metadata:       &weave.Metadata{Schema: 1},
				Owner:          owner.Address(),
				FeeAccount:     weavetest.NewCondition().Address(),
				DefaultFeeRate: 100,
				Scale:          10000,
			})

			ctx := weave.WithHeight(context.Background(), 500)
			ctx = weave.WithBlockTime(ctx, blockNow)
			ctx = authenticator.SetConditions(ctx, tc.signer)

			tx := &weavetest.Tx{Msg: &htlc.SetFeeMsg{
				Metadata: &weave.Metadata{Schema: 1},
				Operator: operator.Address(),
				Rate:     tc.rate,
			}}

			_, err := r.Deliver(ctx, db, tx)
			if !tc.wantDeliverErr.Is(err) {
				t.Fatalf("deliver expected %+v but got %+v", tc.wantDeliverErr, err)
			}
			if err != nil {
				return
			}

			var fee htlc.Fee
			err = htlc.NewFeeBucket().One(db, operator.Address(), &fee)
			assert.Nil(t, err)
			assert.Equal(t, tc.rate, fee.Rate)
		})
	}
}

func TestTokenHandlers(t *testing.T) {
	owner := weavetest.NewCondition()
	stranger := weavetest.NewCondition()
	issuer := weavetest.NewCondition().Address()

	db, r, authenticator, _ := newTestEnv(t)
	saveConf(t, db, htlc.Configuration{
		Metadata:       &weave.Metadata{Schema: 1},
		Owner:          owner.Address(),
		FeeAccount:     weavetest.NewCondition().Address(),
		DefaultFeeRate: 100,
		Scale:          10000,
	})

	ctx := weave.WithHeight(context.Background(), 500)
	ctx = weave.WithBlockTime(ctx, blockNow)
	ownerCtx := authenticator.SetConditions(ctx, owner)
	strangerCtx := authenticator.SetConditions(ctx, stranger)

	setMsg := &htlc.SetTokenMsg{
		Metadata:  &weave.Metadata{Schema: 1},
		Ticker:    "EOS",
		Precision: 4,
		Issuer:    issuer,
	}
	if _, err := r.Deliver(strangerCtx, db, &weavetest.Tx{Msg: setMsg}); !errors.ErrUnauthorized.Is(err) {
		t.Fatalf("stranger must not whitelist assets, got %+v", err)
	}

	res, err := r.Deliver(ownerCtx, db, &weavetest.Tx{Msg: setMsg})
	assert.Nil(t, err)

	var token htlc.Token
	tokens := htlc.NewTokenBucket()
	err = tokens.One(db, res.Data, &token)
	assert.Nil(t, err)
	assert.Equal(t, uint32(4), token.Precision)

	// Re-registering with a different precision overwrites the entry.
	setMsg.Precision = 6
	_, err = r.Deliver(ownerCtx, db, &weavetest.Tx{Msg: setMsg})
	assert.Nil(t, err)
	err = tokens.One(db, res.Data, &token)
	assert.Nil(t, err)
	assert.Equal(t, uint32(6), token.Precision)

	unsetMsg := &htlc.UnsetTokenMsg{
		Metadata: &weave.Metadata{Schema: 1},
		Ticker:   "EOS",
		Issuer:   issuer,
	}
	if _, err := r.Deliver(strangerCtx, db, &weavetest.Tx{Msg: unsetMsg}); !errors.ErrUnauthorized.Is(err) {
		t.Fatalf("stranger must not remove whitelist entries, got %+v", err)
	}
	_, err = r.Deliver(ownerCtx, db, &weavetest.Tx{Msg: unsetMsg})
	assert.Nil(t, err)

	if err := tokens.One(db, res.Data, &token); !errors.ErrNotFound.Is(err) {
		t.Fatalf("token must be gone, got %+v", err)
	}
}
