package htlc_test

import (
	"testing"
	"time"

	"github.com/iov-one/htlc/x/htlc"
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/weavetest"
)

func validLock() *htlc.Lock {
	quantity := coin.NewCoin(100, 0, "EOS")
	return &htlc.Lock{
		Metadata:     &weave.Metadata{Schema: 1},
		Sender:       weavetest.NewCondition().Address(),
		Receiver:     weavetest.NewCondition().Address(),
		Issuer:       weavetest.NewCondition().Address(),
		Quantity:     &quantity,
		Precision:    4,
		PreimageHash: htlc.DoubleHash([]byte("secret")),
		Expiry:       weave.AsUnixTime(time.Now().Add(time.Hour)),
	}
}

func TestLockValidate(t *testing.T) {
	cases := map[string]struct {
		mutator func(*htlc.Lock)
		wantErr *errors.Error
	}{
		"valid lock": {
			mutator: nil,
			wantErr: nil,
		},
		"missing metadata": {
			mutator: func(l *htlc.Lock) { l.Metadata = nil },
			wantErr: errors.ErrMetadata,
		},
		"missing sender": {
			mutator: func(l *htlc.Lock) { l.Sender = nil },
			wantErr: errors.ErrEmpty,
		},
		"missing quantity": {
			mutator: func(l *htlc.Lock) { l.Quantity = nil },
			wantErr: errors.ErrEmpty,
		},
		"zero quantity": {
			mutator: func(l *htlc.Lock) {
				c := coin.NewCoin(0, 0, "EOS")
				l.Quantity = &c
			},
			wantErr: errors.ErrAmount,
		},
		"negative quantity": {
			mutator: func(l *htlc.Lock) {
				c := coin.NewCoin(-1, 0, "EOS")
				l.Quantity = &c
			},
			wantErr: errors.ErrAmount,
		},
		"precision too big": {
			mutator: func(l *htlc.Lock) { l.Precision = 10 },
			wantErr: errors.ErrModel,
		},
		"short preimage hash": {
			mutator: func(l *htlc.Lock) { l.PreimageHash = []byte{0, 1, 2} },
			wantErr: errors.ErrInput,
		},
		"missing expiry": {
			mutator: func(l *htlc.Lock) { l.Expiry = 0 },
			wantErr: errors.ErrInput,
		},
		"withdrawn and refunded": {
			mutator: func(l *htlc.Lock) {
				l.Withdrawn = true
				l.Refunded = true
			},
			wantErr: errors.ErrState,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			lock := validLock()
			if tc.mutator != nil {
				tc.mutator(lock)
			}
			if err := lock.Validate(); !tc.wantErr.Is(err) {
				t.Fatalf("unexpected validation error: %+v", err)
			}
		})
	}
}

func TestLockIsSettled(t *testing.T) {
	lock := validLock()
	if lock.IsSettled() {
		t.Fatal("a pending lock must not be settled")
	}
	lock.Withdrawn = true
	if !lock.IsSettled() {
		t.Fatal("a withdrawn lock must be settled")
	}
	lock.Withdrawn = false
	lock.Refunded = true
	if !lock.IsSettled() {
		t.Fatal("a refunded lock must be settled")
	}
}

func TestFeeValidate(t *testing.T) {
	cases := map[string]struct {
		fee     htlc.Fee
		wantErr *errors.Error
	}{
		"valid fee": {
			fee: htlc.Fee{
				Metadata: &weave.Metadata{Schema: 1},
				Operator: weavetest.NewCondition().Address(),
				Rate:     100,
			},
		},
		"zero rate is allowed": {
			fee: htlc.Fee{
				Metadata: &weave.Metadata{Schema: 1},
				Operator: weavetest.NewCondition().Address(),
				Rate:     0,
			},
		},
		"negative rate": {
			fee: htlc.Fee{
				Metadata: &weave.Metadata{Schema: 1},
				Operator: weavetest.NewCondition().Address(),
				Rate:     -1,
			},
			wantErr: htlc.ErrInvalidFeeRate,
		},
		"missing operator": {
			fee: htlc.Fee{
				Metadata: &weave.Metadata{Schema: 1},
				Rate:     100,
			},
			wantErr: errors.ErrEmpty,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			if err := tc.fee.Validate(); !tc.wantErr.Is(err) {
				t.Fatalf("unexpected validation error: %+v", err)
			}
		})
	}
}

func TestTokenValidate(t *testing.T) {
	cases := map[string]struct {
		token   htlc.Token
		wantErr *errors.Error
	}{
		"valid token": {
			token: htlc.Token{
				Metadata:  &weave.Metadata{Schema: 1},
				Ticker:    "EOS",
				Precision: 4,
				Issuer:    weavetest.NewCondition().Address(),
			},
		},
		"invalid ticker": {
			token: htlc.Token{
				Metadata:  &weave.Metadata{Schema: 1},
				Ticker:    "this-is-not-a-ticker",
				Precision: 4,
				Issuer:    weavetest.NewCondition().Address(),
			},
			wantErr: errors.ErrCurrency,
		},
		"precision too big": {
			token: htlc.Token{
				Metadata:  &weave.Metadata{Schema: 1},
				Ticker:    "EOS",
				Precision: 12,
				Issuer:    weavetest.NewCondition().Address(),
			},
			wantErr: errors.ErrModel,
		},
		"missing issuer": {
			token: htlc.Token{
				Metadata:  &weave.Metadata{Schema: 1},
				Ticker:    "EOS",
				Precision: 4,
			},
			wantErr: errors.ErrEmpty,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			if err := tc.token.Validate(); !tc.wantErr.Is(err) {
				t.Fatalf("unexpected validation error: %+v", err)
			}
		})
	}
}
