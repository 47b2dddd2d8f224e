package htlc_test

import (
	"strings"
	"testing"

	"github.com/iov-one/htlc/x/htlc"
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/weavetest"
)

func TestDepositMsgValidate(t *testing.T) {
	quantity := coin.NewCoin(100, 0, "EOS")
	validMsg := func() *htlc.DepositMsg {
		return &htlc.DepositMsg{
			Metadata:  &weave.Metadata{Schema: 1},
			Sender:    weavetest.NewCondition().Address(),
			Recipient: weavetest.NewCondition().Address(),
			Quantity:  &quantity,
			Precision: 4,
			Issuer:    weavetest.NewCondition().Address(),
			Memo:      "receiver-hash-deadline",
		}
	}

	cases := map[string]struct {
		mutator func(*htlc.DepositMsg)
		wantErr *errors.Error
	}{
		"valid message": {},
		"missing metadata": {
			mutator: func(m *htlc.DepositMsg) { m.Metadata = nil },
			wantErr: errors.ErrMetadata,
		},
		"missing sender": {
			mutator: func(m *htlc.DepositMsg) { m.Sender = nil },
			wantErr: errors.ErrEmpty,
		},
		"missing quantity": {
			mutator: func(m *htlc.DepositMsg) { m.Quantity = nil },
			wantErr: errors.ErrEmpty,
		},
		"precision too big": {
			mutator: func(m *htlc.DepositMsg) { m.Precision = 10 },
			wantErr: errors.ErrInput,
		},
		"memo too long": {
			mutator: func(m *htlc.DepositMsg) { m.Memo = strings.Repeat("x", 257) },
			wantErr: errors.ErrInput,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			msg := validMsg()
			if tc.mutator != nil {
				tc.mutator(msg)
			}
			if err := msg.Validate(); !tc.wantErr.Is(err) {
				t.Fatalf("unexpected validation error: %+v", err)
			}
		})
	}
}

func TestWithdrawMsgValidate(t *testing.T) {
	validMsg := func() *htlc.WithdrawMsg {
		return &htlc.WithdrawMsg{
			Metadata: &weave.Metadata{Schema: 1},
			LockID:   make([]byte, 32),
			Preimage: []byte("secret"),
			Operator: weavetest.NewCondition().Address(),
		}
	}

	cases := map[string]struct {
		mutator func(*htlc.WithdrawMsg)
		wantErr *errors.Error
	}{
		"valid message": {},
		"short lock id": {
			mutator: func(m *htlc.WithdrawMsg) { m.LockID = []byte{1, 2, 3} },
			wantErr: errors.ErrInput,
		},
		"missing preimage": {
			mutator: func(m *htlc.WithdrawMsg) { m.Preimage = nil },
			wantErr: errors.ErrEmpty,
		},
		"huge preimage": {
			mutator: func(m *htlc.WithdrawMsg) { m.Preimage = make([]byte, 129) },
			wantErr: errors.ErrInput,
		},
		"missing operator": {
			mutator: func(m *htlc.WithdrawMsg) { m.Operator = nil },
			wantErr: errors.ErrEmpty,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			msg := validMsg()
			if tc.mutator != nil {
				tc.mutator(msg)
			}
			if err := msg.Validate(); !tc.wantErr.Is(err) {
				t.Fatalf("unexpected validation error: %+v", err)
			}
		})
	}
}

func TestUpdateConfigurationMsgValidate(t *testing.T) {
	cases := map[string]struct {
		msg     htlc.UpdateConfigurationMsg
		wantErr *errors.Error
	}{
		"valid patch": {
			msg: htlc.UpdateConfigurationMsg{
				Metadata: &weave.Metadata{Schema: 1},
				Patch: &htlc.Configuration{
					DefaultFeeRate: 50,
				},
			},
		},
		"missing patch": {
			msg: htlc.UpdateConfigurationMsg{
				Metadata: &weave.Metadata{Schema: 1},
			},
			wantErr: errors.ErrEmpty,
		},
		"negative default fee rate": {
			msg: htlc.UpdateConfigurationMsg{
				Metadata: &weave.Metadata{Schema: 1},
				Patch: &htlc.Configuration{
					DefaultFeeRate: -1,
				},
			},
			wantErr: htlc.ErrInvalidFeeRate,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			if err := tc.msg.Validate(); !tc.wantErr.Is(err) {
				t.Fatalf("unexpected validation error: %+v", err)
			}
		})
	}
}

func TestMsgPaths(t *testing.T) {
	paths := map[string]weave.Msg{
		"htlc/deposit":              &htlc.DepositMsg{},
		"htlc/withdraw":             &htlc.WithdrawMsg{},
		"htlc/refund":               &htlc.RefundMsg{},
		"htlc/set_fee":              &htlc.SetFeeMsg{},
		"htlc/update_configuration": &htlc.UpdateConfigurationMsg{},
		"htlc/set_token":            &htlc.SetTokenMsg{},
		"htlc/unset_token":          &htlc.UnsetTokenMsg{},
		"htlc/cleanup_finalized":    &htlc.CleanupFinalizedMsg{},
		"htlc/cleanup_all":          &htlc.CleanupAllMsg{},
	}
	for want, msg := range paths {
		if got := msg.Path(); got != want {
			t.Fatalf("want path %q, got %q", want, got)
		}
	}
}
