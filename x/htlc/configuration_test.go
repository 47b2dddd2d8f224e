package htlc_test

import (
	"context"
	"testing"

	"github.com/iov-one/htlc/x/htlc"
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/gconf"
	"github.com/iov-one/weave/weavetest"
	"github.com/iov-one/weave/weavetest/assert"
)

func TestConfigurationValidate(t *testing.T) {
	validConf := func() htlc.Configuration {
		return htlc.Configuration{
			Metadata:       &weave.Metadata{Schema: 1},
			Owner:          weavetest.NewCondition().Address(),
			FeeAccount:     weavetest.NewCondition().Address(),
			DefaultFeeRate: 100,
			Scale:          10000,
		}
	}

	cases := map[string]struct {
		mutator func(*htlc.Configuration)
		wantErr *errors.Error
	}{
		"valid configuration": {},
		"zero default rate is allowed": {
			mutator: func(c *htlc.Configuration) { c.DefaultFeeRate = 0 },
		},
		"missing owner": {
			mutator: func(c *htlc.Configuration) { c.Owner = nil },
			wantErr: errors.ErrEmpty,
		},
		"missing fee account": {
			mutator: func(c *htlc.Configuration) { c.FeeAccount = nil },
			wantErr: errors.ErrEmpty,
		},
		"zero scale": {
			mutator: func(c *htlc.Configuration) { c.Scale = 0 },
			wantErr: errors.ErrModel,
		},
		"rate equal to scale": {
			mutator: func(c *htlc.Configuration) { c.DefaultFeeRate = 10000 },
			wantErr: htlc.ErrInvalidFeeRate,
		},
		"rate above scale": {
			mutator: func(c *htlc.Configuration) { c.DefaultFeeRate = 99999 },
			wantErr: htlc.ErrInvalidFeeRate,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			conf := validConf()
			if tc.mutator != nil {
				tc.mutator(&conf)
			}
			if err := conf.Validate(); !tc.wantErr.Is(err) {
				t.Fatalf("unexpected validation error: %+v", err)
			}
		})
	}
}

func TestUpdateConfigurationHandler(t *testing.T) {
	owner := weavetest.NewCondition()
	stranger := weavetest.NewCondition()

	db, r, authenticator, _ := newTestEnv(t)
	saveConf(t, db, htlc.Configuration{
		Metadata:       &weave.Metadata{Schema: 1},
		Owner:          owner.Address(),
		FeeAccount:     weavetest.NewCondition().Address(),
		DefaultFeeRate: 100,
		Scale:          10000,
	})

	ctx := weave.WithHeight(context.Background(), 500)

	patchRate := func(rate int64) weave.Tx {
		return &weavetest.Tx{Msg: &htlc.UpdateConfigurationMsg{
			Metadata: &weave.Metadata{Schema: 1},
			Patch: &htlc.Configuration{
				DefaultFeeRate: rate,
			},
		}}
	}

	strangerCtx := authenticator.SetConditions(ctx, stranger)
	if _, err := r.Deliver(strangerCtx, db, patchRate(50)); !errors.ErrUnauthorized.Is(err) {
		t.Fatalf("stranger must not update the configuration, got %+v", err)
	}

	ownerCtx := authenticator.SetConditions(ctx, owner)
	_, err := r.Deliver(ownerCtx, db, patchRate(50))
	assert.Nil(t, err)

	var conf htlc.Configuration
	err = gconf.Load(db, "htlc", &conf)
	assert.Nil(t, err)
	assert.Equal(t, int64(50), conf.DefaultFeeRate)
	// Fields not present in the patch keep their value.
	assert.Equal(t, int64(10000), conf.Scale)
	assert.Equal(t, owner.Address(), conf.Owner)

	// A patch putting the rate at or above the scale fails the
	// configuration validation and must not be stored.
	if _, err := r.Deliver(ownerCtx, db, patchRate(10000)); !htlc.ErrInvalidFeeRate.Is(err) {
		t.Fatalf("rate at scale must be rejected, got %+v", err)
	}
	err = gconf.Load(db, "htlc", &conf)
	assert.Nil(t, err)
	assert.Equal(t, int64(50), conf.DefaultFeeRate)
}
