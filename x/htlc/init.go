package htlc

import (
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/gconf"
)

// Initializer fulfils the Initializer interface to load data from the genesis
// file
type Initializer struct{}

var _ weave.Initializer = (*Initializer)(nil)

// FromGenesis will parse the escrow configuration and the initial asset
// whitelist from genesis and save them to the database.
func (*Initializer) FromGenesis(opts weave.Options, params weave.GenesisParams, kv weave.KVStore) error {
	switch err := gconf.InitConfig(kv, opts, "htlc", &Configuration{}); {
	default:
		// All good.
	case errors.ErrNotFound.Is(err):
		// The configuration can be created later by the migration admin
		// via the update configuration message.
	case err != nil:
		return errors.Wrap(err, "init config")
	}

	var tokens []struct {
		Ticker    string        `json:"ticker"`
		Precision uint32        `json:"precision"`
		Issuer    weave.Address `json:"issuer"`
	}
	if err := opts.ReadOptions("htlctokens", &tokens); err != nil {
		return errors.Wrap(err, "read tokens")
	}

	bucket := NewTokenBucket()
	for _, t := range tokens {
		token := Token{
			Metadata:  &weave.Metadata{Schema: 1},
			Ticker:    t.Ticker,
			Precision: t.Precision,
			Issuer:    t.Issuer,
		}
		if err := token.Validate(); err != nil {
			return errors.Wrapf(err, "token %q", t.Ticker)
		}
		if _, err := bucket.Put(kv, tokenKey(token.Issuer, token.Ticker), &token); err != nil {
			return errors.Wrapf(err, "cannot store token %q", t.Ticker)
		}
	}
	return nil
}
