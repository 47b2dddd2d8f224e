package htlc_test

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/iov-one/htlc/x/htlc"
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/gconf"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/store"
	"github.com/iov-one/weave/weavetest"
	"github.com/iov-one/weave/weavetest/assert"
)

func TestGenesisInitializer(t *testing.T) {
	owner := weavetest.NewCondition().Address()
	feeAcct := weavetest.NewCondition().Address()
	issuer := weavetest.NewCondition().Address()

	const genesisFmt = `
		{
			"conf": {
				"htlc": {
					"metadata": {"schema": 1},
					"owner": "%s",
					"fee_account": "%s",
					"default_fee_rate": 100,
					"scale": 10000
				}
			},
			"htlctokens": [
				{"ticker": "EOS", "precision": 4, "issuer": "%s"}
			]
		}
	`
	genesis := fmt.Sprintf(genesisFmt,
		hex.EncodeToString(owner), hex.EncodeToString(feeAcct), hex.EncodeToString(issuer))

	var opts weave.Options
	if err := json.Unmarshal([]byte(genesis), &opts); err != nil {
		t.Fatalf("cannot unmarshal genesis: %+v", err)
	}

	db := store.MemStore()
	migration.MustInitPkg(db, "htlc")

	var ini htlc.Initializer
	if err := ini.FromGenesis(opts, weave.GenesisParams{}, db); err != nil {
		t.Fatalf("cannot load genesis: %+v", err)
	}

	var conf htlc.Configuration
	err := gconf.Load(db, "htlc", &conf)
	assert.Nil(t, err)
	assert.Equal(t, owner, conf.Owner)
	assert.Equal(t, feeAcct, conf.FeeAccount)
	assert.Equal(t, int64(100), conf.DefaultFeeRate)
	assert.Equal(t, int64(10000), conf.Scale)

	var token htlc.Token
	key := append(append([]byte{}, issuer...), "EOS"...)
	err = htlc.NewTokenBucket().One(db, key, &token)
	assert.Nil(t, err)
	assert.Equal(t, "EOS", token.Ticker)
	assert.Equal(t, uint32(4), token.Precision)
}

func TestGenesisInitializerWithoutConfiguration(t *testing.T) {
	db := store.MemStore()
	migration.MustInitPkg(db, "htlc")

	var opts weave.Options
	if err := json.Unmarshal([]byte(`{"conf": {}}`), &opts); err != nil {
		t.Fatalf("cannot unmarshal genesis: %+v", err)
	}

	// A missing configuration is not an error. It can be created later by
	// the migration admin.
	var ini htlc.Initializer
	if err := ini.FromGenesis(opts, weave.GenesisParams{}, db); err != nil {
		t.Fatalf("cannot load genesis: %+v", err)
	}
}
