package app

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenInitOptions(t *testing.T) {
	cases := []struct {
		args []string
		cur  string
		addr string
	}{
		{nil, "IOV", ""},
		{[]string{"ONE"}, "ONE", ""},
		{[]string{"TWO", "1234567890"}, "TWO", "1234567890"},
		{[]string{"THR", "5238975983695", "FOO"}, "THR", "5238975983695"},
	}

	for i, tc := range cases {
		t.Run(fmt.Sprintf("case-%d", i), func(t *testing.T) {
			val, err := GenInitOptions(tc.args)
			require.NoError(t, err)

			cc := fmt.Sprintf(`"ticker":"%s"`, tc.cur)
			assert.Contains(t, string(val), cc)

			ca := fmt.Sprintf(`"address":"%s"`, tc.addr)
			if tc.addr == "" {
				// we just know there is an address, not what it is
				ca = ca[:len(ca)-1]
			}
			assert.Contains(t, string(val), ca)
		})
	}
}

func TestGenInitOptionsEscrowGenesis(t *testing.T) {
	val, err := GenInitOptions(nil)
	require.NoError(t, err)

	var genesis struct {
		Conf struct {
			Htlc struct {
				Metadata struct {
					Schema uint32 `json:"schema"`
				} `json:"metadata"`
				Owner          string `json:"owner"`
				FeeAccount     string `json:"fee_account"`
				DefaultFeeRate int64  `json:"default_fee_rate"`
				Scale          int64  `json:"scale"`
			} `json:"htlc"`
		} `json:"conf"`
		Tokens []struct {
			Ticker    string `json:"ticker"`
			Precision uint32 `json:"precision"`
			Issuer    string `json:"issuer"`
		} `json:"htlctokens"`
	}
	require.NoError(t, json.Unmarshal(val, &genesis))

	// Without metadata the configuration fails validation at genesis load.
	assert.Equal(t, uint32(1), genesis.Conf.Htlc.Metadata.Schema)
	assert.NotEmpty(t, genesis.Conf.Htlc.Owner)
	assert.Equal(t, genesis.Conf.Htlc.Owner, genesis.Conf.Htlc.FeeAccount)
	assert.Equal(t, int64(100), genesis.Conf.Htlc.DefaultFeeRate)
	assert.Equal(t, int64(10000), genesis.Conf.Htlc.Scale)

	require.Len(t, genesis.Tokens, 1)
	assert.Equal(t, "IOV", genesis.Tokens[0].Ticker)
	assert.Equal(t, uint32(4), genesis.Tokens[0].Precision)
	assert.Equal(t, genesis.Conf.Htlc.Owner, genesis.Tokens[0].Issuer)

	assert.Contains(t, string(val), `{"pkg":"htlc","ver":1}`)
}
