package htlc

import (
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/gconf"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/x"
)

func init() {
	migration.MustRegister(1, &Configuration{}, migration.NoModification)
}

var _ gconf.Configuration = (*Configuration)(nil)

// Validate ensures the configuration is valid. All fee rate math divides by
// the scale, so a configuration without a positive scale is never accepted.
func (c *Configuration) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", c.Metadata.Validate())
	errs = errors.AppendField(errs, "Owner", c.Owner.Validate())
	errs = errors.AppendField(errs, "FeeAccount", c.FeeAccount.Validate())
	if c.Scale <= 0 {
		errs = errors.Append(errs, errors.Field("Scale", errors.ErrModel, "must be positive"))
	} else if c.DefaultFeeRate < 0 || c.DefaultFeeRate >= c.Scale {
		errs = errors.Append(errs, errors.Field("DefaultFeeRate", ErrInvalidFeeRate, "must be in [0, %d)", c.Scale))
	}
	return errs
}

func loadConf(db gconf.ReadStore) (Configuration, error) {
	var conf Configuration
	if err := gconf.Load(db, "htlc", &conf); err != nil {
		return conf, errors.Wrap(err, "load configuration")
	}
	return conf, nil
}

// NewConfigHandler returns the handler that patches the configuration
// singleton. The current configuration owner must authorize every change.
// When no configuration exists yet, the migration admin can create it, which
// makes the configuration lazily initialized on the first administrative
// write.
func NewConfigHandler(auth x.Authenticator) weave.Handler {
	var conf Configuration
	return gconf.NewUpdateConfigurationHandler("htlc", &conf, auth, migration.CurrentAdmin)
}
