package htlc

import (
	"encoding/binary"

	"github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/orm"
)

func init() {
	migration.MustRegister(1, &Lock{}, migration.NoModification)
	migration.MustRegister(1, &Fee{}, migration.NoModification)
	migration.MustRegister(1, &Token{}, migration.NoModification)
}

var _ orm.CloneableData = (*Lock)(nil)

// Validate ensures the lock is valid.
func (l *Lock) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", l.Metadata.Validate())
	errs = errors.AppendField(errs, "Sender", l.Sender.Validate())
	errs = errors.AppendField(errs, "Receiver", l.Receiver.Validate())
	errs = errors.AppendField(errs, "Issuer", l.Issuer.Validate())
	if l.Quantity == nil {
		errs = errors.Append(errs, errors.Field("Quantity", errors.ErrEmpty, "required"))
	} else {
		errs = errors.AppendField(errs, "Quantity", l.Quantity.Validate())
		if !l.Quantity.IsPositive() {
			errs = errors.Append(errs, errors.Field("Quantity", errors.ErrAmount, "must be positive"))
		}
	}
	if l.Precision > maxPrecision {
		errs = errors.Append(errs, errors.Field("Precision", errors.ErrModel, "at most %d fractional digits", maxPrecision))
	}
	if len(l.PreimageHash) != preimageHashSize {
		errs = errors.Append(errs, errors.Field("PreimageHash", errors.ErrInput, "must be exactly %d bytes", preimageHashSize))
	}
	if l.Expiry == 0 {
		// Zero expiry dates to 1970-01-01 and is always in the past.
		// Most likely the value was not provided at all.
		errs = errors.Append(errs, errors.Field("Expiry", errors.ErrInput, "required"))
	} else {
		errs = errors.AppendField(errs, "Expiry", l.Expiry.Validate())
	}
	if l.Withdrawn && l.Refunded {
		errs = errors.Append(errs, errors.Field("Withdrawn", errors.ErrState, "cannot be both withdrawn and refunded"))
	}
	return errs
}

// Copy makes a deep copy of the lock.
func (l *Lock) Copy() orm.CloneableData {
	return &Lock{
		Metadata:     l.Metadata.Copy(),
		Sender:       l.Sender.Clone(),
		Receiver:     l.Receiver.Clone(),
		Issuer:       l.Issuer.Clone(),
		Quantity:     l.Quantity.Clone(),
		Precision:    l.Precision,
		PreimageHash: l.PreimageHash,
		Expiry:       l.Expiry,
		Withdrawn:    l.Withdrawn,
		Refunded:     l.Refunded,
	}
}

// IsSettled returns true once the lock reached a terminal state. A settled
// lock is immutable and can only be removed by a cleanup operation.
func (l *Lock) IsSettled() bool {
	return l.Withdrawn || l.Refunded
}

// lockBucketName is the raw bucket keyspace of the lock registry. Keys are
// stored under the "lock:" prefix.
const lockBucketName = "lock"

// NewLockBucket returns the lock registry. Locks are keyed by their derived
// lock identifier and additionally indexed by expiry, so that they can be
// inspected in deadline order.
func NewLockBucket() orm.ModelBucket {
	b := orm.NewModelBucket(lockBucketName, &Lock{},
		orm.WithIndex("expiry", idxExpiry, false),
	)
	return migration.NewModelBucket("htlc", b)
}

func asLock(obj orm.Object) (*Lock, error) {
	if obj == nil {
		return nil, errors.Wrap(errors.ErrHuman, "cannot take index of nil")
	}
	l, ok := obj.Value().(*Lock)
	if !ok {
		return nil, errors.Wrap(errors.ErrHuman, "can only take index of Lock")
	}
	return l, nil
}

// idxExpiry orders locks by their deadline. Big endian encoding keeps the
// natural byte order equal to the numeric order.
func idxExpiry(obj orm.Object) ([]byte, error) {
	l, err := asLock(obj)
	if err != nil {
		return nil, err
	}
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, uint64(l.Expiry))
	return key, nil
}

var _ orm.CloneableData = (*Fee)(nil)

// Validate ensures the fee entry is valid. The upper bound of the rate
// depends on the configured scale and is enforced by the handler.
func (f *Fee) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", f.Metadata.Validate())
	errs = errors.AppendField(errs, "Operator", f.Operator.Validate())
	if f.Rate < 0 {
		errs = errors.Append(errs, errors.Field("Rate", ErrInvalidFeeRate, "must not be negative"))
	}
	return errs
}

func (f *Fee) Copy() orm.CloneableData {
	return &Fee{
		Metadata: f.Metadata.Copy(),
		Operator: f.Operator.Clone(),
		Rate:     f.Rate,
	}
}

// NewFeeBucket returns the registry of per operator fee rate overrides,
// keyed by the operator address. An operator without an entry pays the
// configured default rate.
func NewFeeBucket() orm.ModelBucket {
	b := orm.NewModelBucket("fee", &Fee{})
	return migration.NewModelBucket("htlc", b)
}

var _ orm.CloneableData = (*Token)(nil)

// Validate ensures the whitelist entry is valid.
func (t *Token) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", t.Metadata.Validate())
	if !coin.IsCC(t.Ticker) {
		errs = errors.Append(errs, errors.Field("Ticker", errors.ErrCurrency, "invalid currency code"))
	}
	if t.Precision > maxPrecision {
		errs = errors.Append(errs, errors.Field("Precision", errors.ErrModel, "at most %d fractional digits", maxPrecision))
	}
	errs = errors.AppendField(errs, "Issuer", t.Issuer.Validate())
	return errs
}

func (t *Token) Copy() orm.CloneableData {
	return &Token{
		Metadata:  t.Metadata.Copy(),
		Ticker:    t.Ticker,
		Precision: t.Precision,
		Issuer:    t.Issuer.Clone(),
	}
}

// NewTokenBucket returns the asset whitelist. Only deposits of whitelisted
// (issuer, ticker) pairs with a matching precision are admitted.
func NewTokenBucket() orm.ModelBucket {
	b := orm.NewModelBucket("token", &Token{})
	return migration.NewModelBucket("htlc", b)
}

// tokenKey builds the whitelist key for an asset. The issuer address has a
// fixed width, so concatenation is unambiguous.
func tokenKey(issuer weave.Address, ticker string) []byte {
	key := make([]byte, 0, len(issuer)+len(ticker))
	key = append(key, issuer...)
	key = append(key, ticker...)
	return key
}

// RegisterQuery registers the lock registry, the fee directory and the asset
// whitelist for queries.
func RegisterQuery(qr weave.QueryRouter) {
	NewLockBucket().Register("locks", qr)
	NewFeeBucket().Register("fees", qr)
	NewTokenBucket().Register("tokens", qr)
}
