package htlc

import (
	"bytes"
	"encoding/hex"
	"fmt"

	"github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/orm"
	"github.com/iov-one/weave/x"
	"github.com/iov-one/weave/x/cash"
)

const (
	// pay lock creation cost up-front
	depositCost  int64 = 300
	withdrawCost int64 = 0
	refundCost   int64 = 0
)

// EscrowAddr returns the address of the account holding all escrowed funds.
// Deposits are admitted only when this address is the transfer recipient.
func EscrowAddr() weave.Address {
	return weave.NewCondition("htlc", "escrow", []byte("pool")).Address()
}

// RegisterRoutes will instantiate and register all handlers in this package.
func RegisterRoutes(r weave.Registry, auth x.Authenticator, ctrl cash.Controller) {
	r = migration.SchemaMigratingRegistry("htlc", r)
	locks := NewLockBucket()
	fees := NewFeeBucket()
	tokens := NewTokenBucket()

	r.Handle(&DepositMsg{}, &depositHandler{auth: auth, locks: locks, tokens: tokens, bank: ctrl})
	r.Handle(&WithdrawMsg{}, &withdrawHandler{auth: auth, locks: locks, fees: fees, bank: ctrl})
	r.Handle(&RefundMsg{}, &refundHandler{auth: auth, locks: locks, bank: ctrl})
	r.Handle(&SetFeeMsg{}, &setFeeHandler{auth: auth, fees: fees})
	r.Handle(&SetTokenMsg{}, &setTokenHandler{auth: auth, tokens: tokens})
	r.Handle(&UnsetTokenMsg{}, &unsetTokenHandler{auth: auth, tokens: tokens})
	r.Handle(&UpdateConfigurationMsg{}, NewConfigHandler(auth))
	r.Handle(&CleanupFinalizedMsg{}, &cleanupFinalizedHandler{auth: auth, locks: locks})
	r.Handle(&CleanupAllMsg{}, &cleanupAllHandler{auth: auth, locks: locks, fees: fees, tokens: tokens})
}

// depositHandler admits a new lock from an inbound transfer notification.
type depositHandler struct {
	auth   x.Authenticator
	locks  orm.ModelBucket
	tokens orm.ModelBucket
	bank   cash.CoinMover
}

var _ weave.Handler = (*depositHandler)(nil)

func (h *depositHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: depositCost}, nil
}

func (h *depositHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, lock, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if lock == nil {
		// A transfer that does not address the escrow is none of our
		// business. Succeed without touching any state so unrelated
		// transfers are never aborted.
		return &weave.DeliverResult{Log: "ignoring transfer"}, nil
	}

	lockID := LockID(lock.Sender, lock.Receiver, *lock.Quantity, lock.Precision, lock.PreimageHash, lock.Expiry)
	switch err := h.locks.Has(db, lockID); {
	case err == nil:
		// Identical swap parameters derive an identical identifier.
		// Rejecting the collision is the double deposit guard.
		return nil, errors.Wrapf(errors.ErrDuplicate, "lock %s", hex.EncodeToString(lockID))
	case errors.ErrNotFound.Is(err):
		// First deposit of these parameters.
	default:
		return nil, errors.Wrap(err, "lock registry")
	}

	if _, err := h.locks.Put(db, lockID, lock); err != nil {
		return nil, errors.Wrap(err, "cannot store lock")
	}

	if err := cash.MoveCoins(db, h.bank, msg.Sender, EscrowAddr(), coin.Coins{lock.Quantity}); err != nil {
		return nil, errors.Wrap(err, "cannot escrow funds")
	}

	// The confirmation mirrors the deposit parameters for off-chain
	// watchers. The lock identifier is needed for withdraw and refund.
	res := &weave.DeliverResult{
		Data: lockID,
		Log: fmt.Sprintf("locked %s for %s until %d",
			CanonicalAmount(*lock.Quantity, lock.Precision), lock.Receiver, lock.Expiry),
	}
	return res, nil
}

// validate does all common pre-processing between Check and Deliver. A nil
// lock with a nil error means the transfer does not concern the escrow and
// must be ignored.
func (h *depositHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*DepositMsg, *Lock, error) {
	var msg DepositMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}

	escrow := EscrowAddr()
	if msg.Sender.Equals(escrow) || !msg.Recipient.Equals(escrow) {
		return &msg, nil, nil
	}

	if !h.auth.HasAddress(ctx, msg.Sender) {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "sender did not sign transfer")
	}

	receiver, commitment, expiry, err := DecodeMemo(msg.Memo)
	if err != nil {
		return nil, nil, err
	}

	var token Token
	switch err := h.tokens.One(db, tokenKey(msg.Issuer, msg.Quantity.Ticker), &token); {
	case err == nil:
	case errors.ErrNotFound.Is(err):
		return nil, nil, errors.Wrapf(ErrUnsupportedAsset, "%s by %s", msg.Quantity.Ticker, msg.Issuer)
	default:
		return nil, nil, errors.Wrap(err, "whitelist")
	}
	if token.Precision != msg.Precision {
		return nil, nil, errors.Wrapf(ErrPrecisionMismatch, "want %d, got %d", token.Precision, msg.Precision)
	}
	// Digits below the asset's minimum unit would be truncated away by the
	// canonical rendering, letting different amounts derive the same lock
	// identifier. Such quantities do not exist in the asset system at all.
	if msg.Quantity.Fractional%fractionalUnit(token.Precision) != 0 {
		return nil, nil, errors.Wrapf(ErrPrecisionMismatch, "quantity has more than %d fractional digits", token.Precision)
	}

	if !msg.Quantity.IsPositive() {
		return nil, nil, errors.Wrap(errors.ErrAmount, "must be greater than zero")
	}
	if weave.IsExpired(ctx, expiry) {
		return nil, nil, errors.Wrap(errors.ErrInput, "expiry must be in the future")
	}

	lock := &Lock{
		Metadata:     msg.Metadata,
		Sender:       msg.Sender,
		Receiver:     receiver,
		Issuer:       msg.Issuer,
		Quantity:     msg.Quantity,
		Precision:    msg.Precision,
		PreimageHash: commitment,
		Expiry:       expiry,
		Withdrawn:    false,
		Refunded:     false,
	}
	return &msg, lock, nil
}

// withdrawHandler settles a lock to the receiver upon proof of the secret.
type withdrawHandler struct {
	auth  x.Authenticator
	locks orm.ModelBucket
	fees  orm.ModelBucket
	bank  cash.CoinMover
}

var _ weave.Handler = (*withdrawHandler)(nil)

func (h *withdrawHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: withdrawCost}, nil
}

func (h *withdrawHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, lock, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	lock.Withdrawn = true
	if _, err := h.locks.Put(db, msg.LockID, lock); err != nil {
		return nil, errors.Wrap(err, "cannot update lock")
	}

	conf, err := loadConf(db)
	if err != nil {
		return nil, err
	}
	rate := conf.DefaultFeeRate
	var fee Fee
	switch err := h.fees.One(db, msg.Operator, &fee); {
	case err == nil:
		rate = fee.Rate
	case errors.ErrNotFound.Is(err):
		// No override, the operator pays the default rate.
	default:
		return nil, errors.Wrap(err, "fee directory")
	}

	feeCoin, err := feeAmount(*lock.Quantity, lock.Precision, rate, conf.Scale)
	if err != nil {
		return nil, err
	}
	settled, err := lock.Quantity.Subtract(feeCoin)
	if err != nil {
		return nil, errors.Wrap(ErrInvalidFeeConfig, err.Error())
	}

	if !feeCoin.IsZero() {
		if err := cash.MoveCoins(db, h.bank, EscrowAddr(), conf.FeeAccount, coin.Coins{&feeCoin}); err != nil {
			return nil, errors.Wrap(err, "cannot collect fee")
		}
	}
	if err := cash.MoveCoins(db, h.bank, EscrowAddr(), lock.Receiver, coin.Coins{&settled}); err != nil {
		return nil, errors.Wrap(err, "cannot release funds")
	}

	res := &weave.DeliverResult{
		Data: msg.LockID,
		Log:  fmt.Sprintf("withdrawn %s", CanonicalAmount(settled, lock.Precision)),
	}
	return res, nil
}

// validate does all common pre-processing between Check and Deliver.
func (h *withdrawHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*WithdrawMsg, *Lock, error) {
	var msg WithdrawMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}

	if !h.auth.HasAddress(ctx, msg.Operator) {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "operator did not sign transaction")
	}

	var lock Lock
	if err := h.locks.One(db, msg.LockID, &lock); err != nil {
		return nil, nil, errors.Wrapf(err, "lock %s", hex.EncodeToString(msg.LockID))
	}

	if !bytes.Equal(DoubleHash(msg.Preimage), lock.PreimageHash) {
		return nil, nil, errors.Wrap(ErrPreimageMismatch, "double hash does not match commitment")
	}
	if lock.IsSettled() {
		return nil, nil, errors.Wrap(ErrAlreadySettled, "lock is terminal")
	}
	// Withdrawal is valid strictly before the deadline. The deadline
	// instant itself belongs to the refund path.
	if weave.IsExpired(ctx, lock.Expiry) {
		return nil, nil, errors.Wrapf(errors.ErrExpired, "lock expired at %v", lock.Expiry)
	}

	return &msg, &lock, nil
}

// feeAmount computes quantity*rate/scale, truncated at the asset's minimum
// unit as declared by the lock precision. Any configuration that cannot
// produce a fee within [0, quantity] is a fatal configuration bug and is
// never clamped.
func feeAmount(quantity coin.Coin, precision uint32, rate, scale int64) (coin.Coin, error) {
	if scale <= 0 {
		return coin.Coin{}, errors.Wrapf(ErrInvalidFeeConfig, "scale %d", scale)
	}
	if rate < 0 || rate >= scale {
		return coin.Coin{}, errors.Wrapf(ErrInvalidFeeConfig, "rate %d out of [0, %d)", rate, scale)
	}
	if rate == 0 {
		return coin.Coin{Ticker: quantity.Ticker}, nil
	}
	total, err := quantity.Multiply(rate)
	if err != nil {
		return coin.Coin{}, errors.Wrap(ErrInvalidFeeConfig, err.Error())
	}
	fee, _, err := total.Divide(scale)
	if err != nil {
		return coin.Coin{}, errors.Wrap(ErrInvalidFeeConfig, err.Error())
	}
	// A coin carries 9 fractional digits but the asset only supports
	// precision many. A fee below the minimum unit cannot be collected.
	fee.Fractional -= fee.Fractional % fractionalUnit(precision)
	if !quantity.IsGTE(fee) {
		return coin.Coin{}, errors.Wrap(ErrInvalidFeeConfig, "fee exceeds quantity")
	}
	return fee, nil
}

// refundHandler returns funds to the sender once the lock expired.
type refundHandler struct {
	auth  x.Authenticator
	locks orm.ModelBucket
	bank  cash.CoinMover
}

var _ weave.Handler = (*refundHandler)(nil)

func (h *refundHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: refundCost}, nil
}

func (h *refundHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, lock, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	lock.Refunded = true
	if _, err := h.locks.Put(db, msg.LockID, lock); err != nil {
		return nil, errors.Wrap(err, "cannot update lock")
	}

	// The full quantity goes back to the sender. No fee on refunds.
	if err := cash.MoveCoins(db, h.bank, EscrowAddr(), lock.Sender, coin.Coins{lock.Quantity}); err != nil {
		return nil, errors.Wrap(err, "cannot refund funds")
	}

	res := &weave.DeliverResult{
		Data: msg.LockID,
		Log:  fmt.Sprintf("refunded %s", CanonicalAmount(*lock.Quantity, lock.Precision)),
	}
	return res, nil
}

// validate does all common pre-processing between Check and Deliver.
func (h *refundHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*RefundMsg, *Lock, error) {
	var msg RefundMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}

	var lock Lock
	if err := h.locks.One(db, msg.LockID, &lock); err != nil {
		return nil, nil, errors.Wrapf(err, "lock %s", hex.EncodeToString(msg.LockID))
	}

	if lock.IsSettled() {
		return nil, nil, errors.Wrap(ErrAlreadySettled, "lock is terminal")
	}
	// Refund is valid at and after the deadline.
	if !weave.IsExpired(ctx, lock.Expiry) {
		return nil, nil, errors.Wrapf(ErrNotYetExpired, "lock expires at %v", lock.Expiry)
	}
	if !h.auth.HasAddress(ctx, lock.Sender) {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "sender did not sign transaction")
	}

	return &msg, &lock, nil
}

// setFeeHandler upserts a per operator fee rate override.
type setFeeHandler struct {
	auth x.Authenticator
	fees orm.ModelBucket
}

var _ weave.Handler = (*setFeeHandler)(nil)

func (h *setFeeHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{}, nil
}

func (h *setFeeHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	fee := Fee{
		Metadata: &weave.Metadata{Schema: 1},
		Operator: msg.Operator,
		Rate:     msg.Rate,
	}
	if _, err := h.fees.Put(db, msg.Operator, &fee); err != nil {
		return nil, errors.Wrap(err, "cannot store fee")
	}
	return &weave.DeliverResult{Data: msg.Operator}, nil
}

func (h *setFeeHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*SetFeeMsg, error) {
	var msg SetFeeMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	conf, err := loadConf(db)
	if err != nil {
		return nil, err
	}
	if !h.auth.HasAddress(ctx, conf.Owner) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "owner signature required")
	}
	if msg.Rate < 0 || msg.Rate >= conf.Scale {
		return nil, errors.Wrapf(ErrInvalidFeeRate, "rate %d out of [0, %d)", msg.Rate, conf.Scale)
	}
	return &msg, nil
}

// setTokenHandler upserts an asset whitelist entry.
type setTokenHandler struct {
	auth   x.Authenticator
	tokens orm.ModelBucket
}

var _ weave.Handler = (*setTokenHandler)(nil)

func (h *setTokenHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{}, nil
}

func (h *setTokenHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	token := Token{
		Metadata:  &weave.Metadata{Schema: 1},
		Ticker:    msg.Ticker,
		Precision: msg.Precision,
		Issuer:    msg.Issuer,
	}
	key := tokenKey(msg.Issuer, msg.Ticker)
	if _, err := h.tokens.Put(db, key, &token); err != nil {
		return nil, errors.Wrap(err, "cannot store token")
	}
	return &weave.DeliverResult{Data: key}, nil
}

func (h *setTokenHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*SetTokenMsg, error) {
	var msg SetTokenMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if err := ownerAuthorized(ctx, db, h.auth); err != nil {
		return nil, err
	}
	return &msg, nil
}

// unsetTokenHandler removes an asset whitelist entry.
type unsetTokenHandler struct {
	auth   x.Authenticator
	tokens orm.ModelBucket
}

var _ weave.Handler = (*unsetTokenHandler)(nil)

func (h *unsetTokenHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{}, nil
}

func (h *unsetTokenHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	key := tokenKey(msg.Issuer, msg.Ticker)
	if err := h.tokens.Delete(db, key); err != nil {
		return nil, errors.Wrapf(err, "token %s", msg.Ticker)
	}
	return &weave.DeliverResult{Data: key}, nil
}

func (h *unsetTokenHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*UnsetTokenMsg, error) {
	var msg UnsetTokenMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if err := ownerAuthorized(ctx, db, h.auth); err != nil {
		return nil, err
	}
	return &msg, nil
}

// ownerAuthorized ensures the configuration owner signed the transaction.
func ownerAuthorized(ctx weave.Context, db weave.KVStore, auth x.Authenticator) error {
	conf, err := loadConf(db)
	if err != nil {
		return err
	}
	if !auth.HasAddress(ctx, conf.Owner) {
		return errors.Wrap(errors.ErrUnauthorized, "owner signature required")
	}
	return nil
}
