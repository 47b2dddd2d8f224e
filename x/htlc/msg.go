package htlc

import (
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
)

func init() {
	// Migration needs to be registered for every message introduced in
	// the codec. This is the convention to message versioning.
	migration.MustRegister(1, &DepositMsg{}, migration.NoModification)
	migration.MustRegister(1, &WithdrawMsg{}, migration.NoModification)
	migration.MustRegister(1, &RefundMsg{}, migration.NoModification)
	migration.MustRegister(1, &SetFeeMsg{}, migration.NoModification)
	migration.MustRegister(1, &UpdateConfigurationMsg{}, migration.NoModification)
	migration.MustRegister(1, &SetTokenMsg{}, migration.NoModification)
	migration.MustRegister(1, &UnsetTokenMsg{}, migration.NoModification)
	migration.MustRegister(1, &CleanupFinalizedMsg{}, migration.NoModification)
	migration.MustRegister(1, &CleanupAllMsg{}, migration.NoModification)
}

const (
	// maxMemoSize bounds deposit memos. The memo must still fit a hex
	// address, a 64 character commitment and a decimal deadline.
	maxMemoSize = 256

	// maxPreimageSize bounds the secret supplied on withdrawal. The
	// protocol does not fix the secret length, only its double hash.
	maxPreimageSize = 128
)

var _ weave.Msg = (*DepositMsg)(nil)
var _ weave.Msg = (*WithdrawMsg)(nil)
var _ weave.Msg = (*RefundMsg)(nil)
var _ weave.Msg = (*SetFeeMsg)(nil)
var _ weave.Msg = (*UpdateConfigurationMsg)(nil)
var _ weave.Msg = (*SetTokenMsg)(nil)
var _ weave.Msg = (*UnsetTokenMsg)(nil)
var _ weave.Msg = (*CleanupFinalizedMsg)(nil)
var _ weave.Msg = (*CleanupAllMsg)(nil)

func (DepositMsg) Path() string {
	return "htlc/deposit"
}

// Validate makes sure the transfer notification is well formed. The memo
// grammar and the asset whitelist are enforced by the deposit handler, after
// it decided that the transfer is addressed to the escrow at all.
func (m *DepositMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	errs = errors.AppendField(errs, "Sender", m.Sender.Validate())
	errs = errors.AppendField(errs, "Recipient", m.Recipient.Validate())
	errs = errors.AppendField(errs, "Issuer", m.Issuer.Validate())
	if m.Quantity == nil {
		errs = errors.Append(errs, errors.Field("Quantity", errors.ErrEmpty, "required"))
	} else {
		errs = errors.AppendField(errs, "Quantity", m.Quantity.Validate())
	}
	if m.Precision > maxPrecision {
		errs = errors.Append(errs, errors.Field("Precision", errors.ErrInput, "at most %d fractional digits", maxPrecision))
	}
	if len(m.Memo) > maxMemoSize {
		errs = errors.Append(errs, errors.Field("Memo", errors.ErrInput, "longer than %d characters", maxMemoSize))
	}
	return errs
}

func (WithdrawMsg) Path() string {
	return "htlc/withdraw"
}

func (m *WithdrawMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	if len(m.LockID) != lockIDSize {
		errs = errors.Append(errs, errors.Field("LockID", errors.ErrInput, "must be exactly %d bytes", lockIDSize))
	}
	if len(m.Preimage) == 0 {
		errs = errors.Append(errs, errors.Field("Preimage", errors.ErrEmpty, "required"))
	} else if len(m.Preimage) > maxPreimageSize {
		errs = errors.Append(errs, errors.Field("Preimage", errors.ErrInput, "longer than %d bytes", maxPreimageSize))
	}
	errs = errors.AppendField(errs, "Operator", m.Operator.Validate())
	return errs
}

func (RefundMsg) Path() string {
	return "htlc/refund"
}

func (m *RefundMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	if len(m.LockID) != lockIDSize {
		errs = errors.Append(errs, errors.Field("LockID", errors.ErrInput, "must be exactly %d bytes", lockIDSize))
	}
	return errs
}

func (SetFeeMsg) Path() string {
	return "htlc/set_fee"
}

// Validate makes sure the fee entry is well formed. The upper bound of the
// rate is the configured scale and is checked by the handler.
func (m *SetFeeMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	errs = errors.AppendField(errs, "Operator", m.Operator.Validate())
	if m.Rate < 0 {
		errs = errors.Append(errs, errors.Field("Rate", ErrInvalidFeeRate, "must not be negative"))
	}
	return errs
}

func (*UpdateConfigurationMsg) Path() string {
	return "htlc/update_configuration"
}

// Validate will skip any zero fields and validate the set ones.
func (m *UpdateConfigurationMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	if m.Patch == nil {
		return errors.Append(errs, errors.Field("Patch", errors.ErrEmpty, "required"))
	}
	c := m.Patch
	if len(c.Owner) != 0 {
		errs = errors.AppendField(errs, "Patch.Owner", c.Owner.Validate())
	}
	if len(c.FeeAccount) != 0 {
		errs = errors.AppendField(errs, "Patch.FeeAccount", c.FeeAccount.Validate())
	}
	if c.DefaultFeeRate < 0 {
		errs = errors.Append(errs, errors.Field("Patch.DefaultFeeRate", ErrInvalidFeeRate, "must not be negative"))
	}
	if c.Scale < 0 {
		errs = errors.Append(errs, errors.Field("Patch.Scale", errors.ErrInput, "must be positive"))
	}
	return errs
}

func (SetTokenMsg) Path() string {
	return "htlc/set_token"
}

func (m *SetTokenMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	if !coin.IsCC(m.Ticker) {
		errs = errors.Append(errs, errors.Field("Ticker", errors.ErrCurrency, "invalid currency code"))
	}
	if m.Precision > maxPrecision {
		errs = errors.Append(errs, errors.Field("Precision", errors.ErrInput, "at most %d fractional digits", maxPrecision))
	}
	errs = errors.AppendField(errs, "Issuer", m.Issuer.Validate())
	return errs
}

func (UnsetTokenMsg) Path() string {
	return "htlc/unset_token"
}

func (m *UnsetTokenMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	if !coin.IsCC(m.Ticker) {
		errs = errors.Append(errs, errors.Field("Ticker", errors.ErrCurrency, "invalid currency code"))
	}
	errs = errors.AppendField(errs, "Issuer", m.Issuer.Validate())
	return errs
}

func (CleanupFinalizedMsg) Path() string {
	return "htlc/cleanup_finalized"
}

func (m *CleanupFinalizedMsg) Validate() error {
	return errors.AppendField(nil, "Metadata", m.Metadata.Validate())
}

func (CleanupAllMsg) Path() string {
	return "htlc/cleanup_all"
}

func (m *CleanupAllMsg) Validate() error {
	return errors.AppendField(nil, "Metadata", m.Metadata.Validate())
}
