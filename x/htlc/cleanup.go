package htlc

import (
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/orm"
	"github.com/iov-one/weave/x"
)

// cleanupFinalizedHandler removes all settled locks from the registry. Locks
// still awaiting a withdrawal or a refund are left untouched.
type cleanupFinalizedHandler struct {
	auth  x.Authenticator
	locks orm.ModelBucket
}

var _ weave.Handler = (*cleanupFinalizedHandler)(nil)

func (h *cleanupFinalizedHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{}, nil
}

func (h *cleanupFinalizedHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	if err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}

	// Collect first, delete after. Removing entries from underneath a
	// live iterator corrupts the sweep.
	ids, err := finalizedLockIDs(db)
	if err != nil {
		return nil, err
	}
	for _, id := range ids {
		if err := h.locks.Delete(db, id); err != nil {
			return nil, errors.Wrap(err, "cannot delete lock")
		}
	}
	return &weave.DeliverResult{}, nil
}

func (h *cleanupFinalizedHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) error {
	var msg CleanupFinalizedMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return errors.Wrap(err, "load msg")
	}
	return ownerAuthorized(ctx, db, h.auth)
}

// finalizedLockIDs returns the identifiers of all settled locks.
func finalizedLockIDs(db weave.KVStore) ([][]byte, error) {
	prefix := []byte(lockBucketName + ":")
	start, end := prefixRange(prefix)
	it, err := db.Iterator(start, end)
	if err != nil {
		return nil, errors.Wrap(err, "cannot iterate locks")
	}
	defer it.Release()

	var ids [][]byte
	for {
		k, v, err := it.Next()
		switch {
		case err == nil:
		case errors.ErrIteratorDone.Is(err):
			return ids, nil
		default:
			return nil, errors.Wrap(err, "iterator")
		}
		var lock Lock
		if err := lock.Unmarshal(v); err != nil {
			return nil, errors.Wrap(err, "cannot unmarshal lock")
		}
		if !lock.IsSettled() {
			continue
		}
		// The iterator owns its key memory, copy before moving on.
		ids = append(ids, append([]byte(nil), k[len(prefix):]...))
	}
}

// cleanupAllHandler wipes the whole module state, locks pending or settled,
// fee overrides, the asset whitelist and the configuration singleton. Meant
// for decommissioning or a clean restart of the escrow.
type cleanupAllHandler struct {
	auth   x.Authenticator
	locks  orm.ModelBucket
	fees   orm.ModelBucket
	tokens orm.ModelBucket
}

var _ weave.Handler = (*cleanupAllHandler)(nil)

func (h *cleanupAllHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{}, nil
}

func (h *cleanupAllHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	if err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}

	for _, reg := range []struct {
		name   string
		bucket orm.ModelBucket
	}{
		{lockBucketName, h.locks},
		{"fee", h.fees},
		{"token", h.tokens},
	} {
		ids, err := allKeys(db, reg.name)
		if err != nil {
			return nil, err
		}
		for _, id := range ids {
			if err := reg.bucket.Delete(db, id); err != nil {
				return nil, errors.Wrapf(err, "cannot delete from %q", reg.name)
			}
		}
	}

	if err := db.Delete([]byte("_c:htlc")); err != nil {
		return nil, errors.Wrap(err, "cannot delete configuration")
	}
	return &weave.DeliverResult{}, nil
}

func (h *cleanupAllHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) error {
	var msg CleanupAllMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return errors.Wrap(err, "load msg")
	}
	return ownerAuthorized(ctx, db, h.auth)
}

// allKeys collects every key of a bucket, stripped of the bucket prefix.
func allKeys(db weave.KVStore, bucketName string) ([][]byte, error) {
	prefix := []byte(bucketName + ":")
	start, end := prefixRange(prefix)
	it, err := db.Iterator(start, end)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot iterate %q", bucketName)
	}
	defer it.Release()

	var ids [][]byte
	for {
		k, _, err := it.Next()
		switch {
		case err == nil:
		case errors.ErrIteratorDone.Is(err):
			return ids, nil
		default:
			return nil, errors.Wrap(err, "iterator")
		}
		ids = append(ids, append([]byte(nil), k[len(prefix):]...))
	}
}

// prefixRange turns a prefix into an iterator range. The end key is the
// prefix with its last byte incremented, or nil when the prefix is all 0xff.
func prefixRange(prefix []byte) ([]byte, []byte) {
	if len(prefix) == 0 {
		return nil, nil
	}
	end := make([]byte, len(prefix))
	copy(end, prefix)
	for i := len(end) - 1; i >= 0; i-- {
		if end[i] < 0xff {
			end[i]++
			return prefix, end[:i+1]
		}
	}
	return prefix, nil
}
