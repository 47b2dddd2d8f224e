/*

Package htlc implements a hash time-locked escrow.

Funds are deposited together with a commitment hash and a deadline. The
receiver named in the deposit memo can claim the funds before the deadline by
revealing the preimage of the commitment. Once the deadline passed the
original sender can reclaim the full amount instead. Exactly one of the two
settlements can ever happen for a single lock.

The flow is as follows:
1. The receiver side generates a secret and hands the sender the double
sha256 hash of it.
2. The sender transfers funds to the escrow account with a memo of the form
"receiver-hash-deadline". This creates a lock whose identifier is derived
deterministically from the swap parameters, so funding the same swap twice is
rejected.
3. Before the deadline, any operator can submit the secret to release the
funds to the receiver. A configurable cut of the amount is collected as a fee.
4. At or after the deadline the sender can claim a full refund. No fee is
taken on refunds.

Settled locks are kept in the registry until an administrator sweeps them out
with one of the cleanup operations.

*/
package htlc
