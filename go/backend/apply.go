// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package backend

//go:generate mockgen -source apply.go -destination apply_mock.go -package backend

// Basic holds the scalar state of an account: its balance and its nonce.
// The zero value of Basic is the state of a non-existing account.
type Basic struct {
	// Balance is the amount of native currency held by the account.
	Balance Value
	// Nonce is the number of transactions sent and contracts created by
	// the account. It never decreases.
	Nonce Value
}

// Log is an event record emitted during the execution of a transaction:
// the emitting address, an ordered list of indexed topics, and an opaque
// data payload. Logs have no identity beyond their position in the
// emission order, which is externally observable through transaction
// receipts and must be preserved exactly.
type Log struct {
	Address Address
	Topics  []Hash
	Data    Data
}

// StorageUpdate is one (key, value) pair of a storage diff. An update
// carrying the zero word clears the slot.
type StorageUpdate struct {
	Key   Key
	Value Word
}

// Apply is one state-change record of a transaction's diff, either a
// Modify or a Delete. The type is sealed; no implementations beyond the
// two in this package exist.
type Apply interface {
	isApply()
}

// Modify creates or updates the account at an address.
type Modify struct {
	// Address of the account to be modified or created.
	Address Address
	// Basic is the new balance and nonce of the account.
	Basic Basic
	// Code is the new code of the account, or nil to leave the current
	// code untouched. A non-nil empty code removes the account's code.
	Code Code
	// Storage lists the slot updates to be applied, in order. An update
	// with a zero value clears its slot.
	Storage []StorageUpdate
	// ResetStorage requests that all storage of the account is erased
	// before the updates in Storage are applied. If false, the updates
	// are merged into the existing storage.
	ResetStorage bool
}

// Delete removes the account at an address, including its code and all
// of its storage.
type Delete struct {
	Address Address
}

func (Modify) isApply() {}
func (Delete) isApply() {}

// ApplyBackend is the write contract between an interpreter and the world
// state. It is implemented by backends that can commit the diff of a
// completed transaction.
type ApplyBackend interface {
	// Apply atomically commits a transaction's diff: a list of account
	// changes and a list of emitted logs.
	//
	// Change records for distinct addresses are independent; if the same
	// address appears more than once, records are processed in the given
	// order and later records win. Logs are appended to the backend's log
	// stream in exactly the given order.
	//
	// If deleteEmpty is set, every account that is empty (zero balance,
	// zero nonce, no code) after all values have been processed AND was
	// touched by a record of this call is removed entirely, mirroring the
	// ledger's account pruning policy. Accounts not touched by this call
	// are never pruned.
	//
	// The operation is a single logical unit: either all of it becomes
	// visible to subsequent reads or none of it. There is no error
	// channel; an implementation that cannot guarantee a complete commit,
	// for example due to an I/O failure of its durable storage, must
	// abort the hosting process rather than expose a partial state.
	Apply(values []Apply, logs []Log, deleteEmpty bool)
}
