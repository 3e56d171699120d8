// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package journal buffers state changes of one transaction on top of a
// read-only backend. The interpreter never mutates a backend during
// execution; it stages all changes in a journal and replays them as a
// single Apply batch once the transaction is complete. An aborted
// transaction is simply a journal that is dropped.
package journal

import (
	"bytes"
	"slices"

	"github.com/Fantom-foundation/Fedora/go/backend"
)

// Journal is an ordered, append-only record of account changes with
// last-write-wins semantics per address. It serves reads through itself
// first and falls back to the underlying backend for untouched state.
// Snapshots allow nested call frames to roll back their changes without
// touching the frames below.
type Journal struct {
	base     backend.Backend
	accounts map[backend.Address]*account
	order    []backend.Address // addresses in first-touch order
	logs     []backend.Log
	changes  []change // undo records, one per mutation
}

// account is the staged state of one touched account.
type account struct {
	basic   backend.Basic
	code    backend.Code // nil while the code was never set
	storage map[backend.Key]backend.Word
	fresh   bool // created during this journal's lifetime
	deleted bool
}

// New creates an empty journal over the given backend.
func New(base backend.Backend) *Journal {
	return &Journal{
		base:     base,
		accounts: map[backend.Address]*account{},
	}
}

// ----------------------------------------------------------------------------
// Reads
// ----------------------------------------------------------------------------

func (j *Journal) Exists(address backend.Address) bool {
	if acc, found := j.accounts[address]; found {
		if acc.deleted {
			return false
		}
		if acc.basic != (backend.Basic{}) || len(acc.code) != 0 {
			return true
		}
		for _, word := range acc.storage {
			if word != (backend.Word{}) {
				return true
			}
		}
		if acc.fresh {
			return false
		}
	}
	return j.base.Exists(address)
}

func (j *Journal) GetBalance(address backend.Address) backend.Value {
	if acc, found := j.accounts[address]; found {
		if acc.deleted {
			return backend.Value{}
		}
		return acc.basic.Balance
	}
	return j.base.Basic(address).Balance
}

func (j *Journal) GetNonce(address backend.Address) backend.Value {
	if acc, found := j.accounts[address]; found {
		if acc.deleted {
			return backend.Value{}
		}
		return acc.basic.Nonce
	}
	return j.base.Basic(address).Nonce
}

func (j *Journal) GetCode(address backend.Address) backend.Code {
	if acc, found := j.accounts[address]; found {
		if acc.deleted {
			return nil
		}
		if acc.code != nil {
			return slices.Clone(acc.code)
		}
		if acc.fresh {
			return nil
		}
	}
	return j.base.Code(address)
}

func (j *Journal) GetCodeHash(address backend.Address) backend.Hash {
	if acc, found := j.accounts[address]; found {
		if acc.deleted {
			return backend.EmptyCodeHash
		}
		if acc.code != nil {
			if len(acc.code) == 0 {
				return backend.EmptyCodeHash
			}
			return backend.HashCode(acc.code)
		}
		if acc.fresh {
			return backend.EmptyCodeHash
		}
	}
	return j.base.CodeHash(address)
}

func (j *Journal) GetCodeSize(address backend.Address) int {
	if acc, found := j.accounts[address]; found {
		if acc.deleted {
			return 0
		}
		if acc.code != nil {
			return len(acc.code)
		}
		if acc.fresh {
			return 0
		}
	}
	return j.base.CodeSize(address)
}

func (j *Journal) GetStorage(address backend.Address, key backend.Key) backend.Word {
	if acc, found := j.accounts[address]; found {
		if acc.deleted {
			return backend.Word{}
		}
		if word, found := acc.storage[key]; found {
			return word
		}
		if acc.fresh {
			return backend.Word{}
		}
	}
	return j.base.Storage(address, key)
}

func (j *Journal) GetLogs() []backend.Log {
	return slices.Clone(j.logs)
}

// ----------------------------------------------------------------------------
// Writes
// ----------------------------------------------------------------------------

func (j *Journal) SetBalance(address backend.Address, balance backend.Value) {
	acc := j.touch(address)
	j.record(balanceChange{address, acc.basic.Balance})
	acc.basic.Balance = balance
}

// AddBalance adds the given value to the account's balance.
func (j *Journal) AddBalance(address backend.Address, value backend.Value) {
	j.SetBalance(address, backend.Add(j.GetBalance(address), value))
}

// SubBalance subtracts the given value from the account's balance. The
// caller is responsible for checking that the balance is sufficient.
func (j *Journal) SubBalance(address backend.Address, value backend.Value) {
	j.SetBalance(address, backend.Sub(j.GetBalance(address), value))
}

func (j *Journal) SetNonce(address backend.Address, nonce backend.Value) {
	acc := j.touch(address)
	j.record(nonceChange{address, acc.basic.Nonce})
	acc.basic.Nonce = nonce
}

// IncrementNonce increases the account's nonce by one.
func (j *Journal) IncrementNonce(address backend.Address) {
	j.SetNonce(address, backend.Add(j.GetNonce(address), backend.NewValue(1)))
}

func (j *Journal) SetCode(address backend.Address, code backend.Code) {
	acc := j.touch(address)
	j.record(codeChange{address, acc.code})
	acc.code = slices.Clone(code)
	if acc.code == nil {
		acc.code = backend.Code{}
	}
}

func (j *Journal) SetStorage(address backend.Address, key backend.Key, word backend.Word) {
	acc := j.touch(address)
	prev, prevSet := acc.storage[key]
	j.record(storageChange{address, key, prev, prevSet})
	acc.storage[key] = word
}

// Delete marks the account for deletion. The deletion becomes effective
// with the Apply batch; within this journal the account reads as absent
// until something writes to it again.
func (j *Journal) Delete(address backend.Address) {
	acc := j.touch(address)
	j.record(deleteChange{address, acc.snapshot()})
	acc.basic = backend.Basic{}
	acc.code = backend.Code{}
	acc.storage = map[backend.Key]backend.Word{}
	acc.deleted = true
}

func (j *Journal) EmitLog(log backend.Log) {
	j.record(logChange{})
	j.logs = append(j.logs, log)
}

// ----------------------------------------------------------------------------
// Snapshots
// ----------------------------------------------------------------------------

// Snapshot identifies a point in the journal's change history that can be
// rolled back to.
type Snapshot int

func (j *Journal) CreateSnapshot() Snapshot {
	return Snapshot(len(j.changes))
}

func (j *Journal) RestoreSnapshot(snapshot Snapshot) {
	for len(j.changes) > int(snapshot) {
		j.changes[len(j.changes)-1].revert(j)
		j.changes = j.changes[:len(j.changes)-1]
	}
}

// ----------------------------------------------------------------------------
// Deconstruction
// ----------------------------------------------------------------------------

// Deconstruct turns the journal's content into the Apply batch and log
// list expected by an ApplyBackend. Accounts appear in first-touch order,
// each exactly once, carrying its final state; storage updates within a
// record are sorted by key to make the result deterministic.
func (j *Journal) Deconstruct() ([]backend.Apply, []backend.Log) {
	values := make([]backend.Apply, 0, len(j.order))
	for _, address := range j.order {
		acc := j.accounts[address]
		if acc.deleted {
			values = append(values, backend.Delete{Address: address})
			continue
		}
		updates := make([]backend.StorageUpdate, 0, len(acc.storage))
		for key, word := range acc.storage {
			updates = append(updates, backend.StorageUpdate{Key: key, Value: word})
		}
		slices.SortFunc(updates, func(a, b backend.StorageUpdate) int {
			return bytes.Compare(a.Key[:], b.Key[:])
		})
		values = append(values, backend.Modify{
			Address:      address,
			Basic:        acc.basic,
			Code:         acc.code,
			Storage:      updates,
			ResetStorage: acc.fresh,
		})
	}
	return values, slices.Clone(j.logs)
}

// CommitTo deconstructs the journal and applies the result to the given
// backend in one call.
func (j *Journal) CommitTo(target backend.ApplyBackend, deleteEmpty bool) {
	values, logs := j.Deconstruct()
	target.Apply(values, logs, deleteEmpty)
}

// ----------------------------------------------------------------------------
// Internals
// ----------------------------------------------------------------------------

// touch returns the staged account for the given address, creating it
// from the backend's state on first access. Writing to an account that
// was marked deleted resurrects it as a fresh account.
func (j *Journal) touch(address backend.Address) *account {
	if acc, found := j.accounts[address]; found {
		if acc.deleted {
			j.record(resurrectChange{address, acc.snapshot()})
			acc.basic = backend.Basic{}
			acc.code = nil
			acc.storage = map[backend.Key]backend.Word{}
			acc.fresh = true
			acc.deleted = false
		}
		return acc
	}
	acc := &account{
		basic:   j.base.Basic(address),
		storage: map[backend.Key]backend.Word{},
		fresh:   !j.base.Exists(address),
	}
	j.accounts[address] = acc
	j.order = append(j.order, address)
	j.record(createChange{address})
	return acc
}

func (j *Journal) record(c change) {
	j.changes = append(j.changes, c)
}

// snapshot copies the full account state, used to undo deletions and
// resurrections.
func (a *account) snapshot() account {
	res := *a
	res.code = slices.Clone(a.code)
	res.storage = make(map[backend.Key]backend.Word, len(a.storage))
	for k, v := range a.storage {
		res.storage[k] = v
	}
	return res
}

// ----------------------------------------------------------------------------
// Change records
// ----------------------------------------------------------------------------

// change is one undoable mutation of the journal.
type change interface {
	revert(*Journal)
}

type createChange struct {
	address backend.Address
}

func (c createChange) revert(j *Journal) {
	delete(j.accounts, c.address)
	j.order = j.order[:len(j.order)-1]
}

type balanceChange struct {
	address backend.Address
	prev    backend.Value
}

func (c balanceChange) revert(j *Journal) {
	j.accounts[c.address].basic.Balance = c.prev
}

type nonceChange struct {
	address backend.Address
	prev    backend.Value
}

func (c nonceChange) revert(j *Journal) {
	j.accounts[c.address].basic.Nonce = c.prev
}

type codeChange struct {
	address backend.Address
	prev    backend.Code
}

func (c codeChange) revert(j *Journal) {
	j.accounts[c.address].code = c.prev
}

type storageChange struct {
	address backend.Address
	key     backend.Key
	prev    backend.Word
	prevSet bool
}

func (c storageChange) revert(j *Journal) {
	storage := j.accounts[c.address].storage
	if c.prevSet {
		storage[c.key] = c.prev
	} else {
		delete(storage, c.key)
	}
}

type deleteChange struct {
	address backend.Address
	prev    account
}

func (c deleteChange) revert(j *Journal) {
	*j.accounts[c.address] = c.prev
}

type resurrectChange struct {
	address backend.Address
	prev    account
}

func (c resurrectChange) revert(j *Journal) {
	*j.accounts[c.address] = c.prev
}

type logChange struct{}

func (c logChange) revert(j *Journal) {
	j.logs = j.logs[:len(j.logs)-1]
}
