// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package memory provides a map-backed reference implementation of the
// backend contracts. It is the semantics oracle for other implementations
// and the substrate for deterministic tests; it rejects no well-formed
// input and has no failure modes.
package memory

import (
	"slices"
	"sync"

	"github.com/Fantom-foundation/Fedora/go/backend"
)

// Vicinity lists the environmental constants of the transaction being
// executed. They are fixed for the lifetime of a Backend instance.
type Vicinity struct {
	// GasPrice is the effective gas price of the transaction.
	GasPrice backend.Value
	// Origin is the sender of the transaction.
	Origin backend.Address
	// ChainID identifies the chain.
	ChainID backend.Value
	// BlockHashes lists the hashes of recent blocks, most recent first:
	// entry 0 is the hash of the parent of the current block, entry 1
	// the one of its parent, and so on.
	BlockHashes []backend.Hash
	// BlockNumber is the number of the current block.
	BlockNumber backend.Value
	// BlockCoinbase is the beneficiary of the current block.
	BlockCoinbase backend.Address
	// BlockTimestamp is the timestamp of the current block.
	BlockTimestamp backend.Value
	// BlockDifficulty is the difficulty of the current block.
	BlockDifficulty backend.Value
	// BlockGasLimit is the gas limit of the current block.
	BlockGasLimit backend.Value
}

// Backend is an in-memory implementation of the backend.Backend and
// backend.ApplyBackend contracts, holding all accounts in a single map.
type Backend struct {
	vicinity Vicinity

	// mu serializes Apply calls; the contract permits no reads while an
	// Apply is in flight, so reads take no lock.
	mu    sync.Mutex
	state State
	logs  []backend.Log
}

var (
	_ backend.Backend      = (*Backend)(nil)
	_ backend.ApplyBackend = (*Backend)(nil)
)

// New creates a backend with the given environment and initial accounts.
// The state is cloned; the caller keeps ownership of the passed map.
func New(vicinity Vicinity, state State) *Backend {
	cloned := state.Clone()
	if cloned == nil {
		cloned = State{}
	}
	return &Backend{
		vicinity: vicinity,
		state:    cloned,
	}
}

// State returns a copy of the current account state, mainly for test
// inspection and state dumps.
func (b *Backend) State() State {
	return b.state.Clone()
}

// Logs returns the logs committed so far, in commit order.
func (b *Backend) Logs() []backend.Log {
	return slices.Clone(b.logs)
}

func (b *Backend) GasPrice() backend.Value {
	return b.vicinity.GasPrice
}

func (b *Backend) Origin() backend.Address {
	return b.vicinity.Origin
}

func (b *Backend) BlockHash(number backend.Value) backend.Hash {
	// Only the ancestors covered by the vicinity are known; everything
	// else reports the zero hash, including the current and any future
	// block.
	if number.Cmp(b.vicinity.BlockNumber) >= 0 {
		return backend.Hash{}
	}
	distance := backend.Sub(backend.Sub(b.vicinity.BlockNumber, number), backend.NewValue(1))
	if distance.Cmp(backend.NewValue(uint64(len(b.vicinity.BlockHashes)))) >= 0 {
		return backend.Hash{}
	}
	return b.vicinity.BlockHashes[distance.Uint64()]
}

func (b *Backend) BlockNumber() backend.Value {
	return b.vicinity.BlockNumber
}

func (b *Backend) BlockCoinbase() backend.Address {
	return b.vicinity.BlockCoinbase
}

func (b *Backend) BlockTimestamp() backend.Value {
	return b.vicinity.BlockTimestamp
}

func (b *Backend) BlockDifficulty() backend.Value {
	return b.vicinity.BlockDifficulty
}

func (b *Backend) BlockGasLimit() backend.Value {
	return b.vicinity.BlockGasLimit
}

func (b *Backend) ChainID() backend.Value {
	return b.vicinity.ChainID
}

func (b *Backend) Exists(address backend.Address) bool {
	account, found := b.state[address]
	if !found {
		return false
	}
	if account.Balance != (backend.Value{}) ||
		account.Nonce != (backend.Value{}) ||
		len(account.Code) != 0 {
		return true
	}
	for _, word := range account.Storage {
		if word != (backend.Word{}) {
			return true
		}
	}
	return false
}

func (b *Backend) Basic(address backend.Address) backend.Basic {
	account := b.state[address]
	return backend.Basic{
		Balance: account.Balance,
		Nonce:   account.Nonce,
	}
}

func (b *Backend) CodeHash(address backend.Address) backend.Hash {
	code := b.state[address].Code
	if len(code) == 0 {
		return backend.EmptyCodeHash
	}
	return backend.HashCode(code)
}

func (b *Backend) CodeSize(address backend.Address) int {
	return len(b.state[address].Code)
}

func (b *Backend) Code(address backend.Address) backend.Code {
	return slices.Clone(b.state[address].Code)
}

func (b *Backend) Storage(address backend.Address, key backend.Key) backend.Word {
	return b.state[address].Storage[key]
}

// HandleCall declines every call; this backend implements no contracts
// natively and the decline leaves its state untouched.
func (b *Backend) HandleCall(
	codeAddress backend.Address,
	transfer *backend.Transfer,
	input backend.Data,
	targetGas *backend.Gas,
	policy backend.CallPolicy,
	context backend.Context,
) (backend.CallOutcome, bool) {
	return nil, false
}

func (b *Backend) Apply(values []backend.Apply, logs []backend.Log, deleteEmpty bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	touched := map[backend.Address]bool{}
	for _, value := range values {
		switch value := value.(type) {
		case backend.Modify:
			account := b.state[value.Address]
			account.Balance = value.Basic.Balance
			account.Nonce = value.Basic.Nonce
			if value.Code != nil {
				account.Code = slices.Clone(value.Code)
			}
			if value.ResetStorage || account.Storage == nil {
				account.Storage = Storage{}
			}
			for _, update := range value.Storage {
				if update.Value == (backend.Word{}) {
					delete(account.Storage, update.Key)
				} else {
					account.Storage[update.Key] = update.Value
				}
			}
			b.state[value.Address] = account
			touched[value.Address] = true
		case backend.Delete:
			delete(b.state, value.Address)
			delete(touched, value.Address)
		default:
			panic("unknown apply record")
		}
	}

	if deleteEmpty {
		for address := range touched {
			if account, found := b.state[address]; found && account.Empty() {
				delete(b.state, address)
			}
		}
	}

	for _, log := range logs {
		b.logs = append(b.logs, log)
	}
}
