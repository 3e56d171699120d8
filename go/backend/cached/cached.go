// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package cached provides a read-through cache decorator for backends
// whose reads are expensive, for instance trie-backed or remote state.
// Account data, code, and storage words are cached in LRU caches; an
// Apply purges all caches before it becomes visible.
package cached

import (
	"slices"

	"github.com/Fantom-foundation/Fedora/go/backend"
	lru "github.com/hashicorp/golang-lru/v2"
)

// Config contains the configuration options of a cached backend.
type Config struct {
	// Capacity is the maximum number of entries kept per cached aspect
	// (accounts, code, code hashes, storage words). If set to 0, a
	// default capacity is used.
	Capacity int
}

const defaultCapacity = 1 << 16

// ErrReadOnlyBase is raised as a panic when an Apply is directed at a
// cached backend whose wrapped backend cannot apply changes.
const ErrReadOnlyBase = backend.ConstError("cached: wrapped backend does not support Apply")

// Backend decorates another backend with read caches. The wrapped
// backend must answer consistently between Apply calls, which the
// contract guarantees, so cached answers never go stale within one
// transaction.
type Backend struct {
	base backend.Backend

	basics *lru.Cache[backend.Address, backend.Basic]
	codes  *lru.Cache[backend.Address, backend.Code]
	hashes *lru.Cache[backend.Address, backend.Hash]
	words  *lru.Cache[slot, backend.Word]
}

type slot struct {
	address backend.Address
	key     backend.Key
}

var _ backend.Backend = (*Backend)(nil)

// New creates a caching decorator around the given backend.
func New(base backend.Backend, config Config) (*Backend, error) {
	if config.Capacity == 0 {
		config.Capacity = defaultCapacity
	}
	basics, err := lru.New[backend.Address, backend.Basic](config.Capacity)
	if err != nil {
		return nil, err
	}
	codes, err := lru.New[backend.Address, backend.Code](config.Capacity)
	if err != nil {
		return nil, err
	}
	hashes, err := lru.New[backend.Address, backend.Hash](config.Capacity)
	if err != nil {
		return nil, err
	}
	words, err := lru.New[slot, backend.Word](config.Capacity)
	if err != nil {
		return nil, err
	}
	return &Backend{
		base:   base,
		basics: basics,
		codes:  codes,
		hashes: hashes,
		words:  words,
	}, nil
}

func (b *Backend) GasPrice() backend.Value {
	return b.base.GasPrice()
}

func (b *Backend) Origin() backend.Address {
	return b.base.Origin()
}

func (b *Backend) BlockHash(number backend.Value) backend.Hash {
	return b.base.BlockHash(number)
}

func (b *Backend) BlockNumber() backend.Value {
	return b.base.BlockNumber()
}

func (b *Backend) BlockCoinbase() backend.Address {
	return b.base.BlockCoinbase()
}

func (b *Backend) BlockTimestamp() backend.Value {
	return b.base.BlockTimestamp()
}

func (b *Backend) BlockDifficulty() backend.Value {
	return b.base.BlockDifficulty()
}

func (b *Backend) BlockGasLimit() backend.Value {
	return b.base.BlockGasLimit()
}

func (b *Backend) ChainID() backend.Value {
	return b.base.ChainID()
}

// Exists is answered by the wrapped backend directly; its answer depends
// on storage content beyond the cached aspects.
func (b *Backend) Exists(address backend.Address) bool {
	return b.base.Exists(address)
}

func (b *Backend) Basic(address backend.Address) backend.Basic {
	if basic, found := b.basics.Get(address); found {
		return basic
	}
	basic := b.base.Basic(address)
	b.basics.Add(address, basic)
	return basic
}

func (b *Backend) CodeHash(address backend.Address) backend.Hash {
	if hash, found := b.hashes.Get(address); found {
		return hash
	}
	hash := b.base.CodeHash(address)
	b.hashes.Add(address, hash)
	return hash
}

func (b *Backend) CodeSize(address backend.Address) int {
	return len(b.Code(address))
}

func (b *Backend) Code(address backend.Address) backend.Code {
	if code, found := b.codes.Get(address); found {
		return slices.Clone(code)
	}
	code := b.base.Code(address)
	b.codes.Add(address, slices.Clone(code))
	return code
}

func (b *Backend) Storage(address backend.Address, key backend.Key) backend.Word {
	s := slot{address, key}
	if word, found := b.words.Get(s); found {
		return word
	}
	word := b.base.Storage(address, key)
	b.words.Add(s, word)
	return word
}

// HandleCall forwards call delegation unmodified; handled calls do not
// mutate state, so the caches stay valid.
func (b *Backend) HandleCall(
	codeAddress backend.Address,
	transfer *backend.Transfer,
	input backend.Data,
	targetGas *backend.Gas,
	policy backend.CallPolicy,
	context backend.Context,
) (backend.CallOutcome, bool) {
	return b.base.HandleCall(codeAddress, transfer, input, targetGas, policy, context)
}

// Apply forwards the batch to the wrapped backend and purges all caches.
// It panics if the wrapped backend cannot apply changes; using a cached
// read-only backend as a write target is a programming error.
func (b *Backend) Apply(values []backend.Apply, logs []backend.Log, deleteEmpty bool) {
	applier, ok := b.base.(backend.ApplyBackend)
	if !ok {
		panic(ErrReadOnlyBase)
	}
	b.basics.Purge()
	b.codes.Purge()
	b.hashes.Purge()
	b.words.Purge()
	applier.Apply(values, logs, deleteEmpty)
}
