// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package precompiled decorates a backend with natively implemented
// contracts. Calls directed at a precompiled contract address are answered
// by the decorator's HandleCall instead of being interpreted; all other
// calls and all state reads pass through to the wrapped backend.
package precompiled

import (
	"github.com/Fantom-foundation/Fedora/go/backend"
	"github.com/ethereum/go-ethereum/common"
	geth "github.com/ethereum/go-ethereum/core/vm"
)

// Backend wraps another backend and serves the classic precompiled
// contracts through go-ethereum's implementations.
type Backend struct {
	backend.Backend
	contracts map[common.Address]geth.PrecompiledContract
}

var _ backend.Backend = (*Backend)(nil)

// New wraps the given backend with the precompiled contract set of the
// Berlin revision, the nine contracts at addresses 0x1 to 0x9.
func New(wrapped backend.Backend) *Backend {
	return NewWithContracts(wrapped, geth.PrecompiledContractsBerlin)
}

// NewWithContracts wraps the given backend with a custom contract set.
func NewWithContracts(
	wrapped backend.Backend,
	contracts map[common.Address]geth.PrecompiledContract,
) *Backend {
	return &Backend{
		Backend:   wrapped,
		contracts: contracts,
	}
}

// HandleCall answers calls to the configured precompiled contracts and
// forwards everything else to the wrapped backend.
//
// A handled call is computed synchronously and without touching any
// state; value transfers attached to the call remain the interpreter's
// duty, as does all gas bookkeeping beyond the contract's own cost.
func (b *Backend) HandleCall(
	codeAddress backend.Address,
	transfer *backend.Transfer,
	input backend.Data,
	targetGas *backend.Gas,
	policy backend.CallPolicy,
	context backend.Context,
) (backend.CallOutcome, bool) {
	contract, found := b.contracts[common.Address(codeAddress)]
	if !found {
		return b.Backend.HandleCall(
			codeAddress, transfer, input, targetGas, policy, context)
	}

	gasCost := contract.RequiredGas(input)
	if targetGas != nil {
		if *targetGas < backend.Gas(gasCost) {
			return backend.CallExit{Reason: backend.ExitFatal}, true
		}
		*targetGas -= backend.Gas(gasCost)
	}

	output, err := contract.Run(input)
	if err != nil {
		// precompiled contracts only fail on invalid input, which
		// consumes all gas given to the call
		return backend.CallExit{Reason: backend.ExitFatal}, true
	}
	return backend.CallExit{
		Reason: backend.ExitSucceed,
		Output: output,
	}, true
}
