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

//go:generate mockgen -source backend.go -destination backend_mock.go -package backend

// Backend is the read contract between an interpreter and the world state.
// An interpreter holds a reference to exactly one Backend for the full
// duration of one transaction's execution and issues reads through it as
// needed, in any order and arbitrarily often. A conforming implementation
// returns the same answer for the same question until the next Apply.
//
// All accessors are total: a missing account or storage slot is reported
// through its defined default value, never through an error. This keeps
// hot-path state reads free of error handling in the interpreter.
type Backend interface {
	// GasPrice returns the effective gas price of the current transaction.
	GasPrice() Value
	// Origin returns the sender of the current transaction.
	Origin() Address
	// BlockHash returns the hash of the block with the given number, or the
	// zero hash if the backend has no data for that block.
	BlockHash(number Value) Hash
	// BlockNumber returns the number of the current block.
	BlockNumber() Value
	// BlockCoinbase returns the beneficiary address of the current block.
	BlockCoinbase() Address
	// BlockTimestamp returns the timestamp of the current block.
	BlockTimestamp() Value
	// BlockDifficulty returns the difficulty of the current block.
	BlockDifficulty() Value
	// BlockGasLimit returns the gas limit of the current block.
	BlockGasLimit() Value
	// ChainID returns the identifier of the chain this state belongs to.
	ChainID() Value

	// Exists returns true iff the account at the given address has any
	// non-default footprint: a non-zero balance or nonce, non-empty code,
	// or at least one storage slot.
	Exists(Address) bool
	// Basic returns the balance and nonce of the account at the given
	// address. Non-existing accounts report the default Basic value.
	Basic(Address) Basic
	// CodeHash returns the hash of the code of the given account, or
	// EmptyCodeHash if the account has no code.
	CodeHash(Address) Hash
	// CodeSize returns the length of the code of the given account in
	// bytes, 0 if the account has no code.
	CodeSize(Address) int
	// Code returns the code of the given account, empty if it has none.
	Code(Address) Code
	// Storage returns the word stored in the given slot of the given
	// account, the zero word for any slot never written. A slot holding
	// the zero word is indistinguishable from an absent slot.
	Storage(Address, Key) Word

	// HandleCall offers a nested call to the backend before the interpreter
	// recurses into the addressed code. It is how natively implemented
	// contracts -- precompiles, bridge contracts, or test stubs -- are
	// routed around byte-code interpretation.
	//
	// The second result is false if the backend does not handle calls to
	// codeAddress; the interpreter must then execute the call itself, and
	// the attempt must have left the backend's observable state unchanged.
	// If it is true, the backend fully and synchronously computed the
	// outcome of the call; a failure of the handled call is encoded in the
	// outcome's exit reason, not signaled to the interpreter as an error.
	//
	// The transfer is nil for calls that move no funds, and targetGas is
	// nil if the caller placed no explicit gas limit on the call. The
	// policy flags describe gas forwarding rules the interpreter must
	// honor when the call is NOT handled here, see CallPolicy.
	HandleCall(
		codeAddress Address,
		transfer *Transfer,
		input Data,
		targetGas *Gas,
		policy CallPolicy,
		context Context,
	) (CallOutcome, bool)
}

// CallPolicy carries the Ethereum-specific execution rules of one nested
// call attempt. The flags are produced by the interpreter's call opcodes
// and travel with the call so that a declining backend loses no
// information the interpreter needs to execute the call itself.
type CallPolicy struct {
	// IsStatic marks a call context in which all state mutations must be
	// rejected. The rejection is the interpreter's duty; a backend only
	// forwards the flag.
	IsStatic bool
	// TakeL64 signals that only 63/64th of the remaining gas may be
	// forwarded to the nested call, retaining 1/64th for the caller to
	// continue after the call returns.
	TakeL64 bool
	// TakeStipend signals that a fixed minimal gas stipend must be added
	// to the forwarded gas whenever the call carries a non-zero value
	// transfer, guaranteeing the callee enough headroom to at least fail
	// gracefully.
	TakeStipend bool
}
