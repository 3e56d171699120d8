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

import "fmt"

// Context describes one nested-call attempt from the point of view of the
// callee: who is calling, who is being called, and the value the callee
// gets to observe. It exists only for the duration of a single call
// delegation decision and is never persisted.
type Context struct {
	// CallerAddress is the address the callee sees as its caller.
	CallerAddress Address
	// TargetAddress is the address the call is directed at.
	TargetAddress Address
	// ApparentValue is the value visible to the callee. For delegate
	// calls it may differ from the value actually transferred.
	ApparentValue Value
}

// Transfer describes funds to be moved as part of a nested call. A call
// without a transfer carries no Transfer at all rather than a zero one.
type Transfer struct {
	Source Address
	Target Address
	Value  Value
}

// ExitReason classifies how a handled call ended.
type ExitReason int

const (
	// ExitSucceed indicates the call completed regularly; its output is
	// the call's return data.
	ExitSucceed ExitReason = iota
	// ExitRevert indicates the call reverted all its effects; its output
	// is the revert data.
	ExitRevert
	// ExitFatal indicates the call failed in a way that consumes all
	// remaining gas, for example by running out of gas itself.
	ExitFatal
)

func (r ExitReason) String() string {
	switch r {
	case ExitSucceed:
		return "succeed"
	case ExitRevert:
		return "revert"
	case ExitFatal:
		return "fatal"
	}
	return fmt.Sprintf("ExitReason(%d)", int(r))
}

// CallOutcome is the result of a call answered by a Backend's HandleCall.
//
// The type is sealed with CallExit as its only implementation. A second
// case, a suspension handing an unfinished call back to the interpreter
// for later resumption, is deliberately left uninhabited: backend-level
// call handling is always synchronous, and the missing case documents
// that at the type level.
type CallOutcome interface {
	isCallOutcome()
}

// CallExit is the completed outcome of a handled call: how it ended and
// the bytes it returned.
type CallExit struct {
	Reason ExitReason
	Output Data
}

func (CallExit) isCallOutcome() {}
