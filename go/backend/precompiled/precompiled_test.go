// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package precompiled

import (
	"bytes"
	"crypto/sha256"
	"testing"

	"github.com/Fantom-foundation/Fedora/go/backend"
	"github.com/Fantom-foundation/Fedora/go/backend/memory"
)

var (
	sha256Address   = backend.Address{19: 0x2}
	identityAddress = backend.Address{19: 0x4}
)

func TestBackend_IdentityContractEchoesItsInput(t *testing.T) {
	source := New(memory.New(memory.Vicinity{}, nil))
	input := backend.Data{1, 2, 3}

	outcome, handled := source.HandleCall(
		identityAddress, nil, input, nil, backend.CallPolicy{}, backend.Context{})
	if !handled {
		t.Fatalf("call to the identity contract was not handled")
	}
	exit, ok := outcome.(backend.CallExit)
	if !ok {
		t.Fatalf("unexpected outcome type, got %v", outcome)
	}
	if want, got := backend.ExitSucceed, exit.Reason; want != got {
		t.Errorf("unexpected exit reason, wanted %v, got %v", want, got)
	}
	if !bytes.Equal(input, exit.Output) {
		t.Errorf("unexpected output, wanted %v, got %v", input, exit.Output)
	}
}

func TestBackend_Sha256ContractHashesItsInput(t *testing.T) {
	source := New(memory.New(memory.Vicinity{}, nil))
	input := backend.Data("hello world")

	outcome, handled := source.HandleCall(
		sha256Address, nil, input, nil, backend.CallPolicy{}, backend.Context{})
	if !handled {
		t.Fatalf("call to the sha256 contract was not handled")
	}
	exit := outcome.(backend.CallExit)
	want := sha256.Sum256(input)
	if !bytes.Equal(want[:], exit.Output) {
		t.Errorf("unexpected hash, wanted %x, got %x", want, exit.Output)
	}
}

func TestBackend_InsufficientGasIsAHandledFatalExit(t *testing.T) {
	source := New(memory.New(memory.Vicinity{}, nil))
	gas := backend.Gas(1) // the identity contract needs at least 15 gas

	outcome, handled := source.HandleCall(
		identityAddress, nil, backend.Data{1}, &gas, backend.CallPolicy{}, backend.Context{})
	if !handled {
		t.Fatalf("out-of-gas calls must still count as handled")
	}
	exit := outcome.(backend.CallExit)
	if want, got := backend.ExitFatal, exit.Reason; want != got {
		t.Errorf("unexpected exit reason, wanted %v, got %v", want, got)
	}
}

func TestBackend_SuccessfulCallsChargeTheContractCost(t *testing.T) {
	source := New(memory.New(memory.Vicinity{}, nil))
	gas := backend.Gas(100)

	// the identity contract costs 15 gas plus 3 per input word
	outcome, handled := source.HandleCall(
		identityAddress, nil, backend.Data{1}, &gas, backend.CallPolicy{}, backend.Context{})
	if !handled {
		t.Fatalf("call to the identity contract was not handled")
	}
	if want, got := backend.ExitSucceed, outcome.(backend.CallExit).Reason; want != got {
		t.Fatalf("unexpected exit reason, wanted %v, got %v", want, got)
	}
	if want, got := backend.Gas(100-18), gas; want != got {
		t.Errorf("unexpected remaining gas, wanted %v, got %v", want, got)
	}
}

func TestBackend_UnknownAddressesAreForwardedToTheWrappedBackend(t *testing.T) {
	source := New(memory.New(memory.Vicinity{}, nil))

	outcome, handled := source.HandleCall(
		backend.Address{0x42}, nil, nil, nil, backend.CallPolicy{}, backend.Context{})
	if handled {
		t.Errorf("call to a regular address must not be handled")
	}
	if outcome != nil {
		t.Errorf("declined calls must carry no outcome, got %v", outcome)
	}
}

func TestBackend_StateReadsPassThrough(t *testing.T) {
	address := backend.Address{1}
	source := New(memory.New(memory.Vicinity{}, memory.State{address: {
		Balance: backend.NewValue(7),
	}}))

	if want, got := backend.NewValue(7), source.Basic(address).Balance; want != got {
		t.Errorf("unexpected balance, wanted %v, got %v", want, got)
	}
	if !source.Exists(address) {
		t.Errorf("wrapped account not visible through the decorator")
	}
}

func TestBackend_HandlingACallLeavesTheStateUntouched(t *testing.T) {
	wrapped := memory.New(memory.Vicinity{}, memory.State{{1}: {
		Balance: backend.NewValue(7),
	}})
	source := New(wrapped)
	before := wrapped.State()

	_, handled := source.HandleCall(
		identityAddress,
		&backend.Transfer{Source: backend.Address{1}, Target: identityAddress, Value: backend.NewValue(1)},
		backend.Data{1}, nil, backend.CallPolicy{TakeStipend: true}, backend.Context{})
	if !handled {
		t.Fatalf("call to the identity contract was not handled")
	}
	if diffs := before.Diff(wrapped.State()); len(diffs) != 0 {
		t.Errorf("handling a call changed the state: %v", diffs)
	}
}
