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

import (
	"testing"

	"go.uber.org/mock/gomock"
)

func TestExitReason_String(t *testing.T) {
	tests := []struct {
		reason ExitReason
		want   string
	}{
		{ExitSucceed, "succeed"},
		{ExitRevert, "revert"},
		{ExitFatal, "fatal"},
		{ExitReason(42), "ExitReason(42)"},
	}

	for _, test := range tests {
		if want, got := test.want, test.reason.String(); want != got {
			t.Errorf("unexpected print of %d, wanted %v, got %v", int(test.reason), want, got)
		}
	}
}

func TestCallExit_IsACallOutcome(t *testing.T) {
	var outcome CallOutcome = CallExit{Reason: ExitSucceed, Output: Data{1, 2}}
	exit, ok := outcome.(CallExit)
	if !ok {
		t.Fatalf("CallExit is not usable as a CallOutcome")
	}
	if want, got := ExitSucceed, exit.Reason; want != got {
		t.Errorf("unexpected reason, wanted %v, got %v", want, got)
	}
}

func TestBackend_MockCanDeclineAndHandleCalls(t *testing.T) {
	ctrl := gomock.NewController(t)
	mock := NewMockBackend(ctrl)

	mock.EXPECT().
		HandleCall(Address{1}, gomock.Nil(), gomock.Any(), gomock.Nil(), gomock.Any(), gomock.Any()).
		Return(nil, false)
	mock.EXPECT().
		HandleCall(Address{2}, gomock.Nil(), gomock.Any(), gomock.Nil(), gomock.Any(), gomock.Any()).
		Return(CallExit{Reason: ExitSucceed}, true)

	var b Backend = mock
	if _, handled := b.HandleCall(Address{1}, nil, nil, nil, CallPolicy{}, Context{}); handled {
		t.Errorf("declined call reported as handled")
	}
	outcome, handled := b.HandleCall(Address{2}, nil, nil, nil, CallPolicy{}, Context{})
	if !handled {
		t.Errorf("handled call reported as declined")
	}
	if exit, ok := outcome.(CallExit); !ok || exit.Reason != ExitSucceed {
		t.Errorf("unexpected outcome, got %v", outcome)
	}
}
