// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Fantom-foundation/Fedora/go/backend"
	"github.com/Fantom-foundation/Fedora/go/backend/memory"
)

func TestStateFile_LoadParsesAccounts(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	content := `{
	  "accounts": {
	    "0x0100000000000000000000000000000000000000": {
	      "balance": "0x0000000000000000000000000000000000000000000000000000000000000064",
	      "nonce": "0x0000000000000000000000000000000000000000000000000000000000000001",
	      "code": "0x6000",
	      "storage": {
	        "0x0000000000000000000000000000000000000000000000000000000000000001":
	        "0x0000000000000000000000000000000000000000000000000000000000000005"
	      }
	    }
	  }
	}`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write test input: %v", err)
	}

	state, err := loadState(path)
	if err != nil {
		t.Fatalf("failed to load state: %v", err)
	}

	account, found := state[backend.Address{1}]
	if !found {
		t.Fatalf("expected account missing, got %v", state)
	}
	if want, got := backend.NewValue(100), account.Balance; want != got {
		t.Errorf("unexpected balance, wanted %v, got %v", want, got)
	}
	if want, got := backend.NewValue(1), account.Nonce; want != got {
		t.Errorf("unexpected nonce, wanted %v, got %v", want, got)
	}
	if want, got := 2, len(account.Code); want != got {
		t.Errorf("unexpected code length, wanted %d, got %d", want, got)
	}
	if want, got := (backend.Word{31: 5}), account.Storage[backend.Key{31: 1}]; want != got {
		t.Errorf("unexpected storage word, wanted %v, got %v", want, got)
	}
}

func TestStateFile_WriteAndLoadRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	state := memory.State{
		{1}: {
			Balance: backend.NewValue(100),
			Nonce:   backend.NewValue(2),
			Code:    backend.Code{0x60, 0x00},
			Storage: memory.Storage{{1}: {5}},
		},
		{2}: {Balance: backend.NewValue(7)},
	}

	if err := writeState(path, state); err != nil {
		t.Fatalf("failed to write state: %v", err)
	}
	restored, err := loadState(path)
	if err != nil {
		t.Fatalf("failed to load state: %v", err)
	}

	if !state.Equal(restored) {
		t.Errorf("round trip altered the state: %v", state.Diff(restored))
	}
}

func TestDiffFile_LoadBuildsApplyRecords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "diff.json")
	content := `{
	  "deleteEmpty": true,
	  "changes": [
	    {"modify": {
	      "address": "0x0100000000000000000000000000000000000000",
	      "balance": "0x0000000000000000000000000000000000000000000000000000000000000001",
	      "nonce": "0x0000000000000000000000000000000000000000000000000000000000000000",
	      "resetStorage": true
	    }},
	    {"delete": {
	      "address": "0x0200000000000000000000000000000000000000"
	    }}
	  ],
	  "logs": [
	    {"address": "0x0100000000000000000000000000000000000000", "data": "0x01"}
	  ]
	}`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write test input: %v", err)
	}

	values, logs, deleteEmpty, err := loadDiff(path)
	if err != nil {
		t.Fatalf("failed to load diff: %v", err)
	}
	if !deleteEmpty {
		t.Errorf("deleteEmpty flag was dropped")
	}
	if want, got := 2, len(values); want != got {
		t.Fatalf("unexpected number of records, wanted %d, got %d", want, got)
	}

	modify, ok := values[0].(backend.Modify)
	if !ok {
		t.Fatalf("expected a modify record, got %v", values[0])
	}
	if modify.Code != nil {
		t.Errorf("absent code must stay nil, got %v", modify.Code)
	}
	if !modify.ResetStorage {
		t.Errorf("resetStorage flag was dropped")
	}
	if _, ok := values[1].(backend.Delete); !ok {
		t.Fatalf("expected a delete record, got %v", values[1])
	}
	if want, got := 1, len(logs); want != got {
		t.Fatalf("unexpected number of logs, wanted %d, got %d", want, got)
	}
}

func TestDiffFile_AmbiguousChangesAreRejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "diff.json")
	content := `{"changes": [{}]}`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write test input: %v", err)
	}
	if _, _, _, err := loadDiff(path); err == nil {
		t.Errorf("expected loading to fail on an empty change")
	}
}
