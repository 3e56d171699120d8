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
	"encoding/json"
	"fmt"
	"os"

	"github.com/Fantom-foundation/Fedora/go/backend"
	"github.com/Fantom-foundation/Fedora/go/backend/memory"
)

// stateFile is the on-disk JSON encoding of a world state. All byte
// quantities are 0x-prefixed hex strings.
type stateFile struct {
	Accounts map[backend.Address]accountEntry `json:"accounts"`
}

type accountEntry struct {
	Balance backend.Value                `json:"balance"`
	Nonce   backend.Value                `json:"nonce"`
	Code    backend.Code                 `json:"code,omitempty"`
	Storage map[backend.Key]backend.Word `json:"storage,omitempty"`
}

func loadState(path string) (memory.State, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read state file: %w", err)
	}
	var file stateFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse state file %s: %w", path, err)
	}
	state := memory.State{}
	for address, entry := range file.Accounts {
		state[address] = memory.Account{
			Balance: entry.Balance,
			Nonce:   entry.Nonce,
			Code:    entry.Code,
			Storage: memory.Storage(entry.Storage),
		}
	}
	return state, nil
}

func writeState(path string, state memory.State) error {
	file := stateFile{Accounts: map[backend.Address]accountEntry{}}
	for address, account := range state {
		file.Accounts[address] = accountEntry{
			Balance: account.Balance,
			Nonce:   account.Nonce,
			Code:    account.Code,
			Storage: account.Storage,
		}
	}
	data, err := json.MarshalIndent(&file, "", "  ")
	if err != nil {
		return err
	}
	if path == "-" {
		_, err = os.Stdout.Write(append(data, '\n'))
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0644)
}

// diffFile is the on-disk JSON encoding of one transaction diff. Each
// change is either a modify or a delete record.
type diffFile struct {
	DeleteEmpty bool          `json:"deleteEmpty"`
	Changes     []changeEntry `json:"changes"`
	Logs        []logEntry    `json:"logs,omitempty"`
}

type changeEntry struct {
	Modify *modifyEntry `json:"modify,omitempty"`
	Delete *deleteEntry `json:"delete,omitempty"`
}

type modifyEntry struct {
	Address      backend.Address `json:"address"`
	Balance      backend.Value   `json:"balance"`
	Nonce        backend.Value   `json:"nonce"`
	Code         *backend.Code   `json:"code,omitempty"` // absent = keep current code
	Storage      []storageEntry  `json:"storage,omitempty"`
	ResetStorage bool            `json:"resetStorage,omitempty"`
}

type deleteEntry struct {
	Address backend.Address `json:"address"`
}

type storageEntry struct {
	Key   backend.Key  `json:"key"`
	Value backend.Word `json:"value"`
}

type logEntry struct {
	Address backend.Address `json:"address"`
	Topics  []backend.Hash  `json:"topics,omitempty"`
	Data    backend.Data    `json:"data,omitempty"`
}

func loadDiff(path string) ([]backend.Apply, []backend.Log, bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, false, fmt.Errorf("failed to read diff file: %w", err)
	}
	var file diffFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, nil, false, fmt.Errorf("failed to parse diff file %s: %w", path, err)
	}

	var values []backend.Apply
	for i, change := range file.Changes {
		switch {
		case change.Modify != nil && change.Delete == nil:
			updates := make([]backend.StorageUpdate, 0, len(change.Modify.Storage))
			for _, entry := range change.Modify.Storage {
				updates = append(updates, backend.StorageUpdate{
					Key:   entry.Key,
					Value: entry.Value,
				})
			}
			var code backend.Code
			if change.Modify.Code != nil {
				code = *change.Modify.Code
				if code == nil {
					code = backend.Code{}
				}
			}
			values = append(values, backend.Modify{
				Address: change.Modify.Address,
				Basic: backend.Basic{
					Balance: change.Modify.Balance,
					Nonce:   change.Modify.Nonce,
				},
				Code:         code,
				Storage:      updates,
				ResetStorage: change.Modify.ResetStorage,
			})
		case change.Delete != nil && change.Modify == nil:
			values = append(values, backend.Delete{Address: change.Delete.Address})
		default:
			return nil, nil, false, fmt.Errorf("change %d must be exactly one of modify or delete", i)
		}
	}

	var logs []backend.Log
	for _, entry := range file.Logs {
		logs = append(logs, backend.Log{
			Address: entry.Address,
			Topics:  entry.Topics,
			Data:    entry.Data,
		})
	}
	return values, logs, file.DeleteEmpty, nil
}
