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
	"fmt"

	"github.com/Fantom-foundation/Fedora/go/backend"
	"github.com/Fantom-foundation/Fedora/go/backend/memory"
	"github.com/urfave/cli/v2"
)

var QueryCmd = cli.Command{
	Action:    doQuery,
	Name:      "query",
	Usage:     "Read one account, or one of its storage slots, from a world-state file",
	ArgsUsage: "<state-file> <address> [<key>]",
}

func doQuery(context *cli.Context) error {
	if got := context.Args().Len(); got != 2 && got != 3 {
		return fmt.Errorf("expecting a state file, an address, and optionally a storage key")
	}
	state, err := loadState(context.Args().Get(0))
	if err != nil {
		return err
	}
	var address backend.Address
	if err := address.UnmarshalText([]byte(context.Args().Get(1))); err != nil {
		return fmt.Errorf("invalid address: %w", err)
	}

	source := memory.New(memory.Vicinity{}, state)

	if context.Args().Len() == 3 {
		var key backend.Key
		if err := key.UnmarshalText([]byte(context.Args().Get(2))); err != nil {
			return fmt.Errorf("invalid storage key: %w", err)
		}
		fmt.Printf("%v\n", source.Storage(address, key))
		return nil
	}

	basic := source.Basic(address)
	fmt.Printf("exists:    %t\n", source.Exists(address))
	fmt.Printf("balance:   %v\n", basic.Balance)
	fmt.Printf("nonce:     %v\n", basic.Nonce)
	fmt.Printf("code size: %d\n", source.CodeSize(address))
	fmt.Printf("code hash: %v\n", source.CodeHash(address))
	return nil
}
