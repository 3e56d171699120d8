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
	"bytes"
	"fmt"

	"github.com/Fantom-foundation/Fedora/go/backend"
	"github.com/dsnet/golib/unitconv"
	"github.com/urfave/cli/v2"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

var ShowCmd = cli.Command{
	Action:    doShow,
	Name:      "show",
	Usage:     "Print a summary of a world-state file",
	ArgsUsage: "<state-file>",
}

func doShow(context *cli.Context) error {
	if context.Args().Len() != 1 {
		return fmt.Errorf("expecting one state file as argument")
	}
	state, err := loadState(context.Args().Get(0))
	if err != nil {
		return err
	}

	addresses := maps.Keys(state)
	slices.SortFunc(addresses, func(a, b backend.Address) int {
		return bytes.Compare(a[:], b[:])
	})

	totalCode := 0
	totalSlots := 0
	for _, address := range addresses {
		account := state[address]
		slots := 0
		for _, word := range account.Storage {
			if word != (backend.Word{}) {
				slots++
			}
		}
		fmt.Printf("%v: balance %v, nonce %v, code %sB, %d storage slots\n",
			address, account.Balance, account.Nonce,
			unitconv.FormatPrefix(float64(len(account.Code)), unitconv.SI, 1),
			slots,
		)
		totalCode += len(account.Code)
		totalSlots += slots
	}
	fmt.Printf("%d accounts, %sB of code, %d storage slots\n",
		len(addresses),
		unitconv.FormatPrefix(float64(totalCode), unitconv.SI, 1),
		totalSlots,
	)
	return nil
}
