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

	"github.com/Fantom-foundation/Fedora/go/backend/memory"
	"github.com/urfave/cli/v2"
)

var ApplyCmd = cli.Command{
	Action:    doApply,
	Name:      "apply",
	Usage:     "Apply a diff file to a world-state file and print the resulting state",
	ArgsUsage: "<state-file> <diff-file>",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "out",
			Usage: "file the resulting state is written to, '-' for stdout",
			Value: "-",
		},
	},
}

func doApply(context *cli.Context) error {
	if context.Args().Len() != 2 {
		return fmt.Errorf("expecting a state file and a diff file as arguments")
	}
	state, err := loadState(context.Args().Get(0))
	if err != nil {
		return err
	}
	values, logs, deleteEmpty, err := loadDiff(context.Args().Get(1))
	if err != nil {
		return err
	}

	target := memory.New(memory.Vicinity{}, state)
	target.Apply(values, logs, deleteEmpty)

	if err := writeState(context.String("out"), target.State()); err != nil {
		return err
	}
	for i, log := range target.Logs() {
		fmt.Printf("log %d: address %v, %d topics, data %v\n",
			i, log.Address, len(log.Topics), log.Data)
	}
	return nil
}
