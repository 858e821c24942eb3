// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2025 Torqueworks

package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/torqueworks/lorenztel/pkg/telegram"
)

var readCmd = &cobra.Command{
	Use:   "read <block>",
	Short: "Read one configuration block from the instrument",
	Long: `Request a single configuration block and print its decoded fields.

Block names:
  stator-header, stator-hardware, stator-operation, stator-software-config,
  rotor-header, rotor-factory-calibration, rotor-user-calibration,
  rotor-operation`,
	Args: cobra.ExactArgs(1),
	RunE: runRead,
}

func init() {
	rootCmd.AddCommand(readCmd)
}

// resolveBlock maps a CLI block name onto the bundle's instance.
func resolveBlock(cfg *telegram.Config, name string) (*telegram.Block, error) {
	b, ok := cfg.BlockByName(name)
	if ok {
		return b, nil
	}
	names := make([]string, 0, 8)
	for _, blk := range cfg.Blocks() {
		names = append(names, blk.Name())
	}
	return nil, fmt.Errorf("unknown block %q (expected one of %s)", name, strings.Join(names, ", "))
}

func runRead(cmd *cobra.Command, args []string) error {
	cfg := telegram.NewConfig()
	block, err := resolveBlock(cfg, args[0])
	if err != nil {
		return err
	}

	conn, connInfo, err := OpenConnection()
	if err != nil {
		return err
	}
	defer conn.Close()

	fmt.Printf("Connection: %s\n\n", connInfo)

	session := NewSession(conn)
	if err := session.ReadBlock(block); err != nil {
		return err
	}

	fmt.Print(telegram.FormatBlock(block))
	return nil
}
