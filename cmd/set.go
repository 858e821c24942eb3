// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2025 Torqueworks

package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/torqueworks/lorenztel/pkg/telegram"
)

var setCmd = &cobra.Command{
	Use:   "set <block> <field> <value>",
	Short: "Change one field of a mutable configuration block",
	Long: `Read a block from the instrument, change one field and write the block
back. The instrument acknowledges the write; the checksum trailer is
recomputed automatically.

Values: integers ("7", "0x10"), decimals ("1.2345"), labels ("SPEED"), or
"default" for the device-default sentinel.`,
	Args: cobra.ExactArgs(3),
	RunE: runSet,
}

func init() {
	rootCmd.AddCommand(setCmd)
}

// parseValue turns a CLI argument into the semantic value domain of the
// codec: nil sentinel, integer, float or label.
func parseValue(arg string) interface{} {
	switch strings.ToLower(arg) {
	case "default", "none", "null":
		return nil
	}
	if n, err := strconv.ParseUint(arg, 0, 64); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(arg, 64); err == nil {
		return f
	}
	return arg
}

func runSet(cmd *cobra.Command, args []string) error {
	blockName, fieldName, valueArg := args[0], args[1], args[2]

	cfg := telegram.NewConfig()
	block, err := resolveBlock(cfg, blockName)
	if err != nil {
		return err
	}
	if block.ReadOnly() {
		return fmt.Errorf("block %s is read only", block.Name())
	}

	conn, connInfo, err := OpenConnection()
	if err != nil {
		return err
	}
	defer conn.Close()

	fmt.Printf("Connection: %s\n\n", connInfo)

	// Read-modify-write so untouched fields and reserved bytes survive.
	session := NewSession(conn)
	if err := session.ReadBlock(block); err != nil {
		return err
	}
	if err := block.Set(fieldName, parseValue(valueArg)); err != nil {
		return err
	}
	if err := session.WriteBlock(block); err != nil {
		return err
	}

	v, _ := block.Get(fieldName)
	fd, _ := block.Schema().Field(fieldName)
	fmt.Printf("%s.%s = %s\n", block.Name(), fieldName, telegram.FormatValue(fd, v))
	return nil
}
