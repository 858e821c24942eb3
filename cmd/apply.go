// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2025 Torqueworks

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/torqueworks/lorenztel/pkg/profile"
	"github.com/torqueworks/lorenztel/pkg/telegram"
)

var applyDryRun bool

var applyCmd = &cobra.Command{
	Use:   "apply <profile.yaml>",
	Short: "Apply a YAML settings profile to the instrument",
	Long: `Validate a settings profile, read the targeted blocks from the
instrument, apply the profile on top of the current values and write the
modified blocks back.

With --dry-run the profile is only validated against the block schemas;
nothing is read or written.`,
	Args: cobra.ExactArgs(1),
	RunE: runApply,
}

func init() {
	applyCmd.Flags().BoolVar(&applyDryRun, "dry-run", false, "Validate the profile without touching the instrument")
	rootCmd.AddCommand(applyCmd)
}

func runApply(cmd *cobra.Command, args []string) error {
	p, err := profile.Load(args[0])
	if err != nil {
		return err
	}

	cfg := telegram.NewConfig()
	if err := p.Validate(cfg); err != nil {
		return err
	}
	if applyDryRun {
		fmt.Println("Profile is valid.")
		return nil
	}

	conn, connInfo, err := OpenConnection()
	if err != nil {
		return err
	}
	defer conn.Close()

	fmt.Printf("Connection: %s\n\n", connInfo)

	// Read current state of the targeted blocks so the profile overlays
	// rather than replaces them.
	session := NewSession(conn)
	for _, bs := range p.Blocks {
		b, err := resolveBlock(cfg, bs.Block)
		if err != nil {
			return err
		}
		if err := session.ReadBlock(b); err != nil {
			return err
		}
	}

	touched, err := p.Apply(cfg)
	if err != nil {
		return err
	}

	for _, b := range touched {
		if err := session.WriteBlock(b); err != nil {
			return err
		}
		fmt.Printf("Wrote %s\n", b.Name())
	}
	fmt.Printf("Applied %s (%d block(s))\n", args[0], len(touched))
	return nil
}
