// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2025 Torqueworks

package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/torqueworks/lorenztel/pkg/telegram"
)

var monitorCmd = &cobra.Command{
	Use:   "monitor",
	Short: "Log every telegram arriving on the link",
	Long: `Continuously decode and display configuration telegrams as they arrive
on the link, with checksum failures reported inline.

Telegrams whose identifier matches a known block variant are decoded and
printed field by field; anything else is shown as raw hex. Useful when a
second master is talking to the instrument or when diagnosing a flaky
link.`,
	RunE: runMonitor,
}

func init() {
	rootCmd.AddCommand(monitorCmd)
}

func runMonitor(cmd *cobra.Command, args []string) error {
	conn, connInfo, err := OpenConnection()
	if err != nil {
		return err
	}
	defer conn.Close()

	fmt.Printf("Lorenztel - Telegram Monitor\n")
	fmt.Printf("Connection: %s\n", connInfo)
	fmt.Printf("Press Ctrl+C to exit\n\n")

	cfg := telegram.NewConfig()
	decoder := telegram.NewLinkDecoder()
	buf := make([]byte, 128)

	for {
		n, err := conn.Read(buf)
		if err != nil {
			if err == ErrConnectionClosed {
				log.Printf("Connection closed")
				return nil
			}
			log.Printf("Read error: %v", err)
			continue
		}

		for i := 0; i < n; i++ {
			frame, err := decoder.DecodeByte(buf[i])
			if err != nil {
				fmt.Printf("[ERROR] %v\n", err)
				continue
			}
			if frame == nil {
				continue
			}

			block, ok := cfg.BlockByID(frame[0])
			if !ok {
				fmt.Printf("[UNKNOWN 0x%02X] %s\n", frame[0], telegram.FormatFrame(frame))
				continue
			}
			if err := block.Decode(frame); err != nil {
				fmt.Printf("[ERROR] %v\n", err)
				continue
			}
			fmt.Print(telegram.FormatBlock(block))
		}
	}
}
