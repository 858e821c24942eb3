// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2025 Torqueworks
//
// Lorenztel - configuration tool for Lorenz rotary torque instruments.

package main

import (
	"os"

	"github.com/torqueworks/lorenztel/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
