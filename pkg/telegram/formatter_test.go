// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Torqueworks

package telegram

import (
	"strings"
	"testing"
)

func TestFormatBlock(t *testing.T) {
	b := NewStatorOperation()
	if err := b.Set("output_A", "SPEED"); err != nil {
		t.Fatalf("Set error: %v", err)
	}

	out := FormatBlock(b)
	for _, want := range []string{"stator-operation", "0x13", "rw", "SPEED", "(default)"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestFormatFrame(t *testing.T) {
	got := FormatFrame([]byte{0x02, 0x10, 0xFF})
	if got != "02 10 FF" {
		t.Errorf("FormatFrame = %q", got)
	}
}
