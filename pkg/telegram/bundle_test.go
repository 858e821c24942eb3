// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Torqueworks

package telegram

import "testing"

func TestConfig_EightBlocks(t *testing.T) {
	cfg := NewConfig()
	blocks := cfg.Blocks()
	if len(blocks) != 8 {
		t.Fatalf("expected 8 blocks, got %d", len(blocks))
	}

	seen := map[byte]string{}
	for _, b := range blocks {
		if prev, dup := seen[b.ID()]; dup {
			t.Errorf("id 0x%02X used by both %s and %s", b.ID(), prev, b.Name())
		}
		seen[b.ID()] = b.Name()
	}
}

func TestConfig_BlockByID(t *testing.T) {
	cfg := NewConfig()
	b, ok := cfg.BlockByID(IDRotorUserCalibration)
	if !ok || b != cfg.RotorUserCalibration {
		t.Error("BlockByID should route to the bundle's own instance")
	}
	if _, ok := cfg.BlockByID(0x99); ok {
		t.Error("unknown id should not resolve")
	}
}

func TestConfig_BlockByName(t *testing.T) {
	cfg := NewConfig()
	b, ok := cfg.BlockByName("stator-software-config")
	if !ok || b != cfg.StatorSoftwareConfig {
		t.Error("BlockByName should route to the bundle's own instance")
	}
	if _, ok := cfg.BlockByName("flux-capacitor"); ok {
		t.Error("unknown name should not resolve")
	}
}

func TestConfig_BlocksAreIndependent(t *testing.T) {
	cfg := NewConfig()
	before := cfg.RotorOperation.Serialize()

	if err := cfg.StatorOperation.Set("bus_address", uint64(9)); err != nil {
		t.Fatalf("Set error: %v", err)
	}

	after := cfg.RotorOperation.Serialize()
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("mutating stator operation changed rotor operation byte %d", i)
		}
	}
}
