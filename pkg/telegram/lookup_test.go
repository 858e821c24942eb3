// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Torqueworks

package telegram

import (
	"errors"
	"testing"
)

func TestLookupTable_DecodeKnownCodes(t *testing.T) {
	tests := []struct {
		name  string
		table *LookupTable
		code  uint64
		want  interface{}
	}{
		{"baud 115200", baudrateTable, 0x09, uint64(115200)},
		{"baud default low", baudrateTable, 0x00, nil},
		{"baud default high", baudrateTable, 0xFF, nil},
		{"output speed", outputTable, 0x03, "SPEED"},
		{"pulse 1440", pulsePerRevTable, 0x09, uint64(1440)},
		{"software id", softwareIDTable, 0x03, "DR-2412"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.table.Decode(tt.code); got != tt.want {
				t.Errorf("Decode(0x%02X) = %v, want %v", tt.code, got, tt.want)
			}
		})
	}
}

func TestLookupTable_DecodePassThrough(t *testing.T) {
	// Codes absent from the table must come back unchanged, never error.
	got := pulsePerRevTable.Decode(0x0A)
	if got != uint64(0x0A) {
		t.Errorf("Decode(0x0A) = %v, want raw 10", got)
	}
}

func TestLookupTable_EncodeRoundTrip(t *testing.T) {
	code, err := outputTable.Encode("ANGLE")
	if err != nil {
		t.Fatalf("Encode error: %v", err)
	}
	if code != 0x04 {
		t.Errorf("Encode(ANGLE) = 0x%02X, want 0x04", code)
	}
	if v := outputTable.Decode(code); v != "ANGLE" {
		t.Errorf("round trip lost value: %v", v)
	}
}

func TestLookupTable_EncodeSentinel(t *testing.T) {
	// nil is carried by both 0x00 and 0xFF; the reverse mapping keeps the
	// first declared code, and a second round trip must be stable.
	code, err := baudrateTable.Encode(nil)
	if err != nil {
		t.Fatalf("Encode(nil) error: %v", err)
	}
	if code != 0x00 {
		t.Errorf("Encode(nil) = 0x%02X, want first declared code 0x00", code)
	}
	if v := baudrateTable.Decode(code); v != nil {
		t.Errorf("Decode(Encode(nil)) = %v, want nil", v)
	}
	again, err := baudrateTable.Encode(baudrateTable.Decode(code))
	if err != nil || again != code {
		t.Errorf("second round trip = 0x%02X, %v; want 0x%02X", again, err, code)
	}
}

func TestLookupTable_EncodeIntegerFallback(t *testing.T) {
	// An integer with no reverse entry is already a valid raw code.
	code, err := pulsePerRevTable.Encode(uint64(0x0A))
	if err != nil {
		t.Fatalf("Encode error: %v", err)
	}
	if code != 0x0A {
		t.Errorf("Encode(10) = 0x%02X, want pass-through 0x0A", code)
	}

	// Plain int from application code normalizes into the table domain.
	code, err = baudrateTable.Encode(115200)
	if err != nil {
		t.Fatalf("Encode(int) error: %v", err)
	}
	if code != 0x09 {
		t.Errorf("Encode(115200) = 0x%02X, want 0x09", code)
	}
}

func TestLookupTable_EncodeUnknownValue(t *testing.T) {
	_, err := outputTable.Encode("TORQUE")
	if !errors.Is(err, ErrUnknownValue) {
		t.Errorf("expected ErrUnknownValue, got %v", err)
	}
	_, err = baudrateTable.Encode(-1)
	if !errors.Is(err, ErrUnknownValue) {
		t.Errorf("expected ErrUnknownValue for negative integer, got %v", err)
	}
}
