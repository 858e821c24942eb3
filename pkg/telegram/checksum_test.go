// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Torqueworks

package telegram

import "testing"

func TestChecksums_KnownValues(t *testing.T) {
	tests := []struct {
		name      string
		id        byte
		payload   []byte
		checksum  uint16
		wchecksum uint16
	}{
		{
			name:     "id only",
			id:       0x10,
			payload:  nil,
			checksum: 0x0010, wchecksum: 0x0010,
		},
		{
			// 27 zero bytes leave the checksum at 0x10 while the weighted
			// sum accumulates it once per byte: 28 * 0x10.
			name:     "stator header default payload",
			id:       0x10,
			payload:  make([]byte, PayloadSize),
			checksum: 0x0010, wchecksum: 0x01C0,
		},
		{
			name:     "ascending bytes",
			id:       0x01,
			payload:  []byte{0x02, 0x03},
			checksum: 0x0006, wchecksum: 0x000A,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := Checksums(tt.id, tt.payload)
			if c != tt.checksum || w != tt.wchecksum {
				t.Errorf("Checksums() = %04X/%04X, want %04X/%04X", c, w, tt.checksum, tt.wchecksum)
			}
		})
	}
}

func TestChecksums_Wraparound(t *testing.T) {
	// 301 * 0xFF > 0xFFFF; both accumulators must wrap modulo 0x10000
	// rather than saturate or error.
	payload := make([]byte, 300)
	for i := range payload {
		payload[i] = 0xFF
	}
	c, w := Checksums(0xFF, payload)
	want := uint16(301 * 0xFF % 0x10000)
	if c != want {
		t.Errorf("checksum = %04X, want %04X", c, want)
	}
	if w == 0 {
		t.Error("wchecksum should accumulate nonzero contributions")
	}
}

func TestChecksums_Deterministic(t *testing.T) {
	payload := []byte{0x10, 0x30, 0x01, 0x02, 0x03, 0x04}
	c1, w1 := Checksums(0x13, payload)
	c2, w2 := Checksums(0x13, payload)
	if c1 != c2 || w1 != w2 {
		t.Errorf("checksums should be deterministic: %04X/%04X != %04X/%04X", c1, w1, c2, w2)
	}
}

func TestChecksums_OrderDependent(t *testing.T) {
	_, w1 := Checksums(0x10, []byte{0x01, 0x02})
	_, w2 := Checksums(0x10, []byte{0x02, 0x01})
	if w1 == w2 {
		t.Error("weighted checksum should depend on byte order")
	}
}
