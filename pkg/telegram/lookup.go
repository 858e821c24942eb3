// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Torqueworks

package telegram

import "fmt"

// LookupEntry pairs one raw wire code with its semantic value.
type LookupEntry struct {
	Code  uint64
	Value interface{}
}

// LookupTable is a bidirectional mapping between raw on-wire integer codes
// and semantic values (enumerated labels, physical quantities, or nil for
// the "device default" sentinel).
//
// Tables are built once at startup and never mutated; they are safe to share
// across any number of blocks.
type LookupTable struct {
	forward map[uint64]interface{}
	reverse map[interface{}]uint64
}

// NewLookupTable builds a table from the given entries. When several codes
// carry the same semantic value (the 0x00/0xFF device-default pair in every
// known instrument table), the reverse mapping keeps the first entry in
// declaration order.
func NewLookupTable(entries ...LookupEntry) *LookupTable {
	t := &LookupTable{
		forward: make(map[uint64]interface{}, len(entries)),
		reverse: make(map[interface{}]uint64, len(entries)),
	}
	for _, e := range entries {
		t.forward[e.Code] = e.Value
		if _, ok := t.reverse[e.Value]; !ok {
			t.reverse[e.Value] = e.Code
		}
	}
	return t
}

// Decode translates a raw code into its semantic value. Codes absent from
// the table pass through unchanged so instruments using undocumented codes
// stay representable.
func (t *LookupTable) Decode(code uint64) interface{} {
	if v, ok := t.forward[code]; ok {
		return v
	}
	return code
}

// Encode translates a semantic value back into its raw code. A value absent
// from the reverse mapping passes through if it is already an integer raw
// code; anything else fails with ErrUnknownValue.
func (t *LookupTable) Encode(value interface{}) (uint64, error) {
	if n, ok := asUint(value); ok {
		if code, found := t.reverse[n]; found {
			return code, nil
		}
		return n, nil
	}
	if code, found := t.reverse[value]; found {
		return code, nil
	}
	return 0, fmt.Errorf("%w: %v", ErrUnknownValue, value)
}

// asUint normalizes the integer types a caller (or a YAML/CBOR decoder) may
// hand us into the uint64 domain the tables are keyed on.
func asUint(v interface{}) (uint64, bool) {
	switch n := v.(type) {
	case uint64:
		return n, true
	case uint32:
		return uint64(n), true
	case uint16:
		return uint64(n), true
	case uint8:
		return uint64(n), true
	case uint:
		return uint64(n), true
	case int64:
		if n >= 0 {
			return uint64(n), true
		}
	case int32:
		if n >= 0 {
			return uint64(n), true
		}
	case int:
		if n >= 0 {
			return uint64(n), true
		}
	}
	return 0, false
}
