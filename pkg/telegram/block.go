// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Torqueworks

package telegram

import (
	"encoding/binary"
	"fmt"
	"math"
)

// Block is one configuration telegram bound to its variant's schema and
// mutability policy. It owns a 27-byte payload region; byte 0 (the id) and
// the checksum trailer are produced on demand, never stored.
//
// A Block is not safe for concurrent use; each instance must be owned by a
// single goroutine.
type Block struct {
	name     string
	id       byte
	schema   *Schema
	readonly bool
	payload  [PayloadSize]byte
}

func newBlock(name string, id byte, schema *Schema, readonly bool) *Block {
	return &Block{name: name, id: id, schema: schema, readonly: readonly}
}

// Name returns the block variant name, e.g. "stator-operation".
func (b *Block) Name() string { return b.name }

// ID returns the variant's fixed identifier byte.
func (b *Block) ID() byte { return b.id }

// ReadOnly reports whether the variant's policy forbids mutation.
func (b *Block) ReadOnly() bool { return b.readonly }

// Schema returns the variant's shared field schema.
func (b *Block) Schema() *Schema { return b.schema }

// Get reads the named field and returns its semantic value: a float64 for
// scaled fields, the lookup-table translation where one is attached (nil
// meaning "device default"), and the raw big-endian unsigned integer
// otherwise.
func (b *Block) Get(name string) (interface{}, error) {
	fd, ok := b.schema.Field(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q in %s", ErrUnknownField, name, b.name)
	}

	switch name {
	case fieldID:
		return uint64(b.id), nil
	case fieldChecksum:
		c, _ := b.Checksums()
		return uint64(c), nil
	case fieldWChecksum:
		_, w := b.Checksums()
		return uint64(w), nil
	}

	raw := b.readRaw(fd)
	if fd.Divisor != 0 {
		return float64(raw) / float64(fd.Divisor), nil
	}
	if fd.Lookup != nil {
		return fd.Lookup.Decode(raw), nil
	}
	return raw, nil
}

// Set writes the named field. It fails with ErrReadOnly on a read-only
// block, ErrUnknownField for names outside the schema, and ErrUnknownValue
// for values the field's lookup table cannot encode. Bits beyond the field
// width are discarded, matching fixed-width register semantics.
func (b *Block) Set(name string, value interface{}) error {
	if b.readonly {
		return fmt.Errorf("%w: %s", ErrReadOnly, b.name)
	}
	fd, ok := b.schema.Field(name)
	if !ok {
		return fmt.Errorf("%w: %q in %s", ErrUnknownField, name, b.name)
	}
	switch name {
	case fieldID, fieldChecksum, fieldWChecksum:
		return fmt.Errorf("field %q of %s is managed by the codec", name, b.name)
	}

	var raw uint64
	switch {
	case fd.Divisor != 0:
		f, ok := asFloat(value)
		if !ok {
			return fmt.Errorf("%w: %v is not numeric", ErrUnknownValue, value)
		}
		raw = uint64(math.Round(f * float64(fd.Divisor)))
	case fd.Lookup != nil:
		var err error
		raw, err = fd.Lookup.Encode(value)
		if err != nil {
			return fmt.Errorf("%s.%s: %w", b.name, name, err)
		}
	default:
		n, ok := asUint(value)
		if !ok {
			return fmt.Errorf("%w: %v is not an integer", ErrUnknownValue, value)
		}
		raw = n
	}

	b.writeRaw(fd, raw)
	return nil
}

// Checksums computes the telegram's checksum pair over the id byte and the
// current payload region.
func (b *Block) Checksums() (uint16, uint16) {
	return Checksums(b.id, b.payload[:])
}

// Serialize emits the full 32-byte telegram. The checksum trailer is always
// recomputed here, never trusted from a prior decode, so every emitted
// record is self-consistent.
func (b *Block) Serialize() []byte {
	buf := make([]byte, TelegramSize)
	buf[0] = b.id
	copy(buf[1:checksumOffset], b.payload[:])
	c, w := b.Checksums()
	binary.BigEndian.PutUint16(buf[checksumOffset:], c)
	binary.BigEndian.PutUint16(buf[wchecksumOffset:], w)
	return buf
}

// Decode adopts an externally supplied telegram's payload region verbatim,
// reserved padding included. The incoming trailer is not validated here;
// link-layer verification (VerifyTelegram) is the caller's responsibility.
func (b *Block) Decode(buf []byte) error {
	if len(buf) != TelegramSize {
		return fmt.Errorf("telegram is %d bytes, want %d", len(buf), TelegramSize)
	}
	if buf[0] != b.id {
		return fmt.Errorf("%w: got 0x%02X, want 0x%02X (%s)", ErrIDMismatch, buf[0], b.id, b.name)
	}
	copy(b.payload[:], buf[1:checksumOffset])
	return nil
}

// readRaw interprets the field's byte range as a big-endian unsigned
// integer. reserved_n can span up to 27 bytes; wider-than-8-byte reads keep
// the low-order 8 bytes, which is only reachable for that inert field.
func (b *Block) readRaw(fd FieldDescriptor) uint64 {
	var v uint64
	for _, by := range b.payload[fd.Offset-1 : fd.end()-1] {
		v = v<<8 | uint64(by)
	}
	return v
}

// writeRaw stores the low fd.Size bytes of raw big-endian into the field's
// range.
func (b *Block) writeRaw(fd FieldDescriptor, raw uint64) {
	region := b.payload[fd.Offset-1 : fd.end()-1]
	for i := len(region) - 1; i >= 0; i-- {
		region[i] = byte(raw)
		raw >>= 8
	}
}

func asFloat(v interface{}) (float64, bool) {
	switch f := v.(type) {
	case float64:
		return f, true
	case float32:
		return float64(f), true
	}
	if n, ok := asUint(v); ok {
		return float64(n), true
	}
	return 0, false
}
