// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Torqueworks

package telegram

import "fmt"

// FieldDescriptor describes one field of a block schema: where it lives in
// the record, how wide it is, and any value translation attached to it.
type FieldDescriptor struct {
	Name   string
	Offset int // byte index into the record (payload fields use 1..27)
	Size   int // width in bytes

	// Lookup, when set, translates the raw integer through the table on
	// read and write.
	Lookup *LookupTable

	// Divisor, when nonzero, scales the raw integer on read (raw/Divisor)
	// and inverts the scale on write. Used for the calibration uncertainty
	// fields, which store a fraction as a fixed-point integer.
	Divisor int
}

func (f FieldDescriptor) end() int { return f.Offset + f.Size }

// Schema is the immutable, ordered field table of one block variant. A
// single Schema instance is shared read-only by every block of its variant.
//
// Every schema implicitly carries four fields appended after the declared
// ones: id (byte 0), reserved_n (the inert gap between the last declared
// field and the checksum trailer), checksum (bytes 28-29) and wchecksum
// (bytes 30-31).
type Schema struct {
	fields  []FieldDescriptor
	indexOf map[string]int
}

// newSchema builds a schema from the declared fields and appends the four
// implicit ones. Schemas are package-level constants, so definition mistakes
// (overlaps, out-of-range fields, duplicate names) panic at init.
func newSchema(fields ...FieldDescriptor) *Schema {
	reservedAt := 1
	if n := len(fields); n > 0 {
		reservedAt = fields[n-1].end()
	}

	all := make([]FieldDescriptor, 0, len(fields)+4)
	all = append(all, fields...)
	all = append(all, FieldDescriptor{Name: fieldID, Offset: 0, Size: 1})
	if reservedAt < checksumOffset {
		all = append(all, FieldDescriptor{Name: fieldReserved, Offset: reservedAt, Size: checksumOffset - reservedAt})
	}
	all = append(all,
		FieldDescriptor{Name: fieldChecksum, Offset: checksumOffset, Size: 2},
		FieldDescriptor{Name: fieldWChecksum, Offset: wchecksumOffset, Size: 2},
	)

	s := &Schema{fields: all, indexOf: make(map[string]int, len(all))}
	for i, f := range all {
		if _, dup := s.indexOf[f.Name]; dup {
			panic(fmt.Sprintf("telegram: schema duplicates field %q", f.Name))
		}
		s.indexOf[f.Name] = i
	}

	// Declared fields must stay inside the payload region and in order.
	prevEnd := 1
	for _, f := range fields {
		if f.Size < 1 || f.Offset < 1 || f.end() > checksumOffset {
			panic(fmt.Sprintf("telegram: field %q out of range [%d,%d)", f.Name, f.Offset, f.end()))
		}
		if f.Offset < prevEnd {
			panic(fmt.Sprintf("telegram: field %q overlaps its predecessor", f.Name))
		}
		prevEnd = f.end()
	}
	return s
}

// Field returns the descriptor for name, reporting whether it exists.
func (s *Schema) Field(name string) (FieldDescriptor, bool) {
	i, ok := s.indexOf[name]
	if !ok {
		return FieldDescriptor{}, false
	}
	return s.fields[i], true
}

// Fields returns the descriptors in declaration order, implicit fields last.
// The returned slice is a copy; the schema itself is never mutated.
func (s *Schema) Fields() []FieldDescriptor {
	out := make([]FieldDescriptor, len(s.fields))
	copy(out, s.fields)
	return out
}
