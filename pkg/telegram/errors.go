// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Torqueworks

package telegram

import "errors"

// Errors surfaced by the codec. All are local to a single call; no failure
// affects other fields or other blocks.
var (
	// ErrUnknownField is returned when a field name is not part of the
	// block's schema.
	ErrUnknownField = errors.New("unknown field")

	// ErrReadOnly is returned when a setter is called on a read-only block.
	// The policy applies to the whole block, not to individual fields.
	ErrReadOnly = errors.New("block is read only")

	// ErrUnknownValue is returned when a semantic value has no raw encoding
	// in the field's lookup table and is not itself a valid raw integer.
	ErrUnknownValue = errors.New("value has no raw encoding")

	// ErrIDMismatch is returned when a decoded buffer's identifier byte does
	// not match the target block variant.
	ErrIDMismatch = errors.New("block id mismatch")

	// ErrBadChecksum is returned by the link decoder when a received frame's
	// stored trailer does not match the recomputed checksums.
	ErrBadChecksum = errors.New("checksum mismatch")
)
