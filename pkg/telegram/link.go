// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Torqueworks

package telegram

import (
	"encoding/binary"
	"fmt"
)

// LinkDecoder assembles 32-byte telegrams from a raw byte stream. It hunts
// for an STX marker, collects the full record, and verifies the checksum
// trailer before handing the frame to the caller for routing (see
// Config.BlockByID and Block.Decode).
type LinkDecoder struct {
	state int
	buf   [TelegramSize]byte
	n     int
}

// NewLinkDecoder creates a decoder in the hunting state.
func NewLinkDecoder() *LinkDecoder {
	return &LinkDecoder{state: stateHunt}
}

// Reset returns the decoder to the hunting state, discarding any partially
// collected frame.
func (d *LinkDecoder) Reset() {
	d.state = stateHunt
	d.n = 0
}

// DecodeByte processes a single byte. It returns a complete verified
// 32-byte telegram, or nil while a frame is still incomplete. A trailer
// mismatch discards the frame and returns an error; the decoder then hunts
// for the next STX.
func (d *LinkDecoder) DecodeByte(b byte) ([]byte, error) {
	switch d.state {
	case stateHunt:
		if b == STX {
			d.state = stateBody
			d.n = 0
		}
		return nil, nil

	case stateBody:
		d.buf[d.n] = b
		d.n++
		if d.n < TelegramSize {
			return nil, nil
		}
		frame := make([]byte, TelegramSize)
		copy(frame, d.buf[:])
		d.Reset()
		if err := VerifyTelegram(frame); err != nil {
			return nil, err
		}
		return frame, nil

	default:
		d.Reset()
		return nil, fmt.Errorf("invalid decoder state %d", d.state)
	}
}

// VerifyTelegram recomputes the checksum pair of a full 32-byte record and
// compares it against the stored trailer.
func VerifyTelegram(frame []byte) error {
	if len(frame) != TelegramSize {
		return fmt.Errorf("telegram is %d bytes, want %d", len(frame), TelegramSize)
	}
	c, w := Checksums(frame[0], frame[1:checksumOffset])
	storedC := binary.BigEndian.Uint16(frame[checksumOffset:])
	storedW := binary.BigEndian.Uint16(frame[wchecksumOffset:])
	if c != storedC || w != storedW {
		return fmt.Errorf("%w: stored %04X/%04X, computed %04X/%04X",
			ErrBadChecksum, storedC, storedW, c, w)
	}
	return nil
}

// ReadRequest builds the link frame asking the instrument to send one
// block: STX, the read command, the block id, and the checksum pair over
// the command and id.
func ReadRequest(blockID byte) []byte {
	c, w := Checksums(cmdRead, []byte{blockID})
	frame := make([]byte, 0, ReadRequestSize)
	frame = append(frame, STX, cmdRead, blockID)
	frame = append(frame, byte(c>>8), byte(c), byte(w>>8), byte(w))
	return frame
}

// WriteRequest builds the link frame storing a block on the instrument:
// STX, the write command, and the full serialized telegram. The instrument
// answers with ACK or NAK.
func WriteRequest(b *Block) []byte {
	frame := make([]byte, 0, 2+TelegramSize)
	frame = append(frame, STX, cmdWrite)
	return append(frame, b.Serialize()...)
}
