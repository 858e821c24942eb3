// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Torqueworks

// Package telegram implements the 32-byte configuration telegram format used
// by Lorenz rotary torque instruments (stator/rotor sensor pairs).
//
// Each telegram carries a block identifier byte, a block-specific field
// layout, and a two-field checksum trailer. This package provides the
// schema-driven field codec, the eight concrete block variants, the
// aggregate device configuration, and the link-layer framing used to
// exchange telegrams over a serial or WebSocket connection.
package telegram

// Telegram geometry
const (
	TelegramSize = 32 // full record: id + payload + checksum trailer
	PayloadSize  = 27 // bytes 1..27 of the record

	checksumOffset  = 28
	wchecksumOffset = 30
)

// Link framing bytes
const (
	STX = 0x02
	ACK = 0x06
	NAK = 0x15
)

// Request command bytes
const (
	cmdRead  = 'R'
	cmdWrite = 'W'
)

// Read request frame: STX, command, block id, checksum, weighted checksum
const ReadRequestSize = 7

// Block identifiers
const (
	IDStatorHeader         = 0x10
	IDStatorHardware       = 0x12
	IDStatorOperation      = 0x13
	IDStatorSoftwareConfig = 0x14

	IDRotorHeader             = 0x20
	IDRotorFactoryCalibration = 0x22
	IDRotorUserCalibration    = 0x23
	IDRotorOperation          = 0x24
)

// Names of the implicit fields every schema carries
const (
	fieldID        = "id"
	fieldReserved  = "reserved_n"
	fieldChecksum  = "checksum"
	fieldWChecksum = "wchecksum"
)

// Link decoder states (internal)
const (
	stateHunt = iota
	stateBody
)
