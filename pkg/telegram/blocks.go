// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Torqueworks

package telegram

// Lookup tables shared by every block instance of a variant. The 0x00/0xFF
// pair both carry the device-default sentinel (nil); the reverse mapping
// settles on 0x00, the first entry in declaration order.

var pulsePerRevTable = NewLookupTable(
	LookupEntry{0x00, nil},
	LookupEntry{0x01, uint64(6)},
	LookupEntry{0x02, uint64(30)},
	LookupEntry{0x03, uint64(60)},
	LookupEntry{0x04, uint64(90)},
	LookupEntry{0x05, uint64(120)},
	LookupEntry{0x06, uint64(180)},
	LookupEntry{0x07, uint64(360)},
	LookupEntry{0x08, uint64(720)},
	LookupEntry{0x09, uint64(1440)},
	LookupEntry{0x10, uint64(100)},
	LookupEntry{0x11, uint64(200)},
	LookupEntry{0x12, uint64(400)},
	LookupEntry{0x13, uint64(500)},
	LookupEntry{0x14, uint64(1000)},
	LookupEntry{0xFF, nil},
)

var baudrateTable = NewLookupTable(
	LookupEntry{0x00, nil}, // device default
	LookupEntry{0x09, uint64(115200)},
	LookupEntry{0x10, uint64(230400)},
	LookupEntry{0xFF, nil}, // device default
)

var outputTable = NewLookupTable(
	LookupEntry{0x00, nil},
	LookupEntry{0x01, "A"},
	LookupEntry{0x02, "B"},
	LookupEntry{0x03, "SPEED"},
	LookupEntry{0x04, "ANGLE"},
	LookupEntry{0x05, "FORCE"},
	LookupEntry{0x06, "POWER"},
	LookupEntry{0xFF, nil},
)

var softwareIDTable = NewLookupTable(
	LookupEntry{0x00, nil},
	LookupEntry{0x01, "DR-2112"},
	LookupEntry{0x02, "DR-2212"},
	LookupEntry{0x03, "DR-2412"},
	LookupEntry{0x04, "DR-2512"},
	LookupEntry{0x05, "DR-3000"},
	LookupEntry{0xFF, nil},
)

// uncertaintyDivisor converts the fixed-point calibration uncertainty
// fields to their fractional value.
const uncertaintyDivisor = 10000

// Block schemas. One instance per variant, shared read-only by every block.

var statorHeaderSchema = newSchema(
	FieldDescriptor{Name: "type", Offset: 1, Size: 3},
	FieldDescriptor{Name: "serial", Offset: 4, Size: 4},
	FieldDescriptor{Name: "si_idx", Offset: 8, Size: 1},
	FieldDescriptor{Name: "active_port_count", Offset: 9, Size: 1},
)

var statorHardwareSchema = newSchema(
	FieldDescriptor{Name: "production_time", Offset: 1, Size: 4},
	FieldDescriptor{Name: "STAS", Offset: 5, Size: 5},
	FieldDescriptor{Name: "OEM", Offset: 10, Size: 1},
	FieldDescriptor{Name: "pulse_pr_rev", Offset: 11, Size: 1, Lookup: pulsePerRevTable},
)

var statorOperationSchema = newSchema(
	FieldDescriptor{Name: "modification_time", Offset: 1, Size: 4},
	FieldDescriptor{Name: "reserved_0", Offset: 5, Size: 1},
	FieldDescriptor{Name: "wakeup_flag", Offset: 6, Size: 1},
	FieldDescriptor{Name: "bus_address", Offset: 7, Size: 1},
	FieldDescriptor{Name: "reserved_1", Offset: 8, Size: 1},
	FieldDescriptor{Name: "op_flags", Offset: 9, Size: 1},
	FieldDescriptor{Name: "baudrate", Offset: 10, Size: 1, Lookup: baudrateTable},
	FieldDescriptor{Name: "output_A", Offset: 11, Size: 1, Lookup: outputTable},
	FieldDescriptor{Name: "output_B", Offset: 12, Size: 1, Lookup: outputTable},
	FieldDescriptor{Name: "lp_filter_A", Offset: 13, Size: 2},
	FieldDescriptor{Name: "lp_filter_B", Offset: 15, Size: 2},
)

var statorSoftwareConfigSchema = newSchema(
	FieldDescriptor{Name: "modification_time", Offset: 1, Size: 4},
	FieldDescriptor{Name: "software_id", Offset: 5, Size: 1, Lookup: softwareIDTable},
	FieldDescriptor{Name: "software_version", Offset: 6, Size: 2},
	FieldDescriptor{Name: "option_flags", Offset: 8, Size: 2},
)

var rotorHeaderSchema = newSchema(
	FieldDescriptor{Name: "type", Offset: 1, Size: 3},
	FieldDescriptor{Name: "serial", Offset: 4, Size: 4},
	FieldDescriptor{Name: "si_idx", Offset: 8, Size: 1},
	FieldDescriptor{Name: "active_port_count", Offset: 9, Size: 1},
)

// rotorCalibrationFields is shared by the factory and user calibration
// schemas; the user block is a mutable copy of the factory layout.
var rotorCalibrationFields = []FieldDescriptor{
	{Name: "calibration_time", Offset: 1, Size: 4},
	{Name: "gain_A", Offset: 5, Size: 2},
	{Name: "offset_A", Offset: 7, Size: 2},
	{Name: "gain_B", Offset: 9, Size: 2},
	{Name: "offset_B", Offset: 11, Size: 2},
	{Name: "uncertainty_A", Offset: 13, Size: 2, Divisor: uncertaintyDivisor},
	{Name: "uncertainty_B", Offset: 15, Size: 2, Divisor: uncertaintyDivisor},
}

var rotorFactoryCalibrationSchema = newSchema(rotorCalibrationFields...)
var rotorUserCalibrationSchema = newSchema(rotorCalibrationFields...)

var rotorOperationSchema = newSchema(
	FieldDescriptor{Name: "modification_time", Offset: 1, Size: 4},
	FieldDescriptor{Name: "op_flags", Offset: 5, Size: 1},
	FieldDescriptor{Name: "lp_filter", Offset: 6, Size: 2},
)

// Variant constructors. Header, hardware and factory calibration blocks are
// written at production time and read-only on the wire; operation, software
// config and user calibration accept mutation.

func NewStatorHeader() *Block {
	return newBlock("stator-header", IDStatorHeader, statorHeaderSchema, true)
}

func NewStatorHardware() *Block {
	return newBlock("stator-hardware", IDStatorHardware, statorHardwareSchema, true)
}

func NewStatorOperation() *Block {
	return newBlock("stator-operation", IDStatorOperation, statorOperationSchema, false)
}

func NewStatorSoftwareConfig() *Block {
	return newBlock("stator-software-config", IDStatorSoftwareConfig, statorSoftwareConfigSchema, false)
}

func NewRotorHeader() *Block {
	return newBlock("rotor-header", IDRotorHeader, rotorHeaderSchema, true)
}

func NewRotorFactoryCalibration() *Block {
	return newBlock("rotor-factory-calibration", IDRotorFactoryCalibration, rotorFactoryCalibrationSchema, true)
}

func NewRotorUserCalibration() *Block {
	return newBlock("rotor-user-calibration", IDRotorUserCalibration, rotorUserCalibrationSchema, false)
}

func NewRotorOperation() *Block {
	return newBlock("rotor-operation", IDRotorOperation, rotorOperationSchema, false)
}
