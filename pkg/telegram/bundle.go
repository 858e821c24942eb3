// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Torqueworks

package telegram

// Config aggregates one instance of each of the eight block variants into
// the full device configuration. Blocks start zero-filled (the device
// default) and are independently decodable and serializable; the bundle
// enforces no cross-block invariants.
type Config struct {
	StatorHeader         *Block
	StatorHardware       *Block
	StatorOperation      *Block
	StatorSoftwareConfig *Block

	RotorHeader             *Block
	RotorFactoryCalibration *Block
	RotorUserCalibration    *Block
	RotorOperation          *Block
}

// NewConfig constructs a configuration with default (zero) payloads.
func NewConfig() *Config {
	return &Config{
		StatorHeader:            NewStatorHeader(),
		StatorHardware:          NewStatorHardware(),
		StatorOperation:         NewStatorOperation(),
		StatorSoftwareConfig:    NewStatorSoftwareConfig(),
		RotorHeader:             NewRotorHeader(),
		RotorFactoryCalibration: NewRotorFactoryCalibration(),
		RotorUserCalibration:    NewRotorUserCalibration(),
		RotorOperation:          NewRotorOperation(),
	}
}

// Blocks returns the eight blocks in a stable stator-then-rotor order.
func (c *Config) Blocks() []*Block {
	return []*Block{
		c.StatorHeader,
		c.StatorHardware,
		c.StatorOperation,
		c.StatorSoftwareConfig,
		c.RotorHeader,
		c.RotorFactoryCalibration,
		c.RotorUserCalibration,
		c.RotorOperation,
	}
}

// BlockByID returns the block a received telegram belongs to, keyed on its
// identifier byte.
func (c *Config) BlockByID(id byte) (*Block, bool) {
	for _, b := range c.Blocks() {
		if b.ID() == id {
			return b, true
		}
	}
	return nil, false
}

// BlockByName returns a block by its variant name, e.g. "rotor-operation".
func (c *Config) BlockByName(name string) (*Block, bool) {
	for _, b := range c.Blocks() {
		if b.Name() == name {
			return b, true
		}
	}
	return nil, false
}
