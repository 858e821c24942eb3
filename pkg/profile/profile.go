// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Torqueworks

// Package profile loads YAML settings profiles and applies them to the
// mutable configuration blocks of an instrument.
//
// A profile names blocks by their variant name and lists desired field
// values; null means the device-default sentinel. Example:
//
//	blocks:
//	  - block: stator-operation
//	    fields:
//	      baudrate: 115200
//	      output_A: SPEED
//	      output_B: null
//	  - block: rotor-user-calibration
//	    fields:
//	      uncertainty_A: 1.2345
package profile

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/torqueworks/lorenztel/pkg/telegram"
)

// Profile is the parsed YAML document.
type Profile struct {
	Blocks []BlockSettings `yaml:"blocks"`
}

// BlockSettings is the desired state for one block.
type BlockSettings struct {
	Block  string                 `yaml:"block"`
	Fields map[string]interface{} `yaml:"fields"`
}

// Load reads and parses a profile file.
func Load(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read profile: %w", err)
	}
	return Parse(data)
}

// Parse parses a YAML profile document.
func Parse(data []byte) (*Profile, error) {
	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse profile: %w", err)
	}
	if len(p.Blocks) == 0 {
		return nil, fmt.Errorf("profile names no blocks")
	}
	return &p, nil
}

// Validate checks the profile against the block schemas without touching
// cfg: every named block must exist and be mutable, every field must be in
// its schema, and every value must encode. Values are test-written to a
// scratch configuration so validation failures leave cfg untouched.
func (p *Profile) Validate(cfg *telegram.Config) error {
	scratch := telegram.NewConfig()
	for _, bs := range p.Blocks {
		target, ok := cfg.BlockByName(bs.Block)
		if !ok {
			return fmt.Errorf("profile: unknown block %q", bs.Block)
		}
		if target.ReadOnly() {
			return fmt.Errorf("profile: block %q is read only", bs.Block)
		}
		if len(bs.Fields) == 0 {
			return fmt.Errorf("profile: block %q sets no fields", bs.Block)
		}
		dry, _ := scratch.BlockByName(bs.Block)
		for name, value := range bs.Fields {
			if err := dry.Set(name, value); err != nil {
				return fmt.Errorf("profile: %s.%s: %w", bs.Block, name, err)
			}
		}
	}
	return nil
}

// Apply writes the profile's values into cfg and returns the blocks that
// were touched, in profile order. Callers should Validate first; Apply
// stops at the first failing field.
func (p *Profile) Apply(cfg *telegram.Config) ([]*telegram.Block, error) {
	var touched []*telegram.Block
	seen := map[string]bool{}

	for _, bs := range p.Blocks {
		b, ok := cfg.BlockByName(bs.Block)
		if !ok {
			return touched, fmt.Errorf("profile: unknown block %q", bs.Block)
		}
		for name, value := range bs.Fields {
			if err := b.Set(name, value); err != nil {
				return touched, fmt.Errorf("profile: %s.%s: %w", bs.Block, name, err)
			}
		}
		if !seen[bs.Block] {
			seen[bs.Block] = true
			touched = append(touched, b)
		}
	}
	return touched, nil
}
