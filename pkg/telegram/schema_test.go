// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Torqueworks

package telegram

import "testing"

func TestSchema_ImplicitFields(t *testing.T) {
	s := newSchema(
		FieldDescriptor{Name: "alpha", Offset: 1, Size: 3},
		FieldDescriptor{Name: "beta", Offset: 4, Size: 2},
	)

	fields := s.Fields()
	if len(fields) != 6 {
		t.Fatalf("expected 6 fields (2 declared + 4 implicit), got %d", len(fields))
	}

	// Declaration order with the implicit fields appended last.
	wantOrder := []string{"alpha", "beta", "id", "reserved_n", "checksum", "wchecksum"}
	for i, name := range wantOrder {
		if fields[i].Name != name {
			t.Errorf("field %d = %q, want %q", i, fields[i].Name, name)
		}
	}

	reserved, ok := s.Field("reserved_n")
	if !ok {
		t.Fatal("reserved_n missing")
	}
	if reserved.Offset != 6 || reserved.Size != 22 {
		t.Errorf("reserved_n = [%d,%d), want the gap [6,28)", reserved.Offset, reserved.end())
	}

	cs, _ := s.Field("checksum")
	wcs, _ := s.Field("wchecksum")
	if cs.Offset != 28 || cs.Size != 2 || wcs.Offset != 30 || wcs.Size != 2 {
		t.Error("checksum trailer fields must sit at fixed offsets 28 and 30")
	}
}

func TestSchema_FieldNotFound(t *testing.T) {
	if _, ok := statorHeaderSchema.Field("no_such_field"); ok {
		t.Error("Field() should report missing names")
	}
}

func TestSchema_DefinitionErrorsPanic(t *testing.T) {
	tests := []struct {
		name   string
		fields []FieldDescriptor
	}{
		{
			name: "overlapping ranges",
			fields: []FieldDescriptor{
				{Name: "a", Offset: 1, Size: 4},
				{Name: "b", Offset: 3, Size: 2},
			},
		},
		{
			name: "extends into checksum region",
			fields: []FieldDescriptor{
				{Name: "a", Offset: 26, Size: 3},
			},
		},
		{
			name: "duplicate name",
			fields: []FieldDescriptor{
				{Name: "a", Offset: 1, Size: 1},
				{Name: "a", Offset: 2, Size: 1},
			},
		},
		{
			name: "claims the id byte",
			fields: []FieldDescriptor{
				{Name: "a", Offset: 0, Size: 2},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected definition-time panic")
				}
			}()
			newSchema(tt.fields...)
		})
	}
}

func TestSchema_VariantLayouts(t *testing.T) {
	// Spot checks against the instrument documentation.
	fd, ok := statorHardwareSchema.Field("pulse_pr_rev")
	if !ok || fd.Offset != 11 || fd.Size != 1 || fd.Lookup == nil {
		t.Errorf("pulse_pr_rev = %+v, want 1 byte at 11 with lookup", fd)
	}
	fd, ok = statorOperationSchema.Field("lp_filter_B")
	if !ok || fd.Offset != 15 || fd.Size != 2 {
		t.Errorf("lp_filter_B = %+v, want 2 bytes at 15", fd)
	}
	fd, ok = rotorFactoryCalibrationSchema.Field("uncertainty_A")
	if !ok || fd.Divisor != 10000 {
		t.Errorf("uncertainty_A = %+v, want divisor 10000", fd)
	}
	// User calibration mirrors the factory layout.
	ufd, ok := rotorUserCalibrationSchema.Field("uncertainty_A")
	if !ok || ufd.Offset != fd.Offset || ufd.Size != fd.Size || ufd.Divisor != fd.Divisor {
		t.Error("user calibration schema should mirror the factory layout")
	}
}
