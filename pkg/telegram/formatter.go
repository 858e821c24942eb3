// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Torqueworks

package telegram

import (
	"fmt"
	"strings"
)

// FormatBlock renders a block and its fields in human-readable form.
func FormatBlock(b *Block) string {
	var sb strings.Builder
	policy := "rw"
	if b.ReadOnly() {
		policy = "ro"
	}
	fmt.Fprintf(&sb, "%s (0x%02X, %s)\n", b.Name(), b.ID(), policy)

	for _, fd := range b.Schema().Fields() {
		if fd.Name == fieldID || fd.Name == fieldReserved {
			continue
		}
		v, err := b.Get(fd.Name)
		if err != nil {
			fmt.Fprintf(&sb, "  %-20s <%v>\n", fd.Name, err)
			continue
		}
		fmt.Fprintf(&sb, "  %-20s %s\n", fd.Name, FormatValue(fd, v))
	}
	return sb.String()
}

// FormatValue renders a single field value. The device-default sentinel
// prints as "(default)"; checksum fields print hexadecimal.
func FormatValue(fd FieldDescriptor, v interface{}) string {
	if v == nil {
		return "(default)"
	}
	switch val := v.(type) {
	case string:
		return val
	case float64:
		return fmt.Sprintf("%.4f", val)
	case uint64:
		if fd.Name == fieldChecksum || fd.Name == fieldWChecksum {
			return fmt.Sprintf("0x%04X", val)
		}
		return fmt.Sprintf("%d", val)
	default:
		return fmt.Sprintf("%v", val)
	}
}

// FormatFrame renders a raw link frame as spaced hex, for logging telegrams
// that do not decode into any known block.
func FormatFrame(frame []byte) string {
	parts := make([]string, len(frame))
	for i, b := range frame {
		parts[i] = fmt.Sprintf("%02X", b)
	}
	return strings.Join(parts, " ")
}
