// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Torqueworks

package telegram

// Checksums computes the two trailer checksums for a telegram.
//
// Both accumulators start at zero and wrap modulo 0x10000. For each byte of
// the sequence formed by prepending id to payload, the byte is added to
// checksum, then the new checksum is added to wchecksum. Serialized as
// big-endian uint16 pairs at offsets 28 and 30 of the record.
func Checksums(id byte, payload []byte) (checksum, wchecksum uint16) {
	checksum = uint16(id)
	wchecksum = checksum
	for _, b := range payload {
		checksum += uint16(b)
		wchecksum += checksum
	}
	return checksum, wchecksum
}
