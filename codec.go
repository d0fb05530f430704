package geoip

// The .dat format stores trie pointers and packed numeric fields as
// fixed-width unsigned integers with the least significant byte first.
// encoding/binary has no 3-byte variant, so both widths are decoded here.

// readUint24 - decode a 3-byte unsigned integer at offset, LSB first.
func readUint24(buf []byte, offset int) uint32 {
	var v uint32
	for j := 0; j < 3; j++ {
		v += uint32(buf[offset+j]) << (8 * j)
	}
	return v
}

// readUint32 - decode a 4-byte unsigned integer at offset, LSB first.
func readUint32(buf []byte, offset int) uint32 {
	var v uint32
	for j := 0; j < 4; j++ {
		v += uint32(buf[offset+j]) << (8 * j)
	}
	return v
}

// readUint - decode a width-byte unsigned integer, width 3 or 4.
func readUint(buf []byte, offset, width int) uint32 {
	if width == 4 {
		return readUint32(buf, offset)
	}
	return readUint24(buf, offset)
}
