package geoip

// seekPointer descends the binary trie from the root for an MSB-first
// key of len(key)*8 bits. Each node holds two child pointers of
// geo.width bytes; a pointer at or above the segment count is terminal
// and references the record region. It returns the terminal pointer and
// the matched prefix length.
//
// A well-formed trie terminates within the key width. Exhausting every
// depth means a child pointer chain loops below the segment count, which
// is corruption, not a miss.
func seekPointer(src nodeSource, geo geometry, key []byte) (pointer uint32, netmask int, err error) {
	bits := len(key) * 8
	nodeLen := 2 * geo.width
	offset := uint32(0)
	for depth := bits - 1; depth >= 0; depth-- {
		buf, err := src.read(int64(nodeLen)*int64(offset), nodeLen)
		if err != nil {
			if ErrBounds.Has(err) {
				return 0, 0, ErrCorrupt.New("trie node %d outside database: %v", offset, err)
			}
			return 0, 0, err
		}
		left := readUint(buf, 0, geo.width)
		right := readUint(buf, geo.width, geo.width)

		bit := bits - 1 - depth
		chosen := left
		if key[bit>>3]&(1<<(7-bit&7)) != 0 {
			chosen = right
		}
		if chosen >= geo.segments {
			return chosen, bits - depth, nil
		}
		offset = chosen
	}
	return 0, 0, ErrCorrupt.New("trie descent exhausted %d bits without a terminal pointer", bits)
}
