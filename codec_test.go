package geoip

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadUint24(t *testing.T) {
	require.Equal(t, uint32(0), readUint24([]byte{0, 0, 0}, 0))
	require.Equal(t, uint32(1), readUint24([]byte{1, 0, 0}, 0))
	require.Equal(t, uint32(0x030201), readUint24([]byte{1, 2, 3}, 0))
	require.Equal(t, uint32(0xFFFFFF), readUint24([]byte{0xFF, 0xFF, 0xFF}, 0))
	// high bytes must widen unsigned
	require.Equal(t, uint32(0x800000), readUint24([]byte{0, 0, 0x80}, 0))
	// offset addressing
	require.Equal(t, uint32(0x030201), readUint24([]byte{9, 9, 1, 2, 3}, 2))
}

func TestReadUint32(t *testing.T) {
	require.Equal(t, uint32(0x04030201), readUint32([]byte{1, 2, 3, 4}, 0))
	require.Equal(t, uint32(0xFFFFFFFF), readUint32([]byte{0xFF, 0xFF, 0xFF, 0xFF}, 0))
	require.Equal(t, uint32(0x80000000), readUint32([]byte{0, 0, 0, 0x80}, 0))
}

func TestReadUintDispatch(t *testing.T) {
	buf := []byte{1, 2, 3, 4}
	require.Equal(t, uint32(0x030201), readUint(buf, 0, 3))
	require.Equal(t, uint32(0x04030201), readUint(buf, 0, 4))
}
