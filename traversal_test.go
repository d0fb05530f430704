package geoip

import (
	"net"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSeekPointerIPv4(t *testing.T) {
	builder := countryDB()
	geo := geometry{edition: EditionCountry, segments: countryBegin, width: 3}
	src := &memorySource{data: builder.bytes()}

	pointer, netmask, err := seekPointer(src, geo, net.ParseIP("0.0.0.0").To4())
	require.NoError(t, err)
	require.Equal(t, uint32(countryBegin+225), pointer)
	require.Equal(t, 2, netmask)

	pointer, netmask, err = seekPointer(src, geo, net.ParseIP("128.0.0.1").To4())
	require.NoError(t, err)
	require.Equal(t, uint32(countryBegin+38), pointer)
	require.Equal(t, 1, netmask)

	pointer, netmask, err = seekPointer(src, geo, net.ParseIP("64.0.0.0").To4())
	require.NoError(t, err)
	require.Equal(t, uint32(countryBegin), pointer)
	require.Equal(t, 2, netmask)
}

func TestSeekPointerIPv6(t *testing.T) {
	builder := countryV6DB()
	geo := geometry{edition: EditionCountryV6, segments: countryBegin, width: 3}
	src := &memorySource{data: builder.bytes()}

	pointer, netmask, err := seekPointer(src, geo, net.ParseIP("2001:db8::1").To16())
	require.NoError(t, err)
	require.Equal(t, uint32(countryBegin+225), pointer)
	require.Equal(t, 1, netmask)

	pointer, netmask, err = seekPointer(src, geo, net.ParseIP("8000::1").To16())
	require.NoError(t, err)
	require.Equal(t, uint32(countryBegin+38), pointer)
	require.Equal(t, 1, netmask)
}

// All three backends must produce identical terminal pointers and
// netmasks for the same underlying bytes.
func TestSeekPointerBackendEquivalence(t *testing.T) {
	builder := cityDB()
	path := builder.write(t)
	geo := geometry{edition: EditionCityRev1, segments: 4, width: 3}
	keys := [][]byte{
		net.ParseIP("0.0.0.0").To4(),
		net.ParseIP("64.0.0.0").To4(),
		net.ParseIP("128.0.0.1").To4(),
	}

	type answer struct {
		pointer uint32
		netmask int
	}
	var want []answer
	for _, mode := range []Mode{ModeDirect, ModeIndexCache, ModeMemoryCache} {
		stream, err := openDBStream(path)
		require.NoError(t, err)
		var src nodeSource
		switch mode {
		case ModeMemoryCache:
			src, err = newMemorySource(stream)
		case ModeIndexCache:
			src, err = newIndexSource(stream, 2*int64(geo.segments)*int64(geo.width))
		default:
			src = &fileSource{stream: stream}
		}
		require.NoError(t, err)

		var got []answer
		for _, key := range keys {
			pointer, netmask, err := seekPointer(src, geo, key)
			require.NoError(t, err, mode)
			got = append(got, answer{pointer, netmask})
		}
		require.NoError(t, src.close())

		if want == nil {
			want = got
			continue
		}
		require.Equal(t, want, got, mode)
	}
}

func TestSeekPointerCycleDetected(t *testing.T) {
	// node 0 points back at itself on both sides: the descent must stop
	// after the key width and report corruption, not spin
	geo := geometry{edition: EditionCountry, segments: countryBegin, width: 3}
	src := &memorySource{data: []byte{0, 0, 0, 0, 0, 0}}

	_, _, err := seekPointer(src, geo, net.ParseIP("10.0.0.1").To4())
	require.True(t, ErrCorrupt.Has(err), "%v", err)
}

func TestSeekPointerNodeOutsideDatabase(t *testing.T) {
	// a child pointer below the segment count but past the trie region
	geo := geometry{edition: EditionCityRev1, segments: 1000, width: 3}
	src := &memorySource{data: []byte{0xF4, 0x01, 0x00, 0xF4, 0x01, 0x00}} // both children -> node 500

	_, _, err := seekPointer(src, geo, net.ParseIP("10.0.0.1").To4())
	require.True(t, ErrCorrupt.Has(err), "%v", err)
}
