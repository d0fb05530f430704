package geoip

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.dat")
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func openTemp(t *testing.T, data []byte) *dbStream {
	t.Helper()
	stream, err := openDBStream(writeTemp(t, data))
	require.NoError(t, err)
	t.Cleanup(func() { _ = stream.close() })
	return stream
}

func TestReadStructureEditions(t *testing.T) {
	fixed := []struct {
		edition  Edition
		segments uint32
		width    int
	}{
		{EditionCountry, countryBegin, 3},
		{EditionCountryV6, countryBegin, 3},
		{EditionProxy, countryBegin, 3},
		{EditionNetspeed, countryBegin, 3},
		{EditionRegionRev0, stateBeginRev0, 3},
		{EditionRegionRev1, stateBeginRev1, 3},
	}
	for _, tc := range fixed {
		builder := &dbBuilder{
			width:      3,
			nodes:      [][2]uint32{{0, 0}},
			markerByte: byte(tc.edition),
		}
		stream := openTemp(t, builder.bytes())
		geo, err := readStructure(stream)
		require.NoError(t, err, tc.edition)
		require.Equal(t, tc.edition, geo.edition)
		require.Equal(t, tc.segments, geo.segments)
		require.Equal(t, tc.width, geo.width)
	}

	counted := []struct {
		edition Edition
		width   int
	}{
		{EditionCityRev0, 3},
		{EditionCityRev1, 3},
		{EditionASN, 3},
		{EditionISP, 4},
		{EditionOrg, 4},
	}
	for _, tc := range counted {
		builder := &dbBuilder{
			width:            tc.width,
			nodes:            [][2]uint32{{0, 0}},
			markerByte:       byte(tc.edition),
			segments:         12345,
			segmentsInMarker: true,
		}
		stream := openTemp(t, builder.bytes())
		geo, err := readStructure(stream)
		require.NoError(t, err, tc.edition)
		require.Equal(t, tc.edition, geo.edition)
		require.Equal(t, uint32(12345), geo.segments)
		require.Equal(t, tc.width, geo.width)
	}
}

func TestReadStructureLegacyEditionByte(t *testing.T) {
	// databases from April 2003 and earlier add 105 to the edition byte
	builder := &dbBuilder{
		width:      3,
		nodes:      [][2]uint32{{0, 0}},
		markerByte: byte(EditionCountry) + legacyEditionOffset,
	}
	stream := openTemp(t, builder.bytes())
	geo, err := readStructure(stream)
	require.NoError(t, err)
	require.Equal(t, EditionCountry, geo.edition)
	require.Equal(t, uint32(countryBegin), geo.segments)
}

func TestReadStructureUnknownEdition(t *testing.T) {
	for _, raw := range []byte{13, 42, 13 + legacyEditionOffset} {
		builder := &dbBuilder{
			width:      3,
			nodes:      [][2]uint32{{0, 0}},
			markerByte: raw,
		}
		stream := openTemp(t, builder.bytes())
		_, err := readStructure(stream)
		require.True(t, ErrCorrupt.Has(err), "edition byte %d: %v", raw, err)
	}
}

func TestReadStructureZeroSegments(t *testing.T) {
	builder := &dbBuilder{
		width:            3,
		nodes:            [][2]uint32{{0, 0}},
		markerByte:       byte(EditionCityRev1),
		segments:         0,
		segmentsInMarker: true,
	}
	stream := openTemp(t, builder.bytes())
	_, err := readStructure(stream)
	require.True(t, ErrCorrupt.Has(err), "%v", err)
}

func TestReadStructureNoMarkerFallsBackToCountry(t *testing.T) {
	// pre-September-2002 databases carry no structure marker at all
	stream := openTemp(t, make([]byte, 64))
	geo, err := readStructure(stream)
	require.NoError(t, err)
	require.Equal(t, EditionCountry, geo.edition)
	require.Equal(t, uint32(countryBegin), geo.segments)
	require.Equal(t, standardRecordLength, geo.width)
}

func TestReadStructureTruncatedFile(t *testing.T) {
	stream := openTemp(t, []byte{0xFF, 0xFF})
	_, err := readStructure(stream)
	require.True(t, ErrOpen.Has(err), "%v", err)
}

func TestReadDescription(t *testing.T) {
	builder := countryDB()
	stream := openTemp(t, builder.bytes())
	require.Equal(t, "GEO-106FREE 20240101 Build 1", readDescription(stream))

	// no NUL delimiter anywhere: empty description
	plain := &dbBuilder{
		width:      3,
		nodes:      [][2]uint32{{1, 2}},
		markerByte: byte(EditionCountry),
	}
	stream = openTemp(t, plain.bytes())
	require.Equal(t, "", readDescription(stream))

	// markerless database with the description at end-of-file
	raw := append(make([]byte, 16), 0, 0, 0)
	raw = append(raw, []byte("old country data")...)
	stream = openTemp(t, raw)
	require.Equal(t, "old country data", readDescription(stream))
}

func TestDatabaseInfo(t *testing.T) {
	free := &DatabaseInfo{Description: "GEO-106FREE 20240101 Build 1"}
	require.False(t, free.IsPremium())
	date, err := free.Date()
	require.NoError(t, err)
	require.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), date)

	paid := &DatabaseInfo{Description: "GeoIP City Edition 20231107"}
	require.True(t, paid.IsPremium())
	date, err = paid.Date()
	require.NoError(t, err)
	require.Equal(t, 2023, date.Year())

	none := &DatabaseInfo{Description: "no date here"}
	_, err = none.Date()
	require.Error(t, err)
}
