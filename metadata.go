package geoip

import (
	"strings"
	"time"
)

const (
	// structureInfoMaxSize bounds the backward scan for the structure
	// marker near end-of-file.
	structureInfoMaxSize = 20
	// databaseInfoMaxSize bounds the backward scan for the free-text
	// database description.
	databaseInfoMaxSize = 100

	segmentRecordLength = 3
)

// geometry is everything traversal and record decoding need to know
// about the open database. It is replaced wholesale on reload.
type geometry struct {
	edition  Edition
	segments uint32
	width    int
}

// readStructure scans backward from end-of-file, at most
// structureInfoMaxSize positions, for the 0xFF 0xFF 0xFF structure marker
// followed by the edition byte. Databases from April 2003 and earlier
// store the edition offset by +105. Databases with no marker at all
// predate September 2002 and are country databases by definition.
func readStructure(stream *dbStream) (geometry, error) {
	if stream.size() < 3 {
		return geometry{}, ErrOpen.New("file of %d bytes is too short to hold metadata", stream.size())
	}
	pos := stream.size() - 3
	for i := 0; i < structureInfoMaxSize && pos >= 0; i++ {
		delim, err := stream.readAt(pos, 3)
		if err != nil {
			return geometry{}, ErrOpen.Wrap(err)
		}
		if delim[0] != 0xFF || delim[1] != 0xFF || delim[2] != 0xFF {
			pos--
			continue
		}

		raw, err := stream.readAt(pos+3, 1)
		if err != nil {
			return geometry{}, ErrOpen.New("truncated structure marker: %v", err)
		}
		editionByte := raw[0]
		if editionByte > legacyEditionOffset {
			editionByte -= legacyEditionOffset
		}
		edition := Edition(editionByte)
		if !edition.valid() {
			return geometry{}, ErrCorrupt.New("unrecognized edition byte %d", raw[0])
		}

		geo := geometry{edition: edition, width: edition.recordWidth()}
		if segments, ok := edition.fixedSegments(); ok {
			geo.segments = segments
			return geo, nil
		}
		buf, err := stream.readAt(pos+4, segmentRecordLength)
		if err != nil {
			return geometry{}, ErrOpen.New("truncated segment count: %v", err)
		}
		geo.segments = readUint24(buf, 0)
		if geo.segments == 0 {
			return geometry{}, ErrCorrupt.New("edition %s declares zero segments", edition)
		}
		return geo, nil
	}
	return geometry{
		edition:  EditionCountry,
		segments: countryBegin,
		width:    standardRecordLength,
	}, nil
}

// readDescription recovers the NUL-terminated free-text description
// stored just before the structure marker, or before end-of-file when no
// marker exists. The description is informational only, so scan failures
// yield an empty string rather than an error.
func readDescription(stream *dbStream) string {
	if stream.size() < 3 {
		return ""
	}
	pos := stream.size() - 3
	found := false
	for i := 0; i < structureInfoMaxSize && pos >= 0; i++ {
		delim, err := stream.readAt(pos, 3)
		if err != nil {
			return ""
		}
		if delim[0] == 0xFF && delim[1] == 0xFF && delim[2] == 0xFF {
			found = true
			break
		}
		pos--
	}
	if found {
		pos -= 3
	} else {
		pos = stream.size() - 3
	}
	for i := 0; i < databaseInfoMaxSize && pos >= 0; i++ {
		delim, err := stream.readAt(pos, 3)
		if err != nil {
			return ""
		}
		if delim[0] == 0 && delim[1] == 0 && delim[2] == 0 {
			if i == 0 {
				return ""
			}
			info, err := stream.readAt(pos+3, i)
			if err != nil {
				return ""
			}
			return string(info)
		}
		pos--
	}
	return ""
}

// DatabaseInfo - metadata describing the open database.
type DatabaseInfo struct {
	Edition       Edition
	Segments      uint32
	RecordWidth   int
	Description   string
	SourceModTime time.Time
}

// String returns the raw description text.
func (info *DatabaseInfo) String() string {
	return info.Description
}

// IsPremium reports whether the database is a paid edition. Free
// databases carry the word FREE in their description.
func (info *DatabaseInfo) IsPremium() bool {
	return !strings.Contains(info.Description, "FREE")
}

// Date parses the build date embedded in the description: the first
// whitespace-delimited run of eight digits, in YYYYMMDD form.
func (info *DatabaseInfo) Date() (time.Time, error) {
	desc := info.Description
	for i := 0; i+9 <= len(desc); i++ {
		if desc[i] != ' ' && desc[i] != '\t' {
			continue
		}
		when, err := time.Parse("20060102", desc[i+1:i+9])
		if err == nil {
			return when, nil
		}
	}
	return time.Time{}, Error.New("no build date in description %q", desc)
}
