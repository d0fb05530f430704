package geoip

import "bytes"

const (
	usOffset     = 1
	canadaOffset = 677
	worldOffset  = 1353
	fipsRange    = 360

	// fullRecordLength is enough bytes for every field a city record can
	// carry; maxOrgRecordLength caps organization and ISP strings.
	fullRecordLength   = 60
	maxOrgRecordLength = 300
)

// decodeCountry maps a terminal pointer from a country-family database
// to its table entry. Index zero is the reserved unknown entry.
func decodeCountry(pointer uint32) (*Country, error) {
	index := int(pointer) - countryBegin
	if index == 0 {
		unknown := UnknownCountry
		return &unknown, nil
	}
	country, err := countryAt(index)
	if err != nil {
		return nil, err
	}
	return &country, nil
}

// decodeRegion maps a terminal pointer from a region database to a
// country or to a US state / Canadian province. The two revisions use
// different base constants and boundaries.
func decodeRegion(edition Edition, pointer uint32) (*Region, error) {
	record := &Region{}
	switch edition {
	case EditionRegionRev0:
		seekRegion := int(pointer) - stateBeginRev0
		if seekRegion >= 1000 {
			record.CountryCode = "US"
			record.CountryName = "United States"
			record.Region = base26Pair(seekRegion - 1000)
			return record, nil
		}
		country, err := countryAt(seekRegion)
		if err != nil {
			return nil, err
		}
		record.CountryCode = country.Code
		record.CountryName = country.Name
	case EditionRegionRev1:
		seekRegion := int(pointer) - stateBeginRev1
		switch {
		case seekRegion < usOffset:
			// unknown
		case seekRegion < canadaOffset:
			record.CountryCode = "US"
			record.CountryName = "United States"
			record.Region = base26Pair(seekRegion - usOffset)
		case seekRegion < worldOffset:
			record.CountryCode = "CA"
			record.CountryName = "Canada"
			record.Region = base26Pair(seekRegion - canadaOffset)
		default:
			country, err := countryAt((seekRegion - worldOffset) / fipsRange)
			if err != nil {
				return nil, err
			}
			record.CountryCode = country.Code
			record.CountryName = country.Name
		}
	default:
		return nil, Error.New("edition %s does not carry region records", edition)
	}
	return record, nil
}

// base26Pair encodes n as two letters, 0 == "AA".
func base26Pair(n int) string {
	return string([]byte{byte(n/26 + 'A'), byte(n%26 + 'A')})
}

// decodeLocation reads and decodes the variable-length city record that
// the terminal pointer references.
func decodeLocation(src nodeSource, geo geometry, pointer uint32) (*Location, error) {
	offset := int64(2*geo.width-1)*int64(geo.segments) + int64(pointer)
	buf, err := readRecord(src, offset, fullRecordLength)
	if err != nil {
		return nil, err
	}

	cursor := fieldCursor{buf: buf}
	country, err := countryAt(cursor.u8())
	if err != nil {
		return nil, err
	}
	record := &Location{
		CountryCode: country.Code,
		CountryName: country.Name,
		Region:      cursor.str(),
		City:        cursor.str(),
		PostalCode:  cursor.str(),
		Latitude:    coordinate(cursor.u24()),
		Longitude:   coordinate(cursor.u24()),
	}
	if geo.edition == EditionCityRev1 && record.CountryCode == "US" {
		combo := int(cursor.u24())
		record.DMACode = combo / 1000
		record.MetroCode = record.DMACode
		record.AreaCode = combo % 1000
	}
	return record, nil
}

// coordinate converts a packed 3-byte value to degrees.
func coordinate(v uint32) float64 {
	return float64(v)/10000 - 180
}

// decodeOrg reads the NUL-terminated organization or ISP string that the
// terminal pointer references.
func decodeOrg(src nodeSource, geo geometry, pointer uint32) (string, error) {
	offset := int64(pointer) + int64(2*geo.width-1)*int64(geo.segments)
	buf, err := readRecord(src, offset, maxOrgRecordLength)
	if err != nil {
		return "", err
	}
	end := bytes.IndexByte(buf, 0)
	if end < 0 {
		return "", ErrCorrupt.New("organization record at %d has no terminator within %d bytes", offset, len(buf))
	}
	return latin1String(buf[:end]), nil
}

// readRecord fetches up to max bytes at offset, clamped to the end of
// the database. An offset past the end is a corrupt terminal pointer.
func readRecord(src nodeSource, offset int64, max int) ([]byte, error) {
	if offset < 0 || offset >= src.size() {
		return nil, ErrCorrupt.New("record offset %d outside database of %d bytes", offset, src.size())
	}
	if remain := src.size() - offset; remain < int64(max) {
		max = int(remain)
	}
	return src.read(offset, max)
}

// fieldCursor walks the variable-length fields of a record buffer.
// Reads past the end yield zero values: optional trailing fields are
// simply absent in older records.
type fieldCursor struct {
	buf []byte
	pos int
}

func (c *fieldCursor) u8() int {
	if c.pos >= len(c.buf) {
		return 0
	}
	v := int(c.buf[c.pos])
	c.pos++
	return v
}

// str decodes a NUL-terminated Latin-1 field and steps past the
// terminator.
func (c *fieldCursor) str() string {
	if c.pos >= len(c.buf) {
		return ""
	}
	end := bytes.IndexByte(c.buf[c.pos:], 0)
	if end < 0 {
		end = len(c.buf) - c.pos
	}
	s := latin1String(c.buf[c.pos : c.pos+end])
	c.pos += end + 1
	return s
}

func (c *fieldCursor) u24() uint32 {
	if c.pos+3 > len(c.buf) {
		return 0
	}
	v := readUint24(c.buf, c.pos)
	c.pos += 3
	return v
}

// latin1String decodes ISO-8859-1 bytes, where every byte is the
// code point of the same value.
func latin1String(b []byte) string {
	runes := make([]rune, len(b))
	for i, c := range b {
		runes[i] = rune(c)
	}
	return string(runes)
}
