package geoip

// Edition identifies the database schema variant. It is fixed at open
// time and determines the segment count, the trie pointer width, and
// which record layout applies.
type Edition byte

const (
	EditionCountry    Edition = 1
	EditionCityRev1   Edition = 2
	EditionRegionRev1 Edition = 3
	EditionISP        Edition = 4
	EditionOrg        Edition = 5
	EditionCityRev0   Edition = 6
	EditionRegionRev0 Edition = 7
	EditionProxy      Edition = 8
	EditionASN        Edition = 9
	EditionNetspeed   Edition = 10
	EditionCountryV6  Edition = 12
)

const (
	// countryBegin is the first terminal pointer value of the fixed
	// country-record address space.
	countryBegin = 16776960

	stateBeginRev0 = 16700000
	stateBeginRev1 = 16000000

	standardRecordLength = 3
	orgRecordLength      = 4

	// legacyEditionOffset was added to the edition byte by databases
	// written before April 2003.
	legacyEditionOffset = 105
)

func (e Edition) String() string {
	switch e {
	case EditionCountry:
		return "country"
	case EditionCountryV6:
		return "country-v6"
	case EditionCityRev0:
		return "city-rev0"
	case EditionCityRev1:
		return "city-rev1"
	case EditionRegionRev0:
		return "region-rev0"
	case EditionRegionRev1:
		return "region-rev1"
	case EditionISP:
		return "isp"
	case EditionOrg:
		return "organization"
	case EditionASN:
		return "asnum"
	case EditionProxy:
		return "proxy"
	case EditionNetspeed:
		return "netspeed"
	}
	return "unknown"
}

// hasCountryRecords reports whether lookups resolve into the fixed
// country address space.
func (e Edition) hasCountryRecords() bool {
	switch e {
	case EditionCountry, EditionCountryV6, EditionProxy, EditionNetspeed:
		return true
	}
	return false
}

func (e Edition) hasRegionRecords() bool {
	return e == EditionRegionRev0 || e == EditionRegionRev1
}

func (e Edition) hasLocationRecords() bool {
	return e == EditionCityRev0 || e == EditionCityRev1
}

func (e Edition) hasOrgRecords() bool {
	switch e {
	case EditionISP, EditionOrg, EditionASN:
		return true
	}
	return false
}

// fixedSegments returns the segment count of editions that do not store
// one in the structure marker, and ok=false for the rest.
func (e Edition) fixedSegments() (segments uint32, ok bool) {
	switch e {
	case EditionCountry, EditionCountryV6, EditionProxy, EditionNetspeed:
		return countryBegin, true
	case EditionRegionRev0:
		return stateBeginRev0, true
	case EditionRegionRev1:
		return stateBeginRev1, true
	}
	return 0, false
}

// recordWidth returns the trie pointer width in bytes.
func (e Edition) recordWidth() int {
	if e == EditionISP || e == EditionOrg {
		return orgRecordLength
	}
	return standardRecordLength
}

func (e Edition) valid() bool {
	switch e {
	case EditionCountry, EditionCityRev1, EditionRegionRev1, EditionISP,
		EditionOrg, EditionCityRev0, EditionRegionRev0, EditionProxy,
		EditionASN, EditionNetspeed, EditionCountryV6:
		return true
	}
	return false
}
