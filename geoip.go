// Package geoip resolves IP addresses against the legacy .dat binary
// database format: a compact binary trie over the 32-bit or 128-bit
// address space followed by per-edition records. One Service instance
// holds a single immutable database and serves concurrent point lookups.
package geoip

import (
	"net"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

type options struct {
	mode       Mode
	checkStale bool
	log        *zap.Logger
}

// Option configures Open.
type Option func(*options)

// WithMode selects the storage strategy, ModeDirect by default.
func WithMode(mode Mode) Option {
	return func(o *options) { o.mode = mode }
}

// WithStalenessCheck makes every lookup compare the file modification
// time against the one recorded at open, reloading the database when it
// changed. Off by default: it costs a stat call per query.
func WithStalenessCheck() Option {
	return func(o *options) { o.checkStale = true }
}

// WithLogger attaches a logger; the default is a no-op.
func WithLogger(log *zap.Logger) Option {
	return func(o *options) { o.log = log }
}

// Service - read-only lookup engine over one database file.
type Service struct {
	path       string
	mode       Mode
	checkStale bool
	log        *zap.Logger

	mu    sync.RWMutex
	state *dbState

	lastNetmask atomic.Int32
}

// dbState bundles a storage source with the metadata it was opened
// under. Lookups snapshot it once, so a concurrent reload can never mix
// old geometry with new bytes. The reference count starts at one for
// the owning Service; each in-flight lookup holds another, and the
// source closes when the last holder releases it.
type dbState struct {
	src   nodeSource
	geo   geometry
	info  string
	mtime time.Time

	refs atomic.Int32
}

func (st *dbState) acquire() {
	st.refs.Add(1)
}

func (st *dbState) release() error {
	if st.refs.Add(-1) == 0 {
		return st.src.close()
	}
	return nil
}

// Open - open the database at path and return a ready Service.
func Open(path string, opts ...Option) (*Service, error) {
	cfg := options{mode: ModeDirect, log: zap.NewNop()}
	for _, opt := range opts {
		opt(&cfg)
	}
	state, err := openState(path, cfg.mode)
	if err != nil {
		return nil, err
	}
	service := &Service{
		path:       path,
		mode:       cfg.mode,
		checkStale: cfg.checkStale,
		log:        cfg.log,
		state:      state,
	}
	service.log.Info("geoip database open",
		zap.String("path", path),
		zap.Stringer("edition", state.geo.edition),
		zap.Uint32("segments", state.geo.segments),
		zap.Int("recordWidth", state.geo.width),
		zap.Stringer("mode", cfg.mode))
	return service, nil
}

func openState(path string, mode Mode) (*dbState, error) {
	stream, err := openDBStream(path)
	if err != nil {
		return nil, err
	}
	geo, err := readStructure(stream)
	if err != nil {
		_ = stream.close()
		return nil, err
	}
	info := readDescription(stream)
	mtime := stream.mtime

	var src nodeSource
	switch mode {
	case ModeMemoryCache:
		src, err = newMemorySource(stream)
	case ModeIndexCache:
		src, err = newIndexSource(stream, 2*int64(geo.segments)*int64(geo.width))
	default:
		src = &fileSource{stream: stream}
	}
	if err != nil {
		_ = stream.close()
		return nil, err
	}
	state := &dbState{src: src, geo: geo, info: info, mtime: mtime}
	state.refs.Store(1)
	return state, nil
}

// Country returns the country the address belongs to. The reserved
// unknown entry comes back for unassigned address space, never nil.
func (s *Service) Country(ip net.IP) (*Country, error) {
	state, err := s.snapshot()
	if err != nil {
		return nil, err
	}
	defer state.release()
	if !state.geo.edition.hasCountryRecords() {
		return nil, Error.New("edition %s does not carry country records", state.geo.edition)
	}
	pointer, err := s.seek(state, ip)
	if err != nil {
		return nil, err
	}
	return decodeCountry(pointer)
}

// Region returns the country plus US state or Canadian province for
// region-edition databases.
func (s *Service) Region(ip net.IP) (*Region, error) {
	state, err := s.snapshot()
	if err != nil {
		return nil, err
	}
	defer state.release()
	if !state.geo.edition.hasRegionRecords() {
		return nil, Error.New("edition %s does not carry region records", state.geo.edition)
	}
	pointer, err := s.seek(state, ip)
	if err != nil {
		return nil, err
	}
	return decodeRegion(state.geo.edition, pointer)
}

// Location returns the full city record for city-edition databases, or
// (nil, nil) when the address falls in the trie's empty segment.
func (s *Service) Location(ip net.IP) (*Location, error) {
	state, err := s.snapshot()
	if err != nil {
		return nil, err
	}
	defer state.release()
	if !state.geo.edition.hasLocationRecords() {
		return nil, Error.New("edition %s does not carry city records", state.geo.edition)
	}
	pointer, err := s.seek(state, ip)
	if err != nil {
		return nil, err
	}
	if pointer == state.geo.segments {
		return nil, nil
	}
	return decodeLocation(state.src, state.geo, pointer)
}

// Organization returns the organization, ISP, or AS description string,
// or "" when the address falls in the trie's empty segment.
func (s *Service) Organization(ip net.IP) (string, error) {
	state, err := s.snapshot()
	if err != nil {
		return "", err
	}
	defer state.release()
	if !state.geo.edition.hasOrgRecords() {
		return "", Error.New("edition %s does not carry organization records", state.geo.edition)
	}
	pointer, err := s.seek(state, ip)
	if err != nil {
		return "", err
	}
	if pointer == state.geo.segments {
		return "", nil
	}
	return decodeOrg(state.src, state.geo, pointer)
}

// ID returns the raw record index for the address, the terminal pointer
// relative to the segment count. Netspeed databases encode their answer
// directly in it.
func (s *Service) ID(ip net.IP) (int, error) {
	state, err := s.snapshot()
	if err != nil {
		return 0, err
	}
	defer state.release()
	pointer, err := s.seek(state, ip)
	if err != nil {
		return 0, err
	}
	return int(pointer) - int(state.geo.segments), nil
}

// LastNetmask returns the prefix length at which the most recent lookup
// on this service terminated.
func (s *Service) LastNetmask() int {
	return int(s.lastNetmask.Load())
}

// Metadata returns a copy of the current database metadata.
func (s *Service) Metadata() (*DatabaseInfo, error) {
	state, err := s.snapshot()
	if err != nil {
		return nil, err
	}
	defer state.release()
	return &DatabaseInfo{
		Edition:       state.geo.edition,
		Segments:      state.geo.segments,
		RecordWidth:   state.geo.width,
		Description:   state.info,
		SourceModTime: state.mtime,
	}, nil
}

// Close drops the service's reference to the database; the underlying
// file closes once any in-flight lookups finish. Further lookups fail
// with ErrOpen.
func (s *Service) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == nil {
		return nil
	}
	err := s.state.release()
	s.state = nil
	return err
}

func (s *Service) seek(state *dbState, ip net.IP) (uint32, error) {
	key, err := lookupKey(ip, state.geo.edition)
	if err != nil {
		return 0, err
	}
	pointer, netmask, err := seekPointer(state.src, state.geo, key)
	if err != nil {
		return 0, err
	}
	s.lastNetmask.Store(int32(netmask))
	return pointer, nil
}

func (s *Service) snapshot() (*dbState, error) {
	if s.checkStale {
		if err := s.maybeReload(); err != nil {
			return nil, err
		}
	}
	s.mu.RLock()
	state := s.state
	if state != nil {
		state.acquire()
	}
	s.mu.RUnlock()
	if state == nil {
		return nil, ErrOpen.New("service is closed")
	}
	return state, nil
}

// maybeReload swaps in a freshly opened state when the file changed on
// disk. Readers holding the previous snapshot keep using it; the old
// source closes when the last of them releases its reference. A failed
// reload keeps the previous state and surfaces the error to the
// triggering call only.
func (s *Service) maybeReload() error {
	current, err := modTime(s.path)
	if err != nil {
		return err
	}
	s.mu.RLock()
	state := s.state
	s.mu.RUnlock()
	if state == nil {
		return ErrOpen.New("service is closed")
	}
	if current.Equal(state.mtime) {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == nil {
		return ErrOpen.New("service is closed")
	}
	if current.Equal(s.state.mtime) {
		return nil
	}
	fresh, err := openState(s.path, s.mode)
	if err != nil {
		s.log.Warn("geoip database reload failed, keeping previous state", zap.Error(err))
		return err
	}
	previous := s.state
	s.state = fresh
	if err := previous.release(); err != nil {
		s.log.Warn("closing replaced geoip database", zap.Error(err))
	}
	s.log.Info("geoip database reloaded",
		zap.Time("modified", fresh.mtime),
		zap.Stringer("edition", fresh.geo.edition))
	return nil
}
