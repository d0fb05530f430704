package geoip

// Mode selects how trie and record bytes are served once the database
// is open.
type Mode int

const (
	// ModeDirect reads every byte range straight from the file.
	ModeDirect Mode = iota
	// ModeIndexCache buffers the trie region (2*segments*recordWidth
	// bytes, clamped to the file size) and reads the record region from
	// the file.
	ModeIndexCache
	// ModeMemoryCache buffers the whole file at open.
	ModeMemoryCache
)

func (m Mode) String() string {
	switch m {
	case ModeDirect:
		return "direct"
	case ModeIndexCache:
		return "index-cache"
	case ModeMemoryCache:
		return "memory-cache"
	}
	return "unknown"
}

// nodeSource serves raw byte ranges out of the database. Exactly one
// implementation backs a service instance at a time; a staleness reload
// swaps the source wholesale, it never mutates one in place.
type nodeSource interface {
	// read returns exactly count bytes at pos, or fails with an
	// ErrBounds or ErrIO class error.
	read(pos int64, count int) ([]byte, error)
	size() int64
	close() error
}

// memorySource holds the entire database in one buffer.
type memorySource struct {
	data []byte
}

func newMemorySource(stream *dbStream) (*memorySource, error) {
	data, err := stream.readAt(0, int(stream.size()))
	if err != nil {
		return nil, err
	}
	if err := stream.close(); err != nil {
		return nil, err
	}
	return &memorySource{data: data}, nil
}

func (s *memorySource) read(pos int64, count int) ([]byte, error) {
	if pos < 0 || pos+int64(count) > int64(len(s.data)) {
		return nil, ErrBounds.New("read of %d bytes at %d exceeds buffer size %d", count, pos, len(s.data))
	}
	buf := make([]byte, count)
	copy(buf, s.data[pos:])
	return buf, nil
}

func (s *memorySource) size() int64 { return int64(len(s.data)) }

func (s *memorySource) close() error { return nil }

// indexSource buffers the upper trie levels and falls through to the
// file for everything past its coverage.
type indexSource struct {
	index  []byte
	stream *dbStream
}

func newIndexSource(stream *dbStream, coverage int64) (*indexSource, error) {
	if coverage > stream.size() {
		coverage = stream.size()
	}
	index, err := stream.readAt(0, int(coverage))
	if err != nil {
		return nil, err
	}
	return &indexSource{index: index, stream: stream}, nil
}

func (s *indexSource) read(pos int64, count int) ([]byte, error) {
	if pos >= 0 && pos+int64(count) <= int64(len(s.index)) {
		buf := make([]byte, count)
		copy(buf, s.index[pos:])
		return buf, nil
	}
	return s.stream.readAt(pos, count)
}

func (s *indexSource) size() int64 { return s.stream.size() }

func (s *indexSource) close() error { return s.stream.close() }

// fileSource reads every byte range from the open file handle.
type fileSource struct {
	stream *dbStream
}

func (s *fileSource) read(pos int64, count int) ([]byte, error) {
	return s.stream.readAt(pos, count)
}

func (s *fileSource) size() int64 { return s.stream.size() }

func (s *fileSource) close() error { return s.stream.close() }
