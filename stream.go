package geoip

import (
	"io"
	"os"
	"time"
)

// dbStream wraps the database file with bounded positional reads. All
// reads go through ReadAt so concurrent lookups never race on a shared
// file position.
type dbStream struct {
	file  *os.File
	len   int64
	mtime time.Time
}

func openDBStream(filename string) (*dbStream, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, ErrOpen.Wrap(err)
	}
	stat, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return nil, ErrOpen.Wrap(err)
	}
	return &dbStream{file: file, len: stat.Size(), mtime: stat.ModTime()}, nil
}

// readAt returns exactly count bytes starting at pos.
func (stream *dbStream) readAt(pos int64, count int) ([]byte, error) {
	if pos < 0 || pos+int64(count) > stream.len {
		return nil, ErrBounds.New("read of %d bytes at %d exceeds file size %d", count, pos, stream.len)
	}
	buf := make([]byte, count)
	if _, err := stream.file.ReadAt(buf, pos); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return nil, ErrBounds.Wrap(err)
		}
		return nil, ErrIO.Wrap(err)
	}
	return buf, nil
}

func (stream *dbStream) size() int64 {
	return stream.len
}

func (stream *dbStream) close() error {
	return Error.Wrap(stream.file.Close())
}

// modTime stats the file at path without keeping it open; the staleness
// check compares the result against the time recorded at open.
func modTime(path string) (time.Time, error) {
	stat, err := os.Stat(path)
	if err != nil {
		return time.Time{}, ErrIO.Wrap(err)
	}
	return stat.ModTime(), nil
}
