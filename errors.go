package geoip

import "github.com/zeebo/errs"

var (
	// Error is the default error class for this package.
	Error = errs.Class("geoip")
	// ErrOpen is returned when a database file cannot be opened or its
	// metadata cannot be located.
	ErrOpen = errs.Class("geoip open error")
	// ErrCorrupt is returned for structurally invalid databases: a missing
	// structure marker where one is required, an unrecognized edition byte,
	// a trie descent that never terminates, or a record offset outside the
	// file.
	ErrCorrupt = errs.Class("corrupt database")
	// ErrIO is returned when a read or stat on a live database file fails.
	ErrIO = errs.Class("geoip i/o error")
	// ErrBounds is returned by a storage source asked to read outside the
	// byte range it serves.
	ErrBounds = errs.Class("read out of range")
)
