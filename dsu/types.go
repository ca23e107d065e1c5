package dsu

import "errors"

// ErrIndexOutOfRange is the panic value (wrapped) raised when an index outside
// [0, Len()) reaches the forest.
var ErrIndexOutOfRange = errors.New("dsu: index out of range")

// ErrNotRoot is the panic value (wrapped) raised when SizeOf is asked about a
// non-root element; sizes at non-root entries are stale.
var ErrNotRoot = errors.New("dsu: element is not a root")
