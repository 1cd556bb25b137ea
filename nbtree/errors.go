package nbtree

import "errors"

// ErrInvalidArgument is wrapped by every error returned because of a null,
// out-of-range or misordered key or sentinel. Callers can test for it with
// errors.Is.
var ErrInvalidArgument = errors.New("invalid argument")

// errIteratorRemoveBeforeKey is returned by Iterator.Remove when called
// before any call to Key.
var errIteratorRemoveBeforeKey = errors.New("nbtree: Iterator.Remove called before Key")
