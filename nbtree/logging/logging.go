// Package logging wraps an nbtree.Set with structured logging around every
// call except Size, in the style of the decorator services numbleroot/pluto builds
// around its distributor, worker and storage layers.
package logging

import (
	"cmp"
	"time"

	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"

	"github.com/lockfree/nbtree/nbtree"
)

type loggingSet[K cmp.Ordered] struct {
	logger log.Logger
	set    nbtree.Set[K]
}

// New wraps set so that every call except Size is logged at Debug level on
// success and Warn level on error, along with its duration. Size is passed
// straight through to set without logging.
func New[K cmp.Ordered](set nbtree.Set[K], logger log.Logger) nbtree.Set[K] {
	return &loggingSet[K]{logger: logger, set: set}
}

func (s *loggingSet[K]) Contains(key K) (found bool, err error) {
	defer func(begin time.Time) {
		s.log("Contains", begin, err, "key", key, "found", found)
	}(time.Now())
	found, err = s.set.Contains(key)
	return found, err
}

func (s *loggingSet[K]) Insert(key K) (inserted bool, err error) {
	defer func(begin time.Time) {
		s.log("Insert", begin, err, "key", key, "inserted", inserted)
	}(time.Now())
	inserted, err = s.set.Insert(key)
	return inserted, err
}

func (s *loggingSet[K]) Delete(key K) (deleted bool, err error) {
	defer func(begin time.Time) {
		s.log("Delete", begin, err, "key", key, "deleted", deleted)
	}(time.Now())
	deleted, err = s.set.Delete(key)
	return deleted, err
}

func (s *loggingSet[K]) Size() int64 {
	return s.set.Size()
}

func (s *loggingSet[K]) Snapshot() (keys []K, err error) {
	defer func(begin time.Time) {
		s.log("Snapshot", begin, err, "len", len(keys))
	}(time.Now())
	keys, err = s.set.Snapshot()
	return keys, err
}

func (s *loggingSet[K]) log(method string, begin time.Time, err error, keyvals ...interface{}) {
	logger := log.With(s.logger, "method", method, "took", time.Since(begin))
	if err != nil {
		level.Warn(logger).Log(append(keyvals, "err", err)...)
		return
	}
	level.Debug(logger).Log(keyvals...)
}
