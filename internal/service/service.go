// Package service holds the task board's business rules: CRUD over
// projects, tasks and their children plus the derived statistics and
// deadline alerts.
package service

import (
	"time"

	"go.uber.org/zap"
)

type TaskService struct {
	store *Store
	log   *zap.Logger
	now   func() time.Time
}

type Option func(*TaskService)

// WithClock replaces time.Now, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(s *TaskService) {
		s.now = now
	}
}

// New creates the service. A nil store puts it in degraded mode where reads
// return empty results and writes fail with ErrStoreUnavailable.
func New(store *Store, log *zap.Logger, opts ...Option) *TaskService {
	if log == nil {
		log = zap.NewNop()
	}
	s := &TaskService{
		store: store,
		log:   log,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Configured reports whether a row store is attached.
func (s *TaskService) Configured() bool {
	return s.store != nil
}

func (s *TaskService) fail(op string, err error) error {
	wrapped := storeErr(op, err)
	if _, ok := wrapped.(*StoreError); ok {
		s.log.Warn("store operation failed", zap.String("op", op), zap.Error(err))
	}
	return wrapped
}

func (s *TaskService) degraded(op string) {
	s.log.Debug("store not configured, returning empty result", zap.String("op", op))
}
