// Package bridge implements the plumbing between the HTTP front door and
// the single-threaded host execution context: the task queue, the
// correlation store results travel back through, the tick source that wakes
// the host, and the dispatcher that executes drained tasks.
package bridge

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/hktonylee/Autodesk-Fusion-360-MCP-Server/internal/log"
	"github.com/hktonylee/Autodesk-Fusion-360-MCP-Server/internal/model"
)

// StoreConfig is the configuration of the correlation store.
type StoreConfig struct {
	// PollInterval is how often waiters re-check for their result.
	PollInterval time.Duration
	Logger       log.Logger
}

func (c *StoreConfig) defaults() error {
	if c.PollInterval <= 0 {
		c.PollInterval = 50 * time.Millisecond
	}
	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "bridge.Store"})
	return nil
}

type storedResult struct {
	result      *model.TaskResult
	publishedAt time.Time
}

// Store correlates task IDs with their eventual results. Waiters poll, the
// dispatcher publishes, and a result is consumed exactly once: the first
// waiter to see it takes it out of the store.
type Store struct {
	cfg    StoreConfig
	logger log.Logger

	nextID  uint64
	mu      sync.Mutex
	results map[uint64]storedResult
}

// NewStore returns a new correlation store.
func NewStore(cfg StoreConfig) (*Store, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &Store{
		cfg:     cfg,
		logger:  cfg.Logger,
		results: map[uint64]storedResult{},
	}, nil
}

// AllocateID returns a process-unique task ID. Safe for concurrent use.
func (s *Store) AllocateID() uint64 {
	return atomic.AddUint64(&s.nextID, 1)
}

// Publish stores the result for a task ID, making it visible to its
// waiter. Publishing twice for the same ID overwrites the earlier result.
func (s *Store) Publish(id uint64, result *model.TaskResult) {
	s.mu.Lock()
	s.results[id] = storedResult{result: result, publishedAt: time.Now()}
	s.mu.Unlock()
	s.logger.Debugf("published result for task %d (success=%t)", id, result.Success)
}

// take removes and returns the result for id, if present.
func (s *Store) take(id uint64) (*model.TaskResult, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sr, ok := s.results[id]
	if ok {
		delete(s.results, id)
	}
	return sr.result, ok
}

// AwaitResult polls for the result of a task until it arrives, the timeout
// elapses, or the context is cancelled. The timeout path does not error: it
// synthesizes an incomplete failed result, so the caller always has an
// envelope to return. A result left behind by a timed-out waiter stays in
// the store as an orphan.
func (s *Store) AwaitResult(ctx context.Context, id uint64, timeout time.Duration) (*model.TaskResult, error) {
	deadline := time.NewTimer(timeout)
	defer deadline.Stop()
	poll := time.NewTicker(s.cfg.PollInterval)
	defer poll.Stop()

	for {
		if r, ok := s.take(id); ok {
			return r, nil
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-deadline.C:
			s.logger.Warningf("task %d timed out after %s", id, timeout)
			return &model.TaskResult{
				Success:   false,
				Message:   "Task timeout",
				Error:     model.ErrTimeout.Error(),
				Completed: false,
			}, nil
		case <-poll.C:
		}
	}
}

// Orphaned returns the number of published results no waiter has consumed.
func (s *Store) Orphaned() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.results)
}

// Evict removes unconsumed results older than the given age and returns how
// many were dropped.
func (s *Store) Evict(olderThan time.Duration) int {
	cutoff := time.Now().Add(-olderThan)
	s.mu.Lock()
	defer s.mu.Unlock()
	dropped := 0
	for id, sr := range s.results {
		if sr.publishedAt.Before(cutoff) {
			delete(s.results, id)
			dropped++
		}
	}
	if dropped > 0 {
		s.logger.Debugf("evicted %d orphaned results", dropped)
	}
	return dropped
}

// RunSweeper evicts orphaned results every interval until the context is
// cancelled. Intended to run as its own goroutine in the process run group.
func (s *Store) RunSweeper(ctx context.Context, interval, ttl time.Duration) error {
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-t.C:
			s.Evict(ttl)
		}
	}
}
