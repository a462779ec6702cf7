// Package host runs the single execution context all modeling work happens
// on, mirroring the one-thread rule of the desktop CAD API.
package host

import (
	"context"
	"fmt"
	"runtime"

	"github.com/hktonylee/Autodesk-Fusion-360-MCP-Server/internal/log"
)

// LoopConfig is the configuration of the host loop.
type LoopConfig struct {
	// OnWake runs on the host goroutine every time the loop is woken.
	OnWake func(ctx context.Context)
	Logger log.Logger
}

func (c *LoopConfig) defaults() error {
	if c.OnWake == nil {
		return fmt.Errorf("wake callback is required")
	}
	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "host.Loop"})
	return nil
}

// Loop owns the host execution context: a single goroutine that sleeps
// until woken and then runs the wake callback. All design mutation happens
// inside that callback.
type Loop struct {
	cfg    LoopConfig
	logger log.Logger
	events chan struct{}
}

// NewLoop returns a new host loop.
func NewLoop(cfg LoopConfig) (*Loop, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &Loop{
		cfg:    cfg,
		logger: cfg.Logger,
		// Capacity 1 so wake producers never block and pending wakes
		// coalesce into one.
		events: make(chan struct{}, 1),
	}, nil
}

// Events returns the wake channel. Producers must send non-blocking.
func (l *Loop) Events() chan<- struct{} {
	return l.events
}

// Run services wake events until the context is cancelled. The goroutine is
// pinned to its OS thread for the lifetime of the loop.
func (l *Loop) Run(ctx context.Context) error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	l.logger.Infof("host loop started")
	for {
		select {
		case <-ctx.Done():
			l.logger.Infof("host loop stopped")
			return nil
		case <-l.events:
			l.cfg.OnWake(ctx)
		}
	}
}
