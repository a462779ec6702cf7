package bridge

import (
	"context"
	"fmt"
	"time"

	"github.com/hktonylee/Autodesk-Fusion-360-MCP-Server/internal/log"
)

// TickerConfig is the configuration of the host wake ticker.
type TickerConfig struct {
	// Interval is the wake period. The host loop observes new tasks at
	// most one interval after they were enqueued.
	Interval time.Duration
	// Wake receives one signal per tick. Sends are non-blocking: a tick
	// that finds the host still busy is dropped, the next one will land.
	Wake   chan<- struct{}
	Logger log.Logger
}

func (c *TickerConfig) defaults() error {
	if c.Interval <= 0 {
		c.Interval = 200 * time.Millisecond
	}
	if c.Wake == nil {
		return fmt.Errorf("wake channel is required")
	}
	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "bridge.Ticker"})
	return nil
}

// Ticker wakes the host execution context on a fixed period.
type Ticker struct {
	cfg    TickerConfig
	logger log.Logger
}

// NewTicker returns a new host wake ticker.
func NewTicker(cfg TickerConfig) (*Ticker, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &Ticker{cfg: cfg, logger: cfg.Logger}, nil
}

// Run ticks until the context is cancelled, then returns within one
// period.
func (t *Ticker) Run(ctx context.Context) error {
	t.logger.Infof("ticking every %s", t.cfg.Interval)
	tick := time.NewTicker(t.cfg.Interval)
	defer tick.Stop()
	for {
		select {
		case <-ctx.Done():
			t.logger.Infof("stopped")
			return nil
		case <-tick.C:
			select {
			case t.cfg.Wake <- struct{}{}:
			default:
			}
		}
	}
}
