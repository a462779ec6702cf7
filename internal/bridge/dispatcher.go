package bridge

import (
	"context"
	"fmt"
	"runtime/debug"
	"sync/atomic"
	"time"

	"github.com/hktonylee/Autodesk-Fusion-360-MCP-Server/internal/log"
	"github.com/hktonylee/Autodesk-Fusion-360-MCP-Server/internal/model"
	"github.com/hktonylee/Autodesk-Fusion-360-MCP-Server/internal/ops"
	"github.com/hktonylee/Autodesk-Fusion-360-MCP-Server/internal/storage"
)

// DispatcherConfig is the configuration of the task dispatcher.
type DispatcherConfig struct {
	OpsContext *ops.Context
	Registry   map[model.Op]ops.Handler
	Queue      *Queue
	Store      *Store
	Snapshot   *Snapshot
	// Journal is optional. Journal failures never fail a task.
	Journal storage.TaskRepository
	Logger  log.Logger
}

func (c *DispatcherConfig) defaults() error {
	if c.OpsContext == nil {
		return fmt.Errorf("ops context is required")
	}
	if c.Registry == nil {
		return fmt.Errorf("operation registry is required")
	}
	if c.Queue == nil {
		return fmt.Errorf("queue is required")
	}
	if c.Store == nil {
		return fmt.Errorf("store is required")
	}
	if c.Snapshot == nil {
		return fmt.Errorf("snapshot is required")
	}
	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "bridge.Dispatcher"})
	return nil
}

// Dispatcher executes queued tasks on the host execution context. One tick
// drains the whole queue, runs every task in enqueue order, publishes each
// result, and refreshes the parameter snapshot.
type Dispatcher struct {
	cfg    DispatcherConfig
	logger log.Logger

	// running guards against overlapping ticks. The host loop is single
	// threaded so overlap means a wiring bug, not a race to win.
	running int32
}

// NewDispatcher returns a new task dispatcher.
func NewDispatcher(cfg DispatcherConfig) (*Dispatcher, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &Dispatcher{cfg: cfg, logger: cfg.Logger}, nil
}

// HandleTick processes everything currently queued. Called by the host loop
// on every wake; a tick that arrives while the previous one still runs is
// ignored.
func (d *Dispatcher) HandleTick(ctx context.Context) {
	if !atomic.CompareAndSwapInt32(&d.running, 0, 1) {
		d.logger.Warningf("tick overlapped a running dispatch, dropping it")
		return
	}
	defer atomic.StoreInt32(&d.running, 0)

	d.cfg.Snapshot.Replace(d.cfg.OpsContext.Design.Parameters())

	tasks := d.cfg.Queue.DrainAll()
	if len(tasks) == 0 {
		return
	}
	d.logger.Debugf("dispatching %d tasks", len(tasks))

	for _, t := range tasks {
		start := time.Now()
		result := d.execute(t)
		d.cfg.Store.Publish(t.ID, result)
		d.journal(ctx, t, result, time.Since(start))
	}

	// Refresh again so parameter changes from this batch are visible
	// without waiting a full tick.
	d.cfg.Snapshot.Replace(d.cfg.OpsContext.Design.Parameters())
}

// execute runs one task and turns its outcome into a result. A handler
// panic is contained here: it fails the task and leaves the host loop
// alive.
func (d *Dispatcher) execute(t model.Task) (result *model.TaskResult) {
	defer func() {
		if r := recover(); r != nil {
			stack := debug.Stack()
			d.logger.Errorf("handler for %q panicked: %v\n%s", t.Op, r, stack)
			result = &model.TaskResult{
				Success:   false,
				Message:   fmt.Sprintf("%s failed: handler panic: %v", t.Op, r),
				Error:     fmt.Sprintf("handler panic: %v\n%s", r, stack),
				Completed: true,
			}
		}
	}()

	handler, ok := d.cfg.Registry[t.Op]
	if !ok {
		d.logger.Warningf("no handler registered for operation %q", t.Op)
		return &model.TaskResult{
			Success:   false,
			Message:   fmt.Sprintf("%s failed: %v", t.Op, model.ErrUnknownOperation),
			Error:     model.ErrUnknownOperation.Error(),
			Completed: true,
		}
	}

	data, err := handler(d.cfg.OpsContext, t.Params)
	if err != nil {
		return &model.TaskResult{
			Success:   false,
			Message:   fmt.Sprintf("%s failed: %v", t.Op, err),
			Error:     err.Error(),
			Completed: true,
		}
	}

	return &model.TaskResult{
		Success:    true,
		Message:    fmt.Sprintf("%s completed successfully", t.Op),
		Completed:  true,
		EntityData: data,
	}
}

// journal records the dispatched task. Best effort only.
func (d *Dispatcher) journal(ctx context.Context, t model.Task, result *model.TaskResult, duration time.Duration) {
	if d.cfg.Journal == nil {
		return
	}
	err := d.cfg.Journal.RecordTask(ctx, model.TaskRecord{
		ID:        t.ID,
		Op:        t.Op,
		Success:   result.Success,
		Message:   result.Message,
		Error:     result.Error,
		Duration:  duration,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		d.logger.Warningf("could not journal task %d: %v", t.ID, err)
	}
}
