package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/hktonylee/Autodesk-Fusion-360-MCP-Server/internal/log"
	"github.com/hktonylee/Autodesk-Fusion-360-MCP-Server/internal/model"
)

// TaskRepositoryConfig is the configuration for the memory task journal.
type TaskRepositoryConfig struct {
	Logger log.Logger
}

func (c *TaskRepositoryConfig) defaults() error {
	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "storage.Memory"})
	return nil
}

// TaskRepository is an in-memory implementation of storage.TaskRepository.
type TaskRepository struct {
	records []model.TaskRecord
	mu      sync.RWMutex
	logger  log.Logger
}

// NewTaskRepository creates a new memory task journal.
func NewTaskRepository(cfg TaskRepositoryConfig) (*TaskRepository, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &TaskRepository{logger: cfg.Logger}, nil
}

// RecordTask appends a dispatched task record to the journal.
func (r *TaskRepository) RecordTask(ctx context.Context, record model.TaskRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.records = append(r.records, record)
	r.logger.Debugf("Recorded task %d (%s)", record.ID, record.Op)

	return nil
}

// ListTasks returns all recorded tasks in dispatch order.
func (r *TaskRepository) ListTasks(ctx context.Context) ([]model.TaskRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.TaskRecord, len(r.records))
	copy(out, r.records)
	return out, nil
}
