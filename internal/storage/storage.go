package storage

import (
	"context"

	"github.com/hktonylee/Autodesk-Fusion-360-MCP-Server/internal/model"
)

// TaskRepository is the interface for the dispatched-task journal.
type TaskRepository interface {
	RecordTask(ctx context.Context, record model.TaskRecord) error
	ListTasks(ctx context.Context) ([]model.TaskRecord, error)
}
