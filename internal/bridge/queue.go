package bridge

import (
	"sync"

	"github.com/hktonylee/Autodesk-Fusion-360-MCP-Server/internal/model"
)

// Queue is the unbounded multi-producer single-consumer task queue between
// the front door and the dispatcher. Enqueue never blocks; the dispatcher
// drains everything available in one go.
type Queue struct {
	mu    sync.Mutex
	tasks []model.Task
}

// NewQueue returns an empty task queue.
func NewQueue() *Queue {
	return &Queue{}
}

// Enqueue appends a task. It never blocks and never fails.
func (q *Queue) Enqueue(t model.Task) {
	q.mu.Lock()
	q.tasks = append(q.tasks, t)
	q.mu.Unlock()
}

// DrainAll removes and returns every queued task in enqueue order. It
// returns nil when the queue is empty and never blocks.
func (q *Queue) DrainAll() []model.Task {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.tasks) == 0 {
		return nil
	}
	drained := q.tasks
	q.tasks = nil
	return drained
}

// Len returns the number of queued tasks.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.tasks)
}
