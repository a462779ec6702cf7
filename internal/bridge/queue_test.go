package bridge_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hktonylee/Autodesk-Fusion-360-MCP-Server/internal/bridge"
	"github.com/hktonylee/Autodesk-Fusion-360-MCP-Server/internal/model"
)

func TestQueueFIFO(t *testing.T) {
	tests := map[string]struct {
		enqueue []model.Op
		expOps  []model.Op
	}{
		"Draining an empty queue should return nothing": {
			enqueue: nil,
			expOps:  nil,
		},

		"A single task should come back out": {
			enqueue: []model.Op{model.OpDrawBox},
			expOps:  []model.Op{model.OpDrawBox},
		},

		"Multiple tasks should keep enqueue order": {
			enqueue: []model.Op{model.OpDrawBox, model.OpExtrudeLastSketch, model.OpUndo},
			expOps:  []model.Op{model.OpDrawBox, model.OpExtrudeLastSketch, model.OpUndo},
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			q := bridge.NewQueue()
			for i, op := range test.enqueue {
				q.Enqueue(model.Task{ID: uint64(i + 1), Op: op})
			}

			drained := q.DrainAll()

			var gotOps []model.Op
			for _, task := range drained {
				gotOps = append(gotOps, task.Op)
			}
			assert.Equal(t, test.expOps, gotOps)
			assert.Equal(t, 0, q.Len())
			assert.Nil(t, q.DrainAll())
		})
	}
}

func TestQueueConcurrentProducers(t *testing.T) {
	const producers = 20
	const perProducer = 50

	q := bridge.NewQueue()

	var wg sync.WaitGroup
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perProducer; i++ {
				q.Enqueue(model.Task{Op: model.OpUndo})
			}
		}()
	}
	wg.Wait()

	assert.Len(t, q.DrainAll(), producers*perProducer)
}
