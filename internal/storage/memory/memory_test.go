package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hktonylee/Autodesk-Fusion-360-MCP-Server/internal/model"
	"github.com/hktonylee/Autodesk-Fusion-360-MCP-Server/internal/storage/memory"
)

func TestTaskRepositoryRoundtrip(t *testing.T) {
	tests := map[string]struct {
		records []model.TaskRecord
	}{
		"An empty journal should list nothing": {},
		"Recorded tasks should come back in dispatch order": {
			records: []model.TaskRecord{
				{ID: 1, Op: model.OpDrawBox, Success: true, Message: "draw_box completed successfully"},
				{ID: 2, Op: model.OpUndo, Success: false, Message: "undo failed: nothing to undo", Error: "nothing to undo"},
				{ID: 3, Op: model.OpExportSTL, Success: true, Duration: 3 * time.Millisecond},
			},
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			repo, err := memory.NewTaskRepository(memory.TaskRepositoryConfig{})
			require.NoError(t, err)

			for _, rec := range test.records {
				require.NoError(t, repo.RecordTask(context.Background(), rec))
			}

			got, err := repo.ListTasks(context.Background())
			require.NoError(t, err)
			require.Len(t, got, len(test.records))
			for i, rec := range test.records {
				assert.Equal(t, rec.ID, got[i].ID)
				assert.Equal(t, rec.Op, got[i].Op)
				assert.Equal(t, rec.Success, got[i].Success)
				assert.Equal(t, rec.Message, got[i].Message)
			}
		})
	}
}

func TestListTasksReturnsCopy(t *testing.T) {
	repo, err := memory.NewTaskRepository(memory.TaskRepositoryConfig{})
	require.NoError(t, err)

	require.NoError(t, repo.RecordTask(context.Background(), model.TaskRecord{ID: 1, Op: model.OpDrawBox}))

	first, err := repo.ListTasks(context.Background())
	require.NoError(t, err)
	first[0].Op = "tampered"

	second, err := repo.ListTasks(context.Background())
	require.NoError(t, err)
	assert.Equal(t, model.OpDrawBox, second[0].Op)
}
