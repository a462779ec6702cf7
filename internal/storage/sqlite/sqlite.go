package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/hktonylee/Autodesk-Fusion-360-MCP-Server/internal/log"
	"github.com/hktonylee/Autodesk-Fusion-360-MCP-Server/internal/model"
)

// TaskRepositoryConfig is the configuration for the SQLite task journal.
type TaskRepositoryConfig struct {
	DBPath string
	Logger log.Logger
}

func (c *TaskRepositoryConfig) defaults() error {
	if c.DBPath == "" {
		return fmt.Errorf("db path is required")
	}
	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "storage.SQLite"})
	return nil
}

// TaskRepository is a SQLite implementation of storage.TaskRepository.
type TaskRepository struct {
	db     *sql.DB
	logger log.Logger
}

// NewTaskRepository opens the journal database, runs migrations and
// returns the repository.
func NewTaskRepository(ctx context.Context, cfg TaskRepositoryConfig) (*TaskRepository, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	dir := filepath.Dir(cfg.DBPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("could not create db directory: %w", err)
	}

	dsn := fmt.Sprintf("%s?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)", cfg.DBPath)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("could not open database: %w", err)
	}

	if err := migrateUp(db, cfg.Logger); err != nil {
		db.Close()
		return nil, fmt.Errorf("could not run migrations: %w", err)
	}

	cfg.Logger.Debugf("SQLite task journal initialized at %s", cfg.DBPath)

	return &TaskRepository{db: db, logger: cfg.Logger}, nil
}

// Close closes the database connection.
func (r *TaskRepository) Close() error { return r.db.Close() }

// RecordTask appends a dispatched task record to the journal.
func (r *TaskRepository) RecordTask(ctx context.Context, record model.TaskRecord) error {
	query := `
		INSERT INTO task_journal (task_id, operation, success, message, error, duration_us, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(
		ctx,
		query,
		record.ID,
		string(record.Op),
		record.Success,
		record.Message,
		record.Error,
		record.Duration.Microseconds(),
		record.CreatedAt.Unix(),
	)
	if err != nil {
		return fmt.Errorf("could not insert task record: %w", err)
	}

	r.logger.Debugf("Recorded task %d (%s)", record.ID, record.Op)
	return nil
}

// ListTasks returns all recorded tasks in dispatch order.
func (r *TaskRepository) ListTasks(ctx context.Context) ([]model.TaskRecord, error) {
	query := `
		SELECT task_id, operation, success, message, error, duration_us, created_at
		FROM task_journal
		ORDER BY created_at ASC, task_id ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("could not query task records: %w", err)
	}
	defer rows.Close()

	var records []model.TaskRecord
	for rows.Next() {
		var rec model.TaskRecord
		var op string
		var durationUS, createdAt int64
		if err := rows.Scan(&rec.ID, &op, &rec.Success, &rec.Message, &rec.Error, &durationUS, &createdAt); err != nil {
			return nil, fmt.Errorf("could not scan task record: %w", err)
		}
		rec.Op = model.Op(op)
		rec.Duration = time.Duration(durationUS) * time.Microsecond
		rec.CreatedAt = time.Unix(createdAt, 0).UTC()
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("could not iterate task records: %w", err)
	}

	return records, nil
}
