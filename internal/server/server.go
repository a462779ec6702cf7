// Package server implements the HTTP front door. Handlers never touch the
// design directly: they enqueue a task, wait on the correlation store, and
// translate the result into the response envelope.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/hktonylee/Autodesk-Fusion-360-MCP-Server/internal/bridge"
	"github.com/hktonylee/Autodesk-Fusion-360-MCP-Server/internal/log"
	"github.com/hktonylee/Autodesk-Fusion-360-MCP-Server/internal/model"
	"github.com/hktonylee/Autodesk-Fusion-360-MCP-Server/internal/storage"
)

// ServerConfig is the configuration of the HTTP front door.
type ServerConfig struct {
	ListenAddr string
	Queue      *bridge.Queue
	Store      *bridge.Store
	Snapshot   *bridge.Snapshot
	// Journal is optional; without it the task listing endpoint reports
	// an empty journal.
	Journal storage.TaskRepository
	// DefaultTimeout bounds how long a request waits for its result.
	DefaultTimeout time.Duration
	// InteractiveTimeout bounds operations that wait on a user selection.
	InteractiveTimeout time.Duration
	Logger             log.Logger
}

func (c *ServerConfig) defaults() error {
	if c.ListenAddr == "" {
		c.ListenAddr = ":5000"
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
	if c.DefaultTimeout <= 0 {
		c.DefaultTimeout = 10 * time.Second
	}
	if c.InteractiveTimeout <= 0 {
		c.InteractiveTimeout = 35 * time.Second
	}
	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "server.Server"})
	return nil
}

// Server is the HTTP front door of the bridge.
type Server struct {
	cfg    ServerConfig
	logger log.Logger
	server *http.Server
}

// NewServer creates the front door with all routes registered.
func NewServer(cfg ServerConfig) (*Server, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	s := &Server{
		cfg:    cfg,
		logger: cfg.Logger,
	}
	s.server = &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: s.routes(),
	}
	return s, nil
}

// Handler returns the HTTP handler with all routes. Exposed for tests.
func (s *Server) Handler() http.Handler {
	return s.server.Handler
}

func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /Box", s.drawBox)
	mux.HandleFunc("POST /draw_cylinder", s.drawCylinder)
	mux.HandleFunc("POST /sphere", s.drawSphere)
	mux.HandleFunc("POST /create_circle", s.createCircle)
	mux.HandleFunc("POST /draw_2d_rectangle", s.draw2DRectangle)
	mux.HandleFunc("POST /draw_lines", s.drawLines)
	mux.HandleFunc("POST /draw_one_line", s.drawOneLine)
	mux.HandleFunc("POST /arc", s.drawArc)
	mux.HandleFunc("POST /spline", s.drawSpline)
	mux.HandleFunc("POST /ellipsis", s.drawEllipse)
	mux.HandleFunc("POST /draw_text", s.drawText)
	mux.HandleFunc("POST /offsetplane", s.offsetPlane)

	mux.HandleFunc("POST /extrude_last_sketch", s.extrudeLastSketch)
	mux.HandleFunc("POST /extrude_thin", s.extrudeThin)
	mux.HandleFunc("POST /cut_extrude", s.cutExtrude)
	mux.HandleFunc("POST /loft", s.loft)
	mux.HandleFunc("POST /sweep", s.sweep)
	mux.HandleFunc("POST /revolve", s.revolve)
	mux.HandleFunc("POST /threaded", s.threaded)

	mux.HandleFunc("POST /fillet_edges", s.filletEdges)
	mux.HandleFunc("POST /shell_body", s.shellBody)
	mux.HandleFunc("POST /holes", s.holes)
	mux.HandleFunc("POST /boolean_operation", s.booleanOperation)
	mux.HandleFunc("POST /circular_pattern", s.circularPattern)
	mux.HandleFunc("POST /rectangular_pattern", s.rectangularPattern)
	mux.HandleFunc("POST /move_body", s.moveBody)

	mux.HandleFunc("POST /move_body_by_token", s.moveBodyByToken)
	mux.HandleFunc("POST /delete_body_by_token", s.deleteBodyByToken)
	mux.HandleFunc("POST /edit_extrude_distance", s.editExtrudeDistance)
	mux.HandleFunc("POST /get_body_info", s.getBodyInfo)
	mux.HandleFunc("POST /get_feature_info", s.getFeatureInfo)
	mux.HandleFunc("POST /set_body_visibility", s.setBodyVisibility)
	mux.HandleFunc("POST /select_body", s.selectBody)
	mux.HandleFunc("POST /select_sketch", s.selectSketch)

	mux.HandleFunc("POST /set_parameter", s.setParameter)
	mux.HandleFunc("POST /undo", s.undo)
	mux.HandleFunc("POST /delete_everything", s.deleteEverything)
	mux.HandleFunc("POST /Export_STL", s.exportSTL)
	mux.HandleFunc("POST /Export_STEP", s.exportSTEP)
	mux.HandleFunc("POST /test_connection", s.testConnection)

	mux.HandleFunc("GET /count_parameters", s.countParameters)
	mux.HandleFunc("GET /list_parameters", s.listParameters)
	mux.HandleFunc("GET /tasks", s.listTasks)

	return mux
}

// Run starts the server and blocks until ctx is cancelled. It performs a
// graceful shutdown when the context is done.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Infof("listening on %s", s.server.Addr)
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
		s.logger.Infof("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown error: %w", err)
		}
		return nil
	}
}

// queueAndWait enqueues one task and blocks until its result arrives or the
// timeout passes. The timeout path returns the synthesized failed result,
// never an error.
func (s *Server) queueAndWait(ctx context.Context, op model.Op, params any, timeout time.Duration) (*model.TaskResult, error) {
	id := s.cfg.Store.AllocateID()
	s.cfg.Queue.Enqueue(model.Task{
		ID:         id,
		Op:         op,
		Params:     params,
		EnqueuedAt: time.Now(),
	})
	return s.cfg.Store.AwaitResult(ctx, id, timeout)
}
