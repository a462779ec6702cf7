package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/alecthomas/kingpin/v2"
	"github.com/oklog/run"
	"gopkg.in/yaml.v3"
	"k8s.io/client-go/util/homedir"

	"github.com/hktonylee/Autodesk-Fusion-360-MCP-Server/internal/bridge"
	"github.com/hktonylee/Autodesk-Fusion-360-MCP-Server/internal/host"
	"github.com/hktonylee/Autodesk-Fusion-360-MCP-Server/internal/kernel"
	"github.com/hktonylee/Autodesk-Fusion-360-MCP-Server/internal/ops"
	"github.com/hktonylee/Autodesk-Fusion-360-MCP-Server/internal/server"
	"github.com/hktonylee/Autodesk-Fusion-360-MCP-Server/internal/storage"
	"github.com/hktonylee/Autodesk-Fusion-360-MCP-Server/internal/storage/memory"
	"github.com/hktonylee/Autodesk-Fusion-360-MCP-Server/internal/storage/sqlite"
)

const (
	journalMemory = "memory"
	journalSQLite = "sqlite"
)

// serveFileConfig is the optional YAML configuration file for the serve
// command. Values present in the file override the flags.
type serveFileConfig struct {
	ListenAddr         string        `yaml:"listen"`
	TickInterval       time.Duration `yaml:"tick_interval"`
	DefaultTimeout     time.Duration `yaml:"default_timeout"`
	InteractiveTimeout time.Duration `yaml:"interactive_timeout"`
	ResultTTL          time.Duration `yaml:"result_ttl"`
	ExportDir          string        `yaml:"export_dir"`
	Journal            string        `yaml:"journal"`
}

// ServeCommand runs the bridge: HTTP front door, task queue, host loop and
// dispatcher.
type ServeCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	listenAddr         string
	tickInterval       time.Duration
	defaultTimeout     time.Duration
	interactiveTimeout time.Duration
	resultTTL          time.Duration
	exportDir          string
	journal            string
	configFile         string
}

// NewServeCommand returns the serve command.
func NewServeCommand(rootCmd *RootCommand, app *kingpin.Application) *ServeCommand {
	c := &ServeCommand{rootCmd: rootCmd}

	defaultExportDir := filepath.Join(homedir.HomeDir(), ".fusion-bridge", "exports")

	c.Cmd = app.Command("serve", "Run the modeling bridge server.")
	c.Cmd.Flag("listen", "HTTP listen address.").Default(":5000").StringVar(&c.listenAddr)
	c.Cmd.Flag("tick-interval", "Host wake period.").Default("200ms").DurationVar(&c.tickInterval)
	c.Cmd.Flag("default-timeout", "How long a request waits for its result.").Default("10s").DurationVar(&c.defaultTimeout)
	c.Cmd.Flag("interactive-timeout", "Timeout for operations that wait on a user selection.").Default("35s").DurationVar(&c.interactiveTimeout)
	c.Cmd.Flag("result-ttl", "How long orphaned results are kept (0 keeps them forever).").Default("0").DurationVar(&c.resultTTL)
	c.Cmd.Flag("export-dir", "Directory for STL/STEP exports.").Default(defaultExportDir).StringVar(&c.exportDir)
	c.Cmd.Flag("journal", "Task journal backend.").Default(journalMemory).EnumVar(&c.journal, journalMemory, journalSQLite)
	c.Cmd.Flag("config", "Optional YAML configuration file.").StringVar(&c.configFile)

	return c
}

func (c ServeCommand) Name() string { return c.Cmd.FullCommand() }

func (c *ServeCommand) Run(ctx context.Context) error {
	logger := c.rootCmd.Logger

	if err := c.loadConfigFile(); err != nil {
		return err
	}

	// Modeling side: design document, exporter, headless UI and the
	// operation table, bundled into the context handlers execute against.
	design := kernel.NewDesign()
	exporter, err := kernel.NewExporter(c.exportDir)
	if err != nil {
		return fmt.Errorf("could not create exporter: %w", err)
	}
	opsCtx := &ops.Context{
		Design:   design,
		UI:       kernel.HeadlessUI{},
		Exporter: exporter,
	}

	// Bridge plumbing.
	queue := bridge.NewQueue()
	store, err := bridge.NewStore(bridge.StoreConfig{Logger: logger})
	if err != nil {
		return fmt.Errorf("could not create correlation store: %w", err)
	}
	snapshot := bridge.NewSnapshot()
	snapshot.Replace(design.Parameters())

	journal, closeJournal, err := c.createJournal(ctx)
	if err != nil {
		return err
	}
	defer closeJournal()

	dispatcher, err := bridge.NewDispatcher(bridge.DispatcherConfig{
		OpsContext: opsCtx,
		Registry:   ops.Registry(),
		Queue:      queue,
		Store:      store,
		Snapshot:   snapshot,
		Journal:    journal,
		Logger:     logger,
	})
	if err != nil {
		return fmt.Errorf("could not create dispatcher: %w", err)
	}

	loop, err := host.NewLoop(host.LoopConfig{
		OnWake: dispatcher.HandleTick,
		Logger: logger,
	})
	if err != nil {
		return fmt.Errorf("could not create host loop: %w", err)
	}

	ticker, err := bridge.NewTicker(bridge.TickerConfig{
		Interval: c.tickInterval,
		Wake:     loop.Events(),
		Logger:   logger,
	})
	if err != nil {
		return fmt.Errorf("could not create ticker: %w", err)
	}

	srv, err := server.NewServer(server.ServerConfig{
		ListenAddr:         c.listenAddr,
		Queue:              queue,
		Store:              store,
		Snapshot:           snapshot,
		Journal:            journal,
		DefaultTimeout:     c.defaultTimeout,
		InteractiveTimeout: c.interactiveTimeout,
		Logger:             logger,
	})
	if err != nil {
		return fmt.Errorf("could not create server: %w", err)
	}

	var g run.Group

	// Host loop.
	{
		ctx, cancel := context.WithCancel(ctx)
		g.Add(
			func() error { return loop.Run(ctx) },
			func(_ error) { cancel() },
		)
	}

	// Wake ticker.
	{
		ctx, cancel := context.WithCancel(ctx)
		g.Add(
			func() error { return ticker.Run(ctx) },
			func(_ error) { cancel() },
		)
	}

	// HTTP front door.
	{
		ctx, cancel := context.WithCancel(ctx)
		g.Add(
			func() error { return srv.Run(ctx) },
			func(_ error) { cancel() },
		)
	}

	// Orphaned result sweeper.
	if c.resultTTL > 0 {
		ctx, cancel := context.WithCancel(ctx)
		g.Add(
			func() error { return store.RunSweeper(ctx, c.resultTTL, c.resultTTL) },
			func(_ error) { cancel() },
		)
	}

	logger.Infof("bridge ready on %s (tick %s)", c.listenAddr, c.tickInterval)
	return g.Run()
}

// loadConfigFile applies the optional YAML configuration on top of the
// flags.
func (c *ServeCommand) loadConfigFile() error {
	if c.configFile == "" {
		return nil
	}
	data, err := os.ReadFile(c.configFile)
	if err != nil {
		return fmt.Errorf("could not read config file: %w", err)
	}
	var fc serveFileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("could not parse config file: %w", err)
	}
	if fc.ListenAddr != "" {
		c.listenAddr = fc.ListenAddr
	}
	if fc.TickInterval > 0 {
		c.tickInterval = fc.TickInterval
	}
	if fc.DefaultTimeout > 0 {
		c.defaultTimeout = fc.DefaultTimeout
	}
	if fc.InteractiveTimeout > 0 {
		c.interactiveTimeout = fc.InteractiveTimeout
	}
	if fc.ResultTTL > 0 {
		c.resultTTL = fc.ResultTTL
	}
	if fc.ExportDir != "" {
		c.exportDir = fc.ExportDir
	}
	if fc.Journal != "" {
		if fc.Journal != journalMemory && fc.Journal != journalSQLite {
			return fmt.Errorf("unknown journal backend %q", fc.Journal)
		}
		c.journal = fc.Journal
	}
	return nil
}

// createJournal builds the configured task journal backend.
func (c *ServeCommand) createJournal(ctx context.Context) (storage.TaskRepository, func(), error) {
	switch c.journal {
	case journalSQLite:
		repo, err := sqlite.NewTaskRepository(ctx, sqlite.TaskRepositoryConfig{
			DBPath: c.rootCmd.DBPath,
			Logger: c.rootCmd.Logger,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("could not create sqlite journal: %w", err)
		}
		return repo, func() { _ = repo.Close() }, nil
	default:
		repo, err := memory.NewTaskRepository(memory.TaskRepositoryConfig{Logger: c.rootCmd.Logger})
		if err != nil {
			return nil, nil, fmt.Errorf("could not create memory journal: %w", err)
		}
		return repo, func() {}, nil
	}
}
