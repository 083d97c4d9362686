// Package app wires the process-wide dependencies: config, logging, run
// history, output, and the plugin registry the scripts resolve from.
package app

import (
	"fmt"
	"io"
	"os"

	"github.com/faceswap-tools/faceswap/internal/config"
	"github.com/faceswap-tools/faceswap/internal/dispatchers"
	"github.com/faceswap-tools/faceswap/internal/domain"
	"github.com/faceswap-tools/faceswap/internal/engine"
	"github.com/faceswap-tools/faceswap/internal/log"
	"github.com/faceswap-tools/faceswap/internal/paths"
	"github.com/faceswap-tools/faceswap/internal/plugins"
	"github.com/faceswap-tools/faceswap/internal/scripts"
	"github.com/faceswap-tools/faceswap/internal/store"
	"github.com/faceswap-tools/faceswap/internal/ui"
	"github.com/faceswap-tools/faceswap/internal/ui/style"
)

// Version is set at build time with -ldflags "-X .../internal/app.Version=...".
var Version = "dev"

// Options configures the application factory.
type Options struct {
	// Pager options
	PagerDisabled bool
	PagerOverride string

	// Style options
	StyleEnabled bool

	// Locations; empty values use the per-user defaults.
	ConfigPath  string
	LogPath     string
	HistoryPath string

	// Diagnostics receives plugin loading lines. Nil discards them.
	Diagnostics io.Writer

	// Runner executes the engine and ffmpeg. Nil runs real subprocesses.
	Runner engine.Runner
}

// DefaultOptions returns the default application options.
func DefaultOptions() Options {
	return Options{
		StyleEnabled: true,
		LogPath:      paths.LogFilePath(),
		HistoryPath:  paths.HistoryDBPath(),
		Diagnostics:  os.Stderr,
	}
}

// Runtime is the wired application plus what only the pipeline needs.
type Runtime struct {
	*domain.Application
	Plugins *plugins.Registry
	Runner  engine.Runner
}

// New creates the runtime. Logging and history failures degrade to a
// NopLogger and no history; only plugin registration can fail.
func New(opts Options) (*Runtime, error) {
	cfg, err := newConfig(opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	logger := initLogger(cfg, opts.LogPath)

	rt := &Runtime{
		Application: &domain.Application{
			Config: cfg,
			Logger: logger,
			Output: ui.NewWriter(),
			Styler: style.NopStyler{},
		},
	}

	if config.Bool(cfg, "enable_history", true) && opts.HistoryPath != "" {
		s, err := store.New(opts.HistoryPath)
		if err != nil {
			logger.Warn("app: run history disabled: %v", err)
		} else {
			rt.Runs = s
		}
	}

	rt.Runner = opts.Runner
	if rt.Runner == nil {
		rt.Runner = engine.NewExecRunner()
	}

	reg, err := newPlugins(cfg, logger, rt.Runner, opts.Diagnostics)
	if err != nil {
		_ = Close(rt)
		return nil, err
	}
	rt.Plugins = reg

	return rt, nil
}

func newConfig(path string) (*config.Provider, error) {
	if path != "" {
		return config.NewProviderAt(path), nil
	}
	return config.NewProvider()
}

func initLogger(cfg domain.ConfigProvider, path string) domain.Logger {
	if !config.Bool(cfg, "enable_log", true) || path == "" {
		return log.NopLogger{}
	}
	level := log.ParseLevel(config.String(cfg, "log_level", "info"))
	if err := log.Init(path, level); err != nil {
		fmt.Fprintf(os.Stderr, "faceswap: logging disabled: %v\n", err)
		return log.NopLogger{}
	}
	return log.Get()
}

func newPlugins(cfg domain.ConfigProvider, logger domain.Logger, runner engine.Runner, diag io.Writer) (*plugins.Registry, error) {
	opts := []plugins.Option{plugins.WithLogger(logger)}
	if diag != nil {
		opts = append(opts, plugins.WithDiagnostics(diag))
	}
	reg := plugins.NewRegistry(opts...)

	eng := &plugins.Engine{
		Runner: runner,
		Path:   config.String(cfg, "engine_path", "faceswap-engine"),
	}
	if err := plugins.RegisterBuiltins(reg, eng); err != nil {
		return nil, fmt.Errorf("register plugins: %w", err)
	}

	dir := config.String(cfg, "plugins_dir", "")
	if dir == "" {
		return reg, nil
	}
	dir, err := dispatchers.ExpandPath(dir)
	if err != nil {
		logger.Warn("app: plugins_dir: %v", err)
		return reg, nil
	}
	added, err := plugins.RegisterModelDir(reg, eng, dir)
	if err != nil {
		logger.Warn("app: plugins_dir %s: %v", dir, err)
		return reg, nil
	}
	logger.Info("app: %d external models from %s", len(added), dir)
	return reg, nil
}

// ConfigureOutput installs the process-wide writer and styles once the
// global flags are known.
func (r *Runtime) ConfigureOutput(opts Options) {
	all, err := r.Config.GetAll()
	if err != nil {
		r.Logger.Warn("app: reading config for styles: %v", err)
	}
	style.Init(opts.StyleEnabled, all)
	if style.Enabled() {
		r.Styler = style.NewStyler()
	} else {
		r.Styler = style.NopStyler{}
	}

	writerOpts := []ui.WriterOption{ui.WithConfigGetter(r.Config.Get)}
	if opts.PagerDisabled {
		writerOpts = append(writerOpts, ui.WithPagerDisabled())
	}
	if opts.PagerOverride != "" {
		writerOpts = append(writerOpts, ui.WithPagerOverride(opts.PagerOverride))
	}
	w := ui.NewWriter(writerOpts...)
	ui.Configure(w)
	r.Output = w
}

// ScriptEnv returns the environment the pipeline scripts run in.
func (r *Runtime) ScriptEnv() *scripts.Env {
	return &scripts.Env{
		Config:  r.Config,
		Logger:  r.Logger,
		Out:     os.Stdout,
		Plugins: r.Plugins,
		Runner:  r.Runner,
		Runs:    r.Runs,
	}
}

// NewForTesting creates a runtime with a throwaway config file, no log,
// no history and a recording runner.
func NewForTesting(configPath string) *Runtime {
	runner := &engine.RecordingRunner{}
	reg := plugins.NewRegistry()
	_ = plugins.RegisterBuiltins(reg, &plugins.Engine{Runner: runner, Path: "faceswap-engine"})

	return &Runtime{
		Application: &domain.Application{
			Config: config.NewProviderAt(configPath),
			Logger: log.NopLogger{},
			Output: ui.NewWriter(ui.WithPagerDisabled()),
			Styler: style.NopStyler{},
		},
		Plugins: reg,
		Runner:  runner,
	}
}

// Close cleans up application resources.
func Close(r *Runtime) error {
	if r == nil || r.Application == nil {
		return nil
	}
	if r.Runs != nil {
		_ = r.Runs.Close()
	}
	if l, ok := r.Logger.(*log.Logger); ok && l == log.Default() {
		_ = log.Close()
	} else if r.Logger != nil {
		_ = r.Logger.Close()
	}
	return nil
}
