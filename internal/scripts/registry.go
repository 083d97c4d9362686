// Package scripts holds the pipeline commands (extract, train, convert,
// gui, frames) and the registry the command tree resolves them from.
package scripts

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/faceswap-tools/faceswap/internal/dispatchers"
	"github.com/faceswap-tools/faceswap/internal/display"
	"github.com/faceswap-tools/faceswap/internal/domain"
	"github.com/faceswap-tools/faceswap/internal/engine"
	"github.com/faceswap-tools/faceswap/internal/log"
	"github.com/faceswap-tools/faceswap/internal/plugins"
)

// Script runs one pipeline command with its parsed arguments.
type Script interface {
	Process(ctx context.Context, args *dispatchers.ParsedArgs) error
}

// Factory builds a script bound to an environment.
type Factory func(env *Env) Script

// Env is what scripts depend on at run time.
type Env struct {
	Config  domain.ConfigProvider
	Logger  domain.Logger
	Out     io.Writer
	Plugins *plugins.Registry
	Runner  engine.Runner
	Runs    domain.RunStore // nil disables history
	Display func() error
	Now     func() time.Time
	NewID   func() string
}

func (e *Env) withDefaults() *Env {
	out := Env{}
	if e != nil {
		out = *e
	}
	if out.Config == nil {
		out.Config = defaultsOnly{}
	}
	if out.Logger == nil {
		out.Logger = log.NopLogger{}
	}
	if out.Out == nil {
		out.Out = os.Stdout
	}
	if out.Plugins == nil {
		out.Plugins = plugins.NewRegistry()
	}
	if out.Runner == nil {
		out.Runner = engine.NewExecRunner()
	}
	if out.Display == nil {
		out.Display = display.Check
	}
	if out.Now == nil {
		out.Now = time.Now
	}
	if out.NewID == nil {
		out.NewID = uuid.NewString
	}
	return &out
}

// defaultsOnly serves the built-in defaults when no config is wired.
type defaultsOnly struct{}

func (defaultsOnly) Get(key string) (string, bool)      { return domain.GetDefaultValue(key) }
func (defaultsOnly) GetAll() (map[string]string, error) { return map[string]string{}, nil }
func (defaultsOnly) Set(string, string) error           { return fmt.Errorf("config is read-only") }
func (defaultsOnly) Unset(string) error                 { return fmt.Errorf("config is read-only") }

// NotFoundError is returned when no script is registered under a name.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no script registered for command %q", e.Name)
}

// GetExitCode implements usage.ExitCoder.
func (e *NotFoundError) GetExitCode() int { return plugins.ResolutionExitCode }

// Registry maps command names to script factories.
type Registry struct {
	factories map[string]Factory
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Register adds or replaces the factory for name.
func (r *Registry) Register(name string, f Factory) {
	r.factories[name] = f
}

// Names returns the registered command names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Resolve builds the script registered under name.
func (r *Registry) Resolve(name string, env *Env) (Script, error) {
	f, ok := r.factories[name]
	if !ok || f == nil {
		return nil, &NotFoundError{Name: name}
	}
	return f(env), nil
}

// Builtin returns a registry with every pipeline script.
func Builtin() *Registry {
	r := NewRegistry()
	r.Register("extract", func(env *Env) Script { return &extractScript{env: env} })
	r.Register("train", func(env *Env) Script { return &trainScript{env: env} })
	r.Register("convert", func(env *Env) Script { return &convertScript{env: env} })
	r.Register("gui", func(env *Env) Script { return &guiScript{env: env} })
	r.Register("frames", func(env *Env) Script { return &framesScript{env: env} })
	return r
}

// Run resolves name in reg, records the run in the history and
// processes it.
func Run(ctx context.Context, reg *Registry, env *Env, name string, args *dispatchers.ParsedArgs) error {
	env = env.withDefaults()

	script, err := reg.Resolve(name, env)
	if err != nil {
		env.Logger.Error("scripts: %v", err)
		return err
	}

	env.Logger.Info("scripts: running %s", name)
	run := env.beginRun(name, args)

	err = script.Process(ctx, args)

	env.finishRun(run, err)
	if err != nil {
		env.Logger.Error("scripts: %s failed: %v", name, err)
	} else {
		env.Logger.Info("scripts: %s finished", name)
	}
	return err
}

var (
	activeReg = Builtin()
	activeEnv *Env
	activeMu  sync.RWMutex
)

// Configure sets the registry and environment used by Action. A nil
// registry keeps the current one.
func Configure(reg *Registry, env *Env) {
	activeMu.Lock()
	defer activeMu.Unlock()
	if reg != nil {
		activeReg = reg
	}
	activeEnv = env
}

// Action returns the command-tree action for a script. The script is
// resolved when the command runs, so the tree can be built before the
// environment is configured. Ctrl-C cancels the run and any engine
// process it started.
func Action(name string) dispatchers.CommandFunc {
	return func(_ []string, args *dispatchers.ParsedArgs) error {
		activeMu.RLock()
		reg, env := activeReg, activeEnv
		activeMu.RUnlock()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		return Run(ctx, reg, env, name, args)
	}
}
