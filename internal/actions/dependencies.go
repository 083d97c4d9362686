package actions

import (
	"sync"

	"github.com/faceswap-tools/faceswap/internal/app"
	"github.com/faceswap-tools/faceswap/internal/domain"
	"github.com/faceswap-tools/faceswap/internal/format"
	"github.com/faceswap-tools/faceswap/internal/plugins"
	"github.com/faceswap-tools/faceswap/internal/ui"
)

var (
	runtime   *app.Runtime
	runtimeMu sync.RWMutex
)

// Configure sets the runtime the actions read plugins and history from.
func Configure(rt *app.Runtime) {
	runtimeMu.Lock()
	runtime = rt
	runtimeMu.Unlock()
}

func currentRuntime() *app.Runtime {
	runtimeMu.RLock()
	defer runtimeMu.RUnlock()
	return runtime
}

type actionDependencies struct {
	Printf    func(format string, a ...any) (n int, err error)
	Pager     func(content string)
	Version   func() string
	Plugins   *plugins.Registry
	Runs      domain.RunStore
	Formatter format.Formatter
}

func defaultDeps() actionDependencies {
	deps := actionDependencies{
		Printf:  ui.Printf,
		Pager:   ui.Pager,
		Version: func() string { return app.Version },
	}
	if rt := currentRuntime(); rt != nil {
		deps.Plugins = rt.Plugins
		deps.Runs = rt.Runs
		deps.Formatter = format.Formatter{Config: rt.Config}
	}
	if deps.Plugins == nil {
		deps.Plugins = plugins.NewRegistry()
	}
	return deps
}
