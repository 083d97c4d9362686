package scripts

import (
	"github.com/faceswap-tools/faceswap/internal/dispatchers"
	"github.com/faceswap-tools/faceswap/internal/domain"
)

// beginRun records a running entry, returning its id or "" when history
// is off or the write failed. History problems never fail a run.
func (e *Env) beginRun(name string, args *dispatchers.ParsedArgs) string {
	if e.Runs == nil {
		return ""
	}
	run := domain.Run{
		ID:        e.NewID(),
		Command:   name,
		Args:      args.Map(),
		StartedAt: e.Now(),
		Status:    domain.RunRunning,
	}
	if err := e.Runs.Begin(run); err != nil {
		e.Logger.Warn("scripts: could not record run: %v", err)
		return ""
	}
	return run.ID
}

func (e *Env) finishRun(id string, runErr error) {
	if id == "" {
		return
	}
	status, text := domain.RunSuccess, ""
	if runErr != nil {
		status, text = domain.RunFailed, runErr.Error()
	}
	if err := e.Runs.Finish(id, status, text, e.Now()); err != nil {
		e.Logger.Warn("scripts: could not finish run %s: %v", id, err)
	}
}
