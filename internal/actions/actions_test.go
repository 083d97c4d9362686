package actions

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/faceswap-tools/faceswap/internal/dispatchers"
	"github.com/faceswap-tools/faceswap/internal/domain"
	"github.com/faceswap-tools/faceswap/internal/engine"
	"github.com/faceswap-tools/faceswap/internal/plugins"
	"github.com/faceswap-tools/faceswap/internal/testutil"
	"github.com/faceswap-tools/faceswap/internal/usage"
)

type output struct {
	printed strings.Builder
	paged   strings.Builder
}

func newTestDeps(t *testing.T) (actionDependencies, *output) {
	t.Helper()
	reg := plugins.NewRegistry()
	require.NoError(t, plugins.RegisterBuiltins(reg, &plugins.Engine{Runner: &engine.RecordingRunner{}}))

	out := &output{}
	return actionDependencies{
		Printf: func(format string, a ...any) (int, error) {
			return fmt.Fprintf(&out.printed, format, a...)
		},
		Pager:   func(content string) { out.paged.WriteString(content) },
		Version: func() string { return "test" },
		Plugins: reg,
	}, out
}

func TestListPlugins(t *testing.T) {
	deps, out := newTestDeps(t)

	require.NoError(t, listPlugins(nil, nil, deps))
	text := out.paged.String()

	require.Contains(t, text, "Detectors\n   all\n   cnn\n   hog\n")
	require.Contains(t, text, "Converters\n   Adjust\n   Masked\n")
	require.Contains(t, text, "Original")
	require.Contains(t, text, "(default)")
	require.Equal(t, 1, strings.Count(text, "(default)"))
}

func TestListPlugins_EmptyRegistry(t *testing.T) {
	deps, out := newTestDeps(t)
	deps.Plugins = plugins.NewRegistry()

	require.NoError(t, listPlugins(nil, nil, deps))
	require.Contains(t, out.paged.String(), "none registered")
}

func TestHistory_Disabled(t *testing.T) {
	deps, out := newTestDeps(t)

	require.NoError(t, history(nil, dispatchers.NewParsedArgs(), deps))
	require.Contains(t, out.printed.String(), "run history is disabled")
}

func TestHistory_Empty(t *testing.T) {
	deps, out := newTestDeps(t)
	deps.Runs = testutil.NewTestStore(t)

	flags := dispatchers.ParsedArgsFrom(map[string]any{"limit": 5})
	require.NoError(t, history(nil, flags, deps))
	require.Equal(t, "no runs recorded yet\n", out.printed.String())
}

func TestHistory_ListsNewestFirst(t *testing.T) {
	deps, out := newTestDeps(t)
	s := testutil.NewTestStore(t)
	deps.Runs = s

	base := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	testutil.SeedRuns(t, s, base, "extract", "train", "convert")

	failed := domain.Run{ID: "abcdef0123456789", Command: "frames", StartedAt: base.Add(time.Hour)}
	require.NoError(t, s.Begin(failed))
	require.NoError(t, s.Finish(failed.ID, domain.RunFailed, "ffmpeg exited with status 1", base.Add(time.Hour+2*time.Second)))

	flags := dispatchers.ParsedArgsFrom(map[string]any{"limit": 3})
	require.NoError(t, history(nil, flags, deps))

	lines := strings.Split(strings.TrimRight(out.paged.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	require.Contains(t, lines[0], "abcdef01")
	require.Contains(t, lines[0], "failed")
	require.Contains(t, lines[0], "2s")
	require.Contains(t, lines[0], "ffmpeg exited with status 1")
	require.Contains(t, lines[1], "convert")
	require.Contains(t, lines[1], "30s")
	require.Contains(t, lines[2], "train")
}

func TestHistory_InvalidLimit(t *testing.T) {
	deps, _ := newTestDeps(t)
	deps.Runs = testutil.NewTestStore(t)

	flags := dispatchers.ParsedArgsFrom(map[string]any{"limit": 0})
	err := history(nil, flags, deps)
	require.Equal(t, 2, usage.ExitCode(err))
}

func TestHistory_Filters(t *testing.T) {
	deps, out := newTestDeps(t)
	s := testutil.NewTestStore(t)
	deps.Runs = s
	testutil.SeedRuns(t, s, time.Now().Add(-time.Hour), "extract", "train", "extract")

	flags := dispatchers.ParsedArgsFrom(map[string]any{"limit": 10, "command": "extract", "since": "2h"})
	require.NoError(t, history(nil, flags, deps))

	lines := strings.Split(strings.TrimRight(out.paged.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	for _, line := range lines {
		require.Contains(t, line, "extract")
	}
}

func TestHistory_NoMatch(t *testing.T) {
	deps, out := newTestDeps(t)
	s := testutil.NewTestStore(t)
	deps.Runs = s
	testutil.SeedRuns(t, s, time.Now().Add(-time.Hour), "extract")

	flags := dispatchers.ParsedArgsFrom(map[string]any{"limit": 10, "status": "failed"})
	require.NoError(t, history(nil, flags, deps))
	require.Equal(t, "no runs match\n", out.printed.String())
}

func TestHistory_InvalidSince(t *testing.T) {
	deps, _ := newTestDeps(t)
	deps.Runs = testutil.NewTestStore(t)

	for _, since := range []string{"yesterday", "-1h"} {
		flags := dispatchers.ParsedArgsFrom(map[string]any{"limit": 5, "since": since})
		err := history(nil, flags, deps)
		require.Error(t, err)
		require.Equal(t, 2, usage.ExitCode(err))
	}
}

func TestStatusText_Running(t *testing.T) {
	require.Equal(t, "running", strings.TrimSpace(statusText(domain.RunRunning)))
}
