package logs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/faceswap-tools/faceswap/internal/dispatchers"
	"github.com/faceswap-tools/faceswap/internal/usage"
)

type capture struct {
	lines []string
}

func (c *capture) Printf(format string, args ...any) (int, error) {
	c.lines = append(c.lines, fmt.Sprintf(format, args...))
	return 0, nil
}

func (c *capture) Println(args ...any) (int, error) {
	c.lines = append(c.lines, strings.TrimSuffix(fmt.Sprintln(args...), "\n"))
	return 0, nil
}

func testDeps(t *testing.T, content *string) (Deps, *capture, string) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")
	path := filepath.Join(t.TempDir(), "faceswap.log")
	if content != nil {
		require.NoError(t, os.WriteFile(path, []byte(*content), 0600))
	}

	out := &capture{}
	deps := DefaultDeps()
	deps.LogFilePath = func() string { return path }
	deps.Printf = out.Printf
	deps.Println = out.Println
	deps.PollInterval = 10 * time.Millisecond
	return deps, out, path
}

func ptr(s string) *string { return &s }

const sample = "[2026-10-19 09:00:00] INFO: plugins: Loading Extract from Extract_hog plugin...\n" +
	"[2026-10-19 09:00:01] WARN: app: run history disabled: locked\n" +
	"[2026-10-19 09:00:02] ERROR: extract: engine exited with status 1\n"

func TestView(t *testing.T) {
	tests := []struct {
		name    string
		content *string
		flags   map[string]any
		want    []string
	}{
		{
			name:    "missing file",
			content: nil,
			want:    []string{"No log file found at "},
		},
		{
			name:    "empty file",
			content: ptr(""),
			want:    []string{"Log file is empty"},
		},
		{
			name:    "all lines",
			content: ptr(sample),
			want:    []string{"INFO: plugins", "WARN: app", "ERROR: extract"},
		},
		{
			name:    "limit keeps the newest",
			content: ptr(sample),
			flags:   map[string]any{"limit": 1},
			want:    []string{"ERROR: extract"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deps, out, _ := testDeps(t, tt.content)
			err := view(nil, dispatchers.ParsedArgsFrom(tt.flags), deps)
			require.NoError(t, err)

			require.Len(t, out.lines, len(tt.want))
			for i, want := range tt.want {
				require.Contains(t, out.lines[i], want)
			}
		})
	}
}

func TestView_JSON(t *testing.T) {
	deps, out, _ := testDeps(t, ptr(sample+"free text\n"))

	err := view(nil, dispatchers.ParsedArgsFrom(map[string]any{"json": true, "limit": 2}), deps)
	require.NoError(t, err)
	require.Len(t, out.lines, 1)
	require.JSONEq(t, `[
		{"timestamp": "2026-10-19 09:00:02", "level": "ERROR", "message": "extract: engine exited with status 1"},
		{"message": "free text"}
	]`, out.lines[0])
}

func TestView_InvalidLimit(t *testing.T) {
	deps, _, _ := testDeps(t, ptr(sample))

	err := view(nil, dispatchers.ParsedArgsFrom(map[string]any{"limit": 0}), deps)
	require.Error(t, err)
	require.Equal(t, 2, usage.ExitCode(err))
}

func TestParseLine(t *testing.T) {
	tests := []struct {
		line string
		want Entry
	}{
		{
			line: "[2026-10-19 09:00:00] DEBUG: scripts: resolved extract",
			want: Entry{Timestamp: "2026-10-19 09:00:00", Level: "DEBUG", Message: "scripts: resolved extract"},
		},
		{
			line: "[2026-10-19 09:00:00] TRACE: nope",
			want: Entry{Message: "[2026-10-19 09:00:00] TRACE: nope"},
		},
		{
			line: "plain",
			want: Entry{Message: "plain"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			require.Equal(t, tt.want, ParseLine(tt.line))
		})
	}
}

func TestClear(t *testing.T) {
	deps, out, path := testDeps(t, ptr(sample))

	require.NoError(t, clearLog(nil, nil, deps))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Empty(t, data)
	require.Equal(t, []string{"Log file cleared"}, out.lines)
}

func TestTail_FollowsAppendedLines(t *testing.T) {
	deps, _, path := testDeps(t, ptr(sample))
	var buf safeBuffer
	deps.Out = &buf

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- tail(ctx, deps) }()

	// Lines already in the file are not replayed
	require.Eventually(t, func() bool {
		f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0600)
		require.NoError(t, err)
		_, err = f.WriteString("[2026-10-19 09:00:03] INFO: new line\n")
		require.NoError(t, err)
		require.NoError(t, f.Close())
		return strings.Contains(buf.String(), "new line")
	}, 2*time.Second, 50*time.Millisecond)

	cancel()
	require.NoError(t, <-done)
	require.NotContains(t, buf.String(), "Loading Extract")
}

func TestTail_MissingFile(t *testing.T) {
	deps, out, _ := testDeps(t, nil)

	require.NoError(t, tail(context.Background(), deps))
	require.Len(t, out.lines, 1)
	require.Contains(t, out.lines[0], "No log file found")
}
