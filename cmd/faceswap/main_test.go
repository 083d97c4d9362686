package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/faceswap-tools/faceswap/internal/app"
	"github.com/faceswap-tools/faceswap/internal/dispatchers"
	"github.com/faceswap-tools/faceswap/internal/display"
	"github.com/faceswap-tools/faceswap/internal/engine"
	"github.com/faceswap-tools/faceswap/internal/scripts"
	"github.com/faceswap-tools/faceswap/internal/usage"
)

func testOptions(t *testing.T, runner engine.Runner) app.Options {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("NO_COLOR", "1")
	return app.Options{
		PagerDisabled: true,
		ConfigPath:    filepath.Join(dir, "faceswaprc"),
		HistoryPath:   filepath.Join(dir, "history.db"),
		Runner:        runner,
	}
}

func TestRun_ExitCodes(t *testing.T) {
	tests := []struct {
		name     string
		argv     []string
		want     int
		contains []string
	}{
		{name: "version", argv: []string{"version"}, want: 0},
		{name: "no command", argv: nil, want: 1},
		{name: "unknown command", argv: []string{"extrct"}, want: 2, contains: []string{"faceswap: error:", "extract"}},
		{name: "bad choice", argv: []string{"convert", "-t", "Nope"}, want: 2, contains: []string{"USAGE", "faceswap convert: error:"}},
		{name: "unknown flag", argv: []string{"train", "--bogus"}, want: 2, contains: []string{"faceswap train: error:"}},
		{name: "required flag", argv: []string{"frames"}, want: 2, contains: []string{"faceswap frames: error:", "--input-file"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stderr bytes.Buffer
			code := run(tt.argv, testOptions(t, &engine.RecordingRunner{}), &stderr)

			require.Equal(t, tt.want, code, stderr.String())
			for _, s := range tt.contains {
				require.Contains(t, stderr.String(), s)
			}
		})
	}
}

func TestRun_FramesInvokesFFmpeg(t *testing.T) {
	dir := t.TempDir()
	video := filepath.Join(dir, "clip.mp4")
	require.NoError(t, writeFile(video))
	out := filepath.Join(dir, "frames")

	runner := &engine.RecordingRunner{}
	var stderr bytes.Buffer
	code := run([]string{"frames", "-i", video, "-o", out}, testOptions(t, runner), &stderr)
	require.Equal(t, 0, code, stderr.String())

	call, ok := runner.Last()
	require.True(t, ok)
	require.Equal(t, "ffmpeg", call.Tool)
	require.Equal(t, []string{"-i", video, filepath.Join(out, "%d.png")}, call.Args)
}

func TestRun_FramesRefusesVideoDirectory(t *testing.T) {
	dir := t.TempDir()
	video := filepath.Join(dir, "clip.mp4")
	require.NoError(t, writeFile(video))

	runner := &engine.RecordingRunner{}
	var stderr bytes.Buffer
	code := run([]string{"frames", "-i", video, "-o", dir}, testOptions(t, runner), &stderr)

	require.Equal(t, 2, code)
	require.Contains(t, stderr.String(), "contains the input video")
	require.FileExists(t, video)
	require.Empty(t, runner.Calls)
}

func TestRun_ToolFailureExitsOne(t *testing.T) {
	dir := t.TempDir()
	video := filepath.Join(dir, "clip.mp4")
	require.NoError(t, writeFile(video))

	runner := &engine.RecordingRunner{Err: &engine.ExternalToolError{Tool: "ffmpeg", ExitCode: 1}}
	var stderr bytes.Buffer
	code := run([]string{"frames", "-i", video, "-o", filepath.Join(dir, "out")}, testOptions(t, runner), &stderr)

	require.Equal(t, 1, code)
	require.Contains(t, stderr.String(), "ffmpeg")
}

func TestReport(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		want   int
		output string
	}{
		{
			name:   "usage error with help",
			err:    usage.InvalidFlag("--nope").WithHelp("faceswap extract", "USAGE\n   faceswap extract\n"),
			want:   2,
			output: "USAGE\n   faceswap extract\nfaceswap extract: error:",
		},
		{
			name:   "script not found",
			err:    &scripts.NotFoundError{Name: "sort"},
			want:   3,
			output: "faceswap: error:",
		},
		{
			name:   "display missing",
			err:    &display.UnavailableError{GOOS: "linux", Reason: "DISPLAY is not set"},
			want:   display.ExitCode,
			output: "ssh -X",
		},
		{
			name:   "plain failure",
			err:    errors.New("boom"),
			want:   1,
			output: "faceswap: error: boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stderr bytes.Buffer
			require.Equal(t, tt.want, report(&stderr, tt.err))
			require.Contains(t, stderr.String(), tt.output)
		})
	}
}

func TestOutputOptions(t *testing.T) {
	flags := dispatchers.ParsedArgsFrom(map[string]any{
		"no_color": true,
		"no_pager": true,
		"pager":    "less -R",
	})

	opts := outputOptions(app.Options{StyleEnabled: true}, flags)
	require.False(t, opts.StyleEnabled)
	require.True(t, opts.PagerDisabled)
	require.Equal(t, "less -R", opts.PagerOverride)

	opts = outputOptions(app.Options{}, nil)
	require.False(t, opts.PagerDisabled)
	require.Empty(t, opts.PagerOverride)
}

func writeFile(path string) error {
	return os.WriteFile(path, []byte("video"), 0o644)
}
