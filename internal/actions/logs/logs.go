package logs

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/signal"
	"regexp"
	"strings"
	"time"

	"github.com/faceswap-tools/faceswap/internal/dispatchers"
	"github.com/faceswap-tools/faceswap/internal/ui/style"
	"github.com/faceswap-tools/faceswap/internal/usage"
)

// DefaultLimit is how many lines view shows without --limit.
const DefaultLimit = 50

// View shows the last lines of the log file.
func View(args []string, flags *dispatchers.ParsedArgs) error {
	return view(args, flags, DefaultDeps())
}

func view(_ []string, flags *dispatchers.ParsedArgs, deps Deps) error {
	jsonOutput := flags.Bool("json")
	limit := flags.Int("limit", DefaultLimit)
	if limit <= 0 {
		return usage.InvalidValue("--limit", "positive int", fmt.Sprint(limit))
	}

	logPath := deps.LogFilePath()
	info, err := deps.Stat(logPath)
	if errors.Is(err, fs.ErrNotExist) {
		if jsonOutput {
			_, _ = deps.Println("[]")
		} else {
			_, _ = deps.Println(style.Muted("No log file found at " + logPath))
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("stat log file: %w", err)
	}
	if info.Size() == 0 {
		if jsonOutput {
			_, _ = deps.Println("[]")
		} else {
			_, _ = deps.Println(style.Muted("Log file is empty"))
		}
		return nil
	}

	content, err := deps.ReadFile(logPath)
	if err != nil {
		return fmt.Errorf("read log file: %w", err)
	}

	lines := strings.Split(strings.TrimRight(string(content), "\n"), "\n")
	if len(lines) > limit {
		lines = lines[len(lines)-limit:]
	}

	if jsonOutput {
		return viewJSON(lines, deps)
	}
	for _, line := range lines {
		_, _ = deps.Println(colorizeLogLine(line))
	}
	return nil
}

// Entry is one parsed log line.
type Entry struct {
	Timestamp string `json:"timestamp,omitempty"`
	Level     string `json:"level,omitempty"`
	Message   string `json:"message"`
}

// [2026-01-29 10:30:45] INFO: message
var logEntryRegex = regexp.MustCompile(`^\[([^\]]+)\]\s+(DEBUG|INFO|WARN|ERROR):\s*(.*)$`)

// ParseLine splits a log line into its parts. Lines in another format are
// kept whole as the message.
func ParseLine(line string) Entry {
	m := logEntryRegex.FindStringSubmatch(line)
	if m == nil {
		return Entry{Message: line}
	}
	return Entry{Timestamp: m[1], Level: m[2], Message: m[3]}
}

func viewJSON(lines []string, deps Deps) error {
	entries := make([]Entry, 0, len(lines))
	for _, line := range lines {
		if line == "" {
			continue
		}
		entries = append(entries, ParseLine(line))
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	_, _ = deps.Println(string(data))
	return nil
}

// Tail follows the log file until interrupted.
func Tail(args []string, flags *dispatchers.ParsedArgs) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return tail(ctx, DefaultDeps())
}

func tail(ctx context.Context, deps Deps) error {
	logPath := deps.LogFilePath()

	file, err := deps.Open(logPath)
	if errors.Is(err, fs.ErrNotExist) {
		_, _ = deps.Println(style.Muted("No log file found at " + logPath))
		return nil
	}
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer func() { _ = file.Close() }()

	if _, err := file.Seek(0, io.SeekEnd); err != nil {
		return fmt.Errorf("seek log file: %w", err)
	}

	_, _ = deps.Println(style.Muted("Following logs at " + logPath + " (Ctrl+C to stop)"))

	reader := bufio.NewReader(file)
	ticker := time.NewTicker(deps.PollInterval)
	defer ticker.Stop()

	var partial string
	for {
		line, err := reader.ReadString('\n')
		partial += line
		if err == nil {
			fmt.Fprintln(deps.Out, colorizeLogLine(strings.TrimSuffix(partial, "\n")))
			partial = ""
			continue
		}
		if err != io.EOF {
			return fmt.Errorf("read log file: %w", err)
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

// Clear empties the log file.
func Clear(args []string, flags *dispatchers.ParsedArgs) error {
	return clearLog(args, flags, DefaultDeps())
}

func clearLog(_ []string, _ *dispatchers.ParsedArgs, deps Deps) error {
	if err := deps.WriteFile(deps.LogFilePath(), nil, 0600); err != nil {
		return fmt.Errorf("clear log file: %w", err)
	}
	_, _ = deps.Println(style.Success("Log file cleared"))
	return nil
}

func colorizeLogLine(line string) string {
	switch ParseLine(line).Level {
	case "ERROR":
		return style.Error(line)
	case "WARN":
		return style.Warning(line)
	case "INFO":
		return style.Info(line)
	case "DEBUG":
		return style.Muted(line)
	}
	return line
}
