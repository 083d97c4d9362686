package actions

import (
	"fmt"
	"strings"
	"time"

	"github.com/faceswap-tools/faceswap/internal/dispatchers"
	"github.com/faceswap-tools/faceswap/internal/domain"
	"github.com/faceswap-tools/faceswap/internal/format"
	"github.com/faceswap-tools/faceswap/internal/store"
	"github.com/faceswap-tools/faceswap/internal/ui/style"
	"github.com/faceswap-tools/faceswap/internal/usage"
)

func History(args []string, flags *dispatchers.ParsedArgs) error {
	return history(args, flags, defaultDeps())
}

func history(_ []string, flags *dispatchers.ParsedArgs, deps actionDependencies) error {
	if deps.Runs == nil {
		_, _ = deps.Printf("run history is disabled (faceswap config set enable_history true)\n")
		return nil
	}

	limit := flags.Int("limit", store.DefaultLimit)
	if limit <= 0 {
		return usage.InvalidValue("--limit", "positive int", fmt.Sprint(limit))
	}

	filter := domain.RunFilter{
		Command: flags.String("command", ""),
		Status:  domain.RunStatus(flags.String("status", "")),
		Limit:   limit,
	}
	if since := flags.String("since", ""); since != "" {
		d, err := time.ParseDuration(since)
		if err != nil || d <= 0 {
			return usage.InvalidValue("--since", "duration", since)
		}
		filter.Since = time.Now().Add(-d)
	}

	runs, err := deps.Runs.Find(filter)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		if filter == (domain.RunFilter{Limit: limit}) {
			_, _ = deps.Printf("no runs recorded yet\n")
		} else {
			_, _ = deps.Printf("no runs match\n")
		}
		return nil
	}

	var b strings.Builder
	for _, run := range runs {
		b.WriteString(formatRun(run, deps.Formatter))
		b.WriteString("\n")
	}
	deps.Pager(b.String())
	return nil
}

func formatRun(run domain.Run, f format.Formatter) string {
	id := run.ID
	if len(id) > 8 {
		id = id[:8]
	}

	duration := "-"
	if run.FinishedAt != nil {
		duration = format.Duration(run.Duration())
	}

	line := fmt.Sprintf("%s  %s  %-8s  %s  %6s",
		style.Muted(id),
		f.DateTime(run.StartedAt.Local()),
		run.Command,
		statusText(run.Status),
		duration,
	)
	if run.Error != "" {
		line += "  " + style.Muted(run.Error)
	}
	return line
}

func statusText(s domain.RunStatus) string {
	text := fmt.Sprintf("%-7s", s)
	switch s {
	case domain.RunSuccess:
		return style.Success(text)
	case domain.RunFailed:
		return style.Error(text)
	default:
		return style.Warning(text)
	}
}
