package actions

import (
	"fmt"
	"strings"

	"github.com/faceswap-tools/faceswap/internal/dispatchers"
	"github.com/faceswap-tools/faceswap/internal/plugins"
	"github.com/faceswap-tools/faceswap/internal/ui/style"
)

func ListPlugins(args []string, flags *dispatchers.ParsedArgs) error {
	return listPlugins(args, flags, defaultDeps())
}

// listPlugins prints the registered detectors, converters and models.
// The model picked when --trainer is omitted is starred.
func listPlugins(_ []string, _ *dispatchers.ParsedArgs, deps actionDependencies) error {
	reg := deps.Plugins
	var b strings.Builder

	writeSection(&b, "Detectors", reg.Names(plugins.CategoryExtractor), nil)
	writeSection(&b, "Converters", reg.Names(plugins.CategoryConverter), nil)

	models := reg.AvailableModels()
	if len(models) == 0 {
		b.WriteString(style.Header("Models") + "\n")
		b.WriteString("   " + style.Muted("none registered") + "\n")
		deps.Pager(b.String())
		return nil
	}

	defaultModel, _ := plugins.DefaultModel(models)
	writeSection(&b, "Models", models, func(name string) string {
		model, err := reg.Model(name)
		if err != nil {
			return style.Error(err.Error())
		}
		info := model.Info()
		desc := info.Description
		if name == defaultModel {
			desc += style.Muted(" (default)")
		}
		return desc
	})

	deps.Pager(b.String())
	return nil
}

func writeSection(b *strings.Builder, title string, names []string, describe func(string) string) {
	b.WriteString(style.Header(title) + "\n")
	for _, name := range names {
		if describe == nil {
			b.WriteString("   " + style.Info(name) + "\n")
			continue
		}
		fmt.Fprintf(b, "   %s  %s\n", style.Info(fmt.Sprintf("%-12s", name)), describe(name))
	}
	b.WriteString("\n")
}
