package config

import (
	"github.com/faceswap-tools/faceswap/internal/dispatchers"
	"github.com/faceswap-tools/faceswap/internal/domain"
	"github.com/faceswap-tools/faceswap/internal/ui/style"
)

func List(args []string, flags *dispatchers.ParsedArgs) error {
	return list(args, flags, DefaultDeps())
}

// list prints every visible key grouped by section. Values equal to
// their default are marked.
func list(_ []string, _ *dispatchers.ParsedArgs, deps Deps) error {
	configMap, err := deps.GetAll()
	if err != nil {
		return err
	}

	bySection := domain.ConfigKeysBySection()
	first := true
	for _, section := range domain.ConfigSections() {
		var lines []string
		for _, key := range bySection[section] {
			value := configMap[key.Name]
			if key.HideIfEmpty && value == "" {
				continue
			}
			line := key.Name + "=" + value
			if value == key.Default {
				line += style.Muted(" (default)")
			}
			lines = append(lines, line)
		}
		if len(lines) == 0 {
			continue
		}

		if !first {
			_, _ = deps.Println()
		}
		first = false

		_, _ = deps.Println(style.Header("# " + section))
		for _, line := range lines {
			_, _ = deps.Println(line)
		}
	}

	return nil
}
