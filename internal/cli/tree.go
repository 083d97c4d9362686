package cli

import (
	"github.com/faceswap-tools/faceswap/internal/actions"
	"github.com/faceswap-tools/faceswap/internal/actions/completions"
	"github.com/faceswap-tools/faceswap/internal/actions/config"
	"github.com/faceswap-tools/faceswap/internal/actions/logs"
	"github.com/faceswap-tools/faceswap/internal/dispatchers"
	"github.com/faceswap-tools/faceswap/internal/scripts"
)

// BuildTree assembles the faceswap command tree. models are the names of
// the registered model plugins; they become the --trainer choices.
func BuildTree(models []string) *dispatchers.DispatchNode {
	root := dispatchers.Root(dispatchers.RootSpec{
		Name:    "faceswap",
		Summary: "Swap faces in images and videos",
		Usage:   "faceswap <command> [flags]",
		Flags:   RootFlags(),
	})

	for _, name := range PipelineCommands() {
		spec := BuildCommandSpec(name, models)
		spec.Parent = root
		spec.Action = scripts.Action(name)
		dispatchers.Command(spec)
	}

	dispatchers.Command(dispatchers.CommandSpec{
		Name:        "plugins",
		Parent:      root,
		Summary:     "List available detectors, converters and models",
		Usage:       "faceswap plugins",
		Description: "Models found in plugins_dir are listed next to the built-in ones.",
		Action:      actions.ListPlugins,
		Category:    dispatchers.CategoryInspect,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:        "history",
		Parent:      root,
		Summary:     "Show recent runs",
		Usage:       "faceswap history [--limit <n>] [--command <cmd>] [--status <status>] [--since <duration>]",
		Description: "Lists the most recent extract, train, convert, gui and frames runs, newest first.",
		Flags:       HistoryFlags(),
		Action:      actions.History,
		Category:    dispatchers.CategoryInspect,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "version",
		Parent:   root,
		Summary:  "Show faceswap version",
		Usage:    "faceswap version",
		Action:   actions.ShowVersion,
		Category: dispatchers.CategoryInspect,
	})

	logsGroup := dispatchers.Group(dispatchers.GroupSpec{
		Name:    "logs",
		Parent:  root,
		Summary: "Inspect the faceswap log file",
		Usage:   "faceswap logs <command>",
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "view",
		Parent:   logsGroup,
		Summary:  "Show the last lines of the log",
		Usage:    "faceswap logs view [--limit <n>] [--json]",
		Flags:    LogsViewFlags(),
		Action:   logs.View,
		Category: dispatchers.CategoryInspect,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "tail",
		Parent:   logsGroup,
		Summary:  "Follow the log as it is written",
		Usage:    "faceswap logs tail",
		Action:   logs.Tail,
		Category: dispatchers.CategoryInspect,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "clear",
		Parent:   logsGroup,
		Summary:  "Empty the log file",
		Usage:    "faceswap logs clear",
		Action:   logs.Clear,
		Category: dispatchers.CategoryInspect,
	})

	group := dispatchers.Group(dispatchers.GroupSpec{
		Name:    "config",
		Parent:  root,
		Summary: "Manage configuration",
		Usage:   "faceswap config <command>",
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:    "get",
		Parent:  group,
		Summary: "Get a config value",
		Usage:   "faceswap config get <key>",
		Args: []dispatchers.ArgSpec{
			{Name: "key", Description: "Configuration key to read", Required: true},
		},
		Action:   config.Get,
		Category: dispatchers.CategoryConfig,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:    "set",
		Parent:  group,
		Summary: "Set a config value",
		Usage:   "faceswap config set <key> <value>",
		Args: []dispatchers.ArgSpec{
			{Name: "key", Description: "Configuration key to write", Required: true},
			{Name: "value", Description: "Value to assign", Required: true},
		},
		Action:   config.Set,
		Category: dispatchers.CategoryConfig,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:    "unset",
		Parent:  group,
		Summary: "Remove a config value",
		Usage:   "faceswap config unset <key> | --all",
		Flags:   ConfigUnsetFlags(),
		Args: []dispatchers.ArgSpec{
			{Name: "key", Description: "Configuration key to remove"},
		},
		Action:   config.Unset,
		Category: dispatchers.CategoryConfig,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "list",
		Parent:   group,
		Summary:  "List all config values",
		Usage:    "faceswap config list",
		Action:   config.List,
		Category: dispatchers.CategoryConfig,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:        "completions",
		Parent:      root,
		Summary:     "Set up shell completions",
		Usage:       "faceswap completions [bash|zsh|fish] [--script]",
		Description: "Without --script, prints how to install completions for the shell. The shell defaults to $SHELL.",
		Flags:       CompletionsFlags(),
		Args: []dispatchers.ArgSpec{
			{Name: "shell", Description: "bash, zsh or fish"},
		},
		Action:   completions.Action(root),
		Category: dispatchers.CategoryConfig,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:    "help",
		Parent:  root,
		Summary: "Show help for a command",
		Usage:   "faceswap help [command] [-i]",
		Flags:   dispatchers.HelpCommandFlags(),
	})

	return root
}
