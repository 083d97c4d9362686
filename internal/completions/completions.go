// Package completions generates shell completion scripts from the
// dispatch tree, so completions always match the flags the parser accepts.
package completions

import (
	"sort"
	"strings"

	"github.com/faceswap-tools/faceswap/internal/dispatchers"
)

// CommandInfo represents a command extracted from the dispatch tree.
type CommandInfo struct {
	Name        string
	Path        []string // full path from root, e.g. ["faceswap", "config", "set"]
	Summary     string
	Subcommands []string
	Flags       []FlagInfo
}

// Key is the command path joined with spaces.
func (c CommandInfo) Key() string {
	return strings.Join(c.Path, " ")
}

// FlagInfo represents a flag for a command.
type FlagInfo struct {
	Names       []string
	Description string
	TakesValue  bool
	Choices     []string
	Path        dispatchers.PathKind
	Patterns    []string
}

// ExtractCommands walks the dispatch tree and returns every visible node,
// root first, then sorted by path. Global root flags are included on every
// command.
func ExtractCommands(root *dispatchers.DispatchNode) []CommandInfo {
	if root == nil {
		return nil
	}

	var global []dispatchers.FlagDescriptor
	for _, f := range root.Flags {
		if f.Scope == dispatchers.FlagScopeGlobal {
			global = append(global, f)
		}
	}

	var commands []CommandInfo
	extractNode(root, root, global, &commands)
	sort.SliceStable(commands[1:], func(i, j int) bool {
		return commands[i+1].Key() < commands[j+1].Key()
	})
	return commands
}

func extractNode(node, root *dispatchers.DispatchNode, global []dispatchers.FlagDescriptor, commands *[]CommandInfo) {
	var subcommands []string
	for name, child := range node.Children {
		if !child.Hidden {
			subcommands = append(subcommands, name)
		}
	}
	sort.Strings(subcommands)

	flags := node.Flags
	if node != root {
		flags = dispatchers.MergeFlags(global, node.Flags)
	}

	var infos []FlagInfo
	for _, f := range flags {
		if f.Hidden {
			continue
		}
		info := FlagInfo{
			Names:       f.Names,
			Description: f.Description,
			TakesValue:  f.TakesValue(),
			Choices:     f.Choices,
			Path:        f.Path,
		}
		for _, filter := range f.Filters {
			info.Patterns = append(info.Patterns, filter.Patterns...)
		}
		infos = append(infos, info)
	}

	*commands = append(*commands, CommandInfo{
		Name:        node.Name,
		Path:        node.Path,
		Summary:     node.Summary,
		Subcommands: subcommands,
		Flags:       infos,
	})

	for _, name := range subcommands {
		extractNode(node.Children[name], root, global, commands)
	}
}

// FindCommand finds a command by its path.
func FindCommand(commands []CommandInfo, path []string) *CommandInfo {
	key := strings.Join(path, " ")
	for i := range commands {
		if commands[i].Key() == key {
			return &commands[i]
		}
	}
	return nil
}
