package dispatchers

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/faceswap-tools/faceswap/internal/ui"
	"github.com/faceswap-tools/faceswap/internal/ui/style"
)

// commandDisplayOrder defines explicit ordering within categories.
// Commands not listed appear alphabetically after listed ones.
var commandDisplayOrder = map[string]int{
	// pipeline
	"extract": 1,
	"train":   2,
	"convert": 3,
	// tools
	"frames": 1,
	"gui":    2,
	// inspect
	"plugins":    1,
	"history":    2,
	"version":    3,
	"logs view":  4,
	"logs tail":  5,
	"logs clear": 6,
	// config
	"config get":   1,
	"config set":   2,
	"config unset": 3,
	"config list":  4,
	"completions":  5,
}

// formatUsage styles the usage line with the command in Info color and the rest muted.
func formatUsage(usage string) string {
	// Find where the command ends (first [ or <)
	cmdEnd := len(usage)
	for i, c := range usage {
		if c == '[' || c == '<' {
			cmdEnd = i
			break
		}
	}

	cmd := strings.TrimSpace(usage[:cmdEnd])
	rest := ""
	if cmdEnd < len(usage) {
		rest = usage[cmdEnd:]
	}

	if rest == "" {
		return style.Info(cmd)
	}
	return style.Info(cmd) + " " + style.Muted(rest)
}

func collectLeafCommands(node *DispatchNode, out *[]*DispatchNode) {
	if node.Hidden {
		return
	}
	if node.Action != nil {
		*out = append(*out, node)
		return
	}

	for _, child := range node.Children {
		collectLeafCommands(child, out)
	}
}

// CollectLeafCommands returns every visible command below node.
func CollectLeafCommands(node *DispatchNode) []*DispatchNode {
	var leaves []*DispatchNode
	for _, child := range node.Children {
		collectLeafCommands(child, &leaves)
	}
	sortByDisplayOrder(leaves)
	return leaves
}

func sortByDisplayOrder(cmds []*DispatchNode) {
	sort.Slice(cmds, func(i, j int) bool {
		nameI := strings.Join(cmds[i].Path[1:], " ")
		nameJ := strings.Join(cmds[j].Path[1:], " ")
		if cmds[i].Category != cmds[j].Category {
			return categoryRank(cmds[i].Category) < categoryRank(cmds[j].Category)
		}
		orderI, hasI := commandDisplayOrder[nameI]
		orderJ, hasJ := commandDisplayOrder[nameJ]
		if hasI && hasJ {
			return orderI < orderJ
		}
		if hasI {
			return true
		}
		if hasJ {
			return false
		}
		return nameI < nameJ
	})
}

func categoryRank(c CommandCategory) int {
	for i, cat := range categoryOrder {
		if cat == c {
			return i
		}
	}
	return len(categoryOrder)
}

// HelpText renders the full help for node. It is shown for --help, for
// `faceswap help <command>` and in front of every usage error.
func HelpText(node *DispatchNode, root *DispatchNode) string {
	var out bytes.Buffer

	if node == root {
		out.WriteString(root.Name)
		out.WriteString(" - ")
		out.WriteString(node.Summary)
		out.WriteString("\n\n")

		out.WriteString("USAGE\n   ")
		out.WriteString(formatUsage(node.Usage))
		out.WriteString("\n\n")

		grouped := make(map[CommandCategory][]*DispatchNode)
		for _, cmd := range CollectLeafCommands(root) {
			grouped[cmd.Category] = append(grouped[cmd.Category], cmd)
		}

		for _, cat := range categoryOrder {
			cmds := grouped[cat]
			if len(cmds) == 0 {
				continue
			}

			out.WriteString(style.Header(cat.String()))
			out.WriteString("\n")

			for _, cmd := range cmds {
				displayName := strings.Join(cmd.Path[1:], " ")
				fmt.Fprintf(&out, "   %s  %s\n", style.Info(fmt.Sprintf("%-16s", displayName)), cmd.Summary)
			}
			out.WriteString("\n")
		}

		writeFlags(&out, "GLOBAL FLAGS", root.Flags)

		out.WriteString("See 'faceswap help <command>' for detailed help on a specific command.\n")
		return out.String()
	}

	out.WriteString(strings.Join(node.Path, " "))
	if node.Summary != "" {
		out.WriteString(" - ")
		out.WriteString(node.Summary)
	}
	out.WriteString("\n\n")

	out.WriteString("USAGE\n   ")
	out.WriteString(formatUsage(node.Usage))
	out.WriteString("\n\n")

	if node.Description != "" {
		out.WriteString(node.Description)
		out.WriteString("\n\n")
	}

	if len(node.Children) > 0 {
		out.WriteString("COMMANDS\n")

		children := make([]*DispatchNode, 0, len(node.Children))
		for _, child := range node.Children {
			if !child.Hidden {
				children = append(children, child)
			}
		}
		sortByDisplayOrder(children)

		for _, child := range children {
			fmt.Fprintf(&out, "   %s  %s\n", style.Info(fmt.Sprintf("%-12s", child.Name)), child.Summary)
		}
		out.WriteString("\n")
	}

	if len(node.Args) > 0 {
		out.WriteString("ARGUMENTS\n")
		for _, a := range node.Args {
			name := "<" + a.Name + ">"
			if !a.Required {
				name = "[" + a.Name + "]"
			}
			fmt.Fprintf(&out, "   %s  %s\n", style.Info(fmt.Sprintf("%-24s", name)), a.Description)
		}
		out.WriteString("\n")
	}

	writeFlags(&out, "FLAGS", node.Flags)

	var globals []FlagDescriptor
	for _, f := range root.Flags {
		if f.Scope == FlagScopeGlobal {
			globals = append(globals, f)
		}
	}
	writeFlags(&out, "GLOBAL FLAGS", globals)

	out.WriteString("See 'faceswap help <command>' to read about a specific command.\n")
	return out.String()
}

func writeFlags(out *bytes.Buffer, title string, flags []FlagDescriptor) {
	visible := make([]FlagDescriptor, 0, len(flags))
	for _, f := range flags {
		if !f.Hidden {
			visible = append(visible, f)
		}
	}
	if len(visible) == 0 {
		return
	}

	out.WriteString(title)
	out.WriteString("\n")
	for _, f := range visible {
		name := strings.Join(f.Names, ", ")
		if hint := f.Hint(); hint != "" {
			name = name + " " + hint
		}
		desc := f.Description
		if def := FormatDefault(f.Default); def != "" {
			desc += style.Muted(" (default: " + def + ")")
		}
		fmt.Fprintf(out, "   %s  %s\n", style.Info(fmt.Sprintf("%-30s", name)), desc)
		for _, ff := range f.Filters {
			fmt.Fprintf(out, "   %-30s  %s\n", "", style.Muted("files: "+ff.String()))
		}
	}
	out.WriteString("\n")
}

// HelpAction generates help output for a command node.
func HelpAction(node *DispatchNode, root *DispatchNode) CommandFunc {
	return func(args []string, flags *ParsedArgs) error {
		ui.Pager(HelpText(node, root))
		return nil
	}
}
