package dispatchers

import (
	"sync"

	"github.com/faceswap-tools/faceswap/internal/usage"
)

// interactiveBrowserFunc is injected from main to avoid import cycles
var (
	interactiveBrowserFunc   CommandFunc
	interactiveBrowserFuncMu sync.RWMutex
)

// SetInteractiveBrowserFunc sets the interactive browser function thread-safely.
func SetInteractiveBrowserFunc(fn CommandFunc) {
	interactiveBrowserFuncMu.Lock()
	defer interactiveBrowserFuncMu.Unlock()
	interactiveBrowserFunc = fn
}

// getInteractiveBrowserFunc gets the interactive browser function thread-safely.
func getInteractiveBrowserFunc() CommandFunc {
	interactiveBrowserFuncMu.RLock()
	defer interactiveBrowserFuncMu.RUnlock()
	return interactiveBrowserFunc
}

var helpCommandFlags = []FlagDescriptor{
	{
		Names:       []string{"--interactive", "-i"},
		Type:        TypeBool,
		Description: "Browse commands and their flags interactively",
		Scope:       FlagScopeLocal,
	},
}

// HelpCommandFlags returns the flags accepted by `faceswap help`.
func HelpCommandFlags() []FlagDescriptor {
	return helpCommandFlags
}

func handleHelpCommand(root *DispatchNode, argv []string) (Resolution, error) {
	helpNode := root.Children["help"]
	flags := helpCommandFlags
	if helpNode != nil && len(helpNode.Flags) > 0 {
		flags = helpNode.Flags
	}

	parsed, targetPath, err := Parse(MergeFlags(globalFlags(root), flags), argv)
	if err != nil {
		return Resolution{}, attachHelp(err, helpNode, root)
	}

	if browserFn := getInteractiveBrowserFunc(); parsed.Bool("interactive") && browserFn != nil {
		return Resolution{Node: root, Flags: parsed, Execute: browserFn}, nil
	}

	target := resolveNode(root, targetPath)
	if target != nil {
		return Resolution{Node: target, Flags: parsed, Execute: HelpAction(target, root)}, nil
	}

	suggestions := FindSimilarCommands(targetPath[0], root, defaultSuggestionsCount)
	return Resolution{}, usage.UnknownCommand(targetPath[0], suggestions...).WithHelp(root.Prog(), HelpText(root, root))
}

// Dispatch resolves argv against the command tree. Leading global flags are
// allowed before the command name; everything after it is parsed against
// the command's flags plus the global flags. Every usage error carries the
// full help of the node that rejected the input.
func Dispatch(root *DispatchNode, argv []string) (Resolution, error) {
	lead, rest := splitLeadingFlags(root, argv)

	current := root
	consumed := 0
	for _, tok := range rest {
		child, ok := current.Children[tok]
		if !ok {
			break
		}
		current = child
		consumed++
		if current.Action != nil || current.Name == "help" {
			break
		}
	}
	remaining := append(append([]string(nil), lead...), rest[consumed:]...)

	if current.Name == "help" && current != root {
		return handleHelpCommand(root, remaining)
	}

	if hasHelpToken(remaining) {
		return Resolution{
			Node:    current,
			Flags:   NewParsedArgs(),
			Execute: HelpAction(current, root),
		}, nil
	}

	valid := validFlagsForNode(current, root)
	parsed, args, err := Parse(valid, remaining)
	if err != nil {
		return Resolution{}, attachHelp(err, current, root)
	}

	if current.Action == nil {
		if len(args) > 0 {
			// First token after a group (or the root) names no command
			suggestions := FindSimilarCommands(args[0], current, defaultSuggestionsCount)
			name := args[0]
			if current != root {
				name = current.Prog()[len(root.Name)+1:] + " " + args[0]
			}
			return Resolution{}, usage.UnknownCommand(name, suggestions...).WithHelp(current.Prog(), HelpText(current, root))
		}

		if current == root && parsed.Bool("version") {
			if version, ok := root.Children["version"]; ok && version.Action != nil {
				return Resolution{Node: version, Flags: parsed, Execute: version.Action}, nil
			}
		}

		if hasInteractive(parsed) && current.InteractiveAction != nil {
			return Resolution{
				Node:    current,
				Flags:   parsed,
				Execute: current.InteractiveAction,
			}, nil
		}

		// No command specified: show help but exit with code 1 (like git)
		exitCode := 0
		if current == root {
			exitCode = 1
		}
		return Resolution{
			Node:     current,
			Flags:    parsed,
			Execute:  HelpAction(current, root),
			ExitCode: exitCode,
		}, nil
	}

	if err := validateArgs(current.Args, args); err != nil {
		return Resolution{}, attachHelp(err, current, root)
	}

	return Resolution{
		Node:    current,
		Args:    args,
		Flags:   parsed,
		Execute: withHelpOnUsageError(current, root, current.Action),
	}, nil
}

// withHelpOnUsageError attaches the command's help to usage errors the
// action itself reports, such as an input directory that does not exist.
func withHelpOnUsageError(node, root *DispatchNode, action CommandFunc) CommandFunc {
	return func(args []string, flags *ParsedArgs) error {
		err := action(args, flags)
		if ue, ok := usage.AsError(err); ok && ue.Help == "" {
			return ue.WithHelp(node.Prog(), HelpText(node, root))
		}
		return err
	}
}

func attachHelp(err error, node, root *DispatchNode) error {
	if node == nil {
		node = root
	}
	if ue, ok := usage.AsError(err); ok {
		return ue.WithHelp(node.Prog(), HelpText(node, root))
	}
	return err
}

// splitLeadingFlags separates global flags given before the command name.
func splitLeadingFlags(root *DispatchNode, argv []string) ([]string, []string) {
	i := 0
	for i < len(argv) && isFlagToken(argv[i]) {
		f, ok := LookupFlag(root.Flags, argv[i])
		if ok && f.TakesValue() && i+1 < len(argv) {
			i++
		}
		i++
	}
	return argv[:i], argv[i:]
}

func hasHelpToken(argv []string) bool {
	for _, tok := range argv {
		if tok == "--" {
			return false
		}
		if tok == "--help" || tok == "-h" {
			return true
		}
	}
	return false
}

func hasInteractive(parsed *ParsedArgs) bool {
	return parsed.Bool("interactive")
}

func globalFlags(root *DispatchNode) []FlagDescriptor {
	var out []FlagDescriptor
	for _, f := range root.Flags {
		if f.Scope == FlagScopeGlobal {
			out = append(out, f)
		}
	}
	return out
}

// validFlagsForNode merges the global flags with the node's own flags. The
// node's declarations win when both declare the same destination or spelling.
func validFlagsForNode(node *DispatchNode, root *DispatchNode) []FlagDescriptor {
	if node == root {
		return root.Flags
	}
	return MergeFlags(globalFlags(root), node.Flags)
}

func validateArgs(spec []ArgSpec, args []string) error {
	requiredCount := 0
	for _, a := range spec {
		if a.Required {
			requiredCount++
		}
	}

	if len(args) < requiredCount {
		missing := spec[len(args)].Name
		return usage.MissingArgument(missing)
	}

	if len(args) > len(spec) {
		return usage.UnexpectedArgument(args[len(spec)])
	}

	return nil
}

func resolveNode(root *DispatchNode, path []string) *DispatchNode {
	current := root

	for _, p := range path {
		child, ok := current.Children[p]
		if !ok {
			return nil
		}
		current = child
	}

	return current
}
