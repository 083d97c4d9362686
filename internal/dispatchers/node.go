package dispatchers

// CommandFunc is the entry point bound to a command node. args holds the
// positional arguments left after flag parsing.
type CommandFunc func(args []string, flags *ParsedArgs) error

type Resolution struct {
	Node     *DispatchNode
	Args     []string
	Flags    *ParsedArgs
	Execute  CommandFunc
	ExitCode int
}

type ArgSpec struct {
	Name        string
	Description string
	Required    bool
}

type DispatchNode struct {
	Name        string
	Path        []string
	Summary     string
	Usage       string
	Description string
	Flags       []FlagDescriptor
	Args        []ArgSpec
	Children    map[string]*DispatchNode
	Action      CommandFunc
	Category    CommandCategory
	Hidden      bool

	// InteractiveAction runs instead of help when a group is invoked with --interactive.
	InteractiveAction CommandFunc
}

// Prog returns the program name used in error messages for this node.
func (n *DispatchNode) Prog() string {
	if n == nil || len(n.Path) == 0 {
		return "faceswap"
	}
	out := n.Path[0]
	for _, p := range n.Path[1:] {
		out += " " + p
	}
	return out
}
