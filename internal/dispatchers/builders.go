package dispatchers

// NewNode creates a node and attaches it to parent. A nil parent makes a
// root. Each node owns its Path slice.
func NewNode(
	name string,
	parent *DispatchNode,
	summary string,
	usage string,
	flags []FlagDescriptor,
	args []ArgSpec,
	action CommandFunc,
) *DispatchNode {
	node := &DispatchNode{
		Name:     name,
		Summary:  summary,
		Usage:    usage,
		Flags:    flags,
		Args:     args,
		Action:   action,
		Children: make(map[string]*DispatchNode),
	}

	if parent == nil {
		node.Path = []string{name}
		return node
	}

	node.Path = make([]string, 0, len(parent.Path)+1)
	node.Path = append(node.Path, parent.Path...)
	node.Path = append(node.Path, name)
	parent.Children[name] = node
	return node
}

// Root creates the top of the tree. Its flags are deduplicated the same
// way command flags are.
func Root(spec RootSpec) *DispatchNode {
	return NewNode(spec.Name, nil, spec.Summary, spec.Usage, MergeFlags(spec.Flags), nil, nil)
}

// Group creates a node that only holds subcommands.
func Group(spec GroupSpec) *DispatchNode {
	return NewNode(spec.Name, spec.Parent, spec.Summary, spec.Usage, nil, nil, nil)
}

// Command creates a runnable node. spec.Flags goes through MergeFlags, so a
// command never carries two descriptors for one destination or spelling.
func Command(spec CommandSpec) *DispatchNode {
	node := NewNode(spec.Name, spec.Parent, spec.Summary, spec.Usage, MergeFlags(spec.Flags), spec.Args, spec.Action)
	node.Description = spec.Description
	node.Category = spec.Category
	node.Hidden = spec.Hidden
	return node
}
