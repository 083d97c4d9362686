package dispatchers

type CommandCategory int

const (
	CategoryUncategorized CommandCategory = iota
	CategoryPipeline                      // extract, train, convert
	CategoryTools                         // frames, gui
	CategoryInspect                       // plugins, history, version
	CategoryConfig                        // configuration
)

func (c CommandCategory) String() string {
	switch c {
	case CategoryPipeline:
		return "face-swap pipeline"
	case CategoryTools:
		return "tools"
	case CategoryInspect:
		return "inspect plugins and runs"
	case CategoryConfig:
		return "configure faceswap"
	default:
		return "other commands"
	}
}

var categoryOrder = []CommandCategory{
	CategoryPipeline,
	CategoryTools,
	CategoryInspect,
	CategoryConfig,
	CategoryUncategorized,
}

// CategoryOrder returns the display order for categories.
func CategoryOrder() []CommandCategory {
	return categoryOrder
}
