package plugins

import "fmt"

// Category identifies a kind of plugin.
type Category string

const (
	CategoryExtractor Category = "extractor"
	CategoryConverter Category = "converter"
	CategoryModel     Category = "model"
	CategoryTrainer   Category = "trainer"
)

// convention holds the module prefix and exported symbol of a category.
// Trainers live in the model module next to the model they train.
type convention struct {
	prefix string
	symbol string
}

var conventions = map[Category]convention{
	CategoryExtractor: {prefix: "Extract", symbol: "Extract"},
	CategoryConverter: {prefix: "Convert", symbol: "Convert"},
	CategoryModel:     {prefix: "Model", symbol: "Model"},
	CategoryTrainer:   {prefix: "Model", symbol: "Trainer"},
}

// Categories lists every category in display order.
func Categories() []Category {
	return []Category{CategoryExtractor, CategoryConverter, CategoryModel, CategoryTrainer}
}

// ModuleName returns the module a plugin of this category and name lives in.
func ModuleName(c Category, name string) string {
	return conventions[c].prefix + "_" + name
}

// Symbol returns the exported symbol expected in modules of this category.
func Symbol(c Category) string {
	return conventions[c].symbol
}

func (c Category) valid() error {
	if _, ok := conventions[c]; !ok {
		return fmt.Errorf("plugins: unknown category %q", string(c))
	}
	return nil
}
