package dispatchers

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCommandCategory_String(t *testing.T) {
	tests := []struct {
		category CommandCategory
		expected string
	}{
		{CategoryUncategorized, "other commands"},
		{CategoryPipeline, "face-swap pipeline"},
		{CategoryTools, "tools"},
		{CategoryInspect, "inspect plugins and runs"},
		{CategoryConfig, "configure faceswap"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			require.Equal(t, tt.expected, tt.category.String())
		})
	}
}

func TestCommandCategory_Unknown(t *testing.T) {
	unknownCategory := CommandCategory(99)
	require.Equal(t, "other commands", unknownCategory.String())
}

func TestCategoryOrder(t *testing.T) {
	order := CategoryOrder()
	require.Equal(t, categoryOrder, order)
	require.Equal(t, CategoryPipeline, order[0])
	require.Contains(t, order, CategoryUncategorized)
}
