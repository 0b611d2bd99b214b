package translation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildConditions_Empty(t *testing.T) {
	conditions, args := buildConditions(Filter{})

	assert.Empty(t, conditions)
	assert.Empty(t, args)
}

func TestBuildConditions_SinglePredicates(t *testing.T) {
	tests := []struct {
		name     string
		filter   Filter
		wantSQL  string
		wantArgs []any
	}{
		{"locale", Filter{Locale: "en"}, "l.code = $1", []any{"en"}},
		{"key", Filter{Key: "home.title"}, "tr.key = $1", []any{"home.title"}},
		{"content", Filter{Content: "Welcome"}, "tr.content ILIKE $1", []any{"%Welcome%"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conditions, args := buildConditions(tt.filter)

			require.Len(t, conditions, 1)
			assert.Equal(t, tt.wantSQL, conditions[0])
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestBuildConditions_TagUsesAssociationSubquery(t *testing.T) {
	conditions, args := buildConditions(Filter{Tag: "web"})

	require.Len(t, conditions, 1)
	assert.Contains(t, conditions[0], "EXISTS")
	assert.Contains(t, conditions[0], "tag_translation")
	assert.Equal(t, []any{"web"}, args)
}

// TestBuildConditions_Composition verifies that all predicates combine with
// positional placeholders numbered in argument order.
func TestBuildConditions_Composition(t *testing.T) {
	conditions, args := buildConditions(Filter{
		Locale:  "en",
		Key:     "home.title",
		Tag:     "web",
		Content: "Welcome",
	})

	require.Len(t, conditions, 4)
	assert.Equal(t, "l.code = $1", conditions[0])
	assert.Equal(t, "tr.key = $2", conditions[1])
	assert.Contains(t, conditions[2], "$3")
	assert.Equal(t, "tr.content ILIKE $4", conditions[3])
	assert.Equal(t, []any{"en", "home.title", "web", "%Welcome%"}, args)
}
