package directive

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/denotag/pkg/types"
)

func pairs(a *types.Attributes) []types.Attribute {
	return a.Pairs()
}

func TestParseAttributes(t *testing.T) {
	tests := []struct {
		name string
		text string
		want [][]types.Attribute
	}{
		{
			name: "single_run_attribute",
			text: `<deno run="app.ts" />`,
			want: [][]types.Attribute{{{Name: "run", Value: `"app.ts"`}}},
		},
		{
			name: "boolean_attribute",
			text: `<deno run="app.ts" minify />`,
			want: [][]types.Attribute{{
				{Name: "run", Value: `"app.ts"`},
				{Name: "minify", Value: types.True},
			}},
		},
		{
			name: "self_close_attached_to_value",
			text: `<deno bundle="lib.ts"/>`,
			want: [][]types.Attribute{{{Name: "bundle", Value: `"lib.ts"`}}},
		},
		{
			name: "explicit_close_marker",
			text: `<deno run="a.ts" mode="dev"></deno>`,
			want: [][]types.Attribute{{
				{Name: "run", Value: `"a.ts"`},
				{Name: "mode", Value: `"dev"`},
			}},
		},
		{
			name: "nested_in_markup",
			text: `<html><script><deno run="x.ts" /></script></html>`,
			want: [][]types.Attribute{{{Name: "run", Value: `"x.ts"`}}},
		},
		{
			name: "two_occurrences_on_one_line",
			text: `<deno run="a.ts" /> <deno run="b.ts" debug />`,
			want: [][]types.Attribute{
				{{Name: "run", Value: `"a.ts"`}},
				{{Name: "run", Value: `"b.ts"`}, {Name: "debug", Value: types.True}},
			},
		},
		{
			name: "value_containing_equals",
			text: `<deno run="a.ts" query="a=b" />`,
			want: [][]types.Attribute{{
				{Name: "run", Value: `"a.ts"`},
				{Name: "query", Value: `"a=b"`},
			}},
		},
		{
			name: "repeated_name_last_write_wins",
			text: `<deno run="a.ts" run="b.ts" />`,
			want: [][]types.Attribute{{{Name: "run", Value: `"b.ts"`}}},
		},
		{
			name: "extra_spacing_is_ignored",
			text: `<deno    run="a.ts"     flag   />`,
			want: [][]types.Attribute{{
				{Name: "run", Value: `"a.ts"`},
				{Name: "flag", Value: types.True},
			}},
		},
		{
			name: "unterminated_value_is_dropped",
			text: `<deno run="a.ts" title="oops />`,
			want: [][]types.Attribute{{{Name: "run", Value: `"a.ts"`}}},
		},
		{
			name: "no_attributes",
			text: `<deno />`,
			want: [][]types.Attribute{{}},
		},
		{
			name: "no_marker",
			text: `<div class="x"></div>`,
			want: [][]types.Attribute{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseAttributes(tt.text)
			require.Len(t, got, len(tt.want))
			for i := range tt.want {
				assert.Equal(t, tt.want[i], pairs(got[i]), "occurrence %d", i)
			}
		})
	}
}

// Quoted values containing spaces are rejoined without the spaces. This pins
// the current lossy behaviour.
func TestParseAttributesDropsInteriorSpaces(t *testing.T) {
	got := ParseAttributes(`<deno run="a.ts" title="hello big world" />`)
	require.Len(t, got, 1)

	title, ok := got[0].Get("title")
	require.True(t, ok)
	assert.Equal(t, types.Value(`"hellobigworld"`), title)
}

func TestParseAttributesTabSeparatedLines(t *testing.T) {
	got := ParseAttributes("<deno \trun=\"a.ts\" \t\tflag />")
	require.Len(t, got, 1)
	assert.Equal(t, []string{"run", "flag"}, got[0].Names())
}
