package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_Validates(t *testing.T) {
	c := Default()
	require.NoError(t, Validate(c))
	assert.Len(t, c.Prompts, 20)
	assert.Len(t, c.Interventions, 7)
}

func TestDefault_ReturnsFreshCopy(t *testing.T) {
	a := Default()
	a.Prompts[0].Interventions[0] = "Mutated"
	b := Default()
	assert.Equal(t, "Caffeine", b.Prompts[0].Interventions[0])
}

func TestPrompt_Supports(t *testing.T) {
	p := Prompt{ID: 1, Text: "x", Interventions: []string{"Maca", "Meditation"}}
	assert.True(t, p.Supports("Maca"))
	assert.False(t, p.Supports("Caffeine"))
}

func TestCatalog_Clone(t *testing.T) {
	c := Default()
	cl := c.Clone()
	cl.Interventions[0].Benefits[0] = "changed"
	cl.Prompts[1].Interventions[0] = "changed"
	assert.Equal(t, "Quick energy boost", c.Interventions[0].Benefits[0])
	assert.Equal(t, "L-Theanine", c.Prompts[1].Interventions[0])
}

func TestCatalog_Intervention(t *testing.T) {
	c := Default()
	iv, ok := c.Intervention("Maca")
	require.True(t, ok)
	assert.Equal(t, "🌱", iv.Emoji)

	_, ok = c.Intervention("Nope")
	assert.False(t, ok)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Catalog)
		wantMsg string
	}{
		{"duplicate prompt id", func(c *Catalog) { c.Prompts[1].ID = c.Prompts[0].ID }, "duplicate prompt ID"},
		{"duplicate intervention", func(c *Catalog) { c.Interventions[1].Name = c.Interventions[0].Name }, "duplicate intervention"},
		{"unknown intervention", func(c *Catalog) { c.Prompts[0].Interventions = []string{"Coffee"} }, "unknown intervention \"Coffee\""},
		{"too few prompts", func(c *Catalog) { c.Prompts = c.Prompts[:1] }, "at least 2 prompts"},
		{"no interventions", func(c *Catalog) { c.Interventions = nil; c.Prompts[0].Interventions = nil }, "no interventions"},
		{"empty text", func(c *Catalog) { c.Prompts[3].Text = " " }, "empty text"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.mutate(c)
			err := Validate(c)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidCatalog))
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestEncodeParse_RoundTrip(t *testing.T) {
	for _, format := range []Format{FormatJSON, FormatYAML} {
		t.Run(string(format), func(t *testing.T) {
			data, err := Encode(Default(), format)
			require.NoError(t, err)

			c, err := Parse(data, format)
			require.NoError(t, err)
			assert.Equal(t, Default(), c)
		})
	}
}

func TestEncodeParse_MinimalCatalog(t *testing.T) {
	doc := `
prompts:
  - {id: 1, text: a, interventions: [X]}
  - {id: 2, text: b, interventions: []}
interventions:
  - {name: X}
`
	c, err := Parse([]byte(doc), FormatYAML)
	require.NoError(t, err)
	require.Nil(t, c.Interventions[0].Benefits)

	for _, format := range []Format{FormatJSON, FormatYAML} {
		t.Run(string(format), func(t *testing.T) {
			data, err := Encode(c, format)
			require.NoError(t, err)
			assert.NotContains(t, string(data), "null")

			back, err := Parse(data, format)
			require.NoError(t, err)
			assert.Equal(t, "X", back.Interventions[0].Name)
			assert.Empty(t, back.Interventions[0].Benefits)
			assert.Empty(t, back.Prompts[1].Interventions)
		})
	}
}

func TestEncode_NilPromptInterventions(t *testing.T) {
	c := &Catalog{
		Prompts:       []Prompt{{ID: 1, Text: "a"}, {ID: 2, Text: "b"}},
		Interventions: []Intervention{{Name: "X"}},
	}
	data, err := Encode(c, FormatJSON)
	require.NoError(t, err)

	back, err := Parse(data, FormatJSON)
	require.NoError(t, err)
	assert.Len(t, back.Prompts, 2)
	assert.Nil(t, c.Prompts[0].Interventions, "encode must not mutate its input")
}

func TestParse_SchemaViolation(t *testing.T) {
	doc := `{"prompts": [{"id": 1, "text": "a", "interventions": []}], "interventions": [{"name": "X"}]}`
	_, err := Parse([]byte(doc), FormatJSON)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidCatalog)
	assert.Contains(t, err.Error(), "schema validation failed")
}

func TestParse_UnknownField(t *testing.T) {
	doc := `
prompts:
  - {id: 1, text: a, interventions: [X]}
  - {id: 2, text: b, interventions: [X]}
interventions:
  - {name: X, colour: red}
`
	_, err := Parse([]byte(doc), FormatYAML)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidCatalog)
}

func TestParse_InvalidJSON(t *testing.T) {
	_, err := Parse([]byte("{nope"), FormatJSON)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidCatalog)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yml")
	doc := `
prompts:
  - id: 7
    text: I want to sleep
    interventions: [Nap]
  - id: 8
    text: I want to move
    interventions: [Walk, Nap]
interventions:
  - name: Nap
    emoji: "😴"
    timing: Immediate
  - name: Walk
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	c, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, c.Prompts, 2)
	assert.Equal(t, 7, c.Prompts[0].ID)
	assert.Equal(t, []string{"Walk", "Nap"}, c.Prompts[1].Interventions)
	assert.Equal(t, "😴", c.Interventions[0].Emoji)
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "read catalog"))
}

func TestFormatFromPath(t *testing.T) {
	assert.Equal(t, FormatYAML, FormatFromPath("a.YAML"))
	assert.Equal(t, FormatYAML, FormatFromPath("a.yml"))
	assert.Equal(t, FormatJSON, FormatFromPath("a.json"))
	assert.Equal(t, FormatJSON, FormatFromPath("a"))
}
