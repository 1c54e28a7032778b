package story

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefault_LoadsEmbeddedStory(t *testing.T) {
	s, err := Default()
	require.NoError(t, err)
	require.NotEmpty(t, s.Stages)

	for i, st := range s.Stages {
		require.Equal(t, i+1, st.Ordinal, "stage %s", st.ID)
		require.NotEmpty(t, st.Cells, "stage %s", st.ID)
		require.False(t, st.Criteria.Empty(), "stage %s declares no criteria", st.ID)
	}
}

func TestStageByID(t *testing.T) {
	s, err := Default()
	require.NoError(t, err)

	first := s.StageAt(1)
	require.NotNil(t, first)
	require.Equal(t, first, s.StageByID(first.ID))
	require.Nil(t, s.StageByID("no-such-stage"))
	require.Nil(t, s.StageAt(0))
	require.Nil(t, s.StageAt(len(s.Stages)+1))
}

func TestParse_YAML(t *testing.T) {
	content := `
title: Test Story
stages:
  - id: s1
    ordinal: 1
    title: Stage One
    language: starlark
    mode: single
    cells:
      - index: 0
        prompt: do the thing
        starter: "print(1)"
    criteria:
      requiredNumbers: [1]
`
	s, err := Parse([]byte(content), "yaml")
	require.NoError(t, err)
	require.Len(t, s.Stages, 1)
	require.Equal(t, ModeSingle, s.Stages[0].Mode)
	require.Equal(t, []float64{1}, s.Stages[0].Criteria.RequiredNumbers)
}

func TestParse_RejectsSchemaViolations(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"missing title", `{"stages":[]}`},
		{"empty stages", `{"title":"x","stages":[]}`},
		{"bad mode", `{"title":"x","stages":[{"id":"a","ordinal":1,"title":"t","mode":"triple","cells":[{"index":0}],"criteria":{}}]}`},
		{"unknown field", `{"title":"x","bogus":true,"stages":[{"id":"a","ordinal":1,"title":"t","mode":"single","cells":[{"index":0}],"criteria":{}}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.content), "json")
			require.Error(t, err)
		})
	}
}

func TestParse_RejectsStructuralMistakes(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			"ordinal gap",
			`{"title":"x","stages":[{"id":"a","ordinal":2,"title":"t","mode":"single","cells":[{"index":0}],"criteria":{}}]}`,
		},
		{
			"cell index gap",
			`{"title":"x","stages":[{"id":"a","ordinal":1,"title":"t","mode":"multi-cell","cells":[{"index":0},{"index":2}],"criteria":{}}]}`,
		},
		{
			"single mode with two cells",
			`{"title":"x","stages":[{"id":"a","ordinal":1,"title":"t","mode":"single","cells":[{"index":0},{"index":1}],"criteria":{}}]}`,
		},
		{
			"duplicate stage id",
			`{"title":"x","stages":[{"id":"a","ordinal":1,"title":"t","mode":"single","cells":[{"index":0}],"criteria":{}},{"id":"a","ordinal":2,"title":"t","mode":"single","cells":[{"index":0}],"criteria":{}}]}`,
		},
		{
			"malformed criteria regex",
			`{"title":"x","stages":[{"id":"a","ordinal":1,"title":"t","mode":"single","cells":[{"index":0}],"criteria":{"outputPatterns":["(["]}}]}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.content), "json")
			require.Error(t, err)
		})
	}
}

func TestLoad_PicksFormatFromExtension(t *testing.T) {
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "story.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte(`
title: Disk Story
stages:
  - id: s1
    ordinal: 1
    title: Stage One
    mode: single
    cells:
      - index: 0
    criteria:
      requiredTexts: [done]
`), 0o644))

	s, err := Load(yamlPath)
	require.NoError(t, err)
	require.Equal(t, "Disk Story", s.Title)
}
