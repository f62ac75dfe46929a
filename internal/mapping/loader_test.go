package mapping

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const samplePlan = `
into: object
steps:
  - source: test
    target: output
    type: int
  - source: tags
    target: labels
    all: true
    type: [string, upper]
  - when: flags.enabled
    steps:
      - source: name
        target: profile.name
`

func TestParse(t *testing.T) {
	pf, err := Parse([]byte(samplePlan))
	require.NoError(t, err)
	require.NotNil(t, pf)

	assert.Equal(t, "1", pf.Version)
	assert.Equal(t, "object", pf.Into)
	require.Len(t, pf.Steps, 3)

	cast := pf.Steps[0]
	assert.Equal(t, "test", cast.Source)
	assert.Equal(t, "output", cast.Target)
	assert.Equal(t, TypeChain{"int"}, cast.Type)
	assert.False(t, cast.All)
	assert.True(t, cast.IsCast())
	assert.False(t, cast.IsBranch())

	all := pf.Steps[1]
	assert.True(t, all.All)
	assert.Equal(t, TypeChain{"string", "upper"}, all.Type)
	assert.Len(t, all.Directives(), 2)

	branch := pf.Steps[2]
	assert.True(t, branch.IsBranch())
	assert.False(t, branch.IsCast())
	require.Len(t, branch.Steps, 1)
	assert.Equal(t, "profile.name", branch.Steps[0].Target)
}

func TestParse_KeepsVersion(t *testing.T) {
	pf, err := Parse([]byte("version: \"2\"\nsteps: []\n"))
	require.NoError(t, err)
	assert.Equal(t, "2", pf.Version)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"not yaml", "steps: [\n"},
		{"type as map", "steps:\n  - source: a\n    target: b\n    type: {name: int}\n"},
		{"steps as scalar", "steps: nope\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestWriteFile_RoundTrip(t *testing.T) {
	pf, err := Parse([]byte(samplePlan))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "plan.yaml")
	require.NoError(t, WriteFile(pf, path))

	loaded, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, pf, loaded)

	data, err := Marshal(pf)
	require.NoError(t, err)
	assert.Contains(t, string(data), "type: int\n")
	assert.Contains(t, string(data), "- upper\n")
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.ErrorContains(t, err, "failed to read plan file")
}
