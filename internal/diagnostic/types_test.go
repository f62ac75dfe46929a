package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnostics_Collect(t *testing.T) {
	var d Diagnostics

	assert.False(t, d.HasErrors())
	assert.NoError(t, d.Err())

	d.AddInfo("plan_target", "materializing into a map", "", "")
	d.AddWarning("unknown_type", `type "intger" is not registered`, "steps[0]", "output", "integer", "int")
	d.AddError("missing_source", "source path is required", "steps[1]", "")
	d.AddError("invalid_path", "empty segment", "steps[2]", "a..b")

	assert.True(t, d.HasErrors())
	assert.Len(t, d.All(), 4)
	assert.Equal(t, SeverityError, d.All()[0].Severity)

	err := d.Err()
	require.Error(t, err)
	assert.Equal(t,
		"steps[1]: [missing_source] source path is required; steps[2] a..b: [invalid_path] empty segment",
		err.Error())

	assert.Equal(t,
		`steps[0] output: [unknown_type] type "intger" is not registered (did you mean: integer, int)`,
		d.Warnings[0].String())
	assert.Equal(t, "[plan_target] materializing into a map", d.Infos[0].String())
}

func TestDiagnostics_Merge(t *testing.T) {
	var a, b Diagnostics
	a.AddError("x", "first", "", "")
	b.AddWarning("y", "second", "", "")
	b.AddInfo("z", "third", "", "")

	a.Merge(b)

	assert.Len(t, a.Errors, 1)
	assert.Len(t, a.Warnings, 1)
	assert.Len(t, a.Infos, 1)
}

func TestSeverity_String(t *testing.T) {
	assert.Equal(t, "info", SeverityInfo.String())
	assert.Equal(t, "warning", SeverityWarning.String())
	assert.Equal(t, "error", SeverityError.String())
	assert.Equal(t, "unknown", Severity(42).String())
}
