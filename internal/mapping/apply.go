package mapping

import (
	"forecaster/dotpath"
	"forecaster/forecast"
	"forecaster/primitive"
)

// Apply adds the plan's steps to c and returns it.
// Validate the plan first: Apply does not report structural problems.
func Apply(pf *PlanFile, c *forecast.Caster) *forecast.Caster {
	applySteps(pf.Steps, c)
	return c
}

// Target resolves the plan's into field.
func Target(pf *PlanFile) (forecast.Target, error) {
	return forecast.ParseTarget(pf.Into)
}

func applySteps(steps []Step, c *forecast.Caster) {
	for _, s := range steps {
		switch {
		case s.IsBranch():
			branch := s.Steps
			c.When(fieldIsTruthy(s.When), func(c *forecast.Caster) {
				applySteps(branch, c)
			})
		case s.All:
			c.CastAll(s.Source, s.Target, s.Directives()...)
		default:
			c.Cast(s.Source, s.Target, s.Directives()...)
		}
	}
}

func fieldIsTruthy(path string) forecast.Condition {
	return func(record any, _ map[string]any) bool {
		return primitive.Truthy(dotpath.Value(record, path))
	}
}
