package mapping

import (
	"fmt"
	"slices"

	"forecaster/dotpath"
	"forecaster/forecast"
	"forecaster/internal/diagnostic"
	"forecaster/internal/match"
	"forecaster/primitive"
)

const maxSuggestions = 3

// Validate checks a plan for structural problems. Type names are resolved
// against the built-ins and reg; an unknown name is a warning since the
// Caster tolerates it by producing nil.
func Validate(pf *PlanFile, reg *forecast.Registry) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if pf == nil {
		res.AddError("plan_is_nil", "plan file is nil", "", "")
		return res
	}

	if pf.Version != "1" {
		res.AddWarning("unknown_version", fmt.Sprintf("unknown plan version %q", pf.Version), "", "version")
	}

	if _, err := forecast.ParseTarget(pf.Into); err != nil {
		res.AddError("unknown_target", err.Error(), "", "into")
	}

	known := slices.Concat(primitive.Names(), reg.Names())
	validateSteps(res, "steps", pf.Steps, reg, known)

	return res
}

func validateSteps(res *diagnostic.Diagnostics, prefix string, steps []Step, reg *forecast.Registry, known []string) {
	for i := range steps {
		s := &steps[i]
		label := fmt.Sprintf("%s[%d]", prefix, i)

		if s.IsBranch() {
			validateBranch(res, label, s, reg, known)
			continue
		}

		validateCast(res, label, s, reg, known)
	}
}

func validateBranch(res *diagnostic.Diagnostics, label string, s *Step, reg *forecast.Registry, known []string) {
	if s.IsCast() {
		res.AddError("mixed_step", "a step cannot both branch and cast", label, "when")
	}

	if _, err := dotpath.Parse(s.When); err != nil {
		res.AddError("invalid_when_path", err.Error(), label, "when")
	}

	if len(s.Steps) == 0 {
		res.AddWarning("empty_branch", "conditional step has no steps", label, "steps")
	}

	validateSteps(res, label+".steps", s.Steps, reg, known)
}

func validateCast(res *diagnostic.Diagnostics, label string, s *Step, reg *forecast.Registry, known []string) {
	if len(s.Steps) > 0 {
		res.AddError("steps_without_when", "nested steps require a when condition", label, "steps")
	}

	if s.Source == "" {
		res.AddError("missing_source", "cast step has no source", label, "source")
	} else if _, err := dotpath.Parse(s.Source); err != nil {
		res.AddError("invalid_source_path", err.Error(), label, "source")
	}

	if s.Target == "" {
		res.AddError("missing_target", "cast step has no target", label, "target")
	} else if p, err := dotpath.Parse(s.Target); err != nil {
		res.AddError("invalid_target_path", err.Error(), label, "target")
	} else if p.HasWildcard() {
		res.AddError("invalid_target_path", fmt.Sprintf("target %q contains a wildcard", s.Target), label, "target")
	}

	for _, name := range s.Type {
		if reg.Has(name) {
			continue
		}

		res.AddWarning("unknown_type",
			fmt.Sprintf("type %q is not defined, the value will be nil", name),
			label, "type",
			match.Suggest(name, known, maxSuggestions)...,
		)
	}
}
