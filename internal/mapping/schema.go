package mapping

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"forecaster/forecast"
)

// PlanFile represents the root of a YAML cast plan.
type PlanFile struct {
	// Version of the plan schema (for future compatibility).
	Version string `yaml:"version,omitempty"`

	// Into names the target the result is materialized into.
	Into string `yaml:"into,omitempty"`

	// Steps are applied in order.
	Steps []Step `yaml:"steps"`
}

// Step is either a cast of one field or a conditional group of steps.
type Step struct {
	// Source is the dotted path read from the record.
	Source string `yaml:"source,omitempty"`

	// Target is the dotted path written to the result.
	Target string `yaml:"target,omitempty"`

	// Type lists the type names applied to the value, in order.
	Type TypeChain `yaml:"type,omitempty"`

	// All casts every element of a sequence field.
	All bool `yaml:"all,omitempty"`

	// When is a dotted path into the record. Steps run when its value is truthy.
	When string `yaml:"when,omitempty"`

	Steps []Step `yaml:"steps,omitempty"`
}

// IsBranch reports whether the step is a conditional group.
func (s Step) IsBranch() bool {
	return s.When != ""
}

// IsCast reports whether any cast field is set.
func (s Step) IsCast() bool {
	return s.Source != "" || s.Target != "" || !s.Type.IsEmpty() || s.All
}

// Directives converts the type names to Caster directives.
func (s Step) Directives() []forecast.Directive {
	out := make([]forecast.Directive, len(s.Type))
	for i, name := range s.Type {
		out[i] = forecast.Type(name)
	}

	return out
}

// TypeChain holds one or more type names.
// YAML formats supported:
//   - Single string: "int"
//   - Array of strings: [string, upper]
type TypeChain []string

// UnmarshalYAML accepts either a single string or an array of strings.
func (t *TypeChain) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var str string

		if err := node.Decode(&str); err != nil {
			return err
		}

		if str != "" {
			*t = TypeChain{str}
		} else {
			*t = TypeChain{}
		}

		return nil

	case yaml.SequenceNode:
		var arr []string

		if err := node.Decode(&arr); err != nil {
			return err
		}

		*t = arr

		return nil

	default:
		return fmt.Errorf("line %d: expected type name or list of type names", node.Line)
	}
}

// MarshalYAML outputs a single string if length is 1, otherwise an array.
func (t TypeChain) MarshalYAML() (any, error) {
	if len(t) == 1 {
		return t[0], nil
	}

	return []string(t), nil
}

// IsEmpty returns true if no type is named.
func (t TypeChain) IsEmpty() bool {
	return len(t) == 0
}
