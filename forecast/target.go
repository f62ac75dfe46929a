package forecast

import (
	"fmt"
	"reflect"

	"forecaster/transformer"
)

//go:generate go tool stringer -type=TargetKind -output=target_string.go

type TargetKind int

const (
	TargetNone TargetKind = iota
	TargetFunc
	TargetConstructor
	TargetObject
)

// Target selects the shape Get materializes the processed fields into.
// The zero Target returns the processed map itself.
type Target struct {
	kind TargetKind
	fn   func(processed map[string]any) any
	ctor transformer.Signature
	err  error
}

func NoTarget() Target {
	return Target{kind: TargetNone}
}

// FuncTarget hands the processed map to fn and returns whatever it builds.
func FuncTarget(fn func(processed map[string]any) any) Target {
	return Target{kind: TargetFunc, fn: fn}
}

// ConstructorTarget calls factory with the processed map.
//
// Supports factories:
//   - func(map[string]any) T
//   - func(map[string]any) (T, bool)
//   - func(map[string]any) (T, error)
//   - func(map[string]any) (T, bool, error)
//
// The parameter may be any type a map[string]any is assignable to.
// Other values produce a Target that fails with ErrUnresolvedTarget.
func ConstructorTarget(factory any) Target {
	sig, err := transformer.Parse(factory)
	if err == nil && !processedType.AssignableTo(sig.Src) {
		err = fmt.Errorf("factory %s accepts %s", sig.Name, sig.Src)
	}

	return Target{kind: TargetConstructor, ctor: sig, err: err}
}

// ObjectTarget builds a generic struct with one field per top-level key.
func ObjectTarget() Target {
	return Target{kind: TargetObject}
}

// ParseTarget resolves a target by name: "" and "map" return the processed
// map, "object" builds a generic object.
func ParseTarget(name string) (Target, error) {
	switch name {
	case "", "map":
		return NoTarget(), nil
	case "object":
		return ObjectTarget(), nil
	default:
		return Target{}, fmt.Errorf("%w: unknown target %q", ErrUnresolvedTarget, name)
	}
}

func (t Target) Kind() TargetKind { return t.kind }

var processedType = reflect.TypeFor[map[string]any]()

func (t Target) build(processed map[string]any) (any, error) {
	switch t.kind {
	case TargetNone:
		return processed, nil

	case TargetFunc:
		if t.fn == nil {
			return nil, fmt.Errorf("%w: nil function", ErrUnresolvedTarget)
		}

		return t.fn(processed), nil

	case TargetConstructor:
		if t.err != nil {
			return nil, fmt.Errorf("%w: %w", ErrUnresolvedTarget, t.err)
		}

		return t.ctor.Call(processed)

	case TargetObject:
		return newObject(processed), nil

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnresolvedTarget, t.kind)
	}
}
