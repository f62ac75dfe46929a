package forecast

import (
	"fmt"

	"forecaster/transformer"
)

//go:generate go tool stringer -type=DirectiveKind -output=directive_string.go

type DirectiveKind int

const (
	DirectiveNone DirectiveKind = iota
	DirectiveType
	DirectiveFunc
	DirectiveTransformer
)

// Transformer converts a single field with access to the whole record and
// everything cast so far. processed is the live accumulator and must not be modified.
type Transformer interface {
	Cast(source, output string, record any, processed map[string]any) (any, error)
}

// TransformerFunc adapts a plain function to Transformer.
type TransformerFunc func(source, output string, record any, processed map[string]any) (any, error)

func (f TransformerFunc) Cast(source, output string, record any, processed map[string]any) (any, error) {
	return f(source, output, record, processed)
}

// Directive tells a Caster how to convert a value. The zero Directive keeps
// the value unchanged.
type Directive struct {
	kind DirectiveKind
	name string
	fn   transformer.Func
	err  error
	tr   Transformer
}

// Type refers to a built-in primitive or a registered custom transformer by name.
// Names are resolved when the directive is applied, an unknown name yields nil.
func Type(name string) Directive {
	return Directive{kind: DirectiveType, name: name}
}

// Fn wraps a caster-shaped function, see transformer.Adapt for accepted shapes.
// An unsupported function fails the Cast it is used in.
func Fn(fn any) Directive {
	f, err := transformer.Adapt(fn)
	return Directive{kind: DirectiveFunc, fn: f, err: err}
}

// With wraps a Transformer object.
func With(t Transformer) Directive {
	return Directive{kind: DirectiveTransformer, tr: t}
}

func (d Directive) Kind() DirectiveKind { return d.kind }

// Name returns the type name of a DirectiveType, "" otherwise.
func (d Directive) Name() string { return d.name }

func (d Directive) String() string {
	switch d.kind {
	case DirectiveType:
		return "type(" + d.name + ")"
	case DirectiveFunc:
		return "func"
	case DirectiveTransformer:
		return fmt.Sprintf("transformer(%T)", d.tr)
	default:
		return "none"
	}
}
