package forecast

import (
	"fmt"

	"go.uber.org/zap"

	"forecaster/primitive"
	"forecaster/transformer"
	"forecaster/utils"
)

// Registry maps custom type names to transformer functions.
//
// Registration is not synchronized: register everything during
// initialization, after that a Registry may be shared by concurrent Casters.
type Registry struct {
	transformers map[string]transformer.Func
}

func NewRegistry() *Registry {
	return &Registry{transformers: make(map[string]transformer.Func)}
}

// Register adds fn under name. Built-in primitive names and names already
// registered are rejected. fn may be any shape accepted by transformer.Adapt.
func (r *Registry) Register(name string, fn any) error {
	if primitive.IsReserved(name) {
		return fmt.Errorf("%w: %q", ErrReservedName, name)
	}

	if _, ok := r.transformers[name]; ok {
		return fmt.Errorf("%w: %q", ErrAlreadyRegistered, name)
	}

	f, err := transformer.Adapt(fn)
	if err != nil {
		return fmt.Errorf("transformer %q: %w", name, err)
	}

	if r.transformers == nil {
		r.transformers = make(map[string]transformer.Func)
	}

	r.transformers[name] = f
	Logger().Debug("transformer registered", zap.String("type", name))

	return nil
}

// MustRegister is like Register but panics on error.
func (r *Registry) MustRegister(name string, fn any) *Registry {
	if err := r.Register(name, fn); err != nil {
		panic(err)
	}

	return r
}

// Has reports whether name resolves to a built-in or a registered transformer.
func (r *Registry) Has(name string) bool {
	if primitive.IsReserved(name) {
		return true
	}

	_, ok := r.Lookup(name)
	return ok
}

// Lookup returns the custom transformer registered under name.
func (r *Registry) Lookup(name string) (transformer.Func, bool) {
	if r == nil {
		return nil, false
	}

	f, ok := r.transformers[name]
	return f, ok
}

// Names returns the registered custom names in sorted order.
func (r *Registry) Names() []string {
	if r == nil {
		return nil
	}

	return utils.SortedKeys(r.transformers)
}
