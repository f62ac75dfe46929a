package forecast

import (
	"fmt"
	"io"
	"reflect"

	"github.com/davecgh/go-spew/spew"
	"go.uber.org/zap"

	"forecaster/dotpath"
	"forecaster/primitive"
)

// Condition is the callback form of a When condition.
type Condition func(record any, processed map[string]any) bool

// Caster reads fields from a source record, converts them and accumulates
// the results under output paths. Methods chain, the first error stops the
// chain and is returned by Get.
//
// A Caster is not safe for concurrent use.
type Caster struct {
	record    any
	processed map[string]any
	cfg       Config
	err       error
}

// Make creates a Caster over record with DefaultConfig.
func Make(record any) *Caster {
	return New(record, DefaultConfig())
}

// New creates a Caster over record.
func New(record any, cfg Config) *Caster {
	return &Caster{
		record:    record,
		processed: make(map[string]any),
		cfg:       cfg,
	}
}

// Forecast is shorthand for Make.
func Forecast(item any) *Caster {
	return Make(item)
}

// Cast reads source, runs the value through directives in order and writes
// the result at output. A missing source field is read as nil.
func (c *Caster) Cast(source, output string, directives ...Directive) *Caster {
	if c.err != nil {
		return c
	}

	value, err := c.apply(dotpath.Value(c.record, source), source, output, directives)
	if err != nil {
		return c.fail("cast", source, output, err)
	}

	if err := dotpath.Set(c.processed, output, value); err != nil {
		return c.fail("cast", source, output, err)
	}

	return c
}

// CastAll is like Cast for a sequence field: directives are applied to each
// element and output receives a []any in the same order.
func (c *Caster) CastAll(source, output string, directives ...Directive) *Caster {
	if c.err != nil {
		return c
	}

	value := dotpath.Value(c.record, source)
	if !dotpath.IsSequence(value) {
		return c.fail("cast_all", source, output, fmt.Errorf("%w: got %T", ErrTypeMismatch, value))
	}

	elems, _ := dotpath.Elements(value)
	out := make([]any, len(elems))

	for i, elem := range elems {
		v, err := c.apply(elem, source, output, directives)
		if err != nil {
			return c.fail("cast_all", source, output, fmt.Errorf("element %d: %w", i, err))
		}

		out[i] = v
	}

	if err := dotpath.Set(c.processed, output, out); err != nil {
		return c.fail("cast_all", source, output, err)
	}

	return c
}

// When runs callback with the Caster if condition holds. condition may be
// a bool, a Condition or any other function taking up to two parameters,
// which are passed the record and the processed fields. A function's first
// result and any other value are tested with primitive.Truthy.
// A function that cannot be called that way fails the chain with ErrInvalidCondition.
func (c *Caster) When(condition any, callback func(*Caster)) *Caster {
	if c.err != nil || callback == nil {
		return c
	}

	ok, err := c.holds(condition)
	if err != nil {
		return c.fail("when", "", "", err)
	}

	if ok {
		callback(c)
	}

	return c
}

func (c *Caster) holds(condition any) (bool, error) {
	switch cond := condition.(type) {
	case bool:
		return cond, nil
	case func() bool:
		return cond != nil && cond(), nil
	case Condition:
		return cond != nil && cond(c.record, c.processed), nil
	case func(any, map[string]any) bool:
		return cond != nil && cond(c.record, c.processed), nil
	}

	fn := reflect.ValueOf(condition)
	if fn.Kind() != reflect.Func {
		return primitive.Truthy(condition), nil
	}

	return c.callCondition(fn)
}

// callCondition invokes a condition function of any other shape: up to two
// parameters receiving the record and the processed fields, a first result
// tested for truthiness and an optional trailing error.
func (c *Caster) callCondition(fn reflect.Value) (bool, error) {
	ft := fn.Type()
	if fn.IsNil() || ft.IsVariadic() || ft.NumIn() > 2 || ft.NumOut() == 0 || ft.NumOut() > 2 {
		return false, fmt.Errorf("%w: %s", ErrInvalidCondition, ft)
	}

	if ft.NumOut() == 2 && !ft.Out(1).Implements(errorType) {
		return false, fmt.Errorf("%w: %s", ErrInvalidCondition, ft)
	}

	values := []any{c.record, c.processed}
	args := make([]reflect.Value, ft.NumIn())

	for i := range args {
		arg, ok := conditionArg(ft.In(i), values[i])
		if !ok {
			return false, fmt.Errorf("%w: %s cannot take %T as parameter %d", ErrInvalidCondition, ft, values[i], i+1)
		}

		args[i] = arg
	}

	out := fn.Call(args)
	if len(out) == 2 && !out[1].IsNil() {
		return false, out[1].Interface().(error)
	}

	return primitive.Truthy(out[0].Interface()), nil
}

var errorType = reflect.TypeFor[error]()

func conditionArg(param reflect.Type, value any) (reflect.Value, bool) {
	if value == nil {
		return reflect.Zero(param), true
	}

	rv := reflect.ValueOf(value)
	if !rv.Type().AssignableTo(param) {
		return reflect.Value{}, false
	}

	return rv, true
}

// Get materializes the processed fields into target.
func (c *Caster) Get(target Target) (any, error) {
	if c.err != nil {
		return nil, c.err
	}

	c.cfg.logger().Debug("materializing",
		zap.Stringer("target", target.Kind()),
		zap.Int("fields", len(c.processed)),
	)

	return target.build(c.processed)
}

// Into is an alias of Get.
//
// Deprecated: use Get.
func (c *Caster) Into(target Target) (any, error) {
	return c.Get(target)
}

// Processed returns the accumulated fields.
func (c *Caster) Processed() (map[string]any, error) {
	if c.err != nil {
		return nil, c.err
	}

	return c.processed, nil
}

// Err returns the first error recorded by the chain.
func (c *Caster) Err() error {
	return c.err
}

// Record returns the source record.
func (c *Caster) Record() any {
	return c.record
}

var dumpConfig = spew.ConfigState{
	Indent:                  "  ",
	SortKeys:                true,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
}

// Dump writes a readable representation of the accumulated fields to w.
func (c *Caster) Dump(w io.Writer) {
	dumpConfig.Fdump(w, c.processed)
}

// GetAs is Get with the result asserted to T.
func GetAs[T any](c *Caster, target Target) (T, error) {
	var zero T

	v, err := c.Get(target)
	if err != nil {
		return zero, err
	}

	t, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("%w: have %T, want %T", ErrUnresolvedTarget, v, zero)
	}

	return t, nil
}

func (c *Caster) apply(value any, source, output string, directives []Directive) (any, error) {
	var err error

	for _, d := range directives {
		value, err = c.resolve(d, value, source, output)
		if err != nil {
			return nil, err
		}
	}

	return value, nil
}

func (c *Caster) resolve(d Directive, value any, source, output string) (any, error) {
	switch d.kind {
	default:
		return value, nil

	case DirectiveType:
		if kind, ok := primitive.Lookup(d.name); ok {
			return primitive.Coerce(kind, value, c.cfg.Coercion), nil
		}

		if fn, ok := c.cfg.Registry.Lookup(d.name); ok {
			return fn(value)
		}

		c.cfg.logger().Debug("unknown transformer type",
			zap.String("type", d.name),
			zap.String("source", source),
			zap.String("output", output),
		)

		return nil, nil

	case DirectiveFunc:
		if d.err != nil {
			return nil, d.err
		}

		return d.fn(value)

	case DirectiveTransformer:
		if d.tr == nil {
			return nil, nil
		}

		return d.tr.Cast(source, output, c.record, c.processed)
	}
}

func (c *Caster) fail(op, source, output string, err error) *Caster {
	c.err = &FieldError{Op: op, Source: source, Output: output, Err: err}
	c.cfg.logger().Debug("cast failed", zap.Error(c.err))

	return c
}
