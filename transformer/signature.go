package transformer

import (
	"errors"
	"fmt"
	"path"
	"reflect"
	"runtime"
	"strings"

	"forecaster/primitive"
	"forecaster/utils"
)

var (
	ErrIsNotACaster         = errors.New("provided function is not a recognizable caster")
	ErrCasterIsNotAFunction = errors.New("provided caster is not a function")
	ErrDoublePointer        = errors.New("caster function does not support double pointers")
	ErrArgumentType         = errors.New("value does not fit the caster argument")
)

// Signature describes a caster-shaped function and holds it for invocation.
type Signature struct {
	Src, Dst     reflect.Type
	PackageAlias string
	Name         string
	HasBool      bool
	HasErr       bool

	fn reflect.Value
}

// Parse inspects the provided function and returns its Signature if it is a valid caster function.
//
// Supports interfaces:
//   - func(src Type) (dst Type)
//   - func(src Type) (dst Type, bool)
//   - func(src Type) (dst Type, error)
//   - func(src Type) (dst Type, bool, error)
func Parse(fn any) (Signature, error) {
	if fn == nil {
		return Signature{}, ErrCasterIsNotAFunction
	}

	fnVal := reflect.ValueOf(fn)
	fnType := fnVal.Type()
	if fnType.Kind() != reflect.Func {
		return Signature{}, ErrCasterIsNotAFunction
	}

	if fnVal.IsNil() || fnType.IsVariadic() || fnType.NumIn() != 1 || fnType.NumOut() == 0 {
		return Signature{}, ErrIsNotACaster
	}

	src := fnType.In(0)
	if src.Kind() == reflect.Ptr && src.Elem().Kind() == reflect.Ptr {
		return Signature{}, ErrDoublePointer
	}

	dst := fnType.Out(0)
	if dst.Kind() == reflect.Ptr && dst.Elem().Kind() == reflect.Ptr {
		return Signature{}, ErrDoublePointer
	}

	fnPC := runtime.FuncForPC(fnVal.Pointer())
	alias, name := "", ""
	if fnPC != nil {
		alias, name = utils.Unpack2(strings.SplitN(fnPC.Name(), ".", 2))
	}

	sig := Signature{
		Src:          src,
		Dst:          dst,
		Name:         name,
		PackageAlias: utils.Second(path.Split(alias)),
		fn:           fnVal,
	}

	switch fnType.NumOut() {
	default:
		return Signature{}, ErrIsNotACaster

	case 1:
		return sig, nil

	case 2:
		last := fnType.Out(1)

		switch {
		default:
			return Signature{}, ErrIsNotACaster
		case last.Kind() == reflect.Bool:
			sig.HasBool = true
		case isError(last):
			sig.HasErr = true
		}
		return sig, nil

	case 3:
		tbool, terr := fnType.Out(1), fnType.Out(2)
		if tbool.Kind() != reflect.Bool || !isError(terr) {
			return Signature{}, ErrIsNotACaster
		}

		sig.HasBool = true
		sig.HasErr = true
		return sig, nil
	}
}

// Call invokes the function with value converted to its argument type.
// A false bool result yields nil.
func (s Signature) Call(value any) (any, error) {
	if !s.fn.IsValid() {
		return nil, ErrIsNotACaster
	}

	arg, err := argument(s.Src, value)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.Name, err)
	}

	out := s.fn.Call([]reflect.Value{arg})

	if s.HasErr {
		if errVal := out[len(out)-1]; !isNil(errVal) {
			return nil, errVal.Interface().(error)
		}
	}

	if s.HasBool && !out[1].Bool() {
		return nil, nil
	}

	return out[0].Interface(), nil
}

// argument prepares value to be passed as a parameter of type src.
// nil becomes the zero value, numbers convert between numeric kinds.
func argument(src reflect.Type, value any) (reflect.Value, error) {
	if value == nil {
		return reflect.Zero(src), nil
	}

	rv := reflect.ValueOf(value)
	if rv.Type().AssignableTo(src) {
		return rv, nil
	}

	from, to := primitive.FromReflectType(rv.Type()), primitive.FromReflectType(src)
	switch {
	case from.IsNumber() && to.IsNumber(), from == to && from != 0:
		return rv.Convert(src), nil
	}

	return reflect.Value{}, fmt.Errorf("%w: have %s, want %s", ErrArgumentType, rv.Type(), src)
}

func isNil(v reflect.Value) bool {
	switch v.Kind() {
	default:
		return false
	case reflect.Interface, reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return v.IsNil()
	}
}

func isError(t reflect.Type) bool {
	if t == nil {
		return false
	}

	terr := reflect.TypeOf((*error)(nil)).Elem()

	return t.Implements(terr)
}
