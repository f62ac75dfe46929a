package transformer

// Func is the uniform shape every value transformer is reduced to.
type Func func(value any) (any, error)

// Adapt turns a caster-shaped function into a Func.
// Func, func(any) any and func(any) (any, error) are used directly,
// anything else goes through Parse.
func Adapt(fn any) (Func, error) {
	switch f := fn.(type) {
	case Func:
		if f == nil {
			return nil, ErrIsNotACaster
		}

		return f, nil
	case func(any) (any, error):
		if f == nil {
			return nil, ErrIsNotACaster
		}

		return f, nil
	case func(any) any:
		if f == nil {
			return nil, ErrIsNotACaster
		}

		return func(value any) (any, error) { return f(value), nil }, nil
	}

	sig, err := Parse(fn)
	if err != nil {
		return nil, err
	}

	return sig.Call, nil
}

// MustAdapt is like Adapt but panics if fn is not a caster.
func MustAdapt(fn any) Func {
	f, err := Adapt(fn)
	if err != nil {
		panic(err)
	}

	return f
}
