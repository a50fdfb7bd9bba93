package intrographics

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
)

// checkArgs validates the count of a dynamically supplied argument list
// against the named parameters, of which the first required are mandatory.
func checkArgs(op string, args []any, required int, names ...string) error {
	if len(args) > len(names) {
		return extraArguments(op, len(args), len(names))
	}
	if len(args) < required {
		return missingArgument(op, names[len(args)])
	}
	for i := 0; i < required; i++ {
		if args[i] == nil {
			return missingArgument(op, names[i])
		}
	}
	return nil
}

// checkOptional rejects more than one value for a trailing optional
// parameter and returns the value or def.
func checkOptional[T any](op string, values []T, def T) (T, error) {
	switch len(values) {
	case 0:
		return def, nil
	case 1:
		return values[0], nil
	}
	return def, extraArguments(op, len(values), 1)
}

// coerceInt converts a dynamically typed argument to an int. Integral
// types convert directly, floats truncate toward zero and strings must hold
// a base-10 integer.
func coerceInt(op, name string, v any) (int, error) {
	switch x := v.(type) {
	case nil:
		return 0, missingArgument(op, name)
	case int:
		return x, nil
	case int8:
		return int(x), nil
	case int16:
		return int(x), nil
	case int32:
		return int(x), nil
	case int64:
		return int(x), nil
	case uint:
		return int(x), nil
	case uint8:
		return int(x), nil
	case uint16:
		return int(x), nil
	case uint32:
		return int(x), nil
	case uint64:
		if x > math.MaxInt {
			return 0, invalidArgument(op, name, v)
		}
		return int(x), nil
	case float32:
		return truncate(op, name, float64(x))
	case float64:
		return truncate(op, name, x)
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(x))
		if err != nil {
			return 0, invalidArgument(op, name, v)
		}
		return n, nil
	}
	return 0, invalidArgument(op, name, v)
}

func truncate(op, name string, f float64) (int, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f > math.MaxInt || f < math.MinInt {
		return 0, invalidArgument(op, name, f)
	}
	return int(f), nil
}

// coerceString converts a scalar argument to its string form.
func coerceString(op, name string, v any) (string, error) {
	switch x := v.(type) {
	case nil:
		return "", missingArgument(op, name)
	case string:
		return x, nil
	case fmt.Stringer:
		return x.String(), nil
	case bool, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return fmt.Sprint(x), nil
	case float32:
		return strconv.FormatFloat(float64(x), 'g', -1, 32), nil
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64), nil
	}
	return "", invalidArgument(op, name, v)
}

// coercePoint converts a two-element list into a Point.
func coercePoint(op, name string, v any) (Point, error) {
	if p, ok := v.(Point); ok {
		return p, nil
	}
	list, ok := v.([]any)
	if !ok {
		return Point{}, invalidArgument(op, name, v)
	}
	if len(list) != 2 {
		return Point{}, newError(op, KindInvalidArgument, "argument %s must be an [x, y] pair, got %d value(s)", name, len(list))
	}
	x, err := coerceInt(op, name+".x", list[0])
	if err != nil {
		return Point{}, err
	}
	y, err := coerceInt(op, name+".y", list[1])
	if err != nil {
		return Point{}, err
	}
	return Pt(x, y), nil
}

// requireAtLeast reports a restricted value when v < lo.
func requireAtLeast(op, name string, v, lo int) error {
	if v < lo {
		return restrictedValue(op, name, v, fmt.Sprintf("must be at least %d", lo))
	}
	return nil
}

// callbackOf validates that fn is a function taking no arguments or exactly
// one argument assignable from arg, and returns a uniform caller for it.
// Results returned by fn are discarded.
func callbackOf(op string, fn any, arg reflect.Type) (func(reflect.Value), error) {
	if fn == nil {
		return nil, missingArgument(op, "handler")
	}
	rv := reflect.ValueOf(fn)
	if rv.Kind() != reflect.Func {
		return nil, invalidArgument(op, "handler", fn)
	}
	if rv.IsNil() {
		return nil, missingArgument(op, "handler")
	}
	t := rv.Type()
	if t.IsVariadic() || t.NumIn() > 1 {
		return nil, newError(op, KindHandlerArity, "handler accepts %d argument(s), want 0 or 1", t.NumIn())
	}
	if t.NumIn() == 0 {
		return func(reflect.Value) { rv.Call(nil) }, nil
	}
	if !arg.AssignableTo(t.In(0)) {
		return nil, newError(op, KindInvalidArgument, "handler parameter %s cannot accept %s", t.In(0), arg)
	}
	return func(v reflect.Value) { rv.Call([]reflect.Value{v}) }, nil
}
