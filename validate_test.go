package intrographics

import (
	"reflect"
	"testing"
)

func TestCheckArgs(t *testing.T) {
	names := []string{"x", "y", "message"}
	tests := []struct {
		name     string
		args     []any
		required int
		want     ErrorKind
	}{
		{"exact", []any{1, 2, "hi"}, 3, KindUnknown},
		{"optional omitted", []any{1, 2}, 2, KindUnknown},
		{"too many", []any{1, 2, "hi", 4}, 2, KindExtraArguments},
		{"too few", []any{1}, 2, KindMissingArgument},
		{"nil required", []any{1, nil}, 2, KindMissingArgument},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkArgs("op", tt.args, tt.required, names...)
			if tt.want == KindUnknown {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			wantKind(t, err, tt.want)
		})
	}
}

func TestCheckOptional(t *testing.T) {
	v, err := checkOptional("op", nil, "def")
	if err != nil || v != "def" {
		t.Errorf("no value: got %q, %v", v, err)
	}
	v, err = checkOptional("op", []string{"a"}, "def")
	if err != nil || v != "a" {
		t.Errorf("one value: got %q, %v", v, err)
	}
	_, err = checkOptional("op", []string{"a", "b"}, "def")
	wantKind(t, err, KindExtraArguments)
}

func TestCoerceInt(t *testing.T) {
	tests := []struct {
		in   any
		want int
		kind ErrorKind
	}{
		{7, 7, KindUnknown},
		{int64(-3), -3, KindUnknown},
		{uint8(200), 200, KindUnknown},
		{2.9, 2, KindUnknown},
		{-2.9, -2, KindUnknown},
		{" 42 ", 42, KindUnknown},
		{"4.5", 0, KindInvalidArgument},
		{"abc", 0, KindInvalidArgument},
		{[]int{1}, 0, KindInvalidArgument},
		{nil, 0, KindMissingArgument},
	}
	for _, tt := range tests {
		got, err := coerceInt("op", "n", tt.in)
		if tt.kind != KindUnknown {
			wantKind(t, err, tt.kind)
			continue
		}
		if err != nil {
			t.Errorf("coerceInt(%v): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("coerceInt(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestCoerceString(t *testing.T) {
	tests := []struct {
		in   any
		want string
	}{
		{"hi", "hi"},
		{12, "12"},
		{1.5, "1.5"},
		{true, "true"},
		{RGB{R: 255}, "#ff0000"},
	}
	for _, tt := range tests {
		got, err := coerceString("op", "s", tt.in)
		if err != nil {
			t.Errorf("coerceString(%v): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("coerceString(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
	_, err := coerceString("op", "s", []string{"x"})
	wantKind(t, err, KindInvalidArgument)
}

func TestCoercePoint(t *testing.T) {
	p, err := coercePoint("op", "p", []any{3, "4"})
	if err != nil {
		t.Fatal(err)
	}
	if p != Pt(3, 4) {
		t.Errorf("point = %v, want (3,4)", p)
	}
	_, err = coercePoint("op", "p", []any{1, 2, 3})
	wantKind(t, err, KindInvalidArgument)
	_, err = coercePoint("op", "p", 5)
	wantKind(t, err, KindInvalidArgument)
}

func TestRequireAtLeast(t *testing.T) {
	if err := requireAtLeast("op", "n", 1, 1); err != nil {
		t.Errorf("boundary value rejected: %v", err)
	}
	wantKind(t, requireAtLeast("op", "n", 0, 1), KindRestrictedValue)
}

func TestCallbackOf(t *testing.T) {
	argType := reflect.TypeOf(0)
	var got []int

	call, err := callbackOf("op", func() { got = append(got, -1) }, argType)
	if err != nil {
		t.Fatal(err)
	}
	call(reflect.ValueOf(5))

	call, err = callbackOf("op", func(n int) { got = append(got, n) }, argType)
	if err != nil {
		t.Fatal(err)
	}
	call(reflect.ValueOf(5))

	call, err = callbackOf("op", func(v any) int { got = append(got, v.(int)*2); return 0 }, argType)
	if err != nil {
		t.Fatal(err)
	}
	call(reflect.ValueOf(5))

	if !reflect.DeepEqual(got, []int{-1, 5, 10}) {
		t.Errorf("calls = %v, want [-1 5 10]", got)
	}

	tests := []struct {
		name string
		fn   any
		kind ErrorKind
	}{
		{"nil", nil, KindMissingArgument},
		{"nil func", (func())(nil), KindMissingArgument},
		{"not a func", 42, KindInvalidArgument},
		{"two params", func(a, b int) {}, KindHandlerArity},
		{"variadic", func(a ...int) {}, KindHandlerArity},
		{"wrong param", func(s string) {}, KindInvalidArgument},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := callbackOf("op", tt.fn, argType)
			wantKind(t, err, tt.kind)
		})
	}
}
