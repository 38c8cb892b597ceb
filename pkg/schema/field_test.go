package schema

import (
	"errors"
	"strings"
	"testing"
)

func TestBase_NoConstraints(t *testing.T) {
	f := NewBase(TypeString, BaseOptions{Required: true})

	// Base never enforces anything, not even the required flag.
	for _, v := range []any{nil, "", "anything", 42} {
		if err := f.Validate(v); err != nil {
			t.Errorf("Validate(%v) error = %v, want nil", v, err)
		}
	}
	if !f.Required() {
		t.Error("Required() = false, want true")
	}
}

func TestBase_Options(t *testing.T) {
	extra := map[string]any{"label": "Identifier"}
	f := NewBase(TypeInt, BaseOptions{
		Alias:   "ID",
		Default: func() any { return 7 },
		Extra:   extra,
	})

	if f.Type() != TypeInt {
		t.Errorf("Type() = %q, want %q", f.Type(), TypeInt)
	}
	if f.Alias() != "ID" {
		t.Errorf("Alias() = %q, want %q", f.Alias(), "ID")
	}
	if got := f.Default(); got != 7 {
		t.Errorf("Default() = %v, want 7", got)
	}
	if got := f.Option("label", nil); got != "Identifier" {
		t.Errorf("Option(label) = %v, want Identifier", got)
	}
	if got := f.Option("missing", "fallback"); got != "fallback" {
		t.Errorf("Option(missing) = %v, want fallback", got)
	}

	// The option bag is copied at construction.
	extra["label"] = "changed"
	if got := f.Option("label", nil); got != "Identifier" {
		t.Errorf("Option(label) after caller mutation = %v, want Identifier", got)
	}

	if got := NewBase(TypeInt, BaseOptions{}).Default(); got != nil {
		t.Errorf("Default() without provider = %v, want nil", got)
	}
}

func TestStringField_Validate(t *testing.T) {
	tests := []struct {
		desc     string
		opts     StringOptions
		value    any
		wantKind Kind
	}{
		{"optional nil", StringOptions{}, nil, ""},
		{"required nil", StringOptions{Required: true}, nil, KindRequired},
		{"required empty string is present", StringOptions{Required: true}, "", ""},
		{"within limit", StringOptions{MaxLength: Limit(5)}, "hello", ""},
		{"over limit", StringOptions{MaxLength: Limit(5)}, "hello!", KindMaxLength},
		{"empty over zero limit", StringOptions{MaxLength: Limit(0)}, "", ""},
		{"one char over zero limit", StringOptions{MaxLength: Limit(0)}, "a", KindMaxLength},
		{"runes not bytes", StringOptions{MaxLength: Limit(2)}, "日本", ""},
		{"negative limit is unbounded", StringOptions{MaxLength: Limit(-1)}, strings.Repeat("x", 100), ""},
		{"wrong type", StringOptions{}, 12, KindTypeMismatch},
	}

	for _, tt := range tests {
		f := NewString(tt.opts)
		err := f.Validate(tt.value)
		if got := KindOf(err); got != tt.wantKind {
			t.Errorf("%s: Validate(%v) kind = %q, want %q (err %v)", tt.desc, tt.value, got, tt.wantKind, err)
		}
	}
}

func TestStringField_Messages(t *testing.T) {
	f := NewString(StringOptions{Required: true, MaxLength: Limit(3)})

	if got := Message(f.Validate(nil)); got != "This value was required, but it is nil." {
		t.Errorf("default required message = %q", got)
	}
	if got := Message(f.Validate("abcd")); got != "Expected value length 3, but 4." {
		t.Errorf("default maxlength message = %q", got)
	}

	custom := NewString(StringOptions{
		Required:  true,
		MaxLength: Limit(3),
		Messages:  Messages{Required: "a", MaxLength: "too long"},
	})
	if got := Message(custom.Validate(nil)); got != "a" {
		t.Errorf("custom required message = %q, want %q", got, "a")
	}
	if got := Message(custom.Validate("abcd")); got != "too long" {
		t.Errorf("custom maxlength message = %q, want %q", got, "too long")
	}
}

func TestIntField_Validate(t *testing.T) {
	f := NewInt(IntOptions{Required: true, Min: Limit[int64](0), Max: Limit[int64](150)})

	tests := []struct {
		value    any
		wantKind Kind
	}{
		{0, ""},
		{150, ""},
		{int8(-1), KindRange},
		{151, KindRange},
		{uint64(1 << 63), KindRange},
		{nil, KindRequired},
		{1.5, KindTypeMismatch},
	}

	for _, tt := range tests {
		if got := KindOf(f.Validate(tt.value)); got != tt.wantKind {
			t.Errorf("Validate(%v) kind = %q, want %q", tt.value, got, tt.wantKind)
		}
	}

	open := NewInt(IntOptions{})
	if err := open.Validate(uint64(1 << 63)); err != nil {
		t.Errorf("unbounded Validate(huge) error = %v, want nil", err)
	}
}

func TestIntField_RangeMessage(t *testing.T) {
	tests := []struct {
		opts IntOptions
		want string
	}{
		{IntOptions{Min: Limit[int64](1), Max: Limit[int64](3)}, "Expected value between 1 and 3, but 9."},
		{IntOptions{Min: Limit[int64](10)}, "Expected value of at least 10, but 9."},
		{IntOptions{Max: Limit[int64](3)}, "Expected value of at most 3, but 9."},
		{IntOptions{Max: Limit[int64](3), Messages: Messages{Range: "nope"}}, "nope"},
	}

	for _, tt := range tests {
		got := Message(NewInt(tt.opts).Validate(9))
		if got != tt.want {
			t.Errorf("Validate(9) message = %q, want %q", got, tt.want)
		}
	}
}

func TestFloatField_Validate(t *testing.T) {
	f := NewFloat(FloatOptions{Min: Limit(0.0), Max: Limit(1.0)})

	tests := []struct {
		value    any
		wantKind Kind
	}{
		{nil, ""},
		{0.5, ""},
		{float32(1), ""},
		{1.01, KindRange},
		{-0.1, KindRange},
		{1, KindTypeMismatch},
	}

	for _, tt := range tests {
		if got := KindOf(f.Validate(tt.value)); got != tt.wantKind {
			t.Errorf("Validate(%v) kind = %q, want %q", tt.value, got, tt.wantKind)
		}
	}
}

func TestBoolField_Validate(t *testing.T) {
	f := NewBool(BaseOptions{Required: true})

	if err := f.Validate(false); err != nil {
		t.Errorf("Validate(false) error = %v, want nil", err)
	}
	if !errors.Is(f.Validate(nil), ErrRequired) {
		t.Error("Validate(nil) should match ErrRequired")
	}
	if !errors.Is(f.Validate("yes"), ErrTypeMismatch) {
		t.Error("Validate(yes) should match ErrTypeMismatch")
	}
}

func TestDescribe(t *testing.T) {
	d := Describe(NewString(StringOptions{Alias: "ID", Required: true, MaxLength: Limit(10)}))
	if d.Type != TypeString || d.Alias != "ID" || !d.Required {
		t.Errorf("Describe() = %+v", d)
	}
	if d.MaxLength == nil || *d.MaxLength != 10 {
		t.Errorf("Describe().MaxLength = %v, want 10", d.MaxLength)
	}

	d = Describe(NewInt(IntOptions{Min: Limit[int64](1)}))
	if d.Min == nil || *d.Min != 1 || d.Max != nil {
		t.Errorf("Describe() bounds = %v, %v", d.Min, d.Max)
	}

	base := NewBase(TypeString, BaseOptions{Required: true})
	if err := NewSlot(base).Set(nil, true); err != nil {
		t.Fatalf("Base.Set(nil) = %v, want nil", err)
	}
	if d = Describe(base); d.Required {
		t.Errorf("Describe(Base).Required = true, but Base does not enforce it")
	}
}
