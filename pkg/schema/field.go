package schema

import "maps"

// Field defines the immutable contract of a declared field.
// Implementations determine which constraints a value must satisfy; the
// runtime type check against Type() is done by the Slot before Validate runs.
type Field interface {
	// Type returns the primitive type values must already have.
	Type() Type
	// Alias returns the external key the field may be read from, or "".
	Alias() string
	// Required reports whether a nil value is a violation.
	Required() bool
	// Default returns the value of the default provider, or nil.
	// It is reserved: nothing in this module applies it automatically.
	Default() any
	// Option looks key up in the field's open option bag.
	Option(key string, def any) any
	// Validate checks value against the field's constraints.
	Validate(value any) error
}

// Messages overrides the default message of each constraint.
// Empty entries keep the default.
type Messages struct {
	Required  string `json:"required,omitempty" yaml:"required,omitempty" mapstructure:"required"`
	MaxLength string `json:"maxlength,omitempty" yaml:"maxlength,omitempty" mapstructure:"maxlength"`
	Range     string `json:"range,omitempty" yaml:"range,omitempty" mapstructure:"range"`
}

// BaseOptions configures a Base field.
type BaseOptions struct {
	Alias    string
	Required bool
	Default  func() any
	Messages Messages
	Extra    map[string]any
}

// Base is the generic field of any primitive type.
// Its Validate imposes no constraints; specializations embed it and
// override Validate.
type Base struct {
	typ      Type
	alias    string
	required bool
	def      func() any
	messages Messages
	extra    map[string]any
}

// NewBase creates a field of the given type without constraints.
func NewBase(typ Type, opts BaseOptions) *Base {
	return &Base{
		typ:      typ,
		alias:    opts.Alias,
		required: opts.Required,
		def:      opts.Default,
		messages: opts.Messages,
		extra:    maps.Clone(opts.Extra),
	}
}

func (f *Base) Type() Type         { return f.typ }
func (f *Base) Alias() string      { return f.alias }
func (f *Base) Required() bool     { return f.required }
func (f *Base) Messages() Messages { return f.messages }

func (f *Base) Default() any {
	if f.def == nil {
		return nil
	}
	return f.def()
}

func (f *Base) Option(key string, def any) any {
	if v, ok := f.extra[key]; ok {
		return v
	}
	return def
}

// Validate accepts every value.
func (f *Base) Validate(value any) error { return nil }

func (f *Base) checkRequired(value any) error {
	if value != nil || !f.required {
		return nil
	}
	return &ValidationError{
		Kind:    KindRequired,
		Message: pick(f.messages.Required, "This value was required, but it is nil."),
	}
}

func pick(override, fallback string) string {
	if override != "" {
		return override
	}
	return fallback
}

// Limit returns a pointer to n, for optional constraint parameters.
func Limit[T int | int64 | float64](n T) *T { return &n }
