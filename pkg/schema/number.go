package schema

import (
	"fmt"
	"math"
)

// IntOptions configures an IntField. Bounds are inclusive.
type IntOptions struct {
	Alias    string
	Required bool
	Min      *int64
	Max      *int64
	Default  func() any
	Messages Messages
	Extra    map[string]any
}

// IntField is an integer field with optional inclusive bounds.
type IntField struct {
	*Base
	min, max *int64
}

// NewInt creates an integer field.
func NewInt(opts IntOptions) *IntField {
	return &IntField{
		Base: NewBase(TypeInt, BaseOptions{
			Alias:    opts.Alias,
			Required: opts.Required,
			Default:  opts.Default,
			Messages: opts.Messages,
			Extra:    opts.Extra,
		}),
		min: clonePtr(opts.Min),
		max: clonePtr(opts.Max),
	}
}

// Bounds returns the configured bounds; nil means open.
func (f *IntField) Bounds() (min, max *int64) { return clonePtr(f.min), clonePtr(f.max) }

func (f *IntField) Validate(value any) error {
	if value == nil {
		return f.checkRequired(nil)
	}
	n, overflow, ok := toInt64(value)
	if !ok {
		return f.typ.Check(value)
	}
	if overflow {
		if f.max != nil {
			return f.rangeError(value)
		}
		return nil
	}
	if (f.min != nil && n < *f.min) || (f.max != nil && n > *f.max) {
		return f.rangeError(value)
	}
	return nil
}

func (f *IntField) rangeError(value any) error {
	return &ValidationError{
		Kind:    KindRange,
		Message: pick(f.messages.Range, rangeMessage(f.min, f.max, value)),
		Value:   value,
	}
}

// FloatOptions configures a FloatField. Bounds are inclusive.
type FloatOptions struct {
	Alias    string
	Required bool
	Min      *float64
	Max      *float64
	Default  func() any
	Messages Messages
	Extra    map[string]any
}

// FloatField is a floating point field with optional inclusive bounds.
type FloatField struct {
	*Base
	min, max *float64
}

// NewFloat creates a floating point field.
func NewFloat(opts FloatOptions) *FloatField {
	return &FloatField{
		Base: NewBase(TypeFloat, BaseOptions{
			Alias:    opts.Alias,
			Required: opts.Required,
			Default:  opts.Default,
			Messages: opts.Messages,
			Extra:    opts.Extra,
		}),
		min: clonePtr(opts.Min),
		max: clonePtr(opts.Max),
	}
}

// Bounds returns the configured bounds; nil means open.
func (f *FloatField) Bounds() (min, max *float64) { return clonePtr(f.min), clonePtr(f.max) }

func (f *FloatField) Validate(value any) error {
	if value == nil {
		return f.checkRequired(nil)
	}
	var x float64
	switch v := value.(type) {
	case float32:
		x = float64(v)
	case float64:
		x = v
	default:
		return f.typ.Check(value)
	}
	// NaN is outside every bound.
	if (f.min != nil && !(x >= *f.min)) || (f.max != nil && !(x <= *f.max)) {
		return &ValidationError{
			Kind:    KindRange,
			Message: pick(f.messages.Range, rangeMessage(f.min, f.max, value)),
			Value:   value,
		}
	}
	return nil
}

// BoolField is a boolean field honoring the required flag.
type BoolField struct {
	*Base
}

// NewBool creates a boolean field.
func NewBool(opts BaseOptions) *BoolField {
	return &BoolField{Base: NewBase(TypeBool, opts)}
}

func (f *BoolField) Validate(value any) error {
	if value == nil {
		return f.checkRequired(nil)
	}
	return f.typ.Check(value)
}

// toInt64 widens any Go integer. overflow is set for unsigned values above
// math.MaxInt64, which are larger than every representable bound.
func toInt64(value any) (n int64, overflow, ok bool) {
	switch v := value.(type) {
	case int:
		return int64(v), false, true
	case int8:
		return int64(v), false, true
	case int16:
		return int64(v), false, true
	case int32:
		return int64(v), false, true
	case int64:
		return v, false, true
	case uint:
		return toInt64(uint64(v))
	case uint8:
		return int64(v), false, true
	case uint16:
		return int64(v), false, true
	case uint32:
		return int64(v), false, true
	case uint64:
		if v > math.MaxInt64 {
			return 0, true, true
		}
		return int64(v), false, true
	}
	return 0, false, false
}

func rangeMessage[T int64 | float64](min, max *T, got any) string {
	switch {
	case min != nil && max != nil:
		return fmt.Sprintf("Expected value between %v and %v, but %v.", *min, *max, got)
	case min != nil:
		return fmt.Sprintf("Expected value of at least %v, but %v.", *min, got)
	default:
		return fmt.Sprintf("Expected value of at most %v, but %v.", *max, got)
	}
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
