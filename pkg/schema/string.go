package schema

import (
	"fmt"
	"unicode/utf8"
)

// StringOptions configures a StringField.
type StringOptions struct {
	Alias    string
	Required bool
	// MaxLength bounds the length in characters. Nil means unbounded;
	// negative values are treated as unbounded too.
	MaxLength *int
	Default   func() any
	Messages  Messages
	Extra     map[string]any
}

// StringField is a string field with presence and maximum-length constraints.
type StringField struct {
	*Base
	maxLength *int
}

// NewString creates a string field.
func NewString(opts StringOptions) *StringField {
	f := &StringField{
		Base: NewBase(TypeString, BaseOptions{
			Alias:    opts.Alias,
			Required: opts.Required,
			Default:  opts.Default,
			Messages: opts.Messages,
			Extra:    opts.Extra,
		}),
	}
	if opts.MaxLength != nil && *opts.MaxLength >= 0 {
		n := *opts.MaxLength
		f.maxLength = &n
	}
	return f
}

// MaxLength returns the configured limit and whether one is set.
func (f *StringField) MaxLength() (int, bool) {
	if f.maxLength == nil {
		return 0, false
	}
	return *f.maxLength, true
}

// Validate enforces required and max length.
// Presence is about nil-ness: an empty string is present.
func (f *StringField) Validate(value any) error {
	if value == nil {
		return f.checkRequired(nil)
	}
	s, ok := value.(string)
	if !ok {
		return f.typ.Check(value)
	}
	if f.maxLength == nil {
		return nil
	}
	if n := utf8.RuneCountInString(s); n > *f.maxLength {
		return &ValidationError{
			Kind:    KindMaxLength,
			Message: pick(f.messages.MaxLength, fmt.Sprintf("Expected value length %d, but %d.", *f.maxLength, n)),
			Value:   value,
		}
	}
	return nil
}
