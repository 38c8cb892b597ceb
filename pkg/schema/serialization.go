package schema

import "fmt"

// MarshalText serializes the type as its name.
func (t Type) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedType, string(t))
	}
	return []byte(t), nil
}

// UnmarshalText parses a type name, accepting the aliases of ParseType.
func (t *Type) UnmarshalText(data []byte) error {
	if t == nil {
		return fmt.Errorf("schema: UnmarshalText on nil pointer")
	}
	parsed, err := ParseType(string(data))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Descriptor is a serializable summary of a Field's schema.
type Descriptor struct {
	Type      Type     `json:"type" yaml:"type"`
	Alias     string   `json:"alias,omitempty" yaml:"alias,omitempty"`
	Required  bool     `json:"required" yaml:"required"`
	MaxLength *int     `json:"max_length,omitempty" yaml:"max_length,omitempty"`
	Min       *float64 `json:"min,omitempty" yaml:"min,omitempty"`
	Max       *float64 `json:"max,omitempty" yaml:"max,omitempty"`
	Messages  Messages `json:"messages,omitzero" yaml:"messages,omitempty"`
}

// Describe summarizes the constraints f enforces. Constraints of unknown
// Field implementations are not visible and are left out. A plain Base never
// enforces presence, so its Required is reported as false whatever it was
// declared with.
func Describe(f Field) Descriptor {
	d := Descriptor{
		Type:     f.Type(),
		Alias:    f.Alias(),
		Required: f.Required(),
	}
	switch v := f.(type) {
	case *StringField:
		if n, ok := v.MaxLength(); ok {
			d.MaxLength = &n
		}
		d.Messages = v.Messages()
	case *IntField:
		lo, hi := v.Bounds()
		d.Min, d.Max = widen(lo), widen(hi)
		d.Messages = v.Messages()
	case *FloatField:
		d.Min, d.Max = v.Bounds()
		d.Messages = v.Messages()
	case *BoolField:
		d.Messages = v.Messages()
	case *Base:
		d.Required = false
		d.Messages = v.Messages()
	}
	return d
}

func widen(p *int64) *float64 {
	if p == nil {
		return nil
	}
	f := float64(*p)
	return &f
}
