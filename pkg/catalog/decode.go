package catalog

import (
	"fmt"
	"math"

	"github.com/mitchellh/mapstructure"

	"github.com/aretw0/fieldset/pkg/model"
	"github.com/aretw0/fieldset/pkg/schema"
)

// FieldSpec is the declarative form of one field.
type FieldSpec struct {
	Name      string          `mapstructure:"name"`
	Type      string          `mapstructure:"type"`
	Alias     string          `mapstructure:"alias"`
	Required  bool            `mapstructure:"required"`
	MaxLength *int            `mapstructure:"max_length"`
	Min       *float64        `mapstructure:"min"`
	Max       *float64        `mapstructure:"max"`
	Default   any             `mapstructure:"default"`
	Messages  schema.Messages `mapstructure:"messages"`
	Options   map[string]any  `mapstructure:"options"`
}

func decodeField(raw map[string]any) (model.Decl, error) {
	var spec FieldSpec
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      &spec,
		ErrorUnused: true,
	})
	if err != nil {
		return model.Decl{}, err
	}
	if err := dec.Decode(raw); err != nil {
		return model.Decl{}, fmt.Errorf("failed to decode field: %w", err)
	}
	if spec.Name == "" {
		return model.Decl{}, fmt.Errorf("field missing name")
	}

	f, err := spec.Build()
	if err != nil {
		return model.Decl{}, fmt.Errorf("field %s: %w", spec.Name, err)
	}
	return model.Attr(spec.Name, f), nil
}

// Build creates the schema.Field the spec describes.
func (s FieldSpec) Build() (schema.Field, error) {
	typ, err := schema.ParseType(s.Type)
	if err != nil {
		return nil, err
	}

	if s.MaxLength != nil && typ != schema.TypeString {
		return nil, fmt.Errorf("max_length only applies to string fields, not %s", typ)
	}
	if (s.Min != nil || s.Max != nil) && typ != schema.TypeInt && typ != schema.TypeFloat {
		return nil, fmt.Errorf("min/max only apply to numeric fields, not %s", typ)
	}

	var def func() any
	if s.Default != nil {
		v := s.Default
		def = func() any { return v }
	}

	switch typ {
	case schema.TypeString:
		return schema.NewString(schema.StringOptions{
			Alias:     s.Alias,
			Required:  s.Required,
			MaxLength: s.MaxLength,
			Default:   def,
			Messages:  s.Messages,
			Extra:     s.Options,
		}), nil
	case schema.TypeInt:
		lo, err := wholeBound("min", s.Min)
		if err != nil {
			return nil, err
		}
		hi, err := wholeBound("max", s.Max)
		if err != nil {
			return nil, err
		}
		return schema.NewInt(schema.IntOptions{
			Alias:    s.Alias,
			Required: s.Required,
			Min:      lo,
			Max:      hi,
			Default:  def,
			Messages: s.Messages,
			Extra:    s.Options,
		}), nil
	case schema.TypeFloat:
		return schema.NewFloat(schema.FloatOptions{
			Alias:    s.Alias,
			Required: s.Required,
			Min:      s.Min,
			Max:      s.Max,
			Default:  def,
			Messages: s.Messages,
			Extra:    s.Options,
		}), nil
	default:
		return schema.NewBool(schema.BaseOptions{
			Alias:    s.Alias,
			Required: s.Required,
			Default:  def,
			Messages: s.Messages,
			Extra:    s.Options,
		}), nil
	}
}

func wholeBound(name string, v *float64) (*int64, error) {
	if v == nil {
		return nil, nil
	}
	if *v != math.Trunc(*v) || math.Abs(*v) > math.MaxInt64 {
		return nil, fmt.Errorf("%s must be a whole number for int fields, got %v", name, *v)
	}
	n := int64(*v)
	return &n, nil
}
