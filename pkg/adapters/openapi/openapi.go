// Package openapi builds model definitions from OpenAPI 3 component schemas.
//
// Only flat object schemas are supported: every property must be a string,
// integer, number or boolean. Nested objects and arrays are rejected.
package openapi

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"math"
	"slices"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/aretw0/fieldset/pkg/model"
	"github.com/aretw0/fieldset/pkg/schema"
)

// AliasExtension names the property extension carrying the external alias.
const AliasExtension = "x-alias"

var (
	// ErrComponentNotFound is returned when the document has no such schema.
	ErrComponentNotFound = errors.New("openapi: component schema not found")
	// ErrUnsupportedType is returned for non-object components and for
	// properties that are not flat primitives.
	ErrUnsupportedType = errors.New("openapi: unsupported schema type")
	// ErrBoundOutOfRange is returned for integer bounds that do not fit in int64.
	ErrBoundOutOfRange = errors.New("openapi: integer bound out of range")
)

// FromDocument loads an OpenAPI document and converts the named component
// schema into a Definition called after the component.
func FromDocument(ctx context.Context, data []byte, component string, opts ...model.Option) (*model.Definition, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, errors.New("openapi: document payload is empty")
	}

	loader := &openapi3.Loader{Context: ctx}
	doc, err := loader.LoadFromData(data)
	if err != nil {
		return nil, fmt.Errorf("openapi: load document: %w", err)
	}
	if err := doc.Validate(ctx, openapi3.DisableExamplesValidation()); err != nil {
		return nil, fmt.Errorf("openapi: validate: %w", err)
	}

	if doc.Components == nil {
		return nil, fmt.Errorf("%w: %s", ErrComponentNotFound, component)
	}
	ref, ok := doc.Components.Schemas[component]
	if !ok || ref == nil || ref.Value == nil {
		return nil, fmt.Errorf("%w: %s", ErrComponentNotFound, component)
	}

	def, err := Convert(component, ref.Value)
	if err != nil {
		return nil, err
	}
	return def.With(opts...), nil
}

// Convert maps an object schema onto a Definition. Properties are declared
// in name order, since OpenAPI property maps carry no order.
func Convert(name string, s *openapi3.Schema) (*model.Definition, error) {
	if s.Type != nil && !s.Type.Is(openapi3.TypeObject) {
		return nil, fmt.Errorf("%w: %s is %v, want object", ErrUnsupportedType, name, s.Type.Slice())
	}

	required := make(map[string]bool, len(s.Required))
	for _, r := range s.Required {
		required[r] = true
	}

	decls := make([]model.Decl, 0, len(s.Properties))
	for _, prop := range slices.Sorted(maps.Keys(s.Properties)) {
		ref := s.Properties[prop]
		if ref == nil || ref.Value == nil {
			return nil, fmt.Errorf("%w: %s.%s has no schema", ErrUnsupportedType, name, prop)
		}
		f, err := convertProperty(ref.Value, required[prop])
		if err != nil {
			return nil, fmt.Errorf("%s.%s: %w", name, prop, err)
		}
		decls = append(decls, model.Attr(prop, f))
	}

	return model.Define(name, decls...)
}

func convertProperty(p *openapi3.Schema, required bool) (schema.Field, error) {
	alias, _ := p.Extensions[AliasExtension].(string)
	var def func() any
	if p.Default != nil {
		v := p.Default
		def = func() any { return v }
	}

	switch {
	case p.Type == nil:
		return nil, fmt.Errorf("%w: missing type", ErrUnsupportedType)
	case p.Type.Is(openapi3.TypeString):
		var maxLength *int
		if p.MaxLength != nil && *p.MaxLength <= math.MaxInt32 {
			n := int(*p.MaxLength)
			maxLength = &n
		}
		return schema.NewString(schema.StringOptions{
			Alias:     alias,
			Required:  required,
			MaxLength: maxLength,
			Default:   def,
		}), nil
	case p.Type.Is(openapi3.TypeInteger):
		lo, err := intBound("minimum", p.Min, math.Ceil)
		if err != nil {
			return nil, err
		}
		hi, err := intBound("maximum", p.Max, math.Floor)
		if err != nil {
			return nil, err
		}
		return schema.NewInt(schema.IntOptions{
			Alias:    alias,
			Required: required,
			Min:      lo,
			Max:      hi,
			Default:  def,
		}), nil
	case p.Type.Is(openapi3.TypeNumber):
		return schema.NewFloat(schema.FloatOptions{
			Alias:    alias,
			Required: required,
			Min:      p.Min,
			Max:      p.Max,
			Default:  def,
		}), nil
	case p.Type.Is(openapi3.TypeBoolean):
		return schema.NewBool(schema.BaseOptions{
			Alias:    alias,
			Required: required,
			Default:  def,
		}), nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedType, p.Type.Slice())
	}
}

// intBound rounds a numeric bound inward so that it stays inclusive for
// integers.
func intBound(name string, v *float64, round func(float64) float64) (*int64, error) {
	if v == nil {
		return nil, nil
	}
	r := round(*v)
	// float64(math.MaxInt64) is 2^63, one past the largest int64.
	if math.IsNaN(r) || r < math.MinInt64 || r >= math.MaxInt64 {
		return nil, fmt.Errorf("%w: %s %v", ErrBoundOutOfRange, name, *v)
	}
	n := int64(r)
	return &n, nil
}
