package model

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/aretw0/fieldset/internal/logging"
	"github.com/aretw0/fieldset/pkg/schema"
)

// ErrInvalidDefinition is returned by Define for malformed declarations.
var ErrInvalidDefinition = errors.New("invalid model definition")

// Decl declares one named field of a model.
type Decl struct {
	Name  string
	Field schema.Field
}

// Attr declares a field under an attribute name.
func Attr(name string, f schema.Field) Decl {
	return Decl{Name: name, Field: f}
}

// Definition is the immutable, ordered field declaration of a model type.
// It is safe for concurrent use; the Models it creates are not.
type Definition struct {
	name   string
	decls  []Decl
	index  map[string]int
	hooks  Hooks
	logger *slog.Logger
}

// Option defines a functional option for configuring a Definition.
type Option func(*Definition)

// WithHooks registers observability hooks, replacing previous ones.
func WithHooks(hooks Hooks) Option {
	return func(d *Definition) {
		d.hooks = hooks
	}
}

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(d *Definition) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// Define builds a Definition from an ordered list of fields.
// Attribute names must be non-empty and unique, and every field non-nil.
// External keys (the alias, else the attribute name) must be unique too,
// since Load snapshots are keyed by them.
func Define(name string, decls ...Decl) (*Definition, error) {
	d := &Definition{
		name:   name,
		decls:  make([]Decl, 0, len(decls)),
		index:  make(map[string]int, len(decls)),
		logger: logging.NewNop(),
	}
	external := make(map[string]string, len(decls))

	for i, decl := range decls {
		if strings.TrimSpace(decl.Name) == "" {
			return nil, fmt.Errorf("%w: %s: field %d has no name", ErrInvalidDefinition, name, i)
		}
		if decl.Field == nil {
			return nil, fmt.Errorf("%w: %s: field %q has no schema", ErrInvalidDefinition, name, decl.Name)
		}
		if _, dup := d.index[decl.Name]; dup {
			return nil, fmt.Errorf("%w: %s: duplicate field %q", ErrInvalidDefinition, name, decl.Name)
		}
		key := decl.Name
		if alias := decl.Field.Alias(); alias != "" {
			key = alias
		}
		if other, dup := external[key]; dup {
			return nil, fmt.Errorf("%w: %s: fields %q and %q share external key %q", ErrInvalidDefinition, name, other, decl.Name, key)
		}
		external[key] = decl.Name
		d.index[decl.Name] = len(d.decls)
		d.decls = append(d.decls, decl)
	}

	return d, nil
}

// MustDefine is like Define but panics on error.
// It is meant for package-level declarations.
func MustDefine(name string, decls ...Decl) *Definition {
	d, err := Define(name, decls...)
	if err != nil {
		panic(err)
	}
	return d
}

// With returns a copy of d configured by opts. The field schemas are shared.
func (d *Definition) With(opts ...Option) *Definition {
	c := *d
	for _, opt := range opts {
		opt(&c)
	}
	return &c
}

// Name returns the model type name.
func (d *Definition) Name() string { return d.name }

// Len returns the number of declared fields.
func (d *Definition) Len() int { return len(d.decls) }

// Fields returns the declarations in order.
func (d *Definition) Fields() []Decl {
	out := make([]Decl, len(d.decls))
	copy(out, d.decls)
	return out
}

// Lookup returns the field declared under name.
func (d *Definition) Lookup(name string) (schema.Field, bool) {
	i, ok := d.index[name]
	if !ok {
		return nil, false
	}
	return d.decls[i].Field, true
}

// New creates a Model with a fresh, empty slot per field.
func (d *Definition) New() *Model {
	m := &Model{
		def:   d,
		slots: make([]*schema.Slot, len(d.decls)),
	}
	for i, decl := range d.decls {
		m.slots[i] = schema.NewSlot(decl.Field)
	}
	return m
}

// NewFrom creates a Model and dumps raw into it.
func (d *Definition) NewFrom(raw Record) *Model {
	m := d.New()
	m.Dump(raw)
	return m
}

// NewList creates an empty ListModel.
func (d *Definition) NewList() *ListModel {
	return &ListModel{def: d}
}

// NewListFrom creates a ListModel and dumps raws into it.
func (d *Definition) NewListFrom(raws []Record) *ListModel {
	l := d.NewList()
	l.Dumps(raws)
	return l
}
