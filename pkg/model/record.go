package model

import (
	"maps"
	"slices"

	"github.com/mitchellh/mapstructure"

	"github.com/aretw0/fieldset/pkg/schema"
)

// Record is a raw input record: string keys to arbitrary values.
type Record map[string]any

// lookup finds the raw value of a field: by attribute name first, then by
// alias when the name is absent or holds nil.
func (r Record) lookup(name, alias string) any {
	if v, ok := r[name]; ok && v != nil {
		return v
	}
	if alias == "" {
		return nil
	}
	return r[alias]
}

// Snapshot maps keys to the values held by a Model's slots (nil when absent).
type Snapshot map[string]any

// Decode copies the snapshot into out, a pointer to a struct or map, using
// mapstructure field tags.
func (s Snapshot) Decode(out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		ZeroFields:       true,
		TagName:          "mapstructure",
		WeaklyTypedInput: false,
	})
	if err != nil {
		return err
	}
	return dec.Decode(map[string]any(s))
}

// ErrorReport maps attribute names to validation messages.
// An empty report means the record is valid.
type ErrorReport map[string]string

// Valid reports whether no field failed.
func (r ErrorReport) Valid() bool { return len(r) == 0 }

// Fields returns the failing attribute names, sorted.
func (r ErrorReport) Fields() []string {
	return slices.Sorted(maps.Keys(r))
}

// Err folds the report into a *schema.AggregateError, or nil when valid.
// Members are ordered by attribute name.
func (r ErrorReport) Err() error {
	if r.Valid() {
		return nil
	}
	errs := make([]error, 0, len(r))
	for _, name := range r.Fields() {
		errs = append(errs, &schema.ValidationError{Key: name, Message: r[name]})
	}
	return &schema.AggregateError{Errors: errs}
}

// Result is one record's outcome within a batch.
// Errors is nil for dumped records.
type Result struct {
	Snapshot Snapshot    `json:"data"`
	Errors   ErrorReport `json:"errors,omitempty"`
}
