package model

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aretw0/fieldset/pkg/schema"
)

// FieldRef pairs an attribute name with the slot a Model owns for it.
type FieldRef struct {
	Name string
	Slot *schema.Slot
}

// Model is one record shaped by a Definition.
// It is not safe for concurrent use.
type Model struct {
	def   *Definition
	slots []*schema.Slot
}

// Definition returns the declaration the model was created from.
func (m *Model) Definition() *Definition { return m.def }

// Fields returns the model's fields in declaration order.
func (m *Model) Fields() []FieldRef {
	out := make([]FieldRef, len(m.slots))
	for i, s := range m.slots {
		out[i] = FieldRef{Name: m.def.decls[i].Name, Slot: s}
	}
	return out
}

// Field returns the slot of the named attribute.
func (m *Model) Field(name string) (*schema.Slot, bool) {
	i, ok := m.def.index[name]
	if !ok {
		return nil, false
	}
	return m.slots[i], true
}

// Dump assigns raw values to every field without any check and returns the
// stored values keyed by attribute name. Fields missing from raw become nil.
func (m *Model) Dump(raw Record) Snapshot {
	for i, decl := range m.def.decls {
		// Unchecked Set cannot fail.
		_ = m.slots[i].Set(raw.lookup(decl.Name, decl.Field.Alias()), false)
	}
	return m.Snapshot()
}

// Load assigns raw values through the field checks.
//
// Every field is attempted. A field that fails keeps its previous value and
// gets an entry in the returned ErrorReport. The snapshot is keyed by the
// field alias when one is declared, else by attribute name.
func (m *Model) Load(raw Record) (Snapshot, ErrorReport) {
	report := make(ErrorReport)
	var failures []*FieldErrorEvent

	for i, decl := range m.def.decls {
		err := m.slots[i].Set(raw.lookup(decl.Name, decl.Field.Alias()), true)
		if err == nil {
			continue
		}
		report[decl.Name] = schema.Message(err)
		failures = append(failures, &FieldErrorEvent{
			EventBase: newBase(EventFieldError, m.def.name),
			Field:     decl.Name,
			Err:       attribute(err, decl.Name),
		})
	}

	snapshot := m.external()
	m.def.logger.Debug("record loaded",
		"model", m.def.name,
		"fields", len(m.slots),
		"failed", len(report))

	if h := m.def.hooks.OnFieldError; h != nil {
		for _, e := range failures {
			h(e)
		}
	}
	if h := m.def.hooks.OnLoad; h != nil {
		h(&LoadEvent{
			EventBase: newBase(EventLoad, m.def.name),
			Snapshot:  snapshot,
			Errors:    report,
		})
	}

	return snapshot, report
}

// Validate re-checks the stored values, typically after Dump, without
// changing them.
func (m *Model) Validate() ErrorReport {
	report := make(ErrorReport)
	for i, decl := range m.def.decls {
		if err := m.slots[i].Revalidate(); err != nil {
			report[decl.Name] = schema.Message(err)
		}
	}
	return report
}

// Snapshot returns the stored values keyed by attribute name.
func (m *Model) Snapshot() Snapshot {
	out := make(Snapshot, len(m.slots))
	for i, decl := range m.def.decls {
		out[decl.Name] = m.slots[i].Value()
	}
	return out
}

// external returns the stored values keyed by alias, falling back to the
// attribute name.
func (m *Model) external() Snapshot {
	out := make(Snapshot, len(m.slots))
	for i, decl := range m.def.decls {
		key := decl.Name
		if alias := decl.Field.Alias(); alias != "" {
			key = alias
		}
		out[key] = m.slots[i].Value()
	}
	return out
}

func (m *Model) String() string {
	parts := make([]string, len(m.slots))
	for i, decl := range m.def.decls {
		parts[i] = fmt.Sprintf("%s=%v", decl.Name, m.slots[i])
	}
	return fmt.Sprintf("%s{%s}", m.def.name, strings.Join(parts, ", "))
}

func attribute(err error, name string) error {
	var verr *schema.ValidationError
	if errors.As(err, &verr) {
		return verr.WithKey(name)
	}
	return fmt.Errorf("field %q: %w", name, err)
}
