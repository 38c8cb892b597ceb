package schema

import "fmt"

// Slot holds the value one record currently has for a Field.
// A Slot is owned by exactly one record and is not safe for concurrent use.
type Slot struct {
	field Field
	value any
}

// NewSlot creates an empty slot for f.
func NewSlot(f Field) *Slot {
	return &Slot{field: f}
}

// Field returns the schema the slot is bound to.
func (s *Slot) Field() Field { return s.field }

// Value returns the stored value, nil when absent.
func (s *Slot) Value() any { return s.value }

// Set stores value.
//
// With validate=false the value is stored unconditionally, nil included, and
// Set never fails. With validate=true a non-nil value must have the field's
// runtime type and pass Field.Validate; on failure the slot keeps its
// previous value and the *ValidationError is returned.
func (s *Slot) Set(value any, validate bool) error {
	if validate {
		if err := Check(s.field, value); err != nil {
			return err
		}
	}
	s.value = value
	return nil
}

// Revalidate checks the stored value, which may have been set unchecked.
func (s *Slot) Revalidate() error {
	return Check(s.field, s.value)
}

func (s *Slot) String() string {
	return fmt.Sprint(s.value)
}

// Check runs the type check and the field constraints against value without
// storing it.
func Check(f Field, value any) error {
	if value != nil {
		if err := f.Type().Check(value); err != nil {
			return err
		}
	}
	return f.Validate(value)
}
