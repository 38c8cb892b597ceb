// Package schema provides typed, constrained field declarations and the
// per-instance value slots that hold data for them.
//
// A Field is the immutable half: its primitive Type, an optional external
// alias, the required flag, kind specific constraints and message overrides.
// A Slot is the mutable half: it pairs a Field with the value currently held
// by one record. Fields are safe to share between any number of records;
// slots never are.
//
// Basic usage:
//
//	id := schema.NewString(schema.StringOptions{
//	    Alias:     "ID",
//	    Required:  true,
//	    MaxLength: schema.Limit(10),
//	})
//
//	slot := schema.NewSlot(id)
//	if err := slot.Set("abc", true); err != nil {
//	    // err is a *schema.ValidationError
//	}
//
// Set with validate=false stores any value unchecked ("dump"); with
// validate=true ("load") the value must already be of the declared type and
// satisfy the field's constraints, otherwise the slot is left untouched and a
// *ValidationError is returned:
//
//	err := slot.Set(42, true)
//	errors.Is(err, schema.ErrTypeMismatch) // true
//
// Types are never coerced. A field declared as TypeInt rejects float64(1)
// just like it rejects "1".
//
// This package has no dependencies beyond the Go standard library so it can be
// embedded wherever records need shape checks.
package schema
