package schema

import (
	"fmt"
	"strings"
)

// Type is the primitive type tag of a field.
type Type string

const (
	TypeString Type = "string"
	TypeInt    Type = "int"
	TypeFloat  Type = "float"
	TypeBool   Type = "bool"
)

// Name returns the human-readable name of the type (e.g., "string", "int").
func (t Type) Name() string { return string(t) }

// Check reports whether value's runtime type is t.
// A nil value is never checked here: absence is a constraint concern, not a
// type concern.
func (t Type) Check(value any) error {
	if t.accepts(value) {
		return nil
	}
	return &ValidationError{
		Kind:    KindTypeMismatch,
		Message: fmt.Sprintf("Expected data type '%s', but '%s'.", t.Name(), typeName(value)),
		Value:   value,
	}
}

func (t Type) accepts(value any) bool {
	switch t {
	case TypeString:
		_, ok := value.(string)
		return ok
	case TypeInt:
		switch value.(type) {
		case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
			return true
		}
		return false
	case TypeFloat:
		switch value.(type) {
		case float32, float64:
			return true
		}
		return false
	case TypeBool:
		_, ok := value.(bool)
		return ok
	default:
		return false
	}
}

// Valid reports whether t is one of the supported primitive types.
func (t Type) Valid() bool {
	switch t {
	case TypeString, TypeInt, TypeFloat, TypeBool:
		return true
	}
	return false
}

// ParseType converts a type name to a Type.
// Besides the canonical names it accepts the common aliases "str", "integer",
// "number", "double" and "boolean".
func ParseType(name string) (Type, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "string", "str":
		return TypeString, nil
	case "int", "integer":
		return TypeInt, nil
	case "float", "number", "double":
		return TypeFloat, nil
	case "bool", "boolean":
		return TypeBool, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedType, name)
	}
}

func typeName(value any) string {
	if value == nil {
		return "nil"
	}
	return fmt.Sprintf("%T", value)
}
