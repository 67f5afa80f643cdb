package rule

import (
	"fmt"
	"strings"
)

// Built-in property names, upper-cased as used for lookup.
const (
	PropID         = "ID"
	PropPriority   = "PRIORITY"
	PropName       = "NAME"
	PropAuthor     = "AUTHOR"
	PropIdea       = "IDEA"
	PropUnstable   = "UNSTABLE"
	PropComponent  = "COMPONENT"
	PropAppVersion = "APP_VERSION"
)

var builtIns = []string{
	PropID, PropPriority, PropName, PropAuthor,
	PropIdea, PropUnstable, PropComponent, PropAppVersion,
}

// BuiltIns returns the built-in property names in display order.
func BuiltIns() []string {
	return append([]string(nil), builtIns...)
}

// IsBuiltIn reports whether name is a built-in property (case-insensitive).
func IsBuiltIn(name string) bool {
	_, ok := builtInType(name)
	return ok
}

// BuiltInType returns the declared value type of a built-in property.
func BuiltInType(name string) (ValueType, error) {
	t, ok := builtInType(name)
	if !ok {
		return 0, fmt.Errorf("%w: unknown built-in property [%s], allowed: %s",
			ErrInvalidSelectionRule, name, formatList(builtIns))
	}
	return t, nil
}

func builtInType(name string) (ValueType, bool) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case PropID, PropName, PropAuthor, PropIdea, PropComponent, PropAppVersion:
		return TypeString, true
	case PropPriority:
		return TypeInt, true
	case PropUnstable:
		return TypeBool, true
	default:
		return 0, false
	}
}

// ValidateBuiltInProps checks that every built-in property present in m
// carries a value of its declared type. Nil values are allowed.
func ValidateBuiltInProps(m Metadata) error {
	for k, v := range m {
		t, ok := builtInType(k)
		if !ok || v == nil {
			continue
		}
		if !hasNativeType(t, v) {
			return fmt.Errorf("%w: built-in property [%s] should be of type [%s], found %v of type %T",
				ErrInvalidSelectionRule, k, t, v, v)
		}
	}
	return nil
}

func hasNativeType(t ValueType, v any) bool {
	switch t {
	case TypeString:
		_, ok := v.(string)
		return ok
	case TypeBool:
		_, ok := v.(bool)
		return ok
	case TypeInt:
		switch v.(type) {
		case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
			return true
		}
		return false
	case TypeFloat:
		switch v.(type) {
		case float32, float64:
			return true
		}
		return false
	default:
		return false
	}
}
