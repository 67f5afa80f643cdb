package rule

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cast"
)

var boolTokens = []string{"true", "false", "on", "off", "yes", "no", "1", "0"}

// Convert turns a raw rule expression into a typed comparison value.
// Built-in properties and containers are coerced to t, user-defined
// properties pass through as opaque strings.
func Convert(property string, t ValueType, raw any) (Value, error) {
	if t != TypeSet && !IsBuiltIn(property) {
		s, err := cast.ToStringE(raw)
		if err != nil {
			return Value{}, fmt.Errorf("%w: value %v for property [%s] is not a scalar",
				ErrInvalidSelectionRule, raw, property)
		}
		return StringValue(s), nil
	}
	v, err := coerce(t, raw)
	if err != nil {
		return Value{}, fmt.Errorf("%w: property [%s]: %v", ErrInvalidSelectionRule, property, err)
	}
	v.Versioned = isVersioned(property)
	return v, nil
}

// isVersioned reports whether property values are ordered as versions.
func isVersioned(property string) bool {
	return strings.EqualFold(strings.TrimSpace(property), PropAppVersion)
}

// coerce converts raw to a value of type t. Already-typed input is accepted.
func coerce(t ValueType, raw any) (Value, error) {
	switch t {
	case TypeString:
		s, err := cast.ToStringE(raw)
		if err != nil {
			return Value{}, err
		}
		return StringValue(s), nil
	case TypeBool:
		b, err := toBool(raw)
		if err != nil {
			return Value{}, err
		}
		return BoolValue(b), nil
	case TypeInt:
		i, err := toInt(raw)
		if err != nil {
			return Value{}, err
		}
		return IntValue(i), nil
	case TypeFloat:
		f, err := toFloat(raw)
		if err != nil {
			return Value{}, err
		}
		return FloatValue(f), nil
	case TypeSet:
		items, err := toItems(raw)
		if err != nil {
			return Value{}, err
		}
		return SetValue(items...), nil
	default:
		return Value{}, fmt.Errorf("unsupported value type %s", t)
	}
}

func toBool(raw any) (bool, error) {
	if b, ok := raw.(bool); ok {
		return b, nil
	}
	s, err := cast.ToStringE(raw)
	if err == nil {
		switch strings.ToLower(strings.TrimSpace(s)) {
		case "true", "on", "yes", "1":
			return true, nil
		case "false", "off", "no", "0":
			return false, nil
		}
	}
	return false, fmt.Errorf("unexpected value >>%v<< for boolean context, allowed: %s",
		raw, formatList(boolTokens))
}

func toInt(raw any) (int64, error) {
	switch v := raw.(type) {
	case bool:
		return 0, fmt.Errorf("unexpected boolean %v for integer context", v)
	case string:
		i, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("unexpected value >>%s<< for integer context", v)
		}
		return i, nil
	default:
		return cast.ToInt64E(raw)
	}
}

func toFloat(raw any) (float64, error) {
	switch v := raw.(type) {
	case bool:
		return 0, fmt.Errorf("unexpected boolean %v for float context", v)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, fmt.Errorf("unexpected value >>%s<< for float context", v)
		}
		return f, nil
	default:
		return cast.ToFloat64E(raw)
	}
}

// toItems accepts a comma separated string or a list of scalars.
func toItems(raw any) ([]string, error) {
	switch v := raw.(type) {
	case nil:
		return nil, nil
	case string:
		return strings.Split(v, ","), nil
	case []string:
		return v, nil
	default:
		return cast.ToStringSliceE(raw)
	}
}
