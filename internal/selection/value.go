package selection

import (
	"fmt"
	"strconv"
)

// Argument is a named literal attached to a selected field. A nil Value
// marks the argument as absent: it is dropped at render time rather than
// rendered as a null literal.
type Argument struct {
	Name  string
	Value any
}

// Arg builds an Argument. Supported value kinds are string, bool, the Go
// integer and float types, EnumValue, and nil; rendering any other kind
// panics. Argument order within a field is the order given and is preserved.
func Arg(name string, value any) Argument {
	return Argument{Name: name, Value: value}
}

// Enum is an explicit wire-name table for one enum type. Variants without an
// override render under their plain name.
type Enum struct {
	name string
	wire map[string]string
}

// NewEnum declares an enum type with its wire-name overrides. overrides may
// be nil when every variant renders under its plain name.
func NewEnum(name string, overrides map[string]string) *Enum {
	return &Enum{name: name, wire: overrides}
}

// Name returns the enum type name.
func (e *Enum) Name() string { return e.name }

// WireName returns the registered wire name for variant, or variant itself
// when no override was declared.
func (e *Enum) WireName(variant string) string {
	if e == nil {
		return variant
	}
	if w, ok := e.wire[variant]; ok {
		return w
	}
	return variant
}

// Value returns the variant as an argument value.
func (e *Enum) Value(variant string) EnumValue {
	return EnumValue{enum: e, variant: variant}
}

// EnumValue is an enum variant used as an argument value. It renders as the
// variant's wire name, unquoted.
type EnumValue struct {
	enum    *Enum
	variant string
}

// Variant returns the declared variant name.
func (v EnumValue) Variant() string { return v.variant }

func (v EnumValue) wireName() string { return v.enum.WireName(v.variant) }

// encodeValue converts an argument value into its literal text. String
// literals are wrapped in double quotes verbatim; escaping embedded quotes
// is the caller's responsibility. Numeric output is locale-invariant.
func encodeValue(v any) string {
	switch x := v.(type) {
	case string:
		return `"` + x + `"`
	case bool:
		return strconv.FormatBool(x)
	case int:
		return strconv.FormatInt(int64(x), 10)
	case int8:
		return strconv.FormatInt(int64(x), 10)
	case int16:
		return strconv.FormatInt(int64(x), 10)
	case int32:
		return strconv.FormatInt(int64(x), 10)
	case int64:
		return strconv.FormatInt(x, 10)
	case uint:
		return strconv.FormatUint(uint64(x), 10)
	case uint8:
		return strconv.FormatUint(uint64(x), 10)
	case uint16:
		return strconv.FormatUint(uint64(x), 10)
	case uint32:
		return strconv.FormatUint(uint64(x), 10)
	case uint64:
		return strconv.FormatUint(x, 10)
	case float32:
		return strconv.FormatFloat(float64(x), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	case EnumValue:
		return x.wireName()
	default:
		panic(fmt.Sprintf("selection: unsupported argument value type %T", v))
	}
}
