// Package datatype models the declared column types of a grid table schema.
//
// A DataType pairs a type kind with an optional precision and scale, and is
// parsed from SQL-style names such as "bigint", "decimal(19,4)" or
// "varchar(64)". Legacy aliases from upstream schema descriptions are
// normalized during parsing, so "string" and "varchar" produce the same type.
package datatype

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/arloliu/gridcodec/errs"
)

// Kind identifies a column type family member.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindTinyInt
	KindSmallInt
	KindInt
	KindBigInt
	KindFloat
	KindDouble
	KindDecimal
	KindBoolean
	KindDate
	KindTimestamp
	KindVarchar
	KindChar
)

func (k Kind) String() string {
	switch k {
	case KindTinyInt:
		return "tinyint"
	case KindSmallInt:
		return "smallint"
	case KindInt:
		return "int"
	case KindBigInt:
		return "bigint"
	case KindFloat:
		return "float"
	case KindDouble:
		return "double"
	case KindDecimal:
		return "decimal"
	case KindBoolean:
		return "boolean"
	case KindDate:
		return "date"
	case KindTimestamp:
		return "timestamp"
	case KindVarchar:
		return "varchar"
	case KindChar:
		return "char"
	default:
		return "unknown"
	}
}

// Default precision and scale applied when a parameterized type omits them.
const (
	DefaultVarcharPrecision = 256
	DefaultCharPrecision    = 255
	DefaultDecimalPrecision = 19
	DefaultDecimalScale     = 4

	// MaxDecimalPrecision bounds the digits a decimal column may declare.
	MaxDecimalPrecision = 38
)

// DataType is a declared column type. The zero value is the unknown type.
type DataType struct {
	Kind      Kind
	Precision int
	Scale     int
}

// New returns a DataType of the given kind with default precision and scale.
func New(kind Kind) DataType {
	dt := DataType{Kind: kind}
	switch kind {
	case KindVarchar:
		dt.Precision = DefaultVarcharPrecision
	case KindChar:
		dt.Precision = DefaultCharPrecision
	case KindDecimal:
		dt.Precision = DefaultDecimalPrecision
		dt.Scale = DefaultDecimalScale
	default:
	}

	return dt
}

// kindNames maps normalized type names, including legacy aliases, to kinds.
var kindNames = map[string]Kind{
	"tinyint":   KindTinyInt,
	"byte":      KindTinyInt,
	"smallint":  KindSmallInt,
	"short":     KindSmallInt,
	"int":       KindInt,
	"integer":   KindInt,
	"bigint":    KindBigInt,
	"long":      KindBigInt,
	"float":     KindFloat,
	"real":      KindFloat,
	"double":    KindDouble,
	"decimal":   KindDecimal,
	"numeric":   KindDecimal,
	"boolean":   KindBoolean,
	"bool":      KindBoolean,
	"date":      KindDate,
	"timestamp": KindTimestamp,
	"datetime":  KindTimestamp,
	"varchar":   KindVarchar,
	"string":    KindVarchar,
	"char":      KindChar,
}

// Parse converts a SQL-style type name into a DataType.
//
// The name is case-insensitive and may carry precision arguments for
// parameterized types: "decimal(19,4)", "decimal(10)", "varchar(64)",
// "char(2)". Types that do not take parameters reject them.
func Parse(s string) (DataType, error) {
	name := strings.TrimSpace(strings.ToLower(s))
	if name == "" {
		return DataType{}, fmt.Errorf("%w: empty type name", errs.ErrUnknownDataType)
	}

	var args []string
	if open := strings.IndexByte(name, '('); open >= 0 {
		if !strings.HasSuffix(name, ")") {
			return DataType{}, fmt.Errorf("%w: malformed type %q", errs.ErrUnknownDataType, s)
		}
		args = strings.Split(name[open+1:len(name)-1], ",")
		name = strings.TrimSpace(name[:open])
	}

	kind, ok := kindNames[name]
	if !ok {
		return DataType{}, fmt.Errorf("%w: %q", errs.ErrUnknownDataType, s)
	}

	dt := New(kind)
	if len(args) == 0 {
		return dt, nil
	}

	switch kind {
	case KindDecimal:
		if len(args) > 2 {
			return DataType{}, fmt.Errorf("%w: decimal takes at most precision and scale, got %q", errs.ErrUnknownDataType, s)
		}
		precision, err := parseTypeArg(args[0], s)
		if err != nil {
			return DataType{}, err
		}
		scale := 0
		if len(args) == 2 {
			scale, err = parseTypeArg(args[1], s)
			if err != nil {
				return DataType{}, err
			}
		}
		if precision < 1 || precision > MaxDecimalPrecision {
			return DataType{}, fmt.Errorf("%w: decimal precision %d out of range [1, %d]",
				errs.ErrUnknownDataType, precision, MaxDecimalPrecision)
		}
		if scale < 0 || scale > precision {
			return DataType{}, fmt.Errorf("%w: decimal scale %d out of range [0, %d]",
				errs.ErrUnknownDataType, scale, precision)
		}
		dt.Precision = precision
		dt.Scale = scale

	case KindVarchar, KindChar:
		if len(args) > 1 {
			return DataType{}, fmt.Errorf("%w: %s takes a single length, got %q", errs.ErrUnknownDataType, kind, s)
		}
		precision, err := parseTypeArg(args[0], s)
		if err != nil {
			return DataType{}, err
		}
		if precision < 1 {
			return DataType{}, fmt.Errorf("%w: %s length must be positive, got %d", errs.ErrUnknownDataType, kind, precision)
		}
		dt.Precision = precision

	default:
		return DataType{}, fmt.Errorf("%w: %s does not take parameters, got %q", errs.ErrUnknownDataType, kind, s)
	}

	return dt, nil
}

// MustParse is Parse that panics on error, for statically known type names.
func MustParse(s string) DataType {
	dt, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return dt
}

func parseTypeArg(arg, full string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil {
		return 0, fmt.Errorf("%w: bad type parameter in %q", errs.ErrUnknownDataType, full)
	}

	return n, nil
}

// String renders the canonical form, including parameters when they differ
// from nothing: "bigint", "decimal(19,4)", "varchar(64)".
func (dt DataType) String() string {
	switch dt.Kind {
	case KindDecimal:
		return fmt.Sprintf("decimal(%d,%d)", dt.Precision, dt.Scale)
	case KindVarchar, KindChar:
		return fmt.Sprintf("%s(%d)", dt.Kind, dt.Precision)
	default:
		return dt.Kind.String()
	}
}

// IsIntegerFamily reports whether the type is one of the integer kinds.
func (dt DataType) IsIntegerFamily() bool {
	switch dt.Kind {
	case KindTinyInt, KindSmallInt, KindInt, KindBigInt:
		return true
	default:
		return false
	}
}

// IsFloatFamily reports whether the type is float or double.
func (dt DataType) IsFloatFamily() bool {
	return dt.Kind == KindFloat || dt.Kind == KindDouble
}

// IsNumberFamily reports whether the type is integer, float or decimal.
func (dt DataType) IsNumberFamily() bool {
	return dt.IsIntegerFamily() || dt.IsFloatFamily() || dt.Kind == KindDecimal
}

// IsStringFamily reports whether the type is varchar or char.
func (dt DataType) IsStringFamily() bool {
	return dt.Kind == KindVarchar || dt.Kind == KindChar
}

// IsDateTimeFamily reports whether the type is date or timestamp.
func (dt DataType) IsDateTimeFamily() bool {
	return dt.Kind == KindDate || dt.Kind == KindTimestamp
}
