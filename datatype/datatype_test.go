package datatype

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/gridcodec/errs"
)

func TestParse_BareNames(t *testing.T) {
	tests := []struct {
		input string
		kind  Kind
	}{
		{"tinyint", KindTinyInt},
		{"smallint", KindSmallInt},
		{"int", KindInt},
		{"bigint", KindBigInt},
		{"float", KindFloat},
		{"double", KindDouble},
		{"boolean", KindBoolean},
		{"date", KindDate},
		{"timestamp", KindTimestamp},
		{"varchar", KindVarchar},
		{"char", KindChar},
		{"decimal", KindDecimal},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			dt, err := Parse(tt.input)
			require.NoError(t, err)
			require.Equal(t, tt.kind, dt.Kind)
		})
	}
}

func TestParse_Aliases(t *testing.T) {
	tests := []struct {
		alias     string
		canonical string
	}{
		{"string", "varchar"},
		{"long", "bigint"},
		{"integer", "int"},
		{"numeric", "decimal"},
		{"datetime", "timestamp"},
		{"byte", "tinyint"},
		{"short", "smallint"},
		{"real", "float"},
		{"bool", "boolean"},
	}

	for _, tt := range tests {
		t.Run(tt.alias, func(t *testing.T) {
			fromAlias, err := Parse(tt.alias)
			require.NoError(t, err)
			fromCanonical, err := Parse(tt.canonical)
			require.NoError(t, err)
			require.Equal(t, fromCanonical, fromAlias)
		})
	}
}

func TestParse_Parameters(t *testing.T) {
	dt, err := Parse("decimal(19,4)")
	require.NoError(t, err)
	require.Equal(t, KindDecimal, dt.Kind)
	require.Equal(t, 19, dt.Precision)
	require.Equal(t, 4, dt.Scale)

	dt, err = Parse("decimal(10)")
	require.NoError(t, err)
	require.Equal(t, 10, dt.Precision)
	require.Equal(t, 0, dt.Scale)

	dt, err = Parse("varchar(64)")
	require.NoError(t, err)
	require.Equal(t, KindVarchar, dt.Kind)
	require.Equal(t, 64, dt.Precision)

	dt, err = Parse("char(2)")
	require.NoError(t, err)
	require.Equal(t, KindChar, dt.Kind)
	require.Equal(t, 2, dt.Precision)

	// Whitespace and case are tolerated.
	dt, err = Parse("  DECIMAL( 19 , 4 ) ")
	require.NoError(t, err)
	require.Equal(t, 19, dt.Precision)
	require.Equal(t, 4, dt.Scale)
}

func TestParse_Defaults(t *testing.T) {
	dt := MustParse("varchar")
	require.Equal(t, DefaultVarcharPrecision, dt.Precision)

	dt = MustParse("char")
	require.Equal(t, DefaultCharPrecision, dt.Precision)

	dt = MustParse("decimal")
	require.Equal(t, DefaultDecimalPrecision, dt.Precision)
	require.Equal(t, DefaultDecimalScale, dt.Scale)
}

func TestParse_Errors(t *testing.T) {
	tests := []string{
		"",
		"frobnicate",
		"decimal(",
		"decimal(1,2,3)",
		"decimal(0)",
		"decimal(40)",
		"decimal(5,9)",
		"decimal(a,b)",
		"varchar(0)",
		"varchar(8,2)",
		"bigint(8)",
	}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			_, err := Parse(input)
			require.ErrorIs(t, err, errs.ErrUnknownDataType)
		})
	}
}

func TestMustParse_PanicsOnBadInput(t *testing.T) {
	require.Panics(t, func() { MustParse("not-a-type") })
}

func TestDataType_String(t *testing.T) {
	require.Equal(t, "bigint", MustParse("long").String())
	require.Equal(t, "decimal(19,4)", MustParse("decimal(19,4)").String())
	require.Equal(t, "varchar(64)", MustParse("varchar(64)").String())
	require.Equal(t, "char(255)", MustParse("char").String())
	require.Equal(t, "timestamp", MustParse("datetime").String())
}

func TestDataType_Families(t *testing.T) {
	require.True(t, MustParse("int").IsIntegerFamily())
	require.True(t, MustParse("bigint").IsNumberFamily())
	require.True(t, MustParse("double").IsFloatFamily())
	require.True(t, MustParse("decimal(19,4)").IsNumberFamily())
	require.True(t, MustParse("varchar(16)").IsStringFamily())
	require.True(t, MustParse("date").IsDateTimeFamily())

	require.False(t, MustParse("varchar(16)").IsNumberFamily())
	require.False(t, MustParse("boolean").IsIntegerFamily())
	require.False(t, MustParse("timestamp").IsStringFamily())
}
