package settings

import (
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindOf(t *testing.T) {
	t.Parallel()

	_, rangeErr := strconv.ParseInt("999999999999999999999", 10, 64)
	_, syntaxErr := strconv.ParseInt("abc", 10, 64)

	assert.Equal(t, KindOverflow, kindOf(rangeErr))
	assert.Equal(t, KindOverflow, kindOf(errOutOfRange))
	assert.Equal(t, KindFormat, kindOf(syntaxErr))
	assert.Equal(t, KindFormat, kindOf(errors.New("anything else")))
}

func TestConvert_NullableStrategies(t *testing.T) {
	t.Parallel()

	for _, typ := range []string{"*int", "*bool", "*decimal.Decimal", "*time.Time", "*time.Duration", "*string"} {
		found := false

		for registered, entry := range strategies {
			if registered.String() == typ {
				found = true

				assert.True(t, entry.nullable, typ)
			}
		}

		assert.True(t, found, typ)
	}
}

func TestConvert_Present(t *testing.T) {
	t.Parallel()

	value, hasValue, err := convert[*float64]("ratio", "2.5", true, Invariant)

	require.NoError(t, err)
	assert.True(t, hasValue)
	require.NotNil(t, value)
	assert.InDelta(t, 2.5, *value, 0)
}

func TestConvert_AbsentNullable(t *testing.T) {
	t.Parallel()

	value, hasValue, err := convert[*time.Time]("startsAt", "", false, Invariant)

	require.NoError(t, err)
	assert.False(t, hasValue)
	assert.Nil(t, value)
}

func TestConvert_AbsentStringIsNullValue(t *testing.T) {
	t.Parallel()

	_, _, err := convert[string]("name", "", false, Invariant)

	var convErr *ConversionError

	require.ErrorAs(t, err, &convErr)
	assert.Equal(t, KindNullValue, convErr.Kind)
	assert.NoError(t, convErr.Unwrap())
}

func TestConvert_WrapsCause(t *testing.T) {
	t.Parallel()

	_, _, err := convert[int16]("port", "70000", true, Invariant)

	var numErr *strconv.NumError

	require.ErrorAs(t, err, &numErr)
	require.ErrorIs(t, err, ErrOverflow)
	require.ErrorIs(t, err, strconv.ErrRange)
	assert.Equal(t, `setting "port" caused an overflow: expected type int16, setting value = "70000"`, err.Error())
}

func TestConversionError_Messages(t *testing.T) {
	t.Parallel()

	format := &ConversionError{Key: "retries", Type: "int", Value: "many", Present: true, Kind: KindFormat}
	null := &ConversionError{Key: "retries", Type: "int", Kind: KindNullValue}

	assert.Equal(t,
		`setting "retries" was not in the correct format: expected type int, setting value = "many"`,
		format.Error())
	assert.Equal(t, `setting "retries" returned null and type int cannot have a null value`, null.Error())

	assert.ErrorIs(t, format, ErrFormat)
	assert.NotErrorIs(t, format, ErrOverflow)
	assert.ErrorIs(t, null, ErrNullValue)
}

func TestConversionKind_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "format", KindFormat.String())
	assert.Equal(t, "overflow", KindOverflow.String())
	assert.Equal(t, "null_value", KindNullValue.String())
	assert.Equal(t, "unknown", ConversionKind(42).String())
}

func TestParseUnsigned(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  uint32
		kind  ConversionKind
		fails bool
	}{
		{input: "42", want: 42},
		{input: " +42 ", want: 42},
		{input: "-0", want: 0},
		{input: "4294967295", want: 4294967295},
		{input: "4294967296", kind: KindOverflow, fails: true},
		{input: "-1", kind: KindOverflow, fails: true},
		{input: "-99999999999999999999", kind: KindOverflow, fails: true},
		{input: "-x", kind: KindFormat, fails: true},
		{input: "", kind: KindFormat, fails: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			got, err := parseUnsigned[uint32](tt.input, Invariant)
			if tt.fails {
				require.Error(t, err)
				assert.Equal(t, tt.kind, kindOf(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseFloat_Locales(t *testing.T) {
	t.Parallel()

	got, err := parseFloat[float64]("1.234,5", German)
	require.NoError(t, err)
	assert.InDelta(t, 1234.5, got, 0)

	got, err = parseFloat[float64]("1\u202f234,5", French)
	require.NoError(t, err)
	assert.InDelta(t, 1234.5, got, 0)

	got, err = parseFloat[float64]("1,234.5", EnglishUS)
	require.NoError(t, err)
	assert.InDelta(t, 1234.5, got, 0)
}

func TestParseDecimal_Locales(t *testing.T) {
	t.Parallel()

	got, err := parseDecimal("1,44", German)
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("1.44").Equal(got))

	got, err = parseDecimal(" 79228162514264337593543950335 ", Invariant)
	require.NoError(t, err)
	assert.Equal(t, "79228162514264337593543950335", got.String())

	_, err = parseDecimal("1.2.3", Invariant)
	require.Error(t, err)
}

func TestParseTime_Locales(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		locale *Locale
		input  string
		want   time.Time
	}{
		{
			name:   "invariant month first",
			locale: Invariant,
			input:  "12/31/2000 12:12:12",
			want:   time.Date(2000, 12, 31, 12, 12, 12, 0, time.UTC),
		},
		{
			name:   "us twelve hour clock",
			locale: EnglishUS,
			input:  "12/31/2000 1:05:00 PM",
			want:   time.Date(2000, 12, 31, 13, 5, 0, 0, time.UTC),
		},
		{
			name:   "german dotted",
			locale: German,
			input:  "31.12.2000",
			want:   time.Date(2000, 12, 31, 0, 0, 0, 0, time.UTC),
		},
		{
			name:   "iso with offset",
			locale: EnglishGB,
			input:  "2000-12-31T12:00:00Z",
			want:   time.Date(2000, 12, 31, 12, 0, 0, 0, time.UTC),
		},
		{
			name:   "iso date only",
			locale: French,
			input:  "2000-12-31",
			want:   time.Date(2000, 12, 31, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := parseTime(tt.input, tt.locale)

			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "want %s, got %s", tt.want, got)
		})
	}
}

func TestParseTime_UsesLocaleLocation(t *testing.T) {
	t.Parallel()

	zone := time.FixedZone("UTC+2", 2*60*60)

	got, err := parseTime("31/12/2000 12:00:00", EnglishGB.In(zone))

	require.NoError(t, err)
	assert.Equal(t, time.Date(2000, 12, 31, 10, 0, 0, 0, time.UTC), got.UTC())
}

func TestParseDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  time.Duration
		kind  ConversionKind
		fails bool
	}{
		{input: "250ms", want: 250 * time.Millisecond},
		{input: " 2h ", want: 2 * time.Hour},
		{input: "00:00:30", want: 30 * time.Second},
		{input: "36:00", want: 36 * time.Hour},
		{input: "2562047:47:16", want: 2562047*time.Hour + 47*time.Minute + 16*time.Second},
		{input: "1:2:3:4", kind: KindFormat, fails: true},
		{input: "1:-2", kind: KindFormat, fails: true},
		{input: "soon", kind: KindFormat, fails: true},
		{input: "3000000:00", kind: KindOverflow, fails: true},
		{input: "2562047:47:17", kind: KindOverflow, fails: true},
		{input: "99999999999999999999:00", kind: KindOverflow, fails: true},
		{input: "99999999999h", kind: KindOverflow, fails: true},
		{input: "-9999999999999999999ns", kind: KindOverflow, fails: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			got, err := parseDuration(tt.input, Invariant)
			if tt.fails {
				require.Error(t, err)
				assert.Equal(t, tt.kind, kindOf(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConvert_DurationOverflow(t *testing.T) {
	t.Parallel()

	_, _, err := convert[time.Duration]("timeout", "3000000:00", true, Invariant)

	require.ErrorIs(t, err, ErrOverflow)
}

func TestParseFloat_RejectsSpecialForms(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"0x1p-2", "NaN", "nan", "Inf", "-Inf", "infinity", "1_000"} {
		_, err := parseFloat[float64](input, Invariant)

		require.ErrorIs(t, err, errSyntax, input)
		assert.Equal(t, KindFormat, kindOf(err), input)

		_, err = parseDecimal(input, Invariant)

		require.Error(t, err, input)
		assert.Equal(t, KindFormat, kindOf(err), input)
	}

	got, err := parseFloat[float64](" -1.5e3 ", Invariant)
	require.NoError(t, err)
	assert.InDelta(t, -1500, got, 0)
}

func TestParseBool_RejectsOtherLiterals(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"1", "0", "yes", "t", ""} {
		_, err := parseBool(input, Invariant)

		require.ErrorIs(t, err, errSyntax, input)
	}
}
