// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package clean

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsBlank(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want bool
	}{
		{"nil", nil, true},
		{"NaN", math.NaN(), true},
		{"empty", "", true},
		{"whitespace", " \t\n", true},
		{"text", "x", false},
		{"zero", 0.0, false},
		{"false", false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsBlank(tt.in))
		})
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"trims", "  Acme \n", "Acme"},
		{"blank", "   ", ""},
		{"nil", nil, ""},
		{"NaN", math.NaN(), ""},
		{"integral float", 3.0, "3"},
		{"fraction", 2.5, "2.5"},
		{"int", 42, "42"},
		{"list", []any{"a", " b "}, "a, b"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, String(tt.in))
		})
	}
}

func TestFirst(t *testing.T) {
	assert.Equal(t, "Title", First([]any{"Title", "Other"}))
	assert.Equal(t, "Title", First("Title"))
	assert.Equal(t, "b", First([]string{" ", "b"}))
	assert.Equal(t, "", First(nil))
}

func TestSplitMultiValue(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want []string
	}{
		{"comma separated", "C++, Python,  Fortran", []string{"C++", "Python", "Fortran"}},
		{"newline separated", "MPI\nOpenMP\r\nCUDA", []string{"MPI", "OpenMP", "CUDA"}},
		{"drops empty pieces", "a,, ,b,", []string{"a", "b"}},
		{"keeps duplicates", "a, a", []string{"a", "a"}},
		{"list returned as is", []string{"x", "y"}, []string{"x", "y"}},
		{"single value", "HDF5", []string{"HDF5"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitMultiValue(tt.in))
		})
	}

	assert.Empty(t, SplitMultiValue(nil))
	assert.Empty(t, SplitMultiValue("  "))
	assert.Empty(t, SplitMultiValue(math.NaN()))
}

func TestParseBool(t *testing.T) {
	tests := []struct {
		in   any
		want bool
	}{
		{true, true},
		{false, false},
		{1.0, true},
		{1, true},
		{0.0, false},
		{2.0, false},
		{"yes", true},
		{"YES", true},
		{" x ", true},
		{"Available", true},
		{"1", true},
		{"true", true},
		{"no", false},
		{"planned", false},
		{"", false},
		{nil, false},
		{math.NaN(), false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseBool(tt.in), "ParseBool(%#v)", tt.in)
	}
}

func TestInt(t *testing.T) {
	n, ok := Int(3.0)
	require.True(t, ok)
	assert.Equal(t, 3, n)

	n, ok = Int(" 2024 ")
	require.True(t, ok)
	assert.Equal(t, 2024, n)

	_, ok = Int(2.5)
	assert.False(t, ok)
	_, ok = Int("abc")
	assert.False(t, ok)
	_, ok = Int(nil)
	assert.False(t, ok)
}

func TestParseDate(t *testing.T) {
	date := func(y int, m time.Month, d int) *time.Time {
		t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
		return &t
	}

	tests := []struct {
		name string
		in   any
		want *time.Time
	}{
		{"iso date", "2024-03-15", date(2024, time.March, 15)},
		{"iso datetime", "2024-03-15 10:30:00", date(2024, time.March, 15)},
		{"slash day first", "15/03/2024", date(2024, time.March, 15)},
		{"dash day first", "15-03-2024", date(2024, time.March, 15)},
		{"single digit day", "5/3/2024", date(2024, time.March, 5)},
		{"english month year", "January 2024", date(2024, time.January, 1)},
		{"english abbreviated", "Sep 2023", date(2023, time.September, 1)},
		{"english lower case", "october 2023", date(2023, time.October, 1)},
		{"english day month year", "15 March 2024", date(2024, time.March, 15)},
		{"french month year", "septembre 2023", date(2023, time.September, 1)},
		{"french abbreviated", "janv 2024", date(2024, time.January, 1)},
		{"french accented", "Décembre 2024", date(2024, time.December, 1)},
		{"french without accent", "fevrier 2025", date(2025, time.February, 1)},
		{"french day month year", "15 mars 2024", date(2024, time.March, 15)},
		{"french august", "août 2024", date(2024, time.August, 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseDate(tt.in)
			require.NotNil(t, got)
			assert.True(t, tt.want.Equal(*got), "got %v, want %v", got, tt.want)
		})
	}
}

func TestParseDate_FrenchAndNumericAgree(t *testing.T) {
	fr := ParseDate("15 mars 2024")
	num := ParseDate("15/03/2024")
	require.NotNil(t, fr)
	require.NotNil(t, num)
	assert.True(t, fr.Equal(*num))
}

func TestParseDate_Unparseable(t *testing.T) {
	for _, in := range []any{"not a date", "", nil, math.NaN(), "2024-13-45", "TBD"} {
		assert.Nil(t, ParseDate(in), "ParseDate(%#v)", in)
	}
}

func TestParseDate_TimeValue(t *testing.T) {
	want := time.Date(2023, time.June, 1, 0, 0, 0, 0, time.UTC)
	got := ParseDate(want)
	require.NotNil(t, got)
	assert.True(t, want.Equal(*got))
}
