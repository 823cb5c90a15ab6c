package importer

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestMonthDayDate(t *testing.T) {
	got := MonthDayDate("March", "15")
	require.NotNil(t, got)
	require.Equal(t, time.Date(2000, time.March, 15, 0, 0, 0, 0, time.UTC), *got)

	got = MonthDayDate("  december ", "1")
	require.NotNil(t, got)
	require.Equal(t, time.Date(2000, time.December, 1, 0, 0, 0, 0, time.UTC), *got)

	require.Nil(t, MonthDayDate("", "15"))
	require.Nil(t, MonthDayDate("March", ""))
	require.Nil(t, MonthDayDate("Marchuary", "15"))
	require.Nil(t, MonthDayDate("March", "32"))
	require.Nil(t, MonthDayDate("March", "0"))
}

func TestSerialDate(t *testing.T) {
	got := SerialDate("36526")
	require.NotNil(t, got)
	require.Equal(t, time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC), *got)

	got = SerialDate("1")
	require.NotNil(t, got)
	require.Equal(t, time.Date(1899, time.December, 31, 0, 0, 0, 0, time.UTC), *got)

	require.Nil(t, SerialDate(""))
	require.Nil(t, SerialDate("abc"))
	require.Nil(t, SerialDate("0"))
	require.Nil(t, SerialDate("-5"))
}

func TestISODate(t *testing.T) {
	got := ISODate("2024-06-30")
	require.NotNil(t, got)
	require.Equal(t, time.Date(2024, time.June, 30, 0, 0, 0, 0, time.UTC), *got)

	require.Nil(t, ISODate(""))
	require.Nil(t, ISODate("06/30/2024"))
}

func TestParseAmount(t *testing.T) {
	d, ok := ParseAmount("125.50")
	require.True(t, ok)
	require.True(t, d.Equal(decimal.RequireFromString("125.5")))

	d, ok = ParseAmount("$1,250.00")
	require.True(t, ok)
	require.True(t, d.Equal(decimal.RequireFromString("1250")))

	_, ok = ParseAmount("abc")
	require.False(t, ok)

	_, ok = ParseAmount("")
	require.False(t, ok)
}
