package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"shipmatrix/internal/catalog"
)

func TestParseCurrency_StripsSeparators(t *testing.T) {
	v, ok := catalog.ParseCurrency("1,234.56")
	assert.True(t, ok)
	assert.Equal(t, 1234.56, v)

	v, ok = catalog.ParseCurrency("$45.00")
	assert.True(t, ok)
	assert.Equal(t, 45.0, v)
}

func TestParseCurrency_NegativeAmount(t *testing.T) {
	v, ok := catalog.ParseCurrency("-5.10")
	assert.True(t, ok)
	assert.Equal(t, -5.10, v)
}

func TestParseCurrency_InvalidReportsUnset(t *testing.T) {
	_, ok := catalog.ParseCurrency("abc")
	assert.False(t, ok)

	_, ok = catalog.ParseCurrency("")
	assert.False(t, ok)
}

func TestParseInt_StripsCommas(t *testing.T) {
	v, ok := catalog.ParseInt("1,200")
	assert.True(t, ok)
	assert.Equal(t, 1200, v)
}

func TestParseDate_MonthDayBorrowsInvoiceYear(t *testing.T) {
	assert.Equal(t, "2025-03-01", catalog.ParseDate("03/01", 2025))
}

func TestParseDate_TwoDigitYearExpanded(t *testing.T) {
	assert.Equal(t, "2024-12-31", catalog.ParseDate("12/31/24", 0))
}

func TestParseDate_FourDigitYear(t *testing.T) {
	assert.Equal(t, "2025-01-05", catalog.ParseDate("1/5/2025", 0))
}

func TestParseDate_UnrecognizedKeptRaw(t *testing.T) {
	assert.Equal(t, "March 15, 2025", catalog.ParseDate(" March 15, 2025 ", 2025))
}

func TestParseDate_EmptyStaysEmpty(t *testing.T) {
	assert.Equal(t, "", catalog.ParseDate("  ", 2025))
}

func TestDeriveYear(t *testing.T) {
	assert.Equal(t, 2025, catalog.DeriveYear("March 15, 2025"))
	assert.Equal(t, 0, catalog.DeriveYear("03/15"))
	assert.Equal(t, 0, catalog.DeriveYear(""))
}
