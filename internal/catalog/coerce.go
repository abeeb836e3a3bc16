package catalog

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	reMonthDay     = regexp.MustCompile(`^\d{1,2}/\d{1,2}$`)
	reMonthDayYear = regexp.MustCompile(`^\d{1,2}/\d{1,2}/\d{2,4}$`)
	reFourDigits   = regexp.MustCompile(`\d{4}`)
)

// ParseCurrency coerces a matched amount string. Thousands separators and
// dollar signs are stripped; a value that fails to parse is reported as
// unset via ok=false, never as zero.
func ParseCurrency(value string) (float64, bool) {
	cleaned := strings.TrimSpace(strings.ReplaceAll(value, ",", ""))
	cleaned = strings.ReplaceAll(cleaned, "$", "")
	if cleaned == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// ParseFloat coerces a matched numeric string.
func ParseFloat(value string) (float64, bool) {
	cleaned := strings.TrimSpace(strings.ReplaceAll(value, ",", ""))
	if cleaned == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// ParseInt coerces a matched integer string.
func ParseInt(value string) (int, bool) {
	cleaned := strings.TrimSpace(strings.ReplaceAll(value, ",", ""))
	if cleaned == "" {
		return 0, false
	}
	n, err := strconv.Atoi(cleaned)
	if err != nil {
		return 0, false
	}
	return n, true
}

// ParseDate normalizes invoice date strings to ISO form. A month/day value
// with no year borrows the invoice's derived year; a two-digit year is
// expanded by adding 2000. Anything unrecognized is kept as the trimmed raw
// string rather than rejected.
func ParseDate(value string, invoiceYear int) string {
	v := strings.TrimSpace(value)
	if v == "" {
		return ""
	}

	switch {
	case reMonthDay.MatchString(v):
		parts := strings.Split(v, "/")
		month, _ := strconv.Atoi(parts[0])
		day, _ := strconv.Atoi(parts[1])
		year := invoiceYear
		if year == 0 {
			year = time.Now().Year()
		}
		return fmt.Sprintf("%04d-%02d-%02d", year, month, day)

	case reMonthDayYear.MatchString(v):
		parts := strings.Split(v, "/")
		month, _ := strconv.Atoi(parts[0])
		day, _ := strconv.Atoi(parts[1])
		year, _ := strconv.Atoi(parts[2])
		if len(parts[2]) == 2 {
			year += 2000
		}
		return fmt.Sprintf("%04d-%02d-%02d", year, month, day)

	default:
		return v
	}
}

// DeriveYear extracts the four-digit year from a raw invoice date string.
// Returns 0 when none is present.
func DeriveYear(invoiceDate string) int {
	m := reFourDigits.FindString(invoiceDate)
	if m == "" {
		return 0
	}
	year, err := strconv.Atoi(m)
	if err != nil {
		return 0
	}
	return year
}
