package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shipmatrix/internal/domain"
	"shipmatrix/internal/validator"
)

func fptr(v float64) *float64 { return &v }

func cleanRecord() domain.ShipmentRecord {
	return domain.ShipmentRecord{
		TrackingNumber:     "1ZA1B2C3D401234567",
		DestinationZIP:     "30301",
		Weight:             fptr(12.0),
		IncentiveCredit:    fptr(-5.10),
		LineTotalPublished: fptr(27.50),
		LineTotalIncentive: fptr(-5.50),
		LineTotalBilled:    fptr(22.00),
	}
}

func resultFor(results []validator.Result, ruleKey string) (validator.Result, bool) {
	for _, r := range results {
		if r.RuleKey == ruleKey {
			return r, true
		}
	}
	return validator.Result{}, false
}

func TestValidateRecord_CleanRecordPassesEverything(t *testing.T) {
	eng := validator.NewEngine()
	rec := cleanRecord()

	for _, res := range eng.ValidateRecord(&rec) {
		assert.True(t, res.Passed, "rule %s failed: %s", res.RuleKey, res.Message)
	}
}

func TestValidateRecord_MissingTracking(t *testing.T) {
	eng := validator.NewEngine()
	rec := cleanRecord()
	rec.TrackingNumber = ""

	res, ok := resultFor(eng.ValidateRecord(&rec), "required_tracking")
	require.True(t, ok)
	assert.False(t, res.Passed)
	assert.Equal(t, validator.SeverityError, res.Severity)

	// The format rule skips empty values instead of double-reporting.
	_, ok = resultFor(eng.ValidateRecord(&rec), "tracking_format")
	assert.False(t, ok)
}

func TestValidateRecord_MalformedTracking(t *testing.T) {
	eng := validator.NewEngine()
	rec := cleanRecord()
	rec.TrackingNumber = "1ZSHORT"

	res, ok := resultFor(eng.ValidateRecord(&rec), "tracking_format")
	require.True(t, ok)
	assert.False(t, res.Passed)
	assert.Contains(t, res.Message, "1ZSHORT")
}

func TestValidateRecord_ZIPFormats(t *testing.T) {
	eng := validator.NewEngine()
	rec := cleanRecord()
	rec.DestinationZIP = "303"
	rec.OriginZIP = "06010-1234"

	results := eng.ValidateRecord(&rec)

	var dest, origin *validator.Result
	for i, r := range results {
		if r.RuleKey != "zip_format" {
			continue
		}
		switch r.Field {
		case "destination_zip":
			dest = &results[i]
		case "origin_zip":
			origin = &results[i]
		}
	}
	require.NotNil(t, dest)
	assert.False(t, dest.Passed)
	require.NotNil(t, origin)
	assert.True(t, origin.Passed)
}

func TestValidateRecord_TotalsBalance(t *testing.T) {
	eng := validator.NewEngine()
	rec := cleanRecord()
	rec.LineTotalBilled = fptr(25.00)

	res, ok := resultFor(eng.ValidateRecord(&rec), "totals_balance")
	require.True(t, ok)
	assert.False(t, res.Passed)
	assert.Equal(t, validator.SeverityWarning, res.Severity)
}

func TestValidateRecord_TotalsBalanceToleratesRounding(t *testing.T) {
	eng := validator.NewEngine()
	rec := cleanRecord()
	rec.LineTotalBilled = fptr(22.01)

	res, ok := resultFor(eng.ValidateRecord(&rec), "totals_balance")
	require.True(t, ok)
	assert.True(t, res.Passed)
}

func TestValidateRecord_PositiveIncentiveFlagged(t *testing.T) {
	eng := validator.NewEngine()
	rec := cleanRecord()
	rec.IncentiveCredit = fptr(3.25)

	res, ok := resultFor(eng.ValidateRecord(&rec), "incentive_sign")
	require.True(t, ok)
	assert.False(t, res.Passed)
}

func TestValidateRecord_WeightOutOfRange(t *testing.T) {
	eng := validator.NewEngine()

	for _, w := range []float64{0, -1, 151} {
		rec := cleanRecord()
		rec.Weight = fptr(w)
		res, ok := resultFor(eng.ValidateRecord(&rec), "weight_sanity")
		require.True(t, ok)
		assert.False(t, res.Passed, "weight %.1f should fail", w)
	}

	rec := cleanRecord()
	rec.Weight = fptr(150)
	res, _ := resultFor(eng.ValidateRecord(&rec), "weight_sanity")
	assert.True(t, res.Passed)
}

func TestValidateRecord_UnsetOptionalFieldsSkipped(t *testing.T) {
	eng := validator.NewEngine()
	rec := domain.ShipmentRecord{TrackingNumber: "1ZA1B2C3D401234567"}

	results := eng.ValidateRecord(&rec)
	for _, key := range []string{"zip_format", "totals_balance", "incentive_sign", "weight_sanity"} {
		_, ok := resultFor(results, key)
		assert.False(t, ok, "rule %s should skip unset fields", key)
	}
}

func TestValidateAll_Summary(t *testing.T) {
	eng := validator.NewEngine()

	bad := cleanRecord()
	bad.TrackingNumber = ""
	bad.Weight = fptr(200)

	summary := eng.ValidateAll([]domain.ShipmentRecord{cleanRecord(), bad})

	assert.Equal(t, 1, summary.Errors)
	assert.Equal(t, 1, summary.Warnings)
	assert.Equal(t, summary.Total, summary.Passed+summary.Errors+summary.Warnings)
	assert.Positive(t, summary.Passed)
}

func TestNewEngine_CustomRuleSet(t *testing.T) {
	eng := validator.NewEngine(validator.BuiltinRules()[0])
	rec := cleanRecord()

	results := eng.ValidateRecord(&rec)
	require.Len(t, results, 1)
	assert.Equal(t, "required_tracking", results[0].RuleKey)
}
