package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shipmatrix/internal/catalog"
	"shipmatrix/internal/domain"
	"shipmatrix/internal/parser"
)

func fptr(v float64) *float64 { return &v }

func TestCalculateLineTotals_SumsBaseAndSurcharges(t *testing.T) {
	cat := catalog.New()
	r := domain.ShipmentRecord{
		PublishedCharge: fptr(25.50),
		IncentiveCredit: fptr(-5.10),
		BilledCharge:    fptr(20.40),
		Surcharges: map[string]domain.CurrencyTriple{
			"fuel_surcharge": {Published: fptr(2.00), Incentive: fptr(-0.40), Billed: fptr(1.60)},
		},
	}

	parser.CalculateLineTotals(cat, &r)

	require.NotNil(t, r.LineTotalPublished)
	assert.InDelta(t, 27.50, *r.LineTotalPublished, 1e-9)
	require.NotNil(t, r.LineTotalIncentive)
	assert.InDelta(t, -5.50, *r.LineTotalIncentive, 1e-9)
	require.NotNil(t, r.LineTotalBilled)
	assert.InDelta(t, 22.00, *r.LineTotalBilled, 1e-9)

	require.NotNil(t, r.LineTotal)
	assert.InDelta(t, 27.50, *r.LineTotal.Published, 1e-9)
}

func TestCalculateLineTotals_UnsetComponentsContributeZero(t *testing.T) {
	cat := catalog.New()
	r := domain.ShipmentRecord{BilledCharge: fptr(10.00)}

	parser.CalculateLineTotals(cat, &r)

	require.NotNil(t, r.LineTotalBilled)
	assert.InDelta(t, 10.00, *r.LineTotalBilled, 1e-9)
	require.NotNil(t, r.LineTotalPublished)
	assert.Zero(t, *r.LineTotalPublished)
}

func TestCalculateLineTotals_AllAbsentWritesNothing(t *testing.T) {
	cat := catalog.New()
	var r domain.ShipmentRecord

	parser.CalculateLineTotals(cat, &r)

	assert.Nil(t, r.LineTotal)
	assert.Nil(t, r.LineTotalPublished)
	assert.Nil(t, r.LineTotalIncentive)
	assert.Nil(t, r.LineTotalBilled)
}

func TestCalculateLineTotals_Idempotent(t *testing.T) {
	cat := catalog.New()
	r := domain.ShipmentRecord{
		PublishedCharge: fptr(25.50),
		IncentiveCredit: fptr(-5.10),
		BilledCharge:    fptr(20.40),
	}

	parser.CalculateLineTotals(cat, &r)
	parser.CalculateLineTotals(cat, &r)

	assert.InDelta(t, 25.50, *r.LineTotalPublished, 1e-9)
	assert.InDelta(t, 20.40, *r.LineTotalBilled, 1e-9)
}

func TestIncentiveSignSuspect(t *testing.T) {
	assert.False(t, parser.IncentiveSignSuspect(&domain.ShipmentRecord{}))
	assert.False(t, parser.IncentiveSignSuspect(&domain.ShipmentRecord{IncentiveCredit: fptr(-5.10)}))
	assert.True(t, parser.IncentiveSignSuspect(&domain.ShipmentRecord{IncentiveCredit: fptr(1.25)}))
}
