package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shipmatrix/internal/catalog"
	"shipmatrix/internal/domain"
	"shipmatrix/internal/parser"
)

func TestExtractMatrix_MainLineWithZone(t *testing.T) {
	cat := catalog.New()
	m := domain.ShipmentMatrix{
		Text: "03/01 1ZA1B2C3D401234567 Ground Residential 30301 5 12.0 25.50 -5.10 20.40",
	}
	header := domain.InvoiceHeader{InvoiceNumber: "0000A1B2C3", InvoiceYear: 2025}

	r := parser.ExtractMatrix(cat, m, header)

	assert.Equal(t, "0000A1B2C3", r.InvoiceNumber)
	assert.Equal(t, "2025-03-01", r.ShipmentDate)
	assert.Equal(t, "2025-03-01", r.PickupDate)
	assert.Equal(t, "1ZA1B2C3D401234567", r.TrackingNumber)
	assert.Equal(t, "Ground Residential", r.ServiceType)
	assert.Equal(t, "30301", r.DestinationZIP)

	require.NotNil(t, r.Zone)
	assert.Equal(t, 5, *r.Zone)
	require.NotNil(t, r.Weight)
	assert.InDelta(t, 12.0, *r.Weight, 1e-9)
	require.NotNil(t, r.PublishedCharge)
	assert.InDelta(t, 25.50, *r.PublishedCharge, 1e-9)
	require.NotNil(t, r.IncentiveCredit)
	assert.InDelta(t, -5.10, *r.IncentiveCredit, 1e-9)
	require.NotNil(t, r.BilledCharge)
	assert.InDelta(t, 20.40, *r.BilledCharge, 1e-9)
}

func TestExtractMatrix_SurchargeLinesFillCatalogFields(t *testing.T) {
	cat := catalog.New()
	m := domain.ShipmentMatrix{
		Text: "03/01 1ZA1B2C3D401234567 Ground Residential 30301 5 12.0 25.50 -5.10 20.40\n" +
			"Fuel Surcharge 2.00 -0.40 1.60\n" +
			"Residential Surcharge 4.10 -1.00 3.10\n",
	}
	header := domain.InvoiceHeader{InvoiceYear: 2025}

	r := parser.ExtractMatrix(cat, m, header)

	fuel, ok := r.Surcharges["fuel_surcharge"]
	require.True(t, ok, "fuel surcharge triple missing")
	require.NotNil(t, fuel.Published)
	assert.InDelta(t, 2.00, *fuel.Published, 1e-9)
	require.NotNil(t, fuel.Incentive)
	assert.InDelta(t, -0.40, *fuel.Incentive, 1e-9)
	require.NotNil(t, fuel.Billed)
	assert.InDelta(t, 1.60, *fuel.Billed, 1e-9)

	res, ok := r.Surcharges["residential_surcharge"]
	require.True(t, ok, "residential surcharge triple missing")
	require.NotNil(t, res.Billed)
	assert.InDelta(t, 3.10, *res.Billed, 1e-9)
}

func TestExtractMatrix_MainLineWinsOverCatalogPass(t *testing.T) {
	cat := catalog.New()
	m := domain.ShipmentMatrix{
		Text: "03/01 1ZA1B2C3D401234567 Ground Residential 30301 5 12.0 25.50 -5.10 20.40",
	}

	r := parser.ExtractMatrix(cat, m, domain.InvoiceHeader{InvoiceYear: 2025})

	// The catalog pass must not overwrite what the main line already set.
	assert.Equal(t, "1ZA1B2C3D401234567", r.TrackingNumber)
	assert.Equal(t, "Ground Residential", r.ServiceType)
}

func TestExtractMatrix_NoMainLineStillRunsCatalog(t *testing.T) {
	cat := catalog.New()
	m := domain.ShipmentMatrix{
		Text: "1ZA1B2C3D401234567 some fragment without a full shipment line",
	}

	r := parser.ExtractMatrix(cat, m, domain.InvoiceHeader{})

	assert.Equal(t, "1ZA1B2C3D401234567", r.TrackingNumber)
	assert.Nil(t, r.PublishedCharge)
}

func TestExtractMatrix_HeaderFieldsApplied(t *testing.T) {
	cat := catalog.New()
	header := domain.InvoiceHeader{
		InvoiceNumber: "0000A1B2C3",
		AccountNumber: "A1B2C3",
		InvoiceDate:   "March 15, 2025",
		InvoiceYear:   2025,
	}

	r := parser.ExtractMatrix(cat, domain.ShipmentMatrix{Text: "placeholder text"}, header)

	assert.Equal(t, "0000A1B2C3", r.InvoiceNumber)
	assert.Equal(t, "A1B2C3", r.AccountNumber)
	assert.Equal(t, "March 15, 2025", r.InvoiceDate)
}
