package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shipmatrix/internal/catalog"
	"shipmatrix/internal/domain"
	"shipmatrix/internal/parser"
)

func TestCleanServiceName(t *testing.T) {
	assert.Equal(t, "Ground Residential", parser.CleanServiceName("Ground Residential 30301"))
	assert.Equal(t, "Next Day Air", parser.CleanServiceName("Next Day Air 06010 8"))
	assert.Equal(t, "Ground", parser.CleanServiceName("  Ground  "))
	assert.Equal(t, "2nd Day Air", parser.CleanServiceName("2nd  Day   Air"))
}

func TestExtractMatrix_BackfillsCustomerWeight(t *testing.T) {
	cat := catalog.New()
	m := domain.ShipmentMatrix{
		Text: "03/01 1ZA1B2C3D401234567 Ground Residential 30301 5 12.0 25.50 -5.10 20.40\n" +
			"Customer Weight 11.5\n",
	}

	r := parser.ExtractMatrix(cat, m, domain.InvoiceHeader{InvoiceYear: 2025})
	require.NotNil(t, r.CustomerWeight)
	assert.InDelta(t, 11.5, *r.CustomerWeight, 1e-9)
}

func TestExtractMatrix_BackfillsDimensions(t *testing.T) {
	cat := catalog.New()
	m := domain.ShipmentMatrix{
		Text: "03/01 1ZA1B2C3D401234567 Ground Residential 30301 5 12.0 25.50 -5.10 20.40\n" +
			"Customer Entered Dimensions = 10 x 8 x 6 in\n",
	}

	r := parser.ExtractMatrix(cat, m, domain.InvoiceHeader{InvoiceYear: 2025})
	assert.Equal(t, "10 x 8 x 6 in", r.Dimensions)
}

func TestExtractMatrix_BackfillsMessageCodes(t *testing.T) {
	cat := catalog.New()
	m := domain.ShipmentMatrix{
		Text: "03/01 1ZA1B2C3D401234567 Ground Residential 30301 5 12.0 25.50 -5.10 20.40\n" +
			"Message Codes: a1, b2\n",
	}

	r := parser.ExtractMatrix(cat, m, domain.InvoiceHeader{InvoiceYear: 2025})
	assert.Equal(t, "a1, b2", r.MessageCodes)
}
