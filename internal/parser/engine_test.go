package parser_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shipmatrix/internal/catalog"
	"shipmatrix/internal/domain"
	"shipmatrix/internal/parser"
)

const invoicePageText = `Delivery Service Invoice
Page 1 of 2
Invoice Date March 15, 2025
Invoice Number 0000A1B2C3
Account Number A1B2C3
Shipped from: ACME TOOLS
03/01 1ZA1B2C3D401234567 Ground Residential 30301 5 12.0 25.50 -5.10 20.40
Fuel Surcharge 2.00 -0.40 1.60
Sender: ACME TOOLS 120 Industrial Ave GA 30301 Receiver: JOHN SMITH 45 Oak Street CT 06010
Total for Internet-ID 12345
`

func TestParseDocument_EndToEnd(t *testing.T) {
	eng := parser.NewEngine(catalog.New(), false)
	pages := []domain.Page{{Number: 1, Text: invoicePageText}}

	records, stats, err := eng.ParseDocument(context.Background(), pages)
	require.NoError(t, err)
	require.Len(t, records, 1)

	r := records[0]
	assert.Equal(t, "0000A1B2C3", r.InvoiceNumber)
	assert.Equal(t, "A1B2C3", r.AccountNumber)
	assert.Equal(t, "1ZA1B2C3D401234567", r.TrackingNumber)
	assert.Equal(t, "2025-03-01", r.ShipmentDate)
	assert.Equal(t, "Ground Residential", r.ServiceType)
	assert.Equal(t, "30301", r.DestinationZIP)
	assert.Equal(t, 1, r.PageNumber)

	require.NotNil(t, r.LineTotalPublished)
	assert.InDelta(t, 27.50, *r.LineTotalPublished, 1e-9)
	require.NotNil(t, r.LineTotalIncentive)
	assert.InDelta(t, -5.50, *r.LineTotalIncentive, 1e-9)
	require.NotNil(t, r.LineTotalBilled)
	assert.InDelta(t, 22.00, *r.LineTotalBilled, 1e-9)

	assert.Equal(t, "ACME TOOLS", r.SenderName)
	assert.Equal(t, "JOHN SMITH", r.ReceiverName)

	assert.Equal(t, 1, stats.TotalInvoices)
	assert.Equal(t, 1, stats.TotalShipments)
	assert.InDelta(t, 27.50, stats.TotalPublished, 1e-9)
	assert.InDelta(t, 22.00, stats.TotalBilled, 1e-9)
	assert.Equal(t, 1, stats.ServiceTypes["Ground Residential"])
	assert.Equal(t, 1, stats.Zones["5"])
	assert.Equal(t, 1, stats.FieldCoverage["tracking_number"])
	assert.Zero(t, stats.IncentiveSignWarnings)
}

func TestParseDocument_EmptyDocument(t *testing.T) {
	eng := parser.NewEngine(catalog.New(), false)

	_, _, err := eng.ParseDocument(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrEmptyDocument)
}

func TestParseDocument_NoInvoiceStartPage(t *testing.T) {
	eng := parser.NewEngine(catalog.New(), false)
	pages := []domain.Page{{Number: 1, Text: "a page with no invoice markers at all"}}

	records, stats, err := eng.ParseDocument(context.Background(), pages)
	require.NoError(t, err)
	assert.Empty(t, records)
	assert.Zero(t, stats.TotalInvoices)
	assert.Zero(t, stats.TotalShipments)
}

func TestParseDocument_CanceledContext(t *testing.T) {
	eng := parser.NewEngine(catalog.New(), false)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := eng.ParseDocument(ctx, []domain.Page{{Number: 1, Text: "x"}})
	assert.ErrorIs(t, err, context.Canceled)
}
