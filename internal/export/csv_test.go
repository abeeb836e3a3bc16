package export_test

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shipmatrix/internal/catalog"
	"shipmatrix/internal/domain"
	"shipmatrix/internal/export"
)

func fptr(v float64) *float64 { return &v }
func iptr(v int) *int         { return &v }

func sampleRecord() domain.ShipmentRecord {
	r := domain.ShipmentRecord{
		InvoiceNumber:   "0000A1B2C3",
		TrackingNumber:  "1ZA1B2C3D401234567",
		AccountNumber:   "A1B2C3",
		DestinationZIP:  "30301",
		ServiceType:     "Ground Residential",
		ShipmentDate:    "2025-03-01",
		Zone:            iptr(5),
		Weight:          fptr(12.0),
		PublishedCharge: fptr(25.50),
		IncentiveCredit: fptr(-5.10),
		BilledCharge:    fptr(20.40),
	}
	r.SetSurcharge("fuel_surcharge", domain.CurrencyTriple{
		Published: fptr(2.00), Incentive: fptr(-0.40), Billed: fptr(1.60),
	})
	return r
}

func TestColumns_HeadersUniqueAndOrdered(t *testing.T) {
	cols := export.Columns(catalog.New())
	require.NotEmpty(t, cols)

	assert.Equal(t, "invoice_number", cols[0].Header)
	assert.Equal(t, "tracking_number", cols[1].Header)

	seen := make(map[string]bool, len(cols))
	for _, c := range cols {
		assert.False(t, seen[c.Header], "duplicate column %s", c.Header)
		seen[c.Header] = true
	}
	assert.True(t, seen["fuel_surcharge_billed"])
	assert.True(t, seen["line_total_billed"])
}

func TestColumns_ValueFormatting(t *testing.T) {
	cat := catalog.New()
	r := sampleRecord()

	byHeader := make(map[string]string)
	for _, c := range export.Columns(cat) {
		byHeader[c.Header] = c.Value(&r)
	}

	assert.Equal(t, "$25.50", byHeader["published_charge"])
	assert.Equal(t, "$-5.10", byHeader["incentive_credit"])
	assert.Equal(t, "12 lbs", byHeader["weight"])
	assert.Equal(t, "5", byHeader["zone"])
	assert.Equal(t, "No", byHeader["identity_corrected"])
	assert.Equal(t, "$1.60", byHeader["fuel_surcharge_billed"])

	// Unset pointers and absent surcharges render empty.
	assert.Empty(t, byHeader["customer_weight"])
	assert.Empty(t, byHeader["residential_surcharge"])
	assert.Empty(t, byHeader["line_total"])
}

func TestCSVWriter_HeaderAndRows(t *testing.T) {
	cat := catalog.New()
	var buf bytes.Buffer
	buf.Write(export.BOM)

	w := export.NewCSVWriter(&buf, cat)
	require.NoError(t, w.WriteHeader())
	require.NoError(t, w.WriteRecords([]domain.ShipmentRecord{sampleRecord()}))
	w.Flush()
	require.NoError(t, w.Error())

	out := buf.Bytes()
	assert.True(t, bytes.HasPrefix(out, export.BOM))

	rows, err := csv.NewReader(strings.NewReader(string(out[len(export.BOM):]))).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)

	header, row := rows[0], rows[1]
	require.Equal(t, len(header), len(row))

	cell := func(name string) string {
		for i, h := range header {
			if h == name {
				return row[i]
			}
		}
		t.Fatalf("column %s not found", name)
		return ""
	}
	assert.Equal(t, "0000A1B2C3", cell("invoice_number"))
	assert.Equal(t, "1ZA1B2C3D401234567", cell("tracking_number"))
	assert.Equal(t, "Ground Residential", cell("service_type"))
	assert.Equal(t, "$20.40", cell("billed_charge"))
}
