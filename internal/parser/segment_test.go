package parser_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shipmatrix/internal/parser"
)

func TestSegment_SplitsOnDateTrackingBoundaries(t *testing.T) {
	text := "03/01 1ZA1B2C3D401234567 Ground Residential 30301 5 12.0 25.50 -5.10 20.40\n" +
		"Fuel Surcharge 2.00 -0.40 1.60\n" +
		"03/02 1ZA1B2C3D409876543 Next Day Air 06010 8 2.0 41.00 -8.20 32.80\n"

	matrices := parser.Segment(text)
	require.Len(t, matrices, 2)

	assert.Equal(t, "1ZA1B2C3D401234567", matrices[0].TrackingNumber)
	assert.Equal(t, "03/01", matrices[0].ShipDate)
	assert.Contains(t, matrices[0].Text, "Fuel Surcharge")
	assert.NotContains(t, matrices[0].Text, "Next Day Air")

	assert.Equal(t, "1ZA1B2C3D409876543", matrices[1].TrackingNumber)
	assert.Equal(t, "03/02", matrices[1].ShipDate)
}

func TestSegment_LastBlockStopsAtEndMarker(t *testing.T) {
	text := "03/01 1ZA1B2C3D401234567 Ground Residential 30301 5 12.0 25.50 -5.10 20.40\n" +
		"Fuel Surcharge 2.00 -0.40 1.60\n" +
		"Total for Internet-ID 12345 99.00\n"

	matrices := parser.Segment(text)
	require.Len(t, matrices, 1)
	assert.Contains(t, matrices[0].Text, "Fuel Surcharge")
	assert.NotContains(t, matrices[0].Text, "Total for Internet-ID")
}

func TestSegment_ShortBlocksDropped(t *testing.T) {
	// Second boundary opens a block too short to describe a shipment.
	text := "03/01 1ZA1B2C3D401234567 Ground Residential 30301 5 12.0 25.50 -5.10 20.40\n" +
		"03/02 1ZA1B2C3D409876543\nPage 1 of 2\n"

	matrices := parser.Segment(text)
	require.Len(t, matrices, 1)
	assert.Equal(t, "1ZA1B2C3D401234567", matrices[0].TrackingNumber)
}

func TestSegment_BareTrackingFallback(t *testing.T) {
	text := "1ZA1B2C3D401234567 Ground Residential 30301 5 12.0 25.50 -5.10 20.40 extra tail\n"

	matrices := parser.Segment(text)
	require.Len(t, matrices, 1)
	assert.Equal(t, "1ZA1B2C3D401234567", matrices[0].TrackingNumber)
	assert.Empty(t, matrices[0].ShipDate)
}

func TestSegment_NoBoundariesYieldsNil(t *testing.T) {
	assert.Empty(t, parser.Segment("no shipment content on this page at all"))
}

func TestSegment_OffsetsCoverBlockText(t *testing.T) {
	text := "preamble text before the matrix begins here....\n" +
		"03/01 1ZA1B2C3D401234567 Ground Residential 30301 5 12.0 25.50 -5.10 20.40\n"

	matrices := parser.Segment(text)
	require.Len(t, matrices, 1)
	m := matrices[0]
	assert.Equal(t, m.Text, strings.TrimSpace(text[m.Start:m.End]))
}
