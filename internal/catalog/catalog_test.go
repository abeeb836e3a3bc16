package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shipmatrix/internal/catalog"
	"shipmatrix/internal/domain"
)

func TestNew_FieldLookup(t *testing.T) {
	cat := catalog.New()

	def := cat.Field("tracking_number")
	require.NotNil(t, def)
	assert.Equal(t, "Tracking Number", def.DisplayName)
	assert.True(t, def.Required)

	assert.Nil(t, cat.Field("no_such_field"))
}

func TestNew_PriorityOrdering(t *testing.T) {
	cat := catalog.New()

	names := cat.Names()
	require.Len(t, names, cat.Len())

	lastPriority := 0
	for _, name := range names {
		p := cat.Field(name).Priority
		assert.GreaterOrEqual(t, p, lastPriority, "field %s out of priority order", name)
		lastPriority = p
	}
}

func TestSurchargeNames_ExcludesLineTotal(t *testing.T) {
	cat := catalog.New()

	names := cat.SurchargeNames()
	assert.NotEmpty(t, names)
	assert.Contains(t, names, "fuel_surcharge")
	assert.Contains(t, names, "residential_surcharge")
	assert.NotContains(t, names, "line_total")
}

func TestFieldsByCategory_CoversEveryField(t *testing.T) {
	cat := catalog.New()

	groups := cat.FieldsByCategory()
	total := 0
	for _, names := range groups {
		total += len(names)
	}
	assert.Equal(t, cat.Len(), total)
}

func TestHasValue_ScalarBindings(t *testing.T) {
	var r domain.ShipmentRecord

	assert.False(t, catalog.HasValue(&r, "tracking_number"))
	catalog.SetString(&r, "tracking_number", "1ZA1B2C3D401234567")
	assert.True(t, catalog.HasValue(&r, "tracking_number"))
	assert.Equal(t, "1ZA1B2C3D401234567", r.TrackingNumber)

	assert.False(t, catalog.HasValue(&r, "weight"))
	catalog.SetFloat(&r, "weight", 12.5)
	assert.True(t, catalog.HasValue(&r, "weight"))
	require.NotNil(t, r.Weight)
	assert.Equal(t, 12.5, *r.Weight)

	assert.False(t, catalog.HasValue(&r, "zone"))
	catalog.SetInt(&r, "zone", 5)
	assert.True(t, catalog.HasValue(&r, "zone"))
	require.NotNil(t, r.Zone)
	assert.Equal(t, 5, *r.Zone)
}

func TestHasValue_UnknownFieldReportsFalse(t *testing.T) {
	var r domain.ShipmentRecord
	assert.False(t, catalog.HasValue(&r, "bogus_field"))
}

func TestSetString_TypeMismatchRejected(t *testing.T) {
	var r domain.ShipmentRecord
	assert.False(t, catalog.SetString(&r, "weight", "12.5"))
	assert.Nil(t, r.Weight)
}

func TestSetTriple_SurchargeGoesToMap(t *testing.T) {
	var r domain.ShipmentRecord
	pub, inc, bil := 2.0, -0.4, 1.6

	catalog.SetTriple(&r, "fuel_surcharge", domain.CurrencyTriple{Published: &pub, Incentive: &inc, Billed: &bil})

	got, ok := r.Surcharge("fuel_surcharge")
	require.True(t, ok)
	assert.Equal(t, 2.0, *got.Published)
	assert.True(t, catalog.HasValue(&r, "fuel_surcharge"))
}

func TestSetTriple_LineTotalPopulatesScalars(t *testing.T) {
	var r domain.ShipmentRecord
	pub, inc, bil := 27.5, -5.5, 22.0

	catalog.SetTriple(&r, "line_total", domain.CurrencyTriple{Published: &pub, Incentive: &inc, Billed: &bil})

	require.NotNil(t, r.LineTotal)
	require.NotNil(t, r.LineTotalPublished)
	assert.Equal(t, 27.5, *r.LineTotalPublished)
	assert.Equal(t, -5.5, *r.LineTotalIncentive)
	assert.Equal(t, 22.0, *r.LineTotalBilled)
	assert.True(t, catalog.HasValue(&r, "line_total"))
}
