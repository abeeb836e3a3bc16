package parser

import (
	"shipmatrix/internal/catalog"
	"shipmatrix/internal/domain"
)

// CalculateLineTotals recomputes the line total as base charges plus
// every extracted surcharge component. An unset component contributes
// zero. The computed values replace anything the catalog pass put in
// the line total fields, and nothing is written when every component
// is absent. Calling it twice yields the same result.
func CalculateLineTotals(cat *catalog.Catalog, r *domain.ShipmentRecord) {
	var published, incentive, billed float64

	if r.PublishedCharge != nil {
		published += *r.PublishedCharge
	}
	if r.IncentiveCredit != nil {
		incentive += *r.IncentiveCredit
	}
	if r.BilledCharge != nil {
		billed += *r.BilledCharge
	}

	for _, name := range cat.SurchargeNames() {
		t, ok := r.Surcharge(name)
		if !ok {
			continue
		}
		if t.Published != nil {
			published += *t.Published
		}
		if t.Incentive != nil {
			incentive += *t.Incentive
		}
		if t.Billed != nil {
			billed += *t.Billed
		}
	}

	if published > 0 || incentive != 0 || billed > 0 {
		p, i, b := published, incentive, billed
		r.LineTotalPublished = &p
		r.LineTotalIncentive = &i
		r.LineTotalBilled = &b
		r.LineTotal = &domain.CurrencyTriple{Published: &p, Incentive: &i, Billed: &b}
	}
}

// IncentiveSignSuspect reports whether the record carries a positive
// incentive credit, which normally prints as a negative adjustment.
func IncentiveSignSuspect(r *domain.ShipmentRecord) bool {
	return r.IncentiveCredit != nil && *r.IncentiveCredit > 0
}
