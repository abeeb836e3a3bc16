package parser

import (
	"regexp"
	"strings"

	"shipmatrix/internal/catalog"
	"shipmatrix/internal/domain"
)

// Main shipment line patterns, most specific first. Group layout is
// date, tracking, service, zip, [zone], weight, published, incentive,
// billed. The three-group variant without zone yields eight groups.
var mainLinePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(\d{2}/\d{2})\s+(1Z[A-Z0-9]{16})\s+([A-Za-z\s]+?)\s+(\d{5})\s+(\d{1,4})\s+(\d+(?:\.\d+)?)\s+([\d,]+\.\d{2})\s*(-?[\d,]+\.\d{2})\s+([\d,]+\.\d{2})`),
	regexp.MustCompile(`(?i)(\d{2}/\d{2})\s+(1Z[A-Z0-9]{16})\s+((?:Ground|Air|Express|Next\s+Day|2nd\s+Day|3\s*Day).*?Residential)\s+(\d{5})\s+(\d{1,4})\s+(\d+(?:\.\d+)?)\s+([\d,]+\.\d{2})\s*(-?[\d,]+\.\d{2})\s+([\d,]+\.\d{2})`),
	regexp.MustCompile(`(?i)(\d{2}/\d{2})\s+(1Z[A-Z0-9]{16})\s+((?:Ground|Air|Express|Next\s+Day|2nd\s+Day|3\s*Day).*?)\s+(\d{5})\s+(\d+(?:\.\d+)?)\s+([\d,]+\.\d{2})\s*(-?[\d,]+\.\d{2})\s+([\d,]+\.\d{2})`),
	regexp.MustCompile(`(?i)(\d{2}/\d{2})\s+(1Z[A-Z0-9]{16})\s+([^0-9]+?)\s+(\d{5})\s+(\d{1,4})\s+(\d+)\s+([\d,]+\.\d{2})\s*(-[\d,]+\.\d{2})\s+([\d,]+\.\d{2})`),
}

// ExtractMatrix turns one matrix block into a partial shipment record.
// The main-line pass runs first, then the catalog pass fills everything
// the main line did not claim. A field that fails to coerce stays unset.
func ExtractMatrix(cat *catalog.Catalog, m domain.ShipmentMatrix, header domain.InvoiceHeader) domain.ShipmentRecord {
	var r domain.ShipmentRecord
	r.ApplyHeader(header)

	extractMainLine(&r, m.Text, header.InvoiceYear)
	extractCatalogFields(cat, &r, m.Text, header.InvoiceYear)
	postProcess(&r, m.Text)

	return r
}

func extractMainLine(r *domain.ShipmentRecord, text string, invoiceYear int) {
	for _, p := range mainLinePatterns {
		m := p.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		groups := m[1:]
		date := catalog.ParseDate(groups[0], invoiceYear)
		r.ShipmentDate = date
		r.PickupDate = date
		r.TrackingNumber = groups[1]

		if len(groups) >= 9 {
			r.ServiceType = CleanServiceName(groups[2])
			r.DestinationZIP = groups[3]
			if v, ok := catalog.ParseInt(groups[4]); ok {
				r.Zone = &v
			}
			setFloatPtr(&r.Weight, groups[5])
			setFloatPtr(&r.PublishedCharge, groups[6])
			setFloatPtr(&r.IncentiveCredit, groups[7])
			setFloatPtr(&r.BilledCharge, groups[8])
		} else {
			r.ServiceType = CleanServiceName(groups[2])
			r.DestinationZIP = groups[3]
			setFloatPtr(&r.Weight, groups[4])
			setFloatPtr(&r.PublishedCharge, groups[5])
			setFloatPtr(&r.IncentiveCredit, groups[6])
			setFloatPtr(&r.BilledCharge, groups[7])
		}
		return
	}
}

func setFloatPtr(dst **float64, raw string) {
	if v, ok := catalog.ParseCurrency(raw); ok {
		*dst = &v
	}
}

func extractCatalogFields(cat *catalog.Catalog, r *domain.ShipmentRecord, text string, invoiceYear int) {
	for _, name := range cat.Names() {
		if catalog.HasValue(r, name) {
			continue
		}
		def := cat.Field(name)
		for _, p := range def.Patterns {
			m := p.FindStringSubmatch(text)
			if m == nil {
				continue
			}
			if applyMatch(r, def, m, invoiceYear) {
				break
			}
		}
	}
}

// applyMatch coerces the capture groups per the field's data type and
// writes the value. Returns false when coercion fails so the caller
// moves on to the next candidate pattern.
func applyMatch(r *domain.ShipmentRecord, def *catalog.FieldDefinition, m []string, invoiceYear int) bool {
	switch def.DataType {
	case catalog.TypeCurrencyTriple:
		if len(m) < 4 {
			return false
		}
		var t domain.CurrencyTriple
		if v, ok := catalog.ParseCurrency(m[1]); ok {
			t.Published = &v
		}
		if v, ok := catalog.ParseCurrency(m[2]); ok {
			t.Incentive = &v
		}
		if v, ok := catalog.ParseCurrency(m[3]); ok {
			t.Billed = &v
		}
		if t.IsZero() {
			return false
		}
		catalog.SetTriple(r, def.Name, t)
		return true

	case catalog.TypeCurrency, catalog.TypeFloat:
		v, ok := catalog.ParseCurrency(m[1])
		if !ok {
			return false
		}
		return catalog.SetFloat(r, def.Name, v)

	case catalog.TypeInteger:
		v, ok := catalog.ParseInt(m[1])
		if !ok {
			return false
		}
		return catalog.SetInt(r, def.Name, v)

	case catalog.TypeDate:
		return catalog.SetString(r, def.Name, catalog.ParseDate(m[1], invoiceYear))

	default:
		value := strings.TrimSpace(m[1])
		if value == "" {
			return false
		}
		if def.Validate != nil && !def.Validate.MatchString(value) {
			return false
		}
		return catalog.SetString(r, def.Name, value)
	}
}
