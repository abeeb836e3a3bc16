package parser

import (
	"context"
	"log"
	"strconv"
	"strings"

	"shipmatrix/internal/catalog"
	"shipmatrix/internal/domain"
	"shipmatrix/internal/identity"
)

// Engine runs the full extraction pipeline for one document: invoice
// boundary detection, per-invoice segmentation, per-block field
// extraction, identity resolution and the final merge. An Engine is
// read-only after construction and safe to share across documents.
type Engine struct {
	catalog *catalog.Catalog
	verbose bool
}

func NewEngine(cat *catalog.Catalog, verbose bool) *Engine {
	return &Engine{catalog: cat, verbose: verbose}
}

// ParseDocument extracts every shipment record from the ordered pages
// of one document. Returns zero records and zero stats for a document
// with no recognizable invoice start page. The stages run in strict
// sequence; cancellation is honored only before work begins.
func (e *Engine) ParseDocument(ctx context.Context, pages []domain.Page) ([]domain.ShipmentRecord, domain.RunStats, error) {
	if err := ctx.Err(); err != nil {
		return nil, domain.RunStats{}, err
	}
	if len(pages) == 0 {
		return nil, domain.RunStats{}, domain.ErrEmptyDocument
	}

	units := DetectInvoices(pages)
	e.logf("parser.Engine: detected %d invoice unit(s) across %d page(s)", len(units), len(pages))

	var records []domain.ShipmentRecord
	for ui, unit := range units {
		text, pageAt := joinUnitText(unit)
		matrices := Segment(text)
		e.logf("parser.Engine: invoice %s: %d matrix block(s)", unit.Header.InvoiceNumber, len(matrices))

		for mi, m := range matrices {
			rec := ExtractMatrix(e.catalog, m, unit.Header)
			rec.InvoiceGroup = ui
			rec.MatrixIndex = mi
			rec.PageNumber = pageAt(m.Start)
			records = append(records, rec)
		}
	}

	tuples := identity.Resolve(pages)
	corrected := identity.Merge(records, tuples)
	e.logf("parser.Engine: identity resolver corrected %d of %d record(s)", corrected, len(records))

	for i := range records {
		CalculateLineTotals(e.catalog, &records[i])
	}

	stats := e.collectStats(units, records)
	return records, stats, nil
}

// joinUnitText concatenates an invoice unit's page texts and returns a
// lookup from an offset in the joined text to the owning page number.
func joinUnitText(unit domain.InvoiceUnit) (string, func(offset int) int) {
	var b strings.Builder
	starts := make([]int, len(unit.PageTexts))
	for i, pt := range unit.PageTexts {
		starts[i] = b.Len()
		b.WriteString(pt)
		b.WriteString("\n")
	}
	pageAt := func(offset int) int {
		page := 0
		for i, s := range starts {
			if offset >= s {
				page = i
			}
		}
		if len(unit.PageNums) == 0 {
			return 0
		}
		return unit.PageNums[page]
	}
	return b.String(), pageAt
}

func (e *Engine) collectStats(units []domain.InvoiceUnit, records []domain.ShipmentRecord) domain.RunStats {
	stats := domain.RunStats{
		TotalInvoices:  len(units),
		TotalShipments: len(records),
		ServiceTypes:   make(map[string]int),
		Zones:          make(map[string]int),
		FieldCoverage:  make(map[string]int),
	}

	for i := range records {
		r := &records[i]
		if r.IdentityCorrected {
			stats.IdentityCorrected++
		}
		if IncentiveSignSuspect(r) {
			stats.IncentiveSignWarnings++
		}
		if r.ServiceType != "" {
			stats.ServiceTypes[r.ServiceType]++
		}
		if r.Zone != nil {
			stats.Zones[strconv.Itoa(*r.Zone)]++
		}
		if r.LineTotalPublished != nil {
			stats.TotalPublished += *r.LineTotalPublished
		}
		if r.LineTotalIncentive != nil {
			stats.TotalIncentive += *r.LineTotalIncentive
		}
		if r.LineTotalBilled != nil {
			stats.TotalBilled += *r.LineTotalBilled
		}
		for _, name := range e.catalog.Names() {
			if catalog.HasValue(r, name) {
				stats.FieldCoverage[name]++
			}
		}
	}
	return stats
}

func (e *Engine) logf(format string, args ...any) {
	if e.verbose {
		log.Printf(format, args...)
	}
}
