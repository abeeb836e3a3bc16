package parser

import (
	"regexp"
	"strings"

	"shipmatrix/internal/domain"
)

var (
	reInvoiceTitle = regexp.MustCompile(`(?i)Delivery Service Invoice`)
	rePageOneOfN   = regexp.MustCompile(`(?i)Page\s+1\s+of\s+\d+`)

	// Summary/reconciliation pages belong to no invoice and are skipped
	// before grouping.
	summaryPageTitles = []string{
		"Consolidated Billing Summary",
		"Consolidated Remittance Summary",
	}
)

// IsInvoiceStartPage reports whether a page opens a new invoice: it must
// carry the invoice title and a first-page marker.
func IsInvoiceStartPage(text string) bool {
	return reInvoiceTitle.MatchString(text) && rePageOneOfN.MatchString(text)
}

// IsSummaryPage reports whether a page is a consolidated summary page.
func IsSummaryPage(text string) bool {
	for _, title := range summaryPageTitles {
		if strings.Contains(text, title) {
			return true
		}
	}
	return false
}

// IsEmptyPageText applies the emptiness predicate to already-flattened page
// text: fewer than 50 characters, or fewer than 3 lines longer than 10
// characters.
func IsEmptyPageText(text string) bool {
	trimmed := strings.TrimSpace(text)
	if len(trimmed) < 50 {
		return true
	}
	meaningful := 0
	for _, line := range strings.Split(trimmed, "\n") {
		if len(strings.TrimSpace(line)) > 10 {
			meaningful++
		}
	}
	return meaningful < 3
}

// DetectInvoices groups a document's ordered pages into invoice units. A new
// unit starts at every invoice-start page; summary pages are dropped
// entirely; pages before the first start page belong to no unit. A document
// with no start page yields zero units, which is a valid result, not an
// error.
func DetectInvoices(pages []domain.Page) []domain.InvoiceUnit {
	var units []domain.InvoiceUnit
	var current *domain.InvoiceUnit

	for _, page := range pages {
		if IsSummaryPage(page.Text) {
			continue
		}
		if IsInvoiceStartPage(page.Text) {
			if current != nil {
				units = append(units, *current)
			}
			current = &domain.InvoiceUnit{
				Header:    ExtractHeader(page.Text),
				PageNums:  []int{page.Number},
				PageTexts: []string{page.Text},
			}
			continue
		}
		if current != nil {
			current.PageNums = append(current.PageNums, page.Number)
			current.PageTexts = append(current.PageTexts, page.Text)
		}
	}
	if current != nil {
		units = append(units, *current)
	}
	return units
}
