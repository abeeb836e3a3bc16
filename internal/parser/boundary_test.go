package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shipmatrix/internal/domain"
	"shipmatrix/internal/parser"
)

func TestIsInvoiceStartPage(t *testing.T) {
	assert.True(t, parser.IsInvoiceStartPage("Delivery Service Invoice\nPage 1 of 4\n"))
	assert.False(t, parser.IsInvoiceStartPage("Delivery Service Invoice\nPage 2 of 4\n"))
	assert.False(t, parser.IsInvoiceStartPage("Some other document\nPage 1 of 4\n"))
}

func TestIsSummaryPage(t *testing.T) {
	assert.True(t, parser.IsSummaryPage("Consolidated Billing Summary\ntotals follow"))
	assert.True(t, parser.IsSummaryPage("Consolidated Remittance Summary"))
	assert.False(t, parser.IsSummaryPage("Delivery Service Invoice"))
}

func TestIsEmptyPageText(t *testing.T) {
	assert.True(t, parser.IsEmptyPageText("   \n  \n"))
	assert.True(t, parser.IsEmptyPageText("short page"))

	full := "this is a meaningful line of invoice text\n" +
		"another meaningful line with content\n" +
		"and a third line that also has content\n"
	assert.False(t, parser.IsEmptyPageText(full))
}

func TestDetectInvoices_GroupsPagesByStartPage(t *testing.T) {
	pages := []domain.Page{
		{Number: 1, Text: "Delivery Service Invoice\nPage 1 of 2\nInvoice Number 0000A1B2C3\n"},
		{Number: 2, Text: "continuation page with shipment details\n"},
		{Number: 3, Text: "Delivery Service Invoice\nPage 1 of 1\nInvoice Number 0000D4E5F6\n"},
	}

	units := parser.DetectInvoices(pages)
	require.Len(t, units, 2)
	assert.Equal(t, []int{1, 2}, units[0].PageNums)
	assert.Equal(t, []int{3}, units[1].PageNums)
	assert.Equal(t, "0000A1B2C3", units[0].Header.InvoiceNumber)
	assert.Equal(t, "0000D4E5F6", units[1].Header.InvoiceNumber)
}

func TestDetectInvoices_SummaryPagesDropped(t *testing.T) {
	pages := []domain.Page{
		{Number: 1, Text: "Delivery Service Invoice\nPage 1 of 2\n"},
		{Number: 2, Text: "Consolidated Billing Summary\n"},
		{Number: 3, Text: "continuation\n"},
	}

	units := parser.DetectInvoices(pages)
	require.Len(t, units, 1)
	assert.Equal(t, []int{1, 3}, units[0].PageNums)
}

func TestDetectInvoices_PagesBeforeFirstStartIgnored(t *testing.T) {
	pages := []domain.Page{
		{Number: 1, Text: "cover letter text that belongs to no invoice\n"},
		{Number: 2, Text: "Delivery Service Invoice\nPage 1 of 1\n"},
	}

	units := parser.DetectInvoices(pages)
	require.Len(t, units, 1)
	assert.Equal(t, []int{2}, units[0].PageNums)
}

func TestDetectInvoices_NoStartPageYieldsNoUnits(t *testing.T) {
	pages := []domain.Page{
		{Number: 1, Text: "plain text without any invoice markers\n"},
	}
	assert.Empty(t, parser.DetectInvoices(pages))
}
