package parser

import (
	"regexp"
	"strings"

	"shipmatrix/internal/catalog"
	"shipmatrix/internal/domain"
)

var (
	headerInvoiceNumberPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)Invoice\s+Number\s+([A-Z0-9]{10,})`),
		regexp.MustCompile(`(?is)Invoice\s+Date.*?Invoice\s+Number\s+([A-Z0-9]{10,})`),
		regexp.MustCompile(`(?i)Invoice\s+Number\s*:\s*([A-Z0-9]{10,})`),
		regexp.MustCompile(`(?is)Delivery\s+Service\s+Invoice.*?([0-9A-Z]{10,})`),
	}

	headerAccountPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)Account\s+Number\s+([A-Z0-9]{4,})`),
		regexp.MustCompile(`(?i)Account\s+Number\s*:\s*([A-Z0-9]{4,})`),
		regexp.MustCompile(`(?i)AccountNumber\s*([A-Z0-9]{4,})`),
	}

	headerDatePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)Invoice\s+Date\s+([A-Za-z]+\s+\d{1,2},\s+\d{4})`),
		regexp.MustCompile(`(?i)Invoice\s+Date\s*:\s*([A-Za-z]+\s+\d{1,2},\s+\d{4})`),
		regexp.MustCompile(`(?i)Invoice\s+Date\s+(\d{1,2}/\d{1,2}/\d{4})`),
		regexp.MustCompile(`((?:January|February|March|April|May|June|July|August|September|October|November|December)\s+\d{1,2},\s+\d{4})`),
	}

	headerControlIDPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)Control\s+ID\s+([A-Z0-9\-#]+)`),
		regexp.MustCompile(`(?i)Control\s*ID\s*:\s*([A-Z0-9\-#]+)`),
	}

	reShippedFrom = regexp.MustCompile(`(?i)Shipped\s+from:\s*([^\n]+)`)

	// Sender company patterns look at header-level text only. The last one
	// matches the "Company Name (CODE)" form used on the first page.
	headerSenderNamePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?im)(?:Ship\s+From|Shipped\s+from):\s*([A-Z][A-Za-z0-9\s&\.,\(\)\-']+?)(?:\s+\d|\n)`),
		regexp.MustCompile(`(?im)From:\s*([A-Z][A-Za-z0-9\s&\.,\(\)\-']+?)(?:\s+\d|\n)`),
		regexp.MustCompile(`(?m)([A-Z][A-Z\s&\.,\(\)\-']{2,40})\s*\([A-Z\-]+\)`),
	}

	headerSenderAddressPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?im)[A-Z][A-Za-z0-9\s&\.,\(\)\-']+?\s*\([A-Z\-]+\)\s*,?\s*(\d+[^\n]+)`),
		regexp.MustCompile(`(?im)(?:Ship\s+From|From):\s*[^,\n]+,\s*([0-9][^\n]+)`),
	}

	reCompanyShape = regexp.MustCompile(`^[A-Z][A-Za-z0-9\s&\.,\(\)\-']+$`)

	// Vocabulary that disqualifies a candidate as a company name.
	companyDenyTerms = []string{
		"total", "charge", "published", "incentive", "billed", "surcharge",
		"weight", "dimensions", "customer", "fuel", "residential",
		"message", "codes", "adjustment", "billing", "correction",
		"internet-id", "shipping", "api", "outbound", "invoice", "number",
		"date", "account", "ground", "air", "express", "next", "day",
		"tracking", "zone", "pickup", "delivery",
	}

	reCompanyNoiseWords = regexp.MustCompile(`(?i)\b(?:Customer|Weight|Residential|Surcharge|Fuel|Next|Day|Air|Ground|Total|Published|Incentive|Charge|Credit|Billed|Dimensions|Message|Codes|Internet-ID|Shipping|API|Outbound|Adjustment|Billing|Correction|Goodwill|Invoice|Number|Date|Account|Tracking|Zone|Pickup|Delivery)\b`)

	reAddressNoiseWords = regexp.MustCompile(`(?i)\b(?:Total|Published|Incentive|Billed|Customer|Weight|Dimensions)\b`)

	reCurrencyAmount = regexp.MustCompile(`\$?[\d,]+\.\d{2}`)
	reWeightSuffix   = regexp.MustCompile(`(?i)\b\d+(?:\.\d+)?\s*(?:lb|lbs)\b`)
	reMultiSpace     = regexp.MustCompile(`\s+`)
)

// ExtractHeader pulls the invoice-level fields from the full text of an
// invoice unit. Missing fields stay empty; the header never fails.
func ExtractHeader(text string) domain.InvoiceHeader {
	var h domain.InvoiceHeader

	h.InvoiceNumber = firstGroup(headerInvoiceNumberPatterns, text)
	h.AccountNumber = firstGroup(headerAccountPatterns, text)
	h.ControlID = firstGroup(headerControlIDPatterns, text)

	if date := firstGroup(headerDatePatterns, text); date != "" {
		h.InvoiceDate = date
		h.InvoiceYear = catalog.DeriveYear(date)
	}

	if m := reShippedFrom.FindStringSubmatch(text); m != nil {
		h.ShippedFrom = strings.TrimSpace(m[1])
	}

	for _, p := range headerSenderNamePatterns {
		m := p.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		name := cleanCompanyName(m[1])
		if isValidCompanyName(name) {
			h.SenderName = name
			break
		}
	}

	for _, p := range headerSenderAddressPatterns {
		m := p.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		addr := cleanHeaderAddress(m[len(m)-1])
		if isValidStreetAddress(addr) {
			h.SenderAddress = addr
			break
		}
	}

	return h
}

func firstGroup(patterns []*regexp.Regexp, text string) string {
	for _, p := range patterns {
		if m := p.FindStringSubmatch(text); m != nil {
			return strings.TrimSpace(m[1])
		}
	}
	return ""
}

func isValidCompanyName(name string) bool {
	if len(name) < 2 {
		return false
	}
	lower := strings.ToLower(name)
	for _, term := range companyDenyTerms {
		if strings.Contains(lower, term) {
			return false
		}
	}
	return reCompanyShape.MatchString(name)
}

func cleanCompanyName(name string) string {
	cleaned := reCompanyNoiseWords.ReplaceAllString(name, "")
	cleaned = reCurrencyAmount.ReplaceAllString(cleaned, "")
	cleaned = reWeightSuffix.ReplaceAllString(cleaned, "")
	cleaned = reMultiSpace.ReplaceAllString(cleaned, " ")
	return strings.Trim(cleaned, " .,:-")
}

var streetTypeTokens = []string{
	"street", "st", "avenue", "ave", "drive", "dr", "road", "rd",
	"court", "ct", "boulevard", "blvd", "lane", "ln",
}

// isValidStreetAddress applies the shape check shared by every address
// consumer: starts with a digit and names a street type.
func isValidStreetAddress(address string) bool {
	if len(address) < 5 {
		return false
	}
	if address[0] < '0' || address[0] > '9' {
		return false
	}
	lower := strings.ToLower(address)
	for _, tok := range streetTypeTokens {
		if strings.Contains(lower, tok) {
			return true
		}
	}
	return false
}

func cleanHeaderAddress(address string) string {
	cleaned := reCurrencyAmount.ReplaceAllString(address, "")
	cleaned = reAddressNoiseWords.ReplaceAllString(cleaned, "")
	return strings.TrimSpace(reMultiSpace.ReplaceAllString(cleaned, " "))
}
