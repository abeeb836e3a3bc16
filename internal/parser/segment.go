package parser

import (
	"regexp"
	"strings"

	"shipmatrix/internal/domain"
)

// minMatrixLen is the shortest block that can plausibly describe a shipment;
// anything shorter is segmentation noise and dropped.
const minMatrixLen = 50

var (
	// Primary boundary: ship date followed by a tracking number.
	reMatrixBoundary = regexp.MustCompile(`(\d{2}/\d{2}(?:/\d{2,4})?)\s+(1Z[A-Z0-9]{16})`)

	// Fallback boundary: a bare tracking number with no date prefix.
	reBareTracking = regexp.MustCompile(`1Z[A-Z0-9]{16}`)

	reShipDate = regexp.MustCompile(`\d{2}/\d{2}(?:/\d{2,4})?`)

	// End markers close out the final block of an invoice: billing summary
	// headings, page footers, and adjustment sections.
	matrixEndMarkers = []*regexp.Regexp{
		regexp.MustCompile(`(?i)Total\s+for\s+Internet[-\s]*ID`),
		regexp.MustCompile(`(?i)Total\s+Shipping\s+API`),
		regexp.MustCompile(`(?i)Page\s+\d+\s+of\s+\d+`),
		regexp.MustCompile(`(?i)Consolidated\s+(?:Billing|Remittance)`),
		regexp.MustCompile(`(?i)Invoice\s+Messaging`),
		regexp.MustCompile(`(?i)Code\s+Message`),
	}
)

// Segment splits one invoice unit's concatenated text into ordered shipment
// matrices, one per tracking-number boundary. Returns an empty slice when no
// boundary pattern matches anywhere in the text.
func Segment(text string) []domain.ShipmentMatrix {
	boundaries := reMatrixBoundary.FindAllStringIndex(text, -1)
	if len(boundaries) == 0 {
		boundaries = reBareTracking.FindAllStringIndex(text, -1)
	}
	if len(boundaries) == 0 {
		return nil
	}

	matrices := make([]domain.ShipmentMatrix, 0, len(boundaries))
	for i, b := range boundaries {
		start := b[0]
		var end int
		if i+1 < len(boundaries) {
			end = boundaries[i+1][0]
		} else {
			end = lastBlockEnd(text, start)
		}

		blockText := strings.TrimSpace(text[start:end])
		if len(blockText) < minMatrixLen {
			continue
		}

		m := domain.ShipmentMatrix{
			Text:  blockText,
			Start: start,
			End:   end,
		}
		m.TrackingNumber = reBareTracking.FindString(blockText)
		m.ShipDate = reShipDate.FindString(blockText)
		matrices = append(matrices, m)
	}
	return matrices
}

// lastBlockEnd finds where the final matrix ends: the nearest end marker
// after start that leaves enough room for a meaningful block, else the end
// of the text.
func lastBlockEnd(text string, start int) int {
	rest := text[start:]
	end := len(text)
	for _, marker := range matrixEndMarkers {
		if loc := marker.FindStringIndex(rest); loc != nil {
			candidate := start + loc[0]
			if candidate > start+minMatrixLen && candidate < end {
				end = candidate
			}
		}
	}
	return end
}
