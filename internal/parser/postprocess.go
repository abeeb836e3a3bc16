package parser

import (
	"regexp"
	"strings"

	"shipmatrix/internal/catalog"
	"shipmatrix/internal/domain"
)

var (
	reTrailingZIP      = regexp.MustCompile(`\s+\d{5}\s*`)
	reTrailingNumber   = regexp.MustCompile(`\s+\d{1,4}\s*$`)
	reTrackingAnywhere = regexp.MustCompile(`1Z[A-Z0-9]{16}`)
	reZIPAnywhere      = regexp.MustCompile(`\d{5}(?:-\d{4})?`)
	reZIPExact         = regexp.MustCompile(`^\d{5}(-\d{4})?$`)

	backfillDimensionPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)Customer\s+Entered\s+Dimensions\s*=\s*([^\n]+)`),
		regexp.MustCompile(`(?i)Dimensions\s*=\s*([^\n]+)`),
		regexp.MustCompile(`(?i)(\d+\s*x\s*\d+\s*x\s*\d+\s*in)`),
	}
	reBackfillMessageCodes = regexp.MustCompile(`(?i)Message\s+Codes?:?\s*([a-z0-9\s,]+)`)
	reBackfillCustWeight   = regexp.MustCompile(`(?i)Customer\s+Weight\s+([\d.]+)`)
)

// CleanServiceName strips trailing ZIP codes and stray numeric columns
// that leak into the service column of the main shipment line.
func CleanServiceName(service string) string {
	service = reTrailingZIP.ReplaceAllString(service, " ")
	service = reTrailingNumber.ReplaceAllString(service, "")
	return strings.TrimSpace(strings.Join(strings.Fields(service), " "))
}

// postProcess runs the cleanup steps after both extraction passes.
// Each step is idempotent and independent of the others.
func postProcess(r *domain.ShipmentRecord, text string) {
	if r.ServiceType != "" {
		r.ServiceType = CleanServiceName(r.ServiceType)
	}

	// A malformed tracking value may still contain a valid identifier.
	if r.TrackingNumber != "" {
		if !strings.HasPrefix(r.TrackingNumber, "1Z") || len(r.TrackingNumber) != 18 {
			if m := reTrackingAnywhere.FindString(r.TrackingNumber); m != "" {
				r.TrackingNumber = m
			}
		}
	}

	if r.DestinationZIP != "" && !reZIPExact.MatchString(r.DestinationZIP) {
		if m := reZIPAnywhere.FindString(r.DestinationZIP); m != "" {
			r.DestinationZIP = m
		}
	}

	if r.CustomerWeight == nil {
		if m := reBackfillCustWeight.FindStringSubmatch(text); m != nil {
			if v, ok := catalog.ParseFloat(m[1]); ok {
				r.CustomerWeight = &v
			}
		}
	}

	if r.Dimensions == "" {
		for _, p := range backfillDimensionPatterns {
			if m := p.FindStringSubmatch(text); m != nil {
				r.Dimensions = strings.TrimSpace(m[1])
				break
			}
		}
	}

	if r.MessageCodes == "" {
		if m := reBackfillMessageCodes.FindStringSubmatch(text); m != nil {
			r.MessageCodes = strings.TrimSpace(m[1])
		}
	}
}
