package validator

import (
	"fmt"
	"math"
	"regexp"

	"shipmatrix/internal/domain"
)

var (
	reTracking = regexp.MustCompile(`^1Z[0-9A-Z]{16}$`)
	reZIP      = regexp.MustCompile(`^\d{5}(-\d{4})?$`)
)

// requiredTrackingRule flags records without a tracking number.
type requiredTrackingRule struct{}

func (requiredTrackingRule) RuleKey() string    { return "required_tracking" }
func (requiredTrackingRule) RuleName() string   { return "Required: Tracking Number" }
func (requiredTrackingRule) Severity() Severity { return SeverityError }

func (r requiredTrackingRule) Validate(rec *domain.ShipmentRecord) []Result {
	res := Result{RuleKey: r.RuleKey(), RuleName: r.RuleName(), Severity: r.Severity(), Field: "tracking_number"}
	if rec.TrackingNumber == "" {
		res.Message = "shipment has no tracking number"
		return []Result{res}
	}
	res.Passed = true
	return []Result{res}
}

// trackingFormatRule checks the 1Z tracking number shape.
type trackingFormatRule struct{}

func (trackingFormatRule) RuleKey() string    { return "tracking_format" }
func (trackingFormatRule) RuleName() string   { return "Format: Tracking Number" }
func (trackingFormatRule) Severity() Severity { return SeverityError }

func (r trackingFormatRule) Validate(rec *domain.ShipmentRecord) []Result {
	if rec.TrackingNumber == "" {
		return nil
	}
	res := Result{RuleKey: r.RuleKey(), RuleName: r.RuleName(), Severity: r.Severity(), Field: "tracking_number"}
	if !reTracking.MatchString(rec.TrackingNumber) {
		res.Message = fmt.Sprintf("tracking number %q does not match 1Z format", rec.TrackingNumber)
		return []Result{res}
	}
	res.Passed = true
	return []Result{res}
}

// zipFormatRule checks origin and destination ZIP codes.
type zipFormatRule struct{}

func (zipFormatRule) RuleKey() string    { return "zip_format" }
func (zipFormatRule) RuleName() string   { return "Format: ZIP Code" }
func (zipFormatRule) Severity() Severity { return SeverityWarning }

func (r zipFormatRule) Validate(rec *domain.ShipmentRecord) []Result {
	var out []Result
	check := func(field, value string) {
		if value == "" {
			return
		}
		res := Result{RuleKey: r.RuleKey(), RuleName: r.RuleName(), Severity: r.Severity(), Field: field}
		if !reZIP.MatchString(value) {
			res.Message = fmt.Sprintf("%s %q is not a valid ZIP code", field, value)
		} else {
			res.Passed = true
		}
		out = append(out, res)
	}
	check("destination_zip", rec.DestinationZIP)
	check("origin_zip", rec.OriginZIP)
	return out
}

// totalsBalanceRule checks that billed matches published plus incentive
// at the line-total level. Incentives are stored as negative credits, so
// the identity is published + incentive = billed.
type totalsBalanceRule struct{}

func (totalsBalanceRule) RuleKey() string    { return "totals_balance" }
func (totalsBalanceRule) RuleName() string   { return "Math: Line Total Balance" }
func (totalsBalanceRule) Severity() Severity { return SeverityWarning }

func (r totalsBalanceRule) Validate(rec *domain.ShipmentRecord) []Result {
	if rec.LineTotalPublished == nil || rec.LineTotalIncentive == nil || rec.LineTotalBilled == nil {
		return nil
	}
	res := Result{RuleKey: r.RuleKey(), RuleName: r.RuleName(), Severity: r.Severity(), Field: "line_total"}
	expected := *rec.LineTotalPublished + *rec.LineTotalIncentive
	if math.Abs(expected-*rec.LineTotalBilled) > 0.011 {
		res.Message = fmt.Sprintf("published %.2f + incentive %.2f = %.2f, but billed is %.2f",
			*rec.LineTotalPublished, *rec.LineTotalIncentive, expected, *rec.LineTotalBilled)
		return []Result{res}
	}
	res.Passed = true
	return []Result{res}
}

// incentiveSignRule flags positive incentive credits. Carrier incentives
// reduce the published charge, so a positive value usually means the sign
// was lost during extraction.
type incentiveSignRule struct{}

func (incentiveSignRule) RuleKey() string    { return "incentive_sign" }
func (incentiveSignRule) RuleName() string   { return "Logical: Incentive Sign" }
func (incentiveSignRule) Severity() Severity { return SeverityWarning }

func (r incentiveSignRule) Validate(rec *domain.ShipmentRecord) []Result {
	if rec.IncentiveCredit == nil {
		return nil
	}
	res := Result{RuleKey: r.RuleKey(), RuleName: r.RuleName(), Severity: r.Severity(), Field: "incentive_credit"}
	if *rec.IncentiveCredit > 0 {
		res.Message = fmt.Sprintf("incentive credit %.2f is positive", *rec.IncentiveCredit)
		return []Result{res}
	}
	res.Passed = true
	return []Result{res}
}

// weightSanityRule flags weights outside the carrier's shippable range.
type weightSanityRule struct{}

func (weightSanityRule) RuleKey() string    { return "weight_sanity" }
func (weightSanityRule) RuleName() string   { return "Logical: Weight Range" }
func (weightSanityRule) Severity() Severity { return SeverityWarning }

func (r weightSanityRule) Validate(rec *domain.ShipmentRecord) []Result {
	if rec.Weight == nil {
		return nil
	}
	res := Result{RuleKey: r.RuleKey(), RuleName: r.RuleName(), Severity: r.Severity(), Field: "weight"}
	if *rec.Weight <= 0 || *rec.Weight > 150 {
		res.Message = fmt.Sprintf("weight %.1f lbs is outside the 0-150 lbs range", *rec.Weight)
		return []Result{res}
	}
	res.Passed = true
	return []Result{res}
}

// BuiltinRules returns the default rule set applied to every run.
func BuiltinRules() []Rule {
	return []Rule{
		requiredTrackingRule{},
		trackingFormatRule{},
		zipFormatRule{},
		totalsBalanceRule{},
		incentiveSignRule{},
		weightSanityRule{},
	}
}
