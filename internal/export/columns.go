// Package export renders shipment records as spreadsheet output, one
// row per shipment grouped by invoice, in the column layout downstream
// freight-audit tooling expects.
package export

import (
	"fmt"
	"strconv"

	"shipmatrix/internal/catalog"
	"shipmatrix/internal/domain"
)

// Column pairs a header with the function that pulls its cell value
// out of a record. Absent values render as the empty string.
type Column struct {
	Header string
	Value  func(r *domain.ShipmentRecord) string
}

// Columns builds the full column layout: core identification and
// shipment fields first, then one four-column group per surcharge in
// the catalog (triple summary plus the three scalar components), the
// line totals, and the remaining reference and optional fields.
func Columns(cat *catalog.Catalog) []Column {
	cols := []Column{
		{"invoice_number", func(r *domain.ShipmentRecord) string { return r.InvoiceNumber }},
		{"tracking_number", func(r *domain.ShipmentRecord) string { return r.TrackingNumber }},
		{"account_number", func(r *domain.ShipmentRecord) string { return r.AccountNumber }},
		{"invoice_date", func(r *domain.ShipmentRecord) string { return r.InvoiceDate }},
		{"destination_zip", func(r *domain.ShipmentRecord) string { return r.DestinationZIP }},
		{"page_number", func(r *domain.ShipmentRecord) string { return strconv.Itoa(r.PageNumber) }},
		{"invoice_group", func(r *domain.ShipmentRecord) string { return strconv.Itoa(r.InvoiceGroup) }},
		{"weight", func(r *domain.ShipmentRecord) string { return formatWeight(r.Weight) }},
		{"zone", func(r *domain.ShipmentRecord) string { return formatInt(r.Zone) }},
		{"service_type", func(r *domain.ShipmentRecord) string { return r.ServiceType }},
		{"published_charge", func(r *domain.ShipmentRecord) string { return formatCurrency(r.PublishedCharge) }},
		{"incentive_credit", func(r *domain.ShipmentRecord) string { return formatCurrency(r.IncentiveCredit) }},
		{"billed_charge", func(r *domain.ShipmentRecord) string { return formatCurrency(r.BilledCharge) }},
		{"net_charge", func(r *domain.ShipmentRecord) string { return formatCurrency(r.NetCharge) }},
		{"shipment_date", func(r *domain.ShipmentRecord) string { return r.ShipmentDate }},
		{"pickup_date", func(r *domain.ShipmentRecord) string { return r.PickupDate }},
		{"sender_name", func(r *domain.ShipmentRecord) string { return r.SenderName }},
		{"sender_address", func(r *domain.ShipmentRecord) string { return r.SenderAddress }},
		{"receiver_name", func(r *domain.ShipmentRecord) string { return r.ReceiverName }},
		{"receiver_address", func(r *domain.ShipmentRecord) string { return r.ReceiverAddress }},
		{"identity_corrected", func(r *domain.ShipmentRecord) string { return formatBool(r.IdentityCorrected) }},
	}

	for _, name := range cat.SurchargeNames() {
		cols = append(cols, surchargeColumns(name)...)
	}

	cols = append(cols,
		Column{"line_total", func(r *domain.ShipmentRecord) string {
			if r.LineTotal == nil {
				return ""
			}
			return r.LineTotal.String()
		}},
		Column{"line_total_published", func(r *domain.ShipmentRecord) string { return formatCurrency(r.LineTotalPublished) }},
		Column{"line_total_incentive", func(r *domain.ShipmentRecord) string { return formatCurrency(r.LineTotalIncentive) }},
		Column{"line_total_billed", func(r *domain.ShipmentRecord) string { return formatCurrency(r.LineTotalBilled) }},
		Column{"dimensions", func(r *domain.ShipmentRecord) string { return r.Dimensions }},
		Column{"customer_weight", func(r *domain.ShipmentRecord) string { return formatWeight(r.CustomerWeight) }},
		Column{"billable_weight", func(r *domain.ShipmentRecord) string { return formatWeight(r.BillableWeight) }},
		Column{"dimensional_weight", func(r *domain.ShipmentRecord) string { return formatWeight(r.DimensionalWeight) }},
		Column{"message_codes", func(r *domain.ShipmentRecord) string { return r.MessageCodes }},
		Column{"number_of_packages", func(r *domain.ShipmentRecord) string { return formatInt(r.NumberOfPackages) }},
		Column{"package_type", func(r *domain.ShipmentRecord) string { return r.PackageType }},
		Column{"control_id", func(r *domain.ShipmentRecord) string { return r.ControlID }},
		Column{"shipped_from", func(r *domain.ShipmentRecord) string { return r.ShippedFrom }},
		Column{"origin_zip", func(r *domain.ShipmentRecord) string { return r.OriginZIP }},
		Column{"first_reference", func(r *domain.ShipmentRecord) string { return r.FirstReference }},
		Column{"second_reference", func(r *domain.ShipmentRecord) string { return r.SecondReference }},
		Column{"third_reference", func(r *domain.ShipmentRecord) string { return r.ThirdReference }},
		Column{"purchase_order", func(r *domain.ShipmentRecord) string { return r.PurchaseOrder }},
		Column{"user_id", func(r *domain.ShipmentRecord) string { return r.UserID }},
		Column{"cod_amount", func(r *domain.ShipmentRecord) string { return formatCurrency(r.CODAmount) }},
		Column{"declared_value", func(r *domain.ShipmentRecord) string { return formatCurrency(r.DeclaredValue) }},
		Column{"delivery_date", func(r *domain.ShipmentRecord) string { return r.DeliveryDate }},
		Column{"commit_time", func(r *domain.ShipmentRecord) string { return r.CommitTime }},
		Column{"shipper_account", func(r *domain.ShipmentRecord) string { return r.ShipperAccount }},
		Column{"third_party_account", func(r *domain.ShipmentRecord) string { return r.ThirdPartyAccount }},
	)
	return cols
}

func surchargeColumns(name string) []Column {
	triple := func(r *domain.ShipmentRecord) (domain.CurrencyTriple, bool) {
		return r.Surcharge(name)
	}
	return []Column{
		{name, func(r *domain.ShipmentRecord) string {
			t, ok := triple(r)
			if !ok {
				return ""
			}
			return t.String()
		}},
		{name + "_published", func(r *domain.ShipmentRecord) string {
			t, ok := triple(r)
			if !ok {
				return ""
			}
			return formatCurrency(t.Published)
		}},
		{name + "_incentive", func(r *domain.ShipmentRecord) string {
			t, ok := triple(r)
			if !ok {
				return ""
			}
			return formatCurrency(t.Incentive)
		}},
		{name + "_billed", func(r *domain.ShipmentRecord) string {
			t, ok := triple(r)
			if !ok {
				return ""
			}
			return formatCurrency(t.Billed)
		}},
	}
}

func formatCurrency(v *float64) string {
	if v == nil {
		return ""
	}
	return fmt.Sprintf("$%.2f", *v)
}

func formatWeight(v *float64) string {
	if v == nil {
		return ""
	}
	return fmt.Sprintf("%g lbs", *v)
}

func formatInt(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

func formatBool(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
