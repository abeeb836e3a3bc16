package catalog

import "regexp"

// Category names, in workbook output order.
const (
	categoryInvoiceHeader = "Invoice Header"
	categoryShipmentCore  = "Shipment Core"
	categoryServiceInfo   = "Service Info"
	categoryGeographic    = "Geographic"
	categoryWeightDims    = "Weight/Dimensions"
	categoryBaseCharges   = "Base Charges"
	categorySurcharges    = "Surcharges"
	categoryLineTotals    = "Line Totals"
	categoryReferences    = "References"
	categoryAddressInfo   = "Address Info"
	categoryServiceOpts   = "Service Options"
	categoryTimeInfo      = "Time Info"
	categoryPackageInfo   = "Package Info"
	categoryAccountInfo   = "Account Info"
	categoryAdditional    = "Additional Info"
)

var categoryOrder = []string{
	categoryInvoiceHeader,
	categoryShipmentCore,
	categoryServiceInfo,
	categoryGeographic,
	categoryWeightDims,
	categoryBaseCharges,
	categorySurcharges,
	categoryLineTotals,
	categoryReferences,
	categoryAddressInfo,
	categoryServiceOpts,
	categoryTimeInfo,
	categoryPackageInfo,
	categoryAccountInfo,
	categoryAdditional,
}

// re compiles a pattern case-insensitively in multiline mode, matching how
// every catalog pattern is applied to block text.
func re(pattern string) *regexp.Regexp {
	return regexp.MustCompile(`(?im)` + pattern)
}

// tripleAmounts matches the published/incentive/billed amount columns that
// follow a surcharge label. The middle amount may carry a leading minus.
const tripleAmounts = `\s+([\d,]+\.\d{2})\s*(-?[\d,]+\.\d{2})\s+([\d,]+\.\d{2})`

// surchargeLabels maps the generated surcharge fields to their label
// patterns. Each becomes a priority-2 currency-triple definition. The three
// structurally varied surcharges (residential, fuel, delivery area) are
// declared separately with richer pattern lists.
var surchargeLabels = []struct {
	name    string
	display string
	label   string
}{
	{"large_package_surcharge", "Large Package Surcharge", `Large\s+Package\s+Surcharge`},
	{"additional_handling", "Additional Handling", `Additional\s+Handling`},
	{"saturday_delivery", "Saturday Delivery", `Saturday\s+Delivery`},
	{"saturday_pickup", "Saturday Pickup", `Saturday\s+Pickup`},
	{"signature_required", "Signature Required", `Signature\s+(?:Required|Option)`},
	{"adult_signature_required", "Adult Signature Required", `Adult\s+Signature\s+Required`},
	{"direct_signature_required", "Direct Signature Required", `Direct\s+Signature\s+Required`},
	{"address_correction", "Address Correction", `Address\s+Correction(?:\s+Fee)?`},
	{"over_maximum_limits", "Over Maximum Limits", `Over\s+Maximum\s+Limits`},
	{"peak_surcharge", "Peak Surcharge", `Peak\s+(?:Season\s+)?Surcharge`},
	{"holiday_surcharge", "Holiday Surcharge", `Holiday\s+Surcharge`},
	{"hazmat_surcharge", "Hazmat Surcharge", `(?:Hazmat|Hazardous\s+Materials?)\s*(?:Fee|Surcharge)`},
	{"dry_ice_surcharge", "Dry Ice Surcharge", `Dry\s+Ice\s*(?:Fee|Surcharge)`},
	{"declared_value_charge", "Declared Value Charge", `Declared\s+Value\s*(?:Charge|Fee)`},
	{"cod_surcharge", "COD Surcharge", `(?:COD|Cash\s+on\s+Delivery)\s*(?:Fee|Surcharge)`},
	{"carbon_neutral", "Carbon Neutral", `Carbon\s+Neutral`},
	{"lift_gate_surcharge", "Lift Gate Surcharge", `Lift\s+Gate\s*(?:Fee|Surcharge)`},
	{"inside_pickup", "Inside Pickup", `Inside\s+Pickup`},
	{"inside_delivery", "Inside Delivery", `Inside\s+Delivery`},
	{"call_tag_surcharge", "Call Tag Surcharge", `Call\s+Tag\s*(?:Fee|Surcharge)`},
	{"quantum_view", "Quantum View", `Quantum\s+View\s*(?:Notify|Manage)?`},
	{"ups_premium_care", "UPS Premium Care", `UPS\s+Premium\s+Care`},
	{"missing_pld_fee", "Missing PLD Fee", `Missing\s+PLD\s+Fee`},
}

func fieldDefinitions() []FieldDefinition {
	defs := []FieldDefinition{
		// Invoice header.
		{
			Name:        "invoice_number",
			DisplayName: "Invoice Number",
			Patterns: []*regexp.Regexp{
				re(`Invoice\s+Number\s+([0-9A-Z]{10,})`),
				re(`Invoice\s+Date.*?Invoice\s+Number\s+([0-9A-Z]{10,})`),
				re(`Delivery\s+Service\s+Invoice.*?([0-9A-Z]{10,})`),
				re(`([0-9A-Z]{10,})\s[\s\S]*?Account\s+Number`),
			},
			DataType: TypeString,
			Category: categoryInvoiceHeader,
			Required: true,
			Priority: 1,
		},
		{
			Name:        "account_number",
			DisplayName: "Account Number",
			Patterns: []*regexp.Regexp{
				re(`Account\s+Number\s*([A-Z0-9]{4,})`),
				re(`AccountNumber\s*([A-Z0-9]{4,})`),
				re(`Account\s+([A-Z0-9]{4,})(?:\s|$)`),
			},
			DataType: TypeString,
			Category: categoryInvoiceHeader,
			Required: true,
			Priority: 1,
		},
		{
			Name:        "control_id",
			DisplayName: "Control ID",
			Patterns: []*regexp.Regexp{
				re(`Control\s+ID\s+([A-Z0-9\-#]{2,})`),
				re(`Control\s*ID\s*:\s*([A-Z0-9\-#]{2,})`),
			},
			DataType: TypeString,
			Category: categoryInvoiceHeader,
			Priority: 2,
		},
		{
			Name:        "invoice_date",
			DisplayName: "Invoice Date",
			Patterns: []*regexp.Regexp{
				re(`Invoice\s+Date\s+((?:January|February|March|April|May|June|July|August|September|October|November|December)\s+\d{1,2},\s+\d{4})`),
				re(`Invoice\s+Date\s+(\d{1,2}/\d{1,2}/\d{4})`),
				re(`((?:January|February|March|April|May|June|July|August|September|October|November|December)\s+\d{1,2},\s+\d{4})`),
			},
			DataType: TypeDate,
			Category: categoryInvoiceHeader,
			Priority: 1,
		},
		{
			Name:        "shipped_from",
			DisplayName: "Shipped From",
			Patterns: []*regexp.Regexp{
				re(`Shipped\s+from:\s*([^\n]+)`),
				re(`Ship\s+From:\s*([^\n]+)`),
			},
			DataType: TypeString,
			Category: categoryInvoiceHeader,
			Priority: 2,
		},

		// Shipment core.
		{
			Name:        "tracking_number",
			DisplayName: "Tracking Number",
			Patterns: []*regexp.Regexp{
				re(`(1Z[A-Z0-9]{16})`),
			},
			DataType: TypeString,
			Category: categoryShipmentCore,
			Required: true,
			Priority: 1,
			Validate: regexp.MustCompile(`^1Z[A-Z0-9]{16}$`),
		},
		{
			Name:        "pickup_date",
			DisplayName: "Pickup Date",
			Patterns: []*regexp.Regexp{
				re(`(\d{2}/\d{2}(?:/\d{2,4})?)`),
				re(`Pickup\s+Date:?\s*(\d{1,2}/\d{1,2}(?:/\d{2,4})?)`),
			},
			DataType: TypeDate,
			Category: categoryShipmentCore,
			Required: true,
			Priority: 1,
		},
		{
			Name:        "shipment_date",
			DisplayName: "Shipment Date",
			Patterns: []*regexp.Regexp{
				re(`(\d{2}/\d{2}(?:/\d{2,4})?)`),
				re(`Ship\s+Date:?\s*(\d{1,2}/\d{1,2}(?:/\d{2,4})?)`),
			},
			DataType: TypeDate,
			Category: categoryShipmentCore,
			Required: true,
			Priority: 1,
		},

		// Service info. Specific services first so "Ground Residential" is
		// not shortened to "Ground".
		{
			Name:        "service_type",
			DisplayName: "Service Type",
			Patterns: []*regexp.Regexp{
				re(`(UPS\s+Next\s+Day\s+Air\s+Early\s*(?:A\.?M\.?)?)`),
				re(`(UPS\s+Next\s+Day\s+Air\s+Saver)`),
				re(`(Next\s+Day\s+Air\s+Residential)`),
				re(`(UPS\s+Next\s+Day\s+Air)`),
				re(`(Next\s+Day\s+Air)`),
				re(`(UPS\s+2nd\s+Day\s+Air\s+A\.?M\.?)`),
				re(`(2nd\s+Day\s+Air\s+Residential)`),
				re(`(UPS\s+2nd\s+Day\s+Air)`),
				re(`(2nd\s+Day\s+Air)`),
				re(`(UPS\s+3\s+Day\s+Select)`),
				re(`(3\s+Day\s+Select)`),
				re(`(UPS\s+Ground\s+Residential)`),
				re(`(Ground\s+Residential)`),
				re(`(UPS\s+Ground\s+Commercial)`),
				re(`(Ground\s+Commercial)`),
				re(`(UPS\s+Ground)`),
				re(`(Ground)`),
				re(`(UPS\s+Standard)`),
				re(`(Standard)`),
				re(`(UPS\s+Express\s+Plus)`),
				re(`(UPS\s+Express)`),
				re(`(Express)`),
				re(`(UPS\s+Expedited)`),
				re(`(Expedited)`),
				re(`(UPS\s+Saver)`),
				re(`(Saver)`),
			},
			DataType: TypeString,
			Category: categoryServiceInfo,
			Priority: 1,
		},

		// Geographic.
		{
			Name:        "destination_zip",
			DisplayName: "Destination ZIP",
			Patterns: []*regexp.Regexp{
				re(`(?:Zip|ZIP|Code)?\s*(\d{5}(?:-\d{4})?)`),
				re(`(\d{5}(?:-\d{4})?)`),
			},
			DataType: TypeString,
			Category: categoryGeographic,
			Priority: 1,
			Validate: regexp.MustCompile(`^\d{5}(-\d{4})?$`),
		},
		{
			Name:        "origin_zip",
			DisplayName: "Origin ZIP",
			Patterns: []*regexp.Regexp{
				re(`Origin\s*ZIP:?\s*(\d{5}(?:-\d{4})?)`),
				re(`From\s*ZIP:?\s*(\d{5}(?:-\d{4})?)`),
			},
			DataType: TypeString,
			Category: categoryGeographic,
			Priority: 2,
		},
		{
			Name:        "zone",
			DisplayName: "Zone",
			Patterns: []*regexp.Regexp{
				re(`Zone\s*(\d{1,3})`),
				re(`\b(\d{1,3})\s+\d+(?:\.\d+)?\s+[\d,]+\.\d{2}`),
				re(`(?:Zone|Zn)\s*(\d{1,3})`),
			},
			DataType: TypeInteger,
			Category: categoryGeographic,
			Priority: 1,
		},

		// Weight and dimensions.
		{
			Name:        "weight",
			DisplayName: "Weight",
			Patterns: []*regexp.Regexp{
				re(`(\d+(?:\.\d+)?)\s*(?:lbs?)?\s+[\d,]+\.\d{2}`),
				re(`Weight:?\s*(\d+(?:\.\d+)?)`),
				re(`(\d+(?:\.\d+)?)\s+[\d,]+\.\d{2}\s*-?[\d,]+\.\d{2}`),
			},
			DataType: TypeFloat,
			Category: categoryWeightDims,
			Priority: 1,
		},
		{
			Name:        "customer_weight",
			DisplayName: "Customer Weight",
			Patterns: []*regexp.Regexp{
				re(`Customer\s+Weight\s+(\d+(?:\.\d+)?)`),
				re(`Cust\s*Wt:?\s*(\d+(?:\.\d+)?)`),
				re(`Customer\s+Wt:?\s*(\d+(?:\.\d+)?)`),
			},
			DataType: TypeFloat,
			Category: categoryWeightDims,
			Priority: 2,
		},
		{
			Name:        "billable_weight",
			DisplayName: "Billable Weight",
			Patterns: []*regexp.Regexp{
				re(`Billable\s+Weight:?\s*(\d+(?:\.\d+)?)`),
				re(`Bill\s*Wt:?\s*(\d+(?:\.\d+)?)`),
			},
			DataType: TypeFloat,
			Category: categoryWeightDims,
			Priority: 2,
		},
		{
			Name:        "dimensional_weight",
			DisplayName: "Dimensional Weight",
			Patterns: []*regexp.Regexp{
				re(`Dimensional\s+Weight:?\s*(\d+(?:\.\d+)?)`),
				re(`Dim\s*Wt:?\s*(\d+(?:\.\d+)?)`),
				re(`DIM\s+Weight:?\s*(\d+(?:\.\d+)?)`),
			},
			DataType: TypeFloat,
			Category: categoryWeightDims,
			Priority: 2,
		},
		{
			Name:        "dimensions",
			DisplayName: "Package Dimensions",
			Patterns: []*regexp.Regexp{
				re(`Customer\s+Entered\s+Dimensions\s*=\s*([^\n]+)`),
				re(`Dimensions\s*=\s*([^\n]+)`),
				re(`(\d+\s*x\s*\d+\s*x\s*\d+\s*in)`),
				re(`(\d+\s*x\s*\d+\s*x\s*\d+)`),
			},
			DataType: TypeString,
			Category: categoryWeightDims,
			Priority: 2,
		},

		// Base charges. The positional patterns key off the triple layout:
		// published first, a possibly negative incentive in the middle,
		// billed last.
		{
			Name:        "published_charge",
			DisplayName: "Published Charge",
			Patterns: []*regexp.Regexp{
				re(`([\d,]+\.\d{2})\s*-?[\d,]+\.\d{2}\s+[\d,]+\.\d{2}`),
				re(`Published:?\s*([\d,]+\.\d{2})`),
				re(`Pub:?\s*([\d,]+\.\d{2})`),
			},
			DataType: TypeCurrency,
			Category: categoryBaseCharges,
			Priority: 1,
		},
		{
			Name:        "incentive_credit",
			DisplayName: "Incentive Credit",
			Patterns: []*regexp.Regexp{
				re(`[\d,]+\.\d{2}\s*(-[\d,]+\.\d{2})\s+[\d,]+\.\d{2}`),
				re(`Incentive:?\s*(-?[\d,]+\.\d{2})`),
				re(`Inc:?\s*(-?[\d,]+\.\d{2})`),
			},
			DataType: TypeCurrency,
			Category: categoryBaseCharges,
			Priority: 1,
		},
		{
			Name:        "billed_charge",
			DisplayName: "Billed Charge",
			Patterns: []*regexp.Regexp{
				re(`[\d,]+\.\d{2}\s*-?[\d,]+\.\d{2}\s+([\d,]+\.\d{2})(?:\s|$)`),
				re(`Billed:?\s*([\d,]+\.\d{2})`),
				re(`Bill:?\s*([\d,]+\.\d{2})`),
			},
			DataType: TypeCurrency,
			Category: categoryBaseCharges,
			Priority: 1,
		},
		{
			Name:        "net_charge",
			DisplayName: "Net Charge",
			Patterns: []*regexp.Regexp{
				re(`Net:?\s*([\d,]+\.\d{2})`),
				re(`Net\s+Charge:?\s*([\d,]+\.\d{2})`),
			},
			DataType: TypeCurrency,
			Category: categoryBaseCharges,
			Priority: 2,
		},

		// Surcharges with layout variants of their own.
		{
			Name:        "residential_surcharge",
			DisplayName: "Residential Surcharge",
			Patterns: []*regexp.Regexp{
				re(`Residential\s+Surcharge` + tripleAmounts),
				re(`Residential` + tripleAmounts),
				re(`Res\s+Surcharge` + tripleAmounts),
			},
			DataType: TypeCurrencyTriple,
			Category: categorySurcharges,
			Priority: 1,
		},
		{
			Name:        "fuel_surcharge",
			DisplayName: "Fuel Surcharge",
			Patterns: []*regexp.Regexp{
				re(`Fuel\s+Surcharge` + tripleAmounts),
			},
			DataType: TypeCurrencyTriple,
			Category: categorySurcharges,
			Priority: 1,
		},
		{
			Name:        "delivery_area_surcharge",
			DisplayName: "Delivery Area Surcharge",
			Patterns: []*regexp.Regexp{
				re(`Delivery\s+Area\s+Surcharge(?:\s*-\s*(?:Extended|Remote))?` + tripleAmounts),
				re(`(?:Extended|Remote)\s+Area\s+Surcharge` + tripleAmounts),
				re(`DAS\s*-\s*(?:Extended|Remote)` + tripleAmounts),
			},
			DataType: TypeCurrencyTriple,
			Category: categorySurcharges,
			Priority: 1,
		},
	}

	for _, s := range surchargeLabels {
		defs = append(defs, FieldDefinition{
			Name:        s.name,
			DisplayName: s.display,
			Patterns:    []*regexp.Regexp{re(s.label + tripleAmounts)},
			DataType:    TypeCurrencyTriple,
			Category:    categorySurcharges,
			Priority:    2,
		})
	}

	defs = append(defs,
		// References.
		FieldDefinition{
			Name:        "first_reference",
			DisplayName: "1st Reference",
			Patterns: []*regexp.Regexp{
				re(`1st\s+ref:?\s*([A-Za-z0-9\-_]+)`),
				re(`Ref\s*1:?\s*([A-Za-z0-9\-_]+)`),
				re(`Reference\s*1:?\s*([A-Za-z0-9\-_]+)`),
			},
			DataType: TypeString,
			Category: categoryReferences,
			Priority: 2,
		},
		FieldDefinition{
			Name:        "second_reference",
			DisplayName: "2nd Reference",
			Patterns: []*regexp.Regexp{
				re(`2nd\s+ref:?\s*([A-Za-z0-9\-_]+)`),
				re(`Ref\s*2:?\s*([A-Za-z0-9\-_]+)`),
				re(`Reference\s*2:?\s*([A-Za-z0-9\-_]+)`),
			},
			DataType: TypeString,
			Category: categoryReferences,
			Priority: 2,
		},
		FieldDefinition{
			Name:        "third_reference",
			DisplayName: "3rd Reference",
			Patterns: []*regexp.Regexp{
				re(`3rd\s+ref:?\s*([A-Za-z0-9\-_]+)`),
				re(`Ref\s*3:?\s*([A-Za-z0-9\-_]+)`),
				re(`Reference\s*3:?\s*([A-Za-z0-9\-_]+)`),
			},
			DataType: TypeString,
			Category: categoryReferences,
			Priority: 2,
		},
		FieldDefinition{
			Name:        "user_id",
			DisplayName: "User ID",
			Patterns: []*regexp.Regexp{
				re(`UserID:?\s*([A-Za-z0-9\-_]+)`),
				re(`User\s*ID:?\s*([A-Za-z0-9\-_]+)`),
				re(`UID:?\s*([A-Za-z0-9\-_]+)`),
			},
			DataType: TypeString,
			Category: categoryReferences,
			Priority: 2,
		},
		FieldDefinition{
			Name:        "purchase_order",
			DisplayName: "Purchase Order",
			Patterns: []*regexp.Regexp{
				re(`(?:Purchase\s+Order|PO|P\.O\.)\s*:?\s*([A-Za-z0-9\-_]+)`),
			},
			DataType: TypeString,
			Category: categoryReferences,
			Priority: 2,
		},

		// Address info. These catalog patterns are the coarse first pass;
		// the identity resolver supersedes them when it finds a match.
		FieldDefinition{
			Name:        "sender_name",
			DisplayName: "Sender Name",
			Patterns: []*regexp.Regexp{
				re(`Sender\s*:?\s*([A-Z][A-Za-z\s&\.,\-']+?)(?:\s+Receiver|\n|$)`),
				re(`Ship\s*From\s*:?\s*([A-Z][A-Za-z\s&\.,\-']+?)(?:\s+Ship\s*To|\n|$)`),
				re(`From\s*:?\s*([A-Z][A-Za-z\s&\.,\-']+?)(?:\s+To|\n|$)`),
			},
			DataType: TypeString,
			Category: categoryAddressInfo,
			Priority: 2,
		},
		FieldDefinition{
			Name:        "sender_address",
			DisplayName: "Sender Address",
			Patterns: []*regexp.Regexp{
				re(`Sender\s*:?\s*[A-Z][A-Za-z\s&\.,\-']+?\s+([0-9][^\n]*)`),
				re(`Ship\s*From\s*:?\s*[A-Z][A-Za-z\s&\.,\-']+?\s+([0-9][^\n]*)`),
			},
			DataType: TypeString,
			Category: categoryAddressInfo,
			Priority: 2,
		},
		FieldDefinition{
			Name:        "receiver_name",
			DisplayName: "Receiver Name",
			Patterns: []*regexp.Regexp{
				re(`Receiver\s*:?\s*([A-Z][A-Za-z\s&\.,\-']+?)(?:\s+\d|\n|Message|$)`),
				re(`Ship\s*To\s*:?\s*([A-Z][A-Za-z\s&\.,\-']+?)(?:\s+\d|\n|$)`),
				re(`Consignee\s*:?\s*([A-Z][A-Za-z\s&\.,\-']+?)(?:\s+\d|\n|$)`),
			},
			DataType: TypeString,
			Category: categoryAddressInfo,
			Priority: 2,
		},
		FieldDefinition{
			Name:        "receiver_address",
			DisplayName: "Receiver Address",
			Patterns: []*regexp.Regexp{
				re(`Receiver\s*:?\s*[A-Z][A-Za-z\s&\.,\-']+?\s+([0-9][^\n]*)`),
				re(`Ship\s*To\s*:?\s*[A-Z][A-Za-z\s&\.,\-']+?\s+([0-9][^\n]*)`),
			},
			DataType: TypeString,
			Category: categoryAddressInfo,
			Priority: 2,
		},

		// Service options.
		FieldDefinition{
			Name:        "cod_amount",
			DisplayName: "COD Amount",
			Patterns: []*regexp.Regexp{
				re(`COD\s*Amount:?\s*([\d,]+\.\d{2})`),
				re(`Cash\s+on\s+Delivery:?\s*([\d,]+\.\d{2})`),
			},
			DataType: TypeCurrency,
			Category: categoryServiceOpts,
			Priority: 2,
		},
		FieldDefinition{
			Name:        "declared_value",
			DisplayName: "Declared Value",
			Patterns: []*regexp.Regexp{
				re(`Declared\s+Value:?\s*([\d,]+\.\d{2})`),
			},
			DataType: TypeCurrency,
			Category: categoryServiceOpts,
			Priority: 2,
		},

		// Time info.
		FieldDefinition{
			Name:        "delivery_date",
			DisplayName: "Delivery Date",
			Patterns: []*regexp.Regexp{
				re(`Delivery\s+Date:?\s*(\d{1,2}/\d{1,2}(?:/\d{2,4})?)`),
				re(`Delivered:?\s*(\d{1,2}/\d{1,2}(?:/\d{2,4})?)`),
			},
			DataType: TypeDate,
			Category: categoryTimeInfo,
			Priority: 2,
		},
		FieldDefinition{
			Name:        "commit_time",
			DisplayName: "Commit Time",
			Patterns: []*regexp.Regexp{
				re(`Commit\s+Time:?\s*(\d{1,2}:\d{2}(?:\s*[AP]M)?)`),
				re(`By:?\s*(\d{1,2}:\d{2}(?:\s*[AP]M)?)`),
			},
			DataType: TypeString,
			Category: categoryTimeInfo,
			Priority: 2,
		},

		// Package info.
		FieldDefinition{
			Name:        "package_type",
			DisplayName: "Package Type",
			Patterns: []*regexp.Regexp{
				re(`Package\s+Type:?\s*([^\n]+)`),
				re(`Packaging:?\s*([^\n]+)`),
			},
			DataType: TypeString,
			Category: categoryPackageInfo,
			Priority: 2,
		},
		FieldDefinition{
			Name:        "number_of_packages",
			DisplayName: "Number of Packages",
			Patterns: []*regexp.Regexp{
				re(`(\d+)\s*(?:Package|Pkg|Piece)s?`),
				re(`Qty:?\s*(\d+)`),
				re(`Count:?\s*(\d+)`),
			},
			DataType: TypeInteger,
			Category: categoryPackageInfo,
			Priority: 2,
		},

		// Additional info.
		FieldDefinition{
			Name:        "message_codes",
			DisplayName: "Message Codes",
			Patterns: []*regexp.Regexp{
				re(`Message\s+Codes?:?\s*([a-z0-9\s,]+)`),
				re(`Msg\s+Code:?\s*([a-z0-9\s,]+)`),
				re(`Code:?\s*([a-z0-9\s,]+)(?:\s*$|\n)`),
			},
			DataType: TypeString,
			Category: categoryAdditional,
			Priority: 2,
		},

		// Line totals. Extracted as a fallback only; the totals calculator
		// recomputes and overwrites these.
		FieldDefinition{
			Name:        "line_total",
			DisplayName: "Line Total",
			Patterns: []*regexp.Regexp{
				re(`Total` + tripleAmounts),
				re(`Line\s+Total` + tripleAmounts),
			},
			DataType: TypeCurrencyTriple,
			Category: categoryLineTotals,
			Priority: 1,
		},

		// Account info.
		FieldDefinition{
			Name:        "shipper_account",
			DisplayName: "Shipper Account",
			Patterns: []*regexp.Regexp{
				re(`Shipper\s+Account:?\s*([A-Za-z0-9\-_]+)`),
			},
			DataType: TypeString,
			Category: categoryAccountInfo,
			Priority: 2,
		},
		FieldDefinition{
			Name:        "third_party_account",
			DisplayName: "Third Party Account",
			Patterns: []*regexp.Regexp{
				re(`Third\s+Party\s+Account:?\s*([A-Za-z0-9\-_]+)`),
				re(`3rd\s+Party:?\s*([A-Za-z0-9\-_]+)`),
			},
			DataType: TypeString,
			Category: categoryAccountInfo,
			Priority: 2,
		},
	)

	return defs
}
