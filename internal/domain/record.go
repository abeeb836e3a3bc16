package domain

import "fmt"

// CurrencyTriple is a charge expressed as the three related amounts printed on
// a carrier invoice line: the list (published) rate, the negotiated incentive
// adjustment, and the final billed amount. A nil component means the source
// text never produced a value for it; nil is distinct from zero.
type CurrencyTriple struct {
	Published *float64 `db:"published" json:"published"`
	Incentive *float64 `db:"incentive" json:"incentive"`
	Billed    *float64 `db:"billed" json:"billed"`
}

// IsZero reports whether no component of the triple is set.
func (t CurrencyTriple) IsZero() bool {
	return t.Published == nil && t.Incentive == nil && t.Billed == nil
}

// String renders the triple the way the workbook convenience column shows it.
func (t CurrencyTriple) String() string {
	out := ""
	if t.Published != nil {
		out += fmt.Sprintf("Published: $%.2f", *t.Published)
	}
	if t.Incentive != nil {
		if out != "" {
			out += ", "
		}
		out += fmt.Sprintf("Incentive: $%.2f", *t.Incentive)
	}
	if t.Billed != nil {
		if out != "" {
			out += ", "
		}
		out += fmt.Sprintf("Billed: $%.2f", *t.Billed)
	}
	return out
}

// InvoiceHeader carries the attributes common to every shipment in one
// invoice unit. It is created once from the invoice's full text and never
// mutated afterwards; each ShipmentRecord holds its own copy so records stay
// independently serializable.
type InvoiceHeader struct {
	InvoiceNumber string `json:"invoice_number"`
	AccountNumber string `json:"account_number"`
	InvoiceDate   string `json:"invoice_date"`
	InvoiceYear   int    `json:"invoice_year"`
	ControlID     string `json:"control_id"`
	ShippedFrom   string `json:"shipped_from"`
	SenderName    string `json:"sender_name"`
	SenderAddress string `json:"sender_address"`
}

// ShipmentMatrix is a contiguous substring of invoice text believed to
// describe one shipment's billing line and its surcharges. Transient: built
// by the segmenter, consumed immediately by the extractor.
type ShipmentMatrix struct {
	Text           string
	TrackingNumber string
	ShipDate       string
	Start          int
	End            int
}

// IdentityTuple is the narrow secondary extraction result for one shipment:
// the four identity fields plus the tracking number they were resolved for.
// An unresolved field is the empty string.
type IdentityTuple struct {
	TrackingNumber  string `json:"tracking_number"`
	SenderName      string `json:"sender_name"`
	SenderAddress   string `json:"sender_address"`
	ReceiverName    string `json:"receiver_name"`
	ReceiverAddress string `json:"receiver_address"`
	PageNumber      int    `json:"page_number"`
}

// ShipmentRecord is the terminal entity of a parse: one shipment's typed
// field set. Numeric fields are pointers so that an absent value is
// distinguishable from zero; string fields treat "" as absent. Surcharge
// triples live in the Surcharges map keyed by surcharge field name, which is
// also the triple convenience view of their three scalars.
type ShipmentRecord struct {
	// Invoice header copy.
	InvoiceNumber string `json:"invoice_number"`
	AccountNumber string `json:"account_number"`
	InvoiceDate   string `json:"invoice_date"`
	InvoiceYear   int    `json:"invoice_year,omitempty"`
	ControlID     string `json:"control_id,omitempty"`
	ShippedFrom   string `json:"shipped_from,omitempty"`

	// Shipment core. Tracking number is always present on an emitted record.
	TrackingNumber string `json:"tracking_number"`
	PickupDate     string `json:"pickup_date,omitempty"`
	ShipmentDate   string `json:"shipment_date,omitempty"`

	// Service and geography.
	ServiceType    string `json:"service_type,omitempty"`
	DestinationZIP string `json:"destination_zip,omitempty"`
	OriginZIP      string `json:"origin_zip,omitempty"`
	Zone           *int   `json:"zone,omitempty"`

	// Weight and dimensions.
	Weight            *float64 `json:"weight,omitempty"`
	CustomerWeight    *float64 `json:"customer_weight,omitempty"`
	BillableWeight    *float64 `json:"billable_weight,omitempty"`
	DimensionalWeight *float64 `json:"dimensional_weight,omitempty"`
	Dimensions        string   `json:"dimensions,omitempty"`

	// Base charges.
	PublishedCharge *float64 `json:"published_charge,omitempty"`
	IncentiveCredit *float64 `json:"incentive_credit,omitempty"`
	BilledCharge    *float64 `json:"billed_charge,omitempty"`
	NetCharge       *float64 `json:"net_charge,omitempty"`

	// Surcharge triples keyed by surcharge field name, e.g. "fuel_surcharge".
	Surcharges map[string]CurrencyTriple `json:"surcharges,omitempty"`

	// Derived line totals, written by the totals calculator.
	LineTotalPublished *float64        `json:"line_total_published,omitempty"`
	LineTotalIncentive *float64        `json:"line_total_incentive,omitempty"`
	LineTotalBilled    *float64        `json:"line_total_billed,omitempty"`
	LineTotal          *CurrencyTriple `json:"line_total,omitempty"`

	// References.
	FirstReference  string `json:"first_reference,omitempty"`
	SecondReference string `json:"second_reference,omitempty"`
	ThirdReference  string `json:"third_reference,omitempty"`
	UserID          string `json:"user_id,omitempty"`
	PurchaseOrder   string `json:"purchase_order,omitempty"`

	// Party identity.
	SenderName      string `json:"sender_name,omitempty"`
	SenderAddress   string `json:"sender_address,omitempty"`
	ReceiverName    string `json:"receiver_name,omitempty"`
	ReceiverAddress string `json:"receiver_address,omitempty"`

	// Service options.
	CODAmount     *float64 `json:"cod_amount,omitempty"`
	DeclaredValue *float64 `json:"declared_value,omitempty"`

	// Time info.
	DeliveryDate string `json:"delivery_date,omitempty"`
	CommitTime   string `json:"commit_time,omitempty"`

	// Package info.
	PackageType      string `json:"package_type,omitempty"`
	NumberOfPackages *int   `json:"number_of_packages,omitempty"`

	// Additional info.
	MessageCodes string `json:"message_codes,omitempty"`

	// Account info.
	ShipperAccount    string `json:"shipper_account,omitempty"`
	ThirdPartyAccount string `json:"third_party_account,omitempty"`

	// Parse provenance.
	PageNumber        int  `json:"page_number,omitempty"`
	InvoiceGroup      int  `json:"invoice_group,omitempty"`
	MatrixIndex       int  `json:"matrix_index,omitempty"`
	IdentityCorrected bool `json:"identity_corrected"`
}

// Surcharge returns the named surcharge triple, if extracted.
func (r *ShipmentRecord) Surcharge(name string) (CurrencyTriple, bool) {
	t, ok := r.Surcharges[name]
	return t, ok
}

// SetSurcharge stores a surcharge triple, allocating the map on first use.
func (r *ShipmentRecord) SetSurcharge(name string, t CurrencyTriple) {
	if r.Surcharges == nil {
		r.Surcharges = make(map[string]CurrencyTriple)
	}
	r.Surcharges[name] = t
}

// ApplyHeader copies invoice-level fields onto the record. Existing record
// values win; the header only fills gaps.
func (r *ShipmentRecord) ApplyHeader(h InvoiceHeader) {
	if r.InvoiceNumber == "" {
		r.InvoiceNumber = h.InvoiceNumber
	}
	if r.AccountNumber == "" {
		r.AccountNumber = h.AccountNumber
	}
	if r.InvoiceDate == "" {
		r.InvoiceDate = h.InvoiceDate
	}
	if r.InvoiceYear == 0 {
		r.InvoiceYear = h.InvoiceYear
	}
	if r.ControlID == "" {
		r.ControlID = h.ControlID
	}
	if r.ShippedFrom == "" {
		r.ShippedFrom = h.ShippedFrom
	}
	if r.SenderName == "" {
		r.SenderName = h.SenderName
	}
	if r.SenderAddress == "" {
		r.SenderAddress = h.SenderAddress
	}
}
