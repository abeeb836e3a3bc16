package catalog

import "shipmatrix/internal/domain"

// binding connects a scalar catalog field to its ShipmentRecord member.
// Exactly one of the set funcs is non-nil, matching the field's data type.
type binding struct {
	isSet     func(r *domain.ShipmentRecord) bool
	setString func(r *domain.ShipmentRecord, v string)
	setFloat  func(r *domain.ShipmentRecord, v float64)
	setInt    func(r *domain.ShipmentRecord, v int)
}

func ptr(v float64) *float64 { return &v }

var bindings = map[string]binding{
	"invoice_number": {
		isSet:     func(r *domain.ShipmentRecord) bool { return r.InvoiceNumber != "" },
		setString: func(r *domain.ShipmentRecord, v string) { r.InvoiceNumber = v },
	},
	"account_number": {
		isSet:     func(r *domain.ShipmentRecord) bool { return r.AccountNumber != "" },
		setString: func(r *domain.ShipmentRecord, v string) { r.AccountNumber = v },
	},
	"control_id": {
		isSet:     func(r *domain.ShipmentRecord) bool { return r.ControlID != "" },
		setString: func(r *domain.ShipmentRecord, v string) { r.ControlID = v },
	},
	"invoice_date": {
		isSet:     func(r *domain.ShipmentRecord) bool { return r.InvoiceDate != "" },
		setString: func(r *domain.ShipmentRecord, v string) { r.InvoiceDate = v },
	},
	"shipped_from": {
		isSet:     func(r *domain.ShipmentRecord) bool { return r.ShippedFrom != "" },
		setString: func(r *domain.ShipmentRecord, v string) { r.ShippedFrom = v },
	},
	"tracking_number": {
		isSet:     func(r *domain.ShipmentRecord) bool { return r.TrackingNumber != "" },
		setString: func(r *domain.ShipmentRecord, v string) { r.TrackingNumber = v },
	},
	"pickup_date": {
		isSet:     func(r *domain.ShipmentRecord) bool { return r.PickupDate != "" },
		setString: func(r *domain.ShipmentRecord, v string) { r.PickupDate = v },
	},
	"shipment_date": {
		isSet:     func(r *domain.ShipmentRecord) bool { return r.ShipmentDate != "" },
		setString: func(r *domain.ShipmentRecord, v string) { r.ShipmentDate = v },
	},
	"service_type": {
		isSet:     func(r *domain.ShipmentRecord) bool { return r.ServiceType != "" },
		setString: func(r *domain.ShipmentRecord, v string) { r.ServiceType = v },
	},
	"destination_zip": {
		isSet:     func(r *domain.ShipmentRecord) bool { return r.DestinationZIP != "" },
		setString: func(r *domain.ShipmentRecord, v string) { r.DestinationZIP = v },
	},
	"origin_zip": {
		isSet:     func(r *domain.ShipmentRecord) bool { return r.OriginZIP != "" },
		setString: func(r *domain.ShipmentRecord, v string) { r.OriginZIP = v },
	},
	"zone": {
		isSet:  func(r *domain.ShipmentRecord) bool { return r.Zone != nil },
		setInt: func(r *domain.ShipmentRecord, v int) { r.Zone = &v },
	},
	"weight": {
		isSet:    func(r *domain.ShipmentRecord) bool { return r.Weight != nil },
		setFloat: func(r *domain.ShipmentRecord, v float64) { r.Weight = ptr(v) },
	},
	"customer_weight": {
		isSet:    func(r *domain.ShipmentRecord) bool { return r.CustomerWeight != nil },
		setFloat: func(r *domain.ShipmentRecord, v float64) { r.CustomerWeight = ptr(v) },
	},
	"billable_weight": {
		isSet:    func(r *domain.ShipmentRecord) bool { return r.BillableWeight != nil },
		setFloat: func(r *domain.ShipmentRecord, v float64) { r.BillableWeight = ptr(v) },
	},
	"dimensional_weight": {
		isSet:    func(r *domain.ShipmentRecord) bool { return r.DimensionalWeight != nil },
		setFloat: func(r *domain.ShipmentRecord, v float64) { r.DimensionalWeight = ptr(v) },
	},
	"dimensions": {
		isSet:     func(r *domain.ShipmentRecord) bool { return r.Dimensions != "" },
		setString: func(r *domain.ShipmentRecord, v string) { r.Dimensions = v },
	},
	"published_charge": {
		isSet:    func(r *domain.ShipmentRecord) bool { return r.PublishedCharge != nil },
		setFloat: func(r *domain.ShipmentRecord, v float64) { r.PublishedCharge = ptr(v) },
	},
	"incentive_credit": {
		isSet:    func(r *domain.ShipmentRecord) bool { return r.IncentiveCredit != nil },
		setFloat: func(r *domain.ShipmentRecord, v float64) { r.IncentiveCredit = ptr(v) },
	},
	"billed_charge": {
		isSet:    func(r *domain.ShipmentRecord) bool { return r.BilledCharge != nil },
		setFloat: func(r *domain.ShipmentRecord, v float64) { r.BilledCharge = ptr(v) },
	},
	"net_charge": {
		isSet:    func(r *domain.ShipmentRecord) bool { return r.NetCharge != nil },
		setFloat: func(r *domain.ShipmentRecord, v float64) { r.NetCharge = ptr(v) },
	},
	"first_reference": {
		isSet:     func(r *domain.ShipmentRecord) bool { return r.FirstReference != "" },
		setString: func(r *domain.ShipmentRecord, v string) { r.FirstReference = v },
	},
	"second_reference": {
		isSet:     func(r *domain.ShipmentRecord) bool { return r.SecondReference != "" },
		setString: func(r *domain.ShipmentRecord, v string) { r.SecondReference = v },
	},
	"third_reference": {
		isSet:     func(r *domain.ShipmentRecord) bool { return r.ThirdReference != "" },
		setString: func(r *domain.ShipmentRecord, v string) { r.ThirdReference = v },
	},
	"user_id": {
		isSet:     func(r *domain.ShipmentRecord) bool { return r.UserID != "" },
		setString: func(r *domain.ShipmentRecord, v string) { r.UserID = v },
	},
	"purchase_order": {
		isSet:     func(r *domain.ShipmentRecord) bool { return r.PurchaseOrder != "" },
		setString: func(r *domain.ShipmentRecord, v string) { r.PurchaseOrder = v },
	},
	"sender_name": {
		isSet:     func(r *domain.ShipmentRecord) bool { return r.SenderName != "" },
		setString: func(r *domain.ShipmentRecord, v string) { r.SenderName = v },
	},
	"sender_address": {
		isSet:     func(r *domain.ShipmentRecord) bool { return r.SenderAddress != "" },
		setString: func(r *domain.ShipmentRecord, v string) { r.SenderAddress = v },
	},
	"receiver_name": {
		isSet:     func(r *domain.ShipmentRecord) bool { return r.ReceiverName != "" },
		setString: func(r *domain.ShipmentRecord, v string) { r.ReceiverName = v },
	},
	"receiver_address": {
		isSet:     func(r *domain.ShipmentRecord) bool { return r.ReceiverAddress != "" },
		setString: func(r *domain.ShipmentRecord, v string) { r.ReceiverAddress = v },
	},
	"cod_amount": {
		isSet:    func(r *domain.ShipmentRecord) bool { return r.CODAmount != nil },
		setFloat: func(r *domain.ShipmentRecord, v float64) { r.CODAmount = ptr(v) },
	},
	"declared_value": {
		isSet:    func(r *domain.ShipmentRecord) bool { return r.DeclaredValue != nil },
		setFloat: func(r *domain.ShipmentRecord, v float64) { r.DeclaredValue = ptr(v) },
	},
	"delivery_date": {
		isSet:     func(r *domain.ShipmentRecord) bool { return r.DeliveryDate != "" },
		setString: func(r *domain.ShipmentRecord, v string) { r.DeliveryDate = v },
	},
	"commit_time": {
		isSet:     func(r *domain.ShipmentRecord) bool { return r.CommitTime != "" },
		setString: func(r *domain.ShipmentRecord, v string) { r.CommitTime = v },
	},
	"package_type": {
		isSet:     func(r *domain.ShipmentRecord) bool { return r.PackageType != "" },
		setString: func(r *domain.ShipmentRecord, v string) { r.PackageType = v },
	},
	"number_of_packages": {
		isSet:  func(r *domain.ShipmentRecord) bool { return r.NumberOfPackages != nil },
		setInt: func(r *domain.ShipmentRecord, v int) { r.NumberOfPackages = &v },
	},
	"message_codes": {
		isSet:     func(r *domain.ShipmentRecord) bool { return r.MessageCodes != "" },
		setString: func(r *domain.ShipmentRecord, v string) { r.MessageCodes = v },
	},
	"shipper_account": {
		isSet:     func(r *domain.ShipmentRecord) bool { return r.ShipperAccount != "" },
		setString: func(r *domain.ShipmentRecord, v string) { r.ShipperAccount = v },
	},
	"third_party_account": {
		isSet:     func(r *domain.ShipmentRecord) bool { return r.ThirdPartyAccount != "" },
		setString: func(r *domain.ShipmentRecord, v string) { r.ThirdPartyAccount = v },
	},
}

// HasValue reports whether the record already holds a value for the field.
// Unknown names report false so a stray definition can never block writes.
func HasValue(r *domain.ShipmentRecord, name string) bool {
	if name == "line_total" {
		return r.LineTotal != nil
	}
	if b, ok := bindings[name]; ok {
		return b.isSet(r)
	}
	_, ok := r.Surcharges[name]
	return ok
}

// SetString stores a coerced string (or normalized date) value on the record.
func SetString(r *domain.ShipmentRecord, name, v string) bool {
	b, ok := bindings[name]
	if !ok || b.setString == nil {
		return false
	}
	b.setString(r, v)
	return true
}

// SetFloat stores a coerced currency or float value on the record.
func SetFloat(r *domain.ShipmentRecord, name string, v float64) bool {
	b, ok := bindings[name]
	if !ok || b.setFloat == nil {
		return false
	}
	b.setFloat(r, v)
	return true
}

// SetInt stores a coerced integer value on the record.
func SetInt(r *domain.ShipmentRecord, name string, v int) bool {
	b, ok := bindings[name]
	if !ok || b.setInt == nil {
		return false
	}
	b.setInt(r, v)
	return true
}

// SetTriple stores a currency triple: surcharges go into the Surcharges map,
// line totals onto the dedicated members. Both views stay consistent because
// the triple struct is the scalar storage.
func SetTriple(r *domain.ShipmentRecord, name string, t domain.CurrencyTriple) {
	if name == "line_total" {
		r.LineTotal = &t
		r.LineTotalPublished = t.Published
		r.LineTotalIncentive = t.Incentive
		r.LineTotalBilled = t.Billed
		return
	}
	r.SetSurcharge(name, t)
}
