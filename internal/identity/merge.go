package identity

import "shipmatrix/internal/domain"

// Merge overwrites the four identity fields of each record with the
// resolver's values, field by field and only where the resolver found
// something. Records without a resolver tuple keep their catalog
// values untouched. Returns the number of corrected records.
func Merge(records []domain.ShipmentRecord, tuples map[string]domain.IdentityTuple) int {
	corrected := 0
	for i := range records {
		r := &records[i]
		t, ok := tuples[r.TrackingNumber]
		if !ok {
			r.IdentityCorrected = false
			continue
		}
		if t.SenderName != "" {
			r.SenderName = t.SenderName
		}
		if t.SenderAddress != "" {
			r.SenderAddress = t.SenderAddress
		}
		if t.ReceiverName != "" {
			r.ReceiverName = t.ReceiverName
		}
		if t.ReceiverAddress != "" {
			r.ReceiverAddress = t.ReceiverAddress
		}
		r.IdentityCorrected = true
		corrected++
	}
	return corrected
}
