package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents an authenticated API user.
type User struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	FullName     string    `db:"full_name" json:"full_name"`
	Role         UserRole  `db:"role" json:"role"`
	IsActive     bool      `db:"is_active" json:"is_active"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// ParseRun tracks one uploaded document through the extraction pipeline.
type ParseRun struct {
	ID            uuid.UUID  `db:"id" json:"id"`
	FileName      string     `db:"file_name" json:"file_name"`
	S3Bucket      string     `db:"s3_bucket" json:"s3_bucket"`
	S3Key         string     `db:"s3_key" json:"s3_key"`
	Status        RunStatus  `db:"status" json:"status"`
	Error         string     `db:"error" json:"error,omitempty"`
	InvoiceCount  int        `db:"invoice_count" json:"invoice_count"`
	ShipmentCount int        `db:"shipment_count" json:"shipment_count"`
	CreatedBy     uuid.UUID  `db:"created_by" json:"created_by"`
	CreatedAt     time.Time  `db:"created_at" json:"created_at"`
	StartedAt     *time.Time `db:"started_at" json:"started_at,omitempty"`
	CompletedAt   *time.Time `db:"completed_at" json:"completed_at,omitempty"`
}

// RunStats holds the aggregate statistics computed for one completed run.
type RunStats struct {
	TotalInvoices         int            `json:"total_invoices"`
	TotalShipments        int            `json:"total_shipments"`
	IdentityCorrected     int            `json:"identity_corrected"`
	IncentiveSignWarnings int            `json:"incentive_sign_warnings"`
	ServiceTypes          map[string]int `json:"service_types,omitempty"`
	Zones                 map[string]int `json:"zones,omitempty"`
	TotalPublished        float64        `json:"total_published"`
	TotalIncentive        float64        `json:"total_incentive"`
	TotalBilled           float64        `json:"total_billed"`
	FieldCoverage         map[string]int `json:"field_coverage,omitempty"`
	ValidationErrors      int            `json:"validation_errors"`
	ValidationWarnings    int            `json:"validation_warnings"`
}

// CoveragePercent returns the fill rate of a tracked field as a percentage.
func (s RunStats) CoveragePercent(field string) float64 {
	if s.TotalShipments == 0 {
		return 0
	}
	return float64(s.FieldCoverage[field]) / float64(s.TotalShipments) * 100
}
