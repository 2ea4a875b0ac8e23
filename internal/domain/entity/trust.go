package entity

import "time"

const (
	ReportOpen      = "OPEN"
	ReportResolved  = "RESOLVED"
	ReportDismissed = "DISMISSED"
)

// ReportReasons is the categorical set accepted from the reporting flow.
var ReportReasons = []string{
	"Scam/Fraud",
	"Inappropriate Behavior",
	"Poor Service Quality",
	"Safety Concern",
	"Other",
}

// Report is write-once from the client's perspective.
type Report struct {
	ID          string    `json:"id"`
	ReporterID  string    `json:"reporter_id"`
	ReportedID  string    `json:"reported_id"`
	Reason      string    `json:"reason"`
	Description string    `json:"description"`
	Status      string    `json:"status"` // OPEN initially
	CreatedAt   time.Time `json:"created_at"`
}

const (
	VerificationNone     = "NONE"
	VerificationPending  = "PENDING"
	VerificationApproved = "APPROVED"
	VerificationRejected = "REJECTED"
)

// DocumentTypes accepted for identity verification.
var DocumentTypes = []string{"national_id", "passport", "trade_license"}

// VerificationRequest starts PENDING; APPROVED/REJECTED are set externally,
// never by this client.
type VerificationRequest struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	DocumentType string    `json:"document_type"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}
