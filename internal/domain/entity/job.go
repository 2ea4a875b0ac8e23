package entity

import apperrors "fetan/pkg/errors"

const (
	JobPending    = "PENDING"
	JobInProgress = "IN_PROGRESS"
	JobCompleted  = "COMPLETED"
)

const (
	PaymentPending = "PENDING"
	PaymentPaid    = "PAID"
	PaymentFailed  = "FAILED"
)

// Job is a unit of requested work. Status moves PENDING -> IN_PROGRESS ->
// COMPLETED and never regresses.
type Job struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
	Date        string `json:"date"` // ISO date of creation

	CustomerID   string `json:"customer_id"`
	CustomerName string `json:"customer_name"`
	ProviderID   string `json:"provider_id,omitempty"`
	ProviderName string `json:"provider_name,omitempty"`

	Amount        float64 `json:"amount"`
	PaymentStatus string  `json:"payment_status,omitempty"`
	PaymentMethod string  `json:"payment_method,omitempty"`
	TransactionID string  `json:"transaction_id,omitempty"`
}

// Accept binds a provider and moves the job to IN_PROGRESS. Only an
// unassigned PENDING job can be accepted; first acceptance wins.
func (j *Job) Accept(providerID, providerName string) error {
	if j.Status != JobPending || j.ProviderID != "" {
		return apperrors.JobUnavailable()
	}
	j.Status = JobInProgress
	j.ProviderID = providerID
	j.ProviderName = providerName
	return nil
}

// Complete moves the job to COMPLETED. Only an IN_PROGRESS job completes.
func (j *Job) Complete() error {
	if j.Status != JobInProgress {
		return apperrors.InvalidTransition("Only a job in progress can be completed")
	}
	j.Status = JobCompleted
	return nil
}

// Available reports whether the job should appear in the open listing.
func (j *Job) Available() bool {
	return j.Status == JobPending && j.ProviderID == ""
}
