package entity

// Review is read-only in this client; reviews are seeded or
// backend-sourced, never created here.
type Review struct {
	ID           string `json:"id"`
	ProviderID   string `json:"provider_id"`
	ReviewerName string `json:"reviewer_name"`
	Rating       int    `json:"rating"` // 1-5
	Date         string `json:"date"`
	Comment      string `json:"comment"`
}
