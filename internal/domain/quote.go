package domain

type QuoteStatus string

const (
	QuoteStatusPending  QuoteStatus = "pending"
	QuoteStatusSent     QuoteStatus = "sent"
	QuoteStatusAccepted QuoteStatus = "accepted"
	QuoteStatusRejected QuoteStatus = "rejected"
)

// QuoteCustomer has no shipping address; quotes are priced, not shipped.
type QuoteCustomer struct {
	Name    string `json:"name"`
	Company string `json:"company,omitempty"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Notes   string `json:"notes,omitempty"`
}

// QuoteRequest numbering is independent from order numbering but follows the
// same per-year sequence scheme.
type QuoteRequest struct {
	ID        string        `json:"id"`
	Items     []OrderItem   `json:"items"`
	Customer  QuoteCustomer `json:"customer"`
	Status    QuoteStatus   `json:"status"`
	CreatedAt string        `json:"createdAt"`
	UpdatedAt string        `json:"updatedAt"`
}
