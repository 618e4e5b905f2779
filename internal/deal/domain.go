package deal

import "time"

// KeyDate is a milestone date authored on a deal in the CMS. The label is
// free text written by the agent; association with a transaction stage is
// inferred at render time, not stored.
type KeyDate struct {
	ID          string    `json:"id"`
	Label       string    `json:"label"`
	Date        time.Time `json:"date"`
	IsCompleted bool      `json:"is_completed"`
	Notes       string    `json:"notes,omitempty"`
}

// Deal represents a client transaction tracked by the back office. The
// dashboard is read-only over this record; only the admin API mutates it.
type Deal struct {
	ID               string    `json:"id"`
	ClientName       string    `json:"client_name"`
	ClientEmail      string    `json:"client_email"`
	TransactionStage int       `json:"transaction_stage"`
	KeyDates         []KeyDate `json:"key_dates"`
	PropertyID       string    `json:"property_id"`
	ContractPrice    float64   `json:"contract_price,omitempty"`
	EarnestMoney     float64   `json:"earnest_money,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}
