package domain

import "time"

// Entry is one immutable ledger record stating that FromUser transferred
// Amount to ToUser within the owning transaction. Amount is always positive.
type Entry struct {
	ID            int64     `json:"id"`
	TransactionID int64     `json:"transaction_id"`
	FromUserID    int64     `json:"from_user_id"`
	ToUserID      int64     `json:"to_user_id"`
	Amount        int64     `json:"amount"`
	CreatedAt     time.Time `json:"created_at"`
}
