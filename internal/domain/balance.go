package domain

// Balance is the derived net position of a user against a single counterpart.
//
// A positive TotalAmount means the counterpart owes the queried user; a
// negative one means the queried user owes the counterpart. Balances are
// recomputed from active ledger entries on every query and never persisted.
type Balance struct {
	UserID      int64 `json:"user_id"`
	TotalAmount int64 `json:"total_amount"`
}
