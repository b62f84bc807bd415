package split

import "github.com/go-split/split-ledger/internal/domain"

// Match pairs the payer queue against the beneficiary queue and returns the
// ledger entries that satisfy both sides exactly.
//
// Both lists are consumed front to back. Each step transfers the minimum of
// the two head values from the payer head to the beneficiary head and pops
// every head that reaches zero. With equal sums on both sides the queues
// empty simultaneously, producing at most len(from)+len(to)-1 entries.
// Zero-value heads are consumed without emitting an entry, so every returned
// amount is at least 1. Entry order depends only on input list order.
func Match(fromUsers, toUsers []domain.UserSplit) []domain.Entry {
	from := clone(fromUsers)
	to := clone(toUsers)

	entries := []domain.Entry{}

	i, j := 0, 0
	for i < len(from) && j < len(to) {
		amount := from[i].Value
		if to[j].Value < amount {
			amount = to[j].Value
		}

		if amount > 0 {
			entries = append(entries, domain.Entry{
				FromUserID: from[i].UserID,
				ToUserID:   to[j].UserID,
				Amount:     amount,
			})
		}

		from[i].Value -= amount
		to[j].Value -= amount

		if from[i].Value == 0 {
			i++
		}

		if to[j].Value == 0 {
			j++
		}
	}

	return entries
}
