package dataset

import (
	"math/rand"

	"loan-advisor/domain"
)

// Sample returns min(n, len(records)) records chosen uniformly without
// replacement. Every call draws independently. The input is never modified.
func Sample(records []domain.LoanRecord, n int) []domain.LoanRecord {
	if n < 0 {
		n = 0
	}
	out := make([]domain.LoanRecord, len(records))
	copy(out, records)
	if len(out) <= n {
		return out
	}

	// partial Fisher-Yates: the first n slots end up a uniform sample
	for i := 0; i < n; i++ {
		j := i + rand.Intn(len(out)-i)
		out[i], out[j] = out[j], out[i]
	}
	return out[:n]
}
