package service

import (
	"math"
	"sort"

	"github.com/shopspring/decimal"

	"loan-advisor/domain"
)

// formatPercent renders a ratio already scaled to [0,100] as "NN.NN%".
func formatPercent(v float64) string {
	return formatFixed(v) + "%"
}

// formatFixed renders v with two decimals. Non-finite values render as
// "0.00" since decimal cannot represent them.
func formatFixed(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "0.00"
	}
	return decimal.NewFromFloat(v).StringFixed(2)
}

// acceptanceRate is accepted/total*100, or 0 for an empty set.
func acceptanceRate(records []domain.LoanRecord) float64 {
	if len(records) == 0 {
		return 0
	}
	accepted := 0
	for _, r := range records {
		if r.Accepted() {
			accepted++
		}
	}
	return float64(accepted) / float64(len(records)) * 100
}

type bankTally struct {
	total    int
	accepted int
}

func (t bankTally) rate() float64 {
	if t.total == 0 {
		return 0
	}
	return float64(t.accepted) / float64(t.total) * 100
}

func tallyByBank(records []domain.LoanRecord) map[string]bankTally {
	tallies := make(map[string]bankTally)
	for _, r := range records {
		t := tallies[r.BankName]
		t.total++
		if r.Accepted() {
			t.accepted++
		}
		tallies[r.BankName] = t
	}
	return tallies
}

func filterRecords(records []domain.LoanRecord, keep func(domain.LoanRecord) bool) []domain.LoanRecord {
	out := make([]domain.LoanRecord, 0, len(records))
	for _, r := range records {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}

// cheapestPerBank sorts by interest rate (stable, so ties keep sample order)
// and keeps the first record of each bank, up to limit entries.
func cheapestPerBank(records []domain.LoanRecord, limit int) []domain.LoanRecord {
	sorted := make([]domain.LoanRecord, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].InterestRate < sorted[j].InterestRate
	})

	seen := make(map[string]bool)
	out := make([]domain.LoanRecord, 0, limit)
	for _, r := range sorted {
		if len(out) == limit {
			break
		}
		if seen[r.BankName] {
			continue
		}
		seen[r.BankName] = true
		out = append(out, r)
	}
	return out
}
