package dataset

import (
	"fmt"
	"testing"

	"loan-advisor/domain"

	"github.com/stretchr/testify/assert"
)

func makeRecords(n int) []domain.LoanRecord {
	records := make([]domain.LoanRecord, n)
	for i := range records {
		records[i] = domain.LoanRecord{
			BankName:   fmt.Sprintf("Bank %d", i),
			LoanType:   "Home Loan",
			LoanAmount: float64(100000 + i),
			Status:     domain.LoanStatusAccepted,
		}
	}
	return records
}

func TestSample_Size(t *testing.T) {
	tests := []struct {
		total, n, want int
	}{
		{total: 0, n: 100, want: 0},
		{total: 10, n: 100, want: 10},
		{total: 100, n: 100, want: 100},
		{total: 250, n: 100, want: 100},
		{total: 250, n: 0, want: 0},
		{total: 5, n: -1, want: 0},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d_of_%d", tt.n, tt.total), func(t *testing.T) {
			got := Sample(makeRecords(tt.total), tt.n)
			assert.Len(t, got, tt.want)
		})
	}
}

func TestSample_NoDuplicatesAllFromInput(t *testing.T) {
	input := makeRecords(500)
	members := make(map[string]bool, len(input))
	for _, r := range input {
		members[r.BankName] = true
	}

	for round := 0; round < 20; round++ {
		got := Sample(input, 100)
		seen := make(map[string]bool, len(got))
		for _, r := range got {
			assert.True(t, members[r.BankName], "sampled record not in input")
			assert.False(t, seen[r.BankName], "duplicate record %s", r.BankName)
			seen[r.BankName] = true
		}
	}
}

func TestSample_DoesNotMutateInput(t *testing.T) {
	input := makeRecords(300)
	before := make([]domain.LoanRecord, len(input))
	copy(before, input)

	Sample(input, 50)

	assert.Equal(t, before, input)
}

func TestSample_DrawsIndependently(t *testing.T) {
	input := makeRecords(1000)
	first := Sample(input, 100)

	differs := false
	for i := 0; i < 10 && !differs; i++ {
		next := Sample(input, 100)
		differs = fmt.Sprint(next) != fmt.Sprint(first)
	}
	assert.True(t, differs, "repeated samples should not be identical")
}
