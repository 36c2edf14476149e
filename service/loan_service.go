package service

import (
	"errors"
	"fmt"
	"math"

	"loan-advisor/domain"
)

// roundTo2Decimals rounds a float64 to 2 decimals.
func roundTo2Decimals(value float64) float64 {
	return math.Round(value*100) / 100
}

// LoanService is the EMI calculator.
type LoanService struct{}

func NewLoanService() *LoanService {
	return &LoanService{}
}

// CalculateLoan returns the monthly instalment and totals for a fixed-rate
// loan repaid monthly over TenureYears.
func (s *LoanService) CalculateLoan(
	input domain.LoanInput,
) (domain.LoanResult, error) {

	if input.Amount <= 0 {
		return domain.LoanResult{}, errors.New("invalid loan amount")
	}
	if input.Amount > MaxLoanAmount {
		return domain.LoanResult{}, fmt.Errorf("loan amount exceeds the maximum of %.2f", MaxLoanAmount)
	}
	if input.InterestRate < 0 {
		return domain.LoanResult{}, errors.New("invalid interest rate")
	}
	if input.InterestRate > MaxInterestRate {
		return domain.LoanResult{}, fmt.Errorf("interest rate exceeds the maximum of %.2f%%", MaxInterestRate)
	}
	if input.TenureYears <= 0 {
		return domain.LoanResult{}, errors.New("invalid loan tenure")
	}
	if input.TenureYears > MaxTenureYears {
		return domain.LoanResult{}, fmt.Errorf("loan tenure exceeds the maximum of %d years", MaxTenureYears)
	}

	months := float64(input.TenureYears * 12)

	var emi float64
	if input.InterestRate == 0 {
		emi = input.Amount / months
	} else {
		monthlyRate := input.InterestRate / 100 / 12
		growth := math.Pow(1+monthlyRate, months)
		emi = input.Amount * monthlyRate * growth / (growth - 1)
	}

	total := emi * months

	return domain.LoanResult{
		MonthlyPayment: roundTo2Decimals(emi),
		TotalPayment:   roundTo2Decimals(total),
		TotalInterest:  roundTo2Decimals(total - input.Amount),
	}, nil
}
