package domain

// LoanInput is the payload of the EMI calculator.
type LoanInput struct {
	Amount       float64 `json:"amount"`
	InterestRate float64 `json:"interestRate"`
	TenureYears  int     `json:"tenureYears"`
}

type LoanResult struct {
	MonthlyPayment float64 `json:"monthlyPayment"`
	TotalPayment   float64 `json:"totalPayment"`
	TotalInterest  float64 `json:"totalInterest"`
}
