package domain

// LoanStatus is the historical outcome of a loan application.
type LoanStatus string

const (
	LoanStatusAccepted LoanStatus = "Accepted"
	LoanStatusRejected LoanStatus = "Rejected"
)

// Valid reports whether s is one of the known statuses.
func (s LoanStatus) Valid() bool {
	return s == LoanStatusAccepted || s == LoanStatusRejected
}

// LoanRecord is one row of the historical loan dataset.
// Amounts are in INR.
type LoanRecord struct {
	BankName      string     `json:"bankName"`
	LoanType      string     `json:"loanType"`
	LoanAmount    float64    `json:"loanAmount"`
	InterestRate  float64    `json:"interestRate"`
	ProcessingFee float64    `json:"processingFee"`
	EMI           float64    `json:"emi"`
	TenureYears   float64    `json:"loanTenure"`
	Status        LoanStatus `json:"loanStatus"`
}

func (r LoanRecord) Accepted() bool {
	return r.Status == LoanStatusAccepted
}

// InAmountRange reports whether the record amount lies within
// [amount*lower, amount*upper], both ends inclusive.
func (r LoanRecord) InAmountRange(amount, lower, upper float64) bool {
	return r.LoanAmount >= amount*lower && r.LoanAmount <= amount*upper
}
