package domain

// LoanQuery is the input of the bank recommendation engine.
type LoanQuery struct {
	LoanAmount float64
	LoanType   string
}

// EligibilityQuery is the input of the eligibility engine. A nil optional
// field means the value is unknown, which never disqualifies on its own.
type EligibilityQuery struct {
	LoanAmount        float64
	LoanType          string
	CreditScore       *float64
	AnnualIncome      *float64
	YearsInOccupation *float64
}

type BankRecommendation struct {
	BankName       string  `json:"bankName"`
	InterestRate   float64 `json:"interestRate"`
	ProcessingFee  float64 `json:"processingFee"`
	EMI            float64 `json:"emi"`
	AcceptanceRate string  `json:"acceptanceRate"`
	LoanTenure     float64 `json:"loanTenure"`
}

// EligibleBank is the short projection returned with a positive eligibility decision.
type EligibleBank struct {
	BankName     string  `json:"bankName"`
	InterestRate float64 `json:"interestRate"`
	LoanTenure   float64 `json:"loanTenure"`
}

type EligibilityResult struct {
	IsEligible       bool           `json:"isEligible"`
	Reasons          []string       `json:"reasons"`
	AcceptanceRate   string         `json:"acceptanceRate"`
	AvgLoanAmount    string         `json:"avgLoanAmount"`
	InsufficientData bool           `json:"insufficientData,omitempty"`
	Recommendations  []EligibleBank `json:"recommendations"`
}

type LoanTypeCount struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
}

// LoanInsights aggregates a dataset sample for the analytics widgets.
type LoanInsights struct {
	SampleSize        int               `json:"sampleSize"`
	AvgInterestRates  map[string]string `json:"avgInterestRates"`
	AcceptanceRates   map[string]string `json:"acceptanceRates"`
	PopularLoanTypes  []LoanTypeCount   `json:"popularLoanTypes"`
	AvgProcessingFees map[string]string `json:"avgProcessingFees"`
}

type ExplanationSource string

const (
	ExplanationSourceLLM      ExplanationSource = "llm"
	ExplanationSourceFallback ExplanationSource = "fallback"
)

// Explanation is a human readable summary of an eligibility decision.
// Degraded is set when the language model could not be used.
type Explanation struct {
	Text     string            `json:"text"`
	Source   ExplanationSource `json:"source"`
	Degraded bool              `json:"degraded"`
}
