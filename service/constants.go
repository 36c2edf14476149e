package service

const (
	DefaultSampleSize = 100

	// Comparable loans lie within ±20% of the requested amount, inclusive.
	SimilarAmountLower = 0.8
	SimilarAmountUpper = 1.2

	MaxBankRecommendations     = 5
	MaxEligibleRecommendations = 3

	// Eligibility thresholds.
	MaxAmountMultiplier    = 1.5 // of the largest sampled amount for the type
	MinCreditScore         = 650
	MaxIncomeMultiplier    = 5
	MinYearsInOccupation   = 2
	MinSimilarAcceptancePc = 30

	// EMI calculator bounds.
	MaxLoanAmount   = 10_000_000_000.0 // 1000 crore INR
	MaxInterestRate = 100.0
	MaxTenureYears  = 40
)

const (
	ReasonAmountTooHigh    = "Requested loan amount is significantly higher than typical approved amounts"
	ReasonLowCreditScore   = "Credit score is below the recommended threshold of 650"
	ReasonIncomeRatio      = "Loan amount exceeds 5 times your annual income"
	ReasonShortOccupation  = "Less than 2 years in current occupation may affect eligibility"
	ReasonLowAcceptanceFmt = "Low approval rate (%s) for similar loans in our dataset"
	ReasonInsufficientFmt  = "Not enough historical data for %s to assess the requested amount"
)
