package service

import (
	"context"
	"fmt"
	"log/slog"

	"loan-advisor/dataset"
	"loan-advisor/domain"
	"loan-advisor/logger"
)

type EligibilityService struct {
	loader     dataset.Loader
	sampleSize int
}

func NewEligibilityService(loader dataset.Loader, sampleSize int) *EligibilityService {
	if sampleSize <= 0 {
		sampleSize = DefaultSampleSize
	}
	return &EligibilityService{loader: loader, sampleSize: sampleSize}
}

// CheckEligibility estimates whether the applicant is likely to be approved,
// using a fresh random sample of the historical dataset.
func (s *EligibilityService) CheckEligibility(ctx context.Context, query domain.EligibilityQuery) (domain.EligibilityResult, error) {
	records, err := s.loader.Load(ctx)
	if err != nil {
		logger.Error(ctx, "failed to load dataset for eligibility", err)
		return domain.EligibilityResult{}, err
	}

	result := Evaluate(dataset.Sample(records, s.sampleSize), query)

	logger.Info(ctx, "eligibility evaluated",
		slog.String("loan_type", query.LoanType),
		slog.Bool("eligible", result.IsEligible),
		slog.Int("reasons", len(result.Reasons)),
		slog.Bool("insufficient_data", result.InsufficientData),
	)
	return result, nil
}

// Evaluate applies the eligibility rules to a sample. Every rule is checked
// independently; any failing rule makes the applicant ineligible.
func Evaluate(sample []domain.LoanRecord, query domain.EligibilityQuery) domain.EligibilityResult {
	relevant := filterRecords(sample, func(r domain.LoanRecord) bool {
		return r.LoanType == query.LoanType
	})

	similar := filterRecords(relevant, func(r domain.LoanRecord) bool {
		return r.InAmountRange(query.LoanAmount, SimilarAmountLower, SimilarAmountUpper)
	})
	rate := acceptanceRate(similar)

	result := domain.EligibilityResult{
		IsEligible:      true,
		Reasons:         []string{},
		AcceptanceRate:  formatPercent(rate),
		AvgLoanAmount:   formatFixed(0),
		Recommendations: []domain.EligibleBank{},
	}
	reject := func(reason string) {
		result.IsEligible = false
		result.Reasons = append(result.Reasons, reason)
	}

	if len(relevant) == 0 {
		result.InsufficientData = true
		reject(fmt.Sprintf(ReasonInsufficientFmt, query.LoanType))
	} else {
		maxAmount, avgAmount := amountStats(relevant)
		result.AvgLoanAmount = formatFixed(avgAmount)
		if query.LoanAmount > maxAmount*MaxAmountMultiplier {
			reject(ReasonAmountTooHigh)
		}
	}

	if query.CreditScore != nil && *query.CreditScore < MinCreditScore {
		reject(ReasonLowCreditScore)
	}
	if query.AnnualIncome != nil && query.LoanAmount > *query.AnnualIncome*MaxIncomeMultiplier {
		reject(ReasonIncomeRatio)
	}
	if query.YearsInOccupation != nil && *query.YearsInOccupation < MinYearsInOccupation {
		reject(ReasonShortOccupation)
	}
	if rate < MinSimilarAcceptancePc {
		reject(fmt.Sprintf(ReasonLowAcceptanceFmt, formatPercent(rate)))
	}

	if result.IsEligible {
		accepted := filterRecords(relevant, domain.LoanRecord.Accepted)
		for _, r := range cheapestPerBank(accepted, MaxEligibleRecommendations) {
			result.Recommendations = append(result.Recommendations, domain.EligibleBank{
				BankName:     r.BankName,
				InterestRate: r.InterestRate,
				LoanTenure:   r.TenureYears,
			})
		}
	}
	return result
}

// amountStats expects a non-empty slice.
func amountStats(records []domain.LoanRecord) (maxAmount, avgAmount float64) {
	var sum float64
	maxAmount = records[0].LoanAmount
	for _, r := range records {
		sum += r.LoanAmount
		if r.LoanAmount > maxAmount {
			maxAmount = r.LoanAmount
		}
	}
	return maxAmount, sum / float64(len(records))
}
