package service

import (
	"context"
	"errors"
	"math"
	"testing"

	"loan-advisor/dataset/mocks"
	"loan-advisor/domain"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(v float64) *float64 { return &v }

func allAcceptedHomeLoans() []domain.LoanRecord {
	return []domain.LoanRecord{
		rec("A", home, 450000, 8.5, accepted),
		rec("B", home, 500000, 7.9, accepted),
		rec("C", home, 550000, 8.1, accepted),
		rec("A", home, 520000, 7.2, accepted),
		rec("D", home, 600000, 9.0, accepted),
	}
}

func TestEvaluate_AllOptionalOmitted(t *testing.T) {
	got := Evaluate(allAcceptedHomeLoans(), domain.EligibilityQuery{LoanAmount: 500000, LoanType: home})

	assert.True(t, got.IsEligible)
	assert.Empty(t, got.Reasons)
	assert.Equal(t, "100.00%", got.AcceptanceRate)
	assert.Equal(t, "524000.00", got.AvgLoanAmount)
	assert.False(t, got.InsufficientData)

	require.Len(t, got.Recommendations, MaxEligibleRecommendations)
	assert.Equal(t, domain.EligibleBank{BankName: "A", InterestRate: 7.2, LoanTenure: 10}, got.Recommendations[0])
	assert.Equal(t, "B", got.Recommendations[1].BankName)
	assert.Equal(t, "C", got.Recommendations[2].BankName)
}

func TestEvaluate_LowCreditScoreAlwaysRejects(t *testing.T) {
	got := Evaluate(allAcceptedHomeLoans(), domain.EligibilityQuery{
		LoanAmount:        500000,
		LoanType:          home,
		CreditScore:       ptr(600),
		AnnualIncome:      ptr(10000000),
		YearsInOccupation: ptr(10),
	})

	assert.False(t, got.IsEligible)
	assert.Equal(t, []string{ReasonLowCreditScore}, got.Reasons)
	assert.Contains(t, got.Reasons[0], "650")
	assert.Empty(t, got.Recommendations)
}

func TestEvaluate_ReasonsAccumulate(t *testing.T) {
	got := Evaluate(allAcceptedHomeLoans(), domain.EligibilityQuery{
		LoanAmount:        1000000,
		LoanType:          home,
		CreditScore:       ptr(500),
		AnnualIncome:      ptr(100000),
		YearsInOccupation: ptr(1),
	})

	assert.False(t, got.IsEligible)
	assert.Equal(t, []string{
		ReasonAmountTooHigh,
		ReasonLowCreditScore,
		ReasonIncomeRatio,
		ReasonShortOccupation,
		"Low approval rate (0.00%) for similar loans in our dataset",
	}, got.Reasons)
	assert.Equal(t, "0.00%", got.AcceptanceRate)
}

func TestEvaluate_OptionalRules(t *testing.T) {
	tests := []struct {
		name   string
		query  domain.EligibilityQuery
		reason string
	}{
		{
			name:   "income ratio",
			query:  domain.EligibilityQuery{LoanAmount: 500000, LoanType: home, AnnualIncome: ptr(99999)},
			reason: ReasonIncomeRatio,
		},
		{
			name:   "zero income is known, not missing",
			query:  domain.EligibilityQuery{LoanAmount: 500000, LoanType: home, AnnualIncome: ptr(0)},
			reason: ReasonIncomeRatio,
		},
		{
			name:   "short occupation",
			query:  domain.EligibilityQuery{LoanAmount: 500000, LoanType: home, YearsInOccupation: ptr(1.5)},
			reason: ReasonShortOccupation,
		},
		{
			name:   "credit score just below threshold",
			query:  domain.EligibilityQuery{LoanAmount: 500000, LoanType: home, CreditScore: ptr(649)},
			reason: ReasonLowCreditScore,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Evaluate(allAcceptedHomeLoans(), tt.query)
			assert.False(t, got.IsEligible)
			assert.Equal(t, []string{tt.reason}, got.Reasons)
		})
	}
}

func TestEvaluate_ThresholdsPass(t *testing.T) {
	got := Evaluate(allAcceptedHomeLoans(), domain.EligibilityQuery{
		LoanAmount:        500000,
		LoanType:          home,
		CreditScore:       ptr(650),
		AnnualIncome:      ptr(100000),
		YearsInOccupation: ptr(2),
	})

	assert.True(t, got.IsEligible, got.Reasons)
}

func TestEvaluate_AmountFarAboveMax(t *testing.T) {
	// largest home loan is 600000; other types do not raise the ceiling
	sample := append(allAcceptedHomeLoans(), rec("E", "Business Loan", 900001, 9, accepted))

	got := Evaluate(sample, domain.EligibilityQuery{LoanAmount: 900001, LoanType: home})

	assert.False(t, got.IsEligible)
	assert.Contains(t, got.Reasons, ReasonAmountTooHigh)
}

func TestEvaluate_LowAcceptance(t *testing.T) {
	sample := []domain.LoanRecord{
		rec("A", home, 500000, 8, accepted),
		rec("B", home, 500000, 8, rejected),
		rec("C", home, 500000, 8, rejected),
		rec("D", home, 500000, 8, rejected),
	}

	got := Evaluate(sample, domain.EligibilityQuery{LoanAmount: 500000, LoanType: home})

	assert.False(t, got.IsEligible)
	assert.Equal(t, "25.00%", got.AcceptanceRate)
	assert.Equal(t, []string{"Low approval rate (25.00%) for similar loans in our dataset"}, got.Reasons)
}

func TestEvaluate_InsufficientData(t *testing.T) {
	got := Evaluate(allAcceptedHomeLoans(), domain.EligibilityQuery{LoanAmount: 500000, LoanType: "Agriculture Loan"})

	assert.False(t, got.IsEligible)
	assert.True(t, got.InsufficientData)
	assert.Equal(t, "0.00", got.AvgLoanAmount)
	assert.Equal(t, "0.00%", got.AcceptanceRate)
	assert.Equal(t, []string{
		"Not enough historical data for Agriculture Loan to assess the requested amount",
		"Low approval rate (0.00%) for similar loans in our dataset",
	}, got.Reasons)
	assert.NotContains(t, got.AvgLoanAmount, "NaN")
}

func TestEvaluate_NonFiniteAmountDoesNotPanic(t *testing.T) {
	sample := append(allAcceptedHomeLoans(), rec("E", home, math.NaN(), 8, accepted))

	var got domain.EligibilityResult
	require.NotPanics(t, func() {
		got = Evaluate(sample, domain.EligibilityQuery{LoanAmount: 500000, LoanType: home})
	})
	assert.NotContains(t, got.AvgLoanAmount, "NaN")
	assert.NotContains(t, got.AcceptanceRate, "NaN")
}

func TestEvaluate_RecommendationsOnlyAccepted(t *testing.T) {
	sample := []domain.LoanRecord{
		rec("Cheap", home, 500000, 5, rejected),
		rec("A", home, 500000, 8, accepted),
		rec("A", home, 500000, 8, accepted),
		rec("B", home, 500000, 9, accepted),
	}

	got := Evaluate(sample, domain.EligibilityQuery{LoanAmount: 500000, LoanType: home})

	require.True(t, got.IsEligible, got.Reasons)
	require.Len(t, got.Recommendations, 2)
	assert.Equal(t, "A", got.Recommendations[0].BankName)
	assert.Equal(t, "B", got.Recommendations[1].BankName)
}

func TestCheckEligibility(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := mocks.NewMockLoader(ctrl)
	loader.EXPECT().Load(gomock.Any()).Return(allAcceptedHomeLoans(), nil)

	got, err := NewEligibilityService(loader, 100).CheckEligibility(context.Background(), domain.EligibilityQuery{LoanAmount: 500000, LoanType: home})

	require.NoError(t, err)
	assert.True(t, got.IsEligible)
}

func TestCheckEligibility_LoaderError(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := mocks.NewMockLoader(ctrl)
	want := &domain.ParseError{Line: 1, Column: "Loan Status", Err: errors.New("missing column")}
	loader.EXPECT().Load(gomock.Any()).Return(nil, want)

	_, err := NewEligibilityService(loader, 100).CheckEligibility(context.Background(), domain.EligibilityQuery{LoanAmount: 1, LoanType: home})

	assert.ErrorIs(t, err, want)
}
