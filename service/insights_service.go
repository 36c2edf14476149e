package service

import (
	"context"
	"sort"

	"loan-advisor/dataset"
	"loan-advisor/domain"
)

// InsightsService serves the raw sample and the aggregate view used by the
// analytics widgets.
type InsightsService struct {
	loader     dataset.Loader
	sampleSize int
}

func NewInsightsService(loader dataset.Loader, sampleSize int) *InsightsService {
	if sampleSize <= 0 {
		sampleSize = DefaultSampleSize
	}
	return &InsightsService{loader: loader, sampleSize: sampleSize}
}

func (s *InsightsService) Sample(ctx context.Context) ([]domain.LoanRecord, error) {
	records, err := s.loader.Load(ctx)
	if err != nil {
		return nil, err
	}
	return dataset.Sample(records, s.sampleSize), nil
}

func (s *InsightsService) Insights(ctx context.Context) (domain.LoanInsights, error) {
	sample, err := s.Sample(ctx)
	if err != nil {
		return domain.LoanInsights{}, err
	}
	return Analyze(sample), nil
}

// Analyze aggregates a sample. An empty sample yields empty aggregates.
func Analyze(sample []domain.LoanRecord) domain.LoanInsights {
	type sums struct {
		total float64
		count int
	}
	rateByType := make(map[string]sums)
	feeByBank := make(map[string]sums)
	for _, r := range sample {
		t := rateByType[r.LoanType]
		t.total += r.InterestRate
		t.count++
		rateByType[r.LoanType] = t

		b := feeByBank[r.BankName]
		b.total += r.ProcessingFee
		b.count++
		feeByBank[r.BankName] = b
	}

	insights := domain.LoanInsights{
		SampleSize:        len(sample),
		AvgInterestRates:  make(map[string]string, len(rateByType)),
		AcceptanceRates:   make(map[string]string),
		PopularLoanTypes:  make([]domain.LoanTypeCount, 0, len(rateByType)),
		AvgProcessingFees: make(map[string]string, len(feeByBank)),
	}

	for loanType, s := range rateByType {
		insights.AvgInterestRates[loanType] = formatFixed(s.total / float64(s.count))
		insights.PopularLoanTypes = append(insights.PopularLoanTypes, domain.LoanTypeCount{Type: loanType, Count: s.count})
	}
	for bank, s := range feeByBank {
		insights.AvgProcessingFees[bank] = formatFixed(s.total / float64(s.count))
	}
	for bank, t := range tallyByBank(sample) {
		insights.AcceptanceRates[bank] = formatFixed(t.rate())
	}

	sort.Slice(insights.PopularLoanTypes, func(i, j int) bool {
		a, b := insights.PopularLoanTypes[i], insights.PopularLoanTypes[j]
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		return a.Type < b.Type
	})
	return insights
}
