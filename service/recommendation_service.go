package service

import (
	"context"
	"log/slog"

	"loan-advisor/dataset"
	"loan-advisor/domain"
	"loan-advisor/logger"
)

type RecommendationService struct {
	loader     dataset.Loader
	sampleSize int
}

func NewRecommendationService(loader dataset.Loader, sampleSize int) *RecommendationService {
	if sampleSize <= 0 {
		sampleSize = DefaultSampleSize
	}
	return &RecommendationService{loader: loader, sampleSize: sampleSize}
}

// Recommend returns up to five banks offering the requested loan type near
// the requested amount, cheapest first. Input validation is the caller's job.
func (s *RecommendationService) Recommend(ctx context.Context, query domain.LoanQuery) ([]domain.BankRecommendation, error) {
	records, err := s.loader.Load(ctx)
	if err != nil {
		logger.Error(ctx, "failed to load dataset for recommendations", err)
		return nil, err
	}

	sample := dataset.Sample(records, s.sampleSize)
	recs := RankBanks(sample, query)

	logger.Info(ctx, "bank recommendations computed",
		slog.String("loan_type", query.LoanType),
		slog.Float64("loan_amount", query.LoanAmount),
		slog.Int("sample", len(sample)),
		slog.Int("results", len(recs)),
	)
	return recs, nil
}

// RankBanks is the deterministic part of Recommend: given a sample it filters,
// ranks and annotates without any randomness.
func RankBanks(sample []domain.LoanRecord, query domain.LoanQuery) []domain.BankRecommendation {
	matches := filterRecords(sample, func(r domain.LoanRecord) bool {
		return r.LoanType == query.LoanType &&
			r.InAmountRange(query.LoanAmount, SimilarAmountLower, SimilarAmountUpper)
	})

	// acceptance is measured over the whole sample, not the filtered matches
	tallies := tallyByBank(sample)

	out := make([]domain.BankRecommendation, 0, MaxBankRecommendations)
	for _, r := range cheapestPerBank(matches, MaxBankRecommendations) {
		out = append(out, domain.BankRecommendation{
			BankName:       r.BankName,
			InterestRate:   r.InterestRate,
			ProcessingFee:  r.ProcessingFee,
			EMI:            r.EMI,
			AcceptanceRate: formatPercent(tallies[r.BankName].rate()),
			LoanTenure:     r.TenureYears,
		})
	}
	return out
}
