package http

import (
	"context"
	"net/http"

	"loan-advisor/domain"
)

type Recommender interface {
	Recommend(ctx context.Context, query domain.LoanQuery) ([]domain.BankRecommendation, error)
}

type EligibilityChecker interface {
	CheckEligibility(ctx context.Context, query domain.EligibilityQuery) (domain.EligibilityResult, error)
}

type InsightsProvider interface {
	Sample(ctx context.Context) ([]domain.LoanRecord, error)
	Insights(ctx context.Context) (domain.LoanInsights, error)
}

type Explainer interface {
	ExplainEligibility(ctx context.Context, query domain.EligibilityQuery, result domain.EligibilityResult) domain.Explanation
}

// AdvisoryHandler serves the dataset-backed endpoints.
type AdvisoryHandler struct {
	recommender Recommender
	eligibility EligibilityChecker
	insights    InsightsProvider
	explainer   Explainer
}

func NewAdvisoryHandler(
	recommender Recommender,
	eligibility EligibilityChecker,
	insights InsightsProvider,
	explainer Explainer,
) *AdvisoryHandler {
	return &AdvisoryHandler{
		recommender: recommender,
		eligibility: eligibility,
		insights:    insights,
		explainer:   explainer,
	}
}

type loanDataResponse struct {
	Data []domain.LoanRecord `json:"data"`
}

type recommendationsResponse struct {
	Recommendations []domain.BankRecommendation `json:"recommendations"`
}

type explainResponse struct {
	Result      domain.EligibilityResult `json:"result"`
	Explanation domain.Explanation       `json:"explanation"`
}

func (h *AdvisoryHandler) LoanData(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}

	sample, err := h.insights.Sample(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, loanDataResponse{Data: sample})
}

func (h *AdvisoryHandler) LoanInsights(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}

	insights, err := h.insights.Insights(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, insights)
}

func (h *AdvisoryHandler) Recommendations(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}

	var req recommendationRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	recs, err := h.recommender.Recommend(r.Context(), req.toQuery())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, recommendationsResponse{Recommendations: recs})
}

func (h *AdvisoryHandler) Eligibility(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}

	var req eligibilityRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.eligibility.CheckEligibility(r.Context(), req.toQuery())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *AdvisoryHandler) ExplainEligibility(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}

	var req eligibilityRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	query := req.toQuery()
	result, err := h.eligibility.CheckEligibility(r.Context(), query)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, explainResponse{
		Result:      result,
		Explanation: h.explainer.ExplainEligibility(r.Context(), query, result),
	})
}
