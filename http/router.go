package http

import (
	"net/http"
)

// Route paths.
const (
	RouteLoanData           = "/api/loan-data"
	RouteLoanInsights       = "/api/loan-insights"
	RouteRecommendations    = "/api/loan-recommendations"
	RouteEligibility        = "/api/loan-eligibility"
	RouteEligibilityExplain = "/api/loan-eligibility/explain"
	RouteLoanCalculate      = "/api/loan/calculate"
	RouteHealth             = "/healthz"
	RouteMetrics            = "/metrics"
)

type RouterDeps struct {
	Advisory       *AdvisoryHandler
	Loan           *LoanHandler
	Limiter        *RateLimiter
	Observer       RequestObserver
	MetricsHandler http.Handler
}

// NewRouter wires every route. API routes are rate limited; health and
// metrics are not.
func NewRouter(deps RouterDeps) http.Handler {
	mux := http.NewServeMux()

	api := func(route string, h http.HandlerFunc) {
		var handler http.Handler = h
		if deps.Limiter != nil {
			handler = RateLimitMiddleware(deps.Limiter, handler)
		}
		mux.Handle(route, InstrumentMiddleware(route, deps.Observer, handler))
	}

	api(RouteLoanData, deps.Advisory.LoanData)
	api(RouteLoanInsights, deps.Advisory.LoanInsights)
	api(RouteRecommendations, deps.Advisory.Recommendations)
	api(RouteEligibility, deps.Advisory.Eligibility)
	api(RouteEligibilityExplain, deps.Advisory.ExplainEligibility)
	api(RouteLoanCalculate, deps.Loan.CalculateLoan)

	mux.HandleFunc(RouteHealth, Health)
	if deps.MetricsHandler != nil {
		mux.Handle(RouteMetrics, deps.MetricsHandler)
	}

	return RequestIDMiddleware(RecoverMiddleware(mux))
}
