package http

import (
	"net/http"

	"loan-advisor/domain"
)

type LoanCalculator interface {
	CalculateLoan(input domain.LoanInput) (domain.LoanResult, error)
}

// LoanHandler exposes the EMI calculator.
type LoanHandler struct {
	calculator LoanCalculator
}

func NewLoanHandler(calculator LoanCalculator) *LoanHandler {
	return &LoanHandler{calculator: calculator}
}

func (h *LoanHandler) CalculateLoan(w http.ResponseWriter, r *http.Request) {

	if !requireMethod(w, r, http.MethodPost) {
		return
	}

	var input domain.LoanInput
	if !decodeJSON(w, r, &input) {
		return
	}

	result, err := h.calculator.CalculateLoan(input)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
