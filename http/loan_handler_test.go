package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"loan-advisor/domain"
	"loan-advisor/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postJSON(target, body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestCalculateLoanHandler_OK(t *testing.T) {

	handler := NewLoanHandler(service.NewLoanService())

	req := postJSON(RouteLoanCalculate, `{
		"amount": 10000,
		"interestRate": 12,
		"tenureYears": 2
	}`)

	w := httptest.NewRecorder()

	handler.CalculateLoan(w, req)

	resp := w.Result()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var result domain.LoanResult
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.Equal(t, 470.73, result.MonthlyPayment)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
}

func TestCalculateLoanHandler_MethodNotAllowed(t *testing.T) {

	handler := NewLoanHandler(service.NewLoanService())

	req := httptest.NewRequest(http.MethodGet, RouteLoanCalculate, nil)
	w := httptest.NewRecorder()

	handler.CalculateLoan(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected 405, got %d", w.Code)
	}
	assert.Equal(t, http.MethodPost, w.Header().Get("Allow"))
}

func TestCalculateLoanHandler_BadRequest(t *testing.T) {

	handler := NewLoanHandler(service.NewLoanService())

	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{invalid-json}`},
		{"zero amount", `{"amount": 0, "interestRate": 10, "tenureYears": 1}`},
		{"negative rate", `{"amount": 1000, "interestRate": -1, "tenureYears": 1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			handler.CalculateLoan(w, postJSON(RouteLoanCalculate, tt.body))

			if w.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d", w.Code)
			}
			var body errorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.NotEmpty(t, body.Error)
		})
	}
}

func TestCalculateLoanHandler_UnsupportedMediaType(t *testing.T) {

	handler := NewLoanHandler(service.NewLoanService())

	req := httptest.NewRequest(http.MethodPost, RouteLoanCalculate, strings.NewReader(`{"amount": 1}`))
	req.Header.Set("Content-Type", "text/plain")
	w := httptest.NewRecorder()

	handler.CalculateLoan(w, req)

	assert.Equal(t, http.StatusUnsupportedMediaType, w.Code)
}

func TestCalculateLoanHandler_BodyTooLarge(t *testing.T) {

	handler := NewLoanHandler(service.NewLoanService())

	big := `{"amount": 1, "pad": "` + strings.Repeat("x", maxBodyBytes) + `"}`
	w := httptest.NewRecorder()

	handler.CalculateLoan(w, postJSON(RouteLoanCalculate, big))

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}
