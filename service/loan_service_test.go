package service

import (
	"loan-advisor/domain"
	"testing"
)

func TestCalculateLoan_WithInterest(t *testing.T) {

	service := NewLoanService()

	input := domain.LoanInput{
		Amount:       10000,
		InterestRate: 12,
		TenureYears:  2,
	}

	result, err := service.CalculateLoan(input)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.MonthlyPayment != 470.73 {
		t.Errorf("expected monthly payment 470.73, got %.2f", result.MonthlyPayment)
	}
	if result.TotalPayment != 11297.63 {
		t.Errorf("expected total payment 11297.63, got %.2f", result.TotalPayment)
	}
	if result.TotalInterest != 1297.63 {
		t.Errorf("expected total interest 1297.63, got %.2f", result.TotalInterest)
	}
}

func TestCalculateLoan_ZeroInterest(t *testing.T) {

	service := NewLoanService()

	input := domain.LoanInput{
		Amount:       1200,
		InterestRate: 0,
		TenureYears:  1,
	}

	result, err := service.CalculateLoan(input)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := 100.0
	if result.MonthlyPayment != expected {
		t.Errorf("expected %.2f, got %.2f", expected, result.MonthlyPayment)
	}
	if result.TotalInterest != 0 {
		t.Errorf("expected no interest, got %.2f", result.TotalInterest)
	}
}

func TestCalculateLoan_InvalidInput(t *testing.T) {

	service := NewLoanService()

	tests := []struct {
		name  string
		input domain.LoanInput
	}{
		{"zero amount", domain.LoanInput{Amount: 0, InterestRate: 10, TenureYears: 1}},
		{"negative amount", domain.LoanInput{Amount: -5, InterestRate: 10, TenureYears: 1}},
		{"amount too large", domain.LoanInput{Amount: MaxLoanAmount + 1, InterestRate: 10, TenureYears: 1}},
		{"negative rate", domain.LoanInput{Amount: 1000, InterestRate: -1, TenureYears: 1}},
		{"rate too high", domain.LoanInput{Amount: 1000, InterestRate: 101, TenureYears: 1}},
		{"zero tenure", domain.LoanInput{Amount: 1000, InterestRate: 10, TenureYears: 0}},
		{"tenure too long", domain.LoanInput{Amount: 1000, InterestRate: 10, TenureYears: MaxTenureYears + 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := service.CalculateLoan(tt.input); err == nil {
				t.Errorf("expected error for %s", tt.name)
			}
		})
	}
}
