package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"loan-advisor/config"
	"loan-advisor/domain"
	"loan-advisor/logger"
)

const advisorSystemPrompt = "You are a helpful loan advising assistant for the Indian market. " +
	"You ONLY provide information related to loans, loan eligibility and related financial advice. " +
	"Explain decisions clearly in 3-4 sentences, quote amounts in INR, and be encouraging but realistic."

var errAdvisorDisabled = errors.New("advisor api key not configured")

// AdvisorService turns an eligibility result into a short explanation using
// an OpenAI-compatible chat completions endpoint.
type AdvisorService struct {
	apiKey     string
	apiURL     string
	model      string
	maxTokens  int
	enabled    bool
	httpClient *http.Client
}

type ChatRequest struct {
	Model       string        `json:"model"`
	Messages    []ChatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
	Temperature float64       `json:"temperature"`
}

type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatResponse struct {
	Choices []struct {
		Message ChatMessage `json:"message"`
	} `json:"choices"`
}

func NewAdvisorService(cfg config.AdvisorConfig) *AdvisorService {
	return &AdvisorService{
		apiKey:    cfg.APIKey,
		apiURL:    cfg.APIURL,
		model:     cfg.Model,
		maxTokens: cfg.MaxTokens,
		enabled:   cfg.Enabled(),
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// ExplainEligibility never fails: when the model cannot be reached the
// deterministic fallback is returned and marked as degraded.
func (s *AdvisorService) ExplainEligibility(
	ctx context.Context,
	query domain.EligibilityQuery,
	result domain.EligibilityResult,
) domain.Explanation {
	text, err := s.callLLM(ctx, eligibilityPrompt(query, result))
	if err != nil {
		if !errors.Is(err, errAdvisorDisabled) {
			logger.Warn(ctx, "advisor unavailable, using fallback explanation", slog.Any("error", err))
		}
		return domain.Explanation{
			Text:     fallbackEligibilityExplanation(query, result),
			Source:   domain.ExplanationSourceFallback,
			Degraded: true,
		}
	}
	return domain.Explanation{
		Text:   text,
		Source: domain.ExplanationSourceLLM,
	}
}

func eligibilityPrompt(query domain.EligibilityQuery, result domain.EligibilityResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "An applicant asked for a %s of INR %.2f.\n", query.LoanType, query.LoanAmount)
	if query.CreditScore != nil {
		fmt.Fprintf(&b, "- Credit score: %.0f\n", *query.CreditScore)
	}
	if query.AnnualIncome != nil {
		fmt.Fprintf(&b, "- Annual income: INR %.2f\n", *query.AnnualIncome)
	}
	if query.YearsInOccupation != nil {
		fmt.Fprintf(&b, "- Years in current occupation: %.1f\n", *query.YearsInOccupation)
	}
	fmt.Fprintf(&b, "\nHistorical approval rate for similar loans: %s\n", result.AcceptanceRate)
	fmt.Fprintf(&b, "Average historical amount for this loan type: INR %s\n", result.AvgLoanAmount)

	if result.IsEligible {
		b.WriteString("\nDecision: likely eligible.\nSuggested banks:\n")
		for _, bank := range result.Recommendations {
			fmt.Fprintf(&b, "- %s at %.2f%% for %.0f years\n", bank.BankName, bank.InterestRate, bank.LoanTenure)
		}
	} else {
		b.WriteString("\nDecision: likely not eligible.\nReasons:\n")
		for _, reason := range result.Reasons {
			fmt.Fprintf(&b, "- %s\n", reason)
		}
	}
	b.WriteString("\nExplain this decision to the applicant and suggest next steps.")
	return b.String()
}

func (s *AdvisorService) callLLM(ctx context.Context, prompt string) (string, error) {
	if !s.enabled {
		return "", errAdvisorDisabled
	}

	reqBody := ChatRequest{
		Model: s.model,
		Messages: []ChatMessage{
			{Role: "system", Content: advisorSystemPrompt},
			{Role: "user", Content: prompt},
		},
		MaxTokens:   s.maxTokens,
		Temperature: 0.7,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.apiURL, bytes.NewReader(jsonData))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return "", fmt.Errorf("advisor api error (status %d): %s", resp.StatusCode, string(body))
	}

	var chatResp ChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		return "", fmt.Errorf("decode advisor response: %w", err)
	}
	if len(chatResp.Choices) == 0 || strings.TrimSpace(chatResp.Choices[0].Message.Content) == "" {
		return "", errors.New("no response from advisor")
	}
	return strings.TrimSpace(chatResp.Choices[0].Message.Content), nil
}

func fallbackEligibilityExplanation(query domain.EligibilityQuery, result domain.EligibilityResult) string {
	if result.IsEligible {
		names := make([]string, 0, len(result.Recommendations))
		for _, bank := range result.Recommendations {
			names = append(names, bank.BankName)
		}
		text := fmt.Sprintf("Based on %s approval rate for similar %s applications, you look likely to qualify for INR %.2f.",
			result.AcceptanceRate, query.LoanType, query.LoanAmount)
		if len(names) > 0 {
			text += " Banks with the lowest historical rates for this loan type: " + strings.Join(names, ", ") + "."
		}
		return text
	}

	text := fmt.Sprintf("Your %s request for INR %.2f may not be approved right now.", query.LoanType, query.LoanAmount)
	if len(result.Reasons) > 0 {
		text += " Main concerns: " + strings.Join(result.Reasons, "; ") + "."
	}
	return text + " Consider a smaller amount or improving your credit profile before applying."
}
