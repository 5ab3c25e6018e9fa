package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"loan-compare/domain"
	"loan-compare/format"
)

const defaultAdvisorModel = "gpt-4o-mini"

type AdvisorConfig struct {
	Enabled bool
	APIKey  string
	APIURL  string
	Model   string
	Timeout time.Duration
}

// AdvisorService explains a comparison in plain words. It asks an LLM when
// one is configured and otherwise, or when the call fails, builds the
// explanation from the numbers alone.
type AdvisorService struct {
	apiKey     string
	apiURL     string
	model      string
	enabled    bool
	httpClient *http.Client
	logger     *zap.Logger
}

type OpenAIRequest struct {
	Model     string    `json:"model"`
	Messages  []Message `json:"messages"`
	MaxTokens int       `json:"max_tokens,omitempty"`
}

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type OpenAIResponse struct {
	Choices []struct {
		Message Message `json:"message"`
	} `json:"choices"`
}

func NewAdvisorService(cfg AdvisorConfig, logger *zap.Logger) *AdvisorService {
	if cfg.APIURL == "" {
		cfg.APIURL = "https://api.openai.com/v1/chat/completions"
	}
	if cfg.Model == "" {
		cfg.Model = defaultAdvisorModel
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}

	return &AdvisorService{
		apiKey:  cfg.APIKey,
		apiURL:  cfg.APIURL,
		model:   cfg.Model,
		enabled: cfg.Enabled && cfg.APIKey != "",
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger: logger,
	}
}

// Advise returns the narrative for a finished comparison.
func (s *AdvisorService) Advise(ctx context.Context, r domain.ComparisonResult) string {
	fallback := FallbackAdvice(r)
	if !s.enabled {
		return fallback
	}

	explanation, err := s.callLLM(ctx, comparisonPrompt(r))
	if err != nil {
		s.logger.Warn("advisor call failed, using fallback", zap.Error(err))
		return fallback
	}
	return explanation
}

// FallbackAdvice is the deterministic explanation: who wins and by how
// much, why the overdraft rate gap matters, and the 80C caveat.
func FallbackAdvice(r domain.ComparisonResult) string {
	years := r.Input.TenureMonths / 12
	var b strings.Builder

	if r.NetSavings > 0 {
		fmt.Fprintf(&b, "Choosing the home loan with overdraft saves %s (%.1f%% reduction) over %d years.",
			format.WithApproximation(r.NetSavings, 0), r.SavingsPercent, years)
	} else {
		fmt.Fprintf(&b, "In this scenario the regular home loan is cheaper by %s. "+
			"Overdraft works best when you can park significant surplus funds regularly.",
			format.WithApproximation(-r.NetSavings, 0))
	}

	fmt.Fprintf(&b, " The overdraft charges %.2f%% against %.2f%% on the regular loan, "+
		"but interest is only paid on the effective outstanding amount (loan minus OD balance). "+
		"With an initial surplus of %s and monthly additions of %s the interest burden drops accordingly.",
		r.Overdraft.InterestRate, r.Regular.InterestRate,
		format.Indian(r.Input.Overdraft.InitialDeposit, 0), format.Indian(r.Input.Overdraft.MonthlyAddition, 0))

	b.WriteString(" OD deposits are not eligible for the Section 80C deduction, only regular EMI principal is; " +
		"interest paid still qualifies under Section 24(b).")

	if !r.OverdraftEligible {
		b.WriteString(" Note: the loan amount is below this bank's minimum for an overdraft facility.")
	}
	return b.String()
}

func comparisonPrompt(r domain.ComparisonResult) string {
	return fmt.Sprintf(`Compare these two home loan options for an Indian borrower and explain the result.

REGULAR HOME LOAN (%s):
- Rate: %.2f%%, EMI: %s
- Total interest: %s, tax benefit: %s, net cost: %s

HOME LOAN WITH OVERDRAFT (%s):
- Rate: %.2f%%, EMI: %s
- Initial surplus parked: %s, monthly addition: %s
- Total interest: %s, tax benefit: %s, net cost: %s

Loan amount: %s over %d years, tax slab %.0f%%.
Net savings with overdraft: %s (%.1f%%).

Explain in 3-4 sentences which option is cheaper and why, mention the effect of the parked surplus,
and remind the reader that overdraft deposits do not count for Section 80C.`,
		r.Input.RegularBank, r.Regular.InterestRate, format.Indian(r.Regular.EMI, 0),
		format.Indian(r.Regular.TotalInterest, 0), format.Indian(r.Regular.TaxBenefit.Total(), 0), format.Indian(r.Regular.NetCost, 0),
		r.Input.OverdraftBank, r.Overdraft.InterestRate, format.Indian(r.Overdraft.EMI, 0),
		format.Indian(r.Input.Overdraft.InitialDeposit, 0), format.Indian(r.Input.Overdraft.MonthlyAddition, 0),
		format.Indian(r.Overdraft.TotalInterest, 0), format.Indian(r.Overdraft.TaxBenefit.Total(), 0), format.Indian(r.Overdraft.NetCost, 0),
		format.Indian(r.Input.Amount, 0), r.Input.TenureMonths/12, r.Input.Tax.SlabPercent,
		format.Indian(r.NetSavings, 0), r.SavingsPercent)
}

func (s *AdvisorService) callLLM(ctx context.Context, prompt string) (string, error) {
	reqBody := OpenAIRequest{
		Model: s.model,
		Messages: []Message{
			{
				Role:    "system",
				Content: "You are a home loan advisor for the Indian market. You explain EMI and overdraft home loans, Section 80C and Section 24(b) clearly and without jargon. Amounts are in rupees using lakh and crore notation.",
			},
			{
				Role:    "user",
				Content: prompt,
			},
		},
		MaxTokens: 300,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.apiURL, bytes.NewBuffer(jsonData))
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
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("API error (status %d): %s", resp.StatusCode, string(body))
	}

	var openAIResp OpenAIResponse
	if err := json.NewDecoder(resp.Body).Decode(&openAIResp); err != nil {
		return "", err
	}

	if len(openAIResp.Choices) == 0 {
		return "", fmt.Errorf("no response from advisor")
	}

	return strings.TrimSpace(openAIResp.Choices[0].Message.Content), nil
}
