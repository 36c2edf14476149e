package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"loan-advisor/config"
	"loan-advisor/dataset"
	"loan-advisor/domain"
	"loan-advisor/logger"
	"loan-advisor/service"
)

func main() {
	logger.Init(config.GetEnvOrDefaultAsString("LOG_LEVEL", "warn"), "text")

	if err := run(context.Background(), os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// optionalFloat is a flag that remembers whether it was set.
type optionalFloat struct {
	value *float64
}

func (o *optionalFloat) String() string {
	if o.value == nil {
		return ""
	}
	return strconv.FormatFloat(*o.value, 'f', -1, 64)
}

func (o *optionalFloat) Set(s string) error {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return err
	}
	if !isFinite(v) {
		return errNotFinite
	}
	o.value = &v
	return nil
}

var errNotFinite = errors.New("value must be a finite number")

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func run(ctx context.Context, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("loan-check", flag.ContinueOnError)
	mode := fs.String("mode", "eligibility", "What to compute: eligibility, recommend or insights")
	file := fs.String("file", "", "Path to a local loan dataset CSV (defaults to the remote dataset)")
	url := fs.String("url", config.DefaultDatasetURL, "Dataset URL, used when -file is empty")
	timeout := fs.Duration("timeout", 20*time.Second, "Timeout for the remote dataset download")
	sampleSize := fs.Int("sample", service.DefaultSampleSize, "Number of records sampled per evaluation")
	amount := fs.Float64("amount", 0, "Requested loan amount in INR")
	loanType := fs.String("type", "", "Loan type, e.g. \"Home Loan\"")
	var creditScore, income, years optionalFloat
	fs.Var(&creditScore, "credit-score", "Applicant credit score (optional)")
	fs.Var(&income, "income", "Applicant annual income in INR (optional)")
	fs.Var(&years, "years", "Years in current occupation (optional)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	var loader dataset.Loader
	if *file != "" {
		loader = dataset.NewFileLoader(*file)
	} else {
		loader = dataset.NewHTTPLoader(*url, *timeout)
	}

	var (
		report any
		err    error
	)
	switch *mode {
	case "insights":
		report, err = service.NewInsightsService(loader, *sampleSize).Insights(ctx)
	case "recommend", "eligibility":
		if !isFinite(*amount) || *amount <= 0 || strings.TrimSpace(*loanType) == "" {
			fs.Usage()
			return errors.New("-amount must be a positive number and -type is required")
		}
		if *mode == "recommend" {
			report, err = service.NewRecommendationService(loader, *sampleSize).
				Recommend(ctx, domain.LoanQuery{LoanAmount: *amount, LoanType: *loanType})
			break
		}
		report, err = service.NewEligibilityService(loader, *sampleSize).
			CheckEligibility(ctx, domain.EligibilityQuery{
				LoanAmount:        *amount,
				LoanType:          *loanType,
				CreditScore:       creditScore.value,
				AnnualIncome:      income.value,
				YearsInOccupation: years.value,
			})
	default:
		return fmt.Errorf("unknown mode %q", *mode)
	}
	if err != nil {
		return fmt.Errorf("%s failed: %w", *mode, err)
	}

	output, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to generate JSON report: %w", err)
	}
	_, err = fmt.Fprintln(out, string(output))
	return err
}
