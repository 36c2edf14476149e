package dataset

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"

	"loan-advisor/domain"
	"loan-advisor/logger"
)

// Loader retrieves the full historical loan dataset.
//
//go:generate mockgen -destination=mocks/mock_loader.go -package=mocks -source=loader.go Loader
type Loader interface {
	Load(ctx context.Context) ([]domain.LoanRecord, error)
}

// Fetch outcomes reported to a FetchObserver.
const (
	OutcomeOK         = "ok"
	OutcomeFetchError = "fetch_error"
	OutcomeParseError = "parse_error"
	OutcomeCacheHit   = "cache_hit"
)

// FetchObserver receives one notification per load.
type FetchObserver interface {
	ObserveFetch(outcome string, skippedRows int, elapsed time.Duration)
}

// HTTPLoader downloads and parses the CSV on every call.
type HTTPLoader struct {
	url        string
	httpClient *http.Client
	observer   FetchObserver
}

type HTTPLoaderOption func(*HTTPLoader)

func WithHTTPClient(c *http.Client) HTTPLoaderOption {
	return func(l *HTTPLoader) { l.httpClient = c }
}

func WithObserver(o FetchObserver) HTTPLoaderOption {
	return func(l *HTTPLoader) { l.observer = o }
}

func NewHTTPLoader(url string, timeout time.Duration, opts ...HTTPLoaderOption) *HTTPLoader {
	l := &HTTPLoader{
		url: url,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *HTTPLoader) Load(ctx context.Context) ([]domain.LoanRecord, error) {
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.url, nil)
	if err != nil {
		l.observe(OutcomeFetchError, 0, start)
		return nil, &domain.FetchError{Source: l.url, Err: err}
	}
	req.Header.Set("Accept", "text/csv")

	resp, err := l.httpClient.Do(req)
	if err != nil {
		l.observe(OutcomeFetchError, 0, start)
		return nil, &domain.FetchError{Source: l.url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		l.observe(OutcomeFetchError, 0, start)
		return nil, &domain.FetchError{Source: l.url, StatusCode: resp.StatusCode}
	}

	records, err := parseAndReport(ctx, resp.Body, l.url)
	if err != nil {
		l.observe(OutcomeParseError, 0, start)
		return nil, err
	}
	l.observe(OutcomeOK, records.skipped, start)
	return records.rows, nil
}

func (l *HTTPLoader) observe(outcome string, skipped int, start time.Time) {
	if l.observer != nil {
		l.observer.ObserveFetch(outcome, skipped, time.Since(start))
	}
}

// FileLoader reads the dataset from a local CSV file.
type FileLoader struct {
	path string
}

func NewFileLoader(path string) *FileLoader {
	return &FileLoader{path: path}
}

func (l *FileLoader) Load(ctx context.Context) ([]domain.LoanRecord, error) {
	file, err := os.Open(l.path)
	if err != nil {
		return nil, &domain.FetchError{Source: l.path, Err: err}
	}
	defer file.Close()

	records, err := parseAndReport(ctx, file, l.path)
	if err != nil {
		return nil, err
	}
	return records.rows, nil
}

type parsed struct {
	rows    []domain.LoanRecord
	skipped int
}

func parseAndReport(ctx context.Context, r io.Reader, source string) (parsed, error) {
	rows, skipped, err := Parse(r)
	if err != nil {
		return parsed{}, fmt.Errorf("parse dataset %s: %w", source, err)
	}
	if len(skipped) > 0 {
		logger.Warn(ctx, "skipped malformed dataset rows",
			slog.String("source", source),
			slog.Int("skipped", len(skipped)),
			slog.String("first", skipped[0].Error()),
		)
	}
	logger.Debug(ctx, "loaded loan records", slog.String("source", source), slog.Int("records", len(rows)))
	return parsed{rows: rows, skipped: len(skipped)}, nil
}
