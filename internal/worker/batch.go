package worker

import (
	"context"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/greenlens/greenlens/internal/model"
)

// Analyzer defines the pipeline surface the batch processor needs
type Analyzer interface {
	Analyze(sub model.ProductSubmission) *model.Report
	ScanListing(ctx context.Context, url string, sub model.ProductSubmission) (*model.Report, error)
}

// BatchEntry is one item in a batch file: a submission, optionally pointing
// at a live listing page whose text replaces the description.
type BatchEntry struct {
	model.ProductSubmission `yaml:",inline"`

	ListingURL string `yaml:"listing_url"`
}

// SubmissionJob analyzes one batch entry
type SubmissionJob struct {
	Entry    BatchEntry
	Analyzer Analyzer
	Limiter  *Limiter // Applied only when the entry has a listing URL
}

// Execute runs the analysis for the job's entry
func (j *SubmissionJob) Execute(ctx context.Context) Result {
	result := &SubmissionResult{
		Company:    j.Entry.CompanyName,
		Product:    j.Entry.ProductTitle,
		ListingURL: j.Entry.ListingURL,
	}

	if j.Entry.ListingURL != "" {
		if j.Limiter != nil {
			if err := j.Limiter.Wait(ctx, j.Entry.ListingURL); err != nil {
				result.Error = fmt.Errorf("rate limit: %w", err)
				return result
			}
		}
		report, err := j.Analyzer.ScanListing(ctx, j.Entry.ListingURL, j.Entry.ProductSubmission)
		result.Report = report
		result.Error = err
		return result
	}

	result.Report = j.Analyzer.Analyze(j.Entry.ProductSubmission)
	return result
}

// SubmissionResult is the outcome of one batch entry
type SubmissionResult struct {
	Company    string
	Product    string
	ListingURL string
	Report     *model.Report
	Error      error
}

// GetError returns the error from the submission result
func (r *SubmissionResult) GetError() error {
	return r.Error
}

// BatchProcessor analyzes multiple submissions concurrently
type BatchProcessor struct {
	analyzer    Analyzer
	limiter     *Limiter
	concurrency int
}

// NewBatchProcessor creates a batch processor. The rate limit applies per
// domain and only to entries that fetch a live listing.
func NewBatchProcessor(analyzer Analyzer, concurrency int, requestsPerSecond float64, burst int) *BatchProcessor {
	return &BatchProcessor{
		analyzer:    analyzer,
		limiter:     NewLimiter(requestsPerSecond, burst),
		concurrency: concurrency,
	}
}

// Process analyzes the entries concurrently and returns results in
// completion order
func (b *BatchProcessor) Process(ctx context.Context, entries []BatchEntry) []*SubmissionResult {
	if len(entries) == 0 {
		return []*SubmissionResult{}
	}

	pool := NewPool(b.concurrency)
	pool.Start()

	for _, entry := range entries {
		pool.Submit(&SubmissionJob{
			Entry:    entry,
			Analyzer: b.analyzer,
			Limiter:  b.limiter,
		})
	}

	results := pool.Wait()

	submissionResults := make([]*SubmissionResult, len(results))
	for i, result := range results {
		submissionResults[i] = result.(*SubmissionResult)
	}
	return submissionResults
}

// ProcessFile reads submissions from a YAML file and analyzes them
// concurrently
func (b *BatchProcessor) ProcessFile(ctx context.Context, filePath string) ([]*SubmissionResult, error) {
	entries, err := ReadSubmissionsFromFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("read submissions: %w", err)
	}
	return b.Process(ctx, entries), nil
}

// ReadSubmissionsFromFile reads a YAML list of batch entries. Each entry
// needs a company name and either a description or a listing URL.
func ReadSubmissionsFromFile(filePath string) ([]BatchEntry, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}

	var entries []BatchEntry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse file: %w", err)
	}

	for i, entry := range entries {
		if strings.TrimSpace(entry.CompanyName) == "" {
			return nil, fmt.Errorf("entry %d: company is required", i+1)
		}
		if strings.TrimSpace(entry.ProductDescription) == "" && strings.TrimSpace(entry.ListingURL) == "" {
			return nil, fmt.Errorf("entry %d: description or listing_url is required", i+1)
		}
	}

	return entries, nil
}
