package worker

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/greenlens/greenlens/internal/model"
)

// MockAnalyzer implements the Analyzer interface
type MockAnalyzer struct {
	ShouldError bool
}

func (m *MockAnalyzer) Analyze(sub model.ProductSubmission) *model.Report {
	time.Sleep(10 * time.Millisecond) // Simulate work
	return &model.Report{
		Product: model.ProductInfo{
			Title:   sub.ProductTitle,
			Company: sub.CompanyName,
		},
		RiskAssessment: model.RiskAssessment{RiskScore: 42, Verdict: model.VerdictReviewRequired},
	}
}

func (m *MockAnalyzer) ScanListing(ctx context.Context, url string, sub model.ProductSubmission) (*model.Report, error) {
	if m.ShouldError {
		return nil, errors.New("fetch error")
	}
	report := m.Analyze(sub)
	report.SourceURL = url
	return report, nil
}

func TestBatchProcessor_Process(t *testing.T) {
	processor := NewBatchProcessor(&MockAnalyzer{}, 4, 10, 10)

	entries := []BatchEntry{
		{ProductSubmission: model.ProductSubmission{CompanyName: "A", ProductTitle: "P1", ProductDescription: "d"}},
		{ProductSubmission: model.ProductSubmission{CompanyName: "B", ProductTitle: "P2", ProductDescription: "d"}},
		{ProductSubmission: model.ProductSubmission{CompanyName: "C", ProductTitle: "P3", ProductDescription: "d"}},
	}

	results := processor.Process(context.Background(), entries)

	if len(results) != 3 {
		t.Fatalf("Expected 3 results, got %d", len(results))
	}
	companies := make(map[string]bool)
	for _, r := range results {
		if r.Error != nil {
			t.Errorf("Expected no error for %s, got %v", r.Company, r.Error)
		}
		if r.Report == nil {
			t.Errorf("Expected a report for %s", r.Company)
		}
		companies[r.Company] = true
	}
	if len(companies) != 3 {
		t.Errorf("Expected all 3 companies processed, got %v", companies)
	}
}

func TestBatchProcessor_EmptyInput(t *testing.T) {
	processor := NewBatchProcessor(&MockAnalyzer{}, 4, 10, 10)

	results := processor.Process(context.Background(), nil)
	if len(results) != 0 {
		t.Errorf("Expected no results for empty input, got %d", len(results))
	}
}

func TestBatchProcessor_ListingEntryUsesScan(t *testing.T) {
	processor := NewBatchProcessor(&MockAnalyzer{}, 2, 100, 100)

	entries := []BatchEntry{
		{
			ProductSubmission: model.ProductSubmission{CompanyName: "A", ProductTitle: "P1"},
			ListingURL:        "https://shop.example/listing/1",
		},
	}

	results := processor.Process(context.Background(), entries)
	if len(results) != 1 {
		t.Fatalf("Expected 1 result, got %d", len(results))
	}
	if results[0].Report == nil || results[0].Report.SourceURL != "https://shop.example/listing/1" {
		t.Errorf("Expected the scan path with source URL, got %+v", results[0].Report)
	}
}

func TestBatchProcessor_ScanError(t *testing.T) {
	processor := NewBatchProcessor(&MockAnalyzer{ShouldError: true}, 2, 100, 100)

	entries := []BatchEntry{
		{
			ProductSubmission: model.ProductSubmission{CompanyName: "A", ProductTitle: "P1"},
			ListingURL:        "https://shop.example/listing/1",
		},
	}

	results := processor.Process(context.Background(), entries)
	if results[0].Error == nil {
		t.Error("Expected scan error to surface in the result")
	}
	if results[0].GetError() == nil {
		t.Error("Expected GetError to return the error")
	}
}

func TestReadSubmissionsFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "submissions.yaml")
	content := `- company: GreenWood Ltd
  product: Teak Table
  description: 100% eco-friendly timber
  category: timber
  certifications: [FSC]
- company: EcoThread
  product: Organic Tee
  listing_url: https://shop.example/tee
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	entries, err := ReadSubmissionsFromFile(path)
	if err != nil {
		t.Fatalf("Expected file to parse, got %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(entries))
	}
	if entries[0].CompanyName != "GreenWood Ltd" || entries[0].ClaimedCertifications[0] != "FSC" {
		t.Errorf("Expected first entry parsed, got %+v", entries[0])
	}
	if entries[1].ListingURL != "https://shop.example/tee" {
		t.Errorf("Expected listing URL parsed, got %+v", entries[1])
	}
}

func TestReadSubmissionsFromFile_MissingCompany(t *testing.T) {
	path := filepath.Join(t.TempDir(), "submissions.yaml")
	content := `- product: Nameless
  description: some text
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	if _, err := ReadSubmissionsFromFile(path); err == nil {
		t.Error("Expected error for entry without company")
	}
}

func TestReadSubmissionsFromFile_MissingFile(t *testing.T) {
	if _, err := ReadSubmissionsFromFile("/nonexistent/batch.yaml"); err == nil {
		t.Error("Expected error for missing file")
	}
}
