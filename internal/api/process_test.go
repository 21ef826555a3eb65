package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/seantiz/loanops/internal/model"
)

func TestProcessSync(t *testing.T) {
	srv, outDir := newTestServer(t)
	ts := httptest.NewServer(srv.Router())
	defer ts.Close()

	body := `{"loan_id":"LOAN001","verbose":false}`
	resp, err := http.Post(ts.URL+"/api/v1/process", "application/json", bytes.NewBufferString(body))
	if err != nil {
		t.Fatalf("POST /api/v1/process: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var result model.ProcessResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if result.LoanID != "LOAN001" {
		t.Errorf("loan_id = %q, want %q", result.LoanID, "LOAN001")
	}
	if result.Status != model.StatusCompleted {
		t.Errorf("status = %q, want %q", result.Status, model.StatusCompleted)
	}
	if result.DurationSeconds < 0 {
		t.Errorf("duration_seconds = %f, want >= 0", result.DurationSeconds)
	}
	if result.ResultSummary == "" {
		t.Error("result_summary is empty")
	}

	// The report artifact landed in the output directory.
	if _, err := os.Stat(result.OutputFile); err != nil {
		t.Errorf("report artifact missing: %v", err)
	}

	entries, err := os.ReadDir(outDir)
	if err != nil {
		t.Fatalf("read output dir: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("artifact count = %d, want 1", len(entries))
	}
}

func TestProcessSyncUnknownLoan(t *testing.T) {
	srv, outDir := newTestServer(t)
	ts := httptest.NewServer(srv.Router())
	defer ts.Close()

	body := `{"loan_id":"NONEXISTENT"}`
	resp, err := http.Post(ts.URL+"/api/v1/process", "application/json", bytes.NewBufferString(body))
	if err != nil {
		t.Fatalf("POST /api/v1/process: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}

	// No job record and no artifact were created.
	if n := srv.jobs.Len(); n != 0 {
		t.Errorf("job count = %d, want 0", n)
	}
	entries, err := os.ReadDir(outDir)
	if err != nil {
		t.Fatalf("read output dir: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("artifact count = %d, want 0", len(entries))
	}
}

func TestProcessSyncWorkflowFailure(t *testing.T) {
	srv, _ := newTestServer(t)
	ts := httptest.NewServer(srv.Router())
	defer ts.Close()

	// BADLOAN has a negative amount, which the workflow rejects.
	body := `{"loan_id":"BADLOAN"}`
	resp, err := http.Post(ts.URL+"/api/v1/process", "application/json", bytes.NewBufferString(body))
	if err != nil {
		t.Fatalf("POST /api/v1/process: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", resp.StatusCode)
	}

	var errResp map[string]string
	json.NewDecoder(resp.Body).Decode(&errResp)
	if errResp["error"] == "" {
		t.Error("expected error message in response")
	}
}

func TestProcessSyncMissingLoanID(t *testing.T) {
	srv, _ := newTestServer(t)
	ts := httptest.NewServer(srv.Router())
	defer ts.Close()

	resp, err := http.Post(ts.URL+"/api/v1/process", "application/json", bytes.NewBufferString(`{"verbose":true}`))
	if err != nil {
		t.Fatalf("POST /api/v1/process: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

func TestProcessSyncInvalidJSON(t *testing.T) {
	srv, _ := newTestServer(t)
	ts := httptest.NewServer(srv.Router())
	defer ts.Close()

	resp, err := http.Post(ts.URL+"/api/v1/process", "application/json", bytes.NewBufferString("not json"))
	if err != nil {
		t.Fatalf("POST /api/v1/process: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}
