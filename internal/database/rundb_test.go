package database

import (
	"context"
	"reflect"
	"testing"
	"time"

	"github.com/nao1215/credscan/internal/model"
)

func openTestDB(t *testing.T) *RunDB {
	t.Helper()

	rdb, err := Open(t.TempDir(), DefaultOptions())
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() {
		if err := rdb.Close(); err != nil {
			t.Errorf("failed to close database: %v", err)
		}
	})
	return rdb
}

func testReport(path string) *model.ScanReport {
	r := model.NewScanReport(path, []string{"example", "corp"})
	r.OutputFile = "out.json"
	r.Format = "json"
	r.Stats = model.ScanStats{
		FilesScanned: 2,
		LinesScanned: 50,
		MatchedLines: 3,
		LineErrors:   1,
	}
	r.Records = []model.Credential{
		{URL: "https://example.com", Username: "alice", Password: "pw"},
	}
	return r
}

// TestOpenMissingDatabase tests that mode=rw refuses to create a new file.
func TestOpenMissingDatabase(t *testing.T) {
	t.Parallel()

	opts := DefaultOptions()
	opts.CreateIfNotExists = false

	if _, err := Open(t.TempDir(), opts); err == nil {
		t.Error("expected error opening a nonexistent database without create")
	}
}

// TestSaveAndGetRun tests the save and retrieve round trip.
func TestSaveAndGetRun(t *testing.T) {
	t.Parallel()

	rdb := openTestDB(t)
	ctx := context.Background()

	report := testReport("/data/dumps")
	id, err := rdb.SaveRun(ctx, report)
	if err != nil {
		t.Fatalf("failed to save run: %v", err)
	}
	if id == 0 {
		t.Error("expected a non-zero run ID")
	}

	got, err := rdb.GetRunByID(ctx, id)
	if err != nil {
		t.Fatalf("failed to get run: %v", err)
	}
	if got == nil {
		t.Fatal("expected a stored report, got nil")
	}

	if got.Path != report.Path {
		t.Errorf("expected path %q, got %q", report.Path, got.Path)
	}
	if !reflect.DeepEqual(got.Keywords, report.Keywords) {
		t.Errorf("expected keywords %v, got %v", report.Keywords, got.Keywords)
	}
	if !reflect.DeepEqual(got.Records, report.Records) {
		t.Errorf("expected records %v, got %v", report.Records, got.Records)
	}
	if got.Stats != report.Stats {
		t.Errorf("expected stats %+v, got %+v", report.Stats, got.Stats)
	}
}

// TestGetRunByIDNotFound tests the nil-without-error contract.
func TestGetRunByIDNotFound(t *testing.T) {
	t.Parallel()

	rdb := openTestDB(t)

	got, err := rdb.GetRunByID(context.Background(), 12345)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got != nil {
		t.Errorf("expected nil report for missing ID, got %+v", got)
	}
}

// TestListRuns tests metadata listing, newest first.
func TestListRuns(t *testing.T) {
	t.Parallel()

	rdb := openTestDB(t)
	ctx := context.Background()

	first, err := rdb.SaveRun(ctx, testReport("/data/first"))
	if err != nil {
		t.Fatal(err)
	}
	second, err := rdb.SaveRun(ctx, testReport("/data/second"))
	if err != nil {
		t.Fatal(err)
	}

	runs, err := rdb.ListRuns(ctx)
	if err != nil {
		t.Fatalf("failed to list runs: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(runs))
	}

	// Newest first: the second run leads.
	if runs[0].ID != second || runs[1].ID != first {
		t.Errorf("expected order [%d %d], got [%d %d]", second, first, runs[0].ID, runs[1].ID)
	}
	if runs[0].Path != "/data/second" {
		t.Errorf("expected path /data/second, got %q", runs[0].Path)
	}
	if !reflect.DeepEqual(runs[0].Keywords, []string{"example", "corp"}) {
		t.Errorf("expected keywords restored, got %v", runs[0].Keywords)
	}
	if runs[0].FilesScanned != 2 || runs[0].Records != 1 || runs[0].LineErrors != 1 {
		t.Errorf("unexpected counters: %+v", runs[0])
	}
	if runs[0].Timestamp.IsZero() {
		t.Error("expected a parsed timestamp")
	}
}

// TestGetLatestRun tests per-path latest lookup.
func TestGetLatestRun(t *testing.T) {
	t.Parallel()

	rdb := openTestDB(t)
	ctx := context.Background()

	older := testReport("/data/dumps")
	older.Stats.FilesScanned = 1
	if _, err := rdb.SaveRun(ctx, older); err != nil {
		t.Fatal(err)
	}

	newer := testReport("/data/dumps")
	newer.Stats.FilesScanned = 9
	if _, err := rdb.SaveRun(ctx, newer); err != nil {
		t.Fatal(err)
	}

	if _, err := rdb.SaveRun(ctx, testReport("/data/other")); err != nil {
		t.Fatal(err)
	}

	got, err := rdb.GetLatestRun(ctx, "/data/dumps")
	if err != nil {
		t.Fatalf("failed to get latest run: %v", err)
	}
	if got == nil {
		t.Fatal("expected a report, got nil")
	}
	if got.Stats.FilesScanned != 9 {
		t.Errorf("expected the newer run, got FilesScanned %d", got.Stats.FilesScanned)
	}

	missing, err := rdb.GetLatestRun(ctx, "/data/never-scanned")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if missing != nil {
		t.Errorf("expected nil for unknown path, got %+v", missing)
	}
}

// TestParseTimestamp tests the SQLite timestamp format fallbacks.
func TestParseTimestamp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		zero  bool
	}{
		{name: "sqlite default", input: "2026-08-30 12:34:56"},
		{name: "iso8601 with z", input: "2026-08-30T12:34:56Z"},
		{name: "rfc3339", input: "2026-08-30T12:34:56+09:00"},
		{name: "garbage", input: "not a timestamp", zero: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := parseTimestamp(tt.input)
			if got.IsZero() != tt.zero {
				t.Errorf("parseTimestamp(%q) = %v, zero = %v", tt.input, got, tt.zero)
			}
			if !tt.zero && got.Year() != 2026 {
				t.Errorf("parseTimestamp(%q) = %v, expected year 2026", tt.input, got)
			}
		})
	}
}

// TestSaveRunRoundTripDate tests that DateScanned survives serialization.
func TestSaveRunRoundTripDate(t *testing.T) {
	t.Parallel()

	rdb := openTestDB(t)
	ctx := context.Background()

	report := testReport("/data/dumps")
	report.DateScanned = time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)

	id, err := rdb.SaveRun(ctx, report)
	if err != nil {
		t.Fatal(err)
	}

	got, err := rdb.GetRunByID(ctx, id)
	if err != nil {
		t.Fatal(err)
	}
	if !got.DateScanned.Equal(report.DateScanned) {
		t.Errorf("expected DateScanned %v, got %v", report.DateScanned, got.DateScanned)
	}
}
