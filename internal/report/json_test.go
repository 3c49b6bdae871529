package report

import (
	"bytes"
	"encoding/json"
	"reflect"
	"strings"
	"testing"

	"github.com/nao1215/credscan/internal/model"
)

// TestJSONWriterWrite tests JSON export of deduplicated records.
func TestJSONWriterWrite(t *testing.T) {
	t.Parallel()

	report := model.NewScanReport(".", nil)
	report.Records = []model.Credential{
		{URL: "https://example.com/login", Username: "alice", Password: "secret1"},
		{URL: "https://example.org", Username: "bob", Password: "pw2"},
	}

	var buf bytes.Buffer
	n, err := NewJSONWriter(&buf).Write(report)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if n != buf.Len() {
		t.Errorf("expected byte count %d, got %d", buf.Len(), n)
	}

	var got []model.Credential
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if !reflect.DeepEqual(got, report.Records) {
		t.Errorf("expected %v, got %v", report.Records, got)
	}
}

// TestJSONWriterFieldNames tests the exported JSON key names.
func TestJSONWriterFieldNames(t *testing.T) {
	t.Parallel()

	report := model.NewScanReport(".", nil)
	report.Records = []model.Credential{
		{URL: "https://example.com", Username: "alice", Password: "pw"},
	}

	var buf bytes.Buffer
	if _, err := NewJSONWriter(&buf).Write(report); err != nil {
		t.Fatal(err)
	}

	for _, key := range []string{`"url"`, `"username"`, `"password"`} {
		if !strings.Contains(buf.String(), key) {
			t.Errorf("expected key %s in output, got: %s", key, buf.String())
		}
	}
}

// TestJSONWriterEmptyRecords tests that no records exports an empty array.
func TestJSONWriterEmptyRecords(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if _, err := NewJSONWriter(&buf).Write(model.NewScanReport(".", nil)); err != nil {
		t.Fatal(err)
	}

	if got := strings.TrimSpace(buf.String()); got != "[]" {
		t.Errorf("expected empty array, got %q", got)
	}
}

// TestJSONWriterPrettyPrint tests indentation options.
func TestJSONWriterPrettyPrint(t *testing.T) {
	t.Parallel()

	report := model.NewScanReport(".", nil)
	report.Records = []model.Credential{
		{URL: "https://example.com", Username: "alice", Password: "pw"},
	}

	var compact, pretty bytes.Buffer
	if _, err := NewJSONWriter(&compact).Write(report); err != nil {
		t.Fatal(err)
	}
	if _, err := NewJSONWriter(&pretty, WithPrettyPrint()).Write(report); err != nil {
		t.Fatal(err)
	}

	if strings.Contains(compact.String(), "\n  ") {
		t.Error("expected compact output without indentation")
	}
	if !strings.Contains(pretty.String(), "\n  ") {
		t.Error("expected pretty output with indentation")
	}
}
