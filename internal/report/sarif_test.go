package report

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sandworm/sandworm/internal/types"
)

func TestWriteSARIF_Results(t *testing.T) {
	findings := []types.Finding{{Path: "a/b.js", Line: 3, Column: 5, Whitespace: 64, Fingerprint: "00000000deadbeef"}}
	var buf bytes.Buffer
	if err := WriteSARIF(&buf, findings, "0.1.0", PrintOptions{MinWhitespace: 50}); err != nil {
		t.Fatalf("WriteSARIF: %v", err)
	}
	var doc struct {
		Version string `json:"version"`
		Runs    []struct {
			Tool struct {
				Driver struct {
					Name  string `json:"name"`
					Rules []struct {
						ID string `json:"id"`
					} `json:"rules"`
				} `json:"driver"`
			} `json:"tool"`
			Results []struct {
				RuleID    string `json:"ruleId"`
				Locations []struct {
					PhysicalLocation struct {
						Region struct {
							StartLine   int `json:"startLine"`
							StartColumn int `json:"startColumn"`
						} `json:"region"`
					} `json:"physicalLocation"`
				} `json:"locations"`
				PartialFingerprints map[string]string `json:"partialFingerprints"`
			} `json:"results"`
		} `json:"runs"`
	}
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("unmarshal: %v; body=%s", err, buf.String())
	}
	if doc.Version != "2.1.0" || len(doc.Runs) != 1 {
		t.Fatalf("unexpected document: %s", buf.String())
	}
	run := doc.Runs[0]
	if run.Tool.Driver.Name != "sandworm" || len(run.Tool.Driver.Rules) != 1 || run.Tool.Driver.Rules[0].ID != "whitespace_run" {
		t.Fatalf("unexpected driver: %+v", run.Tool.Driver)
	}
	if len(run.Results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(run.Results))
	}
	r := run.Results[0]
	if r.Locations[0].PhysicalLocation.Region.StartLine != 3 || r.Locations[0].PhysicalLocation.Region.StartColumn != 5 {
		t.Fatalf("unexpected region: %+v", r.Locations[0])
	}
	if r.PartialFingerprints["sandworm/v1"] != "00000000deadbeef" {
		t.Fatalf("expected fingerprint, got %v", r.PartialFingerprints)
	}
}

func TestWriteSARIF_NoFindingsHasEmptyResults(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteSARIF(&buf, nil, "0.1.0", PrintOptions{MinWhitespace: 50}); err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(buf.Bytes(), []byte(`"results": []`)) {
		t.Fatalf("expected empty results array: %s", buf.String())
	}
}
