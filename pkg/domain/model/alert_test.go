package model_test

import (
	"encoding/json"
	"testing"

	"github.com/m-mizutani/alertsnap/pkg/domain/model"
	"github.com/m-mizutani/gt"
)

const sampleAlert = `{
  "number": 42,
  "state": "open",
  "created_at": "2024-03-01T10:00:00Z",
  "html_url": "https://github.com/acme/web/security/code-scanning/42",
  "rule": {"id": "js/sql-injection", "severity": "error", "security_severity_level": "high"},
  "tool": {"name": "CodeQL", "version": "2.16.0"},
  "most_recent_instance": {"ref": "refs/heads/main", "location": {"path": "src/db.js", "start_line": 12}}
}`

func TestAlertAccessors(t *testing.T) {
	alert := gt.R1(model.NewAlert([]byte(sampleAlert))).NoError(t)
	alert.SetRepo("acme/web")

	gt.V(t, alert.Number()).Equal(int64(42))
	gt.V(t, alert.State()).Equal("open")
	gt.V(t, alert.RuleID()).Equal("js/sql-injection")
	gt.V(t, alert.Severity()).Equal("error")
	gt.V(t, alert.Tool()).Equal("CodeQL")
	gt.V(t, alert.Repo()).Equal("acme/web")
	gt.V(t, alert.CreatedAt()).Equal("2024-03-01T10:00:00Z")
	gt.V(t, alert.HTMLURL()).Equal("https://github.com/acme/web/security/code-scanning/42")
}

func TestAlertUnknownDefaults(t *testing.T) {
	testCases := map[string]string{
		"missing rule and tool": `{"number": 1}`,
		"null values":           `{"rule": {"severity": null}, "tool": {"name": null}, "_repo": null}`,
		"empty values":          `{"rule": {"severity": ""}, "tool": {"name": ""}, "_repo": ""}`,
		"unexpected types":      `{"rule": "broken", "tool": ["CodeQL"], "_repo": {"name": "x"}}`,
	}

	for title, data := range testCases {
		t.Run(title, func(t *testing.T) {
			alert := gt.R1(model.NewAlert([]byte(data))).NoError(t)
			gt.V(t, alert.Severity()).Equal(model.Unknown)
			gt.V(t, alert.Tool()).Equal(model.Unknown)
			gt.V(t, alert.Repo()).Equal(model.Unknown)
		})
	}
}

func TestAlertFlatFields(t *testing.T) {
	alert := gt.R1(model.NewAlert([]byte(`{"repo": "a", "severity": "high", "tool": "CodeQL"}`))).NoError(t)
	gt.V(t, alert.Repo()).Equal("a")
	gt.V(t, alert.Severity()).Equal("high")
	gt.V(t, alert.Tool()).Equal("CodeQL")
}

func TestAlertKeepsUpstreamFields(t *testing.T) {
	data := `{"number":12345678901234567890,"rule":{"id":"x","tags":["security"]},"extra":{"nested":[1.50,true,null]}}`
	alert := gt.R1(model.NewAlert([]byte(data))).NoError(t)
	alert.SetRepo("acme/api")

	out := gt.R1(json.Marshal(alert)).NoError(t)

	var got, want map[string]any
	gt.NoError(t, json.Unmarshal(out, &got))
	gt.NoError(t, json.Unmarshal([]byte(data), &want))
	want[model.RepoKey] = "acme/api"
	gt.V(t, got).Equal(want)

	// integers beyond float64 precision survive re-encoding
	gt.S(t, string(out)).Contains("12345678901234567890")
}

func TestAlertRejectsNonObject(t *testing.T) {
	for _, data := range []string{`null`, `[1,2]`, `"text"`, `{broken`} {
		_, err := model.NewAlert([]byte(data))
		gt.Error(t, err)
	}
}
