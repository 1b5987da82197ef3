package model

import (
	"bytes"
	"encoding/json"

	"github.com/m-mizutani/goerr/v2"
)

const (
	// RepoKey is the field injected into every exported alert to record its repository.
	RepoKey = "_repo"

	// Unknown replaces a grouping key that is missing, null or empty.
	Unknown = "unknown"
)

// Alert is one code scanning alert object exactly as the GitHub API returned
// it, plus RepoKey. Fields the pipeline does not read are kept untouched so
// that the snapshot stays a faithful copy of the upstream data.
type Alert struct {
	raw map[string]any
}

// NewAlert decodes a single alert object. Numbers are kept as json.Number so
// that re-encoding does not change them.
func NewAlert(data []byte) (*Alert, error) {
	var alert Alert
	if err := alert.UnmarshalJSON(data); err != nil {
		return nil, err
	}
	return &alert, nil
}

func (x *Alert) UnmarshalJSON(data []byte) error {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()

	var raw map[string]any
	if err := decoder.Decode(&raw); err != nil {
		return goerr.Wrap(err, "failed to decode alert")
	}
	if raw == nil {
		return goerr.New("alert is not a JSON object")
	}

	x.raw = raw
	return nil
}

func (x Alert) MarshalJSON() ([]byte, error) {
	if x.raw == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(x.raw)
}

// SetRepo records the repository full name the alert was fetched from.
func (x *Alert) SetRepo(fullName string) {
	if x.raw == nil {
		x.raw = map[string]any{}
	}
	x.raw[RepoKey] = fullName
}

func (x *Alert) Repo() string {
	return orUnknown(x.lookup(RepoKey), x.lookup("repo"))
}

// Severity returns rule.severity. A flat "severity" field is accepted for
// records produced by older exporters.
func (x *Alert) Severity() string {
	return orUnknown(x.lookup("rule", "severity"), x.lookup("severity"))
}

func (x *Alert) Tool() string {
	return orUnknown(x.lookup("tool", "name"), x.lookup("tool"))
}

func (x *Alert) RuleID() string    { return x.lookup("rule", "id") }
func (x *Alert) State() string     { return x.lookup("state") }
func (x *Alert) HTMLURL() string   { return x.lookup("html_url") }
func (x *Alert) CreatedAt() string { return x.lookup("created_at") }

func (x *Alert) Number() int64 {
	n, ok := x.value("number").(json.Number)
	if !ok {
		return 0
	}
	v, err := n.Int64()
	if err != nil {
		return 0
	}
	return v
}

func (x *Alert) value(keys ...string) any {
	var cur any = x.raw
	for _, key := range keys {
		obj, ok := cur.(map[string]any)
		if !ok {
			return nil
		}
		cur = obj[key]
	}
	return cur
}

// lookup returns the string found at the nested keys, or "" if the path is
// absent or does not end in a string or number.
func (x *Alert) lookup(keys ...string) string {
	switch v := x.value(keys...).(type) {
	case string:
		return v
	case json.Number:
		return v.String()
	default:
		return ""
	}
}

func orUnknown(candidates ...string) string {
	for _, c := range candidates {
		if c != "" {
			return c
		}
	}
	return Unknown
}
