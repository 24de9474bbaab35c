package docs

import (
	"encoding/json"
	"testing"

	"github.com/swaggo/swag"
)

func TestRegisteredDocIsValidJSON(t *testing.T) {
	raw, err := swag.ReadDoc(SwaggerInfo.InstanceName())
	if err != nil {
		t.Fatalf("read doc: %v", err)
	}

	var doc struct {
		Swagger  string                    `json:"swagger"`
		BasePath string                    `json:"basePath"`
		Info     map[string]any            `json:"info"`
		Paths    map[string]map[string]any `json:"paths"`
		Defs     map[string]any            `json:"definitions"`
	}
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		t.Fatalf("doc is not valid JSON: %v", err)
	}
	if doc.Swagger != "2.0" || doc.BasePath != "/" || doc.Info["title"] != "Polls API" {
		t.Fatalf("unexpected header: swagger=%q basePath=%q info=%v", doc.Swagger, doc.BasePath, doc.Info)
	}

	routes := map[string][]string{
		"/api/polls":                  {"get"},
		"/api/polls/create":           {"post"},
		"/api/polls/{pollId}":         {"get", "delete"},
		"/api/polls/{pollId}/close":   {"put"},
		"/api/polls/{pollId}/results": {"get"},
		"/api/polls/{pollId}/vote":    {"post"},
	}
	for path, methods := range routes {
		ops, ok := doc.Paths[path]
		if !ok {
			t.Fatalf("missing path %s", path)
		}
		for _, m := range methods {
			if _, ok := ops[m]; !ok {
				t.Fatalf("missing %s %s", m, path)
			}
		}
	}
	if len(doc.Paths) != len(routes) {
		t.Fatalf("expected %d paths, got %d", len(routes), len(doc.Paths))
	}

	for _, name := range []string{"api.voteRequest", "api.pollResultsResponse", "poll.OptionResult", "poll.Status"} {
		if _, ok := doc.Defs[name]; !ok {
			t.Fatalf("missing definition %s", name)
		}
	}
}
