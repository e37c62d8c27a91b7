package docs

import (
	"encoding/json"
	"testing"

	"github.com/swaggo/swag"
)

func TestDocListsEveryRoute(t *testing.T) {
	raw, err := swag.ReadDoc(SwaggerInfo.InstanceName())
	if err != nil {
		t.Fatalf("ReadDoc: %v", err)
	}
	var doc struct {
		BasePath string                     `json:"basePath"`
		Paths    map[string]json.RawMessage `json:"paths"`
	}
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		t.Fatalf("doc is not valid JSON: %v", err)
	}
	if doc.BasePath != "/api" {
		t.Fatalf("basePath = %q", doc.BasePath)
	}
	for _, p := range []string{
		"/upload",
		"/translations",
		"/translations/{id}",
		"/translations/{id}/status",
		"/translations/{id}/audio",
		"/translations/{id}/download",
		"/translations/{id}/transcript",
		"/translations/{id}/archive",
		"/archive/cleanup",
	} {
		if _, ok := doc.Paths[p]; !ok {
			t.Errorf("path %s missing from swagger doc", p)
		}
	}
}
