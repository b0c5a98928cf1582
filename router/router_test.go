// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/rankvote/models"
	"github.com/danielhkuo/rankvote/testutil"
)

func TestRouterRoutes(t *testing.T) {
	st := testutil.SetupTestStore(t)
	mux := NewRouter(st)

	tests := []struct {
		name       string
		method     string
		path       string
		body       []byte
		wantStatus int
	}{
		{"health check", "GET", "/health", nil, http.StatusOK},
		{"root", "GET", "/", nil, http.StatusOK},
		{"list candidates", "GET", "/candidates", nil, http.StatusOK},
		{"results", "GET", "/results", nil, http.StatusOK},
		{"results export", "GET", "/results/export", nil, http.StatusOK},
		{"votes detail", "GET", "/votes/detail", nil, http.StatusOK},
		{"votes detail export", "GET", "/votes/detail/export", nil, http.StatusOK},
		{"wrong method on candidates", "DELETE", "/candidates", nil, http.StatusMethodNotAllowed},
		{"wrong method on results", "PATCH", "/results", nil, http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, bytes.NewReader(tt.body))
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("Expected %d, got %d - %s", tt.wantStatus, w.Code, w.Body.String())
			}
		})
	}
}

// TestRouterPathValues exercises the {id} routes through the mux so path
// parameter extraction is covered end to end.
func TestRouterPathValues(t *testing.T) {
	st := testutil.SetupTestStore(t)
	mux := NewRouter(st)
	c := testutil.SeedCandidate(t, st, "候補A", true)

	req := httptest.NewRequest("POST", "/candidates/"+c.ID+"/toggle", nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Toggle via router failed: %d - %s", w.Code, w.Body.String())
	}

	body, _ := json.Marshal(models.UpdateCandidateRequest{Label: "候補B", Active: true})
	req = httptest.NewRequest("PUT", "/candidates/"+c.ID, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Update via router failed: %d - %s", w.Code, w.Body.String())
	}

	req = httptest.NewRequest("DELETE", "/candidates/"+c.ID, nil)
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Delete via router failed: %d - %s", w.Code, w.Body.String())
	}
}
