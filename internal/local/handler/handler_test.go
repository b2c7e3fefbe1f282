package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"beacon/internal/local/service"
	configStore "beacon/internal/local/store/config"
	coverageStore "beacon/internal/local/store/coverage"
	signalStore "beacon/internal/local/store/signal"
	"beacon/pkg/platform/httputil"
)

func newLocalRouter(t *testing.T) http.Handler {
	t.Helper()
	svc, err := service.New(signalStore.NewInMemory(), configStore.NewInMemory(), coverageStore.NewInMemory())
	require.NoError(t, err)

	h := New(svc, slog.New(slog.NewTextHandler(io.Discard, nil)))
	r := chi.NewRouter()
	h.Register(r)
	return r
}

func do(t *testing.T, router http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestScorecardLifecycle(t *testing.T) {
	router := newLocalRouter(t)

	rec := do(t, router, http.MethodGet, "/projects/proj-123/local/scorecard?cached=true", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, router, http.MethodPatch, "/projects/proj-123/local/config", map[string]any{
		"has_physical_location": true,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, router, http.MethodPost, "/projects/proj-123/local/signals", map[string]any{
		"signal_type": "location_presence",
		"label":       "Boulder store",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = do(t, router, http.MethodGet, "/projects/proj-123/local/scorecard", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var sc ScorecardResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&sc))
	require.NotNil(t, sc.Score)
	assert.Equal(t, 31, *sc.Score)
	assert.Equal(t, "weak", *sc.Status)
	assert.Equal(t, 1, sc.SignalCounts["location_presence"])
	assert.Equal(t, 0, sc.SignalCounts["local_trust_signals"])

	rec = do(t, router, http.MethodGet, "/projects/proj-123/local/scorecard?cached=true", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, router, http.MethodDelete, "/projects/proj-123/local/coverage", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(t, router, http.MethodGet, "/projects/proj-123/local/scorecard?cached=true", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestNotScoredProjectOmitsScore(t *testing.T) {
	router := newLocalRouter(t)

	rec := do(t, router, http.MethodGet, "/projects/proj-new/local/scorecard", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `"applicability_status":"unknown"`)
	assert.NotContains(t, body, `"score"`)
	assert.NotContains(t, body, `"status"`)
}

func TestGapsAndIssues(t *testing.T) {
	router := newLocalRouter(t)
	do(t, router, http.MethodPatch, "/projects/proj-9/local/config", map[string]any{"enabled": true})

	rec := do(t, router, http.MethodGet, "/projects/proj-9/local/issues?readonly=true", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var readOnly IssuesResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&readOnly))
	assert.True(t, readOnly.ReadOnly)
	assert.Empty(t, readOnly.Issues)

	rec = do(t, router, http.MethodGet, "/projects/proj-9/local/gaps", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var gaps GapsResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&gaps))
	assert.Len(t, gaps.Gaps, 4)

	rec = do(t, router, http.MethodGet, "/projects/proj-9/local/issues?product_id=sku-1&focus_key=city:boulder&draft_type=city_section", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var issues IssuesResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&issues))
	require.Len(t, issues.Issues, 4)
	assert.Equal(t,
		"local-fix:proj-9:sku-1:missing_location_content:location_presence:city:boulder:city_section",
		issues.Issues[0].FixWorkKey)
}

func TestBadRequests(t *testing.T) {
	router := newLocalRouter(t)

	tests := []struct {
		name   string
		method string
		path   string
		body   string
		want   int
		code   string
	}{
		{"unknown signal type", http.MethodPost, "/projects/p/local/signals", `{"signal_type":"store_hours","label":"x"}`, http.StatusBadRequest, "validation_error"},
		{"unknown field", http.MethodPost, "/projects/p/local/signals", `{"signal_type":"location_presence","label":"x","extra":1}`, http.StatusBadRequest, "bad_request"},
		{"malformed config", http.MethodPatch, "/projects/p/local/config", `{"enabled":"yes"}`, http.StatusBadRequest, "bad_request"},
		{"bad cached flag", http.MethodGet, "/projects/p/local/scorecard?cached=maybe", "", http.StatusBadRequest, "bad_request"},
		{"blank project", http.MethodGet, "/projects/%20/local/gaps", "", http.StatusBadRequest, "invalid_input"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.want, rec.Code)
			var resp httputil.ErrorResponse
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
			assert.Equal(t, tt.code, resp.Error)
		})
	}
}
