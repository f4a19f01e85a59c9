package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/piyushtamaskar21/collab-connect/ai/mock"
	"github.com/piyushtamaskar21/collab-connect/core"
	"github.com/piyushtamaskar21/collab-connect/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()

	provider := mock.NewMockProvider().(*mock.MockProvider)
	embedder := provider.GetMockEmbedder()
	embedder.EmbedTextFunc = func(ctx context.Context, text string) ([]float32, error) {
		return vectorFor(text), nil
	}
	embedder.EmbedTextsFunc = func(ctx context.Context, texts []string) ([][]float32, error) {
		out := make([][]float32, len(texts))
		for i, text := range texts {
			out[i] = vectorFor(text)
		}
		return out, nil
	}

	eng, err := engine.New(provider)
	require.NoError(t, err)
	t.Cleanup(func() { eng.Close() })

	employees := []*core.Employee{
		{
			Id:      "emp001",
			Name:    "Jane Smith",
			Email:   "jane.smith.1@company.com",
			RawText: "Jane Smith builds python kafka pipelines.",
			Profile: core.Profile{
				Role:       "Data Engineer",
				Department: "Data",
				Seniority:  "Senior",
				Skills:     []string{"Python", "Kafka"},
			},
		},
		{
			Id:      "emp002",
			Name:    "John Doe",
			Email:   "john.doe.2@company.com",
			RawText: "John Doe leads product design.",
			Profile: core.Profile{
				Role:       "Designer",
				Department: "Design",
				Seniority:  "Mid-level",
				Skills:     []string{"Figma"},
			},
		},
	}
	require.NoError(t, eng.LoadEmployees(context.Background(), employees))

	srv, err := New(eng, ":0", WithoutGeneration())
	require.NoError(t, err)
	return srv
}

func vectorFor(text string) []float32 {
	if strings.Contains(strings.ToLower(text), "python") {
		return []float32{1, 0}
	}
	return []float32{0, 1}
}

func do(t *testing.T, srv *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	return rec
}

func TestHandleHealth(t *testing.T) {
	srv := newTestServer(t)

	rec := do(t, srv, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestHandleSearch(t *testing.T) {
	srv := newTestServer(t)

	t.Run("keyword search", func(t *testing.T) {
		rec := do(t, srv, http.MethodPost, "/api/search", `{"query":"python kafka","topK":5}`)
		require.Equal(t, http.StatusOK, rec.Code)

		var body struct {
			Matches []struct {
				Id      string   `json:"id"`
				Name    string   `json:"name"`
				Score   float64  `json:"score"`
				Reasons []string `json:"reasons"`
			} `json:"matches"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		require.NotEmpty(t, body.Matches)
		assert.Equal(t, "emp001", body.Matches[0].Id)
		assert.NotEmpty(t, body.Matches[0].Reasons)
	})

	t.Run("name search", func(t *testing.T) {
		rec := do(t, srv, http.MethodPost, "/api/search", `{"query":"John Doe"}`)
		require.Equal(t, http.StatusOK, rec.Code)

		var body struct {
			Matches []struct {
				Id    string  `json:"id"`
				Score float64 `json:"score"`
			} `json:"matches"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		require.Len(t, body.Matches, 1)
		assert.Equal(t, "emp002", body.Matches[0].Id)
		assert.Equal(t, 1.0, body.Matches[0].Score)
	})

	t.Run("missing query", func(t *testing.T) {
		rec := do(t, srv, http.MethodPost, "/api/search", `{"query":"  "}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"detail":"Query is required"}`, rec.Body.String())
	})

	t.Run("malformed body", func(t *testing.T) {
		rec := do(t, srv, http.MethodPost, "/api/search", `{`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandleRecommend(t *testing.T) {
	srv := newTestServer(t)

	t.Run("matches with detail payload", func(t *testing.T) {
		resume := `Experienced python engineer who has built streaming kafka platforms ` +
			`and large scale data ingestion systems across several companies.`
		rec := do(t, srv, http.MethodPost, "/api/recommend", `{"resumeText":"`+resume+`","topK":3}`)
		require.Equal(t, http.StatusOK, rec.Code)

		var body struct {
			Recommendations []struct {
				Id          string  `json:"id"`
				Name        string  `json:"name"`
				Title       string  `json:"title"`
				MatchScore  float64 `json:"matchScore"`
				Summary     string  `json:"summary"`
				AvatarUrl   string  `json:"avatarUrl"`
				ResumeMatch struct {
					SharedSkills  []string `json:"sharedSkills"`
					ReasonSummary string   `json:"reasonSummary"`
				} `json:"resumeMatch"`
				CollaborationSuggestions []string `json:"collaborationSuggestions"`
			} `json:"recommendations"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		require.NotEmpty(t, body.Recommendations)

		first := body.Recommendations[0]
		assert.Equal(t, "emp001", first.Id)
		assert.Equal(t, "Data Engineer", first.Title)
		assert.Greater(t, first.MatchScore, 0.0)
		assert.NotEmpty(t, first.Summary)
		assert.Contains(t, first.AvatarUrl, "ui-avatars.com")
		assert.NotEmpty(t, first.CollaborationSuggestions)
		assert.Equal(t, first.ResumeMatch.ReasonSummary, first.Summary)
	})

	t.Run("missing resume text", func(t *testing.T) {
		rec := do(t, srv, http.MethodPost, "/api/recommend", `{"resumeText":""}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"detail":"Resume text is required"}`, rec.Body.String())
	})

	t.Run("malformed body", func(t *testing.T) {
		rec := do(t, srv, http.MethodPost, "/api/recommend", `not json`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandleSimilar(t *testing.T) {
	srv := newTestServer(t)

	t.Run("known id", func(t *testing.T) {
		rec := do(t, srv, http.MethodGet, "/api/similar/emp001", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var body struct {
			Matches []struct {
				Id string `json:"id"`
			} `json:"matches"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		for _, m := range body.Matches {
			assert.NotEqual(t, "emp001", m.Id)
		}
	})

	t.Run("unknown id yields empty list", func(t *testing.T) {
		rec := do(t, srv, http.MethodGet, "/api/similar/emp999", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"matches":[]}`, rec.Body.String())
	})
}

func TestCORS(t *testing.T) {
	srv := newTestServer(t)

	t.Run("preflight", func(t *testing.T) {
		rec := do(t, srv, http.MethodOptions, "/api/search", "")
		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("headers on normal responses", func(t *testing.T) {
		rec := do(t, srv, http.MethodGet, "/health", "")
		assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	})
}
