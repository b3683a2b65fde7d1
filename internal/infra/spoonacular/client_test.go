package spoonacular

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"plateful/config"
	"plateful/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) service.RecipeSearcher {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{
		Spoonacular: &config.SpoonacularConfig{
			BaseURL: server.URL,
			APIKey:  "test-key",
		},
	}

	searcher, err := NewClient(cfg, slog.New(slog.NewTextHandler(testWriter{t}, nil)))
	require.NoError(t, err)

	return searcher
}

type testWriter struct{ t *testing.T }

func (w testWriter) Write(p []byte) (int, error) {
	w.t.Log(string(p))

	return len(p), nil
}

func TestNewClient_RequiresAPIKey(t *testing.T) {
	_, err := NewClient(&config.Config{}, slog.Default())
	assert.Error(t, err)
}

func TestSearchByIngredients_PassesQueryAndBody(t *testing.T) {
	var gotQuery map[string]string
	searcher := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/recipes/findByIngredients", r.URL.Path)
		gotQuery = map[string]string{
			"ingredients": r.URL.Query().Get("ingredients"),
			"number":      r.URL.Query().Get("number"),
			"offset":      r.URL.Query().Get("offset"),
			"apiKey":      r.URL.Query().Get("apiKey"),
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":716429,"title":"Pasta"}]`))
	})

	payload, err := searcher.SearchByIngredients(context.Background(), "tomato,basil", 3)
	require.NoError(t, err)

	assert.Equal(t, "tomato,basil", gotQuery["ingredients"])
	assert.Equal(t, "10", gotQuery["number"])
	assert.Equal(t, "20", gotQuery["offset"])
	assert.Equal(t, "test-key", gotQuery["apiKey"])
	assert.JSONEq(t, `[{"id":716429,"title":"Pasta"}]`, string(payload))
}

func TestSearchByIngredients_FirstPageHasZeroOffset(t *testing.T) {
	var gotOffset string
	searcher := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotOffset = r.URL.Query().Get("offset")
		_, _ = w.Write([]byte(`[]`))
	})

	_, err := searcher.SearchByIngredients(context.Background(), "egg", 0)
	require.NoError(t, err)
	assert.Equal(t, "0", gotOffset)
}

func TestGetRecipe_FetchesInformation(t *testing.T) {
	searcher := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/recipes/716429/information", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("apiKey"))
		_, _ = w.Write([]byte(`{"id":716429,"title":"Pasta","servings":2}`))
	})

	payload, err := searcher.GetRecipe(context.Background(), 716429)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(payload, &decoded))
	assert.Equal(t, "Pasta", decoded["title"])
}

func TestSearchByIngredients_UpstreamErrorStatus(t *testing.T) {
	searcher := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusPaymentRequired)
	})

	_, err := searcher.SearchByIngredients(context.Background(), "tofu", 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrUpstreamFailed)
}

func TestGetRecipe_UpstreamUnreachable(t *testing.T) {
	cfg := &config.Config{
		Spoonacular: &config.SpoonacularConfig{
			BaseURL: "http://127.0.0.1:1",
			APIKey:  "test-key",
		},
	}
	searcher, err := NewClient(cfg, slog.New(slog.NewTextHandler(testWriter{t}, nil)))
	require.NoError(t, err)

	_, err = searcher.GetRecipe(context.Background(), 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrUpstreamFailed)
}
