// Package spoonacular implements the recipe-search collaborator against the
// Spoonacular REST API.
package spoonacular

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"plateful/config"
	"plateful/internal/domain/service"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
)

const (
	defaultBaseURL = "https://api.spoonacular.com"
	defaultTimeout = 15 * time.Second
)

// client is the resty-backed implementation of service.RecipeSearcher.
// The API key is attached as a query parameter on every request and is
// never written to logs.
type client struct {
	http     *resty.Client
	apiKey   string
	pageSize int
	logger   *slog.Logger
}

// NewClient is the constructor for the Spoonacular search client.
func NewClient(cfg *config.Config, logger *slog.Logger) (service.RecipeSearcher, error) {
	sc := cfg.Spoonacular
	if sc == nil || sc.APIKey == "" {
		return nil, errors.New("spoonacular API key is not configured")
	}

	baseURL := sc.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	timeout := sc.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(timeout)

	return &client{
		http:     cli,
		apiKey:   sc.APIKey,
		pageSize: sc.ResultsPerPage(),
		logger:   logger,
	}, nil
}

// SearchByIngredients queries recipes matching a comma-separated ingredient
// list. Pages are 1-based; anything below 1 is treated as the first page.
func (c *client) SearchByIngredients(ctx context.Context, ingredients string, page int) (json.RawMessage, error) {
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * c.pageSize

	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"ingredients": ingredients,
			"number":      strconv.Itoa(c.pageSize),
			"offset":      strconv.Itoa(offset),
			"apiKey":      c.apiKey,
		}).
		Get("/recipes/findByIngredients")
	if err != nil {
		c.logger.Warn("recipe search request failed", slog.String("error", err.Error()))

		return nil, errors.Wrap(service.ErrUpstreamFailed, err.Error())
	}

	return c.passThrough(resp, "findByIngredients")
}

// GetRecipe fetches full details for a single upstream recipe ID.
func (c *client) GetRecipe(ctx context.Context, id int64) (json.RawMessage, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		SetQueryParam("apiKey", c.apiKey).
		Get("/recipes/{id}/information")
	if err != nil {
		c.logger.Warn("recipe details request failed", slog.String("error", err.Error()))

		return nil, errors.Wrap(service.ErrUpstreamFailed, err.Error())
	}

	return c.passThrough(resp, "information")
}

// passThrough hands the upstream body back untouched on success. Non-2xx
// answers are logged with their status but without the response body, which
// may echo request parameters.
func (c *client) passThrough(resp *resty.Response, operation string) (json.RawMessage, error) {
	if resp.StatusCode() < http.StatusOK || resp.StatusCode() >= http.StatusMultipleChoices {
		c.logger.Warn("recipe search upstream returned non-success status",
			slog.String("operation", operation),
			slog.Int("status", resp.StatusCode()),
		)

		return nil, errors.Wrapf(service.ErrUpstreamFailed, "upstream status %d", resp.StatusCode())
	}

	body := resp.Body()
	payload := make(json.RawMessage, len(body))
	copy(payload, body)

	return payload, nil
}
