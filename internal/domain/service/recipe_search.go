package service

import (
	"context"
	"encoding/json"
	"errors"
)

// ErrUpstreamFailed is returned by RecipeSearcher implementations when the
// third-party API cannot be reached or answers with a non-success status.
var ErrUpstreamFailed = errors.New("recipe search upstream failed")

// RecipeSearcher is the read-only third-party recipe-search collaborator.
// Responses are passed through to the caller largely unmodified, so both
// methods return raw JSON rather than decoded structures.
type RecipeSearcher interface {
	// SearchByIngredients queries recipes matching a comma-separated
	// ingredient list. Pagination: offset = (page-1) * pageSize.
	SearchByIngredients(ctx context.Context, ingredients string, page int) (json.RawMessage, error)

	// GetRecipe fetches full details for a single upstream recipe ID.
	GetRecipe(ctx context.Context, id int64) (json.RawMessage, error)
}

// SearchCache is a read-through cache for upstream search responses.
// Implementations must treat cache failures as misses so a broken cache can
// never take the search path down with it.
type SearchCache interface {
	// Get returns the cached payload for the key, or ok=false on a miss.
	Get(ctx context.Context, key string) (payload json.RawMessage, ok bool)

	// Set stores the payload under the key for the cache's configured TTL.
	Set(ctx context.Context, key string, payload json.RawMessage)
}
