package impl

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	deliverycontext "plateful/internal/delivery/context"
	"plateful/internal/domain/entity"
	domainerrors "plateful/internal/domain/errors"
	"plateful/internal/domain/repository"
	"plateful/internal/domain/service"
	"plateful/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// recipeService implements the RecipeUsecase interface. Saved recipes live
// in the relational store; search and details are passed through to the
// upstream API, with search answers cached read-through.
type recipeService struct {
	recipeRepo  repository.RecipeRepository
	searcher    service.RecipeSearcher
	searchCache service.SearchCache
	logger      *slog.Logger
}

// RecipeServiceParams holds dependencies for RecipeService, injected by Fx.
type RecipeServiceParams struct {
	fx.In

	RecipeRepo  repository.RecipeRepository
	Searcher    service.RecipeSearcher
	SearchCache service.SearchCache
	Logger      *slog.Logger
}

// NewRecipeService is the constructor for recipeService.
func NewRecipeService(params RecipeServiceParams) usecase.RecipeUsecase {
	return &recipeService{
		recipeRepo:  params.RecipeRepo,
		searcher:    params.Searcher,
		searchCache: params.SearchCache,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *recipeService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SaveRecipe stamps the caller as owner and persists the recipe.
func (srv *recipeService) SaveRecipe(ctx context.Context, userID uuid.UUID, input usecase.SaveRecipeInput) (*entity.Recipe, error) {
	recipe := &entity.Recipe{
		UserID:      userID,
		SourceID:    input.SourceID,
		Title:       input.Title,
		ImageURL:    input.ImageURL,
		Ingredients: input.Ingredients,
	}

	if err := srv.recipeRepo.Create(ctx, recipe); err != nil {
		srv.log(ctx).Error("Failed to save recipe", "userID", userID, "error", err)

		return nil, errors.Wrap(err, "failed to save recipe")
	}
	srv.log(ctx).Debug("Recipe saved", "userID", userID, "recipeID", recipe.ID)

	return recipe, nil
}

// ListRecipes returns every recipe the caller has saved.
func (srv *recipeService) ListRecipes(ctx context.Context, userID uuid.UUID) ([]entity.Recipe, error) {
	recipes, err := srv.recipeRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list recipes")
	}

	return recipes, nil
}

// DeleteRecipe removes the caller's recipe. A recipe owned by someone else
// reports the same not-found error as one that never existed.
func (srv *recipeService) DeleteRecipe(ctx context.Context, userID, recipeID uuid.UUID) error {
	err := srv.recipeRepo.DeleteByIDAndUser(ctx, recipeID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return domainerrors.ErrNotFound.WrapMessage("recipe deletion failed")
		}

		return errors.Wrap(err, "failed to delete recipe")
	}
	srv.log(ctx).Debug("Recipe deleted", "userID", userID, "recipeID", recipeID)

	return nil
}

// SearchByIngredients proxies the upstream ingredient search, serving
// repeat queries from the cache when one is configured.
func (srv *recipeService) SearchByIngredients(ctx context.Context, ingredients string, page int) (json.RawMessage, error) {
	if page < 1 {
		page = 1
	}
	cacheKey := searchCacheKey(ingredients, page)

	if payload, ok := srv.searchCache.Get(ctx, cacheKey); ok {
		srv.log(ctx).Debug("Search served from cache", "ingredients", ingredients, "page", page)

		return payload, nil
	}

	payload, err := srv.searcher.SearchByIngredients(ctx, ingredients, page)
	if err != nil {
		if errors.Is(err, service.ErrUpstreamFailed) {
			return nil, domainerrors.ErrUpstreamUnavailable.WrapMessage("recipe search failed")
		}

		return nil, errors.Wrap(err, "failed to search recipes")
	}

	srv.searchCache.Set(ctx, cacheKey, payload)

	return payload, nil
}

// GetRecipeDetails proxies the upstream recipe-information lookup.
func (srv *recipeService) GetRecipeDetails(ctx context.Context, sourceID int64) (json.RawMessage, error) {
	payload, err := srv.searcher.GetRecipe(ctx, sourceID)
	if err != nil {
		if errors.Is(err, service.ErrUpstreamFailed) {
			return nil, domainerrors.ErrUpstreamUnavailable.WrapMessage("recipe details lookup failed")
		}

		return nil, errors.Wrap(err, "failed to fetch recipe details")
	}

	return payload, nil
}

func searchCacheKey(ingredients string, page int) string {
	return fmt.Sprintf("search:%s:%d", ingredients, page)
}
