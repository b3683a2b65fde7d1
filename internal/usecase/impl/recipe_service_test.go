package impl

import (
	"context"
	"encoding/json"
	"testing"

	"plateful/internal/domain/entity"
	domainerrors "plateful/internal/domain/errors"
	"plateful/internal/domain/repository"
	"plateful/internal/domain/service"
	mockRepo "plateful/internal/mocks/repository"
	mockSvc "plateful/internal/mocks/service"
	"plateful/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// recipeServiceFixtures holds all test dependencies for recipe service tests.
type recipeServiceFixtures struct {
	service     usecase.RecipeUsecase
	recipeRepo  *mockRepo.MockRecipeRepository
	searcher    *mockSvc.MockRecipeSearcher
	searchCache *mockSvc.MockSearchCache
}

func createTestRecipeService(t *testing.T) recipeServiceFixtures {
	recipeRepo := mockRepo.NewMockRecipeRepository(t)
	searcher := mockSvc.NewMockRecipeSearcher(t)
	searchCache := mockSvc.NewMockSearchCache(t)

	svc := NewRecipeService(RecipeServiceParams{
		RecipeRepo:  recipeRepo,
		Searcher:    searcher,
		SearchCache: searchCache,
		Logger:      newDiscardLogger(),
	})

	return recipeServiceFixtures{
		service:     svc,
		recipeRepo:  recipeRepo,
		searcher:    searcher,
		searchCache: searchCache,
	}
}

func TestRecipeService_SaveRecipe_StampsOwner(t *testing.T) {
	fx := createTestRecipeService(t)

	userID := uuid.New()
	input := usecase.SaveRecipeInput{
		SourceID:    716429,
		Title:       "Pasta with Garlic",
		ImageURL:    "https://img.example.com/716429.jpg",
		Ingredients: []string{"pasta", "garlic"},
	}

	fx.recipeRepo.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*entity.Recipe")).
		Run(func(_ context.Context, recipe *entity.Recipe) {
			assert.Equal(t, userID, recipe.UserID)
			assert.Equal(t, input.Title, recipe.Title)
			recipe.ID = uuid.New()
		}).
		Return(nil)

	recipe, err := fx.service.SaveRecipe(context.Background(), userID, input)

	require.NoError(t, err)
	assert.Equal(t, userID, recipe.UserID)
	assert.NotEqual(t, uuid.Nil, recipe.ID)
}

func TestRecipeService_DeleteRecipe_NotFoundCollapses(t *testing.T) {
	fx := createTestRecipeService(t)

	userID := uuid.New()
	recipeID := uuid.New()

	fx.recipeRepo.EXPECT().
		DeleteByIDAndUser(mock.Anything, recipeID, userID).
		Return(repository.ErrRecordNotFound)

	err := fx.service.DeleteRecipe(context.Background(), userID, recipeID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestRecipeService_SearchByIngredients_CacheMiss(t *testing.T) {
	fx := createTestRecipeService(t)

	payload := json.RawMessage(`[{"id":1}]`)

	fx.searchCache.EXPECT().Get(mock.Anything, "search:tomato,basil:2").Return(nil, false)
	fx.searcher.EXPECT().SearchByIngredients(mock.Anything, "tomato,basil", 2).Return(payload, nil)
	fx.searchCache.EXPECT().Set(mock.Anything, "search:tomato,basil:2", payload).Return()

	got, err := fx.service.SearchByIngredients(context.Background(), "tomato,basil", 2)

	require.NoError(t, err)
	assert.Equal(t, payload, got)
}

func TestRecipeService_SearchByIngredients_CacheHitSkipsUpstream(t *testing.T) {
	fx := createTestRecipeService(t)

	payload := json.RawMessage(`[{"id":1}]`)

	fx.searchCache.EXPECT().Get(mock.Anything, "search:tomato:1").Return(payload, true)

	got, err := fx.service.SearchByIngredients(context.Background(), "tomato", 1)

	require.NoError(t, err)
	assert.Equal(t, payload, got)
	fx.searcher.AssertNotCalled(t, "SearchByIngredients")
}

func TestRecipeService_SearchByIngredients_UpstreamFailure(t *testing.T) {
	fx := createTestRecipeService(t)

	fx.searchCache.EXPECT().Get(mock.Anything, mock.Anything).Return(nil, false)
	fx.searcher.EXPECT().
		SearchByIngredients(mock.Anything, "tofu", 1).
		Return(nil, service.ErrUpstreamFailed)

	_, err := fx.service.SearchByIngredients(context.Background(), "tofu", 1)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUpstreamUnavailable)
}

func TestRecipeService_GetRecipeDetails_PassThrough(t *testing.T) {
	fx := createTestRecipeService(t)

	payload := json.RawMessage(`{"id":716429,"title":"Pasta"}`)
	fx.searcher.EXPECT().GetRecipe(mock.Anything, int64(716429)).Return(payload, nil)

	got, err := fx.service.GetRecipeDetails(context.Background(), 716429)

	require.NoError(t, err)
	assert.Equal(t, payload, got)
}

func TestRecipeService_GetRecipeDetails_UpstreamFailure(t *testing.T) {
	fx := createTestRecipeService(t)

	fx.searcher.EXPECT().GetRecipe(mock.Anything, int64(1)).Return(nil, service.ErrUpstreamFailed)

	_, err := fx.service.GetRecipeDetails(context.Background(), 1)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUpstreamUnavailable)
}
