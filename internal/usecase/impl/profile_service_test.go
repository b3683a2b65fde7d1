package impl

import (
	"context"
	"testing"

	"plateful/internal/domain/entity"
	domainerrors "plateful/internal/domain/errors"
	"plateful/internal/domain/repository"
	mockRepo "plateful/internal/mocks/repository"
	mockSvc "plateful/internal/mocks/service"
	"plateful/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// profileServiceFixtures holds all test dependencies for profile service tests.
type profileServiceFixtures struct {
	service   usecase.ProfileUsecase
	txManager *mockRepo.MockTransactionManager
	userRepo  *mockRepo.MockUserRepository
	hasher    *mockSvc.MockPasswordHasher
}

func createTestProfileService(t *testing.T) profileServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)

	service := NewProfileService(ProfileServiceParams{
		TxManager: txManager,
		UserRepo:  userRepo,
		Hasher:    hasher,
		Logger:    newDiscardLogger(),
	})

	return profileServiceFixtures{
		service:   service,
		txManager: txManager,
		userRepo:  userRepo,
		hasher:    hasher,
	}
}

func (fx profileServiceFixtures) runInTransaction(factory repository.RepositoryFactory) {
	fx.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

func strPtr(s string) *string { return &s }

func TestProfileService_GetProfile_Success(t *testing.T) {
	fx := createTestProfileService(t)

	userID := uuid.New()
	user := &entity.User{ID: userID, Name: "Test User", Email: "test@example.com"}

	fx.userRepo.EXPECT().FindByID(mock.Anything, userID).Return(user, nil)

	got, err := fx.service.GetProfile(context.Background(), userID)

	require.NoError(t, err)
	assert.Equal(t, user, got)
}

func TestProfileService_GetProfile_NotFound(t *testing.T) {
	fx := createTestProfileService(t)

	userID := uuid.New()
	fx.userRepo.EXPECT().FindByID(mock.Anything, userID).Return(nil, repository.ErrUserNotFound)

	got, err := fx.service.GetProfile(context.Background(), userID)

	require.Error(t, err)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestProfileService_UpdateProfile_NameOnly(t *testing.T) {
	fx := createTestProfileService(t)

	userID := uuid.New()
	user := &entity.User{ID: userID, Name: "Old Name", Email: "test@example.com", PasswordHash: "hash"}

	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
	mockUserRepo.EXPECT().FindByID(mock.Anything, userID).Return(user, nil)
	mockUserRepo.EXPECT().
		Update(mock.Anything, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, updated *entity.User) {
			assert.Equal(t, "New Name", updated.Name)
			assert.Equal(t, "hash", updated.PasswordHash)
		}).
		Return(nil)
	fx.runInTransaction(mockFactory)

	updated, err := fx.service.UpdateProfile(context.Background(), userID, usecase.UpdateProfileInput{
		Name: strPtr("New Name"),
	})

	require.NoError(t, err)
	assert.Equal(t, "New Name", updated.Name)
}

func TestProfileService_UpdateProfile_PasswordChange(t *testing.T) {
	fx := createTestProfileService(t)

	userID := uuid.New()
	user := &entity.User{ID: userID, Name: "Test User", Email: "test@example.com", PasswordHash: "old_hash"}

	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
	mockUserRepo.EXPECT().FindByID(mock.Anything, userID).Return(user, nil)
	fx.hasher.EXPECT().Check("current_pw", "old_hash").Return(true)
	fx.hasher.EXPECT().Hash("new_password").Return("new_hash", nil)
	mockUserRepo.EXPECT().
		Update(mock.Anything, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, updated *entity.User) {
			assert.Equal(t, "new_hash", updated.PasswordHash)
		}).
		Return(nil)
	fx.runInTransaction(mockFactory)

	_, err := fx.service.UpdateProfile(context.Background(), userID, usecase.UpdateProfileInput{
		CurrentPassword: strPtr("current_pw"),
		NewPassword:     strPtr("new_password"),
	})

	require.NoError(t, err)
}

func TestProfileService_UpdateProfile_WrongCurrentPassword(t *testing.T) {
	fx := createTestProfileService(t)

	userID := uuid.New()
	user := &entity.User{ID: userID, PasswordHash: "old_hash"}

	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
	mockUserRepo.EXPECT().FindByID(mock.Anything, userID).Return(user, nil)
	fx.hasher.EXPECT().Check("wrong", "old_hash").Return(false)
	fx.runInTransaction(mockFactory)

	_, err := fx.service.UpdateProfile(context.Background(), userID, usecase.UpdateProfileInput{
		CurrentPassword: strPtr("wrong"),
		NewPassword:     strPtr("new_password"),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCurrentPassword)
}

func TestProfileService_UpdateProfile_NewPasswordWithoutCurrent(t *testing.T) {
	fx := createTestProfileService(t)

	userID := uuid.New()
	user := &entity.User{ID: userID, PasswordHash: "old_hash"}

	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
	mockUserRepo.EXPECT().FindByID(mock.Anything, userID).Return(user, nil)
	fx.runInTransaction(mockFactory)

	_, err := fx.service.UpdateProfile(context.Background(), userID, usecase.UpdateProfileInput{
		NewPassword: strPtr("new_password"),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCurrentPassword)
}

func TestProfileService_DeleteAccount_CascadesOwnedData(t *testing.T) {
	fx := createTestProfileService(t)

	userID := uuid.New()

	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockRecipeRepo := mockRepo.NewMockRecipeRepository(t)
	mockMealPlanRepo := mockRepo.NewMockMealPlanRepository(t)
	mockShoppingRepo := mockRepo.NewMockShoppingListRepository(t)

	mockFactory.EXPECT().ShoppingListRepo().Return(mockShoppingRepo)
	mockFactory.EXPECT().MealPlanRepo().Return(mockMealPlanRepo)
	mockFactory.EXPECT().RecipeRepo().Return(mockRecipeRepo)
	mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

	mockShoppingRepo.EXPECT().DeleteAllByUser(mock.Anything, userID).Return(nil)
	mockMealPlanRepo.EXPECT().DeleteAllByUser(mock.Anything, userID).Return(nil)
	mockRecipeRepo.EXPECT().DeleteAllByUser(mock.Anything, userID).Return(nil)
	mockUserRepo.EXPECT().Delete(mock.Anything, userID).Return(nil)
	fx.runInTransaction(mockFactory)

	err := fx.service.DeleteAccount(context.Background(), userID)

	require.NoError(t, err)
}

func TestProfileService_DeleteAccount_UserGone(t *testing.T) {
	fx := createTestProfileService(t)

	userID := uuid.New()

	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockRecipeRepo := mockRepo.NewMockRecipeRepository(t)
	mockMealPlanRepo := mockRepo.NewMockMealPlanRepository(t)
	mockShoppingRepo := mockRepo.NewMockShoppingListRepository(t)

	mockFactory.EXPECT().ShoppingListRepo().Return(mockShoppingRepo)
	mockFactory.EXPECT().MealPlanRepo().Return(mockMealPlanRepo)
	mockFactory.EXPECT().RecipeRepo().Return(mockRecipeRepo)
	mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

	mockShoppingRepo.EXPECT().DeleteAllByUser(mock.Anything, userID).Return(nil)
	mockMealPlanRepo.EXPECT().DeleteAllByUser(mock.Anything, userID).Return(nil)
	mockRecipeRepo.EXPECT().DeleteAllByUser(mock.Anything, userID).Return(nil)
	mockUserRepo.EXPECT().Delete(mock.Anything, userID).Return(repository.ErrUserNotFound)
	fx.runInTransaction(mockFactory)

	err := fx.service.DeleteAccount(context.Background(), userID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}
