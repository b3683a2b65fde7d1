package impl

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"

	deliverycontext "plateful/internal/delivery/context"
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

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service      usecase.UserUsecase
	txManager    *mockRepo.MockTransactionManager
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func createTestUserService(t *testing.T) userServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)

	service := NewUserService(UserServiceParams{
		TxManager:    txManager,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       newDiscardLogger(),
	})

	return userServiceFixtures{
		service:      service,
		txManager:    txManager,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

// runInTransaction wires the Execute mock so the callback runs against the
// given factory and its error propagates, like the real transaction manager.
func runInTransaction(fx userServiceFixtures, factory repository.RepositoryFactory) {
	fx.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

func TestUserService_Register_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := usecase.RegisterInput{
		Name:     "Test User",
		Email:    "test@example.com",
		Password: "password123",
	}
	userID := uuid.New()

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
	mockUserRepo.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, user *entity.User) {
			assert.Equal(t, "hashed_password", user.PasswordHash)
			user.ID = userID
		}).
		Return(nil)
	runInTransaction(fx, mockFactory)

	fx.tokenService.EXPECT().Issue(userID, input.Email).Return("signed.token", nil)

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "signed.token", output.Token)
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := usecase.RegisterInput{
		Name:     "Test User",
		Email:    "taken@example.com",
		Password: "password123",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
	mockUserRepo.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*entity.User")).
		Return(repository.ErrDuplicateEmail)
	runInTransaction(fx, mockFactory)

	output, err := fx.service.Register(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestUserService_Login_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := usecase.LoginInput{Email: "test@example.com", Password: "password123"}
	user := &entity.User{
		ID:           uuid.New(),
		Email:        input.Email,
		PasswordHash: "stored_hash",
	}

	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
	mockUserRepo.EXPECT().FindByEmail(mock.Anything, input.Email).Return(user, nil)
	runInTransaction(fx, mockFactory)

	fx.hasher.EXPECT().Check(input.Password, user.PasswordHash).Return(true)
	fx.tokenService.EXPECT().Issue(user.ID, user.Email).Return("signed.token", nil)

	output, err := fx.service.Login(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "signed.token", output.Token)
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := usecase.LoginInput{Email: "nobody@example.com", Password: "password123"}

	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
	mockUserRepo.EXPECT().FindByEmail(mock.Anything, input.Email).Return(nil, repository.ErrUserNotFound)
	runInTransaction(fx, mockFactory)

	output, err := fx.service.Login(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := usecase.LoginInput{Email: "test@example.com", Password: "wrong"}
	user := &entity.User{
		ID:           uuid.New(),
		Email:        input.Email,
		PasswordHash: "stored_hash",
	}

	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
	mockUserRepo.EXPECT().FindByEmail(mock.Anything, input.Email).Return(user, nil)
	runInTransaction(fx, mockFactory)

	fx.hasher.EXPECT().Check(input.Password, user.PasswordHash).Return(false)

	output, err := fx.service.Login(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

// A missing account and a wrong password must be indistinguishable to the
// caller, otherwise the login endpoint leaks which addresses are registered.
func TestUserService_Login_FailureModesAreIndistinguishable(t *testing.T) {
	user := &entity.User{ID: uuid.New(), Email: "test@example.com", PasswordHash: "stored_hash"}

	collect := func(setup func(fx userServiceFixtures)) error {
		fx := createTestUserService(t)
		setup(fx)

		_, err := fx.service.Login(context.Background(), usecase.LoginInput{
			Email:    "test@example.com",
			Password: "whatever",
		})
		require.Error(t, err)

		return err
	}

	missingErr := collect(func(fx userServiceFixtures) {
		mockFactory := mockRepo.NewMockRepositoryFactory(t)
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
		mockUserRepo.EXPECT().FindByEmail(mock.Anything, mock.Anything).Return(nil, repository.ErrUserNotFound)
		runInTransaction(fx, mockFactory)
	})

	wrongPasswordErr := collect(func(fx userServiceFixtures) {
		mockFactory := mockRepo.NewMockRepositoryFactory(t)
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
		mockUserRepo.EXPECT().FindByEmail(mock.Anything, mock.Anything).Return(user, nil)
		fx.hasher.EXPECT().Check(mock.Anything, mock.Anything).Return(false)
		runInTransaction(fx, mockFactory)
	})

	var missingApp, wrongApp domainerrors.AppError
	require.ErrorAs(t, missingErr, &missingApp)
	require.ErrorAs(t, wrongPasswordErr, &wrongApp)
	assert.Equal(t, missingApp.HTTPCode(), wrongApp.HTTPCode())
	assert.Equal(t, missingApp.ErrorCode(), wrongApp.ErrorCode())
	assert.Equal(t, missingApp.Message(), wrongApp.Message())
}

// Service log lines must carry the request-scoped logger planted by the
// request ID middleware, so every line ties back to one request.
func TestUserService_UsesRequestScopedLogger(t *testing.T) {
	fx := createTestUserService(t)

	var buf bytes.Buffer
	reqLogger := slog.New(slog.NewJSONHandler(&buf, nil)).
		With(slog.String("request_id", "req-42"))
	ctx := deliverycontext.WithLogger(context.Background(), reqLogger)

	input := usecase.LoginInput{Email: "nobody@example.com", Password: "password123"}

	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
	mockUserRepo.EXPECT().FindByEmail(mock.Anything, input.Email).Return(nil, repository.ErrUserNotFound)
	runInTransaction(fx, mockFactory)

	_, err := fx.service.Login(ctx, input)
	require.Error(t, err)

	assert.Contains(t, buf.String(), "Login failed")
	assert.Contains(t, buf.String(), `"request_id":"req-42"`)
}
