// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "plateful/internal/delivery/context"
	"plateful/internal/domain/entity"
	domainerrors "plateful/internal/domain/errors"
	"plateful/internal/domain/repository"
	"plateful/internal/domain/service"
	"plateful/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager    repository.TransactionManager
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager:    params.TxManager,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register orchestrates the complete account registration process. The
// uniqueness check is the database's unique index on email: when two
// registrations race, exactly one insert wins and the loser surfaces as
// ErrUserAlreadyExists.
func (srv *userService) Register(ctx context.Context, input usecase.RegisterInput) (*usecase.AuthOutput, error) {
	srv.log(ctx).Info("Starting user registration", "email", input.Email)

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", "error", err)

		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	var registeredUser *entity.User

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		newUser := &entity.User{
			Name:         input.Name,
			Email:        input.Email,
			PasswordHash: hashedPassword,
		}

		if err := userRepo.Create(ctx, newUser); err != nil {
			if errors.Is(err, repository.ErrDuplicateEmail) {
				return domainerrors.ErrUserAlreadyExists.WrapMessage("user registration failed")
			}

			return errors.WithStack(err)
		}
		registeredUser = newUser

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("User registration failed", "email", input.Email, "error", err.Error())

		return nil, err
	}

	token, err := srv.tokenService.Issue(registeredUser.ID, registeredUser.Email)
	if err != nil {
		srv.log(ctx).Error("Failed to issue token after registration", "error", err)

		return nil, errors.Wrap(err, "failed to issue token after registration")
	}
	srv.log(ctx).Debug("User registered successfully", "userID", registeredUser.ID)

	return &usecase.AuthOutput{Token: token}, nil
}

// Login checks the credential and issues a fresh access token. A missing
// account and a wrong password return the same ErrInvalidCredentials so the
// response never reveals which addresses are registered.
func (srv *userService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.AuthOutput, error) {
	srv.log(ctx).Debug("Starting user login", "email", input.Email)

	var loggedInUser *entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := userRepo.FindByEmail(ctx, input.Email)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
			}

			return errors.Wrap(err, "failed to find user by email")
		}

		if !srv.hasher.Check(input.Password, user.PasswordHash) {
			return domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
		}
		loggedInUser = user

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Login failed", "email", input.Email, "error", err.Error())

		return nil, err
	}

	token, err := srv.tokenService.Issue(loggedInUser.ID, loggedInUser.Email)
	if err != nil {
		srv.log(ctx).Error("Failed to issue token after login", "error", err)

		return nil, errors.Wrap(err, "failed to issue token after login")
	}
	srv.log(ctx).Debug("User logged in successfully", "userID", loggedInUser.ID)

	return &usecase.AuthOutput{Token: token}, nil
}
