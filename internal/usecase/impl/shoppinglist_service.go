package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "plateful/internal/delivery/context"
	"plateful/internal/domain/entity"
	domainerrors "plateful/internal/domain/errors"
	"plateful/internal/domain/repository"
	"plateful/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// shoppingListService implements the ShoppingListUsecase interface.
type shoppingListService struct {
	txManager        repository.TransactionManager
	shoppingListRepo repository.ShoppingListRepository
	logger           *slog.Logger
}

// ShoppingListServiceParams holds dependencies for ShoppingListService, injected by Fx.
type ShoppingListServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	ShoppingListRepo repository.ShoppingListRepository
	Logger           *slog.Logger
}

// NewShoppingListService is the constructor for shoppingListService.
func NewShoppingListService(params ShoppingListServiceParams) usecase.ShoppingListUsecase {
	return &shoppingListService{
		txManager:        params.TxManager,
		shoppingListRepo: params.ShoppingListRepo,
		logger:           params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *shoppingListService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetList returns the user's shopping list.
func (srv *shoppingListService) GetList(ctx context.Context, userID uuid.UUID) ([]entity.ShoppingListItem, error) {
	items, err := srv.shoppingListRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list shopping list items")
	}

	return items, nil
}

// ReplaceList swaps the user's entire list for the submitted ingredients
// inside one transaction, so the stored set always equals the submitted set.
// Blank ingredients are rejected; an empty submission clears the list.
func (srv *shoppingListService) ReplaceList(ctx context.Context, userID uuid.UUID, ingredients []string) ([]entity.ShoppingListItem, error) {
	cleaned := make([]string, 0, len(ingredients))
	for _, ingredient := range ingredients {
		trimmed := strings.TrimSpace(ingredient)
		if trimmed == "" {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("shopping list items must not be blank")
		}
		cleaned = append(cleaned, trimmed)
	}

	var items []entity.ShoppingListItem

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		stored, err := repoFactory.ShoppingListRepo().ReplaceForUser(ctx, userID, cleaned)
		if err != nil {
			return errors.WithStack(err)
		}
		items = stored

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Shopping list replacement failed", "userID", userID, "error", err.Error())

		return nil, err
	}
	srv.log(ctx).Debug("Shopping list replaced", "userID", userID, "items", len(items))

	return items, nil
}
