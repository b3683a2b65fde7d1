package handler

import (
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"plateful/internal/domain/entity"
	domainerrors "plateful/internal/domain/errors"
	mocks "plateful/internal/mocks/usecase"
	"plateful/internal/usecase"
)

func TestProfileHandler_Get_OmitsPasswordHash(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	profileUsecase := mocks.NewMockProfileUsecase(t)
	profileUsecase.EXPECT().
		GetProfile(mock.Anything, userID).
		Return(&entity.User{
			ID:           userID,
			Name:         "Alice",
			Email:        "alice@example.com",
			PasswordHash: "$2a$10$abcdefghijklmnopqrstuv",
			CreatedAt:    time.Now(),
			UpdatedAt:    time.Now(),
		}, nil)

	e := newTestEcho()
	h := NewProfileHandler(profileUsecase, newDiscardLogger())
	e.GET("/api/auth/profile", h.Get, withUser(userID))

	rec, envelope := doJSON(t, e, http.MethodGet, "/api/auth/profile", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)

	data, ok := envelope["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Alice", data["name"])
	assert.Equal(t, "alice@example.com", data["email"])
	assert.NotContains(t, rec.Body.String(), "$2a$10$")
}

func TestProfileHandler_Update_PasswordChangeNeedsCurrent(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	profileUsecase := mocks.NewMockProfileUsecase(t)
	profileUsecase.EXPECT().
		UpdateProfile(mock.Anything, userID, mock.AnythingOfType("usecase.UpdateProfileInput")).
		Return(nil, domainerrors.ErrInvalidCurrentPassword.WrapMessage("profile update failed"))

	e := newTestEcho()
	h := NewProfileHandler(profileUsecase, newDiscardLogger())
	e.PUT("/api/auth/profile", h.Update, withUser(userID))

	rec, envelope := doJSON(t, e, http.MethodPut, "/api/auth/profile",
		`{"newPassword":"brand-new-pass"}`, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, domainerrors.ErrInvalidCurrentPassword.ErrorCode(), errorCode(t, envelope))
}

func TestProfileHandler_Update_NameOnly(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	newName := "Alice Cooper"

	profileUsecase := mocks.NewMockProfileUsecase(t)
	profileUsecase.EXPECT().
		UpdateProfile(mock.Anything, userID, usecase.UpdateProfileInput{Name: &newName}).
		Return(&entity.User{
			ID:    userID,
			Name:  newName,
			Email: "alice@example.com",
		}, nil)

	e := newTestEcho()
	h := NewProfileHandler(profileUsecase, newDiscardLogger())
	e.PUT("/api/auth/profile", h.Update, withUser(userID))

	rec, envelope := doJSON(t, e, http.MethodPut, "/api/auth/profile",
		`{"name":"Alice Cooper"}`, nil)

	assert.Equal(t, http.StatusOK, rec.Code)

	data, ok := envelope["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, newName, data["name"])
}

func TestProfileHandler_Delete_Success(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	profileUsecase := mocks.NewMockProfileUsecase(t)
	profileUsecase.EXPECT().
		DeleteAccount(mock.Anything, userID).
		Return(nil)

	e := newTestEcho()
	h := NewProfileHandler(profileUsecase, newDiscardLogger())
	e.DELETE("/api/auth/profile", h.Delete, withUser(userID))

	rec, envelope := doJSON(t, e, http.MethodDelete, "/api/auth/profile", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, envelope["success"])
}
