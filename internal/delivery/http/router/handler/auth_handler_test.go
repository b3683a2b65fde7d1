package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	domainerrors "plateful/internal/domain/errors"
	mocks "plateful/internal/mocks/usecase"
	"plateful/internal/usecase"
)

func TestAuthHandler_Register_Success(t *testing.T) {
	t.Parallel()

	userUsecase := mocks.NewMockUserUsecase(t)
	userUsecase.EXPECT().
		Register(mock.Anything, usecase.RegisterInput{
			Name:     "Alice",
			Email:    "alice@example.com",
			Password: "s3cret-pass",
		}).
		Return(&usecase.AuthOutput{Token: "signed.jwt.token"}, nil)

	e := newTestEcho()
	h := NewAuthHandler(userUsecase, newDiscardLogger())
	e.POST("/api/auth/register", h.Register)

	rec, envelope := doJSON(t, e, http.MethodPost, "/api/auth/register",
		`{"name":"Alice","email":"alice@example.com","password":"s3cret-pass"}`, nil)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, true, envelope["success"])

	data, ok := envelope["data"].(map[string]any)
	assert.True(t, ok)
	assert.Equal(t, "signed.jwt.token", data["token"])
}

func TestAuthHandler_Register_InvalidPayload(t *testing.T) {
	t.Parallel()

	userUsecase := mocks.NewMockUserUsecase(t)

	e := newTestEcho()
	h := NewAuthHandler(userUsecase, newDiscardLogger())
	e.POST("/api/auth/register", h.Register)

	rec, envelope := doJSON(t, e, http.MethodPost, "/api/auth/register",
		`{"name":"Alice","email":"not-an-email","password":"123"}`, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), errorCode(t, envelope))
	userUsecase.AssertNotCalled(t, "Register")
}

func TestAuthHandler_Register_DuplicateEmail(t *testing.T) {
	t.Parallel()

	userUsecase := mocks.NewMockUserUsecase(t)
	userUsecase.EXPECT().
		Register(mock.Anything, mock.AnythingOfType("usecase.RegisterInput")).
		Return(nil, domainerrors.ErrUserAlreadyExists.WrapMessage("user registration failed"))

	e := newTestEcho()
	h := NewAuthHandler(userUsecase, newDiscardLogger())
	e.POST("/api/auth/register", h.Register)

	rec, envelope := doJSON(t, e, http.MethodPost, "/api/auth/register",
		`{"name":"Alice","email":"alice@example.com","password":"s3cret-pass"}`, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, domainerrors.ErrUserAlreadyExists.ErrorCode(), errorCode(t, envelope))
}

func TestAuthHandler_Login_Success(t *testing.T) {
	t.Parallel()

	userUsecase := mocks.NewMockUserUsecase(t)
	userUsecase.EXPECT().
		Login(mock.Anything, usecase.LoginInput{
			Email:    "alice@example.com",
			Password: "s3cret-pass",
		}).
		Return(&usecase.AuthOutput{Token: "signed.jwt.token"}, nil)

	e := newTestEcho()
	h := NewAuthHandler(userUsecase, newDiscardLogger())
	e.POST("/api/auth/login", h.Login)

	rec, envelope := doJSON(t, e, http.MethodPost, "/api/auth/login",
		`{"email":"alice@example.com","password":"s3cret-pass"}`, nil)

	assert.Equal(t, http.StatusOK, rec.Code)

	data, ok := envelope["data"].(map[string]any)
	assert.True(t, ok)
	assert.Equal(t, "signed.jwt.token", data["token"])
}

func TestAuthHandler_Login_BadCredentials(t *testing.T) {
	t.Parallel()

	userUsecase := mocks.NewMockUserUsecase(t)
	userUsecase.EXPECT().
		Login(mock.Anything, mock.AnythingOfType("usecase.LoginInput")).
		Return(nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed"))

	e := newTestEcho()
	h := NewAuthHandler(userUsecase, newDiscardLogger())
	e.POST("/api/auth/login", h.Login)

	rec, envelope := doJSON(t, e, http.MethodPost, "/api/auth/login",
		`{"email":"alice@example.com","password":"wrong"}`, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, domainerrors.ErrInvalidCredentials.ErrorCode(), errorCode(t, envelope))
}
