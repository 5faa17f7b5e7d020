package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-booking/internal/model"
	"github.com/iliyamo/hotel-booking/internal/service"
	"github.com/iliyamo/hotel-booking/internal/utils"
)

// AuthHandler serves signup and login. Neither endpoint issues a token.
type AuthHandler struct {
	Auth AuthService
	Log  *slog.Logger
}

func NewAuthHandler(auth AuthService, log *slog.Logger) *AuthHandler {
	return &AuthHandler{Auth: auth, Log: log}
}

type signupReq struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
	Name     string `json:"name" validate:"max=200"`
}

type loginReq struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Signup creates an account. The email is stored exactly as sent.
func (h *AuthHandler) Signup(c echo.Context) error {
	var req signupReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "email and password are required"})
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	u, err := h.Auth.Signup(ctx, req.Email, req.Password, req.Name)
	switch {
	case errors.Is(err, service.ErrDuplicateEmail):
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "Email already exists"})
	case errors.Is(err, utils.ErrPasswordTooLong):
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "password is too long"})
	case err != nil:
		h.Log.Error("signup failed", "error", err)
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "signup failed"})
	}
	h.Log.Info("user registered", "user_id", u.ID)
	return c.JSON(http.StatusCreated, newAuthResponse("User registered successfully", u))
}

// Login checks credentials and echoes the account, minus the hash.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "email and password are required"})
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	u, err := h.Auth.Login(ctx, req.Email, req.Password)
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		return c.JSON(http.StatusUnauthorized, errorResponse{Error: "Invalid email or password"})
	case err != nil:
		h.Log.Error("login failed", "error", err)
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "login failed"})
	}
	return c.JSON(http.StatusOK, newAuthResponse("Login successful", u))
}

func newAuthResponse(msg string, u model.User) authResponse {
	return authResponse{Message: msg, UserID: u.ID, Email: u.Email, Name: u.Name}
}
