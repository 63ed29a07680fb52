package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/codepioneers/recruiting/internal/handlers/render"
	"github.com/codepioneers/recruiting/internal/logger"
	"github.com/codepioneers/recruiting/internal/models"
	"github.com/codepioneers/recruiting/internal/service/user"
)

type authService interface {
	// Login verifies credentials and issues a token pair.
	// apperrors.ErrInvalidCredentials on unknown username or wrong password,
	// apperrors.ErrTemporaryPasswordExpired on a stale temporary password.
	Login(ctx context.Context, username string, password string) (models.TokenPair, models.User, error)

	// Refresh reissues the access token, the refresh token stays valid.
	// apperrors.ErrRefreshTokenNotFound / ErrRefreshTokenExpired on failure.
	Refresh(ctx context.Context, refreshToken string) (models.IssuedToken, error)
}

type signupService interface {
	Signup(ctx context.Context, params user.SignupParams) (models.User, error)
	ResendTempPassword(ctx context.Context, username string) error
}

type AuthHandler struct {
	auth   authService
	signup signupService
	logger logger.Logger
}

func NewAuth(auth authService, signup signupService, l logger.Logger) *AuthHandler {
	return &AuthHandler{auth: auth, signup: signup, logger: l}
}

func (h *AuthHandler) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /login", h.login)
	mux.HandleFunc("POST /refresh", h.refresh)
	mux.HandleFunc("POST /signup", h.signupUser)
	mux.HandleFunc("POST /resend", h.resend)

	return mux
}

type LoginResponse struct {
	UserID          uuid.UUID   `json:"userId"`
	Username        string      `json:"username"`
	AccessToken     string      `json:"accessToken"`
	RefreshToken    string      `json:"refreshToken"`
	Role            models.Role `json:"role"`
	PasswordChanged bool        `json:"passwordChanged"`
}

func (h *AuthHandler) login(w http.ResponseWriter, r *http.Request) {
	type LoginRequest struct {
		Username string `json:"username" validate:"required"`
		Password string `json:"password" validate:"required"`
	}

	data, err := render.BindAndValidate[LoginRequest](w, r)
	if err != nil {
		return
	}

	pair, account, err := h.auth.Login(r.Context(), data.Username, data.Password)
	if err != nil {
		renderError(w, err)
		return
	}

	render.JSON(w, LoginResponse{
		UserID:          account.ID,
		Username:        account.Username,
		AccessToken:     pair.Access.Value,
		RefreshToken:    pair.Refresh.Value,
		Role:            account.Role,
		PasswordChanged: account.PasswordChanged,
	})
}

func (h *AuthHandler) refresh(w http.ResponseWriter, r *http.Request) {
	type RefreshRequest struct {
		RefreshToken string `json:"refreshToken" validate:"required"`
	}
	type RefreshResponse struct {
		AccessToken string `json:"accessToken"`
	}

	data, err := render.BindAndValidate[RefreshRequest](w, r)
	if err != nil {
		return
	}

	access, err := h.auth.Refresh(r.Context(), data.RefreshToken)
	if err != nil {
		h.logger.Debug("refresh rejected", "error", err)
		renderError(w, err)
		return
	}

	render.JSON(w, RefreshResponse{AccessToken: access.Value})
}

func (h *AuthHandler) signupUser(w http.ResponseWriter, r *http.Request) {
	type SignupRequest struct {
		Username  string     `json:"username" validate:"required,min=2,max=50"`
		Firstname string     `json:"firstname" validate:"required"`
		Lastname  string     `json:"lastname" validate:"required"`
		Email     string     `json:"email" validate:"required,email"`
		Gender    string     `json:"gender" validate:"omitempty,oneof=MALE FEMALE OTHER"`
		Birthdate *Birthdate `json:"birthdate"`
	}
	type SignupResponse struct {
		Message string `json:"message"`
	}

	data, err := render.BindAndValidate[SignupRequest](w, r)
	if err != nil {
		return
	}

	_, err = h.signup.Signup(r.Context(), user.SignupParams{
		Username:  data.Username,
		Firstname: data.Firstname,
		Lastname:  data.Lastname,
		Email:     data.Email,
		Gender:    models.Gender(data.Gender),
		Birthdate: birthTimePtr(data.Birthdate),
	})
	if err != nil {
		renderError(w, err)
		return
	}

	render.JSON(w, SignupResponse{Message: "Account created, check your email for the temporary password"})
}

func (h *AuthHandler) resend(w http.ResponseWriter, r *http.Request) {
	type ResendResponse struct {
		Message string `json:"message"`
	}

	username := r.URL.Query().Get("username")
	if username == "" {
		render.Error(w, render.ValidationErrorKey, http.StatusBadRequest)
		return
	}

	if err := h.signup.ResendTempPassword(r.Context(), username); err != nil {
		renderError(w, err)
		return
	}

	render.JSON(w, ResendResponse{Message: "Temporary password sent"})
}
