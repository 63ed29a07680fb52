package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/codepioneers/recruiting/internal/handlers/render"
	"github.com/codepioneers/recruiting/internal/models"
	"github.com/codepioneers/recruiting/internal/service/user"
)

type userService interface {
	ChangePassword(ctx context.Context, userID uuid.UUID, newPassword string) error
	UpdateProfile(ctx context.Context, user models.User) (models.User, error)
	CreateEmployee(ctx context.Context, params user.CreateEmployeeParams) (models.User, error)
	ListApplicants(ctx context.Context) ([]models.User, error)
	PagePrivileged(ctx context.Context, page models.PageRequest) (models.Page[models.User], error)
}

type UserHandler struct {
	users userService
}

func NewUser(users userService) *UserHandler {
	return &UserHandler{users: users}
}

type UserResponse struct {
	ID              uuid.UUID   `json:"id"`
	Username        string      `json:"username"`
	Firstname       string      `json:"firstname"`
	Lastname        string      `json:"lastname"`
	Email           string      `json:"email"`
	Gender          string      `json:"gender,omitempty"`
	Birthdate       *Birthdate  `json:"birthdate,omitempty"`
	Role            models.Role `json:"role"`
	PasswordChanged bool        `json:"passwordChanged"`
}

func userResponse(u models.User) UserResponse {
	return UserResponse{
		ID:              u.ID,
		Username:        u.Username,
		Firstname:       u.Firstname,
		Lastname:        u.Lastname,
		Email:           u.Email,
		Gender:          string(u.Gender),
		Birthdate:       birthdatePtr(u.Birthdate),
		Role:            u.Role,
		PasswordChanged: u.PasswordChanged,
	}
}

func (h *UserHandler) changePassword(w http.ResponseWriter, r *http.Request) {
	type ChangePasswordRequest struct {
		NewPassword string `json:"newPassword" validate:"required,min=8"`
	}
	type ChangePasswordResponse struct {
		Message string `json:"message"`
	}

	viewer, ok := UserFromContext(r.Context())
	if !ok {
		render.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	data, err := render.BindAndValidate[ChangePasswordRequest](w, r)
	if err != nil {
		return
	}

	if err := h.users.ChangePassword(r.Context(), viewer.ID, data.NewPassword); err != nil {
		renderError(w, err)
		return
	}

	render.JSON(w, ChangePasswordResponse{Message: "Password changed"})
}

func (h *UserHandler) currentUser(w http.ResponseWriter, r *http.Request) {
	viewer, ok := UserFromContext(r.Context())
	if !ok {
		render.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	render.JSON(w, userResponse(viewer))
}

func (h *UserHandler) updateProfile(w http.ResponseWriter, r *http.Request) {
	type UpdateProfileRequest struct {
		Username  string     `json:"username" validate:"required,min=2,max=50"`
		Firstname string     `json:"firstname" validate:"required"`
		Lastname  string     `json:"lastname" validate:"required"`
		Email     string     `json:"email" validate:"required,email"`
		Gender    string     `json:"gender" validate:"omitempty,oneof=MALE FEMALE OTHER"`
		Birthdate *Birthdate `json:"birthdate"`
	}

	viewer, ok := UserFromContext(r.Context())
	if !ok {
		render.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	data, err := render.BindAndValidate[UpdateProfileRequest](w, r)
	if err != nil {
		return
	}

	viewer.Username = data.Username
	viewer.Firstname = data.Firstname
	viewer.Lastname = data.Lastname
	viewer.Email = data.Email
	viewer.Gender = models.Gender(data.Gender)
	viewer.Birthdate = birthTimePtr(data.Birthdate)

	updated, err := h.users.UpdateProfile(r.Context(), viewer)
	if err != nil {
		renderError(w, err)
		return
	}

	render.JSON(w, userResponse(updated))
}

func (h *UserHandler) listUsers(w http.ResponseWriter, r *http.Request) {
	applicants, err := h.users.ListApplicants(r.Context())
	if err != nil {
		renderError(w, err)
		return
	}

	response := make([]UserResponse, 0, len(applicants))
	for _, u := range applicants {
		response = append(response, userResponse(u))
	}

	render.JSON(w, response)
}

func (h *UserHandler) privilegedUsers(w http.ResponseWriter, r *http.Request) {
	page, err := h.users.PagePrivileged(r.Context(), pageRequest(r))
	if err != nil {
		renderError(w, err)
		return
	}

	render.JSON(w, pageResponse(page, userResponse))
}

func (h *UserHandler) createEmployee(w http.ResponseWriter, r *http.Request) {
	type CreateEmployeeRequest struct {
		Username  string `json:"username" validate:"required,min=2,max=50"`
		Firstname string `json:"firstname" validate:"required"`
		Lastname  string `json:"lastname" validate:"required"`
		Email     string `json:"email" validate:"required,email"`
		Role      string `json:"role" validate:"required,oneof=RECRUITER ADMIN"`
	}

	data, err := render.BindAndValidate[CreateEmployeeRequest](w, r)
	if err != nil {
		return
	}

	created, err := h.users.CreateEmployee(r.Context(), user.CreateEmployeeParams{
		Username:  data.Username,
		Firstname: data.Firstname,
		Lastname:  data.Lastname,
		Email:     data.Email,
		Role:      models.Role(data.Role),
	})
	if err != nil {
		renderError(w, err)
		return
	}

	render.JSONWithStatus(w, userResponse(created), http.StatusCreated)
}
