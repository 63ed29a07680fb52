package client

import (
	"context"
	"net/http"
)

// User is the account payload of the service.
// Birthdate arrives in the dd-MM-yyyy display format.
type User struct {
	ID              string `json:"id"`
	Username        string `json:"username"`
	Firstname       string `json:"firstname"`
	Lastname        string `json:"lastname"`
	Email           string `json:"email"`
	Gender          string `json:"gender,omitempty"`
	Birthdate       string `json:"birthdate,omitempty"`
	Role            string `json:"role"`
	PasswordChanged bool   `json:"passwordChanged"`
}

// CurrentUser fetches the account behind the session
func (p *Private) CurrentUser(ctx context.Context) (User, error) {
	var result User
	err := p.do(ctx, http.MethodGet, "/user/currentUser", nil, nil, &result)
	return result, err
}

// ChangePassword replaces the password of the session's account. After a
// temporary password this clears the must-change flag.
func (p *Private) ChangePassword(ctx context.Context, newPassword string) error {
	return p.do(ctx, http.MethodPatch, "/user/changePassw", nil, map[string]string{
		"newPassword": newPassword,
	}, nil)
}

// ProfileUpdate is the body of profile edits
type ProfileUpdate struct {
	Username  string `json:"username"`
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
	Email     string `json:"email"`
	Gender    string `json:"gender,omitempty"`
	Birthdate string `json:"birthdate,omitempty"`
}

func (p *Private) UpdateProfile(ctx context.Context, update ProfileUpdate) (User, error) {
	var result User
	err := p.do(ctx, http.MethodPatch, "/user", nil, update, &result)
	return result, err
}

// Applicants lists every applicant account, staff only
func (p *Private) Applicants(ctx context.Context) ([]User, error) {
	var result []User
	err := p.do(ctx, http.MethodGet, "/user/listUsers", nil, nil, &result)
	return result, err
}

// Employees pages recruiter and admin accounts, admin only
func (p *Private) Employees(ctx context.Context, page PageQuery) (Page[User], error) {
	var result Page[User]
	err := p.do(ctx, http.MethodGet, "/user/privilegedUsers", page.values(), nil, &result)
	return result, err
}

// NewEmployee is the body of an employee account creation
type NewEmployee struct {
	Username  string `json:"username"`
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
	Email     string `json:"email"`
	Role      string `json:"role"`
}

// CreateEmployee registers a recruiter or admin account, admin only. The
// temporary password goes out by email.
func (p *Private) CreateEmployee(ctx context.Context, employee NewEmployee) (User, error) {
	var result User
	err := p.do(ctx, http.MethodPost, "/user/create", nil, employee, &result)
	return result, err
}
