package client

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_EvaluateGuard(t *testing.T) {
	t.Parallel()

	staff := []string{RoleRecruiter, RoleAdmin}

	tests := []struct {
		name      string
		role      string
		allowed   []string
		requested string
		want      GuardResult
	}{
		{
			name:      "anonymous goes to sign in keeping location",
			role:      "",
			allowed:   staff,
			requested: "/applications",
			want:      GuardResult{RedirectTo: SignInPath, From: "/applications"},
		},
		{
			name:      "allowed role passes",
			role:      RoleRecruiter,
			allowed:   staff,
			requested: "/applications",
			want:      GuardResult{Allowed: true},
		},
		{
			name:      "admin passes staff routes",
			role:      RoleAdmin,
			allowed:   staff,
			requested: "/manage-job-postings",
			want:      GuardResult{Allowed: true},
		},
		{
			name:      "wrong role goes to unauthorized",
			role:      RoleUser,
			allowed:   staff,
			requested: "/applications",
			want:      GuardResult{RedirectTo: UnauthorizedPath},
		},
		{
			name:      "recruiter denied admin route",
			role:      RoleRecruiter,
			allowed:   []string{RoleAdmin},
			requested: "/employees",
			want:      GuardResult{RedirectTo: UnauthorizedPath},
		},
		{
			name:      "unknown role goes to unauthorized",
			role:      "SUPERVISOR",
			allowed:   staff,
			requested: "/applications",
			want:      GuardResult{RedirectTo: UnauthorizedPath},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, EvaluateGuard(tt.role, tt.allowed, tt.requested))
		})
	}
}

func Test_SessionGuard(t *testing.T) {
	t.Parallel()

	s := NewSession()
	s.SetTokens(forgeToken(t, `{"sub":"nk","uid":"u-1","role":"USER"}`), "r")

	require.True(t, s.Guard([]string{RoleUser}, "/my-applications").Allowed)
	require.Equal(t, UnauthorizedPath, s.Guard([]string{RoleAdmin}, "/employees").RedirectTo)

	s.Clear()
	got := s.Guard([]string{RoleUser}, "/my-applications")
	require.Equal(t, SignInPath, got.RedirectTo)
	require.Equal(t, "/my-applications", got.From)
}

func Test_FindRoute(t *testing.T) {
	t.Parallel()

	route, ok := FindRoute("/add-employee")
	require.True(t, ok)
	require.Equal(t, []string{RoleAdmin}, route.AllowedRoles)

	route, ok = FindRoute("/sign-up")
	require.True(t, ok)
	require.Nil(t, route.AllowedRoles, "public route has no allow list")

	_, ok = FindRoute("/nope")
	require.False(t, ok)
}
