package client

// Role names as they appear in access token claims
const (
	RoleUser      = "USER"
	RoleRecruiter = "RECRUITER"
	RoleAdmin     = "ADMIN"
)

// Redirect targets of the route guard
const (
	SignInPath       = "/sign-in"
	UnauthorizedPath = "/unauthorized"
)

// GuardResult is the decision for one navigation attempt
type GuardResult struct {
	Allowed bool

	// RedirectTo is set when the navigation is denied
	RedirectTo string

	// From preserves the originally requested location so the caller can
	// return there after signing in
	From string
}

// EvaluateGuard decides whether a session role may enter a route.
// No role means not signed in: redirect to sign-in keeping the requested
// location. A role outside the allow list is sent to the unauthorized page.
// The decision is pure, it reads nothing but its arguments.
func EvaluateGuard(role string, allowedRoles []string, requested string) GuardResult {
	if role == "" {
		return GuardResult{RedirectTo: SignInPath, From: requested}
	}

	for _, allowed := range allowedRoles {
		if role == allowed {
			return GuardResult{Allowed: true}
		}
	}

	return GuardResult{RedirectTo: UnauthorizedPath}
}

// Guard evaluates the current session against a route's allow list
func (s *Session) Guard(allowedRoles []string, requested string) GuardResult {
	return EvaluateGuard(s.Role(), allowedRoles, requested)
}

// Route pairs a path with the roles allowed to enter it.
// Nil AllowedRoles means the route is public.
type Route struct {
	Path         string
	AllowedRoles []string
}

// Routes is the static route table of the application
var Routes = []Route{
	{Path: "/"},
	{Path: SignInPath},
	{Path: "/sign-up"},
	{Path: UnauthorizedPath},

	{Path: "/profile", AllowedRoles: []string{RoleUser, RoleRecruiter, RoleAdmin}},
	{Path: "/change-password", AllowedRoles: []string{RoleUser, RoleRecruiter, RoleAdmin}},

	{Path: "/my-applications", AllowedRoles: []string{RoleUser}},

	{Path: "/applicants", AllowedRoles: []string{RoleRecruiter, RoleAdmin}},
	{Path: "/manage-job-postings", AllowedRoles: []string{RoleRecruiter, RoleAdmin}},
	{Path: "/applications", AllowedRoles: []string{RoleRecruiter, RoleAdmin}},

	{Path: "/add-employee", AllowedRoles: []string{RoleAdmin}},
	{Path: "/employees", AllowedRoles: []string{RoleAdmin}},
}

// FindRoute returns the route table entry for a path
func FindRoute(path string) (Route, bool) {
	for _, route := range Routes {
		if route.Path == path {
			return route, true
		}
	}
	return Route{}, false
}
