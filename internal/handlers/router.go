package handlers

import (
	"net/http"

	"github.com/codepioneers/recruiting/internal/handlers/middleware"
	"github.com/codepioneers/recruiting/internal/logger"
	"github.com/codepioneers/recruiting/internal/models"
)

// chain applies middlewares in the given order: m1(m2(...(h)))
func chain(h http.Handler, mds ...func(next http.Handler) http.Handler) http.Handler {
	for i := len(mds) - 1; i >= 0; i-- {
		h = mds[i](h)
	}
	return h
}

type RouterServices struct {
	Auth         authService
	AuthBearer   middleware.BearerAuthenticator
	Signup       signupService
	Users        userService
	JobPostings  jobPostingService
	Applications applicationService
	Profile      profileService
}

func NewRouter(services RouterServices, l logger.Logger) http.Handler {
	withAuth := middleware.AuthMiddleware(services.AuthBearer)
	staffOnly := middleware.RequireRoles(models.RoleRecruiter, models.RoleAdmin)
	adminOnly := middleware.RequireRoles(models.RoleAdmin)
	applicantOnly := middleware.RequireRoles(models.RoleUser)

	authH := NewAuth(services.Auth, services.Signup, l)
	userH := NewUser(services.Users)
	postingH := NewJobPosting(services.JobPostings)
	applicationH := NewApplication(services.Applications)
	profileH := NewProfile(services.Profile)

	mux := http.NewServeMux()

	mux.Handle("/auth/", http.StripPrefix("/auth", authH.Handler()))

	mux.Handle("PATCH /user/changePassw", chain(http.HandlerFunc(userH.changePassword), withAuth))
	mux.Handle("GET /user/currentUser", chain(http.HandlerFunc(userH.currentUser), withAuth))
	mux.Handle("PATCH /user", chain(http.HandlerFunc(userH.updateProfile), withAuth))
	mux.Handle("GET /user/listUsers", chain(http.HandlerFunc(userH.listUsers), withAuth, staffOnly))
	mux.Handle("GET /user/privilegedUsers", chain(http.HandlerFunc(userH.privilegedUsers), withAuth, adminOnly))
	mux.Handle("POST /user/create", chain(http.HandlerFunc(userH.createEmployee), withAuth, adminOnly))

	mux.Handle("GET /jobPosting/all", http.HandlerFunc(postingH.all))
	mux.Handle("GET /jobPosting/getJobPosting", http.HandlerFunc(postingH.get))
	mux.Handle("GET /jobPosting/searchByJobTitle", chain(http.HandlerFunc(postingH.searchByTitle), withAuth, staffOnly))
	mux.Handle("POST /jobPosting/create", chain(http.HandlerFunc(postingH.create), withAuth, staffOnly))
	mux.Handle("PUT /jobPosting/edit", chain(http.HandlerFunc(postingH.edit), withAuth, staffOnly))
	mux.Handle("PATCH /jobPosting/changeStatus", chain(http.HandlerFunc(postingH.changeStatus), withAuth, staffOnly))

	mux.Handle("POST /jobApplication/apply", chain(http.HandlerFunc(applicationH.apply), withAuth, applicantOnly))
	mux.Handle("GET /jobApplication/myApplicationFilter", chain(http.HandlerFunc(applicationH.myApplications), withAuth, applicantOnly))
	mux.Handle("GET /jobApplication/anyApplicationFilter", chain(http.HandlerFunc(applicationH.anyApplications), withAuth, staffOnly))
	mux.Handle("PATCH /jobApplication/changeStatus", chain(http.HandlerFunc(applicationH.changeStatus), withAuth, staffOnly))

	mux.Handle("POST /workExp/create", chain(http.HandlerFunc(profileH.createWorkExperience), withAuth))
	mux.Handle("PUT /workExp/edit", chain(http.HandlerFunc(profileH.editWorkExperience), withAuth))
	mux.Handle("DELETE /workExp", chain(http.HandlerFunc(profileH.deleteWorkExperience), withAuth))
	mux.Handle("GET /workExp/getWorkExperience", chain(http.HandlerFunc(profileH.getWorkExperience), withAuth))
	mux.Handle("GET /workExp/userWorkExperiences", chain(http.HandlerFunc(profileH.listWorkExperiences), withAuth))

	mux.Handle("POST /education/create", chain(http.HandlerFunc(profileH.createEducation), withAuth))
	mux.Handle("PUT /education/edit", chain(http.HandlerFunc(profileH.editEducation), withAuth))
	mux.Handle("DELETE /education", chain(http.HandlerFunc(profileH.deleteEducation), withAuth))
	mux.Handle("GET /education/getEducation", chain(http.HandlerFunc(profileH.getEducation), withAuth))
	mux.Handle("GET /education/userEducations", chain(http.HandlerFunc(profileH.listEducations), withAuth))

	mux.Handle("POST /skill/create", chain(http.HandlerFunc(profileH.createSkill), withAuth))
	mux.Handle("PUT /skill/edit", chain(http.HandlerFunc(profileH.editSkill), withAuth))
	mux.Handle("DELETE /skill", chain(http.HandlerFunc(profileH.deleteSkill), withAuth))
	mux.Handle("GET /skill/getSkill", chain(http.HandlerFunc(profileH.getSkill), withAuth))
	mux.Handle("GET /skill/userSkills", chain(http.HandlerFunc(profileH.listSkills), withAuth))

	mux.Handle("POST /project/create", chain(http.HandlerFunc(profileH.createProject), withAuth))
	mux.Handle("PUT /project/edit", chain(http.HandlerFunc(profileH.editProject), withAuth))
	mux.Handle("DELETE /project", chain(http.HandlerFunc(profileH.deleteProject), withAuth))
	mux.Handle("GET /project/getProject", chain(http.HandlerFunc(profileH.getProject), withAuth))
	mux.Handle("GET /project/userProjects", chain(http.HandlerFunc(profileH.listProjects), withAuth))

	mux.Handle("POST /applicantEnglishLevel/create", chain(http.HandlerFunc(profileH.createEnglishLevel), withAuth))
	mux.Handle("PUT /applicantEnglishLevel/edit", chain(http.HandlerFunc(profileH.editEnglishLevel), withAuth))
	mux.Handle("DELETE /applicantEnglishLevel", chain(http.HandlerFunc(profileH.deleteEnglishLevel), withAuth))
	mux.Handle("GET /applicantEnglishLevel/getApplicantEnglishLevel", chain(http.HandlerFunc(profileH.getEnglishLevel), withAuth))
	mux.Handle("GET /applicantEnglishLevel/userApplicantEnglishLevels", chain(http.HandlerFunc(profileH.listEnglishLevels), withAuth))

	return chain(mux,
		middleware.LoggerMiddleware(l),
	)
}
