package main

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

const loginPath = "/v1/auth/login"

func (app *application) routes() http.Handler {
	router := httprouter.New()

	router.NotFound = http.HandlerFunc(app.notFoundErrorResponse)
	router.MethodNotAllowed = http.HandlerFunc(app.methodNotAllowedErrorResponse)

	router.HandlerFunc(http.MethodGet, "/v1/healthcheck", app.healthCheckHandler)

	// auth service
	router.HandlerFunc(http.MethodPost, loginPath, app.rateLimit(app.loginHandler))

	// profile service
	router.HandlerFunc(http.MethodGet, "/v1/profile", app.getProfileHandler)
	router.HandlerFunc(http.MethodPost, "/v1/profile", app.requireAdmin(app.saveProfileHandler))

	// project service
	router.HandlerFunc(http.MethodGet, "/v1/projects", app.getProjectsHandler)
	router.HandlerFunc(http.MethodGet, "/v1/projects/:id", app.getProjectHandler)
	router.HandlerFunc(http.MethodPost, "/v1/projects", app.requireAdmin(app.createProjectHandler))
	router.HandlerFunc(http.MethodPut, "/v1/projects/:id", app.requireAdmin(app.updateProjectHandler))
	router.HandlerFunc(http.MethodDelete, "/v1/projects/:id", app.requireAdmin(app.deleteProjectHandler))

	// blog service
	router.HandlerFunc(http.MethodGet, "/v1/blog", app.getPostsHandler)
	router.HandlerFunc(http.MethodGet, "/v1/blog/:slug", app.getPublishedPostHandler)
	router.HandlerFunc(http.MethodPost, "/v1/blog", app.requireAdmin(app.createPostHandler))
	router.HandlerFunc(http.MethodPut, "/v1/blog/:id", app.requireAdmin(app.updatePostHandler))
	router.HandlerFunc(http.MethodDelete, "/v1/blog/:id", app.requireAdmin(app.deletePostHandler))
	router.HandlerFunc(http.MethodGet, "/v1/admin/blog", app.requireAdmin(app.getAllPostsHandler))
	router.HandlerFunc(http.MethodGet, "/v1/admin/blog/:id", app.requireAdmin(app.getPostHandler))

	// resume service
	router.HandlerFunc(http.MethodGet, "/v1/resume/current", app.getCurrentResumeHandler)
	router.HandlerFunc(http.MethodPost, "/v1/resume/upload", app.requireAdmin(app.uploadResumeHandler))
	router.HandlerFunc(http.MethodGet, "/v1/admin/resumes", app.requireAdmin(app.getResumesHandler))

	// media service
	router.HandlerFunc(http.MethodPost, "/v1/images", app.requireAdmin(app.uploadImageHandler))

	// contact service
	router.HandlerFunc(http.MethodPost, "/v1/contact", app.rateLimit(app.contactHandler))

	return app.recoverPanic(app.logRequest(app.enableCORS(app.authenticate(router))))
}
