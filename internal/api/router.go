package api

import (
	"net/http"
	"time"

	"mergington_api/internal/api/handler"
	"mergington_api/internal/api/middleware"
	"mergington_api/internal/app/service"
	"mergington_api/internal/common/security"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	tokens *security.TokenService,
	authService *service.AuthService,
	activityService *service.ActivityService,
	staticDir string,
) http.Handler {
	r := chi.NewRouter()

	// Base Middlewares
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Timeout(60 * time.Second))

	// Verifier parses "Authorization: Bearer <token>" and stashes the
	// result in the context; TeacherResolver upgrades it to an identity
	// when the token checks out. Neither rejects anonymous requests.
	r.Use(jwtauth.Verifier(tokens.JWTAuth()))
	r.Use(middleware.TeacherResolver(authService))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// Static frontend
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/static/index.html", http.StatusTemporaryRedirect)
	})
	fileServer := http.StripPrefix("/static/", http.FileServer(http.Dir(staticDir)))
	r.Get("/static/*", fileServer.ServeHTTP)

	// Auth routes (login public, verify answers anonymous callers too)
	authHandler := handler.NewAuthHandler(authService)
	r.Route("/auth", authHandler.RegisterRoutes)

	// Activity routes (list public, mutations teacher-only)
	activityHandler := handler.NewActivityHandler(activityService)
	r.Route("/activities", activityHandler.RegisterRoutes)

	return r
}
