package middleware

import (
	"context"
	"net/http"

	"mergington_api/internal/app/service"
	"mergington_api/internal/common"
	"mergington_api/internal/common/security"
	"mergington_api/internal/domain/model"

	"github.com/go-chi/jwtauth/v5"
)

type contextKey string

const TeacherCtxKey contextKey = "teacher"

// TeacherResolver turns a verified bearer token into an authenticated
// teacher in the request context. It never rejects: a missing, invalid
// or expired token, or a username no longer present in the credential
// store, all leave the request anonymous. Routes that demand an
// identity stack RequireTeacher on top.
func TeacherResolver(authService *service.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, claims, err := jwtauth.FromContext(r.Context())
			if err != nil || token == nil {
				next.ServeHTTP(w, r)
				return
			}

			username, err := security.GetUsernameFromClaims(claims)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			teacher, err := authService.ResolveTeacher(r.Context(), username)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), TeacherCtxKey, teacher)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func RequireTeacher(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := GetTeacherFromContext(r.Context()); !ok {
			w.Header().Set("WWW-Authenticate", "Bearer")
			common.RespondWithError(w, http.StatusUnauthorized, "Teacher authentication required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func GetTeacherFromContext(ctx context.Context) (*model.Teacher, bool) {
	teacher, ok := ctx.Value(TeacherCtxKey).(*model.Teacher)
	return teacher, ok
}
