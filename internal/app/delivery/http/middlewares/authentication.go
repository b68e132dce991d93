package middlewares

import (
	"context"
	"doctorsportal-service/internal/pkg/constvars"
	"doctorsportal-service/internal/pkg/exceptions"
	"doctorsportal-service/internal/pkg/utils"
	"net/http"
	"strings"
)

// Authenticate verifies the bearer token and stashes the token's email in
// the request context; handlers and RequireAdmin read it from there. A
// missing header answers 401, a bad or expired token 403.
func (m *Middlewares) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get(constvars.HeaderAuthorization)
		if authHeader == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenInvalidOrExpired(nil))
			return
		}

		email, err := utils.ParseAccessJWT(parts[1], m.InternalConfig.JWT.Secret)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenInvalidOrExpired(err))
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_DECODED_EMAIL_KEY, email)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdmin must run after Authenticate; it re-reads the caller's user
// document so a stale token cannot outlive a role demotion.
func (m *Middlewares) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		decodedEmail, ok := r.Context().Value(constvars.CONTEXT_DECODED_EMAIL_KEY).(string)
		if !ok || decodedEmail == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrIdentityMissing(nil))
			return
		}

		user, err := m.UserRepository.FindByEmail(r.Context(), decodedEmail)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}
		if user == nil || user.Role != constvars.UserRoleAdmin {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrNotAdmin(nil))
			return
		}

		next.ServeHTTP(w, r)
	})
}
