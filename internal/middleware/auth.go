package middleware

import (
	"context"
	"net/http"

	"github.com/ayush/donepath/internal/auth"
)

// Sessions resolves a session id to a user id; 0 means absent or expired.
type Sessions interface {
	Get(ctx context.Context, sessionID string) (int64, error)
}

type userIDKey struct{}

// UserID returns the authenticated user id injected by RequireAuth.
func UserID(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userIDKey{}).(int64)
	return id, ok
}

// RequireAuth validates the session cookie and injects the user id into the
// request context. Unauthenticated requests are redirected to /login.
func RequireAuth(sessions Sessions) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(auth.SessionCookie)
			if err != nil {
				http.Redirect(w, r, "/login", http.StatusFound)
				return
			}

			userID, err := sessions.Get(r.Context(), cookie.Value)
			if err != nil || userID == 0 {
				http.Redirect(w, r, "/login", http.StatusFound)
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey{}, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
