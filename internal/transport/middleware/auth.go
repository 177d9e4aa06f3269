package middleware

import (
	"net/http"
	"strings"

	"github.com/heartmarshall/admincatalog-backend/pkg/ctxutil"
)

type tokenValidator interface {
	ValidateAccessToken(token string) (subject string, role string, err error)
}

// Auth rejects requests without a valid bearer token carrying role. The
// token subject is stored in the request context.
func Auth(validator tokenValidator, role string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				writeError(w, http.StatusUnauthorized, "unauthorized")
				return
			}
			subject, tokenRole, err := validator.ValidateAccessToken(token)
			if err != nil {
				writeError(w, http.StatusUnauthorized, "unauthorized")
				return
			}
			if tokenRole != role {
				writeError(w, http.StatusForbidden, "forbidden")
				return
			}
			ctx := ctxutil.WithSubject(r.Context(), subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func extractBearerToken(r *http.Request) string {
	scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
