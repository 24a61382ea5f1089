package auth

import (
	"log/slog"
	"net/http"
	"strings"
)

// ResolveSubjectMiddleware attaches the caller's Subject to the request
// context when a valid bearer token is present. A missing or invalid token
// does not fail the request: the subject stays nil and every read endpoint
// degrades to its anonymous result, while mutations reject later in the
// service layer. This asymmetry is the same on every endpoint.
func ResolveSubjectMiddleware(verifier VerifierInterface) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				next.ServeHTTP(w, r)
				return
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString == authHeader {
				next.ServeHTTP(w, r)
				return
			}

			subject, err := verifier.VerifySessionToken(tokenString)
			if err != nil {
				slog.Debug("session token rejected, continuing as anonymous", "error", err)
				next.ServeHTTP(w, r)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithSubject(r.Context(), subject)))
		})
	}
}
