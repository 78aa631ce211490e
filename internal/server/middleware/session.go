// Package middleware provides HTTP middleware that binds requests to interview sessions.
package middleware

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jonathan/hiring-assistant/internal/session"
)

// ContextKey is a typed key for context values to avoid collisions.
type ContextKey string

// sessionKey is the context key for storing the request's session.
const sessionKey ContextKey = "session"

// CookieName is the cookie carrying the session ID.
const CookieName = "hiring_assistant_session"

// SessionStore looks up and creates sessions.
type SessionStore interface {
	Get(id string) (*session.Session, bool)
	Create() *session.Session
}

// Sessions creates middleware that resolves the session cookie and adds the session
// to the request context. A missing, unknown, or expired cookie starts a new session.
func Sessions(store SessionStore, secure bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var sess *session.Session
			if cookie, err := r.Cookie(CookieName); err == nil && cookie.Value != "" {
				sess, _ = store.Get(cookie.Value)
			}

			if sess == nil {
				sess = store.Create()
				SetCookie(w, sess.ID(), secure)
			}

			ctx := context.WithValue(r.Context(), sessionKey, sess)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetSession extracts the session from the request context.
func GetSession(r *http.Request) (*session.Session, error) {
	sess, ok := r.Context().Value(sessionKey).(*session.Session)
	if !ok || sess == nil {
		return nil, fmt.Errorf("session not found in request context")
	}
	return sess, nil
}

// WithSession returns a copy of ctx carrying sess (for testing purposes).
func WithSession(ctx context.Context, sess *session.Session) context.Context {
	return context.WithValue(ctx, sessionKey, sess)
}

// SetCookie writes the session cookie.
func SetCookie(w http.ResponseWriter, id string, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearCookie expires the session cookie in the browser.
func ClearCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
