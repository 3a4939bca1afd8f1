// Package auth implements the editor session gate.
//
// The catalog is world-readable; mutating it requires an editor session.
// Editors sign in once with the shared editor key (stored as a bcrypt hash
// in config), which sets a signed session cookie. There are no user
// accounts or roles beyond "holds an editor session".
package auth

import (
	"context"
	"net/http"

	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const (
	editorKey = "is_editor"
)

type ctxKey string

const editorCtxKey ctxKey = "editor"

// SessionManager owns the cookie store and the editor key check.
type SessionManager struct {
	store       *sessions.CookieStore
	sessionName string
	keyHash     []byte
	log         *zap.Logger
}

// NewSessionManager builds the session manager. sessionKey signs cookies;
// when empty a random per-process key is generated (sessions then die on
// restart, which is acceptable for dev). editorKeyHash is the bcrypt hash
// of the shared editor key; when empty, sign-in always fails and the
// catalog is effectively read-only.
func NewSessionManager(sessionKey, sessionName, domain string, secure bool, editorKeyHash string, logger *zap.Logger) *SessionManager {
	key := []byte(sessionKey)
	if len(key) == 0 {
		logger.Warn("no session key configured; generating a per-process key")
		key = securecookie.GenerateRandomKey(32)
	} else if len(key) < 32 {
		logger.Warn("session key is short; 32+ chars recommended",
			zap.Int("length", len(key)))
	}

	store := sessions.NewCookieStore(key)
	store.Options = &sessions.Options{
		Domain:   domain,
		Path:     "/",
		MaxAge:   86400 * 7,
		Secure:   secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}

	return &SessionManager{
		store:       store,
		sessionName: sessionName,
		keyHash:     []byte(editorKeyHash),
		log:         logger,
	}
}

// SignIn checks the presented editor key against the configured hash and,
// on success, marks the session as an editor session. Returns false when
// the key is wrong or no key is configured.
func (m *SessionManager) SignIn(w http.ResponseWriter, r *http.Request, key string) bool {
	if len(m.keyHash) == 0 {
		m.log.Warn("editor sign-in attempted but no editor key is configured")
		return false
	}
	if err := bcrypt.CompareHashAndPassword(m.keyHash, []byte(key)); err != nil {
		return false
	}

	sess, _ := m.store.Get(r, m.sessionName)
	sess.Values[editorKey] = true
	if err := m.store.Save(r, w, sess); err != nil {
		m.log.Error("session save failed", zap.Error(err))
		return false
	}
	return true
}

// SignOut clears the editor session.
func (m *SessionManager) SignOut(w http.ResponseWriter, r *http.Request) {
	sess, _ := m.store.Get(r, m.sessionName)
	sess.Values = map[any]any{}
	sess.Options.MaxAge = -1
	if err := m.store.Save(r, w, sess); err != nil {
		m.log.Error("session clear failed", zap.Error(err))
	}
}

// LoadSession marks the request context when it carries a valid editor
// session. It never blocks a request; gating happens in RequireEditor.
func (m *SessionManager) LoadSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, _ := m.store.Get(r, m.sessionName)
		if ok, _ := sess.Values[editorKey].(bool); ok {
			r = r.WithContext(context.WithValue(r.Context(), editorCtxKey, true))
		}
		next.ServeHTTP(w, r)
	})
}

// IsEditor reports whether the request carries an editor session
// (set by LoadSession).
func IsEditor(r *http.Request) bool {
	ok, _ := r.Context().Value(editorCtxKey).(bool)
	return ok
}

// RequireEditor rejects requests without an editor session with a JSON 401.
func (m *SessionManager) RequireEditor(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !IsEditor(r) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"message":"editor session required"}`))
			return
		}
		next.ServeHTTP(w, r)
	})
}

// WithTestEditor returns r with an editor session marked in its context.
// Handler tests use this instead of driving the cookie flow.
func WithTestEditor(r *http.Request) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), editorCtxKey, true))
}

// HashEditorKey produces the bcrypt hash to put in configuration.
func HashEditorKey(key string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(key), 12)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
