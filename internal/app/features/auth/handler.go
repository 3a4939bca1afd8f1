// internal/app/features/auth/handler.go
package auth

import (
	"encoding/json"
	"net/http"

	sysauth "github.com/dalemusser/resourcehub/internal/app/system/auth"
	"go.uber.org/zap"
)

// Handler serves the editor login and logout endpoints.
type Handler struct {
	SessionMgr *sysauth.SessionManager
	Log        *zap.Logger
}

// NewHandler constructs an auth Handler.
func NewHandler(sessionMgr *sysauth.SessionManager, logger *zap.Logger) *Handler {
	return &Handler{
		SessionMgr: sessionMgr,
		Log:        logger,
	}
}

type loginRequest struct {
	Key string `json:"key"`
}

// Login handles POST /auth/login.
//
// The body carries the shared editor key; on a match the session cookie
// is upgraded to an editor session. A wrong key gets the same 401 as a
// missing one, so the response does not reveal whether a key is set.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "invalid JSON body"})
		return
	}

	if !h.SessionMgr.SignIn(w, r, req.Key) {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "invalid editor key"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"editor": true})
}

// Logout handles POST /auth/logout. It always succeeds, even without an
// active session.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	h.SessionMgr.SignOut(w, r)
	writeJSON(w, http.StatusOK, map[string]bool{"editor": false})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
