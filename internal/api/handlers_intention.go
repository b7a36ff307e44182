package api

import (
	"encoding/json"
	"net/http"

	"github.com/lucianoaf8/InnSight/internal/api/respond"
	"github.com/lucianoaf8/InnSight/internal/api/validate"
	"github.com/lucianoaf8/InnSight/internal/auth"
	"github.com/lucianoaf8/InnSight/internal/services"
)

// IntentionHandler handles daily-intention HTTP requests.
type IntentionHandler struct {
	svc        *services.IntentionService
	authorizer auth.Authorizer
}

func NewIntentionHandler(svc *services.IntentionService, az auth.Authorizer) *IntentionHandler {
	return &IntentionHandler{svc: svc, authorizer: az}
}

// GetToday handles GET /api/intention/today. A day without a saved
// intention responds with the empty string, not an error.
func (h *IntentionHandler) GetToday(w http.ResponseWriter, r *http.Request) {
	user, ok := h.authorize(w, r)
	if !ok {
		return
	}
	text, err := h.svc.Today(r.Context(), user.UserID)
	if err != nil {
		respond.WriteInternalError(w, err.Error())
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]string{"intention": text})
}

// Save handles POST /api/save-intention.
func (h *IntentionHandler) Save(w http.ResponseWriter, r *http.Request) {
	user, ok := h.authorize(w, r)
	if !ok {
		return
	}

	var req struct {
		Intention string `json:"intention"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	if err := validate.Intention(req.Intention); err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}

	if err := h.svc.Save(r.Context(), user.UserID, req.Intention); err != nil {
		respond.WriteInternalError(w, err.Error())
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]string{"message": "Saved"})
}

func (h *IntentionHandler) authorize(w http.ResponseWriter, r *http.Request) (*auth.UserInfo, bool) {
	token, err := auth.ExtractBearerToken(r)
	if err != nil {
		respond.WriteUnauthorized(w, "Unauthorized")
		return nil, false
	}
	user, err := h.authorizer.Authorize(r.Context(), token)
	if err != nil {
		respond.WriteForbidden(w, "Invalid token")
		return nil, false
	}
	return user, true
}
