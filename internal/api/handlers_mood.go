package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/lucianoaf8/InnSight/internal/api/respond"
	"github.com/lucianoaf8/InnSight/internal/api/validate"
	"github.com/lucianoaf8/InnSight/internal/auth"
	"github.com/lucianoaf8/InnSight/internal/model"
	"github.com/lucianoaf8/InnSight/internal/services"
	"github.com/lucianoaf8/InnSight/pkg/journal"
)

// MoodHandler handles mood-entry HTTP requests (thin transport layer).
type MoodHandler struct {
	svc        *services.JournalService
	authorizer auth.Authorizer

	// defaultHistoryDays bounds the dashboard history unless the caller
	// asks for everything.
	defaultHistoryDays int
}

func NewMoodHandler(svc *services.JournalService, az auth.Authorizer, historyDays int) *MoodHandler {
	return &MoodHandler{svc: svc, authorizer: az, defaultHistoryDays: historyDays}
}

// LogMood handles POST /api/log-mood.
func (h *MoodHandler) LogMood(w http.ResponseWriter, r *http.Request) {
	user, ok := h.authorize(w, r)
	if !ok {
		return
	}

	var req struct {
		Date    string `json:"date"`
		Time    string `json:"time"`
		Period  string `json:"period"`
		Emojis  string `json:"emojis"`
		Journal string `json:"journal"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}

	// Fill server-side defaults before validating, mirroring the client
	// behavior of stamping entries at submit time.
	if req.Date == "" {
		req.Date = journal.Today()
	}
	if req.Time == "" {
		req.Time = journal.Now()
	}
	if err := validate.LogMood(req.Date, req.Time, req.Period, req.Emojis, req.Journal); err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}

	_, err := h.svc.LogMood(r.Context(), model.LogMoodRequest{
		UserID:  user.UserID,
		Date:    req.Date,
		Time:    req.Time,
		Period:  req.Period,
		Emojis:  req.Emojis,
		Journal: req.Journal,
	})
	if err != nil {
		respond.WriteInternalError(w, err.Error())
		return
	}
	respond.WriteJSON(w, http.StatusCreated, map[string]string{"message": "Mood logged"})
}

// ListEntries handles GET /api/entries.
func (h *MoodHandler) ListEntries(w http.ResponseWriter, r *http.Request) {
	user, ok := h.authorize(w, r)
	if !ok {
		return
	}
	entries, err := h.svc.ListEntries(r.Context(), user.UserID)
	if err != nil {
		respond.WriteInternalError(w, err.Error())
		return
	}
	respond.WriteJSON(w, http.StatusOK, entries)
}

// Dashboard handles GET /api/dashboard?days=N&all=true.
func (h *MoodHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	user, ok := h.authorize(w, r)
	if !ok {
		return
	}

	days := h.defaultHistoryDays
	if v := r.URL.Query().Get("days"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			respond.WriteBadRequest(w, "days must be a non-negative integer")
			return
		}
		days = n
	}
	showAll, _ := strconv.ParseBool(r.URL.Query().Get("all"))

	summary, err := h.svc.Dashboard(r.Context(), user.UserID, days, showAll)
	if err != nil {
		respond.WriteInternalError(w, err.Error())
		return
	}
	respond.WriteJSON(w, http.StatusOK, summary)
}

// authorize resolves the bearer token; missing credentials are 401 and
// rejected ones 403.
func (h *MoodHandler) authorize(w http.ResponseWriter, r *http.Request) (*auth.UserInfo, bool) {
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
