package api

import (
	"github.com/gorilla/mux"

	"github.com/lucianoaf8/InnSight/internal/api/recovery"
	"github.com/lucianoaf8/InnSight/internal/auth"
	"github.com/lucianoaf8/InnSight/internal/services"
	"github.com/lucianoaf8/InnSight/internal/store"
)

// NewRouter creates the HTTP router with all API routes.
func NewRouter(st store.Store, az auth.Authorizer, historyDays int) *mux.Router {
	router := mux.NewRouter()

	// Global middlewares
	router.Use(recovery.Middleware)

	// Domain services
	journalSvc := services.NewJournalService(st)
	intentionSvc := services.NewIntentionService(st)

	// Handlers
	healthHandler := NewHealthHandler(st)
	moodHandler := NewMoodHandler(journalSvc, az, historyDays)
	intentionHandler := NewIntentionHandler(intentionSvc, az)

	// Health endpoints
	router.HandleFunc("/api/ping", healthHandler.Ping).Methods("GET")
	router.HandleFunc("/api/health", healthHandler.CheckHealth).Methods("GET")

	// Mood endpoints
	router.HandleFunc("/api/log-mood", moodHandler.LogMood).Methods("POST")
	router.HandleFunc("/api/entries", moodHandler.ListEntries).Methods("GET")
	router.HandleFunc("/api/dashboard", moodHandler.Dashboard).Methods("GET")

	// Intention endpoints
	router.HandleFunc("/api/intention/today", intentionHandler.GetToday).Methods("GET")
	router.HandleFunc("/api/save-intention", intentionHandler.Save).Methods("POST")

	return router
}
