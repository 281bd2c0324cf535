package api

import (
	"encoding/json"
	"net/http"

	"github.com/nurania/nurania-go/internal/models"
	"github.com/nurania/nurania-go/internal/tracker"
)

func (s *Server) handleGetSettings(w http.ResponseWriter, r *http.Request) {
	user := getUserFromContext(r)
	RespondWithJSON(w, http.StatusOK, tracker.GetSettings(s.store, user.ID))
}

// handleUpdateSettings saves the notification preferences and re-arms
// the reminder timer under the new rules.
func (s *Server) handleUpdateSettings(w http.ResponseWriter, r *http.Request) {
	user := getUserFromContext(r)
	var payload models.Settings
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if payload.NotificationSound != "default" && payload.NotificationSound != "adhan" {
		RespondWithError(w, http.StatusBadRequest, "Notification sound must be 'default' or 'adhan'")
		return
	}

	tracker.SaveSettings(s.store, user.ID, payload)
	s.notifier.UpdateSettings(payload)
	RespondWithJSON(w, http.StatusOK, payload)
}
