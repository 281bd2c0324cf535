package api

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"time"

	"github.com/nurania/nurania-go/internal/models"
	"github.com/nurania/nurania-go/internal/tracker"
)

// newRecordID returns a random identifier for a practice record.
func newRecordID() string {
	b := make([]byte, 8)
	rand.Read(b)
	return hex.EncodeToString(b)
}

func nowTimestamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}

func (s *Server) handleListRecitations(w http.ResponseWriter, r *http.Request) {
	user := getUserFromContext(r)
	RespondWithJSON(w, http.StatusOK, tracker.NewRecitationHistory(s.store, user.ID).List())
}

// handleAddRecitation stores a practice record supplied by the client,
// for recitations reviewed outside the assistant flow.
func (s *Server) handleAddRecitation(w http.ResponseWriter, r *http.Request) {
	user := getUserFromContext(r)
	var payload models.RecitationRecord
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.SurahNumber < 1 || payload.AyahNumber < 1 {
		RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if payload.ID == "" {
		payload.ID = newRecordID()
	}
	if payload.Timestamp == "" {
		payload.Timestamp = nowTimestamp()
	}

	history := tracker.NewRecitationHistory(s.store, user.ID)
	history.Add(payload)
	RespondWithJSON(w, http.StatusCreated, history.List())
}

func (s *Server) handleClearRecitations(w http.ResponseWriter, r *http.Request) {
	user := getUserFromContext(r)
	tracker.NewRecitationHistory(s.store, user.ID).Clear()
	w.WriteHeader(http.StatusOK)
}
