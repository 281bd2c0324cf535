package api

import (
	"encoding/json"
	"net/http"

	"github.com/nurania/nurania-go/internal/challenge"
	"github.com/nurania/nurania-go/internal/models"
)

// handleGetChallenges returns today's challenge set. Day rollovers and
// streak transitions happen here, at load time.
func (s *Server) handleGetChallenges(w http.ResponseWriter, r *http.Request) {
	user := getUserFromContext(r)
	RespondWithJSON(w, http.StatusOK, challenge.NewEngine(s.store, user.ID).Load())
}

// handleLogChallengeAction reports a user action against today's set.
// Most actions are logged implicitly by the endpoints that perform them;
// this route exists for action types the server cannot observe itself.
func (s *Server) handleLogChallengeAction(w http.ResponseWriter, r *http.Request) {
	user := getUserFromContext(r)
	var payload struct {
		Type   models.ChallengeType `json:"type"`
		Amount int                  `json:"amount"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.Type == "" {
		RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if payload.Amount < 1 {
		payload.Amount = 1
	}

	state := challenge.NewEngine(s.store, user.ID).LogAction(payload.Type, payload.Amount)
	RespondWithJSON(w, http.StatusOK, state)
}
