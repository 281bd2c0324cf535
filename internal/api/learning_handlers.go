package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nurania/nurania-go/internal/challenge"
	"github.com/nurania/nurania-go/internal/models"
	"github.com/nurania/nurania-go/internal/tracker"
)

// handleToggleLearningStep flips one step's completion. Completing a
// step counts toward the daily learning challenge; un-completing does
// not take anything back.
func (s *Server) handleToggleLearningStep(w http.ResponseWriter, r *http.Request) {
	user := getUserFromContext(r)
	var payload struct {
		PathID string `json:"pathId"`
		StepID string `json:"stepId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.PathID == "" || payload.StepID == "" {
		RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	progress := tracker.NewLearningProgress(s.store, user.ID)
	completed := progress.ToggleStep(payload.PathID, payload.StepID)
	if completed {
		challenge.NewEngine(s.store, user.ID).LogAction(models.ChallengeLearningStep, 1)
	}
	RespondWithJSON(w, http.StatusOK, map[string]bool{"completed": completed})
}

func (s *Server) handleGetPathProgress(w http.ResponseWriter, r *http.Request) {
	user := getUserFromContext(r)
	pathID := chi.URLParam(r, "pathID")
	totalSteps := queryInt(r, "total_steps")

	progress := tracker.NewLearningProgress(s.store, user.ID)
	RespondWithJSON(w, http.StatusOK, map[string]int{
		"percent": progress.PathPercent(pathID, totalSteps),
	})
}

func (s *Server) handleSaveLastLearningPath(w http.ResponseWriter, r *http.Request) {
	user := getUserFromContext(r)
	var payload models.LastLearningPath
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.TopicID == "" {
		RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	tracker.SaveLastLearningPath(s.store, user.ID, payload)
	w.WriteHeader(http.StatusOK)
}
