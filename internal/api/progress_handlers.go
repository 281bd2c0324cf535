package api

import (
	"encoding/json"
	"net/http"

	"github.com/nurania/nurania-go/internal/challenge"
	"github.com/nurania/nurania-go/internal/models"
	"github.com/nurania/nurania-go/internal/tracker"
)

// lastReadTracker returns the long-lived debounced tracker for a user,
// creating it on first use. One tracker per user, because it owns the
// pending write timer.
func (s *Server) lastReadTracker(userID int64) *tracker.LastRead {
	s.lastReadMu.Lock()
	defer s.lastReadMu.Unlock()
	lr, ok := s.lastRead[userID]
	if !ok {
		lr = tracker.NewLastRead(s.store, userID)
		s.lastRead[userID] = lr
	}
	return lr
}

// handleToggleAyahRead flips the read state of one ayah. Newly marking
// an ayah as read counts toward the daily reading challenge.
func (s *Server) handleToggleAyahRead(w http.ResponseWriter, r *http.Request) {
	user := getUserFromContext(r)
	var payload struct {
		SurahNumber int `json:"surahNumber"`
		AyahNumber  int `json:"ayahNumber"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.SurahNumber < 1 || payload.AyahNumber < 1 {
		RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	progress := tracker.NewReadProgress(s.store, user.ID)
	read := progress.Toggle(payload.SurahNumber, payload.AyahNumber)
	if read {
		challenge.NewEngine(s.store, user.ID).LogAction(models.ChallengeReadVerses, 1)
	}

	RespondWithJSON(w, http.StatusOK, map[string]bool{"read": read})
}

func (s *Server) handleMarkSurahAs(w http.ResponseWriter, r *http.Request) {
	user := getUserFromContext(r)
	surah, err := urlParamInt(r, "surahNumber")
	if err != nil {
		RespondWithError(w, http.StatusBadRequest, "Invalid surah number")
		return
	}
	var payload struct {
		Status     string `json:"status"` // "read" or "unread"
		TotalAyahs int    `json:"totalAyahs"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	progress := tracker.NewReadProgress(s.store, user.ID)
	switch payload.Status {
	case "read":
		if payload.TotalAyahs < 1 {
			RespondWithError(w, http.StatusBadRequest, "totalAyahs is required to mark a surah as read")
			return
		}
		progress.MarkAllRead(surah, payload.TotalAyahs)
	case "unread":
		progress.MarkAllUnread(surah)
	default:
		RespondWithError(w, http.StatusBadRequest, "Status must be 'read' or 'unread'")
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (s *Server) handleGetSurahProgress(w http.ResponseWriter, r *http.Request) {
	user := getUserFromContext(r)
	surah, err := urlParamInt(r, "surahNumber")
	if err != nil {
		RespondWithError(w, http.StatusBadRequest, "Invalid surah number")
		return
	}
	totalAyahs := queryInt(r, "total_ayahs")

	progress := tracker.NewReadProgress(s.store, user.ID)
	RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"read_ayahs": progress.ReadAyahs(surah),
		"percent":    progress.Percent(surah, totalAyahs),
	})
}

// handleSetLastRead records the verse currently on screen. Writes are
// debounced inside the tracker, so rapid scrolling does not hammer the
// database.
func (s *Server) handleSetLastRead(w http.ResponseWriter, r *http.Request) {
	user := getUserFromContext(r)
	var payload models.LastReadPosition
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.SurahNumber < 1 || payload.AyahNumber < 1 {
		RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	s.lastReadTracker(user.ID).Set(payload.SurahNumber, payload.AyahNumber)
	w.WriteHeader(http.StatusAccepted)
}

func (s *Server) handleGetLastRead(w http.ResponseWriter, r *http.Request) {
	user := getUserFromContext(r)
	position := s.lastReadTracker(user.ID).Get()
	if position == nil {
		RespondWithJSON(w, http.StatusOK, nil)
		return
	}
	RespondWithJSON(w, http.StatusOK, position)
}
