package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/nurania/nurania-go/internal/assistant"
	"github.com/nurania/nurania-go/internal/challenge"
	"github.com/nurania/nurania-go/internal/models"
	"github.com/nurania/nurania-go/internal/tracker"
)

func (s *Server) handleAssistantTafsir(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Query string `json:"query"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.Query == "" {
		RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	answer, err := s.assistant.Tafsir(r.Context(), payload.Query)
	if err != nil {
		respondAssistantError(w, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, map[string]string{"answer": answer})
}

// handleAssistantTajweed reviews a practiced recitation. A successful
// review is appended to the user's practice history and counts toward
// the daily practice challenge.
func (s *Server) handleAssistantTajweed(w http.ResponseWriter, r *http.Request) {
	user := getUserFromContext(r)
	var payload struct {
		SurahName   string `json:"surahName"`
		SurahNumber int    `json:"surahNumber"`
		AyahNumber  int    `json:"ayahNumber"`
		VerseArabic string `json:"verseArabic"`
		Recitation  string `json:"recitation"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.VerseArabic == "" || payload.Recitation == "" {
		RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	feedback, err := s.assistant.TajweedFeedback(r.Context(), payload.VerseArabic, payload.Recitation)
	if err != nil {
		respondAssistantError(w, err)
		return
	}

	record := models.RecitationRecord{
		ID:          newRecordID(),
		SurahName:   payload.SurahName,
		SurahNumber: payload.SurahNumber,
		AyahNumber:  payload.AyahNumber,
		VerseArabic: payload.VerseArabic,
		Feedback:    *feedback,
		Timestamp:   nowTimestamp(),
	}
	tracker.NewRecitationHistory(s.store, user.ID).Add(record)
	challenge.NewEngine(s.store, user.ID).LogAction(models.ChallengePracticeAyah, 1)

	RespondWithJSON(w, http.StatusOK, record)
}

func respondAssistantError(w http.ResponseWriter, err error) {
	if errors.Is(err, assistant.ErrDisabled) {
		RespondWithError(w, http.StatusServiceUnavailable, "The assistant is not configured on this server.")
		return
	}
	RespondWithError(w, http.StatusBadGateway, "The assistant did not respond. Please try again.")
}
