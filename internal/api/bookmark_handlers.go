package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/nurania/nurania-go/internal/challenge"
	"github.com/nurania/nurania-go/internal/models"
	"github.com/nurania/nurania-go/internal/tracker"
)

func (s *Server) handleListVerseBookmarks(w http.ResponseWriter, r *http.Request) {
	user := getUserFromContext(r)
	RespondWithJSON(w, http.StatusOK, tracker.NewVerseBookmarks(s.store, user.ID).List())
}

// handleAddVerseBookmark stores a verse snapshot. The first bookmark of
// a verse counts toward the daily bookmark challenge; re-bookmarking the
// same verse is a no-op.
func (s *Server) handleAddVerseBookmark(w http.ResponseWriter, r *http.Request) {
	user := getUserFromContext(r)
	var payload models.BookmarkedVerse
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.SurahNumber < 1 || payload.AyahNumber < 1 {
		RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	bookmarks := tracker.NewVerseBookmarks(s.store, user.ID)
	if bookmarks.Add(payload) {
		challenge.NewEngine(s.store, user.ID).LogAction(models.ChallengeBookmark, 1)
	}
	RespondWithJSON(w, http.StatusCreated, bookmarks.List())
}

func (s *Server) handleRemoveVerseBookmark(w http.ResponseWriter, r *http.Request) {
	user := getUserFromContext(r)
	surah, err := urlParamInt(r, "surahNumber")
	if err != nil {
		RespondWithError(w, http.StatusBadRequest, "Invalid surah number")
		return
	}
	ayah, err := urlParamInt(r, "ayahNumber")
	if err != nil {
		RespondWithError(w, http.StatusBadRequest, "Invalid ayah number")
		return
	}

	bookmarks := tracker.NewVerseBookmarks(s.store, user.ID)
	bookmarks.Remove(surah, ayah)
	RespondWithJSON(w, http.StatusOK, bookmarks.List())
}

func (s *Server) handleListHadithBookmarks(w http.ResponseWriter, r *http.Request) {
	user := getUserFromContext(r)
	RespondWithJSON(w, http.StatusOK, tracker.NewHadithBookmarks(s.store, user.ID).List())
}

func (s *Server) handleAddHadithBookmark(w http.ResponseWriter, r *http.Request) {
	user := getUserFromContext(r)
	var payload models.Hadith
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.ID < 1 {
		RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	bookmarks := tracker.NewHadithBookmarks(s.store, user.ID)
	bookmarks.Add(payload)
	RespondWithJSON(w, http.StatusCreated, bookmarks.List())
}

func (s *Server) handleRemoveHadithBookmark(w http.ResponseWriter, r *http.Request) {
	user := getUserFromContext(r)
	hadithID, err := strconv.ParseInt(chi.URLParam(r, "hadithID"), 10, 64)
	if err != nil || hadithID < 1 {
		RespondWithError(w, http.StatusBadRequest, "Invalid hadith id")
		return
	}

	bookmarks := tracker.NewHadithBookmarks(s.store, user.ID)
	bookmarks.Remove(hadithID)
	RespondWithJSON(w, http.StatusOK, bookmarks.List())
}
