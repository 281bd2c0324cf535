package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/nurania/nurania-go/internal/models"
	"github.com/nurania/nurania-go/internal/providers/hadith"
	"github.com/nurania/nurania-go/internal/tracker"
)

func (s *Server) handleListHadithBooks(w http.ResponseWriter, r *http.Request) {
	RespondWithJSON(w, http.StatusOK, hadith.Books)
}

func (s *Server) handleListHadithChapters(w http.ResponseWriter, r *http.Request) {
	chapters, err := s.hadith.Chapters(r.Context(), chi.URLParam(r, "bookSlug"))
	if err != nil {
		RespondWithError(w, http.StatusBadGateway, "Could not load the chapter list. Please try again.")
		return
	}
	RespondWithJSON(w, http.StatusOK, chapters)
}

func (s *Server) handleSearchHadiths(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, err := s.hadith.Search(r.Context(), hadith.SearchParams{
		BookSlug:  q.Get("book"),
		ChapterID: q.Get("chapter"),
		Query:     q.Get("q"),
		Number:    q.Get("number"),
		Status:    q.Get("status"),
		Page:      queryInt(r, "page"),
	})
	if err != nil {
		RespondWithError(w, http.StatusBadGateway, "Could not search hadiths. Please try again.")
		return
	}
	RespondWithJSON(w, http.StatusOK, page)
}

func hadithIDParam(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "hadithID"), 10, 64)
	return id, err == nil && id > 0
}

func (s *Server) handleGetHadithNote(w http.ResponseWriter, r *http.Request) {
	user := getUserFromContext(r)
	id, ok := hadithIDParam(r)
	if !ok {
		RespondWithError(w, http.StatusBadRequest, "Invalid hadith id")
		return
	}
	note := tracker.NewHadithNotes(s.store, user.ID).Get(id)
	RespondWithJSON(w, http.StatusOK, map[string]string{"note": note})
}

// handleSaveHadithNote stores a personal note. Saving a blank note
// removes the stored one.
func (s *Server) handleSaveHadithNote(w http.ResponseWriter, r *http.Request) {
	user := getUserFromContext(r)
	id, ok := hadithIDParam(r)
	if !ok {
		RespondWithError(w, http.StatusBadRequest, "Invalid hadith id")
		return
	}
	var payload struct {
		Note string `json:"note"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	tracker.NewHadithNotes(s.store, user.ID).Save(id, payload.Note)
	w.WriteHeader(http.StatusOK)
}

func (s *Server) handleSaveLastViewedHadith(w http.ResponseWriter, r *http.Request) {
	user := getUserFromContext(r)
	var payload models.LastViewedHadith
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.BookSlug == "" {
		RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	tracker.SaveLastViewedHadith(s.store, user.ID, payload)
	w.WriteHeader(http.StatusOK)
}
