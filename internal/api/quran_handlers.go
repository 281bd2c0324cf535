package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/nurania/nurania-go/internal/providers/quran"
)

// urlParamInt extracts a positive integer URL parameter.
func urlParamInt(r *http.Request, name string) (int, error) {
	value, err := strconv.Atoi(chi.URLParam(r, name))
	if err != nil || value < 1 {
		return 0, errors.New("invalid " + name)
	}
	return value, nil
}

// queryInt reads an integer query parameter, 0 when absent or invalid.
func queryInt(r *http.Request, name string) int {
	value, err := strconv.Atoi(r.URL.Query().Get(name))
	if err != nil {
		return 0
	}
	return value
}

func (s *Server) handleListSurahs(w http.ResponseWriter, r *http.Request) {
	surahs, err := s.quran.AllSurahs(r.Context())
	if err != nil {
		RespondWithError(w, http.StatusBadGateway, "Could not load the surah list. Please try again.")
		return
	}
	RespondWithJSON(w, http.StatusOK, surahs)
}

func (s *Server) handleGetSurah(w http.ResponseWriter, r *http.Request) {
	number, err := urlParamInt(r, "surahNumber")
	if err != nil {
		RespondWithError(w, http.StatusBadRequest, "Invalid surah number")
		return
	}
	surah, err := s.quran.Surah(r.Context(), number)
	if err != nil {
		RespondWithError(w, http.StatusBadGateway, "Could not load the surah. Please try again.")
		return
	}
	RespondWithJSON(w, http.StatusOK, surah)
}

func (s *Server) handleGetVerse(w http.ResponseWriter, r *http.Request) {
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
	verse, err := s.quran.Verse(r.Context(), surah, ayah)
	if err != nil {
		if errors.Is(err, quran.ErrNotFound) {
			RespondWithError(w, http.StatusNotFound, "That verse does not exist.")
			return
		}
		RespondWithError(w, http.StatusBadGateway, "Could not load the verse. Please try again.")
		return
	}
	RespondWithJSON(w, http.StatusOK, verse)
}

func (s *Server) handleGetTafsir(w http.ResponseWriter, r *http.Request) {
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
	result, err := s.quran.Tafsir(r.Context(), surah, ayah)
	if err != nil {
		RespondWithError(w, http.StatusBadGateway, "Could not load the tafsir. Please try again.")
		return
	}
	RespondWithJSON(w, http.StatusOK, result)
}

func (s *Server) handleSearchVerses(w http.ResponseWriter, r *http.Request) {
	results, err := s.quran.Search(r.URL.Query().Get("q"))
	if err != nil {
		if errors.Is(err, quran.ErrNotReady) {
			RespondWithError(w, http.StatusServiceUnavailable, "Search is still preparing. Please try again in a moment.")
			return
		}
		RespondWithError(w, http.StatusInternalServerError, "Search failed")
		return
	}
	RespondWithJSON(w, http.StatusOK, results)
}

func (s *Server) handleGetRandomVerse(w http.ResponseWriter, r *http.Request) {
	verse, err := s.quran.RandomVerse(r.Context())
	if err != nil {
		RespondWithError(w, http.StatusBadGateway, "Could not load a verse. Please try again.")
		return
	}
	RespondWithJSON(w, http.StatusOK, verse)
}
