package api

import (
	"log"
	"net/http"

	"github.com/nurania/nurania-go/internal/tracker"
)

// handleGetHomePageData assembles everything the home page shows in one
// round trip. Upstream failures degrade individual sections instead of
// failing the whole page.
func (s *Server) handleGetHomePageData(w http.ResponseWriter, r *http.Request) {
	user := getUserFromContext(r)
	ctx := r.Context()

	lastRead := s.lastReadTracker(user.ID).Get()
	if lastRead != nil && lastRead.SurahName == "" {
		if index, err := s.quran.AllSurahs(ctx); err == nil && lastRead.SurahNumber >= 1 && lastRead.SurahNumber <= len(index) {
			lastRead.SurahName = index[lastRead.SurahNumber-1].SurahName
		}
	}

	hijriDate, err := s.aladhan.HijriDate(ctx)
	if err != nil {
		log.Printf("Hijri date unavailable: %v", err)
		hijriDate = "Hijri date unavailable"
	}

	payload := map[string]interface{}{
		"last_read":          lastRead,
		"last_learning_path": tracker.GetLastLearningPath(s.store, user.ID),
		"last_viewed_hadith": tracker.GetLastViewedHadith(s.store, user.ID),
		"hijri_date":         hijriDate,
	}

	if verse, err := s.quran.RandomVerse(ctx); err == nil {
		payload["verse_of_the_day"] = verse
	} else {
		log.Printf("Verse of the day unavailable: %v", err)
	}

	RespondWithJSON(w, http.StatusOK, payload)
}
