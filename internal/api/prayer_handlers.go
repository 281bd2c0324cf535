package api

import (
	"net/http"
	"strconv"

	"github.com/nurania/nurania-go/internal/tracker"
)

func coordinates(r *http.Request) (float64, float64, bool) {
	lat, errLat := strconv.ParseFloat(r.URL.Query().Get("lat"), 64)
	lon, errLon := strconv.ParseFloat(r.URL.Query().Get("lon"), 64)
	if errLat != nil || errLon != nil || lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return 0, 0, false
	}
	return lat, lon, true
}

// handleGetPrayerTimes also re-arms the user's reminder timer against
// the fresh schedule.
func (s *Server) handleGetPrayerTimes(w http.ResponseWriter, r *http.Request) {
	user := getUserFromContext(r)
	lat, lon, ok := coordinates(r)
	if !ok {
		RespondWithError(w, http.StatusBadRequest, "Valid lat and lon query parameters are required")
		return
	}

	times, err := s.aladhan.PrayerTimes(r.Context(), lat, lon)
	if err != nil {
		RespondWithError(w, http.StatusBadGateway, "Could not load prayer times. Please try again.")
		return
	}

	s.notifier.Update(times, tracker.GetSettings(s.store, user.ID))
	RespondWithJSON(w, http.StatusOK, times)
}

func (s *Server) handleGetQiblaDirection(w http.ResponseWriter, r *http.Request) {
	lat, lon, ok := coordinates(r)
	if !ok {
		RespondWithError(w, http.StatusBadRequest, "Valid lat and lon query parameters are required")
		return
	}

	direction, err := s.aladhan.QiblaDirection(r.Context(), lat, lon)
	if err != nil {
		RespondWithError(w, http.StatusBadGateway, "Could not determine the qibla direction. Please try again.")
		return
	}
	RespondWithJSON(w, http.StatusOK, map[string]float64{"direction": direction})
}
