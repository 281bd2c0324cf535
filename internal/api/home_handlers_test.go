package api_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/nurania/nurania-go/internal/config"
	"github.com/nurania/nurania-go/internal/models"
	"github.com/nurania/nurania-go/internal/store"
	"github.com/nurania/nurania-go/internal/testutil"
)

// TestHomeToleratesCorruptLastRead covers a stored position with a surah
// number outside 1..114. The home page must degrade the section, not 500.
func TestHomeToleratesCorruptLastRead(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/surah.json" {
			fmt.Fprint(w, `[{"surahName":"Al-Fatiha","surahNameArabic":"الفاتحة","surahNameTranslation":"The Opening","revelationPlace":"Mecca","totalAyah":7}]`)
			return
		}
		http.NotFound(w, r)
	}))
	defer upstream.Close()

	cfg := &config.Config{}
	cfg.Providers.QuranBaseURL = upstream.URL
	server, db := testutil.SetupTestServerWithConfig(t, cfg)
	router := server.Router()
	cookie := testutil.GetAuthCookie(t, server, "homer", "password123", "user")

	st := store.New(db)
	user, err := st.GetUserByUsername("homer")
	if err != nil {
		t.Fatalf("failed to look up test user: %v", err)
	}
	st.SetJSON(user.ID, "nuraniaLastReadPosition", models.LastReadPosition{SurahNumber: 0, AyahNumber: 1})

	rr := doJSON(t, router, cookie, "GET", "/api/home", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", rr.Code, rr.Body.String())
	}

	var payload struct {
		LastRead *models.LastReadPosition `json:"last_read"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &payload); err != nil {
		t.Fatalf("failed to decode home payload: %v", err)
	}
	if payload.LastRead == nil || payload.LastRead.SurahName != "" {
		t.Errorf("last_read = %+v, want the stored position with no resolved name", payload.LastRead)
	}
}
