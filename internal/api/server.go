// It defines the API server, sets up the routes (endpoints)
// using chi, and links them to the handler functions.

package api

import (
	"database/sql"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/nurania/nurania-go/internal/assistant"
	"github.com/nurania/nurania-go/internal/core"
	"github.com/nurania/nurania-go/internal/notifier"
	"github.com/nurania/nurania-go/internal/providers/aladhan"
	"github.com/nurania/nurania-go/internal/providers/hadith"
	"github.com/nurania/nurania-go/internal/providers/quran"
	"github.com/nurania/nurania-go/internal/store"
	"github.com/nurania/nurania-go/internal/tracker"
)

// Server holds the dependencies for our API.
type Server struct {
	app       *core.App
	db        *sql.DB
	store     *store.Store
	quran     *quran.Provider
	hadith    *hadith.Provider
	aladhan   *aladhan.Provider
	assistant *assistant.Client
	notifier  *notifier.Notifier

	// lastRead owns the per-user debounced last-read trackers. They
	// are long-lived because each one carries a pending write timer.
	lastReadMu sync.Mutex
	lastRead   map[int64]*tracker.LastRead
}

// Store returns the store instance.
func (s *Server) Store() *store.Store {
	return s.store
}

// Quran returns the Quran provider, shared with the job layer.
func (s *Server) Quran() *quran.Provider {
	return s.quran
}

// NewServer creates a new Server instance.
func NewServer(app *core.App) *Server {
	cfg := app.Config()
	return &Server{
		app:       app,
		db:        app.DB(),
		store:     store.New(app.DB()),
		quran:     quran.New(cfg.Providers.QuranBaseURL),
		hadith:    hadith.New(cfg.Providers.HadithBaseURL, cfg.Providers.HadithAPIKey),
		aladhan:   aladhan.New(cfg.Providers.AladhanBaseURL),
		assistant: assistant.New(cfg.Assistant.BaseURL, cfg.Assistant.APIKey, cfg.Assistant.Model),
		notifier:  notifier.New(app.WsHub()),
		lastRead:  make(map[int64]*tracker.LastRead),
	}
}

// Router sets up and returns the main router for the application.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)    // Logs requests to the console
	r.Use(middleware.Recoverer) // Recovers from panics
	r.Use(middleware.Timeout(60 * time.Second))

	r.Post("/api/users/login", s.handleLogin)
	r.Get("/api/version", s.handleGetVersion)

	r.Group(func(r chi.Router) {
		r.Use(s.AuthMiddleware)

		r.Post("/api/users/logout", s.handleLogout)
		r.Get("/api/users/me", s.handleGetMe)

		r.Route("/api", func(r chi.Router) {
			r.Get("/home", s.handleGetHomePageData)

			// Quran content
			r.Get("/quran/surahs", s.handleListSurahs)
			r.Get("/quran/surahs/{surahNumber}", s.handleGetSurah)
			r.Get("/quran/surahs/{surahNumber}/verses/{ayahNumber}", s.handleGetVerse)
			r.Get("/quran/tafsir/{surahNumber}/{ayahNumber}", s.handleGetTafsir)
			r.Get("/quran/search", s.handleSearchVerses)
			r.Get("/quran/random", s.handleGetRandomVerse)

			// Read progress
			r.Post("/progress/toggle", s.handleToggleAyahRead)
			r.Post("/progress/surahs/{surahNumber}/mark-all-as", s.handleMarkSurahAs)
			r.Get("/progress/surahs/{surahNumber}", s.handleGetSurahProgress)
			r.Get("/progress/last-read", s.handleGetLastRead)
			r.Post("/progress/last-read", s.handleSetLastRead)

			// Bookmarks
			r.Get("/bookmarks/verses", s.handleListVerseBookmarks)
			r.Post("/bookmarks/verses", s.handleAddVerseBookmark)
			r.Delete("/bookmarks/verses/{surahNumber}/{ayahNumber}", s.handleRemoveVerseBookmark)
			r.Get("/bookmarks/hadiths", s.handleListHadithBookmarks)
			r.Post("/bookmarks/hadiths", s.handleAddHadithBookmark)
			r.Delete("/bookmarks/hadiths/{hadithID}", s.handleRemoveHadithBookmark)

			// Learning paths
			r.Post("/learning/toggle", s.handleToggleLearningStep)
			r.Get("/learning/paths/{pathID}", s.handleGetPathProgress)
			r.Put("/learning/last-path", s.handleSaveLastLearningPath)

			// Daily challenges
			r.Get("/challenges", s.handleGetChallenges)
			r.Post("/challenges/log", s.handleLogChallengeAction)

			// Hadith
			r.Get("/hadith/books", s.handleListHadithBooks)
			r.Get("/hadith/books/{bookSlug}/chapters", s.handleListHadithChapters)
			r.Get("/hadith/search", s.handleSearchHadiths)
			r.Get("/hadith/notes/{hadithID}", s.handleGetHadithNote)
			r.Put("/hadith/notes/{hadithID}", s.handleSaveHadithNote)
			r.Put("/hadith/last-viewed", s.handleSaveLastViewedHadith)

			// Prayer times
			r.Get("/prayer/times", s.handleGetPrayerTimes)
			r.Get("/prayer/qibla", s.handleGetQiblaDirection)

			// AI assistant
			r.Post("/assistant/tafsir", s.handleAssistantTafsir)
			r.Post("/assistant/tajweed", s.handleAssistantTajweed)

			// Recitation practice history
			r.Get("/recitations", s.handleListRecitations)
			r.Post("/recitations", s.handleAddRecitation)
			r.Delete("/recitations", s.handleClearRecitations)

			// Settings
			r.Get("/settings", s.handleGetSettings)
			r.Put("/settings", s.handleUpdateSettings)

			// Admin Job Triggers
			r.Route("/admin", func(r chi.Router) {
				r.Use(s.AdminOnlyMiddleware)

				r.Get("/jobs/status", s.handleGetAdminJobsStatus)
				r.Post("/jobs/run", s.handleRunAdminJob)
			})
		})
	})

	// WebSocket route
	r.Get("/ws/progress", func(w http.ResponseWriter, r *http.Request) {
		s.app.WsHub().ServeWs(w, r)
	})

	r.Get("/api/health", func(w http.ResponseWriter, r *http.Request) {
		if err := s.db.Ping(); err != nil {
			RespondWithError(w, http.StatusServiceUnavailable, "Database connection failed")
			return
		}
		RespondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	return r
}

func (s *Server) handleGetVersion(w http.ResponseWriter, r *http.Request) {
	RespondWithJSON(w, http.StatusOK, map[string]string{"version": s.app.Version()})
}

// Shutdown flushes every pending debounced write. Call before the
// process exits so the freshest last-read positions reach the database.
func (s *Server) Shutdown() {
	s.lastReadMu.Lock()
	defer s.lastReadMu.Unlock()
	for _, lr := range s.lastRead {
		lr.Flush()
	}
}
