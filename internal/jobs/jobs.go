package jobs

import (
	"log"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/nurania/nurania-go/internal/models"
	"github.com/nurania/nurania-go/internal/providers/quran"
)

const JobQuranCacheWarm = "quran-cache-warm"

// RegisterQuranCacheWarm registers the job that downloads the full Quran
// into the provider's cache so local search becomes available. Progress
// is streamed to connected clients through the websocket hub.
func RegisterQuranCacheWarm(jm *JobManager, provider *quran.Provider) {
	jm.Register(JobQuranCacheWarm, func(ctx JobContext) {
		hub := ctx.WsHub()
		err := provider.WarmCache(func(percent int) {
			hub.Broadcast(models.ProgressUpdate{
				JobID:    JobQuranCacheWarm,
				Message:  "Downloading Quran text for search...",
				Progress: float64(percent),
				Status:   "in_progress",
			})
		})
		if err != nil {
			log.Printf("Quran cache warm failed: %v", err)
			hub.Broadcast(models.ProgressUpdate{
				JobID:   JobQuranCacheWarm,
				Message: "Quran download failed. Search stays unavailable.",
				Status:  "failed",
				Done:    true,
			})
			return
		}
		hub.Broadcast(models.ProgressUpdate{
			JobID:    JobQuranCacheWarm,
			Message:  "Quran text ready. Search is available.",
			Progress: 100,
			Status:   "completed",
			Done:     true,
		})
	})
}

// StartScheduler starts the background job scheduler.
func StartScheduler(app JobContext) {
	s := gocron.NewScheduler(time.UTC)
	s.SingletonModeAll()

	scheduleCacheWarm(s, app)

	log.Println("Starting background job scheduler...")
	s.StartAsync()
}

func scheduleCacheWarm(s *gocron.Scheduler, app JobContext) {
	interval := app.Config().CacheWarmInterval
	if interval == 0 {
		log.Println("Cache warm interval is 0, scheduled refresh is disabled.")
		return
	}

	log.Printf("Scheduling job: '%s' to run every %d hours.", JobQuranCacheWarm, interval)

	_, err := s.Every(interval).Hours().Do(func() {
		log.Println("Scheduler is triggering job:", JobQuranCacheWarm)
		// Submit the job to the manager instead of running it directly.
		// This prevents conflicts with manually triggered jobs.
		if err := app.JobManager().RunJob(JobQuranCacheWarm, app); err != nil {
			log.Printf("Scheduled job '%s' could not start: %v", JobQuranCacheWarm, err)
		}
	})
	if err != nil {
		log.Printf("Error scheduling '%s' job: %v", JobQuranCacheWarm, err)
	}
}
