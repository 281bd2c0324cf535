// Package notifier arms a timer for the next upcoming prayer and pushes
// a reminder over the websocket hub when it fires, honoring the user's
// quiet hours.
package notifier

import (
	"log"
	"sync"
	"time"

	"github.com/nurania/nurania-go/internal/models"
	"github.com/nurania/nurania-go/internal/websocket"
)

// prayerOrder fixes the evaluation order within a day.
var prayerOrder = []string{"Fajr", "Dhuhr", "Asr", "Maghrib", "Isha"}

// Notifier owns at most one armed timer. Updating the schedule or the
// settings disarms the previous timer and re-arms against the new state.
type Notifier struct {
	hub *websocket.Hub

	mu       sync.Mutex
	times    *models.PrayerTimes
	settings models.Settings
	timer    *time.Timer

	// now is swapped out by tests.
	now func() time.Time
}

func New(hub *websocket.Hub) *Notifier {
	return &Notifier{
		hub:      hub,
		settings: models.DefaultSettings(),
		now:      time.Now,
	}
}

// Update replaces the schedule and settings and re-arms the timer.
// Reminders stay disarmed while notifications are off or no schedule is
// known.
func (n *Notifier) Update(times *models.PrayerTimes, settings models.Settings) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.times = times
	n.settings = settings
	n.armLocked()
}

// UpdateSettings replaces only the settings, keeping the known
// schedule, and re-arms the timer.
func (n *Notifier) UpdateSettings(settings models.Settings) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.settings = settings
	n.armLocked()
}

// Stop disarms any pending reminder.
func (n *Notifier) Stop() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.disarmLocked()
}

func (n *Notifier) disarmLocked() {
	if n.timer != nil {
		n.timer.Stop()
		n.timer = nil
	}
}

func (n *Notifier) armLocked() {
	n.disarmLocked()
	if n.times == nil || !n.settings.NotificationsEnabled {
		return
	}

	name, at, ok := nextPrayer(n.times, n.now())
	if !ok {
		return
	}

	delay := at.Sub(n.now())
	log.Printf("Next prayer reminder: %s at %s.", name, at.Format("15:04"))
	n.timer = time.AfterFunc(delay, func() { n.fire(name, at) })
}

func (n *Notifier) fire(name string, at time.Time) {
	n.mu.Lock()
	muted := isDuringQuietHours(n.settings.QuietHours, at)
	sound := n.settings.NotificationSound
	n.mu.Unlock()

	if muted {
		log.Printf("Suppressing %s reminder during quiet hours.", name)
	} else {
		n.hub.Broadcast(models.PrayerReminder{
			Prayer: name,
			Time:   at.Format("15:04"),
			Sound:  sound,
		})
	}

	// Re-arm for the prayer after this one.
	n.mu.Lock()
	defer n.mu.Unlock()
	n.armLocked()
}

// nextPrayer returns the first prayer of today strictly after now, or
// tomorrow's Fajr when today's prayers have all passed.
func nextPrayer(times *models.PrayerTimes, now time.Time) (string, time.Time, bool) {
	byName := map[string]string{
		"Fajr":    times.Fajr,
		"Dhuhr":   times.Dhuhr,
		"Asr":     times.Asr,
		"Maghrib": times.Maghrib,
		"Isha":    times.Isha,
	}

	for _, name := range prayerOrder {
		at, ok := timeOn(now, byName[name])
		if !ok {
			continue
		}
		if at.After(now) {
			return name, at, true
		}
	}

	// All of today's prayers have passed; the next one is Fajr at the
	// same clock time tomorrow.
	if at, ok := timeOn(now.AddDate(0, 0, 1), times.Fajr); ok {
		return "Fajr", at, true
	}
	return "", time.Time{}, false
}

// timeOn places an "HH:mm" clock time on the calendar day of ref.
func timeOn(ref time.Time, clock string) (time.Time, bool) {
	parsed, err := time.Parse("15:04", clock)
	if err != nil {
		return time.Time{}, false
	}
	return time.Date(ref.Year(), ref.Month(), ref.Day(),
		parsed.Hour(), parsed.Minute(), 0, 0, ref.Location()), true
}

// isDuringQuietHours reports whether t falls inside the quiet window.
// When the window crosses midnight it covers start..24:00 plus
// 00:00..end.
func isDuringQuietHours(q models.QuietHours, t time.Time) bool {
	if !q.Enabled {
		return false
	}
	start, errS := time.Parse("15:04", q.Start)
	end, errE := time.Parse("15:04", q.End)
	if errS != nil || errE != nil {
		return false
	}

	minutes := t.Hour()*60 + t.Minute()
	startM := start.Hour()*60 + start.Minute()
	endM := end.Hour()*60 + end.Minute()

	if startM <= endM {
		return minutes >= startM && minutes < endM
	}
	return minutes >= startM || minutes < endM
}
