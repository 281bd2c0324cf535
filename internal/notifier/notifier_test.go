package notifier

import (
	"testing"
	"time"

	"github.com/nurania/nurania-go/internal/models"
)

var testTimes = &models.PrayerTimes{
	Fajr:    "05:10",
	Dhuhr:   "12:30",
	Asr:     "15:45",
	Maghrib: "18:20",
	Isha:    "19:50",
}

func at(hour, min int) time.Time {
	return time.Date(2024, 3, 2, hour, min, 0, 0, time.UTC)
}

func TestNextPrayer(t *testing.T) {
	cases := []struct {
		name     string
		now      time.Time
		prayer   string
		wantTime string
		nextDay  bool
	}{
		{"BeforeFajr", at(4, 0), "Fajr", "05:10", false},
		{"Midday", at(13, 0), "Asr", "15:45", false},
		{"ExactlyAtAsr", at(15, 45), "Maghrib", "18:20", false},
		{"AfterIsha", at(23, 0), "Fajr", "05:10", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			name, when, ok := nextPrayer(testTimes, tc.now)
			if !ok {
				t.Fatal("expected a next prayer")
			}
			if name != tc.prayer {
				t.Errorf("prayer = %s, want %s", name, tc.prayer)
			}
			if when.Format("15:04") != tc.wantTime {
				t.Errorf("time = %s, want %s", when.Format("15:04"), tc.wantTime)
			}
			wantDay := tc.now.Day()
			if tc.nextDay {
				wantDay++
			}
			if when.Day() != wantDay {
				t.Errorf("day = %d, want %d", when.Day(), wantDay)
			}
		})
	}
}

func TestNextPrayerUnparseable(t *testing.T) {
	broken := &models.PrayerTimes{Fajr: "bad", Dhuhr: "bad", Asr: "bad", Maghrib: "bad", Isha: "bad"}
	if _, _, ok := nextPrayer(broken, at(4, 0)); ok {
		t.Error("expected no next prayer from an unparseable schedule")
	}
}

func TestIsDuringQuietHours(t *testing.T) {
	cases := []struct {
		name  string
		quiet models.QuietHours
		at    time.Time
		want  bool
	}{
		{"Disabled", models.QuietHours{Enabled: false, Start: "22:00", End: "06:00"}, at(23, 0), false},
		{"DaytimeWindowInside", models.QuietHours{Enabled: true, Start: "13:00", End: "15:00"}, at(14, 0), true},
		{"DaytimeWindowOutside", models.QuietHours{Enabled: true, Start: "13:00", End: "15:00"}, at(16, 0), false},
		{"OvernightLateEvening", models.QuietHours{Enabled: true, Start: "22:00", End: "06:00"}, at(23, 30), true},
		{"OvernightEarlyMorning", models.QuietHours{Enabled: true, Start: "22:00", End: "06:00"}, at(5, 0), true},
		{"OvernightMidday", models.QuietHours{Enabled: true, Start: "22:00", End: "06:00"}, at(12, 0), false},
		{"WindowStartInclusive", models.QuietHours{Enabled: true, Start: "22:00", End: "06:00"}, at(22, 0), true},
		{"WindowEndExclusive", models.QuietHours{Enabled: true, Start: "22:00", End: "06:00"}, at(6, 0), false},
		{"Unparseable", models.QuietHours{Enabled: true, Start: "nope", End: "06:00"}, at(23, 0), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := isDuringQuietHours(tc.quiet, tc.at); got != tc.want {
				t.Errorf("isDuringQuietHours(%+v, %s) = %v, want %v", tc.quiet, tc.at.Format("15:04"), got, tc.want)
			}
		})
	}
}

func TestUpdateDisarmedWhenNotificationsOff(t *testing.T) {
	n := New(nil)
	n.now = func() time.Time { return at(4, 0) }

	settings := models.DefaultSettings()
	settings.NotificationsEnabled = false
	n.Update(testTimes, settings)

	n.mu.Lock()
	armed := n.timer != nil
	n.mu.Unlock()
	if armed {
		t.Error("timer must stay disarmed while notifications are off")
	}
}

func TestUpdateArmsTimer(t *testing.T) {
	n := New(nil)
	n.now = func() time.Time { return at(4, 0) }

	settings := models.DefaultSettings()
	settings.NotificationsEnabled = true
	n.Update(testTimes, settings)

	n.mu.Lock()
	armed := n.timer != nil
	n.mu.Unlock()
	if !armed {
		t.Fatal("expected an armed timer")
	}

	n.Stop()
	n.mu.Lock()
	armed = n.timer != nil
	n.mu.Unlock()
	if armed {
		t.Error("Stop must disarm the timer")
	}
}
