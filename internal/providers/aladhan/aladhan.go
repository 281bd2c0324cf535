// Package aladhan wraps the api.aladhan.com REST API for prayer times,
// qibla direction and Hijri date conversion.
package aladhan

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/nurania/nurania-go/internal/models"
)

// calculationMethod 2 is ISNA.
const calculationMethod = "2"

type Provider struct {
	baseURL string
	client  *http.Client

	// now is swapped out by tests to pin "today".
	now func() time.Time
}

func New(baseURL string) *Provider {
	return &Provider{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 20 * time.Second},
		now:     time.Now,
	}
}

type calendarResponse struct {
	Data []struct {
		Timings map[string]string `json:"timings"`
	} `json:"data"`
}

// PrayerTimes returns today's five prayer times for the given
// coordinates. The API serves a whole month per call; today's entry is
// picked out of the calendar.
func (p *Provider) PrayerTimes(ctx context.Context, latitude, longitude float64) (*models.PrayerTimes, error) {
	today := p.now()
	q := url.Values{}
	q.Set("latitude", fmt.Sprintf("%f", latitude))
	q.Set("longitude", fmt.Sprintf("%f", longitude))
	q.Set("method", calculationMethod)
	q.Set("month", fmt.Sprintf("%d", int(today.Month())))
	q.Set("year", fmt.Sprintf("%d", today.Year()))

	var raw calendarResponse
	if err := p.getJSON(ctx, "/calendar?"+q.Encode(), &raw); err != nil {
		return nil, err
	}
	idx := today.Day() - 1
	if idx < 0 || idx >= len(raw.Data) {
		return nil, fmt.Errorf("aladhan calendar has no entry for day %d", today.Day())
	}

	timings := raw.Data[idx].Timings
	return &models.PrayerTimes{
		Fajr:    cleanTime(timings["Fajr"]),
		Dhuhr:   cleanTime(timings["Dhuhr"]),
		Asr:     cleanTime(timings["Asr"]),
		Maghrib: cleanTime(timings["Maghrib"]),
		Isha:    cleanTime(timings["Isha"]),
	}, nil
}

// cleanTime strips the timezone annotation the API appends, turning
// "05:32 (EST)" into "05:32".
func cleanTime(s string) string {
	if i := strings.IndexByte(s, ' '); i >= 0 {
		return s[:i]
	}
	return s
}

type qiblaResponse struct {
	Data struct {
		Direction float64 `json:"direction"`
	} `json:"data"`
}

// QiblaDirection returns the bearing in degrees from true north toward
// the Kaaba for the given coordinates.
func (p *Provider) QiblaDirection(ctx context.Context, latitude, longitude float64) (float64, error) {
	var raw qiblaResponse
	path := fmt.Sprintf("/qibla/%f/%f", latitude, longitude)
	if err := p.getJSON(ctx, path, &raw); err != nil {
		return 0, err
	}
	return raw.Data.Direction, nil
}

type hijriResponse struct {
	Data struct {
		Hijri struct {
			Day   string `json:"day"`
			Month struct {
				En string `json:"en"`
			} `json:"month"`
			Year string `json:"year"`
		} `json:"hijri"`
	} `json:"data"`
}

// HijriDate converts today's Gregorian date and formats it as
// "D Month, YYYY AH".
func (p *Provider) HijriDate(ctx context.Context) (string, error) {
	q := url.Values{}
	q.Set("date", p.now().Format("02-01-2006"))

	var raw hijriResponse
	if err := p.getJSON(ctx, "/gToH?"+q.Encode(), &raw); err != nil {
		return "", err
	}
	h := raw.Data.Hijri
	if h.Day == "" || h.Month.En == "" || h.Year == "" {
		return "", fmt.Errorf("aladhan gToH returned incomplete date")
	}
	return fmt.Sprintf("%s %s, %s AH", h.Day, h.Month.En, h.Year), nil
}

func (p *Provider) getJSON(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+path, nil)
	if err != nil {
		return err
	}
	resp, err := p.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("aladhan api %s: unexpected status %d", path, resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
