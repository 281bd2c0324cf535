package models

// PrayerTimes holds the five daily prayer times as "HH:mm" strings,
// as reported by the Aladhan API for the user's location.
type PrayerTimes struct {
	Fajr    string `json:"fajr"`
	Dhuhr   string `json:"dhuhr"`
	Asr     string `json:"asr"`
	Maghrib string `json:"maghrib"`
	Isha    string `json:"isha"`
}
