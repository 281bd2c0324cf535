package models

// ProgressUpdate is pushed over the websocket hub while a background job
// (such as the Quran cache warm) is running.
type ProgressUpdate struct {
	JobID    string  `json:"jobId"`
	Message  string  `json:"message"`
	Progress float64 `json:"progress"`
	Status   string  `json:"status"` // e.g. "in_progress", "completed", "failed"
	Done     bool    `json:"done"`
}

// PrayerReminder is pushed over the websocket hub when a scheduled prayer
// time arrives.
type PrayerReminder struct {
	Prayer string `json:"prayer"`
	Time   string `json:"time"`  // "HH:mm"
	Sound  string `json:"sound"` // "default" or "adhan"
}
