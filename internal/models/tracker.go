package models

// BookmarkedVerse is an immutable snapshot of a verse taken at bookmark
// time. The text is stored with the bookmark so it keeps displaying the
// same content even if the upstream source changes later.
type BookmarkedVerse struct {
	SurahNumber int    `json:"surahNumber"`
	AyahNumber  int    `json:"ayahNumber"`
	SurahName   string `json:"surahName"`
	Arabic      string `json:"arabic"`
	English     string `json:"english"`
}

// LastReadPosition points at the verse the user last had on screen.
type LastReadPosition struct {
	SurahNumber int    `json:"surahNumber"`
	AyahNumber  int    `json:"ayahNumber"`
	SurahName   string `json:"surahName,omitempty"`
}

// LastLearningPath remembers the most recently opened learning path.
type LastLearningPath struct {
	TopicID    string `json:"topicId"`
	TopicTitle string `json:"topicTitle"`
}

// LastViewedHadith remembers the most recently opened hadith chapter.
type LastViewedHadith struct {
	BookSlug string        `json:"bookSlug"`
	BookName string        `json:"bookName"`
	Chapter  HadithChapter `json:"chapter"`
}

// RecitationRecord is one practice attempt with the feedback it received.
type RecitationRecord struct {
	ID          string          `json:"id"`
	SurahName   string          `json:"surahName"`
	SurahNumber int             `json:"surahNumber"`
	AyahNumber  int             `json:"ayahNumber"`
	VerseArabic string          `json:"verseArabic"`
	Feedback    TajweedFeedback `json:"feedback"`
	Timestamp   string          `json:"timestamp"`
}

// QuietHours is a daily window during which prayer reminders are muted.
// Overnight windows (start > end, e.g. 22:00 to 06:00) are supported.
type QuietHours struct {
	Enabled bool   `json:"enabled"`
	Start   string `json:"start"` // "HH:mm"
	End     string `json:"end"`   // "HH:mm"
}

// Settings holds per-user notification preferences.
type Settings struct {
	NotificationsEnabled bool       `json:"notificationsEnabled"`
	NotificationSound    string     `json:"notificationSound"` // "default" or "adhan"
	QuietHours           QuietHours `json:"quietHours"`
}

// DefaultSettings returns the settings applied before the user has saved
// anything. Stored settings are merged over these on read.
func DefaultSettings() Settings {
	return Settings{
		NotificationsEnabled: false,
		NotificationSound:    "default",
		QuietHours: QuietHours{
			Enabled: false,
			Start:   "22:00",
			End:     "06:00",
		},
	}
}
