// This file defines the core data structures (models) for our application.
// These structs represent the Quran content served to clients: surahs,
// verses, reciters and tafsir commentary.

package models

// SurahInfo is a single entry in the surah index.
type SurahInfo struct {
	SurahNumber     int    `json:"surah_number"`
	SurahName       string `json:"surah_name"`
	SurahNameArabic string `json:"surah_name_arabic"`
	Translation     string `json:"translation"`
	RevelationPlace string `json:"revelation_place"`
	TotalAyahs      int    `json:"total_ayahs"`
}

// Reciter identifies one recording of a verse by a specific reciter.
type Reciter struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Verse holds the text of a single ayah together with its available
// recitations.
type Verse struct {
	Arabic   string    `json:"arabic"`
	English  string    `json:"english"`
	Reciters []Reciter `json:"reciters"`
}

// Ayah is a verse as part of a full surah.
type Ayah struct {
	ID       int       `json:"id"`
	Text     string    `json:"text"`
	English  string    `json:"english"`
	Reciters []Reciter `json:"reciters,omitempty"`
}

// Surah is a fully assembled chapter with all of its verses.
type Surah struct {
	ID              int    `json:"id"`
	Name            string `json:"name"` // Arabic name
	Transliteration string `json:"transliteration"`
	Translation     string `json:"translation"`
	RevelationPlace string `json:"revelation_place"`
	TotalVerses     int    `json:"total_verses"`
	Verses          []Ayah `json:"verses"`
}

// Tafsir is one scholar's commentary on a verse.
type Tafsir struct {
	Author  string `json:"author"`
	Content string `json:"content"`
}

// TafsirResult groups all available commentaries for one verse.
type TafsirResult struct {
	SurahName   string   `json:"surah_name"`
	SurahNumber int      `json:"surah_number"`
	AyahNumber  int      `json:"ayah_number"`
	Tafsirs     []Tafsir `json:"tafsirs"`
}

// VerseSearchResult is a single hit from the local full-text search.
type VerseSearchResult struct {
	SurahNumber int    `json:"surah_number"`
	SurahName   string `json:"surah_name"`
	AyahNumber  int    `json:"ayah_number"`
	Arabic      string `json:"arabic"`
	English     string `json:"english"`
}

// VerseOfTheDay is a randomly chosen verse for the home page.
type VerseOfTheDay struct {
	Arabic      string `json:"arabic"`
	English     string `json:"english"`
	SurahName   string `json:"surah_name"`
	SurahNumber int    `json:"surah_number"`
	AyahNumber  int    `json:"ayah_number"`
}
