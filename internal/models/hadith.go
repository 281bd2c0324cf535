package models

// HadithBook identifies one of the canonical hadith collections.
type HadithBook struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// Hadith is a single narration as returned by the hadith database.
type Hadith struct {
	ID              int64  `json:"id"`
	HadithNumber    string `json:"hadith_number"`
	EnglishNarrator string `json:"english_narrator"`
	EnglishText     string `json:"english_text"`
	UrduText        string `json:"urdu_text"`
	ArabicText      string `json:"arabic_text"`
	Status          string `json:"status,omitempty"` // authenticity grading, e.g. "Sahih"
	BookName        string `json:"book_name"`
	ChapterNumber   string `json:"chapter_number"`
	ChapterEnglish  string `json:"chapter_english"`
}

// HadithChapter is a chapter within a hadith book.
type HadithChapter struct {
	ID             int64  `json:"id"`
	ChapterNumber  string `json:"chapter_number"`
	ChapterEnglish string `json:"chapter_english"`
	ChapterUrdu    string `json:"chapter_urdu"`
	ChapterArabic  string `json:"chapter_arabic"`
	BookSlug       string `json:"book_slug"`
}

// HadithPage is one page of paginated hadith results.
type HadithPage struct {
	Hadiths     []Hadith `json:"hadiths"`
	Total       int      `json:"total"`
	PerPage     int      `json:"per_page"`
	CurrentPage int      `json:"current_page"`
	LastPage    int      `json:"last_page"`
}
