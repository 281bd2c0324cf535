package hadith

// Upstream response shapes for hadithapi.com.

type apiHadith struct {
	ID              int64  `json:"id"`
	HadithNumber    string `json:"hadithNumber"`
	EnglishNarrator string `json:"englishNarrator"`
	HadithEnglish   string `json:"hadithEnglish"`
	HadithUrdu      string `json:"hadithUrdu"`
	HadithArabic    string `json:"hadithArabic"`
	Status          string `json:"status"`
	Book            struct {
		BookName string `json:"bookName"`
	} `json:"book"`
	Chapter struct {
		ChapterNumber  string `json:"chapterNumber"`
		ChapterEnglish string `json:"chapterEnglish"`
	} `json:"chapter"`
}

type apiHadithResponse struct {
	Hadiths struct {
		Data        []apiHadith `json:"data"`
		Total       int         `json:"total"`
		PerPage     int         `json:"per_page"`
		CurrentPage int         `json:"current_page"`
		LastPage    int         `json:"last_page"`
	} `json:"hadiths"`
}

type apiChapter struct {
	ID             int64  `json:"id"`
	ChapterNumber  string `json:"chapterNumber"`
	ChapterEnglish string `json:"chapterEnglish"`
	ChapterUrdu    string `json:"chapterUrdu"`
	ChapterArabic  string `json:"chapterArabic"`
	BookSlug       string `json:"bookSlug"`
}

type apiChapterResponse struct {
	Chapters []apiChapter `json:"chapters"`
}
