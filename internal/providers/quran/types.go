package quran

// Upstream response shapes for quranapi.pages.dev. Field names follow
// the API's JSON exactly; they are mapped to our models before leaving
// this package.

type apiSurahInfo struct {
	SurahName            string `json:"surahName"`
	SurahNameArabic      string `json:"surahNameArabic"`
	SurahNameTranslation string `json:"surahNameTranslation"`
	RevelationPlace      string `json:"revelationPlace"`
	TotalAyah            int    `json:"totalAyah"`
}

type apiAudio struct {
	Reciter string `json:"reciter"`
	URL     string `json:"url"`
}

type apiVerse struct {
	SurahName string              `json:"surahName"`
	SurahNo   int                 `json:"surahNo"`
	AyahNo    int                 `json:"ayahNo"`
	Arabic1   string              `json:"arabic1"`
	English   string              `json:"english"`
	Audio     map[string]apiAudio `json:"audio"`
}

type apiSurah struct {
	SurahName            string   `json:"surahName"`
	SurahNameArabic      string   `json:"surahNameArabic"`
	SurahNameTranslation string   `json:"surahNameTranslation"`
	RevelationPlace      string   `json:"revelationPlace"`
	SurahNo              int      `json:"surahNo"`
	TotalAyah            int      `json:"totalAyah"`
	Arabic1              []string `json:"arabic1"`
	English              []string `json:"english"`
}

type apiTafsirEntry struct {
	Author  string `json:"author"`
	Content string `json:"content"`
}

type apiTafsir struct {
	SurahName string           `json:"surahName"`
	AyahNo    int              `json:"ayahNo"`
	Tafsirs   []apiTafsirEntry `json:"tafsirs"`
}
