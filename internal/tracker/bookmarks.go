package tracker

import (
	"github.com/nurania/nurania-go/internal/models"
)

// VerseBookmarks is the set of bookmarked verses, newest first. Each
// entry is a snapshot of the verse text taken at bookmark time.
type VerseBookmarks struct {
	kv      KV
	userID  int64
	entries []models.BookmarkedVerse
}

func NewVerseBookmarks(kv KV, userID int64) *VerseBookmarks {
	b := &VerseBookmarks{kv: kv, userID: userID}
	kv.GetJSON(userID, keyVerseBookmarks, &b.entries)
	return b
}

// Add stores a bookmark. Adding an already-bookmarked verse is a no-op;
// the return value reports whether the entry was new.
func (b *VerseBookmarks) Add(v models.BookmarkedVerse) bool {
	if b.IsBookmarked(v.SurahNumber, v.AyahNumber) {
		return false
	}
	b.entries = append([]models.BookmarkedVerse{v}, b.entries...)
	b.save()
	return true
}

func (b *VerseBookmarks) Remove(surah, ayah int) {
	kept := b.entries[:0]
	for _, e := range b.entries {
		if !(e.SurahNumber == surah && e.AyahNumber == ayah) {
			kept = append(kept, e)
		}
	}
	b.entries = kept
	b.save()
}

func (b *VerseBookmarks) IsBookmarked(surah, ayah int) bool {
	for _, e := range b.entries {
		if e.SurahNumber == surah && e.AyahNumber == ayah {
			return true
		}
	}
	return false
}

// List returns all bookmarks, most recently added first.
func (b *VerseBookmarks) List() []models.BookmarkedVerse {
	if b.entries == nil {
		return []models.BookmarkedVerse{}
	}
	return b.entries
}

func (b *VerseBookmarks) save() {
	b.kv.SetJSON(b.userID, keyVerseBookmarks, b.entries)
}

// HadithBookmarks is the set of bookmarked hadiths, newest first, with
// the same contract as VerseBookmarks but keyed by hadith id.
type HadithBookmarks struct {
	kv      KV
	userID  int64
	entries []models.Hadith
}

func NewHadithBookmarks(kv KV, userID int64) *HadithBookmarks {
	b := &HadithBookmarks{kv: kv, userID: userID}
	kv.GetJSON(userID, keyHadithBookmarks, &b.entries)
	return b
}

func (b *HadithBookmarks) Add(h models.Hadith) bool {
	if b.IsBookmarked(h.ID) {
		return false
	}
	b.entries = append([]models.Hadith{h}, b.entries...)
	b.save()
	return true
}

func (b *HadithBookmarks) Remove(hadithID int64) {
	kept := b.entries[:0]
	for _, e := range b.entries {
		if e.ID != hadithID {
			kept = append(kept, e)
		}
	}
	b.entries = kept
	b.save()
}

func (b *HadithBookmarks) IsBookmarked(hadithID int64) bool {
	for _, e := range b.entries {
		if e.ID == hadithID {
			return true
		}
	}
	return false
}

func (b *HadithBookmarks) List() []models.Hadith {
	if b.entries == nil {
		return []models.Hadith{}
	}
	return b.entries
}

func (b *HadithBookmarks) save() {
	b.kv.SetJSON(b.userID, keyHadithBookmarks, b.entries)
}
