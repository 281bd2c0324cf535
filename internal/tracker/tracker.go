// Package tracker implements the per-user study bookkeeping: read
// progress, bookmarks, learning-path progress, notes, recitation history
// and small "continue where you left off" pointers. Every tracker loads
// its state from the durable key-value store on construction, mutates it
// in memory, and writes it back on every change. Store failures never
// surface to callers; the in-memory state stays authoritative for the
// session.
package tracker

// KV is the durable store contract the trackers persist through. It is
// satisfied by *store.Store.
type KV interface {
	GetJSON(userID int64, key string, out interface{}) bool
	SetJSON(userID int64, key string, v interface{})
	DeleteKV(userID int64, key string)
}

// Storage keys, carried over verbatim from the browser client so
// previously exported localStorage data stays loadable.
const (
	keyReadProgress     = "quranReadProgress"
	keyVerseBookmarks   = "bookmarkedVerses"
	keyHadithBookmarks  = "bookmarkedHadiths"
	keyLearningProgress = "nuraniaLearningProgress"
	keyDailyChallenges  = "nuraniaDailyChallenges"
	keyLastRead         = "nuraniaLastReadPosition"
	keyHadithNotes      = "nuraniaHadithNotes"
	keyRecitations      = "recitationHistory"
	keySettings         = "nuraniaAppSettings"
	keyLastLearningPath = "nuraniaLastLearningPath"
	keyLastViewedHadith = "nuraniaLastViewedHadith"
)

// DailyChallengeKey is exported for the challenge engine, which lives in
// its own package but shares the key space.
const DailyChallengeKey = keyDailyChallenges
