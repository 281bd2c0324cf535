package tracker

import (
	"sync"
	"time"

	"github.com/nurania/nurania-go/internal/models"
)

// defaultDebounce is how long the last-read tracker waits after the
// latest update before persisting. Scrolling through a surah produces a
// burst of position updates; only the final one per quiet period is
// written.
const defaultDebounce = 500 * time.Millisecond

// LastRead tracks the user's reading position with debounced persistence.
// Unlike the other trackers it is long-lived (one per user, owned by the
// server) because the debounce timer must survive across requests.
type LastRead struct {
	kv     KV
	userID int64

	mu      sync.Mutex
	timer   *time.Timer
	pending *models.LastReadPosition
	delay   time.Duration
}

func NewLastRead(kv KV, userID int64) *LastRead {
	return &LastRead{kv: kv, userID: userID, delay: defaultDebounce}
}

// Set records a new position. The write to the store is coalesced: a
// timer already pending is cleared and re-armed, so a burst of calls
// produces a single persisted write once the burst goes quiet.
func (l *LastRead) Set(surah, ayah int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.pending = &models.LastReadPosition{SurahNumber: surah, AyahNumber: ayah}
	if l.timer != nil {
		l.timer.Stop()
	}
	l.timer = time.AfterFunc(l.delay, l.flush)
}

// Get returns the freshest position: the unflushed in-memory value if a
// write is pending, otherwise whatever the store holds. Returns nil when
// no position was ever recorded.
func (l *LastRead) Get() *models.LastReadPosition {
	l.mu.Lock()
	if l.pending != nil {
		pos := *l.pending
		l.mu.Unlock()
		return &pos
	}
	l.mu.Unlock()

	var pos models.LastReadPosition
	if !l.kv.GetJSON(l.userID, keyLastRead, &pos) {
		return nil
	}
	return &pos
}

// Flush persists any pending position immediately and cancels the timer.
// Called on shutdown so the last position is not lost.
func (l *LastRead) Flush() {
	l.mu.Lock()
	if l.timer != nil {
		l.timer.Stop()
		l.timer = nil
	}
	l.mu.Unlock()
	l.flush()
}

func (l *LastRead) flush() {
	l.mu.Lock()
	pos := l.pending
	l.pending = nil
	l.mu.Unlock()

	if pos != nil {
		l.kv.SetJSON(l.userID, keyLastRead, pos)
	}
}
