package tracker_test

import (
	"testing"
	"time"

	"github.com/nurania/nurania-go/internal/tracker"
)

func TestLastReadDebounce(t *testing.T) {
	kv := newMemKV()
	l := tracker.NewLastRead(kv, 1)

	t.Run("Burst coalesces to one write", func(t *testing.T) {
		before := kv.writes
		for ayah := 1; ayah <= 20; ayah++ {
			l.Set(2, ayah)
		}
		// Nothing persisted while the burst is still inside the debounce
		// window, but Get already sees the newest value.
		if kv.writes != before {
			t.Errorf("Expected no writes during the burst, got %d", kv.writes-before)
		}
		pos := l.Get()
		if pos == nil || pos.AyahNumber != 20 {
			t.Fatalf("Get should return the pending position, got %+v", pos)
		}

		// Wait out the debounce window.
		deadline := time.Now().Add(2 * time.Second)
		for kv.writes == before && time.Now().Before(deadline) {
			time.Sleep(10 * time.Millisecond)
		}
		if got := kv.writes - before; got != 1 {
			t.Errorf("Expected exactly 1 persisted write after the quiet period, got %d", got)
		}
	})

	t.Run("Flush persists immediately", func(t *testing.T) {
		l.Set(3, 5)
		l.Flush()
		reloaded := tracker.NewLastRead(kv, 1)
		pos := reloaded.Get()
		if pos == nil || pos.SurahNumber != 3 || pos.AyahNumber != 5 {
			t.Errorf("Expected flushed position (3,5), got %+v", pos)
		}
	})

	t.Run("Get with nothing recorded", func(t *testing.T) {
		fresh := tracker.NewLastRead(newMemKV(), 1)
		if pos := fresh.Get(); pos != nil {
			t.Errorf("Expected nil position, got %+v", pos)
		}
	})
}
