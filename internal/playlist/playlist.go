// Package playlist sequences verse recitations: it walks an ordered
// list of ayahs, feeds the selected reciter's recording to a player,
// and handles advance, repeat and unplayable entries.
package playlist

import (
	"log"
	"sync"
)

// Player is the audio sink the sequencer drives. Implementations are
// expected to call the sequencer's OnItemEnd when a recording finishes
// on its own.
type Player interface {
	Play(url string, rate float64) error
	Stop()
	SetRate(rate float64)
}

// Item is one playable ayah with its recordings keyed by reciter id.
type Item struct {
	AyahID int
	URLs   map[string]string
}

// Stopped is the index reported to the change callback when nothing is
// sounding.
const Stopped = -1

// Sequencer steps through a playlist. All methods are safe for
// concurrent use. The zero rate is normalized to 1.0.
type Sequencer struct {
	mu        sync.Mutex
	player    Player
	items     []Item
	current   int
	reciter   string
	rate      float64
	repeatOne bool
	onChange  func(index int)
}

// New builds a sequencer over items using the given reciter id.
// onChange is invoked with the index of the item that started sounding,
// or Stopped when playback ends; it may be nil.
func New(player Player, items []Item, reciter string, onChange func(index int)) *Sequencer {
	return &Sequencer{
		player:   player,
		items:    items,
		current:  Stopped,
		reciter:  reciter,
		rate:     1.0,
		onChange: onChange,
	}
}

// Play starts playback at index. Unplayable items (no recording for the
// selected reciter, or a player failure) are skipped forward. If no
// playable item remains at or after index, the sequencer stops.
func (s *Sequencer) Play(index int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.playLocked(index)
}

func (s *Sequencer) playLocked(index int) {
	for i := index; i >= 0 && i < len(s.items); i++ {
		item := s.items[i]
		url, ok := item.URLs[s.reciter]
		if !ok || url == "" {
			log.Printf("No recording by reciter %q for ayah %d, skipping.", s.reciter, item.AyahID)
			continue
		}
		if err := s.player.Play(url, s.rate); err != nil {
			log.Printf("Playback of ayah %d failed: %v, skipping.", item.AyahID, err)
			continue
		}
		s.current = i
		s.notify(i)
		return
	}
	s.stopLocked()
}

// Stop halts playback and reports the stopped state.
func (s *Sequencer) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopLocked()
}

func (s *Sequencer) stopLocked() {
	s.player.Stop()
	s.current = Stopped
	s.notify(Stopped)
}

// Next advances to the item after the current one. At the last item the
// call is a no-op and the current item keeps sounding.
func (s *Sequencer) Next() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == Stopped || s.current >= len(s.items)-1 {
		return
	}
	s.playLocked(s.current + 1)
}

// Prev steps back to the item before the current one. At the first item
// the call is a no-op and the current item keeps sounding.
func (s *Sequencer) Prev() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == Stopped || s.current == 0 {
		return
	}
	s.playLocked(s.current - 1)
}

// OnItemEnd reacts to the current recording finishing: with repeat-one
// the same item restarts, otherwise playback advances. Reaching the end
// of the list stops the sequencer.
func (s *Sequencer) OnItemEnd() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == Stopped {
		return
	}
	if s.repeatOne {
		s.playLocked(s.current)
		return
	}
	s.playLocked(s.current + 1)
}

// SetReciter selects the reciter used from the next Play on. The item
// already sounding is not interrupted.
func (s *Sequencer) SetReciter(reciter string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reciter = reciter
}

// SetRate changes the playback rate, applied to the current item
// immediately.
func (s *Sequencer) SetRate(rate float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if rate <= 0 {
		rate = 1.0
	}
	s.rate = rate
	if s.current != Stopped {
		s.player.SetRate(rate)
	}
}

// SetRepeatOne toggles repeating the current item when it ends.
func (s *Sequencer) SetRepeatOne(repeat bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.repeatOne = repeat
}

// Current returns the index of the sounding item, or Stopped.
func (s *Sequencer) Current() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

func (s *Sequencer) notify(index int) {
	if s.onChange != nil {
		s.onChange(index)
	}
}
