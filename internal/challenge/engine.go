// Package challenge implements the daily challenge engine: three goals
// chosen per day from a fixed pool, a completion streak across
// consecutive days, and day-rollover handling.
package challenge

import (
	"math/rand"
	"strconv"
	"time"

	"github.com/nurania/nurania-go/internal/models"
	"github.com/nurania/nurania-go/internal/tracker"
)

// template is one candidate daily goal. The pool is fixed; three of the
// four are drawn each day.
type template struct {
	Type        models.ChallengeType
	Description string
	Target      int
}

var pool = []template{
	{models.ChallengeReadVerses, "Read 5 verses in the Quran", 5},
	{models.ChallengePracticeAyah, "Practice reciting 1 Ayah", 1},
	{models.ChallengeBookmark, "Bookmark a new verse", 1},
	{models.ChallengeLearningStep, "Complete a step in a Learning Path", 1},
}

const dailyCount = 3

// Engine evaluates day transitions at load time and applies reported
// actions to today's challenge set. Now and Rand are exported so tests
// can pin the clock and draw deterministic challenge sets.
type Engine struct {
	kv     tracker.KV
	userID int64

	Now  func() time.Time
	Rand *rand.Rand
}

func NewEngine(kv tracker.KV, userID int64) *Engine {
	return &Engine{
		kv:     kv,
		userID: userID,
		Now:    time.Now,
		Rand:   rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Load returns today's challenge state, applying the day-rollover rules:
//
//   - no stored state: generate a fresh set with streak 0
//   - same calendar day: the stored state is returned verbatim
//   - exactly one day later and all of yesterday's challenges were
//     completed: new set, streak carried forward (it was incremented
//     when yesterday's set completed)
//   - otherwise (goals missed, or one or more days skipped): new set,
//     streak reset to 0
func (e *Engine) Load() models.DailyChallengeState {
	today := dayString(e.Now())

	var stored models.DailyChallengeState
	if !e.kv.GetJSON(e.userID, tracker.DailyChallengeKey, &stored) || len(stored.Challenges) == 0 {
		state := models.DailyChallengeState{
			Challenges: e.generate(),
			Streak:     0,
			LastUpdate: today,
		}
		e.save(state)
		return state
	}

	elapsed := daysBetween(stored.LastUpdate, today)
	if elapsed == 0 {
		return stored
	}

	streak := stored.Streak
	if !stored.AllComplete() || elapsed > 1 || elapsed < 0 {
		streak = 0
	}
	state := models.DailyChallengeState{
		Challenges: e.generate(),
		Streak:     streak,
		LastUpdate: today,
	}
	e.save(state)
	return state
}

// LogAction applies a reported user action to today's stored set: every
// not-yet-completed challenge of the matching type gains amount progress,
// clamped to its target. When this call completes the full set, the
// streak increments by exactly one. An action reported against a stale
// (not today's) state is ignored; days roll over only in Load.
func (e *Engine) LogAction(actionType models.ChallengeType, amount int) models.DailyChallengeState {
	var state models.DailyChallengeState
	if !e.kv.GetJSON(e.userID, tracker.DailyChallengeKey, &state) {
		return state
	}
	if state.LastUpdate != dayString(e.Now()) {
		return state
	}

	wasComplete := state.AllComplete()
	changed := false
	for i := range state.Challenges {
		c := &state.Challenges[i]
		if c.Type != actionType || c.Completed {
			continue
		}
		changed = true
		c.Progress += amount
		if c.Progress >= c.Target {
			c.Progress = c.Target
			c.Completed = true
		}
	}
	if !changed {
		return state
	}

	if state.AllComplete() && !wasComplete {
		state.Streak++
	}
	e.save(state)
	return state
}

// generate draws three distinct templates from the pool, without
// replacement, and instantiates them with zero progress.
func (e *Engine) generate() []models.Challenge {
	order := e.Rand.Perm(len(pool))
	challenges := make([]models.Challenge, 0, dailyCount)
	for i, idx := range order[:dailyCount] {
		tpl := pool[idx]
		challenges = append(challenges, models.Challenge{
			ID:          string(tpl.Type) + "-" + strconv.Itoa(i),
			Type:        tpl.Type,
			Description: tpl.Description,
			Target:      tpl.Target,
		})
	}
	return challenges
}

func (e *Engine) save(state models.DailyChallengeState) {
	e.kv.SetJSON(e.userID, tracker.DailyChallengeKey, state)
}

// dayString formats a time as the calendar-day key "YYYY-MM-DD".
func dayString(t time.Time) string {
	return t.Format("2006-01-02")
}

// daysBetween returns the number of whole calendar days from a stored
// day string to the current one. Unparseable stored dates count as a
// large negative gap, which the caller treats as a reset.
func daysBetween(from, to string) int {
	a, errA := time.Parse("2006-01-02", from)
	b, errB := time.Parse("2006-01-02", to)
	if errA != nil || errB != nil {
		return -1
	}
	return int(b.Sub(a).Hours() / 24)
}
