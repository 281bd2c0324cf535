package challenge_test

import (
	"encoding/json"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nurania/nurania-go/internal/challenge"
	"github.com/nurania/nurania-go/internal/models"
	"github.com/nurania/nurania-go/internal/tracker"
)

type memKV struct {
	data map[string][]byte
}

func newMemKV() *memKV { return &memKV{data: make(map[string][]byte)} }

func (m *memKV) GetJSON(userID int64, key string, out interface{}) bool {
	raw, ok := m.data[key]
	if !ok {
		return false
	}
	return json.Unmarshal(raw, out) == nil
}

func (m *memKV) SetJSON(userID int64, key string, v interface{}) {
	raw, err := json.Marshal(v)
	if err != nil {
		return
	}
	m.data[key] = raw
}

func (m *memKV) DeleteKV(userID int64, key string) { delete(m.data, key) }

// newEngineAt returns an engine pinned to a fixed calendar day with a
// deterministic random source.
func newEngineAt(kv tracker.KV, day string) *challenge.Engine {
	e := challenge.NewEngine(kv, 1)
	fixed, err := time.Parse("2006-01-02", day)
	if err != nil {
		panic(err)
	}
	e.Now = func() time.Time { return fixed }
	e.Rand = rand.New(rand.NewSource(1))
	return e
}

// storeState persists a hand-built state the way the engine would.
func storeState(kv tracker.KV, state models.DailyChallengeState) {
	kv.SetJSON(1, tracker.DailyChallengeKey, state)
}

func completedSet() []models.Challenge {
	return []models.Challenge{
		{ID: "readVerses-0", Type: models.ChallengeReadVerses, Target: 5, Progress: 5, Completed: true},
		{ID: "bookmarkVerse-1", Type: models.ChallengeBookmark, Target: 1, Progress: 1, Completed: true},
		{ID: "practiceAyah-2", Type: models.ChallengePracticeAyah, Target: 1, Progress: 1, Completed: true},
	}
}

func TestEngineFirstRun(t *testing.T) {
	kv := newMemKV()
	e := newEngineAt(kv, "2024-01-01")

	state := e.Load()
	require.Len(t, state.Challenges, 3)
	assert.Equal(t, 0, state.Streak)
	assert.Equal(t, "2024-01-01", state.LastUpdate)

	// Three distinct types, each starting at zero.
	seen := make(map[models.ChallengeType]bool)
	for _, c := range state.Challenges {
		assert.False(t, seen[c.Type], "challenge types must be drawn without replacement")
		seen[c.Type] = true
		assert.Equal(t, 0, c.Progress)
		assert.False(t, c.Completed)
		assert.Greater(t, c.Target, 0)
	}
}

func TestEngineSameDayLoadsVerbatim(t *testing.T) {
	kv := newMemKV()
	stored := models.DailyChallengeState{
		Challenges: completedSet(),
		Streak:     4,
		LastUpdate: "2024-01-01",
	}
	storeState(kv, stored)

	state := newEngineAt(kv, "2024-01-01").Load()
	assert.Equal(t, stored, state)
}

func TestEngineStreakCarriesAfterCompleteDay(t *testing.T) {
	kv := newMemKV()
	storeState(kv, models.DailyChallengeState{
		Challenges: completedSet(),
		Streak:     2,
		LastUpdate: "2024-01-01",
	})

	state := newEngineAt(kv, "2024-01-02").Load()
	require.Len(t, state.Challenges, 3)
	assert.Equal(t, 2, state.Streak, "streak carries over after a fully completed day")
	assert.Equal(t, "2024-01-02", state.LastUpdate)
	for _, c := range state.Challenges {
		assert.False(t, c.Completed, "new day starts with fresh challenges")
	}
}

func TestEngineStreakResetsWhenGoalsMissed(t *testing.T) {
	kv := newMemKV()
	set := completedSet()
	set[1].Progress = 0
	set[1].Completed = false
	storeState(kv, models.DailyChallengeState{
		Challenges: set,
		Streak:     2,
		LastUpdate: "2024-01-01",
	})

	state := newEngineAt(kv, "2024-01-02").Load()
	assert.Equal(t, 0, state.Streak, "streak resets when yesterday's goals were not all met")
}

func TestEngineStreakResetsOnSkippedDays(t *testing.T) {
	kv := newMemKV()
	storeState(kv, models.DailyChallengeState{
		Challenges: completedSet(),
		Streak:     9,
		LastUpdate: "2024-01-01",
	})

	state := newEngineAt(kv, "2024-01-05").Load()
	assert.Equal(t, 0, state.Streak, "streak resets after skipped days even if the last day was complete")
}

func TestEngineLogAction(t *testing.T) {
	kv := newMemKV()
	e := newEngineAt(kv, "2024-01-01")
	storeState(kv, models.DailyChallengeState{
		Challenges: []models.Challenge{
			{ID: "readVerses-0", Type: models.ChallengeReadVerses, Target: 5},
			{ID: "bookmarkVerse-1", Type: models.ChallengeBookmark, Target: 1},
			{ID: "practiceAyah-2", Type: models.ChallengePracticeAyah, Target: 1},
		},
		Streak:     0,
		LastUpdate: "2024-01-01",
	})

	t.Run("Progress accumulates and clamps", func(t *testing.T) {
		state := e.LogAction(models.ChallengeReadVerses, 3)
		assert.Equal(t, 3, state.Challenges[0].Progress)
		assert.False(t, state.Challenges[0].Completed)

		state = e.LogAction(models.ChallengeReadVerses, 10)
		assert.Equal(t, 5, state.Challenges[0].Progress, "progress clamps to target")
		assert.True(t, state.Challenges[0].Completed)
	})

	t.Run("Completed challenge ignores further actions", func(t *testing.T) {
		state := e.LogAction(models.ChallengeReadVerses, 1)
		assert.Equal(t, 5, state.Challenges[0].Progress)
		assert.Equal(t, 0, state.Streak, "no streak increment while the set is incomplete")
	})

	t.Run("Completing the full set increments streak once", func(t *testing.T) {
		e.LogAction(models.ChallengeBookmark, 1)
		state := e.LogAction(models.ChallengePracticeAyah, 1)
		assert.True(t, state.AllComplete())
		assert.Equal(t, 1, state.Streak)

		// Further same-day actions are no-ops on a complete set.
		state = e.LogAction(models.ChallengePracticeAyah, 1)
		assert.Equal(t, 1, state.Streak, "streak must not increment twice in one day")
	})
}

func TestEngineStaleActionIgnored(t *testing.T) {
	kv := newMemKV()
	storeState(kv, models.DailyChallengeState{
		Challenges: []models.Challenge{
			{ID: "readVerses-0", Type: models.ChallengeReadVerses, Target: 5},
			{ID: "bookmarkVerse-1", Type: models.ChallengeBookmark, Target: 1},
			{ID: "practiceAyah-2", Type: models.ChallengePracticeAyah, Target: 1},
		},
		Streak:     0,
		LastUpdate: "2024-01-01",
	})

	// The engine's clock has moved on but Load was never called; the
	// action must not mutate yesterday's set or roll the day forward.
	e := newEngineAt(kv, "2024-01-02")
	e.LogAction(models.ChallengeReadVerses, 5)

	var stored models.DailyChallengeState
	require.True(t, kv.GetJSON(1, tracker.DailyChallengeKey, &stored))
	assert.Equal(t, "2024-01-01", stored.LastUpdate)
	assert.Equal(t, 0, stored.Challenges[0].Progress, "stale action must not be applied")
}

func TestEngineDeterministicSelection(t *testing.T) {
	// Two engines with the same seed draw the same challenge set.
	a := newEngineAt(newMemKV(), "2024-01-01").Load()
	b := newEngineAt(newMemKV(), "2024-01-01").Load()
	assert.Equal(t, a.Challenges, b.Challenges)
}
