package models

// ChallengeType names one of the daily goal templates.
type ChallengeType string

const (
	ChallengeReadVerses   ChallengeType = "readVerses"
	ChallengePracticeAyah ChallengeType = "practiceAyah"
	ChallengeBookmark     ChallengeType = "bookmarkVerse"
	ChallengeLearningStep ChallengeType = "completeLearningStep"
)

// Challenge is one daily goal instance. Completed always equals
// progress >= target; progress never exceeds target.
type Challenge struct {
	ID          string        `json:"id"`
	Type        ChallengeType `json:"type"`
	Description string        `json:"description"`
	Target      int           `json:"target"`
	Progress    int           `json:"progress"`
	Completed   bool          `json:"completed"`
}

// DailyChallengeState is the persisted state of the daily challenge
// engine: today's three goals, the consecutive-day streak, and the
// calendar day ("YYYY-MM-DD") the challenge set was generated for.
type DailyChallengeState struct {
	Challenges []Challenge `json:"challenges"`
	Streak     int         `json:"streak"`
	LastUpdate string      `json:"lastUpdate"`
}

// AllComplete reports whether every challenge in the set is completed.
func (s *DailyChallengeState) AllComplete() bool {
	for _, c := range s.Challenges {
		if !c.Completed {
			return false
		}
	}
	return true
}
