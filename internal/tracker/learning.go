package tracker

import "math"

// LearningProgress records which steps of which guided learning paths
// are complete. Step ids are opaque strings chosen by the caller, so
// there is no "mark all" here; the tracker never knows a path's full
// step set.
type LearningProgress struct {
	kv     KV
	userID int64
	paths  map[string][]string
}

func NewLearningProgress(kv KV, userID int64) *LearningProgress {
	p := &LearningProgress{kv: kv, userID: userID, paths: make(map[string][]string)}
	kv.GetJSON(userID, keyLearningProgress, &p.paths)
	return p
}

// ToggleStep flips a step's completion and persists. It returns true
// when the step is now complete.
func (p *LearningProgress) ToggleStep(pathID, stepID string) bool {
	steps := p.paths[pathID]
	for i, s := range steps {
		if s == stepID {
			p.paths[pathID] = append(steps[:i], steps[i+1:]...)
			p.save()
			return false
		}
	}
	p.paths[pathID] = append(steps, stepID)
	p.save()
	return true
}

func (p *LearningProgress) IsStepComplete(pathID, stepID string) bool {
	for _, s := range p.paths[pathID] {
		if s == stepID {
			return true
		}
	}
	return false
}

// PathPercent returns the path's completion percentage given the total
// number of steps, which only the caller knows.
func (p *LearningProgress) PathPercent(pathID string, totalSteps int) int {
	if totalSteps == 0 {
		return 0
	}
	done := len(p.paths[pathID])
	return int(math.Round(float64(done) / float64(totalSteps) * 100))
}

func (p *LearningProgress) save() {
	p.kv.SetJSON(p.userID, keyLearningProgress, p.paths)
}
