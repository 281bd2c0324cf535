package tracker

import "github.com/nurania/nurania-go/internal/models"

// Settings, last-learning-path and last-viewed-hadith are single small
// records; plain getters and setters over the store are enough.

// GetSettings returns the user's settings merged over the defaults, so
// records saved by older clients that lack newer fields still load.
func GetSettings(kv KV, userID int64) models.Settings {
	s := models.DefaultSettings()
	kv.GetJSON(userID, keySettings, &s)
	return s
}

func SaveSettings(kv KV, userID int64, s models.Settings) {
	kv.SetJSON(userID, keySettings, s)
}

func GetLastLearningPath(kv KV, userID int64) *models.LastLearningPath {
	var p models.LastLearningPath
	if !kv.GetJSON(userID, keyLastLearningPath, &p) {
		return nil
	}
	return &p
}

func SaveLastLearningPath(kv KV, userID int64, p models.LastLearningPath) {
	kv.SetJSON(userID, keyLastLearningPath, p)
}

func GetLastViewedHadith(kv KV, userID int64) *models.LastViewedHadith {
	var h models.LastViewedHadith
	if !kv.GetJSON(userID, keyLastViewedHadith, &h) {
		return nil
	}
	return &h
}

func SaveLastViewedHadith(kv KV, userID int64, h models.LastViewedHadith) {
	kv.SetJSON(userID, keyLastViewedHadith, h)
}
