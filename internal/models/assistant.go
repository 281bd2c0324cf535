package models

// TajweedFeedbackItem is a single correction in a recitation review.
// MakhrajKey is one of "THROAT", "TONGUE", "LIPS" or "NASAL".
type TajweedFeedbackItem struct {
	WordIndex  int    `json:"wordIndex"`
	Letter     string `json:"letter"`
	MakhrajKey string `json:"makhrajKey"`
	Feedback   string `json:"feedback"`
}

// TajweedFeedback is the structured review the assistant produces for a
// practiced recitation.
type TajweedFeedback struct {
	Encouragement string                `json:"encouragement"`
	FeedbackItems []TajweedFeedbackItem `json:"feedbackItems"`
	Conclusion    string                `json:"conclusion"`
}
