package tracker

import "github.com/nurania/nurania-go/internal/models"

// historyLimit caps the recitation history at a reasonable size; the
// oldest records fall off the end.
const historyLimit = 50

// RecitationHistory is the capped, newest-first list of practice
// attempts and the feedback they received.
type RecitationHistory struct {
	kv     KV
	userID int64
	items  []models.RecitationRecord
}

func NewRecitationHistory(kv KV, userID int64) *RecitationHistory {
	h := &RecitationHistory{kv: kv, userID: userID}
	kv.GetJSON(userID, keyRecitations, &h.items)
	return h
}

func (h *RecitationHistory) Add(item models.RecitationRecord) {
	h.items = append([]models.RecitationRecord{item}, h.items...)
	if len(h.items) > historyLimit {
		h.items = h.items[:historyLimit]
	}
	h.kv.SetJSON(h.userID, keyRecitations, h.items)
}

func (h *RecitationHistory) List() []models.RecitationRecord {
	if h.items == nil {
		return []models.RecitationRecord{}
	}
	return h.items
}

func (h *RecitationHistory) Clear() {
	h.items = nil
	h.kv.DeleteKV(h.userID, keyRecitations)
}
