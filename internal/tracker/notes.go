package tracker

import "strings"

// HadithNotes stores the user's private note per hadith. Saving an empty
// note deletes the entry so the stored map never accumulates blanks.
type HadithNotes struct {
	kv     KV
	userID int64
	notes  map[int64]string
}

func NewHadithNotes(kv KV, userID int64) *HadithNotes {
	n := &HadithNotes{kv: kv, userID: userID, notes: make(map[int64]string)}
	kv.GetJSON(userID, keyHadithNotes, &n.notes)
	return n
}

func (n *HadithNotes) Get(hadithID int64) string {
	return n.notes[hadithID]
}

func (n *HadithNotes) Save(hadithID int64, text string) {
	if strings.TrimSpace(text) == "" {
		delete(n.notes, hadithID)
	} else {
		n.notes[hadithID] = text
	}
	n.kv.SetJSON(n.userID, keyHadithNotes, n.notes)
}
