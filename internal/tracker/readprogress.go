package tracker

import "math"

// ReadProgress records which ayahs of which surahs the user has marked
// as read. The persisted shape is a map from surah number to the list of
// read ayah numbers, matching the browser client's format.
type ReadProgress struct {
	kv     KV
	userID int64
	surahs map[int][]int
}

// NewReadProgress loads the user's read progress from the store. A
// missing or unreadable record starts empty.
func NewReadProgress(kv KV, userID int64) *ReadProgress {
	p := &ReadProgress{kv: kv, userID: userID, surahs: make(map[int][]int)}
	kv.GetJSON(userID, keyReadProgress, &p.surahs)
	return p
}

// Toggle flips the read state of one ayah and persists. It returns the
// new membership: true when the ayah is now marked read.
func (p *ReadProgress) Toggle(surah, ayah int) bool {
	ayahs := p.surahs[surah]
	for i, a := range ayahs {
		if a == ayah {
			p.surahs[surah] = append(ayahs[:i], ayahs[i+1:]...)
			p.save()
			return false
		}
	}
	p.surahs[surah] = append(ayahs, ayah)
	p.save()
	return true
}

// IsRead reports whether an ayah is marked read.
func (p *ReadProgress) IsRead(surah, ayah int) bool {
	for _, a := range p.surahs[surah] {
		if a == ayah {
			return true
		}
	}
	return false
}

// MarkAllRead marks every ayah of a surah as read.
func (p *ReadProgress) MarkAllRead(surah, totalAyahs int) {
	all := make([]int, totalAyahs)
	for i := range all {
		all[i] = i + 1
	}
	p.surahs[surah] = all
	p.save()
}

// MarkAllUnread clears a surah's read set.
func (p *ReadProgress) MarkAllUnread(surah int) {
	p.surahs[surah] = []int{}
	p.save()
}

// Percent returns the surah's completion percentage, rounded to the
// nearest integer. A surah with no ayahs reads as 0.
func (p *ReadProgress) Percent(surah, totalAyahs int) int {
	if totalAyahs == 0 {
		return 0
	}
	read := len(p.surahs[surah])
	return int(math.Round(float64(read) / float64(totalAyahs) * 100))
}

// ReadAyahs returns the ayah numbers marked read in a surah.
func (p *ReadProgress) ReadAyahs(surah int) []int {
	return p.surahs[surah]
}

func (p *ReadProgress) save() {
	p.kv.SetJSON(p.userID, keyReadProgress, p.surahs)
}
