// Package quran wraps the quranapi.pages.dev REST API and keeps a
// process-local cache of the full text so verse search works without
// a round trip per query.
package quran

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"net/http"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/nurania/nurania-go/internal/models"
)

// ErrNotReady is returned by Search before the cache warm job has
// downloaded the full text.
var ErrNotReady = errors.New("quran text not downloaded yet")

// ErrNotFound is returned when the API reports the requested resource
// does not exist, such as an ayah number past the end of a surah.
var ErrNotFound = errors.New("not found")

const minQueryRunes = 3

type Provider struct {
	baseURL string
	client  *http.Client

	mu     sync.RWMutex
	index  []models.SurahInfo
	surahs map[int]*models.Surah
}

func New(baseURL string) *Provider {
	return &Provider{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 20 * time.Second},
		surahs:  make(map[int]*models.Surah),
	}
}

func (p *Provider) getJSON(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+path, nil)
	if err != nil {
		return err
	}
	resp, err := p.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("quran api %s: %w", path, ErrNotFound)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("quran api %s: unexpected status %d", path, resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// AllSurahs returns the surah index. The index is fetched once and then
// served from memory.
func (p *Provider) AllSurahs(ctx context.Context) ([]models.SurahInfo, error) {
	p.mu.RLock()
	cached := p.index
	p.mu.RUnlock()
	if cached != nil {
		return cached, nil
	}

	var raw []apiSurahInfo
	if err := p.getJSON(ctx, "/surah.json", &raw); err != nil {
		return nil, err
	}
	index := make([]models.SurahInfo, len(raw))
	for i, s := range raw {
		index[i] = models.SurahInfo{
			SurahNumber:     i + 1,
			SurahName:       s.SurahName,
			SurahNameArabic: s.SurahNameArabic,
			Translation:     s.SurahNameTranslation,
			RevelationPlace: s.RevelationPlace,
			TotalAyahs:      s.TotalAyah,
		}
	}

	p.mu.Lock()
	p.index = index
	p.mu.Unlock()
	return index, nil
}

// Verse fetches a single ayah with its available recitations.
func (p *Provider) Verse(ctx context.Context, surah, ayah int) (*models.Verse, error) {
	var raw apiVerse
	if err := p.getJSON(ctx, fmt.Sprintf("/%d/%d.json", surah, ayah), &raw); err != nil {
		return nil, err
	}
	return &models.Verse{
		Arabic:   raw.Arabic1,
		English:  raw.English,
		Reciters: recitersFromAudio(raw.Audio),
	}, nil
}

// recitersFromAudio flattens the API's keyed audio map into a list
// sorted by key, so reciter ordering is stable across requests.
func recitersFromAudio(audio map[string]apiAudio) []models.Reciter {
	keys := make([]string, 0, len(audio))
	for k := range audio {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	reciters := make([]models.Reciter, 0, len(keys))
	for _, k := range keys {
		reciters = append(reciters, models.Reciter{
			ID:   k,
			Name: audio[k].Reciter,
			URL:  audio[k].URL,
		})
	}
	return reciters
}

// Surah fetches a full chapter. Warmed chapters are served from the
// cache without hitting the network.
func (p *Provider) Surah(ctx context.Context, number int) (*models.Surah, error) {
	p.mu.RLock()
	cached := p.surahs[number]
	p.mu.RUnlock()
	if cached != nil {
		return cached, nil
	}

	var raw apiSurah
	if err := p.getJSON(ctx, fmt.Sprintf("/%d.json", number), &raw); err != nil {
		return nil, err
	}

	s := &models.Surah{
		ID:              number,
		Name:            raw.SurahNameArabic,
		Transliteration: raw.SurahName,
		Translation:     raw.SurahNameTranslation,
		RevelationPlace: raw.RevelationPlace,
		TotalVerses:     raw.TotalAyah,
		Verses:          make([]models.Ayah, 0, len(raw.Arabic1)),
	}
	for i, arabic := range raw.Arabic1 {
		english := ""
		if i < len(raw.English) {
			english = raw.English[i]
		}
		s.Verses = append(s.Verses, models.Ayah{
			ID:      i + 1,
			Text:    arabic,
			English: english,
		})
	}

	p.mu.Lock()
	p.surahs[number] = s
	p.mu.Unlock()
	return s, nil
}

// Tafsir fetches the commentaries for one verse.
func (p *Provider) Tafsir(ctx context.Context, surah, ayah int) (*models.TafsirResult, error) {
	var raw apiTafsir
	if err := p.getJSON(ctx, fmt.Sprintf("/tafsir/%d_%d.json", surah, ayah), &raw); err != nil {
		return nil, err
	}
	result := &models.TafsirResult{
		SurahName:   raw.SurahName,
		SurahNumber: surah,
		AyahNumber:  ayah,
		Tafsirs:     make([]models.Tafsir, 0, len(raw.Tafsirs)),
	}
	for _, t := range raw.Tafsirs {
		result.Tafsirs = append(result.Tafsirs, models.Tafsir{Author: t.Author, Content: t.Content})
	}
	return result, nil
}

// WarmCache downloads the surah index and every chapter into memory.
// onProgress receives the completion percentage after each chapter.
// The first error aborts the warm; chapters cached so far stay cached.
func (p *Provider) WarmCache(onProgress func(percent int)) error {
	ctx := context.Background()
	index, err := p.AllSurahs(ctx)
	if err != nil {
		return err
	}
	for i, info := range index {
		if _, err := p.Surah(ctx, info.SurahNumber); err != nil {
			return fmt.Errorf("downloading surah %d: %w", info.SurahNumber, err)
		}
		if onProgress != nil {
			onProgress((i + 1) * 100 / len(index))
		}
	}
	return nil
}

// Ready reports whether the full text is cached and Search can serve.
func (p *Provider) Ready() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.index != nil && len(p.surahs) == len(p.index)
}

// Search scans the cached text for the query. Arabic queries match the
// Arabic text, anything else matches the English translation
// case-insensitively. Queries shorter than three runes return no hits.
func (p *Provider) Search(query string) ([]models.VerseSearchResult, error) {
	query = strings.TrimSpace(query)
	if len([]rune(query)) < minQueryRunes {
		return []models.VerseSearchResult{}, nil
	}
	if !p.Ready() {
		return nil, ErrNotReady
	}

	arabic := isArabic(query)
	lower := strings.ToLower(query)

	p.mu.RLock()
	defer p.mu.RUnlock()

	results := []models.VerseSearchResult{}
	for _, info := range p.index {
		s := p.surahs[info.SurahNumber]
		if s == nil {
			continue
		}
		for _, v := range s.Verses {
			var hit bool
			if arabic {
				hit = strings.Contains(v.Text, query)
			} else {
				hit = strings.Contains(strings.ToLower(v.English), lower)
			}
			if hit {
				results = append(results, models.VerseSearchResult{
					SurahNumber: info.SurahNumber,
					SurahName:   info.SurahName,
					AyahNumber:  v.ID,
					Arabic:      v.Text,
					English:     v.English,
				})
			}
		}
	}
	return results, nil
}

// isArabic reports whether the string contains any character from the
// Arabic Unicode block.
func isArabic(s string) bool {
	for _, r := range s {
		if r >= 0x0600 && r <= 0x06FF {
			return true
		}
	}
	return false
}

// RandomVerse picks a uniformly random ayah for the home page.
func (p *Provider) RandomVerse(ctx context.Context) (*models.VerseOfTheDay, error) {
	index, err := p.AllSurahs(ctx)
	if err != nil {
		return nil, err
	}
	info := index[rand.Intn(len(index))]
	ayah := rand.Intn(info.TotalAyahs) + 1

	verse, err := p.Verse(ctx, info.SurahNumber, ayah)
	if err != nil {
		return nil, err
	}
	return &models.VerseOfTheDay{
		Arabic:      verse.Arabic,
		English:     verse.English,
		SurahName:   info.SurahName,
		SurahNumber: info.SurahNumber,
		AyahNumber:  ayah,
	}, nil
}
