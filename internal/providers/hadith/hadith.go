// Package hadith wraps the hadithapi.com REST API. The API paginates
// everything and reports "no results" as a 404, which this package
// normalizes to an empty page.
package hadith

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/nurania/nurania-go/internal/models"
)

// Books is the fixed set of collections the hadith database indexes.
// The API's own books endpoint is unreliable, so the list is pinned.
var Books = []models.HadithBook{
	{Name: "Sahih Bukhari", Slug: "sahih-bukhari"},
	{Name: "Sahih Muslim", Slug: "sahih-muslim"},
	{Name: "Jami' Al-Tirmidhi", Slug: "al-tirmidhi"},
	{Name: "Sunan Abu Dawood", Slug: "abu-dawood"},
	{Name: "Sunan Ibn-e-Majah", Slug: "ibn-e-majah"},
	{Name: "Sunan An-Nasa`i", Slug: "sunan-nasai"},
	{Name: "Mishkat Al-Masabih", Slug: "mishkat"},
	{Name: "Musnad Ahmad", Slug: "musnad-ahmad"},
	{Name: "Al-Silsila Sahiha", Slug: "al-silsila-sahiha"},
}

type Provider struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

func New(baseURL, apiKey string) *Provider {
	return &Provider{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		client:  &http.Client{Timeout: 20 * time.Second},
	}
}

// SearchParams narrows a hadith listing. Zero values mean "no filter".
type SearchParams struct {
	BookSlug  string
	ChapterID string
	Query     string // matches against the English text
	Number    string // exact hadith number within the book
	Status    string // authenticity grading filter
	Page      int
}

// Search returns one page of hadiths matching the params. A 404 from
// the API means no hadith matched and yields an empty page, not an
// error.
func (p *Provider) Search(ctx context.Context, params SearchParams) (*models.HadithPage, error) {
	q := url.Values{}
	q.Set("apiKey", p.apiKey)
	q.Set("paginate", "25")
	if params.BookSlug != "" {
		q.Set("book", params.BookSlug)
	}
	if params.ChapterID != "" {
		q.Set("chapter", params.ChapterID)
	}
	if params.Query != "" {
		q.Set("hadithEnglish", params.Query)
	}
	if params.Number != "" {
		q.Set("hadithNumber", params.Number)
	}
	if params.Status != "" {
		q.Set("status", params.Status)
	}
	if params.Page > 1 {
		q.Set("page", strconv.Itoa(params.Page))
	}

	var raw apiHadithResponse
	found, err := p.getJSON(ctx, "/hadiths?"+q.Encode(), &raw)
	if err != nil {
		return nil, err
	}
	if !found {
		return &models.HadithPage{Hadiths: []models.Hadith{}, CurrentPage: 1, LastPage: 1}, nil
	}

	page := &models.HadithPage{
		Hadiths:     make([]models.Hadith, 0, len(raw.Hadiths.Data)),
		Total:       raw.Hadiths.Total,
		PerPage:     raw.Hadiths.PerPage,
		CurrentPage: raw.Hadiths.CurrentPage,
		LastPage:    raw.Hadiths.LastPage,
	}
	for _, h := range raw.Hadiths.Data {
		page.Hadiths = append(page.Hadiths, models.Hadith{
			ID:              h.ID,
			HadithNumber:    h.HadithNumber,
			EnglishNarrator: h.EnglishNarrator,
			EnglishText:     h.HadithEnglish,
			UrduText:        h.HadithUrdu,
			ArabicText:      h.HadithArabic,
			Status:          h.Status,
			BookName:        h.Book.BookName,
			ChapterNumber:   h.Chapter.ChapterNumber,
			ChapterEnglish:  h.Chapter.ChapterEnglish,
		})
	}
	return page, nil
}

// Chapters lists the chapters of one book.
func (p *Provider) Chapters(ctx context.Context, bookSlug string) ([]models.HadithChapter, error) {
	q := url.Values{}
	q.Set("apiKey", p.apiKey)

	var raw apiChapterResponse
	found, err := p.getJSON(ctx, "/"+url.PathEscape(bookSlug)+"/chapters?"+q.Encode(), &raw)
	if err != nil {
		return nil, err
	}
	if !found {
		return []models.HadithChapter{}, nil
	}

	chapters := make([]models.HadithChapter, 0, len(raw.Chapters))
	for _, c := range raw.Chapters {
		chapters = append(chapters, models.HadithChapter{
			ID:             c.ID,
			ChapterNumber:  c.ChapterNumber,
			ChapterEnglish: c.ChapterEnglish,
			ChapterUrdu:    c.ChapterUrdu,
			ChapterArabic:  c.ChapterArabic,
			BookSlug:       c.BookSlug,
		})
	}
	return chapters, nil
}

// getJSON fetches path and decodes the body into out. The second return
// is false when the API answered 404.
func (p *Provider) getJSON(ctx context.Context, path string, out interface{}) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+path, nil)
	if err != nil {
		return false, err
	}
	resp, err := p.client.Do(req)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusNotFound {
		return false, nil
	}
	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("hadith api: unexpected status %d", resp.StatusCode)
	}
	return true, json.NewDecoder(resp.Body).Decode(out)
}
