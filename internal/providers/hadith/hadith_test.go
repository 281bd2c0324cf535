package hadith

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSearchBuildsQueryAndMapsResponse(t *testing.T) {
	var gotQuery map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/hadiths" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		gotQuery = map[string]string{}
		for k := range r.URL.Query() {
			gotQuery[k] = r.URL.Query().Get(k)
		}
		w.Write([]byte(`{"hadiths":{"data":[
			{"id":7,"hadithNumber":"1","englishNarrator":"Narrated 'Umar bin Al-Khattab:",
			 "hadithEnglish":"Actions are judged by intentions.","hadithUrdu":"...","hadithArabic":"...",
			 "status":"Sahih",
			 "book":{"bookName":"Sahih Bukhari"},
			 "chapter":{"chapterNumber":"1","chapterEnglish":"Revelation"}}
		],"total":1,"per_page":25,"current_page":2,"last_page":3}}`))
	}))
	defer server.Close()

	p := New(server.URL, "test-key")
	page, err := p.Search(context.Background(), SearchParams{
		BookSlug: "sahih-bukhari",
		Query:    "intentions",
		Status:   "Sahih",
		Page:     2,
	})
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}

	for key, want := range map[string]string{
		"apiKey":        "test-key",
		"book":          "sahih-bukhari",
		"hadithEnglish": "intentions",
		"status":        "Sahih",
		"page":          "2",
		"paginate":      "25",
	} {
		if gotQuery[key] != want {
			t.Errorf("query param %s = %q, want %q", key, gotQuery[key], want)
		}
	}

	if page.Total != 1 || page.CurrentPage != 2 || page.LastPage != 3 {
		t.Errorf("unexpected pagination: %+v", page)
	}
	if len(page.Hadiths) != 1 {
		t.Fatalf("expected 1 hadith, got %d", len(page.Hadiths))
	}
	h := page.Hadiths[0]
	if h.ID != 7 || h.EnglishText != "Actions are judged by intentions." ||
		h.BookName != "Sahih Bukhari" || h.ChapterEnglish != "Revelation" {
		t.Errorf("unexpected hadith: %+v", h)
	}
}

func TestSearchNotFoundYieldsEmptyPage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	page, err := New(server.URL, "k").Search(context.Background(), SearchParams{Query: "nonexistent"})
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if page.Hadiths == nil || len(page.Hadiths) != 0 {
		t.Errorf("expected empty non-nil hadith list, got %+v", page.Hadiths)
	}
	if page.CurrentPage != 1 || page.LastPage != 1 {
		t.Errorf("unexpected pagination for empty page: %+v", page)
	}
}

func TestSearchServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	if _, err := New(server.URL, "k").Search(context.Background(), SearchParams{}); err == nil {
		t.Fatal("expected error on 500 response")
	}
}

func TestChapters(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/sahih-bukhari/chapters" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.URL.Query().Get("apiKey") != "k" {
			t.Error("apiKey not forwarded")
		}
		w.Write([]byte(`{"chapters":[
			{"id":1,"chapterNumber":"1","chapterEnglish":"Revelation","chapterUrdu":"...","chapterArabic":"...","bookSlug":"sahih-bukhari"}
		]}`))
	}))
	defer server.Close()

	chapters, err := New(server.URL, "k").Chapters(context.Background(), "sahih-bukhari")
	if err != nil {
		t.Fatalf("Chapters failed: %v", err)
	}
	if len(chapters) != 1 || chapters[0].ChapterEnglish != "Revelation" {
		t.Errorf("unexpected chapters: %+v", chapters)
	}
}

func TestBooksListPinned(t *testing.T) {
	if len(Books) != 9 {
		t.Fatalf("expected 9 books, got %d", len(Books))
	}
	if Books[0].Slug != "sahih-bukhari" || Books[8].Slug != "al-silsila-sahiha" {
		t.Errorf("unexpected book ordering: first %+v, last %+v", Books[0], Books[8])
	}
}
