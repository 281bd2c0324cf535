// Package assistant calls the Gemini generateContent REST API for the
// two AI features: free-form tafsir answers and structured tajweed
// feedback on a practiced recitation.
package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/nurania/nurania-go/internal/models"
)

// ErrDisabled is returned when no API key is configured.
var ErrDisabled = errors.New("assistant is not configured")

type Client struct {
	baseURL string
	apiKey  string
	model   string
	http    *http.Client
}

func New(baseURL, apiKey, model string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		model:   model,
		http:    &http.Client{Timeout: 60 * time.Second},
	}
}

// Enabled reports whether an API key is configured.
func (c *Client) Enabled() bool { return c.apiKey != "" }

type generateRequest struct {
	Contents         []content         `json:"contents"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	ResponseMimeType string          `json:"responseMimeType,omitempty"`
	ResponseSchema   json.RawMessage `json:"responseSchema,omitempty"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// Tafsir answers a free-form question about a verse or topic with a
// concise scholarly explanation.
func (c *Client) Tafsir(ctx context.Context, query string) (string, error) {
	prompt := "You are a knowledgeable and respectful Islamic studies assistant. " +
		"Provide a concise, well-sourced explanation for the following question about " +
		"the Quran. Keep the answer accessible to a general reader.\n\nQuestion: " + query
	return c.generate(ctx, prompt, nil)
}

// tajweedSchema constrains the model to the structured feedback shape.
var tajweedSchema = json.RawMessage(`{
	"type": "OBJECT",
	"properties": {
		"encouragement": {"type": "STRING"},
		"feedbackItems": {
			"type": "ARRAY",
			"items": {
				"type": "OBJECT",
				"properties": {
					"wordIndex": {"type": "INTEGER"},
					"letter": {"type": "STRING"},
					"makhrajKey": {"type": "STRING", "enum": ["THROAT", "TONGUE", "LIPS", "NASAL"]},
					"feedback": {"type": "STRING"}
				},
				"required": ["wordIndex", "letter", "makhrajKey", "feedback"]
			}
		},
		"conclusion": {"type": "STRING"}
	},
	"required": ["encouragement", "feedbackItems", "conclusion"]
}`)

// TajweedFeedback reviews a transcribed recitation of a verse and
// returns structured pronunciation feedback.
func (c *Client) TajweedFeedback(ctx context.Context, verseText, recitation string) (*models.TajweedFeedback, error) {
	prompt := "You are a patient tajweed teacher. Compare the student's recitation " +
		"transcript against the verse and point out pronunciation issues by word " +
		"index and letter, naming the articulation point for each.\n\n" +
		"Verse: " + verseText + "\n\nStudent's recitation: " + recitation
	raw, err := c.generate(ctx, prompt, &generationConfig{
		ResponseMimeType: "application/json",
		ResponseSchema:   tajweedSchema,
	})
	if err != nil {
		return nil, err
	}

	var feedback models.TajweedFeedback
	if err := json.Unmarshal([]byte(raw), &feedback); err != nil {
		return nil, fmt.Errorf("assistant returned malformed feedback: %w", err)
	}
	return &feedback, nil
}

func (c *Client) generate(ctx context.Context, prompt string, cfg *generationConfig) (string, error) {
	if !c.Enabled() {
		return "", ErrDisabled
	}

	body, err := json.Marshal(generateRequest{
		Contents:         []content{{Parts: []part{{Text: prompt}}}},
		GenerationConfig: cfg,
	})
	if err != nil {
		return "", err
	}

	endpoint := fmt.Sprintf("%s/models/%s:generateContent?key=%s",
		c.baseURL, c.model, url.QueryEscape(c.apiKey))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("assistant api: unexpected status %d", resp.StatusCode)
	}

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("assistant returned no candidates")
	}
	return out.Candidates[0].Content.Parts[0].Text, nil
}
