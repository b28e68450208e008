package coach

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/redchainhq/redchain/internal/game"
	"github.com/redchainhq/redchain/internal/logger"
)

// FallbackMessage replaces the debrief whenever the external service cannot
// be reached. The weekly view must render either way.
const FallbackMessage = "System error: Neural link unstable. Discipline alone must guide you."

const (
	defaultEndpoint = "https://generativelanguage.googleapis.com/v1beta/models/gemini-3-flash-preview:generateContent"
	requestTimeout  = 15 * time.Second
	maxWords        = 60
)

// Client talks to the generateContent-style coaching endpoint. It is a
// best-effort collaborator: every failure path degrades to FallbackMessage
// and never an error, so the caller can render unconditionally.
type Client struct {
	endpoint string
	apiKey   string
	http     *http.Client
}

func New(apiKey string) *Client {
	return &Client{
		endpoint: defaultEndpoint,
		apiKey:   apiKey,
		http:     &http.Client{Timeout: requestTimeout},
	}
}

// NewWithEndpoint overrides the service URL (tests, self-hosted gateways).
func NewWithEndpoint(apiKey, endpoint string) *Client {
	c := New(apiKey)
	c.endpoint = endpoint
	return c
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// Debrief asks the coach for a short mission debrief over the last week's
// completion series. The returned string is always renderable; length is
// bounded on both ends (prompted and clamped).
func (c *Client) Debrief(ctx context.Context, series []game.DayCount, completionRate float64, habitTitles []string) string {
	if c.apiKey == "" {
		return FallbackMessage
	}

	seriesJSON, err := json.Marshal(series)
	if err != nil {
		return FallbackMessage
	}

	prompt := fmt.Sprintf(
		"Act as a high-performance elite coach. "+
			"User completion data for the last 7 days: %s. "+
			"Completion rate: %d%%. "+
			"Habits tracked: %s. "+
			"Give a hard-hitting, short mission debrief (max %d words). "+
			"Focus on where they fell short and give one tactical advice to improve consistency. "+
			"Keep the tone dark, elite, and ultra-disciplined.",
		seriesJSON, int(completionRate+0.5), strings.Join(habitTitles, ", "), maxWords)

	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		return FallbackMessage
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return FallbackMessage
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		logger.Warn("coach request failed", "error", err)
		return FallbackMessage
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.Warn("coach request rejected", "status", resp.StatusCode)
		return FallbackMessage
	}

	var decoded generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		logger.Warn("coach response unreadable", "error", err)
		return FallbackMessage
	}

	text := extractText(decoded)
	if text == "" {
		return FallbackMessage
	}
	return clampWords(text, maxWords)
}

func extractText(resp generateResponse) string {
	for _, cand := range resp.Candidates {
		var b strings.Builder
		for _, p := range cand.Content.Parts {
			b.WriteString(p.Text)
		}
		if s := strings.TrimSpace(b.String()); s != "" {
			return s
		}
	}
	return ""
}

// clampWords bounds a response that ignored the prompted word cap.
func clampWords(s string, n int) string {
	words := strings.Fields(s)
	if len(words) <= n {
		return s
	}
	return strings.Join(words[:n], " ") + "…"
}
