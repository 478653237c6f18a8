package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// BibleService wraps the public verse lookup API the SOAP section pulls
// scripture text from.
type BibleService struct {
	baseURL string
	client  *http.Client
}

func NewBibleService(baseURL string) *BibleService {
	return &BibleService{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

type Verse struct {
	Book    string `json:"book_name"`
	Chapter int    `json:"chapter"`
	Verse   int    `json:"verse"`
	Text    string `json:"text"`
}

type Passage struct {
	Reference   string  `json:"reference"`
	Verses      []Verse `json:"verses"`
	Text        string  `json:"text"`
	Translation string  `json:"translation_name"`
}

// Lookup fetches a passage by free-form reference ("John 3:16").
func (s *BibleService) Lookup(ctx context.Context, reference string) (*Passage, error) {
	if strings.TrimSpace(reference) == "" {
		return nil, fmt.Errorf("empty reference")
	}

	u := s.baseURL + "/" + url.PathEscape(reference)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("bible api %s: %w", reference, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		data, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("bible api %s: status %d: %s", reference, resp.StatusCode, data)
	}

	var p Passage
	if err := json.NewDecoder(resp.Body).Decode(&p); err != nil {
		return nil, fmt.Errorf("decode passage: %w", err)
	}
	p.Text = strings.TrimSpace(p.Text)
	return &p, nil
}
