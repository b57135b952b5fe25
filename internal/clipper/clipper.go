package clipper

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/net/html"
)

// Page contains the text extracted from a webpage.
type Page struct {
	URL   string
	Title string
	Text  string
}

// Clipper downloads a web page and reduces it to the plain text a note can
// hold.
type Clipper struct {
	client    *http.Client
	userAgent string
}

func New(timeout time.Duration, userAgent string) *Clipper {
	return &Clipper{
		client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:    10,
				IdleConnTimeout: 90 * time.Second,
			},
		},
		userAgent: userAgent,
	}
}

// Clip downloads and extracts a webpage.
func (c *Clipper) Clip(ctx context.Context, pageURL string) (*Page, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("network error: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("received non-200 status code: %d", resp.StatusCode)
	}

	page := &Page{URL: pageURL}
	if err := extractText(resp.Body, page); err != nil {
		return nil, fmt.Errorf("parsing error: %w", err)
	}
	return page, nil
}

// extractText pulls the title and visible text using the standard tokenizer
func extractText(body io.Reader, page *Page) error {
	tokenizer := html.NewTokenizer(body)
	var textBuilder strings.Builder
	inScript := false
	inStyle := false
	inTitle := false

	for {
		tokenType := tokenizer.Next()

		switch tokenType {
		case html.ErrorToken:
			if tokenizer.Err() == io.EOF {
				page.Text = cleanText(textBuilder.String())
				return nil
			}
			return tokenizer.Err()

		case html.StartTagToken:
			switch tokenizer.Token().Data {
			case "script":
				inScript = true
			case "style":
				inStyle = true
			case "title":
				inTitle = true
			}

		case html.EndTagToken:
			switch tokenizer.Token().Data {
			case "script":
				inScript = false
			case "style":
				inStyle = false
			case "title":
				inTitle = false
			}

		case html.TextToken:
			if inTitle {
				page.Title = strings.TrimSpace(tokenizer.Token().Data)
				continue
			}
			if !inScript && !inStyle {
				text := strings.TrimSpace(tokenizer.Token().Data)
				if text != "" {
					textBuilder.WriteString(text + " ")
				}
			}
		}
	}
}

// cleanText removes excessive whitespace
func cleanText(input string) string {
	return strings.Join(strings.Fields(input), " ")
}
