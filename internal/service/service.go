package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/paia-notes/backend/internal/classify"
	"github.com/paia-notes/backend/internal/clipper"
	"github.com/paia-notes/backend/internal/notes"
	"github.com/paia-notes/backend/internal/search"
)

// ErrValidation marks failures caused by bad caller input, as opposed to
// store I/O failures which pass through unwrapped.
var ErrValidation = errors.New("invalid input")

// DefaultTopK is the number of search hits returned when the caller does
// not ask for a specific count.
const DefaultTopK = 5

// Hit is one search result: a stored note and its relevance to the query.
type Hit struct {
	Score float64    `json:"score"`
	Note  notes.Note `json:"note"`
}

// Service wires the store, the classifier and the search engine into the
// operations the API exposes.
type Service struct {
	Store   *notes.Store
	Clipper *clipper.Clipper
	Logger  *logrus.Entry
}

func New(store *notes.Store, clip *clipper.Clipper, logger *logrus.Entry) *Service {
	return &Service{
		Store:   store,
		Clipper: clip,
		Logger:  logger,
	}
}

// CreateNote validates and appends a new note. A nil tags slice means the
// caller left tags out, and the classifier fills them in from the text.
func (s *Service) CreateNote(text, title string, tags []string) (notes.Note, error) {
	if strings.TrimSpace(text) == "" {
		return notes.Note{}, fmt.Errorf("%w: text is required", ErrValidation)
	}

	if tags == nil {
		tags = classify.AutoCategories(text)
	}

	note := notes.Note{
		ID:        uuid.NewString(),
		Title:     title,
		Body:      text,
		Tags:      tags,
		CreatedAt: notes.Timestamp(time.Now()),
	}

	if err := s.Store.Add(note); err != nil {
		return notes.Note{}, err
	}
	return note, nil
}

// SearchNotes rebuilds the TF-IDF index over the full log and ranks every
// note against the query. An empty store yields an empty result without
// touching the index.
func (s *Service) SearchNotes(query string, topK int) ([]Hit, error) {
	if topK < 0 {
		return nil, fmt.Errorf("%w: topK must not be negative", ErrValidation)
	}

	all, err := s.Store.All()
	if err != nil {
		return nil, err
	}
	if len(all) == 0 {
		return []Hit{}, nil
	}

	docs := make([]string, len(all))
	for i, n := range all {
		docs[i] = n.SearchText()
	}

	index := search.BuildIndex(docs)
	ranked := index.Search(query, topK)

	hits := make([]Hit, len(ranked))
	for i, r := range ranked {
		hits[i] = Hit{Score: r.Score, Note: all[r.Index]}
	}
	return hits, nil
}

// Categorize suggests tags for free text without storing anything.
func (s *Service) Categorize(text string) []string {
	return classify.AutoCategories(text)
}

// ListNotes returns every stored note in insertion order.
func (s *Service) ListNotes() ([]notes.Note, error) {
	return s.Store.All()
}

// ClipNote downloads a webpage and stores its extracted text as a new note,
// with tags suggested by the classifier.
func (s *Service) ClipNote(ctx context.Context, pageURL string) (notes.Note, error) {
	if strings.TrimSpace(pageURL) == "" {
		return notes.Note{}, fmt.Errorf("%w: url is required", ErrValidation)
	}

	page, err := s.Clipper.Clip(ctx, pageURL)
	if err != nil {
		return notes.Note{}, fmt.Errorf("failed to clip %s: %w", pageURL, err)
	}
	if strings.TrimSpace(page.Text) == "" {
		return notes.Note{}, fmt.Errorf("%w: page has no extractable text", ErrValidation)
	}

	s.Logger.Infof("Clipped %d characters from %s", len(page.Text), pageURL)
	return s.CreateNote(page.Text, page.Title, nil)
}
