package notes

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

// Store is the append-only JSONL log of notes. The file is the single
// source of record: every read parses it in full and existing lines are
// never rewritten. A mutex serializes access so a reader cannot observe a
// partial append.
type Store struct {
	path   string
	logger *logrus.Entry
	mu     sync.Mutex
}

// NewStore creates a store against a fixed file path. The file itself is
// created lazily on the first Add.
func NewStore(path string, logger *logrus.Entry) *Store {
	return &Store{
		path:   path,
		logger: logger,
	}
}

// Add appends one note as a single JSON line, creating the log file and its
// parent directory if they do not exist.
func (s *Store) Add(note Note) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	line, err := json.Marshal(note)
	if err != nil {
		return fmt.Errorf("failed to encode note: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create notes directory: %w", err)
		}
	}

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open notes log: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(append(line, '\n')); err != nil {
		return fmt.Errorf("failed to append note: %w", err)
	}
	return nil
}

// All reads the whole log and returns every note in insertion order. A line
// that no longer parses is skipped with a warning so one corrupt record
// does not take the remaining notes down with it.
func (s *Store) All() ([]Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []Note{}, nil
		}
		return nil, fmt.Errorf("failed to read notes log: %w", err)
	}

	all := make([]Note, 0)
	for i, line := range strings.Split(string(data), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		var n Note
		if err := json.Unmarshal([]byte(line), &n); err != nil {
			s.logger.WithError(err).Warnf("Skipping corrupt note record at line %d", i+1)
			continue
		}
		all = append(all, n)
	}
	return all, nil
}
