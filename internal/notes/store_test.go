package notes_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	"github.com/paia-notes/backend/internal/notes"
)

func newTestStore(t *testing.T) (*notes.Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "notes.jsonl")
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	return notes.NewStore(path, logger.WithField("test", t.Name())), path
}

func TestStoreRoundTrip(t *testing.T) {
	store, _ := newTestStore(t)

	added := []notes.Note{
		{ID: "1", Title: "Reunión", Body: "Agenda para el viernes", Tags: []string{"reuniones"}, CreatedAt: "2024-01-01T12:00:00.000Z"},
		{ID: "2", Body: "cliente quiere cotización", Tags: []string{"ventas"}, CreatedAt: "2024-01-02T12:00:00.000Z"},
		{ID: "3", Body: "hola", Tags: []string{"general"}, CreatedAt: "2024-01-03T12:00:00.000Z"},
	}

	for _, n := range added {
		assert.NoError(t, store.Add(n))
	}

	all, err := store.All()
	assert.NoError(t, err)
	assert.Equal(t, added, all)
}

func TestStoreIdempotentRead(t *testing.T) {
	store, _ := newTestStore(t)

	assert.NoError(t, store.Add(notes.Note{ID: "1", Body: "texto", Tags: []string{"general"}}))

	first, err := store.All()
	assert.NoError(t, err)
	second, err := store.All()
	assert.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestStoreMissingFile(t *testing.T) {
	store, _ := newTestStore(t)

	all, err := store.All()
	assert.NoError(t, err)
	assert.Empty(t, all)
}

func TestStoreCreatesParentDir(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "deeper", "notes.jsonl")
	store := notes.NewStore(path, logrus.New().WithField("test", t.Name()))

	assert.NoError(t, store.Add(notes.Note{ID: "1", Body: "texto"}))

	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestStoreSkipsCorruptLine(t *testing.T) {
	store, path := newTestStore(t)

	assert.NoError(t, store.Add(notes.Note{ID: "1", Body: "antes"}))

	// Simulate a torn write in the middle of the log
	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0644)
	assert.NoError(t, err)
	_, err = f.WriteString("{\"id\":\"torn\",\"tex\n")
	assert.NoError(t, err)
	assert.NoError(t, f.Close())

	assert.NoError(t, store.Add(notes.Note{ID: "2", Body: "después"}))

	all, err := store.All()
	assert.NoError(t, err)
	assert.Len(t, all, 2)
	assert.Equal(t, "1", all[0].ID)
	assert.Equal(t, "2", all[1].ID)
}

func TestStorePersistsSpanishFieldNames(t *testing.T) {
	store, path := newTestStore(t)

	assert.NoError(t, store.Add(notes.Note{
		ID:        "abc",
		Title:     "Reunión",
		Body:      "Agenda para el viernes",
		Tags:      []string{"reuniones"},
		CreatedAt: "2024-01-01T12:00:00.000Z",
	}))

	data, err := os.ReadFile(path)
	assert.NoError(t, err)
	assert.Contains(t, string(data), `"titulo":"Reunión"`)
	assert.Contains(t, string(data), `"texto":"Agenda para el viernes"`)
	assert.Contains(t, string(data), `"etiquetas":["reuniones"]`)
}

func TestSearchText(t *testing.T) {
	n := notes.Note{Title: "Reunión", Body: "agenda del viernes", Tags: []string{"reuniones", "equipo"}}
	assert.Equal(t, "Reunión agenda del viernes reuniones equipo", n.SearchText())

	untitled := notes.Note{Body: "solo texto"}
	assert.Equal(t, "solo texto", untitled.SearchText())
}
