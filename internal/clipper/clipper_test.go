package clipper_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/paia-notes/backend/internal/clipper"
)

func TestClipExtractsTitleAndText(t *testing.T) {
	page := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>
<head>
  <title>Notas del proyecto</title>
  <style>body { color: red; }</style>
  <script>console.log("fuera");</script>
</head>
<body>
  <h1>Resumen</h1>
  <p>La   reunión quedó   agendada.</p>
</body>
</html>`))
	}))
	defer page.Close()

	c := clipper.New(5*time.Second, "test-agent")
	result, err := c.Clip(context.Background(), page.URL)

	assert.NoError(t, err)
	assert.Equal(t, "Notas del proyecto", result.Title)
	assert.Equal(t, "Resumen La reunión quedó agendada.", result.Text)
	assert.NotContains(t, result.Text, "console.log")
	assert.NotContains(t, result.Text, "color: red")
}

func TestClipSendsUserAgent(t *testing.T) {
	var gotAgent string
	page := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAgent = r.Header.Get("User-Agent")
		w.Write([]byte("<html><body>hola</body></html>"))
	}))
	defer page.Close()

	c := clipper.New(5*time.Second, "paia-notes/1.0")
	_, err := c.Clip(context.Background(), page.URL)

	assert.NoError(t, err)
	assert.Equal(t, "paia-notes/1.0", gotAgent)
}

func TestClipNon200(t *testing.T) {
	page := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not here", http.StatusNotFound)
	}))
	defer page.Close()

	c := clipper.New(5*time.Second, "test-agent")
	_, err := c.Clip(context.Background(), page.URL)

	assert.Error(t, err)
}

func TestClipBadURL(t *testing.T) {
	c := clipper.New(time.Second, "test-agent")
	_, err := c.Clip(context.Background(), "http://127.0.0.1:1/unreachable")

	assert.Error(t, err)
}
