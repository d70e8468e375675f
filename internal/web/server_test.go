package web

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/tonetint/internal/classifier"
	"github.com/dshills/tonetint/internal/tonetint"
	"github.com/dshills/tonetint/pkg/types"
)

// namedModel is a fixed-result model with a name
type namedModel struct {
	name   string
	result types.SentimentResult
	closed bool
}

func (m *namedModel) Classify(_ context.Context, texts []string) ([]types.SentimentResult, error) {
	out := make([]types.SentimentResult, len(texts))
	for i := range out {
		out[i] = m.result
	}
	return out, nil
}

func (m *namedModel) Provider() string { return "test" }
func (m *namedModel) Model() string    { return m.name }
func (m *namedModel) Close() error     { m.closed = true; return nil }

func positiveModel() *namedModel {
	return &namedModel{name: "pos-model", result: types.SentimentResult{Label: "POS", Score: 0.9}}
}

func setupServer(t *testing.T, model classifier.Model, opts Options) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)
	if opts.Config == (tonetint.Config{}) {
		opts.Config = tonetint.DefaultConfig()
	}
	s, err := NewServer(model, opts)
	require.NoError(t, err)
	return s
}

func postForm(t *testing.T, s *Server, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	return w
}

func TestIndex(t *testing.T) {
	s := setupServer(t, positiveModel(), Options{Models: []string{"pos-model", "other-model"}})

	req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `<option value="pos-model" selected>`)
	assert.Contains(t, body, `<option value="other-model">`)
	assert.Contains(t, body, `min="6" max="18" value="8"`)
	assert.Contains(t, body, `value="#aec867"`)
}

func TestAnalyze(t *testing.T) {
	s := setupServer(t, positiveModel(), Options{})

	w := postForm(t, s, "/analyze", url.Values{
		"text":       {"Great news today."},
		"chunk_size": {"8"},
	})

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Great news today . </span>")
	assert.Contains(t, body, "background-color:rgba(174, 200, 103, 0.9);")
	assert.Contains(t, body, "POSITIVE: 1")
}

func TestAnalyze_CustomColorAndEscaping(t *testing.T) {
	s := setupServer(t, positiveModel(), Options{})

	w := postForm(t, s, "/analyze", url.Values{
		"text":           {"I <3 Go."},
		"positive_color": {"#0000ff"},
	})

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "rgba(0, 0, 255, 0.9)")
	assert.Contains(t, body, "&lt;3")
	assert.Contains(t, body, `value="#0000ff"`)
}

func TestAnalyze_InvalidForm(t *testing.T) {
	s := setupServer(t, positiveModel(), Options{})

	tests := []struct {
		name string
		form url.Values
	}{
		{"chunk size below slider", url.Values{"text": {"hi"}, "chunk_size": {"5"}}},
		{"chunk size above slider", url.Values{"text": {"hi"}, "chunk_size": {"19"}}},
		{"chunk size not a number", url.Values{"text": {"hi"}, "chunk_size": {"many"}}},
		{"bad color", url.Values{"text": {"hi"}, "neutral_color": {"blue"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postForm(t, s, "/analyze", tt.form)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), `class="error"`)
		})
	}
}

func TestAnalyze_ModelFailure(t *testing.T) {
	model := classifier.ModelFunc(func(_ context.Context, _ []string) ([]types.SentimentResult, error) {
		return nil, errors.New("model loading")
	})
	s := setupServer(t, model, Options{})

	w := postForm(t, s, "/analyze", url.Values{"text": {"anything"}})
	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), "model loading")
}

func TestAnalyze_ResolvesModel(t *testing.T) {
	other := &namedModel{name: "neg-model", result: types.SentimentResult{Label: "NEG", Score: 0.5}}
	calls := 0
	resolver := func(name string) (classifier.Model, error) {
		calls++
		if name == "neg-model" {
			return other, nil
		}
		return nil, errors.New("unknown model")
	}
	s := setupServer(t, positiveModel(), Options{Models: []string{"pos-model", "neg-model"}, Resolver: resolver})

	for i := 0; i < 2; i++ {
		w := postForm(t, s, "/analyze", url.Values{"text": {"Bad."}, "model": {"neg-model"}})
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "rgba(232, 165, 108, 0.5)")
		assert.Contains(t, w.Body.String(), `<option value="neg-model" selected>`)
	}
	assert.Equal(t, 1, calls)

	require.NoError(t, s.Close())
	assert.True(t, other.closed)
}

func TestAnalyze_RejectsModelNotOffered(t *testing.T) {
	calls := 0
	resolver := func(name string) (classifier.Model, error) {
		calls++
		return positiveModel(), nil
	}
	s := setupServer(t, positiveModel(), Options{Models: []string{"pos-model", "neg-model"}, Resolver: resolver})

	for i := 0; i < 5; i++ {
		w := postForm(t, s, "/analyze", url.Values{"text": {"Bad."}, "model": {fmt.Sprintf("other/model-%d", i)}})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "model not offered")
	}

	w := postForm(t, s, "/download/html", url.Values{"text": {"Bad."}, "model": {"other/model"}})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	assert.Equal(t, 0, calls)
	assert.Empty(t, s.resolved)
}

func TestAnalyze_ResolverFailure(t *testing.T) {
	resolver := func(name string) (classifier.Model, error) {
		return nil, errors.New("unknown model")
	}
	s := setupServer(t, positiveModel(), Options{Models: []string{"pos-model", "neg-model"}, Resolver: resolver})

	w := postForm(t, s, "/analyze", url.Values{"text": {"Bad."}, "model": {"neg-model"}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, s.resolved)
}

func TestDownloadHTML(t *testing.T) {
	s := setupServer(t, positiveModel(), Options{})

	w := postForm(t, s, "/download/html", url.Values{"text": {"Great news today."}})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="analyzed_text.html"`, w.Header().Get("Content-Disposition"))
	body := w.Body.String()
	assert.True(t, strings.HasPrefix(body, "<!DOCTYPE html>"))
	assert.Contains(t, body, "Great news today . </span>")
}

func TestDownloadPDF(t *testing.T) {
	s := setupServer(t, positiveModel(), Options{})

	w := postForm(t, s, "/download/pdf", url.Values{"text": {"Great news today."}})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="analyzed_text.pdf"`, w.Header().Get("Content-Disposition"))
	assert.True(t, strings.HasPrefix(w.Body.String(), "%PDF-"))
}

func TestDownload_InvalidForm(t *testing.T) {
	s := setupServer(t, positiveModel(), Options{})

	w := postForm(t, s, "/download/pdf", url.Values{"text": {"x"}, "chunk_size": {"100"}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHealth(t *testing.T) {
	s := setupServer(t, positiveModel(), Options{})

	req := httptest.NewRequest(http.MethodGet, "/healthz", http.NoBody)
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok","provider":"test","model":"pos-model"}`, w.Body.String())
}

func TestNewServer_Errors(t *testing.T) {
	_, err := NewServer(nil, Options{Config: tonetint.DefaultConfig()})
	assert.Error(t, err)

	cfg := tonetint.DefaultConfig()
	cfg.Palette.Neutral = "beige"
	_, err = NewServer(positiveModel(), Options{Config: cfg})
	assert.Error(t, err)
}

func TestDemoChunkSizeClamped(t *testing.T) {
	cfg := tonetint.DefaultConfig()
	cfg.ChunkSize = 40
	s := setupServer(t, positiveModel(), Options{Config: cfg})
	assert.Equal(t, 18, s.demoChunkSize())

	cfg.ChunkSize = 2
	s = setupServer(t, positiveModel(), Options{Config: cfg})
	assert.Equal(t, 6, s.demoChunkSize())
}
