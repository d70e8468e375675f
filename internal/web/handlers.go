package web

import (
	"bytes"
	"fmt"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/dshills/tonetint/internal/chunker"
	"github.com/dshills/tonetint/internal/render"
	"github.com/dshills/tonetint/internal/tonetint"
	"github.com/dshills/tonetint/pkg/types"
)

// analyzeForm is the form posted by the demo page
type analyzeForm struct {
	Text      string `form:"text"`
	Model     string `form:"model"`
	ChunkSize int    `form:"chunk_size"     binding:"omitempty,min=6,max=18"`
	Positive  string `form:"positive_color" binding:"omitempty,hexcolor"`
	Negative  string `form:"negative_color" binding:"omitempty,hexcolor"`
	Neutral   string `form:"neutral_color"  binding:"omitempty,hexcolor"`
}

// pageData feeds the page template
type pageData struct {
	Models       []string
	Model        string
	ChunkSize    int
	MinChunkSize int
	MaxChunkSize int
	Palette      render.Palette
	Text         string
	Markup       template.HTML
	Distribution map[string]int
	Error        string
}

func (s *Server) page(form analyzeForm) pageData {
	chunkSize := form.ChunkSize
	if chunkSize == 0 {
		chunkSize = s.demoChunkSize()
	}
	palette := s.config.Apply(tonetint.Overrides{
		Positive: form.Positive,
		Negative: form.Negative,
		Neutral:  form.Neutral,
	}).Palette

	model := form.Model
	if model == "" {
		model = s.model.Model()
	}

	return pageData{
		Models:       s.models,
		Model:        model,
		ChunkSize:    chunkSize,
		MinChunkSize: chunker.MinDemoChunkSize,
		MaxChunkSize: chunker.MaxDemoChunkSize,
		Palette:      palette,
		Text:         form.Text,
	}
}

// demoChunkSize clamps the configured chunk size into the slider range
func (s *Server) demoChunkSize() int {
	size := s.config.ChunkSize
	if size < chunker.MinDemoChunkSize {
		return chunker.MinDemoChunkSize
	}
	if size > chunker.MaxDemoChunkSize {
		return chunker.MaxDemoChunkSize
	}
	return size
}

func (s *Server) handleIndex(c *gin.Context) {
	c.HTML(http.StatusOK, "index", s.page(analyzeForm{}))
}

func (s *Server) handleAnalyze(c *gin.Context) {
	form, v, status, err := s.prepare(c)
	if err != nil {
		data := s.page(form)
		data.Error = err.Error()
		c.HTML(status, "index", data)
		return
	}

	segments, err := s.analyze(c, v, form.Text)
	data := s.page(form)
	if err != nil {
		data.Error = err.Error()
		c.HTML(http.StatusBadGateway, "index", data)
		return
	}

	cfg := v.Config()
	markup, err := render.Markup(segments, cfg.Palette, cfg.Font)
	if err != nil {
		data.Error = err.Error()
		c.HTML(http.StatusInternalServerError, "index", data)
		return
	}

	data.Markup = template.HTML(markup) // chunk text is escaped by render.Markup
	data.Distribution = distribution(segments)
	c.HTML(http.StatusOK, "index", data)
}

func (s *Server) handleDownloadHTML(c *gin.Context) {
	form, v, status, err := s.prepare(c)
	if err != nil {
		c.String(status, err.Error())
		return
	}

	segments, err := s.analyze(c, v, form.Text)
	if err != nil {
		c.String(http.StatusBadGateway, err.Error())
		return
	}

	cfg := v.Config()
	markup, err := render.Markup(segments, cfg.Palette, cfg.Font)
	if err == nil {
		markup, err = render.Document(markup, render.DocumentOptions{
			Title:   "Analyzed text",
			Font:    cfg.Font,
			Palette: cfg.Palette,
			Legend:  true,
		})
	}
	if err != nil {
		c.String(http.StatusInternalServerError, err.Error())
		return
	}

	attachment(c, HTMLDownloadName)
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(markup))
}

func (s *Server) handleDownloadPDF(c *gin.Context) {
	form, v, status, err := s.prepare(c)
	if err != nil {
		c.String(status, err.Error())
		return
	}

	segments, err := s.analyze(c, v, form.Text)
	if err != nil {
		c.String(http.StatusBadGateway, err.Error())
		return
	}

	cfg := v.Config()
	var buf bytes.Buffer
	if err := render.PDF(&buf, segments, cfg.Palette, cfg.Font); err != nil {
		c.String(http.StatusInternalServerError, err.Error())
		return
	}

	attachment(c, PDFDownloadName)
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"provider": s.model.Provider(),
		"model":    s.model.Model(),
	})
}

// prepare binds the form and builds a visualizer for it. The returned status
// is meaningful only with a non-nil error.
func (s *Server) prepare(c *gin.Context) (analyzeForm, *tonetint.Visualizer, int, error) {
	var form analyzeForm
	if err := c.ShouldBind(&form); err != nil {
		return form, nil, http.StatusBadRequest, fmt.Errorf("invalid form: %w", err)
	}

	model, err := s.modelFor(form.Model)
	if err != nil {
		return form, nil, http.StatusBadRequest, fmt.Errorf("model %s: %w", form.Model, err)
	}

	chunkSize := form.ChunkSize
	if chunkSize == 0 {
		chunkSize = s.demoChunkSize()
	}

	cfg := s.config.Apply(tonetint.Overrides{
		ChunkSize: chunkSize,
		Positive:  form.Positive,
		Negative:  form.Negative,
		Neutral:   form.Neutral,
	})

	v, err := tonetint.New(cfg, model, tonetint.WithLogger(s.logger))
	if err != nil {
		return form, nil, http.StatusBadRequest, err
	}
	return form, v, http.StatusOK, nil
}

// analyze runs one analysis at a time
func (s *Server) analyze(c *gin.Context, v *tonetint.Visualizer, text string) ([]types.Segment, error) {
	ctx := c.Request.Context()
	if err := s.sem.Acquire(ctx, 1); err != nil {
		return nil, err
	}
	defer s.sem.Release(1)

	segments, err := v.Analyze(ctx, text)
	if err != nil {
		s.logger.Warn("analysis failed", zap.Error(err))
		return nil, err
	}
	return segments, nil
}

func attachment(c *gin.Context, name string) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
}

func distribution(segments []types.Segment) map[string]int {
	out := make(map[string]int)
	for c, n := range types.Distribution(segments) {
		out[string(c)] = n
	}
	return out
}
