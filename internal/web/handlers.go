package web

import (
	"context"
	"errors"
	"html/template"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"go.uber.org/zap"

	"github.com/guna-thota/portfolio/internal/analytics"
	"github.com/guna-thota/portfolio/internal/contact"
	"github.com/guna-thota/portfolio/internal/diagram"
	"github.com/guna-thota/portfolio/internal/pipeline"
	"github.com/guna-thota/portfolio/internal/portfolio"
)

type stageButton struct {
	Stage    pipeline.Stage
	Selected bool
}

type modeButton struct {
	Mode   pipeline.Mode
	Active bool
}

// viewData feeds both the full page and the pipeline fragment.
type viewData struct {
	Profile  portfolio.Profile
	State    pipeline.ViewState
	Visible  pipeline.Visible
	Stages   []stageButton
	Modes    []modeButton
	Diagram  template.HTML
	Projects []portfolio.Project
	Year     int
}

func (s *Server) viewData(v pipeline.ViewState) viewData {
	d := viewData{
		Profile:  s.profile,
		State:    v,
		Visible:  pipeline.VisibleContent(v),
		Projects: portfolio.Projects(),
		Year:     s.now().Year(),
	}
	for _, st := range pipeline.Stages() {
		d.Stages = append(d.Stages, stageButton{Stage: st, Selected: st == v.Stage})
	}
	for _, m := range []pipeline.Mode{pipeline.ModeSummary, pipeline.ModeDetail} {
		d.Modes = append(d.Modes, modeButton{Mode: m, Active: m == v.Mode})
	}
	d.Diagram = template.HTML(diagram.Inline(func(w io.Writer) {
		diagram.Pipeline(w, v, diagram.PipelineOptions{Target: "#pipeline"})
	}))
	return d
}

func (s *Server) handleIndex(c *gin.Context) {
	v := s.sessions.Load(sessionID(c))
	c.HTML(http.StatusOK, "index.html", s.viewData(v))
}

func (s *Server) handleSelectStage(c *gin.Context) {
	stage, ok := pipeline.ParseStage(c.Param("id"))
	if !ok {
		c.HTML(http.StatusNotFound, "not-found.html", gin.H{"what": "stage"})
		return
	}
	id := sessionID(c)
	v := s.sessions.Update(id, func(v pipeline.ViewState) pipeline.ViewState {
		return v.SelectStage(stage)
	})
	s.record(c, analytics.KindSelectStage, v)
	c.HTML(http.StatusOK, "pipeline.html", s.viewData(v))
}

func (s *Server) handleToggleMode(c *gin.Context) {
	v := s.sessions.Update(sessionID(c), pipeline.ViewState.ToggleMode)
	s.record(c, analytics.KindToggleMode, v)
	c.HTML(http.StatusOK, "pipeline.html", s.viewData(v))
}

func (s *Server) handleSetMode(c *gin.Context) {
	mode, ok := pipeline.ParseMode(c.Param("mode"))
	if !ok {
		c.HTML(http.StatusNotFound, "not-found.html", gin.H{"what": "mode"})
		return
	}
	v := s.sessions.Update(sessionID(c), func(v pipeline.ViewState) pipeline.ViewState {
		return v.WithMode(mode)
	})
	s.record(c, analytics.KindSetMode, v)
	c.HTML(http.StatusOK, "pipeline.html", s.viewData(v))
}

type viewResponse struct {
	Stage   string           `json:"stage"`
	Mode    string           `json:"mode"`
	Content pipeline.Visible `json:"content"`
}

func (s *Server) handleViewJSON(c *gin.Context) {
	v := s.sessions.Load(sessionID(c))
	writeJSON(c, http.StatusOK, viewResponse{
		Stage:   v.Stage.ID(),
		Mode:    v.Mode.ID(),
		Content: pipeline.VisibleContent(v),
	})
}

func (s *Server) handlePipelineSVG(c *gin.Context) {
	v := s.sessions.Load(sessionID(c))
	c.Header("Content-Type", "image/svg+xml")
	c.Status(http.StatusOK)
	diagram.Pipeline(c.Writer, v, diagram.PipelineOptions{})
}

func (s *Server) handleArchitecture(c *gin.Context) {
	p, err := portfolio.ProjectBySlug(c.Param("slug"))
	if err != nil {
		c.HTML(http.StatusNotFound, "not-found.html", gin.H{"what": "project"})
		return
	}
	s.record(c, analytics.KindOpenArchitecture, s.sessions.Load(sessionID(c)))
	c.HTML(http.StatusOK, "architecture.html", gin.H{
		"project": p,
		"diagram": template.HTML(diagram.Inline(func(w io.Writer) { diagram.Architecture(w, p) })),
	})
}

func (s *Server) handleArchitectureSVG(c *gin.Context) {
	p, err := portfolio.ProjectBySlug(c.Param("slug"))
	if err != nil {
		c.Status(http.StatusNotFound)
		return
	}
	c.Header("Content-Type", "image/svg+xml")
	c.Status(http.StatusOK)
	diagram.Architecture(c.Writer, p)
}

// handleCopyConfirm is called by the page after the browser wrote the e-mail
// address to the clipboard. The returned fragment clears itself after 1.2s.
func (s *Server) handleCopyConfirm(c *gin.Context) {
	s.record(c, analytics.KindCopyEmail, s.sessions.Load(sessionID(c)))
	c.HTML(http.StatusOK, "copied.html", gin.H{"copied": true})
}

// Handle contact form submission with HTMX
func (s *Server) handleContact(c *gin.Context) {
	msg := contact.Message{
		Name:    c.PostForm("fullName"),
		Email:   c.PostForm("email"),
		Message: c.PostForm("message"),
	}

	if err := s.mailer.Send(msg); err != nil {
		text := "Sorry, there was an error sending your message. Please try again later."
		if errors.Is(err, contact.ErrInvalidMessage) {
			text = "Please fill in your name, a valid email and a message."
		}
		c.HTML(http.StatusOK, "contact-error.html", gin.H{"error": text})
		return
	}

	s.record(c, analytics.KindContact, s.sessions.Load(sessionID(c)))
	c.HTML(http.StatusOK, "contact-success.html", gin.H{
		"success": "Thank you for your message! I'll get back to you soon.",
	})
}

// record stores an interaction in the background. Failures are logged only.
func (s *Server) record(c *gin.Context, kind analytics.Kind, v pipeline.ViewState) {
	if s.tracker == nil || !s.cfg.App.TrackingEnabled || c.GetHeader("DNT") == "1" {
		return
	}
	id := sessionID(c)
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.tracker.RecordInteraction(ctx, id, kind, v); err != nil {
			s.log.Warn("recording interaction", zap.String("kind", string(kind)), zap.Error(err))
		}
	}()
}

func writeJSON(c *gin.Context, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		c.String(http.StatusInternalServerError, "encoding response")
		return
	}
	c.Data(status, "application/json; charset=utf-8", data)
}
