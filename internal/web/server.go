// Package web serves the portfolio over HTTP. The page is rendered on the
// server; HTMX requests swap fragments when the visitor selects a stage,
// switches mode or opens a project diagram.
package web

import (
	"context"
	"embed"
	"errors"
	"html/template"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/guna-thota/portfolio/internal/analytics"
	"github.com/guna-thota/portfolio/internal/config"
	"github.com/guna-thota/portfolio/internal/contact"
	"github.com/guna-thota/portfolio/internal/portfolio"
	"github.com/guna-thota/portfolio/internal/session"
)

//go:embed templates/*.html
var templatesFS embed.FS

const sessionCookie = "portfolio_session"

type Server struct {
	cfg      *config.Config
	profile  portfolio.Profile
	sessions *session.Store
	tracker  *analytics.Store
	mailer   contact.Sender
	log      *zap.Logger
	admin    *adminAuth
	engine   *gin.Engine
	now      func() time.Time
}

// Deps are the collaborators a Server needs. Tracker may be nil, in which
// case nothing is recorded and the admin dashboard is unavailable.
type Deps struct {
	Config   *config.Config
	Profile  portfolio.Profile
	Sessions *session.Store
	Tracker  *analytics.Store
	Mailer   contact.Sender
	Logger   *zap.Logger
}

func New(d Deps) *Server {
	gin.SetMode(d.Config.App.Mode)

	s := &Server{
		cfg:      d.Config,
		profile:  d.Profile,
		sessions: d.Sessions,
		tracker:  d.Tracker,
		mailer:   d.Mailer,
		log:      d.Logger.Named("web"),
		now:      time.Now,
	}
	s.admin = newAdminAuth(d.Config, s.log)
	s.engine = s.routes()
	return s
}

func (s *Server) Handler() http.Handler {
	return s.engine
}

func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"join": strings.Join,
		"safe": func(v string) template.HTML { return template.HTML(v) },
	}
}

func (s *Server) routes() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(s.log), s.sessionMiddleware())
	if s.cfg.App.TrackingEnabled && s.tracker != nil {
		r.Use(s.visitorTrackingMiddleware())
	}
	r.SetHTMLTemplate(template.Must(template.New("").Funcs(templateFuncs()).ParseFS(templatesFS, "templates/*.html")))

	r.GET("/healthz", func(c *gin.Context) { c.String(http.StatusOK, "ok") })

	// Home page route
	r.GET("/", s.handleIndex)

	// Pipeline view state
	r.POST("/view/stage/:id", s.handleSelectStage)
	r.POST("/view/mode", s.handleToggleMode)
	r.POST("/view/mode/:mode", s.handleSetMode)
	r.GET("/api/view", s.handleViewJSON)
	r.GET("/pipeline.svg", s.handlePipelineSVG)

	// Project architecture overlay
	r.GET("/projects/:slug/architecture", s.handleArchitecture)
	r.GET("/projects/:slug/architecture.svg", s.handleArchitectureSVG)
	r.GET("/overlay/close", func(c *gin.Context) {
		c.HTML(http.StatusOK, "overlay-closed.html", nil)
	})

	// Contact
	r.POST("/contact/copy", s.handleCopyConfirm)
	r.GET("/contact/copy/clear", func(c *gin.Context) {
		c.HTML(http.StatusOK, "copied.html", gin.H{"copied": false})
	})
	r.GET("/contact-form", func(c *gin.Context) {
		c.HTML(http.StatusOK, "contact.html", gin.H{"title": "Contact Me"})
	})
	r.POST("/contact", s.handleContact)

	s.setupAdminRoutes(r)
	return r
}

// Run serves until ctx is cancelled, then shuts down gracefully. While
// running it purges analytics rows past retention once a day.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              ":" + s.cfg.App.Port,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	if s.tracker != nil {
		go s.cleanupLoop(ctx)
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("listening", zap.String("addr", srv.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	s.log.Info("shutting down")
	return srv.Shutdown(shutdownCtx)
}

func (s *Server) cleanupLoop(ctx context.Context) {
	ticker := time.NewTicker(24 * time.Hour)
	defer ticker.Stop()
	for {
		if _, err := s.tracker.Cleanup(ctx); err != nil && ctx.Err() == nil {
			s.log.Warn("privacy cleanup failed", zap.Error(err))
		}
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
