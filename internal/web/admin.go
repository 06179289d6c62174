package web

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/guna-thota/portfolio/internal/config"
)

const adminCookie = "admin_token"

type adminAuth struct {
	token    string
	username string
	password string
	enabled  bool
}

// newAdminAuth generates a fresh token per process, so restarting the server
// logs every admin out. Without configured credentials the dashboard is only
// reachable outside release mode, using the development defaults.
func newAdminAuth(cfg *config.Config, log *zap.Logger) *adminAuth {
	a := &adminAuth{
		token:    generateAdminToken(),
		username: cfg.Admin.Username,
		password: cfg.Admin.Password,
		enabled:  true,
	}

	if a.username == "" || a.password == "" {
		if cfg.IsProduction() {
			log.Warn("admin dashboard disabled: set ADMIN_USERNAME and ADMIN_PASSWORD")
			a.enabled = false
			return a
		}
		log.Warn("using default admin credentials; set ADMIN_USERNAME and ADMIN_PASSWORD")
		a.username, a.password = "admin", "admin123"
	}

	log.Info("admin access available", zap.String("path", "/admin/login"))
	return a
}

func generateAdminToken() string {
	b := make([]byte, 32)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

func (a *adminAuth) checkCredentials(username, password string) bool {
	if !a.enabled {
		return false
	}
	u := subtle.ConstantTimeCompare([]byte(username), []byte(a.username))
	p := subtle.ConstantTimeCompare([]byte(password), []byte(a.password))
	return u&p == 1
}

// Middleware to check admin authentication
func (a *adminAuth) middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(adminCookie)
		if !a.enabled || err != nil || subtle.ConstantTimeCompare([]byte(token), []byte(a.token)) != 1 {
			c.Redirect(http.StatusFound, "/admin/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

func (s *Server) clientHash(c *gin.Context) string {
	if s.tracker == nil {
		return ""
	}
	return s.tracker.Hash(c.ClientIP())
}

// Setup all admin routes
func (s *Server) setupAdminRoutes(r *gin.Engine) {
	// Privacy policy route
	r.GET("/privacy", func(c *gin.Context) {
		c.HTML(http.StatusOK, "privacy.html", gin.H{
			"title":   "Privacy Policy",
			"profile": s.profile,
		})
	})

	// Admin login page
	r.GET("/admin/login", func(c *gin.Context) {
		c.HTML(http.StatusOK, "admin-login.html", gin.H{
			"title": "Admin Login",
		})
	})

	// Admin login handler
	r.POST("/admin/login", func(c *gin.Context) {
		if s.admin.checkCredentials(c.PostForm("username"), c.PostForm("password")) {
			// Secure cookie (24 hours)
			c.SetCookie(adminCookie, s.admin.token, 3600*24, "/admin", "", s.cfg.IsProduction(), true)
			s.log.Info("admin login", zap.String("client", s.clientHash(c)))
			c.Redirect(http.StatusFound, "/admin/dashboard")
			return
		}
		s.log.Warn("failed admin login", zap.String("client", s.clientHash(c)))
		c.HTML(http.StatusUnauthorized, "admin-login.html", gin.H{
			"title": "Admin Login",
			"error": "Invalid credentials",
		})
	})

	// Admin logout
	r.GET("/admin/logout", func(c *gin.Context) {
		c.SetCookie(adminCookie, "", -1, "/admin", "", s.cfg.IsProduction(), true)
		c.Redirect(http.StatusFound, "/admin/login")
	})

	adminGroup := r.Group("/admin")
	adminGroup.Use(s.admin.middleware())

	adminGroup.GET("/dashboard", func(c *gin.Context) {
		if s.tracker == nil {
			c.HTML(http.StatusServiceUnavailable, "admin-error.html", gin.H{"error": "Analytics are disabled"})
			return
		}
		stats, err := s.tracker.Stats(c.Request.Context())
		if err != nil {
			s.log.Error("loading admin stats", zap.Error(err))
			c.HTML(http.StatusInternalServerError, "admin-error.html", gin.H{
				"error": "Failed to load statistics",
			})
			return
		}
		c.HTML(http.StatusOK, "admin-dashboard.html", gin.H{"stats": stats})
	})

	// Admin API endpoints for HTMX/AJAX
	adminGroup.GET("/api/stats", func(c *gin.Context) {
		if s.tracker == nil {
			writeJSON(c, http.StatusServiceUnavailable, gin.H{"error": "analytics disabled"})
			return
		}
		stats, err := s.tracker.Stats(c.Request.Context())
		if err != nil {
			writeJSON(c, http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		writeJSON(c, http.StatusOK, stats)
	})

	// Statistics export (for backups or analysis)
	adminGroup.GET("/export/stats", func(c *gin.Context) {
		if s.tracker == nil {
			writeJSON(c, http.StatusServiceUnavailable, gin.H{"error": "analytics disabled"})
			return
		}
		stats, err := s.tracker.Stats(c.Request.Context())
		if err != nil {
			writeJSON(c, http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.Header("Content-Disposition", "attachment; filename=portfolio-stats.json")
		s.log.Info("admin stats exported", zap.String("client", s.clientHash(c)))
		writeJSON(c, http.StatusOK, stats)
	})

	// Privacy compliance: drop rows past the retention window now
	adminGroup.POST("/privacy/cleanup", func(c *gin.Context) {
		if s.tracker == nil {
			writeJSON(c, http.StatusServiceUnavailable, gin.H{"error": "analytics disabled"})
			return
		}
		removed, err := s.tracker.Cleanup(c.Request.Context())
		if err != nil {
			writeJSON(c, http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		writeJSON(c, http.StatusOK, gin.H{"removed": removed})
	})
}
