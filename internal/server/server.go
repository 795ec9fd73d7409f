// Package server is the published-page viewer: a small HTTP API that lists
// published tournaments and serves their page documents by slug. It never
// renders the page itself; clients consume the JSON documents.
package server

import (
	"path/filepath"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/bracketpress/bracketpress/internal/livestream"
	"github.com/bracketpress/bracketpress/internal/logger"
	"github.com/bracketpress/bracketpress/internal/project"
)

// Options wires the viewer's collaborators.
type Options struct {
	Registry     *project.Registry
	Stream       *livestream.Manager
	DocumentsDir string
	StreamParent string
	Log          *logger.Logger
}

// Server serves published tournament pages.
type Server struct {
	app  *fiber.App
	opts Options
	log  *logger.Logger
}

// New builds the viewer with its routes and middleware registered.
func New(opts Options) *Server {
	s := &Server{
		opts: opts,
		log:  opts.Log.WithComponent("server"),
	}

	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	app.Use(metricsMiddleware())

	app.Get("/healthz", s.handleHealth)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	app.Get("/api/tournaments", s.handleTournaments)
	app.Get("/api/stream", s.handleStream)
	app.Get("/t/:slug", s.handlePage)

	s.app = app
	return s
}

// App exposes the underlying fiber app, used by tests and Listen.
func (s *Server) App() *fiber.App {
	return s.app
}

// Listen starts serving and blocks.
func (s *Server) Listen(addr string) error {
	s.log.WithFields(map[string]any{"addr": addr}).Info("viewer listening")
	return s.app.Listen(addr)
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

func (s *Server) handleHealth(c *fiber.Ctx) error {
	return c.SendString("ok")
}

// handleTournaments lists published records only; drafts stay invisible to
// the public API.
func (s *Server) handleTournaments(c *fiber.Ctx) error {
	published := s.opts.Registry.Published()
	if published == nil {
		published = []project.Tournament{}
	}
	return c.JSON(published)
}

type pageResponse struct {
	Tournament project.Tournament `json:"tournament"`
	Page       project.Document   `json:"page"`
}

// handlePage resolves a published record by slug and returns it together
// with its page document. Drafts and unknown slugs both 404.
func (s *Server) handlePage(c *fiber.Ctx) error {
	slug := c.Params("slug")

	record, ok := s.opts.Registry.ResolveBySlug(slug)
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, "tournament not found")
	}

	path := record.DocumentPath
	if path == "" {
		path = filepath.Join(s.opts.DocumentsDir, record.Slug+".json")
	}
	doc, ok := project.LoadDocument(path, s.log)
	if !ok {
		s.log.WithFields(map[string]any{"slug": slug, "path": path}).Warn("published page document missing")
		return fiber.NewError(fiber.StatusNotFound, "page not found")
	}

	return c.JSON(pageResponse{Tournament: record, Page: doc})
}

type streamResponse struct {
	Enabled  bool   `json:"enabled"`
	EmbedURL string `json:"embed_url,omitempty"`
	Autoplay bool   `json:"autoplay"`
	Muted    bool   `json:"muted"`
}

// handleStream reports the current embed state. A disabled stream or an
// unextractable channel both come back as enabled=false with no URL.
func (s *Server) handleStream(c *fiber.Ctx) error {
	cfg := s.opts.Stream.Current()
	embed, ok := cfg.Embed(s.opts.StreamParent)

	resp := streamResponse{Autoplay: cfg.Autoplay, Muted: cfg.Muted}
	if ok {
		resp.Enabled = true
		resp.EmbedURL = embed
	}
	return c.JSON(resp)
}
