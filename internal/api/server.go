// Package api exposes the mood log over HTTP for `tmt serve`.
package api

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"

	"github.com/Tiliavir/trivial-mood-tracker/internal/calendar"
	"github.com/Tiliavir/trivial-mood-tracker/internal/model"
	"github.com/Tiliavir/trivial-mood-tracker/internal/moodlog"
	"github.com/Tiliavir/trivial-mood-tracker/internal/report"
)

// Config wraps the knobs that impact runtime behavior.
type Config struct {
	Addr string
}

// Server exposes the Fiber application.
type Server struct {
	app    *fiber.App
	engine *moodlog.Engine
	cfg    Config
	logger *zap.Logger
}

// NewServer wires handlers and middleware.
func NewServer(cfg Config, engine *moodlog.Engine, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ReadTimeout:           15 * time.Second,
		WriteTimeout:          15 * time.Second,
		ErrorHandler:          errorHandler,
	})
	app.Use(recover.New())

	srv := &Server{app: app, engine: engine, cfg: cfg, logger: logger}
	app.Use(srv.logRequest)
	srv.registerRoutes()
	return srv
}

// App returns the underlying Fiber app, mainly for tests.
func (s *Server) App() *fiber.App { return s.app }

// Run starts listening for HTTP traffic until the context is cancelled.
func (s *Server) Run(ctx context.Context) error {
	go func() {
		<-ctx.Done()
		_ = s.app.Shutdown()
	}()

	s.logger.Info("mood api listening", zap.String("addr", s.cfg.Addr))
	return s.app.Listen(s.cfg.Addr)
}

func (s *Server) registerRoutes() {
	s.app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := s.app.Group("/api/v1")
	api.Get("/moods", s.handleListMoods)
	api.Post("/entries", s.handleCreateEntry)
	api.Patch("/entries/:id", s.handleEditEntry)
	api.Delete("/entries/:id", s.handleDeleteEntry)
	api.Get("/days/:date/entries", s.handleDayEntries)
	api.Get("/days/:date/summary", s.handleDaySummary)
}

func (s *Server) logRequest(c *fiber.Ctx) error {
	start := time.Now()
	err := c.Next()
	s.logger.Debug("request",
		zap.String("method", c.Method()),
		zap.String("path", c.Path()),
		zap.Int("status", c.Response().StatusCode()),
		zap.Duration("latency", time.Since(start)))
	return err
}

type moodPayload struct {
	Mood string `json:"mood"`
}

type moodInfo struct {
	Mood  model.Mood `json:"mood"`
	Glyph string     `json:"glyph"`
}

func (s *Server) handleListMoods(c *fiber.Ctx) error {
	moods := model.Moods()
	items := make([]moodInfo, len(moods))
	for i, m := range moods {
		items[i] = moodInfo{Mood: m, Glyph: m.Glyph()}
	}
	return c.JSON(fiber.Map{"data": items, "meta": fiber.Map{"count": len(items)}})
}

func (s *Server) handleCreateEntry(c *fiber.Ctx) error {
	mood, err := parseMoodBody(c)
	if err != nil {
		return err
	}
	entry, err := s.engine.LogMood(mood)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": entry})
}

func (s *Server) handleEditEntry(c *fiber.Ctx) error {
	entry, err := s.engine.Entry(c.Params("id"))
	if err != nil {
		return err
	}
	mood, err := parseMoodBody(c)
	if err != nil {
		return err
	}
	if err := s.engine.EditEntryMood(entry, mood); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": entry})
}

func (s *Server) handleDeleteEntry(c *fiber.Ctx) error {
	entry, err := s.engine.Entry(c.Params("id"))
	if err != nil {
		return err
	}
	if err := s.engine.DeleteEntry(entry); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (s *Server) handleDayEntries(c *fiber.Ctx) error {
	day, err := calendar.ParseDate(c.Params("date"))
	if err != nil {
		return err
	}
	items := s.engine.EntriesForDay(day)
	if items == nil {
		items = []*model.Entry{}
	}
	return c.JSON(fiber.Map{
		"data": items,
		"meta": fiber.Map{"count": len(items), "date": day.String()},
	})
}

func (s *Server) handleDaySummary(c *fiber.Ctx) error {
	day, err := calendar.ParseDate(c.Params("date"))
	if err != nil {
		return err
	}
	doc := report.NewSummaryDoc(day.String(), s.engine.SummaryForDay(day))
	return c.JSON(fiber.Map{"data": doc})
}

func parseMoodBody(c *fiber.Ctx) (model.Mood, error) {
	var payload moodPayload
	if err := c.BodyParser(&payload); err != nil {
		return "", fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}
	return model.ParseMood(payload.Mood)
}

// errorHandler maps domain errors onto HTTP status codes.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	switch {
	case errors.As(err, &fe):
		code = fe.Code
	case errors.Is(err, model.ErrInvalidMood), errors.Is(err, calendar.ErrInvalidDate):
		code = fiber.StatusBadRequest
	case errors.Is(err, moodlog.ErrEntryNotFound):
		code = fiber.StatusNotFound
	}
	return c.Status(code).JSON(fiber.Map{"error": err.Error()})
}
