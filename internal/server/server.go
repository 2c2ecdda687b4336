// Package server exposes the conversion pipeline over HTTP for the web
// front end. It holds no state between requests: every upload is one
// self-contained conversion.
package server

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/revcsv-dev/revcsv/internal/buildinfo"
	"github.com/revcsv-dev/revcsv/internal/config"
	"github.com/revcsv-dev/revcsv/internal/pipeline"
)

// ConvertResponse is the JSON reply from POST /api/convert.
type ConvertResponse struct {
	Success  bool     `json:"success"`
	Error    string   `json:"error,omitempty"`
	CSV      string   `json:"csv,omitempty"`
	Count    int      `json:"count"`
	Warnings []string `json:"warnings,omitempty"`
}

// Handler serves the conversion API.
type Handler struct {
	set *config.Settings
	log zerolog.Logger
}

// NewHandler creates a Handler bound to one settings record.
func NewHandler(set *config.Settings, log zerolog.Logger) *Handler {
	return &Handler{set: set, log: log}
}

// NewApp creates the fiber application with all routes registered.
func NewApp(set *config.Settings, log zerolog.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "revcsv",
		DisableStartupMessage: true,
	})
	h := NewHandler(set, log)
	app.Get("/api/health", h.HandleHealth)
	app.Post("/api/convert", h.HandleConvert)
	return app
}

// HandleHealth reports liveness and the build version.
func (h *Handler) HandleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "ok",
		"version": buildinfo.Version,
	})
}

// HandleConvert accepts a multipart "file" upload of a Revolut export and
// returns the headerless CSV plus any schema or classifier warnings.
func (h *Handler) HandleConvert(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ConvertResponse{
			Error: "missing multipart \"file\" field",
		})
	}

	f, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ConvertResponse{
			Error: fmt.Sprintf("opening upload: %v", err),
		})
	}
	defer f.Close()

	outcome, err := pipeline.New(h.set, h.log).Convert(c.Context(), f)
	if err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(ConvertResponse{
			Error: err.Error(),
		})
	}

	resp := ConvertResponse{
		Success: true,
		CSV:     outcome.CSV,
		Count:   len(outcome.Exported),
	}
	for _, col := range outcome.MissingCols {
		resp.Warnings = append(resp.Warnings, fmt.Sprintf("missing required column %q", col))
	}
	if outcome.ClassifierErr != nil {
		resp.Warnings = append(resp.Warnings,
			fmt.Sprintf("remote classification failed: %v", outcome.ClassifierErr))
	}

	h.log.Info().Str("file", fileHeader.Filename).Int("rows", resp.Count).Msg("converted upload")
	return c.JSON(resp)
}
