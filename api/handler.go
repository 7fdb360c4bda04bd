// Package api provides the HTTP handlers for the brand generation service.
package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/brandforge/brandforge/archive"
	"github.com/brandforge/brandforge/brand"
	"github.com/brandforge/brandforge/state"
	"github.com/brandforge/brandforge/store"
)

// Handler handles HTTP requests.
type Handler struct {
	generator  *brand.Generator
	images     brand.ImageClient
	imageModel string
	relay      archive.Fetcher
	kits       *archive.KitBuilder
	store      store.Store
	state      *state.Store
}

// NewHandler creates a new handler.
func NewHandler(generator *brand.Generator, images brand.ImageClient, imageModel string, relay archive.Fetcher, kits *archive.KitBuilder, st store.Store, clientState *state.Store) *Handler {
	return &Handler{
		generator:  generator,
		images:     images,
		imageModel: imageModel,
		relay:      relay,
		kits:       kits,
		store:      st,
		state:      clientState,
	}
}

// RegisterRoutes registers routes with the echo server.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	// Generation pipeline
	e.POST("/generate", h.Generate)
	e.POST("/generate-image", h.GenerateImage)
	e.GET("/proxy-image", h.ProxyImage)

	// Brand kit API
	e.GET("/v1/brand", h.GetBrand)
	e.DELETE("/v1/brand", h.ResetBrand)
	e.GET("/v1/brand/kit", h.DownloadKit)
	e.GET("/v1/state", h.GetState)
	e.GET("/v1/runs/:run_id/events", h.GetRunEvents)

	e.GET("/health", h.Health)
}

// Health returns health status.
func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "healthy",
		"version": "0.1.0",
	})
}
