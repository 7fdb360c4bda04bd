package api

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/brandforge/brandforge/brand"
	"github.com/brandforge/brandforge/domain"
)

// Generate runs the full generation pipeline.
// POST /generate
func (h *Handler) Generate(c echo.Context) error {
	ctx := c.Request().Context()

	var req domain.GenerationRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	identity, err := h.generator.Generate(ctx, req)
	if err != nil {
		if isRejection(err) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		log.Printf("ERROR: generation failed: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to generate brand identity"})
	}

	return c.JSON(http.StatusOK, identity)
}

// GenerateImage generates a single image for a prompt.
// POST /generate-image
func (h *Handler) GenerateImage(c echo.Context) error {
	ctx := c.Request().Context()

	var req struct {
		Prompt string `json:"prompt"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if strings.TrimSpace(req.Prompt) == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "prompt is required"})
	}

	imageURL, err := h.images.GenerateImage(ctx, h.imageModel, req.Prompt)
	if err != nil {
		log.Printf("ERROR: image generation failed: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to generate image"})
	}

	return c.JSON(http.StatusOK, map[string]string{"imageUrl": imageURL})
}

// isRejection reports whether the error is an input or policy
// rejection rather than a pipeline failure.
func isRejection(err error) bool {
	return errors.Is(err, domain.ErrBrandNameRequired) ||
		errors.Is(err, domain.ErrDescriptionTooShort) ||
		errors.Is(err, domain.ErrVibeRequired) ||
		errors.Is(err, brand.ErrBlocked)
}
