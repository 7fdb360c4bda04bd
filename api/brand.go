package api

import (
	"fmt"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/brandforge/brandforge/state"
	"github.com/brandforge/brandforge/store"
)

// GetBrand returns the cached last-completed identity.
// GET /v1/brand
func (h *Handler) GetBrand(c echo.Context) error {
	ctx := c.Request().Context()

	identity, err := h.store.GetBrand(ctx, store.BrandCacheKey)
	if err != nil {
		log.Printf("ERROR: failed to load cached brand: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to load brand"})
	}
	if identity == nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "no brand generated yet"})
	}

	return c.JSON(http.StatusOK, identity)
}

// ResetBrand clears the cached identity and the client state.
// DELETE /v1/brand
func (h *Handler) ResetBrand(c echo.Context) error {
	ctx := c.Request().Context()

	if err := h.store.DeleteBrand(ctx, store.BrandCacheKey); err != nil {
		log.Printf("ERROR: failed to clear cached brand: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to reset brand"})
	}
	h.state.Dispatch(state.Reset{})

	return c.NoContent(http.StatusNoContent)
}

// DownloadKit streams the zip archive for the cached identity.
// GET /v1/brand/kit
func (h *Handler) DownloadKit(c echo.Context) error {
	ctx := c.Request().Context()

	identity, err := h.store.GetBrand(ctx, store.BrandCacheKey)
	if err != nil {
		log.Printf("ERROR: failed to load cached brand: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to load brand"})
	}
	if identity == nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "no brand generated yet"})
	}

	data, filename, err := h.kits.Build(ctx, identity)
	if err != nil {
		log.Printf("ERROR: failed to build kit: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to build brand kit"})
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Blob(http.StatusOK, "application/zip", data)
}

// GetState returns the current client-state snapshot.
// GET /v1/state
func (h *Handler) GetState(c echo.Context) error {
	return c.JSON(http.StatusOK, h.state.Snapshot())
}
