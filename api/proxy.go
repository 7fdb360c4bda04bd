package api

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
)

// ProxyImage relays a remote image fetch so the browser can read
// provider-hosted assets from the same origin.
// GET /proxy-image?url=<encoded URL>
func (h *Handler) ProxyImage(c echo.Context) error {
	ctx := c.Request().Context()

	url := c.QueryParam("url")
	if url == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Missing URL parameter"})
	}

	body, contentType, err := h.relay.FetchImage(ctx, url)
	if err != nil {
		log.Printf("ERROR: image proxy failed: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch image"})
	}

	c.Response().Header().Set("Cache-Control", "public, max-age=3600")
	return c.Blob(http.StatusOK, contentType, body)
}
