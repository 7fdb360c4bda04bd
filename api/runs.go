package api

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/brandforge/brandforge/domain"
)

// GetRunEvents returns events for a run.
// GET /v1/runs/:run_id/events
func (h *Handler) GetRunEvents(c echo.Context) error {
	ctx := c.Request().Context()
	runID := c.Param("run_id")

	// Parse query params
	afterTs, _ := strconv.ParseInt(c.QueryParam("after_ts"), 10, 64)
	typesStr := c.QueryParam("types")
	var types []string
	if typesStr != "" {
		types = strings.Split(typesStr, ",")
	}
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	if limit <= 0 {
		limit = 100
	}

	// Check run exists; "latest" resolves to the most recent run
	var run *domain.Run
	var err error
	if runID == "latest" {
		run, err = h.store.LatestRun(ctx)
	} else {
		run, err = h.store.GetRun(ctx, runID)
	}
	if err != nil {
		log.Printf("ERROR: failed to get run: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to get run"})
	}
	if run == nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "run not found"})
	}
	runID = run.RunID

	// Get events
	events, err := h.store.GetEvents(ctx, runID, afterTs, types, limit+1)
	if err != nil {
		log.Printf("ERROR: failed to get events: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to get events"})
	}

	hasMore := len(events) > limit
	if hasMore {
		events = events[:limit]
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"run":      run,
		"events":   events,
		"has_more": hasMore,
	})
}
