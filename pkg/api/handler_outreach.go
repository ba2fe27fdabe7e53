package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"
)

// getOutreachHandler handles GET /api/v1/outreach/:id.
func (s *Server) getOutreachHandler(c *echo.Context) error {
	outreachID := c.Param("id")
	if outreachID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "outreach id is required")
	}
	tenantID := c.QueryParam("tenant_id")
	if tenantID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "tenant_id is required")
	}

	ot, err := s.outreaches.Get(c.Request().Context(), tenantID, outreachID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, ot)
}
