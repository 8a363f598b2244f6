package scheme

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/herdwell/herdwell/internal/platform/auth"
	"github.com/herdwell/herdwell/pkg/pagination"
)

// Handler exposes scheme endpoints.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/schemes", h.ListSchemes)
	api.GET("/schemes/:id", h.GetScheme)
	api.POST("/schemes", h.CreateScheme, auth.RequireRole("admin"))
}

func (h *Handler) ListSchemes(c echo.Context) error {
	p := pagination.FromContext(c)
	category := strings.TrimSpace(c.QueryParam("category"))

	items, total, err := h.svc.ListSchemes(c.Request().Context(), category, p.Limit, p.Offset)
	if err != nil {
		if strings.Contains(err.Error(), "invalid category") {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to list schemes")
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(items, total, p.Limit, p.Offset))
}

func (h *Handler) GetScheme(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid scheme id")
	}
	sc, err := h.svc.GetScheme(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "scheme not found")
	}
	return c.JSON(http.StatusOK, sc)
}

func (h *Handler) CreateScheme(c echo.Context) error {
	var sc Scheme
	if err := c.Bind(&sc); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := h.svc.CreateScheme(c.Request().Context(), &sc); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, sc)
}
