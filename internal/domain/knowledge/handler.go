package knowledge

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/herdwell/herdwell/internal/platform/auth"
	"github.com/herdwell/herdwell/pkg/pagination"
)

// Handler exposes knowledge base endpoints.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/knowledge", h.ListArticles)
	api.GET("/knowledge/:id", h.GetArticle)
	api.POST("/knowledge", h.CreateArticle, auth.RequireRole("admin"))
}

func (h *Handler) ListArticles(c echo.Context) error {
	p := pagination.FromContext(c)
	f := Filter{
		Category: strings.TrimSpace(c.QueryParam("category")),
		Species:  strings.TrimSpace(c.QueryParam("species")),
		Search:   strings.TrimSpace(c.QueryParam("q")),
	}
	items, total, err := h.svc.ListArticles(c.Request().Context(), f, p.Limit, p.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to list articles")
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(items, total, p.Limit, p.Offset))
}

func (h *Handler) GetArticle(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid article id")
	}
	a, err := h.svc.GetArticle(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "article not found")
	}
	return c.JSON(http.StatusOK, a)
}

func (h *Handler) CreateArticle(c echo.Context) error {
	var a Article
	if err := c.Bind(&a); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := h.svc.CreateArticle(c.Request().Context(), &a); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, a)
}
