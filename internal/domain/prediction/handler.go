package prediction

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/herdwell/herdwell/internal/platform/auth"
	"github.com/herdwell/herdwell/pkg/pagination"
)

// Handler exposes the prediction workflow over HTTP.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.POST("/predict", h.Predict)
	api.POST("/predict/collect", h.Collect)
	api.POST("/predict/retry", h.Retry)
	api.POST("/predict/save", h.Save)
	api.GET("/predict/session", h.Session)
	api.DELETE("/predict/session", h.Dismiss)
	api.GET("/predict/history", h.History)
	api.GET("/predict/health", h.UpstreamHealth)
	api.GET("/predict/animals", h.SupportedAnimals)
}

func (h *Handler) userID(c echo.Context) (uuid.UUID, error) {
	userID := auth.UserIDFromContext(c.Request().Context())
	if userID == uuid.Nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
	}
	return userID, nil
}

// writeError maps workflow errors onto HTTP statuses: validation 400,
// upstream failures 502, save failures 500, contention 409.
func writeError(err error) error {
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return echo.NewHTTPError(http.StatusBadRequest, vErr.Error())
	}
	var pErr *PredictionError
	if errors.As(err, &pErr) {
		return echo.NewHTTPError(http.StatusBadGateway, pErr.Error())
	}
	var sErr *PersistError
	if errors.As(err, &sErr) {
		return echo.NewHTTPError(http.StatusInternalServerError, sErr.Error())
	}
	switch {
	case errors.Is(err, ErrSubmissionInFlight):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, ErrNoRequest), errors.Is(err, ErrNoResult):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	}
	return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
}

func (h *Handler) Collect(c echo.Context) error {
	userID, err := h.userID(c)
	if err != nil {
		return err
	}
	var obs Observation
	if err := c.Bind(&obs); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	snap, err := h.svc.Collect(c.Request().Context(), userID, obs)
	if err != nil {
		return writeError(err)
	}
	return c.JSON(http.StatusOK, snap)
}

func (h *Handler) Predict(c echo.Context) error {
	userID, err := h.userID(c)
	if err != nil {
		return err
	}
	var obs Observation
	if err := c.Bind(&obs); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	snap, err := h.svc.Submit(c.Request().Context(), userID, obs)
	if err != nil {
		return writeError(err)
	}
	return c.JSON(http.StatusOK, snap)
}

func (h *Handler) Retry(c echo.Context) error {
	userID, err := h.userID(c)
	if err != nil {
		return err
	}
	snap, err := h.svc.Retry(c.Request().Context(), userID)
	if err != nil {
		return writeError(err)
	}
	return c.JSON(http.StatusOK, snap)
}

func (h *Handler) Save(c echo.Context) error {
	userID, err := h.userID(c)
	if err != nil {
		return err
	}
	snap, err := h.svc.Persist(c.Request().Context(), userID)
	if err != nil {
		return writeError(err)
	}
	return c.JSON(http.StatusOK, snap)
}

func (h *Handler) Session(c echo.Context) error {
	userID, err := h.userID(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, h.svc.Current(userID))
}

func (h *Handler) Dismiss(c echo.Context) error {
	userID, err := h.userID(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, h.svc.Dismiss(userID))
}

func (h *Handler) History(c echo.Context) error {
	userID, err := h.userID(c)
	if err != nil {
		return err
	}
	p := pagination.FromContext(c)
	items, total, err := h.svc.History(c.Request().Context(), userID, p.Limit, p.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to list prediction history")
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(items, total, p.Limit, p.Offset))
}

func (h *Handler) UpstreamHealth(c echo.Context) error {
	if err := h.svc.UpstreamHealth(c.Request().Context()); err != nil {
		return c.JSON(http.StatusBadGateway, map[string]string{"status": "unreachable"})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "healthy"})
}

func (h *Handler) SupportedAnimals(c echo.Context) error {
	animals, err := h.svc.SupportedAnimals(c.Request().Context())
	if err != nil {
		return writeError(err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"animals": animals,
		"total":   len(animals),
	})
}
