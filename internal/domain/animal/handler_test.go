package animal

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/herdwell/herdwell/internal/platform/auth"
)

func newHandlerContext(e *echo.Echo, method, path, body string, userID uuid.UUID) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if userID != uuid.Nil {
		ctx := context.WithValue(req.Context(), auth.UserIDKey, userID)
		req = req.WithContext(ctx)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestCreateAnimalHandler_Success(t *testing.T) {
	e := echo.New()
	h := NewHandler(NewService(newMockRepo()))
	userID := uuid.New()

	c, rec := newHandlerContext(e, http.MethodPost, "/api/v1/animals",
		`{"name":"Daisy","type":"Cow","breed":"Jersey"}`, userID)
	if err := h.CreateAnimal(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var a Animal
	if err := json.Unmarshal(rec.Body.Bytes(), &a); err != nil {
		t.Fatal(err)
	}
	if a.UserID != userID {
		t.Error("owner must come from the authenticated identity, not the payload")
	}
}

func TestCreateAnimalHandler_Unauthenticated(t *testing.T) {
	e := echo.New()
	h := NewHandler(NewService(newMockRepo()))

	c, _ := newHandlerContext(e, http.MethodPost, "/api/v1/animals",
		`{"name":"Daisy","type":"Cow"}`, uuid.Nil)
	err := h.CreateAnimal(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestGetAnimalHandler_NotOwned(t *testing.T) {
	e := echo.New()
	repo := newMockRepo()
	h := NewHandler(NewService(repo))
	a := &Animal{UserID: uuid.New(), Name: "Rex", Type: "Dog"}
	repo.Create(context.Background(), a)

	c, _ := newHandlerContext(e, http.MethodGet, "/api/v1/animals/"+a.ID.String(), "", uuid.New())
	c.SetParamNames("id")
	c.SetParamValues(a.ID.String())
	err := h.GetAnimal(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for foreign animal, got %v", err)
	}
}

func TestListTypesHandler(t *testing.T) {
	e := echo.New()
	h := NewHandler(NewService(newMockRepo()))

	c, rec := newHandlerContext(e, http.MethodGet, "/api/v1/animals/types", "", uuid.Nil)
	if err := h.ListTypes(c); err != nil {
		t.Fatal(err)
	}
	var payload struct {
		Types []string `json:"types"`
		Total int      `json:"total"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatal(err)
	}
	if payload.Total != len(Types) || len(payload.Types) == 0 {
		t.Errorf("unexpected payload: %+v", payload)
	}
}
