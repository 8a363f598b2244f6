package knowledge

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
)

type mockRepo struct {
	articles []*Article
}

func (m *mockRepo) Create(_ context.Context, a *Article) error {
	m.articles = append(m.articles, a)
	return nil
}

func (m *mockRepo) GetByID(_ context.Context, id uuid.UUID) (*Article, error) {
	for _, a := range m.articles {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, nil
}

func (m *mockRepo) List(_ context.Context, f Filter, limit, offset int) ([]*Article, int, error) {
	var r []*Article
	for _, a := range m.articles {
		if f.Category != "" && a.Category != f.Category {
			continue
		}
		if f.Species != "" && (a.Species == nil || *a.Species != f.Species) {
			continue
		}
		if f.Search != "" && !strings.Contains(strings.ToLower(a.Title), strings.ToLower(f.Search)) {
			continue
		}
		r = append(r, a)
	}
	return r, len(r), nil
}

func TestCreateArticle_Validation(t *testing.T) {
	svc := NewService(&mockRepo{})
	if err := svc.CreateArticle(context.Background(), &Article{Category: "diseases", Content: "c"}); err == nil {
		t.Error("expected error without title")
	}
	if err := svc.CreateArticle(context.Background(), &Article{Title: "t", Category: "diseases"}); err == nil {
		t.Error("expected error without content")
	}
	a := &Article{Title: "Mastitis basics", Category: "diseases", Content: "..."}
	if err := svc.CreateArticle(context.Background(), a); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.ID == uuid.Nil {
		t.Error("expected ID to be set")
	}
}

func TestListArticles_Filters(t *testing.T) {
	cow := "Cow"
	repo := &mockRepo{articles: []*Article{
		{ID: uuid.New(), Title: "Mastitis in dairy cattle", Category: "diseases", Species: &cow, Content: "..."},
		{ID: uuid.New(), Title: "Poultry feed guide", Category: "nutrition", Content: "..."},
	}}
	svc := NewService(repo)

	items, total, err := svc.ListArticles(context.Background(), Filter{Category: "diseases"}, 20, 0)
	if err != nil || total != 1 || items[0].Category != "diseases" {
		t.Errorf("category filter failed: %v %v", items, err)
	}

	items, total, err = svc.ListArticles(context.Background(), Filter{Search: "mastitis"}, 20, 0)
	if err != nil || total != 1 || !strings.Contains(items[0].Title, "Mastitis") {
		t.Errorf("title search failed: %v %v", items, err)
	}

	items, total, err = svc.ListArticles(context.Background(), Filter{Species: "Cow"}, 20, 0)
	if err != nil || total != 1 {
		t.Errorf("species filter failed: %v %v", items, err)
	}
}
