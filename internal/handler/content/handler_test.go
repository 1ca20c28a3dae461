package content

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	contentModel "github.com/defnotwig/portfolio/backend/internal/model/content"
)

func setupRouter() *chi.Mux {
	handler := New(contentModel.NewMemoryStore(contentModel.DefaultSeed()))
	r := chi.NewRouter()
	handler.RegisterRoutes(r)
	return r
}

func get(r http.Handler, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func TestAboutEndpoint(t *testing.T) {
	resp := get(setupRouter(), "/about")
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var about contentModel.About
	if err := json.Unmarshal(resp.Body.Bytes(), &about); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if about.Name == "" || len(about.Paragraphs) == 0 {
		t.Fatalf("about document incomplete: %+v", about)
	}
}

func TestExperienceOrdering(t *testing.T) {
	resp := get(setupRouter(), "/experience")
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var experience []contentModel.Experience
	if err := json.Unmarshal(resp.Body.Bytes(), &experience); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(experience) == 0 {
		t.Fatal("expected seeded experience entries")
	}
	for i := 1; i < len(experience); i++ {
		if experience[i].Order < experience[i-1].Order {
			t.Fatalf("experience out of order at index %d", i)
		}
	}
}

func TestProjectsEndpoint(t *testing.T) {
	resp := get(setupRouter(), "/projects")
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var projects []contentModel.Project
	if err := json.Unmarshal(resp.Body.Bytes(), &projects); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(projects) != 4 {
		t.Fatalf("expected 4 seeded projects, got %d", len(projects))
	}
}

func TestCertificationsEndpoint(t *testing.T) {
	resp := get(setupRouter(), "/certifications")
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var certifications []contentModel.Certification
	if err := json.Unmarshal(resp.Body.Bytes(), &certifications); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(certifications) != 4 {
		t.Fatalf("expected 4 seeded certifications, got %d", len(certifications))
	}
}

func TestRecommendationsEndpoint(t *testing.T) {
	resp := get(setupRouter(), "/recommendations")
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var recommendations []contentModel.Recommendation
	if err := json.Unmarshal(resp.Body.Bytes(), &recommendations); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(recommendations) != 5 {
		t.Fatalf("expected 5 seeded recommendations, got %d", len(recommendations))
	}
}
