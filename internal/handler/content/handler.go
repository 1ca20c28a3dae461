package content

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	contentModel "github.com/defnotwig/portfolio/backend/internal/model/content"
	"github.com/defnotwig/portfolio/backend/pkg/utils"
)

// Handler serves the read-only portfolio documents consumed by the SPA.
type Handler struct {
	store contentModel.Store
}

// New creates the content handler.
func New(store contentModel.Store) *Handler {
	return &Handler{store: store}
}

// RegisterRoutes registers the content routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/about", h.handleAbout)
	r.Get("/experience", h.handleExperience)
	r.Get("/projects", h.handleProjects)
	r.Get("/certifications", h.handleCertifications)
	r.Get("/recommendations", h.handleRecommendations)
}

func (h *Handler) handleAbout(w http.ResponseWriter, r *http.Request) {
	about, err := h.store.About(r.Context())
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "failed to load about")
		return
	}
	utils.RespondJSON(w, http.StatusOK, about)
}

func (h *Handler) handleExperience(w http.ResponseWriter, r *http.Request) {
	experience, err := h.store.Experiences(r.Context())
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "failed to load experience")
		return
	}
	utils.RespondJSON(w, http.StatusOK, experience)
}

func (h *Handler) handleProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := h.store.Projects(r.Context())
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "failed to load projects")
		return
	}
	utils.RespondJSON(w, http.StatusOK, projects)
}

func (h *Handler) handleCertifications(w http.ResponseWriter, r *http.Request) {
	certifications, err := h.store.Certifications(r.Context())
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "failed to load certifications")
		return
	}
	utils.RespondJSON(w, http.StatusOK, certifications)
}

func (h *Handler) handleRecommendations(w http.ResponseWriter, r *http.Request) {
	recommendations, err := h.store.Recommendations(r.Context())
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "failed to load recommendations")
		return
	}
	utils.RespondJSON(w, http.StatusOK, recommendations)
}
