package kb

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/defnotwig/portfolio/backend/internal/middleware"
	kbModel "github.com/defnotwig/portfolio/backend/internal/model/kb"
	"github.com/defnotwig/portfolio/backend/pkg/utils"
)

// Handler is the FAQ administration surface. Reads are public; writes are
// token-gated and must preserve unique entry ids.
type Handler struct {
	store      kbModel.Store
	adminToken string
}

// New creates the knowledge-base handler.
func New(store kbModel.Store, adminToken string) *Handler {
	return &Handler{store: store, adminToken: adminToken}
}

// RegisterRoutes registers FAQ routes under /kb.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/kb", func(kb chi.Router) {
		kb.Get("/faqs", h.handleList)

		kb.Group(func(admin chi.Router) {
			admin.Use(middleware.RequireAdmin(h.adminToken))
			admin.Put("/faqs", h.handleReplace)
			admin.Post("/faqs", h.handleAdd)
			admin.Delete("/faqs/{id}", h.handleDelete)
		})
	})
}

func (h *Handler) handleList(w http.ResponseWriter, _ *http.Request) {
	entries, err := h.store.List()
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Failed to read FAQs.")
		return
	}
	if entries == nil {
		entries = []kbModel.Entry{}
	}
	utils.RespondJSON(w, http.StatusOK, entries)
}

func (h *Handler) handleReplace(w http.ResponseWriter, r *http.Request) {
	var entries []kbModel.Entry
	if err := json.NewDecoder(r.Body).Decode(&entries); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Body must be an array of FAQ entries.")
		return
	}

	if err := h.store.Replace(entries); err != nil {
		if errors.Is(err, kbModel.ErrInvalidEntry) {
			utils.RespondError(w, http.StatusBadRequest, "Every entry must include 'id', 'keywords' array and 'answer'.")
			return
		}
		if errors.Is(err, kbModel.ErrDuplicateID) {
			utils.RespondError(w, http.StatusConflict, "Entry ids must be unique.")
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, "Failed to save FAQs.")
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"status": "ok",
		"count":  len(entries),
	})
}

func (h *Handler) handleAdd(w http.ResponseWriter, r *http.Request) {
	var entry kbModel.Entry
	if err := json.NewDecoder(r.Body).Decode(&entry); err != nil || !entry.Valid() {
		utils.RespondError(w, http.StatusBadRequest, "Entry must include 'id', 'keywords' array and 'answer'.")
		return
	}

	if err := h.store.Add(entry); err != nil {
		if errors.Is(err, kbModel.ErrDuplicateID) {
			utils.RespondError(w, http.StatusConflict, "Entry with this id already exists.")
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, "Failed to save FAQ.")
		return
	}

	utils.RespondJSON(w, http.StatusCreated, entry)
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	removed, err := h.store.Delete(id)
	if err != nil {
		if errors.Is(err, kbModel.ErrNotFound) {
			utils.RespondError(w, http.StatusNotFound, "FAQ not found.")
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, "Failed to remove FAQ.")
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "ok",
		"removed": removed,
	})
}
