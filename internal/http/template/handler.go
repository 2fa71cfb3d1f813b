package template

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/jobdocs/internal/document"
	"github.com/MrJamesThe3rd/jobdocs/internal/template"
)

type Handler struct {
	catalog *template.Catalog
}

func NewHandler(catalog *template.Catalog) *Handler {
	return &Handler{catalog: catalog}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/industries", h.industries)
	r.Get("/industries/{industry}/templates", h.templates)
}

func (h *Handler) industries(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(h.catalog.Industries()); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type templateResponse struct {
	ID          string           `json:"id"`
	Industry    string           `json:"industry"`
	DocType     document.DocType `json:"docType"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
}

func (h *Handler) templates(w http.ResponseWriter, r *http.Request) {
	lang := r.URL.Query().Get("lang")
	if lang == "" {
		lang = template.DefaultLanguage
	}

	templates := h.catalog.TemplatesByIndustry(chi.URLParam(r, "industry"))

	out := make([]templateResponse, len(templates))
	for i, t := range templates {
		out[i] = templateResponse{
			ID:          t.ID,
			Industry:    t.Industry,
			DocType:     t.DocType,
			Name:        t.Name.ForLanguage(lang),
			Description: t.Description.ForLanguage(lang),
		}
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(out); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
