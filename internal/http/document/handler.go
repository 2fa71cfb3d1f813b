package document

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/jobdocs/internal/auth"
	"github.com/MrJamesThe3rd/jobdocs/internal/docstore"
	"github.com/MrJamesThe3rd/jobdocs/internal/document"
	"github.com/MrJamesThe3rd/jobdocs/internal/template"
)

type Handler struct {
	svc *docstore.Service
}

func NewHandler(svc *docstore.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/trash", h.trash)
	r.Get("/{id}", h.get)
	r.Patch("/{id}", h.patch)
	r.Delete("/{id}", h.delete)
	r.Post("/{id}/restore", h.restore)
	r.Delete("/{id}/permanent", h.deletePermanent)
}

// InitSession rebuilds the caller's session from local and remote state.
func (h *Handler) InitSession(w http.ResponseWriter, r *http.Request) {
	sess := h.svc.InitSession(r.Context(), auth.UserFromContext(r.Context()))

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(sess.Counters()); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type createDocumentRequest struct {
	Industry   string `json:"industry"`
	TemplateID string `json:"templateId"`
	Language   string `json:"language"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createDocumentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	doc, err := h.session(r).CreateFromTemplate(docstore.CreateParams{
		Industry:   req.Industry,
		TemplateID: req.TemplateID,
		Language:   req.Language,
	})
	if err != nil {
		if errors.Is(err, template.ErrNotFound) {
			http.Error(w, "template not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(doc); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	docs := h.session(r).List(docstore.ListFilter{
		Query: r.URL.Query().Get("q"),
	})

	writeDocs(w, docs)
}

func (h *Handler) trash(w http.ResponseWriter, r *http.Request) {
	writeDocs(w, h.session(r).ListDeleted())
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	writeDoc(w, h.session(r).Get(id))
}

func (h *Handler) patch(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var patch document.Patch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	writeDoc(w, h.session(r).Patch(id, patch))
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	writeDoc(w, h.session(r).SoftDelete(id))
}

func (h *Handler) restore(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	writeDoc(w, h.session(r).Restore(id))
}

func (h *Handler) deletePermanent(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	h.session(r).HardDelete(id)

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) session(r *http.Request) *docstore.Session {
	return h.svc.Session(r.Context(), auth.UserFromContext(r.Context()))
}

func writeDoc(w http.ResponseWriter, doc *document.Document) {
	if doc == nil {
		http.Error(w, "document not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(doc); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func writeDocs(w http.ResponseWriter, docs []*document.Document) {
	if docs == nil {
		docs = []*document.Document{}
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(docs); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
