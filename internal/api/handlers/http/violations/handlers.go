package violations

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/Icer178/traffic-val/internal/domain"
	"github.com/Icer178/traffic-val/internal/middleware"
	"github.com/Icer178/traffic-val/internal/service"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type ViolationUseCases interface {
	List(ctx context.Context, actor domain.Actor, filters domain.ViolationFilters) ([]*domain.Violation, error)
	Get(ctx context.Context, actor domain.Actor, id uuid.UUID) (*domain.Violation, error)
	Create(ctx context.Context, actor domain.Actor, req domain.CreateViolationRequest) (*domain.Violation, error)
	Update(ctx context.Context, actor domain.Actor, id uuid.UUID, patch domain.UpdateViolationRequest) (*domain.Violation, error)
	Delete(ctx context.Context, actor domain.Actor, id uuid.UUID) error
	AttachEvidence(ctx context.Context, actor domain.Actor, id uuid.UUID, files []service.EvidenceFile) (*domain.Violation, error)
}

const maxEvidenceMemory = 32 << 20 // 32 MiB

type Handler struct {
	logger     *slog.Logger
	Violations ViolationUseCases
}

func NewHandler(logger *slog.Logger, violations ViolationUseCases) *Handler {
	return &Handler{logger: logger, Violations: violations}
}

func (h *Handler) ViolationList(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	actor, err := middleware.ActorFromContext(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	filters := domain.ViolationFilters{
		Status: domain.ViolationStatus(r.URL.Query().Get("status")),
		Type:   domain.ViolationType(r.URL.Query().Get("type")),
	}

	violations, err := h.Violations.List(r.Context(), actor, filters)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	if violations == nil {
		violations = []*domain.Violation{}
	}

	l.Info("violations listed", slog.Int("count", len(violations)))
	h.writeJSON(w, http.StatusOK, violations)
}

func (h *Handler) ViolationGet(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.ActorFromContext(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	v, err := h.Violations.Get(r.Context(), actor, id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, v)
}

func (h *Handler) ViolationCreate(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	actor, err := middleware.ActorFromContext(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	var req domain.CreateViolationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		l.Warn("invalid JSON", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	v, err := h.Violations.Create(r.Context(), actor, req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("violation created",
		slog.String("id", v.ID.String()),
		slog.String("type", string(v.Type)),
	)
	h.writeJSON(w, http.StatusCreated, v)
}

func (h *Handler) ViolationUpdate(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	actor, err := middleware.ActorFromContext(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	var patch domain.UpdateViolationRequest
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		l.Warn("invalid JSON", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	v, err := h.Violations.Update(r.Context(), actor, id, patch)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("violation updated", slog.String("id", id.String()))
	h.writeJSON(w, http.StatusOK, v)
}

func (h *Handler) ViolationDelete(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.ActorFromContext(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	if err := h.Violations.Delete(r.Context(), actor, id); err != nil {
		h.handleError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *Handler) ViolationAttachEvidence(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	actor, err := middleware.ActorFromContext(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	if err := r.ParseMultipartForm(maxEvidenceMemory); err != nil {
		l.Warn("invalid multipart form", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid multipart form"})
		return
	}

	var files []service.EvidenceFile
	for _, fh := range r.MultipartForm.File["files"] {
		f, err := fh.Open()
		if err != nil {
			h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "unreadable file"})
			return
		}
		data, err := io.ReadAll(f)
		_ = f.Close()
		if err != nil {
			h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "unreadable file"})
			return
		}
		files = append(files, service.EvidenceFile{Name: fh.Filename, Data: data})
	}

	v, err := h.Violations.AttachEvidence(r.Context(), actor, id, files)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("evidence attached",
		slog.String("id", id.String()),
		slog.Int("files", len(files)),
	)
	h.writeJSON(w, http.StatusOK, v)
}

func (h *Handler) parseID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	idStr := chi.URLParam(r, "id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		h.log(r).Warn("invalid id", slog.String("id", idStr))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return uuid.Nil, false
	}
	return id, true
}
