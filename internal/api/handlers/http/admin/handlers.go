package admin

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/Icer178/traffic-val/internal/domain"
	"github.com/Icer178/traffic-val/internal/middleware"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type UserAdmin interface {
	ListUsers(ctx context.Context, actor domain.Actor) ([]*domain.User, error)
	UpdateRole(ctx context.Context, actor domain.Actor, id uuid.UUID, role domain.Role) (*domain.User, error)
	DeleteUser(ctx context.Context, actor domain.Actor, id uuid.UUID) error
}

type StatsGetter interface {
	Overview(ctx context.Context) (*domain.ViolationStats, error)
}

type Handler struct {
	logger    *slog.Logger
	UserAdmin UserAdmin
	Stats     StatsGetter
}

func NewHandler(logger *slog.Logger, userAdmin UserAdmin, stats StatsGetter) *Handler {
	return &Handler{logger: logger, UserAdmin: userAdmin, Stats: stats}
}

func (h *Handler) AdminStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Stats.Overview(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, stats)
}

func (h *Handler) AdminUserList(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.ActorFromContext(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	users, err := h.UserAdmin.ListUsers(r.Context(), actor)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	if users == nil {
		users = []*domain.User{}
	}
	h.writeJSON(w, http.StatusOK, map[string]any{"users": users})
}

func (h *Handler) AdminUserUpdateRole(w http.ResponseWriter, r *http.Request) {
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

	var req domain.UpdateRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		l.Warn("invalid JSON", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	role, err := domain.ParseRole(req.Role)
	if err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{
			"error": "invalid role, must be one of: user, sub_admin, admin",
		})
		return
	}

	user, err := h.UserAdmin.UpdateRole(r.Context(), actor, id, role)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("user role updated", slog.String("id", id.String()), slog.String("role", req.Role))
	h.writeJSON(w, http.StatusOK, user)
}

func (h *Handler) AdminUserDelete(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.ActorFromContext(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	if err := h.UserAdmin.DeleteUser(r.Context(), actor, id); err != nil {
		h.handleError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]bool{"success": true})
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
