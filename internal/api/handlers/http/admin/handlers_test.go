package admin_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	"github.com/Icer178/traffic-val/internal/api/handlers/http/admin"
	mock_admin "github.com/Icer178/traffic-val/internal/api/handlers/http/admin/mocks"
	"github.com/Icer178/traffic-val/internal/domain"
	"github.com/Icer178/traffic-val/internal/middleware"
	"github.com/Icer178/traffic-val/pkg/e"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func newTestRouter(t *testing.T, actor domain.Actor) (*chi.Mux, *mock_admin.MockUserAdmin, *mock_admin.MockStatsGetter) {
	t.Helper()
	ctrl := gomock.NewController(t)
	userAdmin := mock_admin.NewMockUserAdmin(ctrl)
	stats := mock_admin.NewMockStatsGetter(ctrl)
	h := admin.NewHandler(testLogger, userAdmin, stats)

	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			next.ServeHTTP(w, req.WithContext(middleware.WithActor(req.Context(), actor)))
		})
	})
	r.Get("/admin/stats", h.AdminStats)
	r.Route("/admin/users", func(ur chi.Router) {
		ur.Get("/", h.AdminUserList)
		ur.Patch("/{id}/role", h.AdminUserUpdateRole)
		ur.Delete("/{id}", h.AdminUserDelete)
	})
	return r, userAdmin, stats
}

func TestAdminStats(t *testing.T) {
	actor := domain.Actor{ID: uuid.New(), Role: domain.RoleAdmin}
	r, _, stats := newTestRouter(t, actor)

	stats.EXPECT().Overview(gomock.Any()).Return(&domain.ViolationStats{
		Total:    7,
		ByStatus: map[domain.ViolationStatus]int64{domain.StatusPending: 7},
		ByType:   map[domain.ViolationType]int64{domain.TypeOther: 7},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/admin/stats", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var got domain.ViolationStats
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Total != 7 {
		t.Fatalf("total = %d", got.Total)
	}
}

func TestAdminUserList(t *testing.T) {
	actor := domain.Actor{ID: uuid.New(), Role: domain.RoleAdmin}
	r, userAdmin, _ := newTestRouter(t, actor)

	userAdmin.EXPECT().ListUsers(gomock.Any(), actor).Return([]*domain.User{
		{ID: uuid.New(), Email: "a@example.com", Role: domain.RoleUser},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/admin/users/", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var resp struct {
		Users []*domain.User `json:"users"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Users) != 1 {
		t.Fatalf("users = %v", resp.Users)
	}
}

func TestAdminUserListForbidden(t *testing.T) {
	actor := domain.Actor{ID: uuid.New(), Role: domain.RoleSubAdmin}
	r, userAdmin, _ := newTestRouter(t, actor)

	userAdmin.EXPECT().ListUsers(gomock.Any(), actor).
		Return(nil, e.Forbiddenf("admin access required"))

	req := httptest.NewRequest(http.MethodGet, "/admin/users/", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestAdminUserUpdateRole(t *testing.T) {
	actor := domain.Actor{ID: uuid.New(), Role: domain.RoleAdmin}
	target := uuid.New()

	t.Run("valid role", func(t *testing.T) {
		r, userAdmin, _ := newTestRouter(t, actor)
		userAdmin.EXPECT().UpdateRole(gomock.Any(), actor, target, domain.RoleSubAdmin).
			Return(&domain.User{ID: target, Role: domain.RoleSubAdmin}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/admin/users/"+target.String()+"/role",
			strings.NewReader(`{"role":"sub_admin"}`))
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
		}
	})

	t.Run("unknown role never reaches the service", func(t *testing.T) {
		r, _, _ := newTestRouter(t, actor)

		req := httptest.NewRequest(http.MethodPatch, "/admin/users/"+target.String()+"/role",
			strings.NewReader(`{"role":"superuser"}`))
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status = %d", rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "user, sub_admin, admin") {
			t.Fatalf("body = %s", rec.Body.String())
		}
	})
}

func TestAdminUserDelete(t *testing.T) {
	actor := domain.Actor{ID: uuid.New(), Role: domain.RoleAdmin}
	target := uuid.New()
	r, userAdmin, _ := newTestRouter(t, actor)

	userAdmin.EXPECT().DeleteUser(gomock.Any(), actor, target).Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/admin/users/"+target.String(), nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
}
