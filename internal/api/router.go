package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/Icer178/traffic-val/internal/api/handlers/http/account"
	"github.com/Icer178/traffic-val/internal/api/handlers/http/admin"
	"github.com/Icer178/traffic-val/internal/api/handlers/http/system"
	"github.com/Icer178/traffic-val/internal/api/handlers/http/violations"
	"github.com/Icer178/traffic-val/internal/auth"
	"github.com/Icer178/traffic-val/internal/config"
	"github.com/Icer178/traffic-val/internal/domain"
	"github.com/Icer178/traffic-val/internal/middleware"
	"github.com/Icer178/traffic-val/internal/service"
)

type Server struct {
	logger *slog.Logger
	router *chi.Mux
	cfg    config.Config
}

func NewServer(cfg *config.Config, logger *slog.Logger, svc *service.Service, tokens *auth.TokenManager) *Server {
	violationHandler := violations.NewHandler(logger, svc.Violations)
	adminHandler := admin.NewHandler(logger, svc.UserAdmin, svc.Stats)
	accountHandler := account.NewHandler(logger, svc.Auth)
	systemHandler := system.NewHandler(logger)

	r := InitRouter(cfg, logger, tokens, violationHandler, adminHandler, accountHandler, systemHandler)

	return &Server{
		logger: logger,
		router: r,
		cfg:    *cfg,
	}
}

func InitRouter(
	cfg *config.Config,
	logger *slog.Logger,
	tokens *auth.TokenManager,
	violationHandler *violations.Handler,
	adminHandler *admin.Handler,
	accountHandler *account.Handler,
	systemHandler *system.Handler,
) *chi.Mux {
	r := chi.NewMux()

	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Logger)

	r.Route("/api/v1", func(api chi.Router) {
		// PUBLIC
		api.Route("/auth", func(ar chi.Router) {
			ar.Use(middleware.Limit(5, 10, 10*time.Minute, logger))
			ar.Post("/signup", accountHandler.SignUp)
			ar.Post("/signin", accountHandler.SignIn)
		})

		// AUTHENTICATED
		api.Group(func(pr chi.Router) {
			pr.Use(middleware.Authenticate(tokens, logger))

			pr.Route("/violations", func(vr chi.Router) {
				vr.Use(middleware.Limit(10, 20, 5*time.Minute, logger))

				vr.Get("/", violationHandler.ViolationList)
				vr.Post("/", violationHandler.ViolationCreate)

				vr.Route("/{id}", func(rr chi.Router) {
					rr.Get("/", violationHandler.ViolationGet)
					rr.Patch("/", violationHandler.ViolationUpdate)
					rr.Delete("/", violationHandler.ViolationDelete)
					rr.Post("/evidence", violationHandler.ViolationAttachEvidence)
				})
			})

			// ADMIN
			pr.Route("/admin", func(ar chi.Router) {
				ar.With(middleware.RequireRole(logger, domain.RoleAdmin, domain.RoleSubAdmin)).
					Get("/stats", adminHandler.AdminStats)

				ar.Route("/users", func(ur chi.Router) {
					ur.Use(middleware.RequireRole(logger, domain.RoleAdmin))
					ur.Get("/", adminHandler.AdminUserList)
					ur.Patch("/{id}/role", adminHandler.AdminUserUpdateRole)
					ur.Delete("/{id}", adminHandler.AdminUserDelete)
				})
			})
		})

		// SYSTEM
		api.Get("/health", systemHandler.SystemHealth)
	})

	return r
}

func (s *Server) Run(ctx context.Context) error {
	port := s.cfg.Http.Port
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}

	srv := &http.Server{
		Addr:         port,
		Handler:      s.router,
		ReadTimeout:  s.cfg.Http.ReadTimeout,
		WriteTimeout: s.cfg.Http.WriteTimeout,
		IdleTimeout:  30 * time.Second,
	}

	errChan := make(chan error, 1)

	go func() {
		s.logger.Info("Starting HTTP server",
			slog.String("addr", srv.Addr),
			slog.Duration("read_timeout", s.cfg.Http.ReadTimeout),
			slog.Duration("write_timeout", s.cfg.Http.WriteTimeout),
		)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("ListenAndServe error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("Shutting down HTTP server", slog.String("reason", ctx.Err().Error()))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Http.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("Server shutdown failed", slog.Any("error", err))
			return err
		}
		return nil

	case err := <-errChan:
		return err
	}
}
