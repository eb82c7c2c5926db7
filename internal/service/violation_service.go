package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/Icer178/traffic-val/internal/authz"
	"github.com/Icer178/traffic-val/internal/domain"
	"github.com/Icer178/traffic-val/pkg/e"
	"github.com/Icer178/traffic-val/pkg/validator"
)

type ViolationService struct {
	repo     ViolationRepository
	evidence EvidenceStore
	notify   NotificationQueue
	logger   *slog.Logger
}

func NewViolationService(
	repo ViolationRepository,
	evidence EvidenceStore,
	notify NotificationQueue,
	logger *slog.Logger,
) *ViolationService {
	return &ViolationService{
		repo:     repo,
		evidence: evidence,
		notify:   notify,
		logger:   logger,
	}
}

func (s *ViolationService) List(ctx context.Context, actor domain.Actor, filters domain.ViolationFilters) ([]*domain.Violation, error) {
	if err := validator.ValidateStruct(&filters); err != nil {
		return nil, fmt.Errorf("filters: %w", e.ErrInvalidInput)
	}
	return s.repo.List(ctx, authz.ScopeList(actor), filters)
}

func (s *ViolationService) Get(ctx context.Context, actor domain.Actor, id uuid.UUID) (*domain.Violation, error) {
	v, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := authz.CanGet(actor, v); err != nil {
		return nil, err
	}
	return v, nil
}

// Create ignores any caller-supplied status and owner: the record always
// starts pending and belongs to the actor.
func (s *ViolationService) Create(ctx context.Context, actor domain.Actor, req domain.CreateViolationRequest) (*domain.Violation, error) {
	if err := validator.ValidateStruct(&req); err != nil {
		return nil, fmt.Errorf("%w: %s", e.ErrInvalidInput, err)
	}

	now := time.Now().UTC()
	v := &domain.Violation{
		ID:            uuid.New(),
		OwnerID:       actor.ID,
		Type:          req.Type,
		Description:   req.Description,
		Location:      req.Location,
		VehiclePlate:  req.VehiclePlate,
		VehicleModel:  req.VehicleModel,
		VehicleColor:  req.VehicleColor,
		DateTime:      req.DateTime,
		ReporterName:  req.ReporterName,
		ReporterEmail: req.ReporterEmail,
		ReporterPhone: req.ReporterPhone,
		Status:        domain.StatusPending,
		EvidenceURLs:  req.EvidenceURLs,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.repo.Insert(ctx, v); err != nil {
		return nil, err
	}

	s.enqueue(ctx, domain.NotificationPayload{
		Event:       domain.EventViolationCreated,
		ViolationID: v.ID,
		OwnerID:     v.OwnerID,
		Status:      v.Status,
		ChangedBy:   actor.ID,
		OccurredAt:  now,
	})

	return v, nil
}

// Update loads the current snapshot, runs the full authorization check
// (visibility, field table, status target) and only then persists. Denials
// never leave a partially applied patch.
func (s *ViolationService) Update(ctx context.Context, actor domain.Actor, id uuid.UUID, patch domain.UpdateViolationRequest) (*domain.Violation, error) {
	if patch.Empty() {
		return nil, fmt.Errorf("empty patch: %w", e.ErrInvalidInput)
	}
	if err := validator.ValidateStruct(&patch); err != nil {
		return nil, fmt.Errorf("%w: %s", e.ErrInvalidInput, err)
	}

	v, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := authz.CheckUpdate(actor, v, &patch); err != nil {
		return nil, err
	}

	statusChanged := patch.Status != nil && *patch.Status != v.Status

	applyPatch(v, &patch)
	v.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, v); err != nil {
		return nil, err
	}

	if statusChanged {
		s.enqueue(ctx, domain.NotificationPayload{
			Event:       domain.EventStatusChanged,
			ViolationID: v.ID,
			OwnerID:     v.OwnerID,
			Status:      v.Status,
			ChangedBy:   actor.ID,
			OccurredAt:  v.UpdatedAt,
		})
	}

	return v, nil
}

// Delete checks the role before touching the store, so non-admins get
// Forbidden even for ids that do not exist.
func (s *ViolationService) Delete(ctx context.Context, actor domain.Actor, id uuid.UUID) error {
	if err := authz.CanDelete(actor); err != nil {
		return err
	}

	v, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	if err := s.evidence.Delete(ctx, v.OwnerID, v.ID); err != nil {
		s.logger.Warn("evidence cleanup failed",
			slog.String("violation_id", id.String()),
			slog.Any("error", err),
		)
	}
	return nil
}

// AttachEvidence stores the uploaded files and appends their URLs through
// the same field rule that governs an evidenceUrls patch, so only the owner
// (or an admin) can attach.
func (s *ViolationService) AttachEvidence(ctx context.Context, actor domain.Actor, id uuid.UUID, files []EvidenceFile) (*domain.Violation, error) {
	if len(files) == 0 {
		return nil, fmt.Errorf("no files: %w", e.ErrInvalidInput)
	}

	v, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	urls := v.EvidenceURLs
	probe := domain.UpdateViolationRequest{EvidenceURLs: &urls}
	if err := authz.CheckUpdate(actor, v, &probe); err != nil {
		return nil, err
	}

	seq := len(v.EvidenceURLs)
	for _, f := range files {
		url, err := s.evidence.Store(ctx, v.OwnerID, v.ID, seq, f.Name, f.Data)
		if err != nil {
			return nil, e.Wrap("store evidence", err)
		}
		v.EvidenceURLs = append(v.EvidenceURLs, url)
		seq++
	}
	v.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

func (s *ViolationService) enqueue(ctx context.Context, p domain.NotificationPayload) {
	if s.notify == nil {
		return
	}
	if err := s.notify.Enqueue(ctx, p); err != nil {
		s.logger.Error("enqueue notification failed",
			slog.String("event", string(p.Event)),
			slog.String("violation_id", p.ViolationID.String()),
			slog.Any("error", err),
		)
	}
}

func applyPatch(v *domain.Violation, p *domain.UpdateViolationRequest) {
	if p.Type != nil {
		v.Type = *p.Type
	}
	if p.Description != nil {
		v.Description = *p.Description
	}
	if p.Location != nil {
		v.Location = *p.Location
	}
	if p.VehiclePlate != nil {
		v.VehiclePlate = *p.VehiclePlate
	}
	if p.VehicleModel != nil {
		v.VehicleModel = *p.VehicleModel
	}
	if p.VehicleColor != nil {
		v.VehicleColor = *p.VehicleColor
	}
	if p.DateTime != nil {
		v.DateTime = *p.DateTime
	}
	if p.ReporterName != nil {
		v.ReporterName = *p.ReporterName
	}
	if p.ReporterEmail != nil {
		v.ReporterEmail = *p.ReporterEmail
	}
	if p.ReporterPhone != nil {
		v.ReporterPhone = *p.ReporterPhone
	}
	if p.Status != nil {
		v.Status = *p.Status
	}
	if p.EvidenceURLs != nil {
		v.EvidenceURLs = *p.EvidenceURLs
	}
	if p.AdminNotes != nil {
		v.AdminNotes = *p.AdminNotes
	}
}
