package postgres

import (
	"time"

	"github.com/google/uuid"

	"github.com/Icer178/traffic-val/internal/domain"
)

// violationRow is the storage-side shape of a violation: snake_case columns,
// NULLs for the optional fields. rowToViolation and violationToRow form a
// total, lossless pair; every logical field has exactly one column here and
// the round trip is the identity.
type violationRow struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Type          string
	Description   string
	Location      string
	VehiclePlate  string
	VehicleModel  *string
	VehicleColor  *string
	DateTime      time.Time
	ReporterName  string
	ReporterEmail string
	ReporterPhone *string
	Status        string
	EvidenceURLs  []string
	AdminNotes    *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func violationToRow(v *domain.Violation) violationRow {
	return violationRow{
		ID:            v.ID,
		UserID:        v.OwnerID,
		Type:          string(v.Type),
		Description:   v.Description,
		Location:      v.Location,
		VehiclePlate:  v.VehiclePlate,
		VehicleModel:  toNullable(v.VehicleModel),
		VehicleColor:  toNullable(v.VehicleColor),
		DateTime:      v.DateTime,
		ReporterName:  v.ReporterName,
		ReporterEmail: v.ReporterEmail,
		ReporterPhone: toNullable(v.ReporterPhone),
		Status:        string(v.Status),
		EvidenceURLs:  v.EvidenceURLs,
		AdminNotes:    toNullable(v.AdminNotes),
		CreatedAt:     v.CreatedAt,
		UpdatedAt:     v.UpdatedAt,
	}
}

func rowToViolation(r violationRow) *domain.Violation {
	return &domain.Violation{
		ID:            r.ID,
		OwnerID:       r.UserID,
		Type:          domain.ViolationType(r.Type),
		Description:   r.Description,
		Location:      r.Location,
		VehiclePlate:  r.VehiclePlate,
		VehicleModel:  fromNullable(r.VehicleModel),
		VehicleColor:  fromNullable(r.VehicleColor),
		DateTime:      r.DateTime,
		ReporterName:  r.ReporterName,
		ReporterEmail: r.ReporterEmail,
		ReporterPhone: fromNullable(r.ReporterPhone),
		Status:        domain.ViolationStatus(r.Status),
		EvidenceURLs:  r.EvidenceURLs,
		AdminNotes:    fromNullable(r.AdminNotes),
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}

func toNullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func fromNullable(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
