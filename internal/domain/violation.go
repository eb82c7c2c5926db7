package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type ViolationStatus string

const (
	StatusPending     ViolationStatus = "pending"
	StatusUnderReview ViolationStatus = "under_review"
	StatusResolved    ViolationStatus = "resolved"
	StatusDismissed   ViolationStatus = "dismissed"
)

func ParseViolationStatus(s string) (ViolationStatus, error) {
	switch ViolationStatus(s) {
	case StatusPending, StatusUnderReview, StatusResolved, StatusDismissed:
		return ViolationStatus(s), nil
	}
	return "", fmt.Errorf("unknown violation status %q", s)
}

type ViolationType string

const (
	TypeSpeeding        ViolationType = "speeding"
	TypeRedLight        ViolationType = "red_light"
	TypeIllegalParking  ViolationType = "illegal_parking"
	TypeRecklessDriving ViolationType = "reckless_driving"
	TypeNoSeatbelt      ViolationType = "no_seatbelt"
	TypePhoneUsage      ViolationType = "phone_usage"
	TypeDrunkDriving    ViolationType = "drunk_driving"
	TypeOther           ViolationType = "other"
)

func ParseViolationType(s string) (ViolationType, error) {
	switch ViolationType(s) {
	case TypeSpeeding, TypeRedLight, TypeIllegalParking, TypeRecklessDriving,
		TypeNoSeatbelt, TypePhoneUsage, TypeDrunkDriving, TypeOther:
		return ViolationType(s), nil
	}
	return "", fmt.Errorf("unknown violation type %q", s)
}

// Violation is the reported traffic violation. OwnerID is set once at
// creation and never changes afterwards.
type Violation struct {
	ID            uuid.UUID       `json:"id"`
	OwnerID       uuid.UUID       `json:"ownerId"`
	Type          ViolationType   `json:"type"`
	Description   string          `json:"description"`
	Location      string          `json:"location"`
	VehiclePlate  string          `json:"vehiclePlate"`
	VehicleModel  string          `json:"vehicleModel,omitempty"`
	VehicleColor  string          `json:"vehicleColor,omitempty"`
	DateTime      time.Time       `json:"dateTime"`
	ReporterName  string          `json:"reporterName"`
	ReporterEmail string          `json:"reporterEmail"`
	ReporterPhone string          `json:"reporterPhone,omitempty"`
	Status        ViolationStatus `json:"status"`
	EvidenceURLs  []string        `json:"evidenceUrls,omitempty"`
	AdminNotes    string          `json:"adminNotes,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}
