package domain

import "time"

// CreateViolationRequest carries the reporter's submission. Status is
// accepted in the payload but always overridden to pending by the service;
// the owner is always the authenticated actor.
type CreateViolationRequest struct {
	Type          ViolationType   `json:"type" validate:"required,violation_type"`
	Description   string          `json:"description" validate:"required"`
	Location      string          `json:"location" validate:"required"`
	VehiclePlate  string          `json:"vehiclePlate" validate:"required"`
	VehicleModel  string          `json:"vehicleModel" validate:"omitempty"`
	VehicleColor  string          `json:"vehicleColor" validate:"omitempty"`
	DateTime      time.Time       `json:"dateTime" validate:"required"`
	ReporterName  string          `json:"reporterName" validate:"required"`
	ReporterEmail string          `json:"reporterEmail" validate:"required,email"`
	ReporterPhone string          `json:"reporterPhone" validate:"omitempty"`
	EvidenceURLs  []string        `json:"evidenceUrls" validate:"omitempty,dive,url"`
	Status        ViolationStatus `json:"status" validate:"omitempty"`
}

// UpdateViolationRequest is a partial patch: a nil pointer means the key was
// absent from the payload, a non-nil pointer means it was present. Field-level
// permissions are decided per present key.
type UpdateViolationRequest struct {
	Type          *ViolationType   `json:"type" validate:"omitempty,violation_type"`
	Description   *string          `json:"description" validate:"omitempty"`
	Location      *string          `json:"location" validate:"omitempty"`
	VehiclePlate  *string          `json:"vehiclePlate" validate:"omitempty"`
	VehicleModel  *string          `json:"vehicleModel" validate:"omitempty"`
	VehicleColor  *string          `json:"vehicleColor" validate:"omitempty"`
	DateTime      *time.Time       `json:"dateTime" validate:"omitempty"`
	ReporterName  *string          `json:"reporterName" validate:"omitempty"`
	ReporterEmail *string          `json:"reporterEmail" validate:"omitempty,email"`
	ReporterPhone *string          `json:"reporterPhone" validate:"omitempty"`
	Status        *ViolationStatus `json:"status" validate:"omitempty,violation_status"`
	EvidenceURLs  *[]string        `json:"evidenceUrls" validate:"omitempty,dive,url"`
	AdminNotes    *string          `json:"adminNotes" validate:"omitempty"`
}

func (r *UpdateViolationRequest) Empty() bool {
	return r.Type == nil && r.Description == nil && r.Location == nil &&
		r.VehiclePlate == nil && r.VehicleModel == nil && r.VehicleColor == nil &&
		r.DateTime == nil && r.ReporterName == nil && r.ReporterEmail == nil &&
		r.ReporterPhone == nil && r.Status == nil && r.EvidenceURLs == nil &&
		r.AdminNotes == nil
}

// ViolationFilters narrows list results by exact match; zero values mean no
// filter.
type ViolationFilters struct {
	Status ViolationStatus `json:"status" validate:"omitempty,violation_status"`
	Type   ViolationType   `json:"type" validate:"omitempty,violation_type"`
}
