// Package authz is the single source of truth for who may read, create,
// mutate or delete a violation. Every function is a pure predicate over the
// actor, the resource snapshot and the proposed patch; no I/O happens here
// and every denial is decided before the caller touches the store.
package authz

import (
	"github.com/google/uuid"

	"github.com/Icer178/traffic-val/internal/domain"
	"github.com/Icer178/traffic-val/pkg/e"
)

// Field identifies a patchable violation field at the policy level.
type Field string

const (
	FieldType          Field = "type"
	FieldDescription   Field = "description"
	FieldLocation      Field = "location"
	FieldVehiclePlate  Field = "vehiclePlate"
	FieldVehicleModel  Field = "vehicleModel"
	FieldVehicleColor  Field = "vehicleColor"
	FieldDateTime      Field = "dateTime"
	FieldReporterName  Field = "reporterName"
	FieldReporterEmail Field = "reporterEmail"
	FieldReporterPhone Field = "reporterPhone"
	FieldStatus        Field = "status"
	FieldEvidenceURLs  Field = "evidenceUrls"
	FieldAdminNotes    Field = "adminNotes"
)

// contentFields are the report body fields only admins may correct.
var contentFields = []Field{
	FieldType, FieldDescription, FieldLocation, FieldVehiclePlate,
	FieldVehicleModel, FieldVehicleColor, FieldDateTime,
	FieldReporterName, FieldReporterEmail, FieldReporterPhone,
}

var allowedFields = map[domain.Role]map[Field]struct{}{
	domain.RoleUser: {
		FieldEvidenceURLs: {},
	},
	domain.RoleSubAdmin: {
		FieldStatus:     {},
		FieldAdminNotes: {},
	},
	domain.RoleAdmin: adminFields(),
}

func adminFields() map[Field]struct{} {
	m := map[Field]struct{}{
		FieldStatus:       {},
		FieldAdminNotes:   {},
		FieldEvidenceURLs: {},
	}
	for _, f := range contentFields {
		m[f] = struct{}{}
	}
	return m
}

// AllowedFields reports the set of fields the role may change on an update.
func AllowedFields(role domain.Role) map[Field]struct{} {
	return allowedFields[role]
}

// ListScope is the ownership filter for list queries. For the user role the
// result set is narrowed to the actor's own reports at the query level; list
// itself is never a hard deny.
type ListScope struct {
	OwnerID *uuid.UUID
}

func ScopeList(actor domain.Actor) ListScope {
	if actor.Role == domain.RoleUser {
		id := actor.ID
		return ListScope{OwnerID: &id}
	}
	return ListScope{}
}

// CanGet allows staff unconditionally and owners of the record; any other
// user is denied. The denial reveals that the id exists, matching the
// original behavior (see DESIGN.md for the non-enumeration trade-off).
func CanGet(actor domain.Actor, v *domain.Violation) error {
	if actor.Role != domain.RoleUser {
		return nil
	}
	if v.OwnerID == actor.ID {
		return nil
	}
	return e.Forbiddenf("not the owner of this violation")
}

// CanDelete is admin-only and deliberately ignores the resource: non-admins
// are denied before the store is consulted, so only admins can learn whether
// an id exists through delete.
func CanDelete(actor domain.Actor) error {
	if actor.Role == domain.RoleAdmin {
		return nil
	}
	return e.Forbiddenf("only admins can delete violations")
}

// CheckUpdate gates a partial update: visibility first (same rule as get),
// then the field-level table. One disallowed key denies the whole patch;
// nothing is ever partially applied. A present status key is additionally
// gated by CheckStatusTarget.
func CheckUpdate(actor domain.Actor, v *domain.Violation, patch *domain.UpdateViolationRequest) error {
	if err := CanGet(actor, v); err != nil {
		return err
	}

	allowed := allowedFields[actor.Role]
	for _, f := range PatchFields(patch) {
		if _, ok := allowed[f]; !ok {
			return e.Forbiddenf("role %s may not change field %s", actor.Role, f)
		}
	}

	if patch.Status != nil {
		if err := CheckStatusTarget(actor.Role, *patch.Status); err != nil {
			return err
		}
	}
	return nil
}

// PatchFields lists the keys present in the patch, in declaration order.
func PatchFields(p *domain.UpdateViolationRequest) []Field {
	var fields []Field
	add := func(cond bool, f Field) {
		if cond {
			fields = append(fields, f)
		}
	}
	add(p.Type != nil, FieldType)
	add(p.Description != nil, FieldDescription)
	add(p.Location != nil, FieldLocation)
	add(p.VehiclePlate != nil, FieldVehiclePlate)
	add(p.VehicleModel != nil, FieldVehicleModel)
	add(p.VehicleColor != nil, FieldVehicleColor)
	add(p.DateTime != nil, FieldDateTime)
	add(p.ReporterName != nil, FieldReporterName)
	add(p.ReporterEmail != nil, FieldReporterEmail)
	add(p.ReporterPhone != nil, FieldReporterPhone)
	add(p.Status != nil, FieldStatus)
	add(p.EvidenceURLs != nil, FieldEvidenceURLs)
	add(p.AdminNotes != nil, FieldAdminNotes)
	return fields
}
