package blob

import (
	"context"

	"github.com/google/uuid"
)

// EvidenceStore persists uploaded evidence files. Keys are
// (owner, violation, sequence); the returned string is a public URL the
// service stores on the violation record.
type EvidenceStore interface {
	Store(ctx context.Context, ownerID, violationID uuid.UUID, seq int, filename string, data []byte) (string, error)
	Delete(ctx context.Context, ownerID, violationID uuid.UUID) error
}
