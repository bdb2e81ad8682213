package record

import (
	"context"

	"github.com/mduval/wedding-rsvp/model"
)

// Repository persists RSVP records. FindMatch takes already-normalized
// identity keys and returns (nil, nil) when no record matches, mirroring
// how the SQL layer reports no rows. Upsert replaces the record with the
// same ID in place, or inserts it when unseen; there is no delete.
type Repository interface {
	ReadAll(ctx context.Context) ([]model.Record, error)
	FindMatch(ctx context.Context, email, phone string) (*model.Record, error)
	Upsert(ctx context.Context, rec model.Record) error
}
