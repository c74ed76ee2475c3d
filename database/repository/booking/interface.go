package bookingRepo

import (
	"context"

	"github.com/adeeb-debug/baitussalambookingapp/models"

	"go.mongodb.org/mongo-driver/bson"
)

// FieldUpdate is one element of an atomic batch: the record to touch and
// the fields to set on it.
type FieldUpdate struct {
	ID     string
	Fields bson.M
}

// BookingRepository defines data access for booking records. Multi-record
// writes are all-or-nothing: no reader may observe a partially applied
// batch.
type BookingRepository interface {
	// GetAll retrieves every booking record, ordered by date descending
	// then fromTime descending.
	GetAll(ctx context.Context) ([]models.BookingRecord, error)
	// GetByID retrieves a single record by its deterministic id.
	GetByID(ctx context.Context, id string) (*models.BookingRecord, error)
	// GetByGroup retrieves every record sharing a groupId.
	GetByGroup(ctx context.Context, groupID string) ([]models.BookingRecord, error)
	// GetByRequester retrieves every record submitted by the given email.
	GetByRequester(ctx context.Context, email string) ([]models.BookingRecord, error)
	// UpsertMany writes all records in one transaction, replacing any
	// record that already exists under the same id.
	UpsertMany(ctx context.Context, records []models.BookingRecord) error
	// ApplyBatch applies every field update in one transaction.
	ApplyBatch(ctx context.Context, updates []FieldUpdate) error
	// DeleteGroup removes all listed records in one transaction.
	DeleteGroup(ctx context.Context, ids []string) error
	// Delete removes a single record.
	Delete(ctx context.Context, id string) error
	// Watch emits the full current record set whenever the collection
	// changes, starting with one immediate snapshot. The channel closes
	// when ctx is done.
	Watch(ctx context.Context) (<-chan []models.BookingRecord, error)
}
