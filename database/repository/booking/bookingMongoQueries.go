package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/adeeb-debug/baitussalambookingapp/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// snapshotSort orders snapshots newest-first, matching what the views
// expect from the source: date descending, then fromTime descending.
var snapshotSort = bson.D{{Key: "date", Value: -1}, {Key: "fromTime", Value: -1}}

// GetAll retrieves every booking record, newest date first.
func (r *MongoBookingRepo) GetAll(ctx context.Context) ([]models.BookingRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(snapshotSort)
	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookings: %w", err)
	}
	defer cur.Close(ctx)

	var records []models.BookingRecord
	if err := cur.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}
	return records, nil
}

// GetByID retrieves a record by its deterministic id.
func (r *MongoBookingRepo) GetByID(ctx context.Context, id string) (*models.BookingRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var rec models.BookingRecord
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&rec); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch booking %s: %w", id, err)
	}
	return &rec, nil
}

// GetByGroup retrieves every record sharing a groupId.
func (r *MongoBookingRepo) GetByGroup(ctx context.Context, groupID string) ([]models.BookingRecord, error) {
	return r.find(ctx, bson.M{"groupId": groupID})
}

// GetByRequester retrieves every record submitted by the given email.
func (r *MongoBookingRepo) GetByRequester(ctx context.Context, email string) ([]models.BookingRecord, error) {
	return r.find(ctx, bson.M{"requestedBy": email})
}

func (r *MongoBookingRepo) find(ctx context.Context, filter bson.M) ([]models.BookingRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(snapshotSort)
	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookings: %w", err)
	}
	defer cur.Close(ctx)

	var records []models.BookingRecord
	if err := cur.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}
	return records, nil
}
