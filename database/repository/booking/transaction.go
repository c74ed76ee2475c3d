package bookingRepo

import (
	"context"
	"fmt"

	"github.com/adeeb-debug/baitussalambookingapp/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// withTransaction runs fn inside a mongo session transaction, aborting
// on any error so no reader ever observes a partially applied batch.
func (r *MongoBookingRepo) withTransaction(ctx context.Context, fn func(sc mongo.SessionContext) error) error {
	client := r.coll.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	if err := mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := fn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	}); err != nil {
		return fmt.Errorf("booking batch transaction failed: %w", err)
	}
	return nil
}

// UpsertMany writes all records in one transaction. Each record replaces
// any existing document with the same deterministic id, so resubmitting
// an identical (date, event, location) combination overwrites rather
// than duplicates.
func (r *MongoBookingRepo) UpsertMany(ctx context.Context, records []models.BookingRecord) error {
	if len(records) == 0 {
		return nil
	}
	return r.withTransaction(ctx, func(sc mongo.SessionContext) error {
		opts := options.Replace().SetUpsert(true)
		for _, rec := range records {
			if _, err := r.coll.ReplaceOne(sc, bson.M{"id": rec.ID}, rec, opts); err != nil {
				return fmt.Errorf("upsert booking %s failed: %w", rec.ID, err)
			}
		}
		return nil
	})
}

// ApplyBatch applies every field update in one transaction, all or none.
func (r *MongoBookingRepo) ApplyBatch(ctx context.Context, updates []FieldUpdate) error {
	if len(updates) == 0 {
		return nil
	}
	return r.withTransaction(ctx, func(sc mongo.SessionContext) error {
		for _, u := range updates {
			res, err := r.coll.UpdateOne(sc, bson.M{"id": u.ID}, bson.M{"$set": u.Fields})
			if err != nil {
				return fmt.Errorf("update booking %s failed: %w", u.ID, err)
			}
			if res.MatchedCount == 0 {
				return fmt.Errorf("booking %s not found", u.ID)
			}
		}
		return nil
	})
}

// DeleteGroup removes all listed records in one transaction.
func (r *MongoBookingRepo) DeleteGroup(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	return r.withTransaction(ctx, func(sc mongo.SessionContext) error {
		res, err := r.coll.DeleteMany(sc, bson.M{"id": bson.M{"$in": ids}})
		if err != nil {
			return fmt.Errorf("delete group failed: %w", err)
		}
		if res.DeletedCount != int64(len(ids)) {
			return fmt.Errorf("delete group removed %d of %d records", res.DeletedCount, len(ids))
		}
		return nil
	})
}
