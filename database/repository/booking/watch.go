package bookingRepo

import (
	"context"
	"fmt"

	"github.com/adeeb-debug/baitussalambookingapp/models"
	"github.com/adeeb-debug/baitussalambookingapp/utils"

	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// Watch subscribes to the bookings collection via a change stream and
// emits the full re-queried record set after every change. Consumers
// always receive complete replacement snapshots, never incremental
// diffs, so derived views can be recomputed statelessly. One snapshot is
// emitted immediately on subscription.
func (r *MongoBookingRepo) Watch(ctx context.Context) (<-chan []models.BookingRecord, error) {
	stream, err := r.coll.Watch(ctx, []interface{}{}, options.ChangeStream())
	if err != nil {
		return nil, fmt.Errorf("failed to open change stream: %w", err)
	}

	out := make(chan []models.BookingRecord, 1)
	logger := utils.GetLogger()

	if snapshot, err := r.GetAll(ctx); err == nil {
		out <- snapshot
	} else {
		logger.Error("watch: initial snapshot failed", zap.Error(err))
	}

	go func() {
		defer close(out)
		defer stream.Close(ctx)

		for stream.Next(ctx) {
			snapshot, err := r.GetAll(ctx)
			if err != nil {
				logger.Error("watch: snapshot refresh failed", zap.Error(err))
				continue
			}
			select {
			case out <- snapshot:
			case <-ctx.Done():
				return
			}
		}
		if err := stream.Err(); err != nil && ctx.Err() == nil {
			logger.Error("watch: change stream closed", zap.Error(err))
		}
	}()

	return out, nil
}
