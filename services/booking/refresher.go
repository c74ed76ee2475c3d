package booking

import (
	"context"
	"encoding/json"

	"github.com/adeeb-debug/baitussalambookingapp/utils"

	"go.uber.org/zap"
)

// StartSnapshotRefresher subscribes to the repository's change feed and
// re-primes the cached snapshot on every emission, so availability reads
// stay warm between mutations. It returns once the subscription is
// established; the refresh loop runs until ctx is done.
func (s *DefaultBookingService) StartSnapshotRefresher(ctx context.Context) error {
	if s.Cache == nil {
		return nil
	}
	ch, err := s.Repo.Watch(ctx)
	if err != nil {
		return err
	}

	logger := utils.GetLogger().Named("snapshot-refresher")
	go func() {
		for records := range ch {
			data, err := json.Marshal(records)
			if err != nil {
				logger.Warn("snapshot marshal failed", zap.Error(err))
				continue
			}
			if err := s.Cache.Set(ctx, utils.SnapshotCacheKey, data, utils.SnapshotCacheTTL).Err(); err != nil {
				logger.Debug("snapshot cache write failed", zap.Error(err))
			}
		}
		logger.Info("snapshot refresher stopped")
	}()
	return nil
}
