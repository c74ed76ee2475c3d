package notification

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/adeeb-debug/baitussalambookingapp/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// InitEmailWorker runs the async mail delivery worker in background.
// Failed sends are retried by asynq; a permanently failing message is
// logged and dropped without affecting any recorded booking decision.
func InitEmailWorker(mailer Mailer) {
	srv := asynq.NewServer(
		QueueRedisOpt(),
		asynq.Config{
			Concurrency: 5,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeEmailSend, handleEmailTask(mailer))

	go func() {
		logger := utils.GetLogger()
		logger.Info("email worker starting")
		if err := srv.Run(mux); err != nil {
			logger.Error("email worker stopped", zap.Error(err))
		}
	}()
}

func handleEmailTask(mailer Mailer) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		var msg EmailMessage
		if err := json.Unmarshal(t.Payload(), &msg); err != nil {
			return fmt.Errorf("failed to unmarshal email payload: %w", err)
		}
		if err := mailer.Send(msg.To, msg.Subject, msg.HTML); err != nil {
			utils.GetLogger().Warn("email delivery failed, will retry",
				zap.String("to", msg.To), zap.Error(err))
			return err
		}
		utils.GetLogger().Info("email delivered",
			zap.String("to", msg.To), zap.String("subject", msg.Subject))
		return nil
	}
}
