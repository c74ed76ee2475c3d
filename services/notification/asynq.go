package notification

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/adeeb-debug/baitussalambookingapp/config"

	"github.com/hibiken/asynq"
)

// TypeEmailSend is the asynq task type for outbound mail.
const TypeEmailSend = "email:send"

// AsynqNotifier implements NotificationService on top of a redis-backed
// asynq queue.
type AsynqNotifier struct {
	client *asynq.Client
}

// QueueRedisOpt returns the redis connection options for the mail queue.
func QueueRedisOpt() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}
}

// NewAsynqNotifier creates a NotificationService backed by asynq.
func NewAsynqNotifier() *AsynqNotifier {
	return &AsynqNotifier{client: asynq.NewClient(QueueRedisOpt())}
}

// EnqueueEmail queues one message for asynchronous delivery.
func (n *AsynqNotifier) EnqueueEmail(ctx context.Context, msg EmailMessage) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal email payload: %w", err)
	}
	task := asynq.NewTask(TypeEmailSend, payload)
	if _, err := n.client.EnqueueContext(ctx, task, asynq.MaxRetry(5)); err != nil {
		return fmt.Errorf("failed to enqueue email: %w", err)
	}
	return nil
}

// Close releases the underlying queue connection.
func (n *AsynqNotifier) Close() error {
	return n.client.Close()
}
