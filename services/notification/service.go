package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"net/smtp"

	"quicklegal/config"
	"quicklegal/models"
	"quicklegal/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// RealtimeChannelPrefix prefixes the per-user Redis pub/sub channels the
// socket gateway subscribes to.
const RealtimeChannelPrefix = "realtime:user:"

// DefaultNotificationService sends email over SMTP and publishes realtime
// messages to per-user Redis channels consumed by the socket gateway.
// When SMTP is not configured, email sends are logged and reported as
// success so development environments work without a mail server.
type DefaultNotificationService struct {
	Redis *redis.Client
}

// NewDefaultNotificationService constructs the production implementation.
func NewDefaultNotificationService(redisClient *redis.Client) (*DefaultNotificationService, error) {
	if redisClient == nil {
		return nil, fmt.Errorf("notification service initialization error: redis client is nil")
	}
	return &DefaultNotificationService{Redis: redisClient}, nil
}

func (s *DefaultNotificationService) SendEmail(ctx context.Context, to, subject, body string) error {
	if to == "" {
		return fmt.Errorf("SendEmail: missing recipient")
	}

	cfg := config.AppConfig
	if cfg.SMTPHost == "" {
		utils.GetLogger().Info("SendEmail: SMTP not configured, skipping delivery",
			zap.String("to", to), zap.String("subject", subject))
		return nil
	}

	msg := []byte(fmt.Sprintf("To: %s\r\nFrom: %s\r\nSubject: %s\r\n\r\n%s\r\n",
		to, cfg.SMTPSender, subject, body))
	addr := fmt.Sprintf("%s:%d", cfg.SMTPHost, cfg.SMTPPort)

	var auth smtp.Auth
	if cfg.SMTPUser != "" {
		auth = smtp.PlainAuth("", cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPHost)
	}
	if err := smtp.SendMail(addr, auth, cfg.SMTPSender, []string{to}, msg); err != nil {
		return fmt.Errorf("SendEmail: failed to send to %s: %w", to, err)
	}

	utils.GetLogger().Info("Email sent", zap.String("to", to), zap.String("subject", subject))
	return nil
}

func (s *DefaultNotificationService) SendRealtimeToUser(ctx context.Context, userID string, payload models.RealtimeMessage) error {
	if userID == "" {
		return fmt.Errorf("SendRealtimeToUser: missing user id")
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("SendRealtimeToUser: marshal payload: %w", err)
	}
	if err := s.Redis.Publish(ctx, RealtimeChannelPrefix+userID, data).Err(); err != nil {
		return fmt.Errorf("SendRealtimeToUser: publish to user %s: %w", userID, err)
	}
	return nil
}
