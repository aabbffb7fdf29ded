package email

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/smtp"
	"time"

	"fitlife/internal/logger"
	"fitlife/internal/metrics"

	"github.com/redis/go-redis/v9"
)

const (
	QueueKey  = "fitlife:emails"
	FailedKey = "fitlife:emails:failed"

	TypePaymentReminder = "payment_reminder"

	maxAttempts = 3
	popTimeout  = 2 * time.Second
)

type Job struct {
	Type    string    `json:"type"`
	To      string    `json:"to"`
	Name    string    `json:"name"`
	Subject string    `json:"subject"`
	Body    string    `json:"body"`
	Tries   int       `json:"tries"`
	Created time.Time `json:"created"`
}

type Config struct {
	From     string
	FromName string
	SMTPHost string
	SMTPPort string
	SMTPUser string
	SMTPPass string

	// RetryDelay is the pause before a failed job is queued again.
	RetryDelay time.Duration
}

// SendFunc has the shape of smtp.SendMail.
type SendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// Service queues e-mails in Redis and delivers them over SMTP from a
// single worker loop.
type Service struct {
	redis *redis.Client
	cfg   Config
	send  SendFunc
	now   func() time.Time
}

func New(client *redis.Client, cfg Config) *Service {
	if cfg.RetryDelay == 0 {
		cfg.RetryDelay = 5 * time.Second
	}
	return &Service{
		redis: client,
		cfg:   cfg,
		send:  smtp.SendMail,
		now:   time.Now,
	}
}

func (s *Service) Send(ctx context.Context, emailType, to, name, subject, body string) error {
	job := Job{
		Type:    emailType,
		To:      to,
		Name:    name,
		Subject: subject,
		Body:    body,
		Created: s.now(),
	}

	data, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("marshal email job: %w", err)
	}

	n, err := s.redis.LPush(ctx, QueueKey, string(data)).Result()
	if err != nil {
		metrics.RecordEmail(emailType, "queue_failed")
		return fmt.Errorf("queue email: %w", err)
	}

	metrics.RecordEmail(emailType, "queued")
	metrics.SetEmailQueueLength(n)
	logger.Info("email queued", "type", emailType, "to", to)
	return nil
}

// SendPaymentReminder queues the reminder text composed for the member.
func (s *Service) SendPaymentReminder(ctx context.Context, to, name, message string) error {
	body := fmt.Sprintf("%s\n\n- %s", message, s.cfg.FromName)
	return s.Send(ctx, TypePaymentReminder, to, name, "Payment Reminder", body)
}

// Start blocks until ctx is cancelled.
func (s *Service) Start(ctx context.Context) {
	logger.Info("email worker started")

	for {
		select {
		case <-ctx.Done():
			logger.Info("email worker stopped")
			return
		default:
			if err := s.processNext(ctx); err != nil && ctx.Err() == nil {
				logger.Warn("email queue unavailable", "error", err.Error())
				sleep(ctx, time.Second)
			}
		}
	}
}

func (s *Service) processNext(ctx context.Context) error {
	result, err := s.redis.BRPop(ctx, popTimeout, QueueKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil
		}
		return err
	}
	s.QueueLength(ctx)

	var job Job
	if err := json.Unmarshal([]byte(result[1]), &job); err != nil {
		logger.Error("dropping malformed email job", "error", err.Error())
		return nil
	}

	job.Tries++
	if err := s.deliver(job); err != nil {
		logger.Warn("email delivery failed", "to", job.To, "attempt", job.Tries, "error", err.Error())
		metrics.RecordEmail(job.Type, "failed")

		if job.Tries < maxAttempts {
			sleep(ctx, s.cfg.RetryDelay)
			s.requeue(job)
		} else {
			s.saveFailed(job, err)
		}
		return nil
	}

	metrics.RecordEmail(job.Type, "sent")
	logger.Info("email sent", "type", job.Type, "to", job.To)
	return nil
}

func (s *Service) deliver(job Job) error {
	var auth smtp.Auth
	if s.cfg.SMTPUser != "" && s.cfg.SMTPPass != "" {
		auth = smtp.PlainAuth("", s.cfg.SMTPUser, s.cfg.SMTPPass, s.cfg.SMTPHost)
	}

	addr := s.cfg.SMTPHost + ":" + s.cfg.SMTPPort
	return s.send(addr, auth, s.cfg.From, []string{job.To}, s.compose(job))
}

func (s *Service) compose(job Job) []byte {
	msg := fmt.Sprintf("From: %s <%s>\r\n", s.cfg.FromName, s.cfg.From)
	msg += fmt.Sprintf("To: %s\r\n", job.To)
	msg += fmt.Sprintf("Subject: %s\r\n", job.Subject)
	msg += "Content-Type: text/plain; charset=UTF-8\r\n"
	msg += "\r\n" + job.Body
	return []byte(msg)
}

// requeue uses a fresh context so a job popped during shutdown is not lost.
func (s *Service) requeue(job Job) {
	data, err := json.Marshal(job)
	if err != nil {
		return
	}
	if err := s.redis.LPush(context.Background(), QueueKey, string(data)).Err(); err != nil {
		logger.Error("email requeue failed", "to", job.To, "error", err.Error())
	}
}

func (s *Service) saveFailed(job Job, cause error) {
	failed := map[string]interface{}{
		"job":   job,
		"error": cause.Error(),
		"time":  s.now(),
	}
	data, _ := json.Marshal(failed)
	if err := s.redis.LPush(context.Background(), FailedKey, string(data)).Err(); err != nil {
		logger.Error("saving failed email", "to", job.To, "error", err.Error())
		return
	}
	logger.Error("email moved to failed queue", "to", job.To, "attempts", job.Tries)
}

func (s *Service) QueueLength(ctx context.Context) int64 {
	length, err := s.redis.LLen(ctx, QueueKey).Result()
	if err != nil {
		return 0
	}
	metrics.SetEmailQueueLength(length)
	return length
}

func sleep(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}
