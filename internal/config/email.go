package config

import (
	"context"
	"fmt"
	"os"

	"github.com/resend/resend-go/v2"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type ResendConfig struct {
	APIKey string
	From   string
}

// NewResendConfig reads the Resend credentials. Both values missing means the
// deployment runs without email; only one missing is a misconfiguration.
func NewResendConfig(log *zap.Logger) *ResendConfig {
	apiKey := os.Getenv("RESEND_API_KEY")
	fromEmail := os.Getenv("FROM_EMAIL")
	if apiKey == "" && fromEmail == "" {
		log.Warn("Resend not configured, email notifications disabled")
		return &ResendConfig{}
	}
	if apiKey == "" || fromEmail == "" {
		log.Fatal("Missing RESEND_API_KEY or FROM_EMAIL")
	}
	return &ResendConfig{APIKey: apiKey, From: fromEmail}
}

type EmailService struct {
	config *ResendConfig
	client *resend.Client
	log    *zap.Logger
}

func NewEmailService(lc fx.Lifecycle, config *ResendConfig, log *zap.Logger) *EmailService {
	service := &EmailService{config: config, log: log}
	if config.APIKey != "" {
		service.client = resend.NewClient(config.APIKey)
	}
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if service.client == nil {
				log.Info("Email service disabled")
			} else {
				log.Info("Email service initialized")
			}
			return nil
		},
	})
	return service
}

func (e *EmailService) SendEmail(to, subject, body string) error {
	if e.client == nil {
		return nil
	}

	params := &resend.SendEmailRequest{
		From:    e.config.From,
		To:      []string{to},
		Subject: subject,
		Html:    body,
	}

	sent, err := e.client.Emails.Send(params)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	e.log.Info("Email sent successfully", zap.String("to", to), zap.String("id", sent.Id))
	return nil
}
