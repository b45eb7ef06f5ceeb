// Copyright 2026 NeetStand Ltd.
// SPDX-License-Identifier: AGPL-3.0

package mail

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/neetstand/admin-service/internal/logging"
	"github.com/neetstand/admin-service/internal/monitoring"
	"github.com/neetstand/admin-service/internal/storage"
	"github.com/neetstand/admin-service/internal/tracing"
	"github.com/neetstand/admin-service/internal/types"
)

const (
	defaultProviderURL = "https://api.brevo.com/v3/smtp/email"
	defaultSender      = "no-reply@neetstand.com"
	senderName         = "NEET Stand"

	// Settings keys for the email provider configuration.
	SettingAPIKey      = "email_api_key"
	SettingProviderURL = "email_provider_url"
	SettingSiteURL     = "email_site_url"
	SettingSender      = "email_sender"
	SettingVerified    = "email_verified"
)

var _ MailerInterface = (*Client)(nil)

// Client sends transactional mail through the provider configured in the
// settings store. Settings are read fresh on every send so a reconfiguration
// takes effect immediately.
type Client struct {
	storage storage.StorageInterface
	http    *http.Client

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewClient(s storage.StorageInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Client {
	return &Client{
		storage: s,
		http:    &http.Client{Timeout: 30 * time.Second},
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

type providerRequest struct {
	Sender      providerAddress   `json:"sender"`
	To          []providerAddress `json:"to"`
	Subject     string            `json:"subject"`
	HTMLContent string            `json:"htmlContent"`
}

type providerAddress struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email"`
}

func (c *Client) settingOrDefault(ctx context.Context, variable, fallback string) (string, error) {
	setting, err := c.storage.GetSetting(ctx, variable)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fallback, nil
		}
		return "", err
	}
	if setting.Value == "" {
		return fallback, nil
	}
	return setting.Value, nil
}

func (c *Client) Send(ctx context.Context, to, subject, html string) error {
	ctx, span := c.tracer.Start(ctx, "mail.Client.Send")
	defer span.End()

	apiKey, err := c.settingOrDefault(ctx, SettingAPIKey, "")
	if err != nil {
		return fmt.Errorf("failed to load email settings: %w", err)
	}
	if apiKey == "" {
		return fmt.Errorf("%w: %s", types.ErrConfigurationMissing, SettingAPIKey)
	}

	providerURL, err := c.settingOrDefault(ctx, SettingProviderURL, defaultProviderURL)
	if err != nil {
		return fmt.Errorf("failed to load email settings: %w", err)
	}
	sender, err := c.settingOrDefault(ctx, SettingSender, defaultSender)
	if err != nil {
		return fmt.Errorf("failed to load email settings: %w", err)
	}

	payload, err := json.Marshal(providerRequest{
		Sender:      providerAddress{Name: senderName, Email: sender},
		To:          []providerAddress{{Email: to}},
		Subject:     subject,
		HTMLContent: html,
	})
	if err != nil {
		return fmt.Errorf("failed to encode email payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, providerURL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build provider request: %w", err)
	}
	req.Header.Set("accept", "application/json")
	req.Header.Set("content-type", "application/json")
	req.Header.Set("api-key", apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		c.reportAvailability(0)
		return fmt.Errorf("%w: %v", types.ErrEmailDispatchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		c.reportAvailability(0)
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("%w: provider returned %d: %s", types.ErrEmailDispatchFailed, resp.StatusCode, string(body))
	}

	c.reportAvailability(1)
	return nil
}

// Enqueue persists the email for the queue worker instead of sending inline.
func (c *Client) Enqueue(ctx context.Context, to, subject, html string) error {
	ctx, span := c.tracer.Start(ctx, "mail.Client.Enqueue")
	defer span.End()

	sender, err := c.settingOrDefault(ctx, SettingSender, defaultSender)
	if err != nil {
		return fmt.Errorf("failed to load email settings: %w", err)
	}

	_, err = c.storage.EnqueueEmail(ctx, &types.QueuedEmail{
		ToEmail:   to,
		FromEmail: sender,
		Subject:   subject,
		HTMLBody:  html,
	})
	return err
}

func (c *Client) reportAvailability(up float64) {
	if err := c.monitor.SetDependencyAvailability(map[string]string{"component": "email_provider"}, up); err != nil {
		c.logger.Errorf("failed to record email provider availability: %v", err)
	}
}
