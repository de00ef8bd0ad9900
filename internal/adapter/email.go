// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/user-management/internal/config"
	"github.com/MKhiriev/user-management/internal/logger"
	"github.com/MKhiriev/user-management/models"
)

const defaultMailTimeout = 10 * time.Second

// emailRequest is the JSON body POSTed to the mail API.
type emailRequest struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	Text    string `json:"text"`
}

type httpEmailSender struct {
	client *resty.Client
	from   string
	logger *logger.Logger
}

// NewHTTPEmailSender returns an [EmailSender] posting messages to
// cfg.APIURL. When cfg.APIURL is empty delivery is disabled and a sender that
// only logs is returned.
func NewHTTPEmailSender(cfg config.Mail, log *logger.Logger) EmailSender {
	if cfg.APIURL == "" {
		log.Info().Msg("mail api url is not set, e-mail delivery disabled")
		return &nopEmailSender{logger: log}
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultMailTimeout
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.APIURL, "/")).
		SetTimeout(cfg.Timeout).
		SetHeader("Content-Type", "application/json")
	if cfg.APIKey != "" {
		cli.SetAuthToken(cfg.APIKey)
	}

	return &httpEmailSender{client: cli, from: cfg.From, logger: log}
}

func (h *httpEmailSender) SendEmail(ctx context.Context, email models.Email) error {
	if strings.TrimSpace(email.To) == "" {
		return ErrEmptyRecipient
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(emailRequest{
			From:    h.from,
			To:      email.To,
			Subject: email.Subject,
			Text:    email.Body,
		}).
		Post("")
	if err != nil {
		return fmt.Errorf("send email request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	logger.FromContext(ctx).Debug().Str("to", email.To).Msg("email sent")
	return nil
}

type nopEmailSender struct {
	logger *logger.Logger
}

func (n *nopEmailSender) SendEmail(_ context.Context, email models.Email) error {
	n.logger.Debug().Str("to", email.To).Str("subject", email.Subject).Msg("email delivery disabled, message dropped")
	return nil
}
