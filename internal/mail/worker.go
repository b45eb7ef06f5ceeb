// Copyright 2026 NeetStand Ltd.
// SPDX-License-Identifier: AGPL-3.0

package mail

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"

	"github.com/neetstand/admin-service/internal/logging"
	"github.com/neetstand/admin-service/internal/storage"
	"github.com/neetstand/admin-service/internal/tracing"
)

const drainBatchSize = 5

// Worker drains the email_queue table on a cron schedule. A send failure
// marks the row failed and moves on; the queue is best-effort.
type Worker struct {
	storage storage.StorageInterface
	mailer  MailerInterface
	cron    *cron.Cron

	tracer tracing.TracingInterface
	logger logging.LoggerInterface
}

func NewWorker(s storage.StorageInterface, mailer MailerInterface, tracer tracing.TracingInterface, logger logging.LoggerInterface) *Worker {
	return &Worker{
		storage: s,
		mailer:  mailer,
		cron:    cron.New(),
		tracer:  tracer,
		logger:  logger,
	}
}

func (w *Worker) Start(schedule string) error {
	_, err := w.cron.AddFunc(schedule, func() {
		if err := w.Drain(context.Background()); err != nil {
			w.logger.Errorf("email queue drain failed: %v", err)
		}
	})
	if err != nil {
		return fmt.Errorf("invalid mail queue schedule %q: %w", schedule, err)
	}

	w.cron.Start()
	return nil
}

func (w *Worker) Stop() {
	<-w.cron.Stop().Done()
}

func (w *Worker) Drain(ctx context.Context) error {
	ctx, span := w.tracer.Start(ctx, "mail.Worker.Drain")
	defer span.End()

	pending, err := w.storage.ListPendingEmails(ctx, drainBatchSize)
	if err != nil {
		return fmt.Errorf("failed to list pending emails: %w", err)
	}

	for _, e := range pending {
		status, sendErr := "sent", ""
		if err := w.mailer.Send(ctx, e.ToEmail, e.Subject, e.HTMLBody); err != nil {
			status, sendErr = "failed", err.Error()
			w.logger.Warnf("failed to send queued email %s: %v", e.ID, err)
		}

		if err := w.storage.MarkEmailProcessed(ctx, e.ID, status, sendErr); err != nil {
			return fmt.Errorf("failed to mark email %s: %w", e.ID, err)
		}
	}

	return nil
}
