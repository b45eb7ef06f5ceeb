// Copyright 2026 NeetStand Ltd.
// SPDX-License-Identifier: AGPL-3.0

package mail

import (
	"context"
)

type MailerInterface interface {
	Send(ctx context.Context, to, subject, html string) error
	Enqueue(ctx context.Context, to, subject, html string) error
}
