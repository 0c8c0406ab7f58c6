// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"log/slog"
	"time"

	"github.com/taibuivan/lookeasy/internal/users/account"
)

// ResetNotifier delivers a password reset token to its owner.
type ResetNotifier interface {
	NotifyPasswordReset(ctx context.Context, user *account.User, token string, expiresAt time.Time) error
}

// LogNotifier records that a reset token was issued, without the token itself.
// On a local install the token reaches the caller only through
// [ResetRequestResult] when token exposure is enabled.
type LogNotifier struct {
	logger *slog.Logger
}

// NewLogNotifier constructs a [LogNotifier].
func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

// NotifyPasswordReset implements [ResetNotifier].
func (n *LogNotifier) NotifyPasswordReset(ctx context.Context, user *account.User, _ string, expiresAt time.Time) error {
	n.logger.InfoContext(ctx, "password_reset_token_issued",
		slog.Int("user_id", user.ID),
		slog.Time("expires_at", expiresAt),
	)
	return nil
}
