// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package constants provides centralized, immutable values for the entire data layer.

Categories:

  - Metadata: application name and the schema version checked at startup.
  - Storage Keys: one named entry per persisted collection.
  - Lifetimes: session and password-reset validity windows.

Using this package ensures Magic Strings and Magic Numbers are eliminated
from the business logic.
*/
package constants

import "time"

// # Metadata

const (
	AppName = "lookeasy"

	// DBVersion is compared against settings.sistema.versao at startup.
	// Bump it to force the catalog and settings to be reseeded.
	DBVersion = "1.0.1"

	// LegacyDBVersion is assumed when no settings entry exists yet.
	LegacyDBVersion = "1.0.0"
)

// # Storage Keys

const (
	KeyUsers         = "lookEasyUsers"
	KeyProducts      = "lookEasyProducts"
	KeyCart          = "lookEasyCart"
	KeyOrders        = "lookEasyOrders"
	KeySession       = "lookEasySession"
	KeySettings      = "lookEasySettings"
	KeyPasswordReset = "lookEasyPasswordReset"
	KeyLoginThrottle = "lookEasyLoginThrottle"
)

// # Lifetimes

const (
	// SessionTTL is how long a login stays valid. Fixed, "remember me" does not extend it.
	SessionTTL = 24 * time.Hour

	// ResetTokenTTL is the validity window of a password reset token.
	ResetTokenTTL = 1 * time.Hour

	// ResetTokenLength is the byte length of the random password reset token.
	ResetTokenLength = 32
)

// # Redirect Targets

const (
	RedirectStore = "index.html"
	RedirectAdmin = "admin/dashboard.html"
)
