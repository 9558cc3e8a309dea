// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// WAFFLE's CoreConfig handles framework-level settings (HTTP ports, TLS,
// logging level, CORS, body limits); AppConfig is everything specific to
// FundHub itself. Add fields here as the service grows — the struct is
// passed to every lifecycle hook.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64 // Max connection pool size
	MongoMinPoolSize uint64 // Min connection pool size

	// Bearer-token verification. The auth service signs tokens with this
	// shared HS256 key; FundHub only verifies.
	AuthTokenKey    string // Shared signing key (must be strong in production)
	AuthTokenIssuer string // Expected iss claim (blank disables the check)

	// Reconciliation worker for campaign collected_amount drift.
	ReconcileEnabled  bool   // Run the periodic ledger reconciliation
	ReconcileSchedule string // Cron expression, standard 5-field format

	// Database operation timeouts. Zero values keep the package defaults.
	DBTimeoutPing   time.Duration
	DBTimeoutShort  time.Duration
	DBTimeoutMedium time.Duration
	DBTimeoutLong   time.Duration

	// Base URL this deployment is reachable at, for logs and tooling.
	BaseURL string
}
