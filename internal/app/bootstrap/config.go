// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"

	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for FundHub. They are
// loaded via WAFFLE's config system from config files, environment
// variables (FUNDHUB_MONGO_URI, ...), and command-line flags.
var appConfigKeys = []config.AppKey{
	{Name: "mongo_uri", Default: "mongodb://localhost:27017", Desc: "MongoDB connection URI"},
	{Name: "mongo_database", Default: "fundhub", Desc: "MongoDB database name"},
	{Name: "mongo_max_pool_size", Default: 100, Desc: "MongoDB max connection pool size"},
	{Name: "mongo_min_pool_size", Default: 10, Desc: "MongoDB min connection pool size"},

	{Name: "auth_token_key", Default: "dev-only-change-me-please-0123456789ABCDEF", Desc: "Shared HS256 key for verifying bearer tokens (must be strong in production)"},
	{Name: "auth_token_issuer", Default: "", Desc: "Expected token issuer (blank disables the check)"},

	{Name: "reconcile_enabled", Default: true, Desc: "Run the periodic campaign-total reconciliation worker"},
	{Name: "reconcile_schedule", Default: "@hourly", Desc: "Cron schedule for the reconciliation worker"},

	{Name: "db_timeout_ping", Default: "", Desc: "Health-check ping timeout (e.g. 2s; blank keeps the default)"},
	{Name: "db_timeout_short", Default: "", Desc: "Single-document operation timeout (blank keeps the default)"},
	{Name: "db_timeout_medium", Default: "", Desc: "List query and write-pair timeout (blank keeps the default)"},
	{Name: "db_timeout_long", Default: "", Desc: "Full-ledger aggregation timeout (blank keeps the default)"},

	{Name: "base_url", Default: "http://localhost:3000", Desc: "Base URL this deployment is reachable at"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// It is called early in startup so that both WAFFLE and the app have
// access to configuration before any backends or handlers are built.
// config.LoadWithAppConfig merges .env files, config files, FUNDHUB_*
// environment variables, and flags, with flags > env > files > defaults.
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "FUNDHUB", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		MongoURI:         appValues.String("mongo_uri"),
		MongoDatabase:    appValues.String("mongo_database"),
		MongoMaxPoolSize: uint64(appValues.Int("mongo_max_pool_size")),
		MongoMinPoolSize: uint64(appValues.Int("mongo_min_pool_size")),

		AuthTokenKey:    appValues.String("auth_token_key"),
		AuthTokenIssuer: appValues.String("auth_token_issuer"),

		ReconcileEnabled:  appValues.Bool("reconcile_enabled"),
		ReconcileSchedule: appValues.String("reconcile_schedule"),

		DBTimeoutPing:   appValues.Duration("db_timeout_ping", 0),
		DBTimeoutShort:  appValues.Duration("db_timeout_short", 0),
		DBTimeoutMedium: appValues.Duration("db_timeout_medium", 0),
		DBTimeoutLong:   appValues.Duration("db_timeout_long", 0),

		BaseURL: appValues.String("base_url"),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation. Returning an
// error aborts startup, which is where we want bad URIs and bad cron
// expressions to surface.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
		logger.Error("invalid MongoDB URI", zap.Error(err))
		return fmt.Errorf("invalid MongoDB URI: %w", err)
	}

	if appCfg.ReconcileEnabled {
		if _, err := cron.ParseStandard(appCfg.ReconcileSchedule); err != nil {
			return fmt.Errorf("invalid reconcile_schedule %q: %w", appCfg.ReconcileSchedule, err)
		}
	}

	if coreCfg.Env == "prod" && appCfg.AuthTokenKey == "dev-only-change-me-please-0123456789ABCDEF" {
		return fmt.Errorf("auth_token_key must be set in production")
	}

	return nil
}
