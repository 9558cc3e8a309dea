// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	campaignstore "github.com/dalemusser/fundhub/internal/app/store/campaigns"
	donationstore "github.com/dalemusser/fundhub/internal/app/store/donations"
	"github.com/dalemusser/fundhub/internal/app/system/timeouts"
	"github.com/dalemusser/fundhub/internal/app/system/workers"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// reconcileWorker is started here and stopped in Shutdown.
var reconcileWorker *workers.Reconcile

// Startup runs one-time application initialization after DB connections and
// schema setup are complete, but before the HTTP handler is built. FundHub
// uses it to apply timeout overrides and start the campaign-total reconcile
// worker.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	timeouts.Configure(timeouts.Config{
		Ping:   appCfg.DBTimeoutPing,
		Short:  appCfg.DBTimeoutShort,
		Medium: appCfg.DBTimeoutMedium,
		Long:   appCfg.DBTimeoutLong,
	})

	if !appCfg.ReconcileEnabled {
		logger.Info("reconcile worker disabled by config")
		return nil
	}

	reconcileWorker = workers.NewReconcile(
		donationstore.New(deps.MongoDatabase),
		campaignstore.New(deps.MongoDatabase),
		logger,
		appCfg.ReconcileSchedule,
	)
	return reconcileWorker.Start()
}
