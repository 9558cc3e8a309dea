// internal/app/system/workers/reconcile.go
package workers

import (
	"context"
	"math"

	campaignstore "github.com/dalemusser/fundhub/internal/app/store/campaigns"
	donationstore "github.com/dalemusser/fundhub/internal/app/store/donations"
	"github.com/dalemusser/fundhub/internal/app/system/timeouts"
	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// The donation insert and the campaign total update are two writes. When
// the deployment cannot run them in one transaction, a crash between them
// leaves collected_amount out of sync with the ledger, with no user-visible
// symptom. Reconcile periodically recomputes the true sums and repairs any
// campaign that drifted.

// amountEpsilon absorbs float accumulation noise between $inc updates and
// a fresh $sum over the ledger.
const amountEpsilon = 1e-9

// Reconcile is a background worker that repairs campaign totals on a cron
// schedule.
type Reconcile struct {
	donations *donationstore.Store
	campaigns *campaignstore.Store
	log       *zap.Logger
	schedule  string
	cron      *cron.Cron
}

// NewReconcile creates the worker. Schedule is a standard 5-field cron
// expression (e.g. "17 * * * *" for hourly).
func NewReconcile(donations *donationstore.Store, campaigns *campaignstore.Store, logger *zap.Logger, schedule string) *Reconcile {
	return &Reconcile{
		donations: donations,
		campaigns: campaigns,
		log:       logger,
		schedule:  schedule,
	}
}

// Start registers the cron entry and begins the schedule.
func (w *Reconcile) Start() error {
	w.cron = cron.New()
	if _, err := w.cron.AddFunc(w.schedule, w.runScheduled); err != nil {
		return err
	}
	w.cron.Start()
	w.log.Info("campaign total reconcile worker started", zap.String("schedule", w.schedule))
	return nil
}

// Stop halts the schedule and waits for a running pass to finish.
func (w *Reconcile) Stop() {
	if w.cron == nil {
		return
	}
	<-w.cron.Stop().Done()
	w.log.Info("campaign total reconcile worker stopped")
}

func (w *Reconcile) runScheduled() {
	ctx, cancel := context.WithTimeout(context.Background(), timeouts.Long())
	defer cancel()

	if _, _, err := w.RunOnce(ctx); err != nil {
		w.log.Error("reconcile pass failed", zap.Error(err))
	}
}

// RunOnce performs one reconciliation pass and returns how many campaigns
// were checked and how many were repaired. Exported so tests and operators
// can trigger a pass directly.
func (w *Reconcile) RunOnce(ctx context.Context) (checked, repaired int, err error) {
	runID := uuid.NewString()

	truth, err := w.donations.CompletedSumsByCampaign(ctx)
	if err != nil {
		return 0, 0, err
	}
	stored, err := w.campaigns.CollectedTotals(ctx)
	if err != nil {
		return 0, 0, err
	}

	for id, have := range stored {
		checked++
		want := truth[id] // zero when the campaign has no Completed donations
		if math.Abs(have-want) <= amountEpsilon {
			continue
		}
		if err := w.campaigns.SetCollected(ctx, id, want); err != nil {
			w.log.Error("failed to repair campaign total",
				zap.String("run_id", runID),
				zap.String("campaign_id", id.Hex()),
				zap.Error(err))
			continue
		}
		repaired++
		w.log.Warn("repaired drifted campaign total",
			zap.String("run_id", runID),
			zap.String("campaign_id", id.Hex()),
			zap.Float64("stored", have),
			zap.Float64("ledger", want))
	}

	w.log.Info("reconcile pass complete",
		zap.String("run_id", runID),
		zap.Int("checked", checked),
		zap.Int("repaired", repaired))
	return checked, repaired, nil
}
