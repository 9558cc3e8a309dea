// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	badgesfeature "github.com/dalemusser/fundhub/internal/app/features/badges"
	campaignsfeature "github.com/dalemusser/fundhub/internal/app/features/campaigns"
	donationsfeature "github.com/dalemusser/fundhub/internal/app/features/donations"
	eventsfeature "github.com/dalemusser/fundhub/internal/app/features/events"
	healthfeature "github.com/dalemusser/fundhub/internal/app/features/health"
	"github.com/dalemusser/fundhub/internal/app/system/auth"
	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// Startup have completed. FundHub is a pure JSON API: bearer-token
// verification runs globally so every handler can read the current user
// from context, and each feature mounts its own chi subrouter.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	verifier := auth.NewVerifier(appCfg.AuthTokenKey, appCfg.AuthTokenIssuer, logger)

	r := chi.NewRouter()

	// A panic in one handler must not kill the connection unanswered.
	r.Use(middleware.Recoverer)

	// Loads the SessionUser into context when a valid bearer token is
	// present; route-level guards decide whether anonymous is acceptable.
	r.Use(verifier.LoadBearerUser)

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	donationsHandler := donationsfeature.NewHandler(deps.MongoClient, deps.MongoDatabase, logger)
	r.Mount("/api/donations", donationsfeature.Routes(donationsHandler))

	badgesHandler := badgesfeature.NewHandler(deps.MongoDatabase, logger)
	r.Mount("/api/badges", badgesfeature.Routes(badgesHandler))

	campaignsHandler := campaignsfeature.NewHandler(deps.MongoDatabase, logger)
	r.Mount("/api/campaigns", campaignsfeature.Routes(campaignsHandler))

	eventsHandler := eventsfeature.NewHandler(deps.MongoDatabase, logger)
	r.Mount("/api/events", eventsfeature.Routes(eventsHandler))

	return r, nil
}
