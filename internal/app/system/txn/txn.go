// internal/app/system/txn/txn.go
package txn

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// The donation create/delete paths pair a ledger write with a campaign
// total update. On replica sets the pair runs in one multi-document
// transaction; standalone servers (local dev, some managed tiers) reject
// sessions/transactions, so Run falls back to executing the function
// without one. The individual campaign updates are atomic either way, so
// the fallback only widens the crash window the reconcile worker repairs.

// Run executes fn inside a multi-document transaction when the deployment
// supports one, and directly otherwise. fn must use the ctx it is handed
// for every operation so the writes join the session.
func Run(ctx context.Context, client *mongo.Client, logger *zap.Logger, fn func(ctx context.Context) error) error {
	sess, err := client.StartSession()
	if err != nil {
		if IsNotSupported(err) {
			logger.Debug("transactions unsupported, running without one", zap.Error(err))
			return fn(ctx)
		}
		return err
	}
	defer sess.EndSession(ctx)

	_, err = sess.WithTransaction(ctx, func(sc mongo.SessionContext) (any, error) {
		return nil, fn(sc)
	})
	if err != nil && IsNotSupported(err) {
		logger.Debug("transactions unsupported, running without one", zap.Error(err))
		return fn(ctx)
	}
	return err
}

// Mongo server error codes returned when sessions/transactions are not
// available on this deployment.
const (
	codeIllegalOperation      = 20
	codeCommandNotSupported   = 51
	codeOperationNotSupported = 263
)

// IsNotSupported reports whether err indicates the server cannot run
// multi-document transactions (standalone mongod, old versions, or managed
// services without session support).
func IsNotSupported(err error) bool {
	if err == nil {
		return false
	}

	var ce mongo.CommandError
	if errors.As(err, &ce) {
		switch ce.Code {
		case codeIllegalOperation, codeCommandNotSupported, codeOperationNotSupported:
			return true
		}
	}

	s := strings.ToLower(err.Error())
	switch {
	case strings.Contains(s, "transaction") && strings.Contains(s, "replica set"):
		return true
	case strings.Contains(s, "session") && strings.Contains(s, "not supported"):
		return true
	case strings.Contains(s, "transaction") && strings.Contains(s, "session"):
		return true
	case strings.Contains(s, "illegal operation"):
		return true
	}
	return false
}
